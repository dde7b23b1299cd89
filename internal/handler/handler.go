package handler

import (
	"context"

	"gamecatalog/backend/internal/dto"

	"github.com/google/uuid"
)

// CatalogService is the domain surface the HTTP handlers depend on.
type CatalogService interface {
	CreateGame(ctx context.Context, input dto.CreateGame) (*dto.Game, error)
	CreateGenre(ctx context.Context, input dto.CreateGenre) (*dto.Genre, error)
	GetAllGames(ctx context.Context) ([]dto.Game, error)
	GetGameByID(ctx context.Context, id uuid.UUID) (*dto.Game, error)
	GetGameByName(ctx context.Context, name string) (*dto.Game, error)
	GetGenre(ctx context.Context, name string) (*dto.Genre, error)
	GetGamesByGenreID(ctx context.Context, id uuid.UUID) ([]dto.Game, error)
	GetGamesByGenreName(ctx context.Context, name string) ([]dto.Game, error)
	UpdateGame(ctx context.Context, input dto.Game) (*dto.Game, error)
	UpdateGenre(ctx context.Context, input dto.Genre) (*dto.Genre, error)
	DeleteGame(ctx context.Context, id uuid.UUID) error
	DeleteGenre(ctx context.Context, id uuid.UUID) error
}

// Handler serves the game and genre endpoints.
type Handler struct {
	service CatalogService
}

func New(service CatalogService) *Handler {
	return &Handler{service: service}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse is returned by endpoints that have no entity to report.
type MessageResponse struct {
	Message string `json:"message" example:"Game deleted"`
}
