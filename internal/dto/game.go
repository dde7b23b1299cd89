// Package dto defines the JSON transfer shapes and maps them to and from persisted models.
package dto

import (
	"gamecatalog/backend/internal/models"

	"github.com/google/uuid"
)

// CreateGame is the payload for creating a game.
type CreateGame struct {
	Name      string   `json:"name" binding:"required" example:"Doom"`
	Developer string   `json:"developer" binding:"required" example:"id Software"`
	Genres    []string `json:"genres" binding:"required,dive,required" example:"FPS,Horror"`
}

// Game is the external representation of a game; genres are flattened to names.
type Game struct {
	ID        uuid.UUID `json:"id" binding:"required" example:"0b6f3c1e-5d2a-4e7b-9c1f-2a3b4c5d6e7f"`
	Name      string    `json:"name" binding:"required" example:"Doom"`
	Developer string    `json:"developer" binding:"required" example:"id Software"`
	Genres    []string  `json:"genres" binding:"required,dive,required" example:"FPS,Horror"`
}

// NewGame maps a persisted game, projecting its genres to their names in order.
func NewGame(game *models.Game) Game {
	genres := make([]string, 0, len(game.Genres))
	for _, genre := range game.Genres {
		if genre != nil {
			genres = append(genres, genre.Name)
		}
	}

	return Game{
		ID:        game.ID,
		Name:      game.Name,
		Developer: game.Developer,
		Genres:    genres,
	}
}

// NewGames maps a list of persisted games. The result is never nil.
func NewGames(games []*models.Game) []Game {
	out := make([]Game, 0, len(games))
	for _, game := range games {
		if game != nil {
			out = append(out, NewGame(game))
		}
	}
	return out
}

// ToModel builds a new persisted game. Genres are left for the caller to resolve.
func (c CreateGame) ToModel() *models.Game {
	return &models.Game{
		EntityBase: models.EntityBase{Name: c.Name},
		Developer:  c.Developer,
	}
}

// ApplyTo copies the scalar fields onto an existing game. Genres are left untouched.
func (g Game) ApplyTo(game *models.Game) {
	game.ID = g.ID
	game.Name = g.Name
	game.Developer = g.Developer
}
