package dto

import (
	"gamecatalog/backend/internal/models"

	"github.com/google/uuid"
)

// CreateGenre is the payload for creating a genre on its own.
type CreateGenre struct {
	Name string `json:"name" binding:"required" example:"FPS"`
}

// Genre is the external representation of a genre.
type Genre struct {
	ID   uuid.UUID `json:"id" binding:"required" example:"6a1d2e3f-4b5c-4d6e-8f7a-9b0c1d2e3f4a"`
	Name string    `json:"name" binding:"required" example:"FPS"`
}

func NewGenre(genre *models.Genre) Genre {
	return Genre{
		ID:   genre.ID,
		Name: genre.Name,
	}
}

func (c CreateGenre) ToModel() *models.Genre {
	return &models.Genre{EntityBase: models.EntityBase{Name: c.Name}}
}

// ApplyTo copies the genre fields onto an existing genre.
func (g Genre) ApplyTo(genre *models.Genre) {
	genre.ID = g.ID
	genre.Name = g.Name
}
