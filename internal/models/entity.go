package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entity is implemented by every persisted record addressable by id.
type Entity interface {
	GetID() uuid.UUID
}

// EntityBase holds the fields shared by games and genres.
// The schema is owned by the database migrations; these tags must describe it.
type EntityBase struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e EntityBase) GetID() uuid.UUID { return e.ID }

// BeforeCreate assigns a fresh identifier unless the caller supplied one.
func (e *EntityBase) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
