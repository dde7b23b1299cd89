package models

// Game represents a game in the catalog.
type Game struct {
	EntityBase
	Developer string   `gorm:"size:255;not null"`
	Genres    []*Genre `gorm:"many2many:game_genres;constraint:OnDelete:CASCADE;"`
}
