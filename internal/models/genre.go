package models

// Genre represents a game genre (e.g., "FPS", "Horror", "RPG").
// Games is the inverse side of Game.Genres and shares its join table.
type Genre struct {
	EntityBase
	Games []*Game `gorm:"many2many:game_genres;constraint:OnDelete:CASCADE;"`
}
