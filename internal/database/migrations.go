package database

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Migrations are applied in slice order. Each one declares the table shapes it
// needs locally so later model changes never rewrite history.
func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202210200001_create_games_and_genres",
			Migrate: func(tx *gorm.DB) error {
				type genre struct {
					ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
					Name      string    `gorm:"size:255;not null"`
					CreatedAt time.Time
					UpdatedAt time.Time
				}
				type game struct {
					ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
					Name      string    `gorm:"size:255;not null;uniqueIndex:idx_games_name"`
					Developer string    `gorm:"size:255;not null"`
					CreatedAt time.Time
					UpdatedAt time.Time
					Genres    []genre `gorm:"many2many:game_genres;constraint:OnDelete:CASCADE;"`
				}
				return tx.AutoMigrate(&genre{}, &game{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("game_genres", "games", "genres")
			},
		},
		{
			ID: "202210250001_unique_genre_names",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_genres_name ON genres (name)").Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec("DROP INDEX IF EXISTS idx_genres_name").Error
			},
		},
	}
}

func newMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations())
}

// Migrate applies every pending migration.
func Migrate(db *gorm.DB) error {
	return newMigrator(db).Migrate()
}

// RollbackLast reverts the most recently applied migration.
func RollbackLast(db *gorm.DB) error {
	return newMigrator(db).RollbackLast()
}
