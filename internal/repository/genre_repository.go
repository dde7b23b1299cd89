package repository

import (
	"gamecatalog/backend/internal/models"

	"gorm.io/gorm"
)

// GenreRepository reads genres together with their games and each game's genres,
// so a genre lookup is enough to answer "games by genre".
type GenreRepository interface {
	Repository[models.Genre]
	// WithTx returns a repository that runs its queries inside tx.
	WithTx(tx *gorm.DB) GenreRepository
}

type genreRepository struct {
	*gormRepository[models.Genre]
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{
		gormRepository: &gormRepository[models.Genre]{
			db:       db,
			preloads: []string{"Games.Genres"},
			columns:  []string{"name", "updated_at"},
		},
	}
}

func (r *genreRepository) WithTx(tx *gorm.DB) GenreRepository {
	return &genreRepository{gormRepository: r.withDB(tx)}
}
