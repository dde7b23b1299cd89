package repository

import (
	"context"

	"gamecatalog/backend/internal/models"

	"gorm.io/gorm"
)

// GameRepository adds catalog-wide listing to the common contract.
// Every read eager-loads the game's genres.
type GameRepository interface {
	Repository[models.Game]
	GetAll(ctx context.Context) ([]*models.Game, error)
	// WithTx returns a repository that runs its queries inside tx.
	WithTx(tx *gorm.DB) GameRepository
}

type gameRepository struct {
	*gormRepository[models.Game]
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{
		gormRepository: &gormRepository[models.Game]{
			db:           db,
			preloads:     []string{"Genres"},
			columns:      []string{"name", "developer", "updated_at"},
			omitOnCreate: []string{"Genres.*"},
		},
	}
}

func (r *gameRepository) WithTx(tx *gorm.DB) GameRepository {
	return &gameRepository{gormRepository: r.withDB(tx)}
}

func (r *gameRepository) GetAll(ctx context.Context) ([]*models.Game, error) {
	var games []*models.Game
	if err := r.read(ctx).Order("name").Find(&games).Error; err != nil {
		return nil, translate(err)
	}
	return games, nil
}

// Update writes the scalar fields and replaces the genre links in one transaction,
// nested as a savepoint when the repository is already bound to one.
func (r *gameRepository) Update(ctx context.Context, game *models.Game) (bool, error) {
	var updated bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if updated, err = r.updateColumns(tx, game); err != nil {
			return err
		}
		if !updated {
			return nil
		}

		genres := append([]*models.Genre(nil), game.Genres...)
		if err := tx.Model(game).Omit("Genres.*").Association("Genres").Replace(genres); err != nil {
			return translate(err)
		}
		return nil
	})
	return updated, err
}
