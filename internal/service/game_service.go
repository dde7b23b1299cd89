// Package service orchestrates the game and genre repositories.
package service

import (
	"context"
	"errors"
	"fmt"

	"gamecatalog/backend/internal/dto"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameService implements the catalog operations. Writes that touch both games
// and genres run in one transaction opened through tx.
type GameService struct {
	tx     repository.Transactor
	games  repository.GameRepository
	genres repository.GenreRepository
}

func NewGameService(tx repository.Transactor, games repository.GameRepository, genres repository.GenreRepository) *GameService {
	return &GameService{tx: tx, games: games, genres: genres}
}

// CreateGame persists a new game, creating any genre it names that does not exist yet.
// Genre creation and the game insert commit together or not at all.
func (s *GameService) CreateGame(ctx context.Context, input dto.CreateGame) (*dto.Game, error) {
	game := input.ToModel()

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		games, genres := s.games.WithTx(tx), s.genres.WithTx(tx)

		exists, err := games.ExistsByName(ctx, input.Name)
		if err != nil {
			return err
		}
		if exists {
			return conflict("game with name %q already exists", input.Name)
		}

		game.Genres, err = findOrCreateGenres(ctx, genres, input.Genres)
		if err != nil {
			return err
		}

		if _, err := games.Create(ctx, game); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return conflict("game with name %q already exists", input.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := dto.NewGame(game)
	return &out, nil
}

// CreateGenre persists a genre that is not referenced by any game yet.
func (s *GameService) CreateGenre(ctx context.Context, input dto.CreateGenre) (*dto.Genre, error) {
	exists, err := s.genres.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflict("genre with name %q already exists", input.Name)
	}

	genre := input.ToModel()
	if _, err := s.genres.Create(ctx, genre); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("genre with name %q already exists", input.Name)
		}
		return nil, err
	}

	out := dto.NewGenre(genre)
	return &out, nil
}

func (s *GameService) GetAllGames(ctx context.Context) ([]dto.Game, error) {
	games, err := s.games.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, notFound("can't find any game")
	}
	return dto.NewGames(games), nil
}

func (s *GameService) GetGameByID(ctx context.Context, id uuid.UUID) (*dto.Game, error) {
	game, err := s.games.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "can't find game with id: %s", id)
	}
	out := dto.NewGame(game)
	return &out, nil
}

func (s *GameService) GetGameByName(ctx context.Context, name string) (*dto.Game, error) {
	game, err := s.games.GetByName(ctx, name)
	if err != nil {
		return nil, lookupError(err, "can't find game with name: %s", name)
	}
	out := dto.NewGame(game)
	return &out, nil
}

func (s *GameService) GetGenre(ctx context.Context, name string) (*dto.Genre, error) {
	genre, err := s.genres.GetByName(ctx, name)
	if err != nil {
		return nil, lookupError(err, "can't find genre with name: %s", name)
	}
	out := dto.NewGenre(genre)
	return &out, nil
}

// GetGamesByGenreName lists the games of an existing genre; an unused genre yields an empty list.
func (s *GameService) GetGamesByGenreName(ctx context.Context, name string) ([]dto.Game, error) {
	genre, err := s.genres.GetByName(ctx, name)
	if err != nil {
		return nil, lookupError(err, "can't find genre with name: %s", name)
	}
	return dto.NewGames(genre.Games), nil
}

func (s *GameService) GetGamesByGenreID(ctx context.Context, id uuid.UUID) ([]dto.Game, error) {
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "can't find genre with id: %s", id)
	}
	return dto.NewGames(genre.Games), nil
}

// UpdateGame overwrites the game's fields and replaces its whole genre set.
// Genres created for the new set are rolled back when the update fails.
func (s *GameService) UpdateGame(ctx context.Context, input dto.Game) (*dto.Game, error) {
	var game *models.Game

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		games, genres := s.games.WithTx(tx), s.genres.WithTx(tx)

		var err error
		game, err = games.GetByID(ctx, input.ID)
		if err != nil {
			return lookupError(err, "can't update game with id: %s, it doesn't exist", input.ID)
		}

		resolved, err := findOrCreateGenres(ctx, genres, input.Genres)
		if err != nil {
			return err
		}

		input.ApplyTo(game)
		game.Genres = resolved

		updated, err := games.Update(ctx, game)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return conflict("game with name %q already exists", input.Name)
			}
			return err
		}
		if !updated {
			return notFound("can't update game with id: %s, it doesn't exist", input.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := dto.NewGame(game)
	return &out, nil
}

func (s *GameService) UpdateGenre(ctx context.Context, input dto.Genre) (*dto.Genre, error) {
	genre, err := s.genres.GetByID(ctx, input.ID)
	if err != nil {
		return nil, lookupError(err, "can't update genre with id: %s, it doesn't exist", input.ID)
	}

	input.ApplyTo(genre)

	updated, err := s.genres.Update(ctx, genre)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("genre with name %q already exists", input.Name)
		}
		return nil, err
	}
	if !updated {
		return nil, notFound("can't update genre with id: %s, it doesn't exist", input.ID)
	}

	out := dto.NewGenre(genre)
	return &out, nil
}

func (s *GameService) DeleteGame(ctx context.Context, id uuid.UUID) error {
	return deleteItem[models.Game](ctx, s.games, "game", id)
}

func (s *GameService) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	return deleteItem[models.Genre](ctx, s.genres, "genre", id)
}

func deleteItem[T models.Entity](ctx context.Context, repo repository.Repository[T], kind string, id uuid.UUID) error {
	item, err := repo.GetByID(ctx, id)
	if err != nil {
		return lookupError(err, "can't find %s with id: %s", kind, id)
	}

	deleted, err := repo.Delete(ctx, item)
	if err != nil {
		return err
	}
	if !deleted {
		return conflict("can't delete %s with id: %s", kind, id)
	}
	return nil
}

// findOrCreateGenres resolves each name to a persisted genre, preserving input order.
// A concurrent insert of the same name is resolved by reading the winner's row.
func findOrCreateGenres(ctx context.Context, repo repository.GenreRepository, names []string) ([]*models.Genre, error) {
	genres := make([]*models.Genre, 0, len(names))
	for _, name := range names {
		genre, err := repo.GetByName(ctx, name)
		if errors.Is(err, repository.ErrNotFound) {
			genre = &models.Genre{EntityBase: models.EntityBase{Name: name}}
			_, err = repo.Create(ctx, genre)
			if errors.Is(err, repository.ErrDuplicate) {
				genre, err = repo.GetByName(ctx, name)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("resolve genre %q: %w", name, err)
		}
		genres = append(genres, genre)
	}
	return genres, nil
}

// lookupError turns a missing row into a NotFound error and passes anything else through.
func lookupError(err error, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(format, args...)
	}
	return err
}
