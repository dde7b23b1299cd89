package service_test

import (
	"context"
	"errors"
	"testing"

	"gamecatalog/backend/internal/dto"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/repository"
	"gamecatalog/backend/internal/service"
	"gamecatalog/backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*service.GameService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return newServiceWith(db, repository.NewGameRepository(db), repository.NewGenreRepository(db)), db
}

func newServiceWith(db *gorm.DB, games repository.GameRepository, genres repository.GenreRepository) *service.GameService {
	return service.NewGameService(repository.NewTransactor(db), games, genres)
}

func doom() dto.CreateGame {
	return dto.CreateGame{Name: "Doom", Developer: "id Software", Genres: []string{"FPS", "Horror"}}
}

func countGenres(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Genre{}).Count(&n).Error)
	return n
}

func requireKind(t *testing.T, err error, kind service.Kind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, service.KindOf(err), "unexpected error: %v", err)
}

func TestCreateGame(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	game, err := svc.CreateGame(ctx, doom())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, game.ID)
	assert.Equal(t, "Doom", game.Name)
	assert.Equal(t, "id Software", game.Developer)
	assert.Equal(t, []string{"FPS", "Horror"}, game.Genres)
	assert.EqualValues(t, 2, countGenres(t, db))

	loaded, err := svc.GetGameByID(ctx, game.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"FPS", "Horror"}, loaded.Genres)
}

func TestCreateGameDuplicateNameConflicts(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	_, err := svc.CreateGame(ctx, doom())
	require.NoError(t, err)

	again := doom()
	again.Genres = []string{"Puzzle"}
	_, err = svc.CreateGame(ctx, again)
	requireKind(t, err, service.KindConflict)
	assert.Contains(t, err.Error(), "Doom")

	// Nothing from the rejected request reached the store.
	assert.EqualValues(t, 2, countGenres(t, db))
	all, err := svc.GetAllGames(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateGameReusesExistingGenres(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	_, err := svc.CreateGame(ctx, doom())
	require.NoError(t, err)
	_, err = svc.CreateGame(ctx, dto.CreateGame{Name: "Quake", Developer: "id Software", Genres: []string{"FPS", "Arena", "Arena"}})
	require.NoError(t, err)

	assert.EqualValues(t, 3, countGenres(t, db))

	fps, err := svc.GetGamesByGenreName(ctx, "FPS")
	require.NoError(t, err)
	assert.Len(t, fps, 2)
}

func TestGetAllGamesEmptyIsNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.GetAllGames(context.Background())
	requireKind(t, err, service.KindNotFound)
}

func TestGetGameLookups(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, doom())
	require.NoError(t, err)

	byName, err := svc.GetGameByName(ctx, "Doom")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = svc.GetGameByName(ctx, "Quake")
	requireKind(t, err, service.KindNotFound)
	assert.Contains(t, err.Error(), "Quake")

	missing := uuid.New()
	_, err = svc.GetGameByID(ctx, missing)
	requireKind(t, err, service.KindNotFound)
	assert.Contains(t, err.Error(), missing.String())
}

func TestGetGenre(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateGame(ctx, doom())
	require.NoError(t, err)

	genre, err := svc.GetGenre(ctx, "FPS")
	require.NoError(t, err)
	assert.Equal(t, "FPS", genre.Name)

	byID, err := svc.GetGamesByGenreID(ctx, genre.ID)
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "Doom", byID[0].Name)
	assert.ElementsMatch(t, []string{"FPS", "Horror"}, byID[0].Genres)

	_, err = svc.GetGenre(ctx, "RPG")
	requireKind(t, err, service.KindNotFound)
}

func TestGetGamesByGenre(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateGame(ctx, doom())
	require.NoError(t, err)
	_, err = svc.CreateGame(ctx, dto.CreateGame{Name: "Quake", Developer: "id Software", Genres: []string{"FPS"}})
	require.NoError(t, err)
	_, err = svc.CreateGame(ctx, dto.CreateGame{Name: "Myst", Developer: "Cyan", Genres: []string{"Puzzle"}})
	require.NoError(t, err)

	fps, err := svc.GetGamesByGenreName(ctx, "FPS")
	require.NoError(t, err)
	names := make([]string, 0, len(fps))
	for _, g := range fps {
		names = append(names, g.Name)
	}
	assert.ElementsMatch(t, []string{"Doom", "Quake"}, names)

	_, err = svc.GetGamesByGenreName(ctx, "RPG")
	requireKind(t, err, service.KindNotFound)

	_, err = svc.GetGamesByGenreID(ctx, uuid.New())
	requireKind(t, err, service.KindNotFound)
}

func TestGetGamesByUnusedGenreIsEmpty(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateGenre(ctx, dto.CreateGenre{Name: "RPG"})
	require.NoError(t, err)

	games, err := svc.GetGamesByGenreName(ctx, "RPG")
	require.NoError(t, err)
	assert.NotNil(t, games)
	assert.Empty(t, games)
}

func TestCreateGenre(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	genre, err := svc.CreateGenre(ctx, dto.CreateGenre{Name: "RPG"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, genre.ID)

	_, err = svc.CreateGenre(ctx, dto.CreateGenre{Name: "RPG"})
	requireKind(t, err, service.KindConflict)

	// A later game picks up the existing genre instead of creating another.
	_, err = svc.CreateGame(ctx, dto.CreateGame{Name: "Diablo", Developer: "Blizzard", Genres: []string{"RPG"}})
	require.NoError(t, err)
	loaded, err := svc.GetGenre(ctx, "RPG")
	require.NoError(t, err)
	assert.Equal(t, genre.ID, loaded.ID)
}

func TestUpdateGameReplacesGenres(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, doom())
	require.NoError(t, err)

	updated, err := svc.UpdateGame(ctx, dto.Game{
		ID:        created.ID,
		Name:      "Doom 3",
		Developer: "id Software",
		Genres:    []string{"Horror", "Survival"},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Doom 3", updated.Name)
	assert.Equal(t, []string{"Horror", "Survival"}, updated.Genres)

	loaded, err := svc.GetGameByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doom 3", loaded.Name)
	assert.ElementsMatch(t, []string{"Horror", "Survival"}, loaded.Genres)

	fps, err := svc.GetGamesByGenreName(ctx, "FPS")
	require.NoError(t, err)
	assert.Empty(t, fps)
}

func TestUpdateGameMissingIsNotFound(t *testing.T) {
	svc, db := newService(t)

	_, err := svc.UpdateGame(context.Background(), dto.Game{ID: uuid.New(), Name: "Ghost", Developer: "x", Genres: []string{"FPS"}})
	requireKind(t, err, service.KindNotFound)
	assert.Zero(t, countGenres(t, db))
}

func TestUpdateGameRenameToExistingConflicts(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	_, err := svc.CreateGame(ctx, doom())
	require.NoError(t, err)
	quake, err := svc.CreateGame(ctx, dto.CreateGame{Name: "Quake", Developer: "id Software", Genres: []string{"FPS"}})
	require.NoError(t, err)

	_, err = svc.UpdateGame(ctx, dto.Game{ID: quake.ID, Name: "Doom", Developer: "id Software", Genres: []string{"Arena", "Retro"}})
	requireKind(t, err, service.KindConflict)

	// The genres resolved for the rejected update were rolled back with it.
	assert.EqualValues(t, 2, countGenres(t, db))
	loaded, err := svc.GetGameByID(ctx, quake.ID)
	require.NoError(t, err)
	assert.Equal(t, "Quake", loaded.Name)
	assert.Equal(t, []string{"FPS"}, loaded.Genres)
}

func TestUpdateGenre(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateGame(ctx, doom())
	require.NoError(t, err)
	fps, err := svc.GetGenre(ctx, "FPS")
	require.NoError(t, err)

	updated, err := svc.UpdateGenre(ctx, dto.Genre{ID: fps.ID, Name: "Shooter"})
	require.NoError(t, err)
	assert.Equal(t, dto.Genre{ID: fps.ID, Name: "Shooter"}, *updated)

	game, err := svc.GetGameByName(ctx, "Doom")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Shooter", "Horror"}, game.Genres)

	_, err = svc.UpdateGenre(ctx, dto.Genre{ID: fps.ID, Name: "Horror"})
	requireKind(t, err, service.KindConflict)

	_, err = svc.UpdateGenre(ctx, dto.Genre{ID: uuid.New(), Name: "RPG"})
	requireKind(t, err, service.KindNotFound)
}

func TestDeleteGame(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, doom())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGame(ctx, created.ID))

	_, err = svc.GetGameByID(ctx, created.ID)
	requireKind(t, err, service.KindNotFound)
	assert.EqualValues(t, 2, countGenres(t, db))

	err = svc.DeleteGame(ctx, created.ID)
	requireKind(t, err, service.KindNotFound)
}

func TestDeleteGenre(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, doom())
	require.NoError(t, err)
	fps, err := svc.GetGenre(ctx, "FPS")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGenre(ctx, fps.ID))

	game, err := svc.GetGameByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Horror"}, game.Genres)

	err = svc.DeleteGenre(ctx, fps.ID)
	requireKind(t, err, service.KindNotFound)
}

// staleGames reports that writes changed nothing, as when a concurrent request removed the row first.
type staleGames struct {
	repository.GameRepository
}

func (r staleGames) WithTx(tx *gorm.DB) repository.GameRepository {
	return staleGames{r.GameRepository.WithTx(tx)}
}

func (staleGames) Update(context.Context, *models.Game) (bool, error) {
	return false, nil
}

func (staleGames) Delete(context.Context, *models.Game) (bool, error) {
	return false, nil
}

type staleGenres struct {
	repository.GenreRepository
}

func (r staleGenres) WithTx(tx *gorm.DB) repository.GenreRepository {
	return staleGenres{r.GenreRepository.WithTx(tx)}
}

func (staleGenres) Update(context.Context, *models.Genre) (bool, error) {
	return false, nil
}

func (staleGenres) Delete(context.Context, *models.Genre) (bool, error) {
	return false, nil
}

func TestDeleteReportingNoChangeConflicts(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	games := repository.NewGameRepository(db)
	genres := repository.NewGenreRepository(db)

	created, err := newServiceWith(db, games, genres).CreateGame(ctx, doom())
	require.NoError(t, err)
	fps, err := genres.GetByName(ctx, "FPS")
	require.NoError(t, err)

	svc := newServiceWith(db, staleGames{games}, staleGenres{genres})

	err = svc.DeleteGame(ctx, created.ID)
	requireKind(t, err, service.KindConflict)

	err = svc.DeleteGenre(ctx, fps.ID)
	requireKind(t, err, service.KindConflict)
}

func TestUpdateReportingNoChangeIsNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	games := repository.NewGameRepository(db)
	genres := repository.NewGenreRepository(db)

	created, err := newServiceWith(db, games, genres).CreateGame(ctx, doom())
	require.NoError(t, err)
	fps, err := genres.GetByName(ctx, "FPS")
	require.NoError(t, err)

	svc := newServiceWith(db, staleGames{games}, staleGenres{genres})

	_, err = svc.UpdateGame(ctx, dto.Game{ID: created.ID, Name: "Doom 3", Developer: "id Software", Genres: []string{"Survival"}})
	requireKind(t, err, service.KindNotFound)
	assert.Contains(t, err.Error(), created.ID.String())
	assert.EqualValues(t, 2, countGenres(t, db))

	_, err = svc.UpdateGenre(ctx, dto.Genre{ID: fps.ID, Name: "Shooter"})
	requireKind(t, err, service.KindNotFound)
	assert.Contains(t, err.Error(), fps.ID.String())
}

// racedGames never sees an existing name, as when another request inserts the
// same game between the existence check and the insert.
type racedGames struct {
	repository.GameRepository
}

func (r racedGames) WithTx(tx *gorm.DB) repository.GameRepository {
	return racedGames{r.GameRepository.WithTx(tx)}
}

func (racedGames) ExistsByName(context.Context, string) (bool, error) {
	return false, nil
}

func TestCreateGameLosingNameRaceKeepsNoGenres(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	games := repository.NewGameRepository(db)
	genres := repository.NewGenreRepository(db)

	_, err := newServiceWith(db, games, genres).CreateGame(ctx, doom())
	require.NoError(t, err)
	require.EqualValues(t, 2, countGenres(t, db))

	svc := newServiceWith(db, racedGames{games}, genres)
	_, err = svc.CreateGame(ctx, dto.CreateGame{Name: "Doom", Developer: "id Software", Genres: []string{"Puzzle", "Arcade"}})
	requireKind(t, err, service.KindConflict)
	assert.Contains(t, err.Error(), "Doom")

	assert.EqualValues(t, 2, countGenres(t, db))
	_, err = genres.GetByName(ctx, "Puzzle")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// The store stays usable after the rollback.
	quake, err := svc.CreateGame(ctx, dto.CreateGame{Name: "Quake", Developer: "id Software", Genres: []string{"FPS", "Arcade"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"FPS", "Arcade"}, quake.Genres)
	assert.EqualValues(t, 3, countGenres(t, db))
}

type failingGames struct {
	repository.GameRepository
}

func (r failingGames) WithTx(tx *gorm.DB) repository.GameRepository {
	return failingGames{r.GameRepository.WithTx(tx)}
}

func (failingGames) ExistsByName(context.Context, string) (bool, error) {
	return false, errors.New("connection reset")
}

func (failingGames) GetAll(context.Context) ([]*models.Game, error) {
	return nil, errors.New("connection reset")
}

func TestStoreFailuresAreNotDomainErrors(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newServiceWith(db, failingGames{repository.NewGameRepository(db)}, repository.NewGenreRepository(db))

	_, err := svc.CreateGame(context.Background(), doom())
	require.Error(t, err)
	assert.Zero(t, service.KindOf(err))
	assert.Zero(t, countGenres(t, db))

	_, err = svc.GetAllGames(context.Background())
	require.Error(t, err)
	assert.Zero(t, service.KindOf(err))
}
