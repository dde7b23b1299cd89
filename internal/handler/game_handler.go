package handler

import (
	"net/http"

	"gamecatalog/backend/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// region --- Write Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a new game. Genres are referenced by name and created when they don't exist yet.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body dto.CreateGame true "Game Info"
// @Success      201  {object}  dto.Game
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Game already exists"
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input dto.CreateGame
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	game, err := h.service.CreateGame(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Updates the game identified by the ID in the body and replaces its genres.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body      dto.Game true  "Game"
// @Success      200   {object}  dto.Game
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Failure      409   {object}  ErrorResponse "Game name already taken"
// @Router       /games [put]
func (h *Handler) UpdateGame(c *gin.Context) {
	var input dto.Game
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	game, err := h.service.UpdateGame(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game and unlinks it from its genres. The genres themselves are kept.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      409 {object} ErrorResponse "Game could not be deleted"
// @Router       /games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.DeleteGame(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Game deleted"})
}

// endregion

// region --- Read Handlers ---

// GetGames godoc
// @Summary      Get all games
// @Description  Retrieves every game with its genre names.
// @Tags         games
// @Produce      json
// @Success      200 {array}  dto.Game
// @Failure      404 {object} ErrorResponse "No games exist"
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	games, err := h.service.GetAllGames(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// GetGame godoc
// @Summary      Get a single game by ID or name
// @Description  The parameter is treated as an ID when it is a valid UUID, otherwise as the game name.
// @Tags         games
// @Produce      json
// @Param        idOrName path string true "Game ID or name"
// @Success      200 {object} dto.Game
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{idOrName} [get]
func (h *Handler) GetGame(c *gin.Context) {
	key := c.Param("idOrName")

	var (
		game *dto.Game
		err  error
	)
	if id, parseErr := uuid.Parse(key); parseErr == nil {
		game, err = h.service.GetGameByID(c.Request.Context(), id)
	} else {
		game, err = h.service.GetGameByName(c.Request.Context(), key)
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// endregion
