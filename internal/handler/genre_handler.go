package handler

import (
	"net/http"

	"gamecatalog/backend/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateGenre godoc
// @Summary      Create a new genre
// @Description  Creates a genre that no game references yet.
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        input body dto.CreateGenre true "Genre Info"
// @Success      201  {object}  dto.Genre
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Genre already exists"
// @Router       /genres [post]
func (h *Handler) CreateGenre(c *gin.Context) {
	var input dto.CreateGenre
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	genre, err := h.service.CreateGenre(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, genre)
}

// GetGenre godoc
// @Summary      Get a genre by name
// @Tags         genres
// @Produce      json
// @Param        name path      string  true  "Genre name"
// @Success      200  {object}  dto.Genre
// @Failure      404  {object}  ErrorResponse "Genre not found"
// @Router       /genres/{name} [get]
func (h *Handler) GetGenre(c *gin.Context) {
	genre, err := h.service.GetGenre(c.Request.Context(), c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, genre)
}

// GetGamesByGenre godoc
// @Summary      List the games of a genre
// @Description  Accepts either the genre ID or its name. A genre without games yields an empty list.
// @Tags         genres
// @Produce      json
// @Param        idOrName path   string  true  "Genre ID or name"
// @Success      200  {array}   dto.Game
// @Failure      404  {object}  ErrorResponse "Genre not found"
// @Router       /games-by-genre/{idOrName} [get]
func (h *Handler) GetGamesByGenre(c *gin.Context) {
	key := c.Param("idOrName")

	var (
		games []dto.Game
		err   error
	)
	if id, parseErr := uuid.Parse(key); parseErr == nil {
		games, err = h.service.GetGamesByGenreID(c.Request.Context(), id)
	} else {
		games, err = h.service.GetGamesByGenreName(c.Request.Context(), key)
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// UpdateGenre godoc
// @Summary      Update a genre
// @Description  Renames the genre identified by the ID in the body.
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        input body      dto.Genre true  "Genre"
// @Success      200   {object}  dto.Genre
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Genre not found"
// @Failure      409   {object}  ErrorResponse "Genre name already taken"
// @Router       /genres [put]
func (h *Handler) UpdateGenre(c *gin.Context) {
	var input dto.Genre
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	genre, err := h.service.UpdateGenre(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, genre)
}

// DeleteGenre godoc
// @Summary      Delete a genre
// @Description  Deletes a genre and unlinks it from its games. The games themselves are kept.
// @Tags         genres
// @Produce      json
// @Param        id   path      string  true  "Genre ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Genre not found"
// @Failure      409  {object}  ErrorResponse "Genre could not be deleted"
// @Router       /genres/{id} [delete]
func (h *Handler) DeleteGenre(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.DeleteGenre(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Genre deleted"})
}
