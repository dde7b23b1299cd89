package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with logging, recovery, error translation
// and the catalog routes mounted under /api/v1.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.Default()
	router.Use(ErrorHandler())

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	RegisterRoutes(router.Group("/api/v1"), h)
	return router
}

// RegisterRoutes mounts the game and genre endpoints on the given group.
func RegisterRoutes(apiV1 *gin.RouterGroup, h *Handler) {
	gameRoutes := apiV1.Group("/games")
	{
		gameRoutes.POST("", h.CreateGame)
		gameRoutes.GET("", h.GetGames)
		gameRoutes.PUT("", h.UpdateGame)
		gameRoutes.GET("/:idOrName", h.GetGame)
		gameRoutes.DELETE("/:id", h.DeleteGame)
	}

	genreRoutes := apiV1.Group("/genres")
	{
		genreRoutes.POST("", h.CreateGenre)
		genreRoutes.PUT("", h.UpdateGenre)
		genreRoutes.GET("/:name", h.GetGenre)
		genreRoutes.DELETE("/:id", h.DeleteGenre)
	}

	apiV1.GET("/games-by-genre/:idOrName", h.GetGamesByGenre)
}
