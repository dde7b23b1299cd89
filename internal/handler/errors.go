package handler

import (
	"net/http"

	"gamecatalog/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// NotFound maps to 404 and Conflict to 409; anything else is reported as a
// 500 without exposing its details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		switch service.KindOf(err) {
		case service.KindNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case service.KindConflict:
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
	}
}
