package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmfurtado/rhpulse/internal/domain/dto"
	"github.com/gmfurtado/rhpulse/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context (c.Error) into a
// standardized JSON response, for handlers that return errors instead of
// writing their own response. If the handler already wrote a body, the
// collected errors are only logged.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	for _, e := range c.Errors {
		logger.L().Error().Err(e.Err).Str("path", c.Request.URL.Path).Msg("handler error")
	}

	if c.Writer.Written() {
		return
	}

	last := c.Errors.Last()
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", last.Err))
}
