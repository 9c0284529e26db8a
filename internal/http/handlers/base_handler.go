// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"studytrip/internal/modules/aiusage"
	"studytrip/internal/modules/itinerary"
	"studytrip/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlanError maps module errors to status codes. Unknown errors are
// logged and hidden behind "internal error".
func writePlanError(c *gin.Context, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, itinerary.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, aiusage.ErrInsufficientTokens):
		writeError(c, http.StatusTooManyRequests, "daily generation limit reached")
	case errors.Is(err, service.ErrModelUnavailable):
		log.WarnContext(c.Request.Context(), "model unavailable", "error", err)
		writeError(c, http.StatusBadGateway, "model unavailable")
	default:
		log.ErrorContext(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err)
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"status": "ok"})
}
