// README: Places handler suggests budget stays and food near a destination.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"studytrip/internal/maps"
)

// PlaceSearcher finds budget-friendly places near a destination.
type PlaceSearcher interface {
	SearchBudget(ctx context.Context, destination, query string, opts *maps.SearchOptions) ([]maps.Suggestion, error)
}

type PlacesHandler struct {
	places PlaceSearcher
	log    *slog.Logger
}

// NewPlacesHandler wires the handler. places may be nil when Maps is not configured.
func NewPlacesHandler(places PlaceSearcher, log *slog.Logger) *PlacesHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PlacesHandler{places: places, log: log}
}

// Search handles GET /api/places?near=Goa&q=hostel&max_price=2.
func (h *PlacesHandler) Search(c *gin.Context) {
	if h.places == nil {
		writeError(c, http.StatusServiceUnavailable, "maps not configured")
		return
	}
	near := strings.TrimSpace(c.Query("near"))
	if near == "" {
		writeError(c, http.StatusBadRequest, "near is required")
		return
	}
	query := strings.TrimSpace(c.DefaultQuery("q", "budget hostel"))

	opts := &maps.SearchOptions{}
	if v := c.Query("max_price"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 4 {
			writeError(c, http.StatusBadRequest, "max_price must be between 0 and 4")
			return
		}
		opts.MaxPriceLevel = &n
	}

	results, err := h.places.SearchBudget(c.Request.Context(), near, query, opts)
	if err != nil {
		h.log.WarnContext(c.Request.Context(), "places search failed", "near", near, "error", err)
		writeError(c, http.StatusBadGateway, "places unavailable")
		return
	}
	if results == nil {
		results = []maps.Suggestion{}
	}
	writeJSON(c, http.StatusOK, gin.H{"results": results})
}
