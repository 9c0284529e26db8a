package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptransport "studytrip/internal/http"
	"studytrip/internal/http/middleware"
	"studytrip/internal/modules/export"
	"studytrip/internal/modules/itinerary"
	"studytrip/internal/service"
)

type nopPlanner struct{}

func (nopPlanner) PlanTrip(context.Context, itinerary.TripRequest) (*service.Plan, error) {
	return &service.Plan{}, nil
}

type nopSaver struct{}

func (nopSaver) Save(_ context.Context, req export.SaveRequest) (int, error) {
	return len(req.Days), nil
}

func newTestServer(origins ...string) http.Handler {
	gin.SetMode(gin.TestMode)
	return httptransport.NewServer(httptransport.ServerDeps{
		Planner:     nopPlanner{},
		Saver:       nopSaver{},
		CORSOrigins: origins,
	}).Routes()
}

func TestRoutes_Health(t *testing.T) {
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRoutes_OptionalFeaturesDisabled(t *testing.T) {
	h := newTestServer()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/places?near=Goa", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/itineraries/map", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRoutes_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/itineraries", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	newTestServer("http://localhost:5173").ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_UnknownPath(t *testing.T) {
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
