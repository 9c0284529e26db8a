// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"studytrip/internal/http/handlers"
	"studytrip/internal/http/middleware"
	"studytrip/internal/infra"
)

type ServerDeps struct {
	Planner  handlers.Planner
	Quota    handlers.Quota         // nil disables the daily generation limit
	Maps     handlers.MapRenderer   // nil disables map previews
	Places   handlers.PlaceSearcher // nil disables place suggestions
	Saver    handlers.PlanSaver
	Verifier infra.TokenVerifier // nil disables auth on plan saves

	Logger      *slog.Logger
	CORSOrigins []string
	AITimeout   time.Duration
}

type Server struct {
	itinerary *handlers.ItineraryHandler
	plans     *handlers.PlanHandler
	places    *handlers.PlacesHandler
	verifier  infra.TokenVerifier
	logger    *slog.Logger
	origins   []string
}

func NewServer(deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		itinerary: handlers.NewItineraryHandler(deps.Planner, deps.Quota, deps.Maps, deps.AITimeout, logger),
		plans:     handlers.NewPlanHandler(deps.Saver, logger),
		places:    handlers.NewPlacesHandler(deps.Places, logger),
		verifier:  deps.Verifier,
		logger:    logger,
		origins:   deps.CORSOrigins,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(s.logger), middleware.Recovery(s.logger))
	if len(s.origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  s.origins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:  []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders: []string{"Content-Disposition", middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	itineraries := api.Group("/itineraries")
	itineraries.POST("", s.itinerary.Generate)
	itineraries.POST("/pdf", s.itinerary.PDF)
	itineraries.POST("/csv", s.itinerary.CSV)
	itineraries.POST("/map", s.itinerary.Map)

	api.GET("/places", s.places.Search)
	api.POST("/plans", middleware.Auth(s.verifier), s.plans.Save)

	return r
}
