// README: Entry point; loads config, wires the planner, sinks and maps, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"studytrip/internal/ai"
	"studytrip/internal/config"
	httptransport "studytrip/internal/http"
	"studytrip/internal/infra"
	"studytrip/internal/maps"
	"studytrip/internal/modules/aiusage"
	"studytrip/internal/modules/export"
	"studytrip/internal/modules/itinerary"
	"studytrip/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("planner-api stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	provider, closeProvider, err := newProvider(ctx, cfg.AI)
	if err != nil {
		return err
	}
	defer closeProvider()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		if rdb, err = infra.NewRedis(ctx, cfg.Redis.Addr); err != nil {
			return err
		}
		defer rdb.Close()
	}

	sink, closeSink, err := newSink(ctx, cfg, rdb)
	if err != nil {
		return err
	}
	defer closeSink()

	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.Credentials)
	if err != nil {
		return fmt.Errorf("firebase init: %w", err)
	}
	if verifier == nil {
		logger.Warn("STUDYTRIP_FIREBASE_PROJECT_ID not set; plan saves are unauthenticated")
	}

	deps := httptransport.ServerDeps{
		Saver:       export.NewService(sink, logger),
		Verifier:    verifier,
		Logger:      logger,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		AITimeout:   cfg.AI.Timeout,
	}

	var route service.TravelEstimator
	if cfg.Maps.APIKey != "" {
		routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			return err
		}
		staticSvc, err := maps.NewStaticMapService(cfg.Maps.APIKey)
		if err != nil {
			return err
		}
		placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			return err
		}
		route = routeSvc
		deps.Maps = staticSvc
		deps.Places = placesSvc
	} else {
		logger.Info("GOOGLE_MAPS_API_KEY not set; travel estimates, map previews and place search disabled")
	}

	if rdb != nil && cfg.Planner.DailyGenerations > 0 {
		deps.Quota = aiusage.NewService(aiusage.NewStore(rdb), cfg.Planner.DailyGenerations)
	}

	deps.Planner = service.NewTripPlanner(
		provider,
		itinerary.NewParser(itinerary.SpanFinderByName(cfg.Planner.PointsMatcher)),
		route,
		logger,
		service.Options{
			Params: ai.GenerationParams{
				Model:           cfg.AI.Model,
				Temperature:     cfg.AI.Temperature,
				MaxOutputTokens: cfg.AI.MaxTokens,
			},
			MaxDays: cfg.Planner.MaxDays,
		},
	)

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httptransport.NewServer(deps).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTP.Addr, "provider", provider.Name(), "sink", cfg.Sink.Kind)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return server.Shutdown(shutdownCtx)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func newProvider(ctx context.Context, cfg config.AIConfig) (ai.LLMProvider, func(), error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		p, err := ai.NewOpenAIProvider(cfg.APIKey)
		if err != nil {
			return nil, nil, err
		}
		return p, func() {}, nil
	default:
		p, err := ai.NewGeminiProvider(ctx, cfg.APIKey)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	}
}

func newSink(ctx context.Context, cfg config.Config, rdb *redis.Client) (export.PlanSink, func(), error) {
	switch cfg.Sink.Kind {
	case config.SinkPostgres:
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := infra.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return export.NewPostgresSink(pool), pool.Close, nil
	case config.SinkRedis:
		return export.NewRedisSink(rdb), func() {}, nil
	case config.SinkMongo:
		client, db, err := infra.NewMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, nil, err
		}
		return export.NewMongoSink(db), func() { _ = client.Disconnect(context.Background()) }, nil
	default:
		return export.NewFileSink(cfg.Sink.File), func() {}, nil
	}
}
