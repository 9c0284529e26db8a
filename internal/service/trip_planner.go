package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"studytrip/internal/ai"
	"studytrip/internal/maps"
	"studytrip/internal/modules/export"
	"studytrip/internal/modules/itinerary"
	"studytrip/internal/modules/pricing"
	"studytrip/internal/types"
)

// ErrModelUnavailable wraps any failure of the model call.
var ErrModelUnavailable = errors.New("model unavailable")

// TravelEstimator looks up the trip from origin to destination.
type TravelEstimator interface {
	GetTravelEstimate(ctx context.Context, origin, destination string) (*maps.TravelEstimate, error)
}

// Plan is the request-scoped result of one generation.
type Plan struct {
	ID          string                `json:"id"`
	Request     itinerary.TripRequest `json:"request"`
	RawText     string                `json:"raw_text"`
	Days        []string              `json:"days"`
	Places      []itinerary.Place     `json:"places"`
	RouteKm     float64               `json:"route_km"`
	Cost        types.Money           `json:"cost"`
	Breakdown   map[string]int64      `json:"cost_breakdown"`
	SummaryHTML string                `json:"summary_html"`
	Travel      *maps.TravelEstimate  `json:"travel,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// Options tunes the planner. Zero values fall back to the defaults.
type Options struct {
	Params  ai.GenerationParams
	MaxDays int
}

// TripPlanner orchestrates prompt building, the model call, parsing and pricing.
type TripPlanner struct {
	provider  ai.LLMProvider
	extractor *ai.Extractor
	parser    *itinerary.Parser
	pricing   *pricing.Service
	route     TravelEstimator
	logger    *slog.Logger
	opts      Options
	now       func() time.Time
}

// NewTripPlanner creates a TripPlanner. route may be nil when Maps is not configured.
func NewTripPlanner(provider ai.LLMProvider, parser *itinerary.Parser, route TravelEstimator, logger *slog.Logger, opts Options) *TripPlanner {
	if parser == nil {
		parser = itinerary.NewParser(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Params == (ai.GenerationParams{}) {
		opts.Params = ai.DefaultParams("")
	}
	return &TripPlanner{
		provider:  provider,
		extractor: ai.DefaultExtractor(),
		parser:    parser,
		pricing:   pricing.NewService(),
		route:     route,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
	}
}

// MaxDays is the longest trip the planner accepts; zero means unbounded.
func (p *TripPlanner) MaxDays() int { return p.opts.MaxDays }

// PlanTrip validates req, asks the model for an itinerary and derives the plan.
// Only validation and model failures are returned; malformed model output
// degrades to fewer segments and places.
func (p *TripPlanner) PlanTrip(ctx context.Context, req itinerary.TripRequest) (*Plan, error) {
	if err := req.Validate(p.opts.MaxDays); err != nil {
		return nil, err
	}

	prompt := itinerary.BuildPrompt(req)
	start := p.now()
	resp, err := p.provider.Generate(ctx, prompt, p.opts.Params)
	if err != nil {
		p.logger.ErrorContext(ctx, "model call failed", "provider", p.provider.Name(), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	p.logger.InfoContext(ctx, "model call finished",
		"provider", p.provider.Name(),
		"duration_ms", p.now().Sub(start).Milliseconds(),
	)

	raw := p.extractor.Extract(resp)
	segments, places := p.parser.Parse(ai.StripCodeFences(raw))
	days := p.displayDays(segments)

	est, err := p.pricing.Estimate(ctx, pricing.EstimateRequest{Days: req.Days, Places: len(places), Style: req.Style})
	if err != nil {
		return nil, err
	}

	summary, err := export.RenderSummary(export.SummaryData{
		Destination: req.Destination,
		Days:        req.Days,
		Budget:      req.Budget,
		Cost:        int(est.Total.Amount),
	})
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		ID:          uuid.NewString(),
		Request:     req,
		RawText:     raw,
		Days:        days,
		Places:      places,
		RouteKm:     math.Round(itinerary.RouteKm(places)*10) / 10,
		Cost:        est.Total,
		Breakdown:   est.Breakdown,
		SummaryHTML: summary,
		CreatedAt:   p.now().UTC(),
	}

	if p.route != nil {
		travel, err := p.route.GetTravelEstimate(ctx, req.Origin, req.Destination)
		if err != nil {
			p.logger.WarnContext(ctx, "travel estimate unavailable", "error", err)
		} else {
			plan.Travel = travel
		}
	}
	return plan, nil
}

// displayDays removes the POINTS block from the segments and drops any
// segment left empty.
func (p *TripPlanner) displayDays(segments []string) []string {
	days := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = itinerary.StripPoints(s, p.parser.Finder()); s != "" {
			days = append(days, s)
		}
	}
	return days
}
