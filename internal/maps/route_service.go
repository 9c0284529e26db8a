package maps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// ErrNoRoute is returned when Directions finds no leg between the endpoints.
var ErrNoRoute = errors.New("no route found")

// TravelEstimate is the driving time and distance between origin and destination.
type TravelEstimate struct {
	Duration       time.Duration `json:"duration"`
	DurationText   string        `json:"duration_text"`
	DistanceText   string        `json:"distance_text"`
	DistanceMeters int           `json:"distance_meters"`
}

// RouteService handles interactions with the Google Directions API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API Key.
// Extra options (such as maps.WithBaseURL) are passed to the client.
func NewRouteService(apiKey string, opts ...maps.ClientOption) (*RouteService, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("maps: create client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// GetTravelEstimate returns the travel time and distance from origin to destination.
// It assumes driving mode.
func (s *RouteService) GetTravelEstimate(ctx context.Context, origin, destination string) (*TravelEstimate, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Language:    "en",
		Region:      "in",
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("maps: directions: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, ErrNoRoute
	}

	leg := routes[0].Legs[0]
	return &TravelEstimate{
		Duration:       leg.Duration,
		DurationText:   leg.Duration.Round(time.Minute).String(),
		DistanceText:   leg.Distance.HumanReadable,
		DistanceMeters: leg.Distance.Meters,
	}, nil
}
