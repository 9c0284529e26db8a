// README: Trip request and parsed itinerary value types.
package itinerary

import (
	"errors"
	"fmt"
	"strings"

	"studytrip/internal/types"
)

// ErrBadRequest is returned when a trip request fails validation.
var ErrBadRequest = errors.New("bad request")

// TravelStyle is one of the fixed categories that modulate the cost multiplier.
// The display labels double as wire values.
type TravelStyle string

const (
	StyleBackpacking   TravelStyle = "Backpacking"
	StyleComfortBudget TravelStyle = "Comfort budget"
	StyleSightseeing   TravelStyle = "Sightseeing"
	StyleNightlife     TravelStyle = "Nightlife"
)

// Styles lists every travel style in form order.
var Styles = []TravelStyle{StyleBackpacking, StyleComfortBudget, StyleSightseeing, StyleNightlife}

// ParseTravelStyle accepts a display label (any case) or its slug form
// ("comfort_budget", "comfort-budget").
func ParseTravelStyle(s string) (TravelStyle, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	for _, st := range Styles {
		if strings.ToLower(string(st)) == norm {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown travel style %q", ErrBadRequest, s)
}

// Valid reports whether s is one of the known styles.
func (s TravelStyle) Valid() bool {
	for _, st := range Styles {
		if s == st {
			return true
		}
	}
	return false
}

// TripRequest holds the form inputs for one generation. It is built once per
// request and never modified afterwards.
type TripRequest struct {
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Days        int         `json:"days"`
	Budget      int         `json:"budget"`
	Style       TravelStyle `json:"travel_style"`
	StudentCard bool        `json:"student_card"`
}

// Validate checks the request against the form constraints. maxDays <= 0
// disables the upper bound.
func (r TripRequest) Validate(maxDays int) error {
	switch {
	case strings.TrimSpace(r.Origin) == "":
		return fmt.Errorf("%w: origin is required", ErrBadRequest)
	case strings.TrimSpace(r.Destination) == "":
		return fmt.Errorf("%w: destination is required", ErrBadRequest)
	case r.Days < 1:
		return fmt.Errorf("%w: days must be at least 1", ErrBadRequest)
	case maxDays > 0 && r.Days > maxDays:
		return fmt.Errorf("%w: days must be at most %d", ErrBadRequest, maxDays)
	case r.Budget < 0:
		return fmt.Errorf("%w: budget must not be negative", ErrBadRequest)
	case !r.Style.Valid():
		return fmt.Errorf("%w: unknown travel style %q", ErrBadRequest, r.Style)
	}
	return nil
}

// Place is a named point taken from the POINTS block of a model reply.
type Place struct {
	Name        string      `json:"name"`
	Coordinates types.Point `json:"coordinates"`
	Notes       string      `json:"notes"`
}

// RouteKm is the straight-line distance visiting places in the given order.
func RouteKm(places []Place) float64 {
	var total float64
	for i := 1; i < len(places); i++ {
		total += places[i-1].Coordinates.DistanceKm(places[i].Coordinates)
	}
	return total
}
