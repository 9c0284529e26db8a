// README: Places lookup for budget stays and food near a destination.
package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Suggestion is a simplified Places text search result.
type Suggestion struct {
	Name             string      `json:"name"`
	Address          string      `json:"address"`
	Rating           float32     `json:"rating"`
	PriceLevel       int         `json:"price_level"`
	PlaceID          string      `json:"place_id"`
	UserRatingsTotal int         `json:"user_ratings_total"`
	Location         maps.LatLng `json:"location"`
}

// SearchOptions refines a budget search. The zero value keeps the defaults.
type SearchOptions struct {
	// MaxPriceLevel drops results priced above it (0-4). Nil means 2.
	MaxPriceLevel *int
	// MinRating drops results rated below it. Zero means 3.5.
	MinRating float32
	// Limit caps the number of results. Zero means 5.
	Limit int
	// ExcludeKeywords disqualify any result whose name contains them.
	ExcludeKeywords []string
}

// searchLimits is SearchOptions with every default applied.
type searchLimits struct {
	maxPriceLevel   int
	minRating       float32
	limit           int
	excludeKeywords []string
}

func (o *SearchOptions) withDefaults() searchLimits {
	out := searchLimits{maxPriceLevel: 2, minRating: 3.5, limit: 5}
	if o == nil {
		return out
	}
	if o.MaxPriceLevel != nil {
		out.maxPriceLevel = *o.MaxPriceLevel
	}
	if o.MinRating > 0 {
		out.minRating = o.MinRating
	}
	if o.Limit > 0 {
		out.limit = o.Limit
	}
	out.excludeKeywords = o.ExcludeKeywords
	return out
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string, opts ...maps.ClientOption) (*PlacesService, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("maps: create client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchBudget searches for query near destination and keeps the cheap,
// well-rated results. Results with no price level are kept.
func (s *PlacesService) SearchBudget(ctx context.Context, destination, query string, opts *SearchOptions) ([]Suggestion, error) {
	o := opts.withDefaults()

	fullQuery := strings.TrimSpace(query)
	if destination = strings.TrimSpace(destination); destination != "" {
		fullQuery = fmt.Sprintf("%s near %s", fullQuery, destination)
	}

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    fullQuery,
		Language: "en",
		Region:   "in",
	})
	if err != nil {
		return nil, fmt.Errorf("maps: text search: %w", err)
	}

	var results []Suggestion
	for _, r := range resp.Results {
		if r.Rating < o.minRating || r.PriceLevel > o.maxPriceLevel {
			continue
		}
		if containsAny(r.Name, o.excludeKeywords) {
			continue
		}
		results = append(results, Suggestion{
			Name:             r.Name,
			Address:          r.FormattedAddress,
			Rating:           r.Rating,
			PriceLevel:       r.PriceLevel,
			PlaceID:          r.PlaceID,
			UserRatingsTotal: r.UserRatingsTotal,
			Location:         r.Geometry.Location,
		})
		if len(results) >= o.limit {
			break
		}
	}
	return results, nil
}

func containsAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
