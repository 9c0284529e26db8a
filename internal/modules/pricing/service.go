// README: Pricing service computes the trip cost estimate.
package pricing

import (
	"context"

	"studytrip/internal/modules/itinerary"
	"studytrip/internal/types"
)

// Estimate returns the INR cost for a trip: 500 per day scaled by the style
// multiplier, plus 100 per place, truncated toward zero. days is not
// validated.
func Estimate(places, days int, style itinerary.TravelStyle) int {
	base := float64(PerDayINR*days) * Multiplier(style)
	return int(base + float64(PerPlaceINR*places))
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Estimate wraps the package-level formula and reports its parts.
func (s *Service) Estimate(ctx context.Context, req EstimateRequest) (EstimateResult, error) {
	total := Estimate(req.Places, req.Days, req.Style)
	places := int64(PerPlaceINR * req.Places)
	return EstimateResult{
		Total: types.INR(int64(total)),
		Breakdown: map[string]int64{
			"base":   int64(total) - places,
			"places": places,
		},
	}, nil
}
