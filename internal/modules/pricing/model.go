// README: Cost formula constants and estimate request/result types.
package pricing

import (
	"studytrip/internal/modules/itinerary"
	"studytrip/internal/types"
)

const (
	// PerDayINR is the base spend per travel day.
	PerDayINR = 500
	// PerPlaceINR is added for every mapped place.
	PerPlaceINR = 100
)

// styleMultiplier scales the per-day base. Styles not listed use 1.0.
var styleMultiplier = map[itinerary.TravelStyle]float64{
	itinerary.StyleComfortBudget: 1.6,
	itinerary.StyleBackpacking:   0.7,
}

// Multiplier returns the base multiplier for style.
func Multiplier(style itinerary.TravelStyle) float64 {
	if m, ok := styleMultiplier[style]; ok {
		return m
	}
	return 1.0
}

type EstimateRequest struct {
	Days   int
	Places int
	Style  itinerary.TravelStyle
}

type EstimateResult struct {
	Total     types.Money
	Breakdown map[string]int64
}
