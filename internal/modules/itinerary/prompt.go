// README: Renders a trip request into the generation prompt.
package itinerary

import (
	"fmt"
	"strings"
)

// PointsSchema is the shape the model is asked to emit after the POINTS label.
const PointsSchema = `{"points": [{"name": "string", "lat": number, "lon": number, "note": "string (optional)"}]}`

// BuildPrompt renders req into the generation prompt. Same request, same prompt.
func BuildPrompt(req TripRequest) string {
	var b strings.Builder
	b.WriteString("You are a helpful travel planner for budget-conscious students. ")
	fmt.Fprintf(&b, "Provide a detailed %d-day itinerary from %s to %s. ", req.Days, req.Origin, req.Destination)
	fmt.Fprintf(&b, "Keep total estimated cost under INR %d. ", req.Budget)
	fmt.Fprintf(&b, "Travel style: %s.\n", req.Style)
	b.WriteString("Start each day with the marker \"Day N:\" (for example \"Day 1:\"). ")
	b.WriteString("For each day list the places to visit with approximate times, one cheap transport suggestion, ")
	b.WriteString("one recommended budget meal, and one hostel or cheap stay option.\n")
	if req.StudentCard {
		b.WriteString("The traveller has a student card: include any likely student discounts or passes available in the city.\n")
	}
	fmt.Fprintf(&b, "At the end, add a block labelled %s followed by a JSON object listing coordinates for the main places, exactly in this format:\n", PointsLabel)
	fmt.Fprintf(&b, "%s: %s\n", PointsLabel, PointsSchema)
	b.WriteString("Be concise but actionable.\n")
	return b.String()
}
