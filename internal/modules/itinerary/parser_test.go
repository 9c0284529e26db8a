package itinerary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrip/internal/types"
)

func TestParse_EmptyText(t *testing.T) {
	days, places := NewParser(nil).Parse("")
	assert.Empty(t, days)
	assert.Empty(t, places)
}

func TestParse_NoDayMarkers(t *testing.T) {
	days, places := NewParser(nil).Parse("   Just wander around the beach.\n")
	require.Len(t, days, 1)
	assert.Equal(t, "Just wander around the beach.", days[0])
	assert.Empty(t, places)
}

func TestParse_TwoDaysInOrder(t *testing.T) {
	text := "Intro line\nDay 1: Visit Baga beach.\nDay 2 Old Goa churches."
	days, _ := NewParser(nil).Parse(text)
	require.Equal(t, []string{"Intro line", "Visit Baga beach.", "Old Goa churches."}, days)
	for _, d := range days {
		assert.NotRegexp(t, `Day\s+\d+`, d)
	}
}

func TestParse_LowercaseMarkerNotSplit(t *testing.T) {
	days, _ := NewParser(nil).Parse("day 1: a\nday 2: b")
	assert.Len(t, days, 1)
}

func TestParse_SkipsPointMissingLat(t *testing.T) {
	text := `Day 1: beach
POINTS {"points": [{"name":"A","lat":1.0,"lon":2.0},{"name":"B","lon":3.0}]}`
	_, places := NewParser(nil).Parse(text)
	require.Len(t, places, 1)
	assert.Equal(t, "A", places[0].Name)
	assert.Equal(t, 1.0, places[0].Coordinates.Lat)
	assert.Equal(t, 2.0, places[0].Coordinates.Lng)
	assert.Equal(t, "", places[0].Notes)
}

func TestParse_PointEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  []string
	}{
		{"missing name", `{"points":[{"lat":1,"lon":2},{"name":"X","lat":1,"lon":2}]}`, []string{"X"}},
		{"string coordinates", `{"points":[{"name":"S","lat":"15.5","lon":" 73.8 "}]}`, []string{"S"}},
		{"bad string coordinate", `{"points":[{"name":"S","lat":"north","lon":73.8}]}`, nil},
		{"null lat", `{"points":[{"name":"N","lat":null,"lon":2}]}`, nil},
		{"element not an object", `{"points":[42,{"name":"Y","lat":1,"lon":2}]}`, []string{"Y"}},
		{"points not an array", `{"points":{"name":"Z"}}`, nil},
		{"no points key", `{"places":[{"name":"Q","lat":1,"lon":2}]}`, nil},
		{"invalid json", `{"points":[{"name":"A","lat":1,}`, nil},
		{"non-finite string coordinates", `{"points":[{"name":"A","lat":"NaN","lon":"Inf"},{"name":"B","lat":1,"lon":2}]}`, []string{"B"}},
		{"infinity spelled out", `{"points":[{"name":"C","lat":"-Infinity","lon":2}]}`, nil},
		{"numeric note ignored", `{"points":[{"name":"K","lat":1,"lon":2,"note":7}]}`, []string{"K"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, places := NewParser(nil).Parse("Day 1: x\nPOINTS: " + tt.block)
			var names []string
			for _, p := range places {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestParse_SchemaRoundTrip(t *testing.T) {
	type point struct {
		Name string  `json:"name"`
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
		Note string  `json:"note,omitempty"`
	}
	in := []point{
		{Name: "Calangute Beach", Lat: 15.5439, Lon: 73.7553, Note: "sunset"},
		{Name: "Fort Aguada", Lat: 15.4920, Lon: 73.7732},
	}
	raw, err := json.Marshal(map[string]any{"points": in})
	require.NoError(t, err)

	for _, finder := range []SpanFinder{BalancedSpan{}, GreedySpan{}} {
		_, places := NewParser(finder).Parse("Day 1: beaches\n\nPOINTS:\n" + string(raw))
		require.Len(t, places, len(in))
		for i, p := range places {
			assert.Equal(t, in[i].Name, p.Name)
			assert.Equal(t, in[i].Lat, p.Coordinates.Lat)
			assert.Equal(t, in[i].Lon, p.Coordinates.Lng)
			assert.Equal(t, in[i].Note, p.Notes)
		}
	}
}

func TestStripPoints(t *testing.T) {
	seg := "Eat at a thali place.\nPOINTS: {\"points\": []}\n"
	assert.Equal(t, "Eat at a thali place.", StripPoints(seg, nil))
	assert.Equal(t, "", StripPoints(`POINTS {"points":[]}`, BalancedSpan{}))
	assert.Equal(t, "no block", StripPoints("no block", nil))
}

func TestRouteKm(t *testing.T) {
	assert.Zero(t, RouteKm(nil))
	assert.Zero(t, RouteKm([]Place{{Name: "Baga"}}))

	places := []Place{
		{Name: "Equator", Coordinates: types.Point{Lat: 0, Lng: 0}},
		{Name: "North", Coordinates: types.Point{Lat: 1, Lng: 0}},
		{Name: "Back", Coordinates: types.Point{Lat: 0, Lng: 0}},
	}
	assert.InDelta(t, 222.39, RouteKm(places), 0.05)
}
