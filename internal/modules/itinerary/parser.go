// README: Splits model text into day segments and reads the POINTS block.
package itinerary

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"studytrip/internal/types"
)

var dayMarkerRe = regexp.MustCompile(`Day\s+\d+:?`)

// Parser turns raw model text into day segments and places. It never fails;
// unstructured text degrades to one segment and no places.
type Parser struct {
	finder SpanFinder
}

// NewParser returns a Parser using finder, or BalancedSpan when finder is nil.
func NewParser(finder SpanFinder) *Parser {
	if finder == nil {
		finder = BalancedSpan{}
	}
	return &Parser{finder: finder}
}

// Finder exposes the span finder so callers can strip the same span.
func (p *Parser) Finder() SpanFinder {
	return p.finder
}

// Parse returns the day segments in document order and the valid places.
func (p *Parser) Parse(text string) ([]string, []Place) {
	return SplitDays(text), p.Places(text)
}

// SplitDays splits text on "Day N" markers, dropping the markers and any
// blank pieces.
func SplitDays(text string) []string {
	pieces := dayMarkerRe.Split(text, -1)
	days := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if s := strings.TrimSpace(piece); s != "" {
			days = append(days, s)
		}
	}
	return days
}

// Places decodes the POINTS object. A malformed element is skipped on its
// own; a malformed object yields no places.
func (p *Parser) Places(text string) []Place {
	_, _, object, ok := p.finder.Find(text)
	if !ok {
		return []Place{}
	}
	var block struct {
		Points []json.RawMessage `json:"points"`
	}
	if err := json.Unmarshal([]byte(object), &block); err != nil {
		return []Place{}
	}
	places := make([]Place, 0, len(block.Points))
	for _, raw := range block.Points {
		if pl, ok := decodePoint(raw); ok {
			places = append(places, pl)
		}
	}
	return places
}

type rawPoint struct {
	Name *string         `json:"name"`
	Lat  json.RawMessage `json:"lat"`
	Lon  json.RawMessage `json:"lon"`
	Note json.RawMessage `json:"note"`
}

func decodePoint(raw json.RawMessage) (Place, bool) {
	var rp rawPoint
	if err := json.Unmarshal(raw, &rp); err != nil {
		return Place{}, false
	}
	if rp.Name == nil {
		return Place{}, false
	}
	lat, ok := decodeCoordinate(rp.Lat)
	if !ok {
		return Place{}, false
	}
	lon, ok := decodeCoordinate(rp.Lon)
	if !ok {
		return Place{}, false
	}
	pl := Place{Name: *rp.Name, Coordinates: types.Point{Lat: lat, Lng: lon}}
	// A non-string note is ignored rather than dropping the point.
	_ = json.Unmarshal(rp.Note, &pl.Notes)
	return pl, true
}

// decodeCoordinate accepts a JSON number or a string holding one. NaN and
// infinities are rejected; they cannot be encoded back to JSON.
func decodeCoordinate(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, finite(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, finite(f)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// StripPoints removes the POINTS label and its object from segment.
func StripPoints(segment string, finder SpanFinder) string {
	if finder == nil {
		finder = BalancedSpan{}
	}
	start, end, _, ok := finder.Find(segment)
	if !ok {
		return segment
	}
	return strings.TrimSpace(segment[:start] + segment[end:])
}
