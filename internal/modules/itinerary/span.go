// README: Locators for the POINTS JSON object embedded in model text.
package itinerary

import (
	"regexp"
	"strings"
)

// PointsLabel is the literal token the prompt asks the model to put before
// the coordinates block.
const PointsLabel = "POINTS"

// SpanFinder locates the JSON object that follows the POINTS label.
// It returns the byte offsets [start, end) of the label through the end of
// the object, and the object itself. ok is false when nothing was found.
type SpanFinder interface {
	Find(text string) (start, end int, object string, ok bool)
}

// BalancedSpan returns the first complete JSON object after the label,
// counting braces outside string literals.
type BalancedSpan struct{}

var labelRe = regexp.MustCompile(`POINTS[:\s]*\{`)

func (BalancedSpan) Find(text string) (int, int, string, bool) {
	loc := labelRe.FindStringIndex(text)
	if loc == nil {
		return 0, 0, "", false
	}
	open := loc[1] - 1
	depth := 0
	inString := false
	escaped := false
	for i := open; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return loc[0], i + 1, text[open : i+1], true
			}
		}
	}
	return 0, 0, "", false
}

// GreedySpan matches from the label to the last closing brace in the text.
// It over-captures when several objects follow the label.
type GreedySpan struct{}

var greedyRe = regexp.MustCompile(`(?s)POINTS[:\s]*(\{.*\})`)

func (GreedySpan) Find(text string) (int, int, string, bool) {
	m := greedyRe.FindStringSubmatchIndex(text)
	if m == nil {
		return 0, 0, "", false
	}
	return m[0], m[1], text[m[2]:m[3]], true
}

// SpanFinderByName maps a matcher name to its finder. Unknown names get the
// balanced finder.
func SpanFinderByName(name string) SpanFinder {
	if strings.EqualFold(strings.TrimSpace(name), "greedy") {
		return GreedySpan{}
	}
	return BalancedSpan{}
}
