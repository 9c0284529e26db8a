package maps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"

	"googlemaps.github.io/maps"

	"studytrip/internal/modules/itinerary"
)

// ErrNoPlaces is returned when there is nothing to put on the map.
var ErrNoPlaces = errors.New("no places to map")

// maxMarkers is the number of distinct single-character labels available.
const maxMarkers = 26

// StaticMapService renders itinerary places as a PNG via the Static Maps API.
type StaticMapService struct {
	client *maps.Client
	size   string
}

func NewStaticMapService(apiKey string, opts ...maps.ClientOption) (*StaticMapService, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("maps: create client: %w", err)
	}
	return &StaticMapService{client: client, size: "640x400"}, nil
}

// Render returns a PNG with one labelled marker per place (A, B, C, ...).
// Places past the 26th are dropped.
func (s *StaticMapService) Render(ctx context.Context, places []itinerary.Place) ([]byte, error) {
	if len(places) == 0 {
		return nil, ErrNoPlaces
	}
	if len(places) > maxMarkers {
		places = places[:maxMarkers]
	}

	markers := make([]maps.Marker, 0, len(places))
	for i, p := range places {
		markers = append(markers, maps.Marker{
			Color:    "red",
			Label:    string(rune('A' + i)),
			Location: []maps.LatLng{{Lat: p.Coordinates.Lat, Lng: p.Coordinates.Lng}},
		})
	}

	img, err := s.client.StaticMap(ctx, &maps.StaticMapRequest{
		Size:    s.size,
		Markers: markers,
	})
	if err != nil {
		return nil, fmt.Errorf("maps: static map: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("maps: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
