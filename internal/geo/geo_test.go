package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinates_Valid(t *testing.T) {
	tests := []struct {
		name   string
		coords Coordinates
		want   bool
	}{
		{"campus point", Coordinates{Lat: 34.0689, Lng: -118.4452}, true},
		{"null island", Coordinates{Lat: 0, Lng: 0}, false},
		{"lat too high", Coordinates{Lat: 90.1, Lng: 0}, false},
		{"lat too low", Coordinates{Lat: -90.1, Lng: 0}, false},
		{"lng too high", Coordinates{Lat: 0, Lng: 180.1}, false},
		{"lng too low", Coordinates{Lat: 0, Lng: -180.1}, false},
		{"boundary", Coordinates{Lat: 90, Lng: -180}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coords.Valid())
		})
	}
}

func TestHaversine(t *testing.T) {
	ucla := Coordinates{Lat: 34.0689, Lng: -118.4452}
	berkeley := Coordinates{Lat: 37.8719, Lng: -122.2585}

	// UCLA to Berkeley is roughly 550 km as the crow flies.
	d := Haversine(ucla, berkeley)
	assert.InDelta(t, 550, d, 20)

	assert.Zero(t, Haversine(ucla, ucla))

	// Symmetry.
	assert.InDelta(t, d, Haversine(berkeley, ucla), 1e-9)
}

func TestHaversine_ShortDistance(t *testing.T) {
	// Two points on the UCLA campus, a few hundred metres apart.
	a := Coordinates{Lat: 34.0689, Lng: -118.4452}
	b := Coordinates{Lat: 34.0722, Lng: -118.4441}

	d := Haversine(a, b)
	assert.Greater(t, d, 0.2)
	assert.Less(t, d, 0.6)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0 min"},
		{1, "1 min"},
		{45, "45 min"},
		{59, "59 min"},
		{60, "1h"},
		{65, "1h 5m"},
		{120, "2h"},
		{135, "2h 15m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes))
	}
}
