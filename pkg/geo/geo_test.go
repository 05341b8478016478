package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	points := []Point{
		{Lat: 0, Lon: 0},
		{Lat: 5.6037, Lon: -0.1870},   // Accra
		{Lat: -33.8688, Lon: 151.2093}, // Sydney
	}

	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p.Lat, p.Lon, p.Lat, p.Lon))
	}
}

func TestDistanceSymmetry(t *testing.T) {
	accra := Point{Lat: 5.6037, Lon: -0.1870}
	kumasi := Point{Lat: 6.6885, Lon: -1.6244}

	ab := Distance(accra.Lat, accra.Lon, kumasi.Lat, kumasi.Lon)
	ba := Distance(kumasi.Lat, kumasi.Lon, accra.Lat, accra.Lon)

	assert.InDelta(t, ab, ba, 1e-9)
}

func TestDistanceKnownValue(t *testing.T) {
	// Accra to Kumasi is roughly 200 km as the crow flies
	d := Distance(5.6037, -0.1870, 6.6885, -1.6244)
	assert.InDelta(t, 200, d, 10)
}

func TestWithinRadiusFiltersAndSorts(t *testing.T) {
	type donor struct {
		name string
		lat  float64
		lon  float64
	}

	origin := Point{Lat: 5.6037, Lon: -0.1870}
	candidates := []donor{
		{name: "far", lat: 6.6885, lon: -1.6244},    // ~200 km
		{name: "near", lat: 5.6100, lon: -0.1900},   // <2 km
		{name: "mid", lat: 5.9000, lon: -0.2500},    // ~34 km
	}

	ranked := WithinRadius(origin, 50, candidates, func(d donor) (Point, bool) {
		return Point{Lat: d.lat, Lon: d.lon}, true
	})

	require.Len(t, ranked, 2)
	assert.Equal(t, "near", ranked[0].Value.name)
	assert.Equal(t, "mid", ranked[1].Value.name)
	assert.Less(t, ranked[0].DistanceKM, ranked[1].DistanceKM)
	for _, r := range ranked {
		assert.LessOrEqual(t, r.DistanceKM, 50.0)
	}
}

func TestWithinRadiusSkipsCandidatesWithoutCoordinates(t *testing.T) {
	origin := Point{Lat: 0, Lon: 0}
	candidates := []string{"located", "unlocated"}

	ranked := WithinRadius(origin, 100, candidates, func(s string) (Point, bool) {
		if s == "unlocated" {
			return Point{}, false
		}
		return Point{Lat: 0.1, Lon: 0.1}, true
	})

	require.Len(t, ranked, 1)
	assert.Equal(t, "located", ranked[0].Value)
}

func TestWithinRadiusEmptyInput(t *testing.T) {
	ranked := WithinRadius(Point{}, 50, nil, func(s string) (Point, bool) {
		return Point{}, true
	})
	assert.Empty(t, ranked)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, Round2(12.3456))
	assert.Equal(t, 0.0, Round2(0))
}
