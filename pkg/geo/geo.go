// Package geo provides great-circle distance math for donor matching.
package geo

import (
	"math"
	"sort"
)

// earthRadiusKM is the mean Earth radius used by the haversine formula
const earthRadiusKM = 6371.0

// Point is a coordinate pair in decimal degrees
type Point struct {
	Lat float64
	Lon float64
}

// Distance returns the haversine great-circle distance in kilometers
// between two points
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	deltaPhi := radians(lat2 - lat1)
	deltaLambda := radians(lon2 - lon1)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

// Ranked pairs a candidate with its distance from the search origin
type Ranked[T any] struct {
	Value      T
	DistanceKM float64
}

// WithinRadius filters candidates to those at most radiusKM from origin and
// returns them ordered by ascending distance. The coords callback reports a
// candidate's position; candidates for which it returns false are skipped,
// so one malformed record never aborts a whole search.
func WithinRadius[T any](origin Point, radiusKM float64, candidates []T, coords func(T) (Point, bool)) []Ranked[T] {
	var result []Ranked[T]
	for _, candidate := range candidates {
		p, ok := coords(candidate)
		if !ok {
			continue
		}
		d := Distance(origin.Lat, origin.Lon, p.Lat, p.Lon)
		if d <= radiusKM {
			result = append(result, Ranked[T]{Value: candidate, DistanceKM: d})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKM < result[j].DistanceKM
	})

	return result
}

// Round2 rounds a distance to two decimal places for display. Sorting always
// uses the unrounded value.
func Round2(km float64) float64 {
	return math.Round(km*100) / 100
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
