package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/toll-distance-matrix/pkg/datastructure"
)

const (
	earthRadiusKM = 6371.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	longOne = degreeToRadians(longOne)
	latTwo = degreeToRadians(latTwo)
	longTwo = degreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// GreatCircleDistance returns the straight line distance between two coordinates in km.
func GreatCircleDistance(a, b datastructure.Coordinate) float64 {
	angle := s2.LatLngFromDegrees(a.GetLat(), a.GetLon()).Distance(s2.LatLngFromDegrees(b.GetLat(), b.GetLon()))
	return angle.Radians() * earthRadiusKM
}

// DetourRatio is the network distance divided by the straight line distance. 0 if undefined.
func DetourRatio(networkDistance, straightDistance float64) float64 {
	if straightDistance <= 0 || math.IsInf(networkDistance, 0) {
		return 0
	}
	return networkDistance / straightDistance
}
