// Package freight converts the distance between two coordinates into a
// delivery fee.
package freight

import (
	"math"

	"sarmelo-delivery/internal/geo"
	"sarmelo-delivery/internal/money"
)

const earthRadiusKm = 6371

// Quote is a priced delivery distance. Km is rounded to 1 decimal place for
// display; Fee is computed from the unrounded distance.
type Quote struct {
	Km  float64
	Fee float64
}

// Calculator prices deliveries as a base fee plus a per-kilometre rate.
type Calculator struct {
	baseFee   float64
	perKmRate float64
}

// NewCalculator creates a freight calculator.
func NewCalculator(baseFee, perKmRate float64) *Calculator {
	return &Calculator{baseFee: baseFee, perKmRate: perKmRate}
}

// Quote computes the fee for a delivery between two points.
func (c *Calculator) Quote(a, b geo.Point) Quote {
	km := HaversineKm(a, b)
	return Quote{
		Km:  money.Round1(km),
		Fee: money.Round2(c.baseFee + c.perKmRate*km),
	}
}

// HaversineKm returns the great-circle distance between two points in
// kilometres. It is symmetric in its arguments and zero for identical points.
func HaversineKm(a, b geo.Point) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
