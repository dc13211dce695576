package p5

import (
	"math"
	"math/rand/v2"
)

// Map re-maps value from the range [start1, stop1] to [start2, stop2].
// Values outside the source range extrapolate. An empty source range
// (start1 == stop1) divides by zero and yields ±Inf or NaN.
func Map(value, start1, stop1, start2, stop2 float64) float64 {
	return start2 + (stop2-start2)*((value-start1)/(stop1-start1))
}

// Constrain clamps value to [lo, hi].
func Constrain(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Dist returns the Euclidean distance between (x1, y1) and (x2, y2).
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 { return deg * math.Pi / 180 }

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// Random returns a uniform pseudo-random number in [lo, hi) from the
// process-wide generator.
func Random(lo, hi float64) float64 {
	return lo + (hi-lo)*rand.Float64()
}

// Random returns a uniform pseudo-random number in [lo, hi) from the
// canvas generator, which WithSeed makes reproducible.
func (c *Canvas) Random(lo, hi float64) float64 {
	return lo + (hi-lo)*c.rng.Float64()
}
