package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

const (
	// PointStatusEpsilon is the distance within which a point counts as lying
	// on a plane, and within which two points are the same point.
	PointStatusEpsilon = 1e-4

	// ColinearEpsilon bounds the sine of the angle under which two directions
	// are treated as parallel.
	ColinearEpsilon = 1e-6

	// AlmostZero is the threshold for lengths and determinants that must not
	// be divided by.
	AlmostZero = 1e-9

	// CorrectEpsilon is how far a computed coordinate may sit from an integer
	// and still be rounded onto it.
	CorrectEpsilon = 1e-7
)

// PointsEqual reports whether a and b are the same point within
// PointStatusEpsilon on every axis.
func PointsEqual(a, b v3.Vec) bool {
	return math.Abs(a.X-b.X) <= PointStatusEpsilon &&
		math.Abs(a.Y-b.Y) <= PointStatusEpsilon &&
		math.Abs(a.Z-b.Z) <= PointStatusEpsilon
}

// IsZero reports whether v has (almost) no length.
func IsZero(v v3.Vec) bool {
	return v.Length() <= AlmostZero
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func Normalize(v v3.Vec) v3.Vec {
	l := v.Length()
	if l <= AlmostZero {
		return v
	}
	return v.MulScalar(1 / l)
}

// Correct rounds coordinates that are within CorrectEpsilon of an integer.
// Intersection arithmetic leaves values like 0.99999999997 that would
// otherwise defeat exact comparisons of grid-aligned geometry.
func Correct(v v3.Vec) v3.Vec {
	return v3.Vec{X: correct(v.X), Y: correct(v.Y), Z: correct(v.Z)}
}

func correct(f float64) float64 {
	r := math.Round(f)
	if math.Abs(f-r) <= CorrectEpsilon {
		return r
	}
	return f
}
