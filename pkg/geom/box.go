package geom

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// CubeBounds returns the box centered on the origin with the given edge
// length.
func CubeBounds(size float64) sdf.Box3 {
	h := size / 2
	return sdf.Box3{Min: v3.Vec{X: -h, Y: -h, Z: -h}, Max: v3.Vec{X: h, Y: h, Z: h}}
}

// BoundsOf returns the tight box around points. An empty set yields the zero
// box.
func BoundsOf(points []v3.Vec) sdf.Box3 {
	if len(points) == 0 {
		return sdf.Box3{}
	}
	b := sdf.Box3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// BoxContains reports whether p lies within b, allowing PointStatusEpsilon
// of slack on every side.
func BoxContains(b sdf.Box3, p v3.Vec) bool {
	return p.X >= b.Min.X-PointStatusEpsilon && p.X <= b.Max.X+PointStatusEpsilon &&
		p.Y >= b.Min.Y-PointStatusEpsilon && p.Y <= b.Max.Y+PointStatusEpsilon &&
		p.Z >= b.Min.Z-PointStatusEpsilon && p.Z <= b.Max.Z+PointStatusEpsilon
}

// BoxContainsAll reports whether every point lies within b.
func BoxContainsAll(b sdf.Box3, points []v3.Vec) bool {
	for _, p := range points {
		if !BoxContains(b, p) {
			return false
		}
	}
	return true
}

// BoxEquals compares two boxes corner by corner within PointStatusEpsilon.
func BoxEquals(a, b sdf.Box3) bool {
	return PointsEqual(a.Min, b.Min) && PointsEqual(a.Max, b.Max)
}

// BoxIsValid reports whether b has positive extent on every axis.
func BoxIsValid(b sdf.Box3) bool {
	return b.Max.X > b.Min.X && b.Max.Y > b.Min.Y && b.Max.Z > b.Min.Z
}

// Enlarged returns b grown by d on every side.
func Enlarged(b sdf.Box3, d float64) sdf.Box3 {
	g := v3.Vec{X: d, Y: d, Z: d}
	return sdf.Box3{Min: b.Min.Sub(g), Max: b.Max.Add(g)}
}

// BoxCorners returns the eight corners of b. Corner i takes Max on the X
// axis when bit 0 is set, on Y for bit 1 and on Z for bit 2.
func BoxCorners(b sdf.Box3) [8]v3.Vec {
	var out [8]v3.Vec
	for i := range out {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		out[i] = c
	}
	return out
}

// MinExtent returns the smallest edge length of b.
func MinExtent(b sdf.Box3) float64 {
	return math.Min(b.Max.X-b.Min.X, math.Min(b.Max.Y-b.Min.Y, b.Max.Z-b.Min.Z))
}
