package geom

import (
	"math"
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// SupportPlanes returns the planes of the convex hull of points, each facing
// away from the hull. Every plane touches at least three of the points and
// has all the others behind it. Coplanar triples yield a single plane.
//
// The search tests every triple against every point, which is fine for the
// vertex counts of a single brush. A point set without volume has no
// supporting plane with points strictly behind it, so the result is empty.
func SupportPlanes(points []v3.Vec) []Plane {
	var planes []Plane
	n := len(points)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				a := points[j].Sub(points[i])
				b := points[k].Sub(points[i])
				normal := a.Cross(b)
				l := normal.Length()
				if l <= ColinearEpsilon*a.Length()*b.Length() || l <= AlmostZero {
					continue
				}
				normal = normal.MulScalar(1 / l)
				p := Plane{Normal: normal, Distance: normal.Dot(points[i])}
				above, below := 0, 0
				for _, q := range points {
					switch p.PointStatus(q) {
					case PointAbove:
						above++
					case PointBelow:
						below++
					}
					if above > 0 && below > 0 {
						break
					}
				}
				switch {
				case above > 0 && below > 0:
					continue
				case above == 0 && below == 0:
					continue
				case above > 0:
					p = p.Flipped()
				}
				if !containsPlane(planes, p) {
					planes = append(planes, refit(p, points))
				}
			}
		}
	}
	return planes
}

// refit recomputes the plane from the centroid of the points lying on it,
// which spreads the rounding error of the defining triple.
func refit(p Plane, points []v3.Vec) Plane {
	var on []v3.Vec
	for _, q := range points {
		if p.PointStatus(q) == PointInside {
			on = append(on, q)
		}
	}
	return Plane{Normal: p.Normal, Distance: p.Normal.Dot(Centroid(on))}
}

func containsPlane(planes []Plane, p Plane) bool {
	for _, q := range planes {
		if q.Equals(p) {
			return true
		}
	}
	return false
}

// SortAround orders the indexed points counter-clockwise around the plane's
// normal, as seen from the front. The points are assumed to be in convex
// position on (or near) the plane.
func SortAround(p Plane, points []v3.Vec, indices []int) {
	if len(indices) < 3 {
		return
	}
	sel := make([]v3.Vec, len(indices))
	for i, idx := range indices {
		sel[i] = points[idx]
	}
	c := Centroid(sel)
	u, w := p.Basis()
	angle := make(map[int]float64, len(indices))
	for _, idx := range indices {
		d := points[idx].Sub(c)
		angle[idx] = math.Atan2(d.Dot(w), d.Dot(u))
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return angle[indices[i]] < angle[indices[j]]
	})
}

// UniquePoints returns points with near-duplicates removed, keeping the first
// of each cluster.
func UniquePoints(points []v3.Vec) []v3.Vec {
	out := make([]v3.Vec, 0, len(points))
outer:
	for _, p := range points {
		for _, q := range out {
			if PointsEqual(p, q) {
				continue outer
			}
		}
		out = append(out, p)
	}
	return out
}
