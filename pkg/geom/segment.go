package geom

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Edge3 is a directed segment, used to name an edge by its endpoints.
type Edge3 struct {
	Start, End v3.Vec
}

// Center returns the midpoint of the segment.
func (e Edge3) Center() v3.Vec {
	return e.Start.Add(e.End).MulScalar(0.5)
}

// Translated returns the segment moved by delta.
func (e Edge3) Translated(delta v3.Vec) Edge3 {
	return Edge3{Start: e.Start.Add(delta), End: e.End.Add(delta)}
}

// Matches reports whether both segments join the same two points, in either
// direction.
func (e Edge3) Matches(o Edge3) bool {
	return (PointsEqual(e.Start, o.Start) && PointsEqual(e.End, o.End)) ||
		(PointsEqual(e.Start, o.End) && PointsEqual(e.End, o.Start))
}

func (e Edge3) String() string {
	return fmt.Sprintf("%v-%v", e.Start, e.End)
}

// Polygon3 is a planar vertex loop, used to name a face by its corners.
type Polygon3 struct {
	Vertices []v3.Vec
}

// Centroid returns the average of the polygon's vertices.
func (p Polygon3) Centroid() v3.Vec {
	return Centroid(p.Vertices)
}

// Translated returns a copy of the polygon moved by delta.
func (p Polygon3) Translated(delta v3.Vec) Polygon3 {
	out := make([]v3.Vec, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Add(delta)
	}
	return Polygon3{Vertices: out}
}

// Matches reports whether both polygons have the same corners, regardless of
// where the loop starts or which way it runs.
func (p Polygon3) Matches(o Polygon3) bool {
	if len(p.Vertices) != len(o.Vertices) {
		return false
	}
	used := make([]bool, len(o.Vertices))
outer:
	for _, a := range p.Vertices {
		for j, b := range o.Vertices {
			if !used[j] && PointsEqual(a, b) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// Centroid returns the average of points, or the zero vector for none.
func Centroid(points []v3.Vec) v3.Vec {
	var sum v3.Vec
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.MulScalar(1 / float64(len(points)))
}
