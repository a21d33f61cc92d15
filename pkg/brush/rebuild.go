package brush

import (
	"fmt"

	"github.com/chazu/brushwork/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// rebuild derives the convex solid spanned by points. mapped holds, for every
// vertex of g in order, where that vertex went; it decides which faces carry
// over. Sides whose plane matches a side of g keep that side's plane and
// face. Other sides get a copy of the face of the side of g that has most of
// its mapped vertices on the new plane.
func (g *Geometry) rebuild(points, mapped []v3.Vec) (*Geometry, error) {
	planes := geom.SupportPlanes(points)
	if len(planes) < 4 {
		return nil, fmt.Errorf("%w: points span no volume", ErrInvalidEdit)
	}

	s := boxSolid(geom.Enlarged(geom.BoundsOf(points), 1))
	used := make(map[*Face]bool)
	for _, p := range planes {
		plane, face := g.carryOver(p, mapped, used)
		next, code := s.clip(plane, face)
		switch code {
		case BrushNull:
			return nil, fmt.Errorf("%w: hull plane %s empties the solid", ErrKernelFault, plane)
		case BrushSplit:
			s = next
		}
	}
	for _, side := range s.sides {
		if !hasPlane(planes, side.plane) {
			return nil, fmt.Errorf("%w: side %s is not on the hull", ErrKernelFault, side.plane)
		}
	}
	s.weld(points)
	return s.link()
}

// carryOver picks the plane and face for a hull plane p.
func (g *Geometry) carryOver(p geom.Plane, mapped []v3.Vec, used map[*Face]bool) (geom.Plane, *Face) {
	for _, side := range g.Sides {
		if side.Plane.Equals(p) && (side.Face == nil || !used[side.Face]) {
			if side.Face != nil {
				used[side.Face] = true
			}
			return side.Plane, side.Face
		}
	}
	tmpl := g.template(p, mapped)
	if tmpl == nil || tmpl.Face == nil {
		return p, nil
	}
	return p, NewFaceFromPlane(p, tmpl.Face.Attributes)
}

// template returns the side of g with the most mapped vertices on p, ties
// going to the side whose normal is closest to p's.
func (g *Geometry) template(p geom.Plane, mapped []v3.Vec) *Side {
	index := make(map[*Vertex]int, len(g.Vertices))
	for i, v := range g.Vertices {
		index[v] = i
	}
	var best *Side
	bestCount, bestDot := -1, 0.0
	for _, side := range g.Sides {
		count := 0
		for _, v := range side.Vertices {
			if p.PointStatus(mapped[index[v]]) == geom.PointInside {
				count++
			}
		}
		dot := side.Plane.Normal.Dot(p.Normal)
		if count > bestCount || (count == bestCount && dot > bestDot) {
			best, bestCount, bestDot = side, count, dot
		}
	}
	return best
}

func hasPlane(planes []geom.Plane, p geom.Plane) bool {
	for _, q := range planes {
		if q.Equals(p) {
			return true
		}
	}
	return false
}

// weld moves every point of s that matches a target onto the target exactly.
func (s solid) weld(targets []v3.Vec) {
	for i, p := range s.points {
		for _, t := range targets {
			if geom.PointsEqual(p, t) {
				s.points[i] = t
				break
			}
		}
	}
}

// edit is a candidate replacement for a geometry, checked before it is
// committed.
type edit struct {
	old    *Geometry
	next   *Geometry
	points []v3.Vec
	mapped []v3.Vec
	want   int
}

// derive rebuilds g from its vertices moved to mapped plus extra points.
func (g *Geometry) derive(mapped []v3.Vec, extra ...v3.Vec) (*edit, error) {
	points := geom.UniquePoints(append(append([]v3.Vec(nil), mapped...), extra...))
	ng, err := g.rebuild(points, mapped)
	if err != nil {
		return nil, err
	}
	return &edit{old: g, next: ng, points: points, mapped: mapped, want: len(mapped) + len(extra)}, nil
}

// keepsAll fails when a point did not become a vertex of its own.
func (e *edit) keepsAll() error {
	if len(e.points) != e.want {
		return fmt.Errorf("%w: %d points collapse into %d", ErrInvalidEdit, e.want, len(e.points))
	}
	if len(e.next.Vertices) != len(e.points) {
		return fmt.Errorf("%w: %d of %d points are vertices", ErrInvalidEdit, len(e.next.Vertices), len(e.points))
	}
	for _, p := range e.points {
		if e.next.FindVertex(p) == nil {
			return fmt.Errorf("%w: point %v would not be a vertex", ErrInvalidEdit, p)
		}
	}
	return nil
}

// within fails when a vertex leaves worldBounds.
func (e *edit) within(worldBounds sdf.Box3) error {
	for _, v := range e.next.Vertices {
		if !geom.BoxContains(worldBounds, v.Position) {
			return fmt.Errorf("%w: vertex %v leaves the world bounds", ErrInvalidEdit, v.Position)
		}
	}
	return nil
}

// sound fails when the result is turned inside out or fails the sanity
// check. A side of the old geometry whose mapped corners still form a side
// must keep facing the same way.
func (e *edit) sound() error {
	index := make(map[*Vertex]int, len(e.old.Vertices))
	for i, v := range e.old.Vertices {
		index[v] = i
	}
	for _, side := range e.old.Sides {
		poly := geom.Polygon3{Vertices: make([]v3.Vec, len(side.Vertices))}
		for i, v := range side.Vertices {
			poly.Vertices[i] = e.mapped[index[v]]
		}
		ns := e.next.FindSide(poly)
		if ns != nil && ns.Plane.Normal.Dot(side.Plane.Normal) <= 0 {
			return fmt.Errorf("%w: side %s would be inverted", ErrInvalidEdit, side.Plane)
		}
	}
	if err := e.next.SanityCheck(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEdit, err)
	}
	return nil
}

// welded fails when the result has a vertex that is not one of the points.
func (e *edit) welded() error {
	for _, v := range e.next.Vertices {
		found := false
		for _, p := range e.points {
			if v.Position == p {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: stray vertex %v", ErrKernelFault, v.Position)
		}
	}
	return nil
}
