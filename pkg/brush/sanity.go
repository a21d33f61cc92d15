package brush

import (
	"fmt"
	"strings"

	"github.com/chazu/brushwork/pkg/geom"
)

// SanityError lists every invariant a geometry breaks.
type SanityError struct {
	Findings []string
}

func (e *SanityError) Error() string {
	return fmt.Sprintf("brush: geometry is unsound: %s", strings.Join(e.Findings, "; "))
}

func (e *SanityError) addf(format string, args ...any) {
	e.Findings = append(e.Findings, fmt.Sprintf(format, args...))
}

// IsClosed reports whether every edge borders exactly two sides.
func (g *Geometry) IsClosed() bool {
	if len(g.Edges) == 0 {
		return false
	}
	for _, e := range g.Edges {
		if e.IsOpen() || e.Left == e.Right {
			return false
		}
	}
	return true
}

// SanityCheck verifies the geometry describes a closed convex polyhedron whose
// graph is consistent. It returns nil or a *SanityError.
func (g *Geometry) SanityCheck() error {
	se := &SanityError{}

	vertices := make(map[*Vertex]bool, len(g.Vertices))
	for _, v := range g.Vertices {
		vertices[v] = true
	}
	sides := make(map[*Side]bool, len(g.Sides))
	for _, s := range g.Sides {
		sides[s] = true
	}

	for _, e := range g.Edges {
		switch {
		case e.IsOpen():
			se.addf("edge %s is open", e.Segment())
		case e.Left == e.Right:
			se.addf("edge %s borders one side twice", e.Segment())
		case !sides[e.Left] || !sides[e.Right]:
			se.addf("edge %s borders a foreign side", e.Segment())
		}
		if e.Start == e.End {
			se.addf("edge %s is a loop", e.Segment())
		}
		if !vertices[e.Start] || !vertices[e.End] {
			se.addf("edge %s ends at a foreign vertex", e.Segment())
		} else if !e.Start.ReferencesEdge(e) || !e.End.ReferencesEdge(e) {
			se.addf("edge %s is missing from its vertices", e.Segment())
		}
		for _, s := range []*Side{e.Left, e.Right} {
			if s != nil && !sideHasEdge(s, e) {
				se.addf("edge %s is missing from side %s", e.Segment(), s.Plane)
			}
		}
	}

	for _, v := range g.Vertices {
		if len(v.edges) < 3 {
			se.addf("vertex %v has %d edges", v.Position, len(v.edges))
		}
	}
	for i, v := range g.Vertices {
		for _, o := range g.Vertices[i+1:] {
			if geom.PointsEqual(v.Position, o.Position) {
				se.addf("vertices coincide at %v", v.Position)
			}
		}
	}

	for i, s := range g.Sides {
		checkSide(se, s)
		for _, v := range g.Vertices {
			if s.Plane.PointStatus(v.Position) == geom.PointAbove {
				se.addf("vertex %v is in front of side %s", v.Position, s.Plane)
			}
		}
		for _, o := range g.Sides[i+1:] {
			if s.Plane.Equals(o.Plane) {
				se.addf("sides share plane %s", s.Plane)
			}
		}
	}

	if chi := len(g.Vertices) - len(g.Edges) + len(g.Sides); chi != 2 {
		se.addf("euler characteristic is %d", chi)
	}
	if len(g.Vertices) > 0 && !geom.BoxEquals(g.Bounds, geom.BoundsOf(g.Positions())) {
		se.addf("bounds %v are stale", g.Bounds)
	}

	if len(se.Findings) > 0 {
		return se
	}
	return nil
}

// checkSide verifies one side's loop: linked edges, corners on the plane and
// a strictly convex turn at every corner.
func checkSide(se *SanityError, s *Side) {
	n := len(s.Vertices)
	if n < 3 || len(s.Edges) != n {
		se.addf("side %s has %d vertices and %d edges", s.Plane, n, len(s.Edges))
		return
	}
	if s.Face != nil && !s.Face.Plane().Equals(s.Plane) {
		se.addf("side %s is bound to face %s", s.Plane, s.Face)
	}
	for i, v := range s.Vertices {
		next := s.Vertices[(i+1)%n]
		e := s.Edges[i]
		if e.StartFor(s) != v || e.EndFor(s) != next {
			se.addf("side %s edge %d does not join its corners", s.Plane, i)
		}
		if s.Plane.PointStatus(v.Position) != geom.PointInside {
			se.addf("vertex %v is off side %s", v.Position, s.Plane)
		}
		a := v.Position.Sub(s.Vertices[(i+n-1)%n].Position)
		b := next.Position.Sub(v.Position)
		turn := a.Cross(b).Dot(s.Plane.Normal)
		if turn <= geom.ColinearEpsilon*a.Length()*b.Length() {
			se.addf("side %s is not convex at %v", s.Plane, v.Position)
		}
	}
}

func sideHasEdge(s *Side, e *Edge) bool {
	for _, o := range s.Edges {
		if o == e {
			return true
		}
	}
	return false
}
