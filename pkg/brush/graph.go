package brush

import (
	"github.com/chazu/brushwork/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vertex is a corner of the polyhedron.
type Vertex struct {
	Position v3.Vec
	edges    []*Edge
}

// Edges returns the edges incident to v.
func (v *Vertex) Edges() []*Edge { return v.edges }

// ReferencesEdge reports whether e is incident to v.
func (v *Vertex) ReferencesEdge(e *Edge) bool {
	for _, o := range v.edges {
		if o == e {
			return true
		}
	}
	return false
}

// Edge joins two vertices. Right is the side whose counter-clockwise loop runs
// from Start to End, Left the side that runs from End to Start. An edge with
// a nil side is open.
type Edge struct {
	Start, End  *Vertex
	Left, Right *Side
}

// Segment returns the edge's endpoints.
func (e *Edge) Segment() geom.Edge3 {
	return geom.Edge3{Start: e.Start.Position, End: e.End.Position}
}

// Center returns the midpoint of the edge.
func (e *Edge) Center() v3.Vec { return e.Segment().Center() }

// Other returns the endpoint that is not v.
func (e *Edge) Other(v *Vertex) *Vertex {
	if e.Start == v {
		return e.End
	}
	return e.Start
}

// IsOpen reports whether the edge borders fewer than two sides.
func (e *Edge) IsOpen() bool { return e.Left == nil || e.Right == nil }

// ReferencesSide reports whether s borders e.
func (e *Edge) ReferencesSide(s *Side) bool { return e.Left == s || e.Right == s }

// StartFor returns the vertex the loop of s leaves e from.
func (e *Edge) StartFor(s *Side) *Vertex {
	if e.Left == s {
		return e.End
	}
	return e.Start
}

// EndFor returns the vertex the loop of s reaches along e.
func (e *Edge) EndFor(s *Side) *Vertex {
	if e.Left == s {
		return e.Start
	}
	return e.End
}

// Side is one planar face of the polyhedron: a counter-clockwise loop of
// vertices (seen from outside) and the edges between them. Edges[i] joins
// Vertices[i] and Vertices[i+1].
type Side struct {
	Plane    geom.Plane
	Face     *Face
	Vertices []*Vertex
	Edges    []*Edge
}

// Polygon returns the side's vertex positions in loop order.
func (s *Side) Polygon() geom.Polygon3 {
	out := make([]v3.Vec, len(s.Vertices))
	for i, v := range s.Vertices {
		out[i] = v.Position
	}
	return geom.Polygon3{Vertices: out}
}

// Center returns the centroid of the side's vertices.
func (s *Side) Center() v3.Vec { return s.Polygon().Centroid() }

// ReferencesVertex reports whether v is a corner of s.
func (s *Side) ReferencesVertex(v *Vertex) bool {
	for _, o := range s.Vertices {
		if o == v {
			return true
		}
	}
	return false
}
