package brush

import (
	"fmt"

	"github.com/chazu/brushwork/pkg/geom"
	"github.com/chazu/brushwork/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface checks.
var _ kernel.Polyhedron = (*Geometry)(nil)
var _ kernel.HalfSpaces = (*Geometry)(nil)

// Geometry is the boundary graph of one convex solid. It owns its vertices,
// edges and sides exclusively; the Faces its sides point to belong to the
// caller.
type Geometry struct {
	Vertices []*Vertex
	Edges    []*Edge
	Sides    []*Side
	Bounds   sdf.Box3
}

// NewGeometry returns the box of worldBounds. Its six sides are unbound: they
// carry no Face until a face with the same plane is added.
func NewGeometry(worldBounds sdf.Box3) *Geometry {
	g, err := boxSolid(worldBounds).link()
	if err != nil {
		panic(fmt.Sprintf("brush: linking world box: %v", err))
	}
	return g
}

// Clone returns a deep copy of the graph. The copy's sides point to the same
// Faces, but the Faces keep pointing to the original's sides.
func (g *Geometry) Clone() *Geometry {
	vs := make(map[*Vertex]*Vertex, len(g.Vertices))
	ss := make(map[*Side]*Side, len(g.Sides))
	out := &Geometry{Bounds: g.Bounds}
	for _, v := range g.Vertices {
		nv := &Vertex{Position: v.Position}
		vs[v] = nv
		out.Vertices = append(out.Vertices, nv)
	}
	for _, s := range g.Sides {
		ns := &Side{Plane: s.Plane, Face: s.Face}
		ss[s] = ns
		out.Sides = append(out.Sides, ns)
	}
	es := make(map[*Edge]*Edge, len(g.Edges))
	for _, e := range g.Edges {
		ne := &Edge{Start: vs[e.Start], End: vs[e.End], Left: ss[e.Left], Right: ss[e.Right]}
		es[e] = ne
		out.Edges = append(out.Edges, ne)
	}
	for _, v := range g.Vertices {
		nv := vs[v]
		for _, e := range v.edges {
			nv.edges = append(nv.edges, es[e])
		}
	}
	for _, s := range g.Sides {
		ns := ss[s]
		for _, v := range s.Vertices {
			ns.Vertices = append(ns.Vertices, vs[v])
		}
		for _, e := range s.Edges {
			ns.Edges = append(ns.Edges, es[e])
		}
	}
	return out
}

// IncidentSides returns the sides that have v as a corner, in the order they
// occur around v.
func (g *Geometry) IncidentSides(v *Vertex) []*Side {
	var out []*Side
	if len(v.edges) == 0 {
		return out
	}
	// Walk around v: the side that leaves v along e reaches v again along the
	// edge before e in its loop; the other side of that edge comes next.
	start := v.edges[0]
	side := start.Right
	if start.StartFor(side) != v {
		side = start.Left
	}
	for i := 0; side != nil && i < len(v.edges)+1; i++ {
		if len(out) > 0 && side == out[0] {
			break
		}
		out = append(out, side)
		var in *Edge
		for j, e := range side.Edges {
			if e.StartFor(side) == v {
				in = side.Edges[(j+len(side.Edges)-1)%len(side.Edges)]
				break
			}
		}
		if in == nil {
			break
		}
		if in.Left == side {
			side = in.Right
		} else {
			side = in.Left
		}
	}
	return out
}

// RestoreFaceGeometries links every face to the side it backs.
func (g *Geometry) RestoreFaceGeometries() {
	for _, s := range g.Sides {
		if s.Face != nil {
			s.Face.setSide(s)
		}
	}
}

// UpdateBounds recomputes the tight bounding box of the vertices.
func (g *Geometry) UpdateBounds() {
	g.Bounds = geom.BoundsOf(g.Positions())
}

// Positions returns the vertex positions.
func (g *Geometry) Positions() []v3.Vec {
	out := make([]v3.Vec, len(g.Vertices))
	for i, v := range g.Vertices {
		out[i] = v.Position
	}
	return out
}

// Faces returns the faces bound to sides, in side order.
func (g *Geometry) Faces() []*Face {
	var out []*Face
	for _, s := range g.Sides {
		if s.Face != nil {
			out = append(out, s.Face)
		}
	}
	return out
}

// FindVertex returns the vertex at pos.
func (g *Geometry) FindVertex(pos v3.Vec) *Vertex {
	for _, v := range g.Vertices {
		if geom.PointsEqual(v.Position, pos) {
			return v
		}
	}
	return nil
}

// FindEdge returns the edge joining the endpoints of seg, in either direction.
func (g *Geometry) FindEdge(seg geom.Edge3) *Edge {
	for _, e := range g.Edges {
		if e.Segment().Matches(seg) {
			return e
		}
	}
	return nil
}

// FindSide returns the side with the corners of poly.
func (g *Geometry) FindSide(poly geom.Polygon3) *Side {
	for _, s := range g.Sides {
		if s.Polygon().Matches(poly) {
			return s
		}
	}
	return nil
}

// commit replaces g's graph with ng and links faces to their new sides.
// candidates are faces offered to the operation that may not have found a
// side. The returned changes list faces attached now but not before, and
// faces attached before (or offered) but not now.
func (g *Geometry) commit(ng *Geometry, candidates []*Face) Changes {
	before := g.Faces()
	after := ng.Faces()
	attached := make(map[*Face]bool, len(after))
	for _, f := range after {
		attached[f] = true
	}
	was := make(map[*Face]bool, len(before))
	for _, f := range before {
		was[f] = true
	}

	var c Changes
	for _, f := range after {
		if !was[f] {
			c.Added = append(c.Added, f)
		}
	}
	seen := make(map[*Face]bool)
	for _, f := range append(append([]*Face(nil), before...), candidates...) {
		if attached[f] || seen[f] {
			continue
		}
		seen[f] = true
		f.setSide(nil)
		c.Dropped = append(c.Dropped, f)
	}

	*g = *ng
	g.RestoreFaceGeometries()
	assertSound(g, "edit")
	return c
}

// BoundingBox returns the bounds in the layout kernel.Solid expects.
func (g *Geometry) BoundingBox() (min, max [3]float64) {
	b := g.Bounds
	return [3]float64{b.Min.X, b.Min.Y, b.Min.Z}, [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
}

// Polygons returns one outward-facing polygon per side.
func (g *Geometry) Polygons() []kernel.Polygon {
	out := make([]kernel.Polygon, 0, len(g.Sides))
	for _, s := range g.Sides {
		poly := kernel.Polygon{Normal: toArray(s.Plane.Normal)}
		for _, v := range s.Vertices {
			poly.Vertices = append(poly.Vertices, toArray(v.Position))
		}
		out = append(out, poly)
	}
	return out
}

// Planes returns the side planes.
func (g *Geometry) Planes() []kernel.Plane {
	out := make([]kernel.Plane, len(g.Sides))
	for i, s := range g.Sides {
		out[i] = kernel.Plane{Normal: toArray(s.Plane.Normal), Distance: s.Plane.Distance}
	}
	return out
}

func toArray(v v3.Vec) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }
