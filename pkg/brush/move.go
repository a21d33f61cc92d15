package brush

import (
	"fmt"

	"github.com/chazu/brushwork/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// selectVertices resolves positions to the indices of the vertices at them.
// Every position must match exactly one vertex, and no vertex twice.
func (g *Geometry) selectVertices(positions []v3.Vec) ([]int, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: no vertices selected", ErrInvalidEdit)
	}
	seen := make(map[int]bool, len(positions))
	out := make([]int, 0, len(positions))
	for _, p := range positions {
		idx := -1
		for i, v := range g.Vertices {
			if !geom.PointsEqual(v.Position, p) {
				continue
			}
			if idx >= 0 {
				return nil, fmt.Errorf("%w: position %v matches several vertices", ErrInvalidEdit, p)
			}
			idx = i
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: no vertex at %v", ErrInvalidEdit, p)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: vertex %v selected twice", ErrInvalidEdit, p)
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out, nil
}

// selectEdges resolves segments to their edges, each matched exactly once.
func (g *Geometry) selectEdges(edges []geom.Edge3) ([]*Edge, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: no edges selected", ErrInvalidEdit)
	}
	seen := make(map[*Edge]bool, len(edges))
	out := make([]*Edge, 0, len(edges))
	for _, seg := range edges {
		var found *Edge
		for _, e := range g.Edges {
			if !e.Segment().Matches(seg) {
				continue
			}
			if found != nil {
				return nil, fmt.Errorf("%w: segment %s matches several edges", ErrInvalidEdit, seg)
			}
			found = e
		}
		if found == nil {
			return nil, fmt.Errorf("%w: no edge %s", ErrInvalidEdit, seg)
		}
		if seen[found] {
			return nil, fmt.Errorf("%w: edge %s selected twice", ErrInvalidEdit, seg)
		}
		seen[found] = true
		out = append(out, found)
	}
	return out, nil
}

// selectSides resolves polygons to their sides, each matched exactly once.
func (g *Geometry) selectSides(polys []geom.Polygon3) ([]*Side, error) {
	if len(polys) == 0 {
		return nil, fmt.Errorf("%w: no faces selected", ErrInvalidEdit)
	}
	seen := make(map[*Side]bool, len(polys))
	out := make([]*Side, 0, len(polys))
	for _, poly := range polys {
		var found *Side
		for _, s := range g.Sides {
			if !s.Polygon().Matches(poly) {
				continue
			}
			if found != nil {
				return nil, fmt.Errorf("%w: polygon matches several faces", ErrInvalidEdit)
			}
			found = s
		}
		if found == nil {
			return nil, fmt.Errorf("%w: no face with corners %v", ErrInvalidEdit, poly.Vertices)
		}
		if seen[found] {
			return nil, fmt.Errorf("%w: face %s selected twice", ErrInvalidEdit, found.Plane)
		}
		seen[found] = true
		out = append(out, found)
	}
	return out, nil
}

// vertexIndices returns the indices of the given vertices, each once.
func (g *Geometry) vertexIndices(vs []*Vertex) []int {
	index := make(map[*Vertex]int, len(g.Vertices))
	for i, v := range g.Vertices {
		index[v] = i
	}
	seen := make(map[int]bool)
	var out []int
	for _, v := range vs {
		i := index[v]
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}

// planMove rebuilds g with the indexed vertices translated by delta and
// checks the outcome: every vertex stays a distinct vertex inside
// worldBounds and the solid stays sound.
func (g *Geometry) planMove(worldBounds sdf.Box3, indices []int, delta v3.Vec) (*edit, error) {
	if geom.IsZero(delta) {
		return nil, fmt.Errorf("%w: zero delta", ErrInvalidEdit)
	}
	mapped := g.Positions()
	for _, i := range indices {
		mapped[i] = mapped[i].Add(delta)
	}
	e, err := g.derive(mapped)
	if err != nil {
		return nil, err
	}
	if err := e.keepsAll(); err != nil {
		return nil, err
	}
	if err := e.within(worldBounds); err != nil {
		return nil, err
	}
	if err := e.sound(); err != nil {
		return nil, err
	}
	return e, nil
}

func (g *Geometry) planMoveVertices(worldBounds sdf.Box3, positions []v3.Vec, delta v3.Vec) (*edit, error) {
	indices, err := g.selectVertices(positions)
	if err != nil {
		return nil, err
	}
	return g.planMove(worldBounds, indices, delta)
}

// CanMoveVertices reports whether MoveVertices would succeed.
func (g *Geometry) CanMoveVertices(worldBounds sdf.Box3, positions []v3.Vec, delta v3.Vec) bool {
	_, err := g.planMoveVertices(worldBounds, positions, delta)
	return err == nil
}

// MoveVertices translates the vertices at positions by delta and rebuilds the
// solid around them.
func (g *Geometry) MoveVertices(worldBounds sdf.Box3, positions []v3.Vec, delta v3.Vec) (MoveVerticesResult, error) {
	e, err := g.planMoveVertices(worldBounds, positions, delta)
	if err != nil {
		Logger().Debug("brush: vertex move rejected", "error", err)
		return MoveVerticesResult{}, err
	}
	moved := make([]v3.Vec, len(positions))
	for i, p := range positions {
		moved[i] = e.next.FindVertex(p.Add(delta)).Position
	}
	return MoveVerticesResult{Changes: g.commit(e.next, nil), NewVertexPositions: moved}, nil
}

func (g *Geometry) planMoveEdges(worldBounds sdf.Box3, edges []geom.Edge3, delta v3.Vec) (*edit, error) {
	selected, err := g.selectEdges(edges)
	if err != nil {
		return nil, err
	}
	var vs []*Vertex
	for _, e := range selected {
		vs = append(vs, e.Start, e.End)
	}
	e, err := g.planMove(worldBounds, g.vertexIndices(vs), delta)
	if err != nil {
		return nil, err
	}
	for _, seg := range edges {
		if e.next.FindEdge(seg.Translated(delta)) == nil {
			return nil, fmt.Errorf("%w: edge %s would not survive the move", ErrInvalidEdit, seg)
		}
	}
	return e, nil
}

// CanMoveEdges reports whether MoveEdges would succeed.
func (g *Geometry) CanMoveEdges(worldBounds sdf.Box3, edges []geom.Edge3, delta v3.Vec) bool {
	_, err := g.planMoveEdges(worldBounds, edges, delta)
	return err == nil
}

// MoveEdges translates the given edges by delta. Every moved edge must still
// be an edge afterwards.
func (g *Geometry) MoveEdges(worldBounds sdf.Box3, edges []geom.Edge3, delta v3.Vec) (MoveEdgesResult, error) {
	e, err := g.planMoveEdges(worldBounds, edges, delta)
	if err != nil {
		Logger().Debug("brush: edge move rejected", "error", err)
		return MoveEdgesResult{}, err
	}
	moved := make([]geom.Edge3, len(edges))
	for i, seg := range edges {
		moved[i] = e.next.FindEdge(seg.Translated(delta)).Segment()
	}
	return MoveEdgesResult{Changes: g.commit(e.next, nil), NewEdgePositions: moved}, nil
}

func (g *Geometry) planMoveFaces(worldBounds sdf.Box3, polys []geom.Polygon3, delta v3.Vec) (*edit, error) {
	selected, err := g.selectSides(polys)
	if err != nil {
		return nil, err
	}
	var vs []*Vertex
	for _, s := range selected {
		vs = append(vs, s.Vertices...)
	}
	e, err := g.planMove(worldBounds, g.vertexIndices(vs), delta)
	if err != nil {
		return nil, err
	}
	for i, poly := range polys {
		ns := e.next.FindSide(poly.Translated(delta))
		if ns == nil {
			return nil, fmt.Errorf("%w: face %s would not survive the move", ErrInvalidEdit, selected[i].Plane)
		}
		if ns.Plane.Normal.Dot(selected[i].Plane.Normal) <= 0 {
			return nil, fmt.Errorf("%w: face %s would be inverted", ErrInvalidEdit, selected[i].Plane)
		}
	}
	return e, nil
}

// CanMoveFaces reports whether MoveFaces would succeed.
func (g *Geometry) CanMoveFaces(worldBounds sdf.Box3, polys []geom.Polygon3, delta v3.Vec) bool {
	_, err := g.planMoveFaces(worldBounds, polys, delta)
	return err == nil
}

// MoveFaces translates the sides with the given corners by delta.
func (g *Geometry) MoveFaces(worldBounds sdf.Box3, polys []geom.Polygon3, delta v3.Vec) (MoveFacesResult, error) {
	e, err := g.planMoveFaces(worldBounds, polys, delta)
	if err != nil {
		Logger().Debug("brush: face move rejected", "error", err)
		return MoveFacesResult{}, err
	}
	moved := make([]geom.Polygon3, len(polys))
	for i, poly := range polys {
		moved[i] = e.next.FindSide(poly.Translated(delta)).Polygon()
	}
	return MoveFacesResult{Changes: g.commit(e.next, nil), NewFacePositions: moved}, nil
}
