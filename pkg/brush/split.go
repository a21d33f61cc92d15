package brush

import (
	"fmt"

	"github.com/chazu/brushwork/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// planSplit rebuilds g with one extra vertex at p, which must become a vertex
// of its own without any existing vertex being lost.
func (g *Geometry) planSplit(worldBounds sdf.Box3, p v3.Vec) (*edit, error) {
	if g.FindVertex(p) != nil {
		return nil, fmt.Errorf("%w: %v is already a vertex", ErrInvalidEdit, p)
	}
	e, err := g.derive(g.Positions(), p)
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

func (g *Geometry) planSplitEdge(worldBounds sdf.Box3, seg geom.Edge3, delta v3.Vec) (*edit, v3.Vec, error) {
	edges, err := g.selectEdges([]geom.Edge3{seg})
	if err != nil {
		return nil, v3.Vec{}, err
	}
	if geom.IsZero(delta) {
		return nil, v3.Vec{}, fmt.Errorf("%w: zero delta", ErrInvalidEdit)
	}
	p := edges[0].Center().Add(delta)
	e, err := g.planSplit(worldBounds, p)
	return e, p, err
}

// CanSplitEdge reports whether SplitEdge would succeed.
func (g *Geometry) CanSplitEdge(worldBounds sdf.Box3, seg geom.Edge3, delta v3.Vec) bool {
	_, _, err := g.planSplitEdge(worldBounds, seg, delta)
	return err == nil
}

// SplitEdge adds a vertex at the midpoint of the edge offset by delta.
func (g *Geometry) SplitEdge(worldBounds sdf.Box3, seg geom.Edge3, delta v3.Vec) (SplitResult, error) {
	e, p, err := g.planSplitEdge(worldBounds, seg, delta)
	if err != nil {
		Logger().Debug("brush: edge split rejected", "edge", seg.String(), "error", err)
		return SplitResult{}, err
	}
	return SplitResult{Changes: g.commit(e.next, nil), NewVertexPosition: p}, nil
}

func (g *Geometry) planSplitFace(worldBounds sdf.Box3, poly geom.Polygon3, delta v3.Vec) (*edit, v3.Vec, error) {
	sides, err := g.selectSides([]geom.Polygon3{poly})
	if err != nil {
		return nil, v3.Vec{}, err
	}
	if geom.IsZero(delta) {
		return nil, v3.Vec{}, fmt.Errorf("%w: zero delta", ErrInvalidEdit)
	}
	p := sides[0].Center().Add(delta)
	e, err := g.planSplit(worldBounds, p)
	return e, p, err
}

// CanSplitFace reports whether SplitFace would succeed.
func (g *Geometry) CanSplitFace(worldBounds sdf.Box3, poly geom.Polygon3, delta v3.Vec) bool {
	_, _, err := g.planSplitFace(worldBounds, poly, delta)
	return err == nil
}

// SplitFace adds a vertex at the centroid of the side offset by delta, which
// replaces the side with a fan of sides meeting at the new vertex.
func (g *Geometry) SplitFace(worldBounds sdf.Box3, poly geom.Polygon3, delta v3.Vec) (SplitResult, error) {
	e, p, err := g.planSplitFace(worldBounds, poly, delta)
	if err != nil {
		Logger().Debug("brush: face split rejected", "error", err)
		return SplitResult{}, err
	}
	return SplitResult{Changes: g.commit(e.next, nil), NewVertexPosition: p}, nil
}
