package brush

import (
	"fmt"

	"github.com/chazu/brushwork/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// SnapVertices moves the vertices at positions to the nearest multiple of
// snapTo on every axis and rebuilds the solid. Vertices snapped onto the same
// point merge, and a vertex that ends up inside the hull of the others
// disappears. Already aligned vertices leave the geometry untouched and
// report no changes. The snap is rejected when a snapped vertex would leave
// worldBounds.
//
// NewVertexPositions lists the snapped position of every input vertex that is
// still a vertex afterwards.
func (g *Geometry) SnapVertices(worldBounds sdf.Box3, positions []v3.Vec, snapTo float64) (SnapVerticesResult, error) {
	if snapTo <= 0 {
		return SnapVerticesResult{}, fmt.Errorf("%w: grid size %g", ErrInvalidEdit, snapTo)
	}
	indices, err := g.selectVertices(positions)
	if err != nil {
		return SnapVerticesResult{}, err
	}

	mapped := g.Positions()
	changed := false
	for _, i := range indices {
		p := geom.SnapVec(mapped[i], snapTo)
		if p != mapped[i] {
			changed = true
		}
		mapped[i] = p
	}
	if !changed {
		out := make([]v3.Vec, len(indices))
		for j, i := range indices {
			out[j] = mapped[i]
		}
		return SnapVerticesResult{NewVertexPositions: out}, nil
	}

	e, err := g.derive(mapped)
	if err == nil {
		err = e.within(worldBounds)
	}
	if err == nil {
		err = e.welded()
	}
	if err == nil {
		err = e.sound()
	}
	if err != nil {
		Logger().Debug("brush: snap rejected", "grid", snapTo, "error", err)
		return SnapVerticesResult{}, err
	}

	var out []v3.Vec
	for _, i := range indices {
		if v := e.next.FindVertex(mapped[i]); v != nil {
			out = append(out, v.Position)
		}
	}
	return SnapVerticesResult{Changes: g.commit(e.next, nil), NewVertexPositions: out}, nil
}
