package brush

import (
	"fmt"

	"github.com/chazu/brushwork/pkg/geom"
	"github.com/chazu/brushwork/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface checks.
var _ kernel.Polyhedron = (*Brush)(nil)
var _ kernel.HalfSpaces = (*Brush)(nil)

// Brush is a named convex solid: the faces that bound it and the geometry
// they cut. Every edit applies the geometry's face changes to the face list,
// dropped faces first, so the list always matches the faces bound to sides.
type Brush struct {
	Name     string
	faces    []*Face
	geometry *Geometry
}

// NewBrush cuts the world box with faces. Faces that turn out redundant are
// left out. It fails with ErrBrushNull when the faces enclose nothing.
func NewBrush(name string, worldBounds sdf.Box3, faces []*Face) (*Brush, error) {
	g := NewGeometry(worldBounds)
	r, err := g.AddFaces(faces)
	if err != nil {
		return nil, fmt.Errorf("brush %q: %w", name, err)
	}
	if r.Code == BrushNull {
		return nil, fmt.Errorf("brush %q: %w", name, ErrBrushNull)
	}
	return &Brush{Name: name, faces: g.Faces(), geometry: g}, nil
}

// NewCuboid returns the brush of an axis-aligned box, all faces sharing attrs.
func NewCuboid(name string, worldBounds, box sdf.Box3, attrs Attributes) (*Brush, error) {
	if !geom.BoxIsValid(box) {
		return nil, fmt.Errorf("brush %q: box %v has no volume: %w", name, box, ErrBrushNull)
	}
	var faces []*Face
	for _, s := range boxSolid(box).sides {
		faces = append(faces, NewFaceFromPlane(s.plane, attrs))
	}
	return NewBrush(name, worldBounds, faces)
}

// Faces returns the brush's faces in side order.
func (b *Brush) Faces() []*Face {
	return append([]*Face(nil), b.faces...)
}

// Geometry returns the brush's geometry. Edit it through the brush's methods
// so the face list stays in step.
func (b *Brush) Geometry() *Geometry { return b.geometry }

// Bounds returns the tight bounds of the brush's vertices.
func (b *Brush) Bounds() sdf.Box3 { return b.geometry.Bounds }

// BoundingBox implements kernel.Solid.
func (b *Brush) BoundingBox() (min, max [3]float64) { return b.geometry.BoundingBox() }

// Polygons implements kernel.Polyhedron.
func (b *Brush) Polygons() []kernel.Polygon { return b.geometry.Polygons() }

// Planes implements kernel.HalfSpaces.
func (b *Brush) Planes() []kernel.Plane { return b.geometry.Planes() }

// Clone returns a copy with cloned faces bound to a cloned geometry.
func (b *Brush) Clone() *Brush {
	g := b.geometry.Clone()
	clones := make(map[*Face]*Face, len(b.faces))
	out := &Brush{Name: b.Name, geometry: g}
	for _, f := range b.faces {
		c := f.Clone()
		clones[f] = c
		out.faces = append(out.faces, c)
	}
	for _, s := range g.Sides {
		if s.Face != nil {
			s.Face = clones[s.Face]
		}
	}
	g.RestoreFaceGeometries()
	return out
}

// apply brings the face list in line with c.
func (b *Brush) apply(c Changes) {
	dropped := make(map[*Face]bool, len(c.Dropped))
	for _, f := range c.Dropped {
		dropped[f] = true
	}
	kept := b.faces[:0]
	for _, f := range b.faces {
		if !dropped[f] {
			kept = append(kept, f)
		}
	}
	b.faces = appendFaces(kept, c.Added)
}

// AddFaces cuts the brush with more faces. A BrushNull outcome leaves the
// brush unchanged and returns ErrBrushNull alongside the result.
func (b *Brush) AddFaces(faces []*Face) (AddFaceResult, error) {
	r, err := b.geometry.AddFaces(faces)
	if err != nil {
		return r, err
	}
	if r.Code == BrushNull {
		return r, fmt.Errorf("brush %q: %w", b.Name, ErrBrushNull)
	}
	b.apply(r.Changes)
	return r, nil
}

// CanMoveVertices reports whether MoveVertices would succeed.
func (b *Brush) CanMoveVertices(worldBounds sdf.Box3, positions []v3.Vec, delta v3.Vec) bool {
	return b.geometry.CanMoveVertices(worldBounds, positions, delta)
}

// MoveVertices moves the vertices at positions by delta.
func (b *Brush) MoveVertices(worldBounds sdf.Box3, positions []v3.Vec, delta v3.Vec) (MoveVerticesResult, error) {
	r, err := b.geometry.MoveVertices(worldBounds, positions, delta)
	if err != nil {
		return r, fmt.Errorf("brush %q: %w", b.Name, err)
	}
	b.apply(r.Changes)
	return r, nil
}

// CanMoveEdges reports whether MoveEdges would succeed.
func (b *Brush) CanMoveEdges(worldBounds sdf.Box3, edges []geom.Edge3, delta v3.Vec) bool {
	return b.geometry.CanMoveEdges(worldBounds, edges, delta)
}

// MoveEdges moves the given edges by delta.
func (b *Brush) MoveEdges(worldBounds sdf.Box3, edges []geom.Edge3, delta v3.Vec) (MoveEdgesResult, error) {
	r, err := b.geometry.MoveEdges(worldBounds, edges, delta)
	if err != nil {
		return r, fmt.Errorf("brush %q: %w", b.Name, err)
	}
	b.apply(r.Changes)
	return r, nil
}

// CanMoveFaces reports whether MoveFaces would succeed.
func (b *Brush) CanMoveFaces(worldBounds sdf.Box3, polys []geom.Polygon3, delta v3.Vec) bool {
	return b.geometry.CanMoveFaces(worldBounds, polys, delta)
}

// MoveFaces moves the faces with the given corners by delta.
func (b *Brush) MoveFaces(worldBounds sdf.Box3, polys []geom.Polygon3, delta v3.Vec) (MoveFacesResult, error) {
	r, err := b.geometry.MoveFaces(worldBounds, polys, delta)
	if err != nil {
		return r, fmt.Errorf("brush %q: %w", b.Name, err)
	}
	b.apply(r.Changes)
	return r, nil
}

// CanSplitEdge reports whether SplitEdge would succeed.
func (b *Brush) CanSplitEdge(worldBounds sdf.Box3, seg geom.Edge3, delta v3.Vec) bool {
	return b.geometry.CanSplitEdge(worldBounds, seg, delta)
}

// SplitEdge adds a vertex off the middle of an edge.
func (b *Brush) SplitEdge(worldBounds sdf.Box3, seg geom.Edge3, delta v3.Vec) (SplitResult, error) {
	r, err := b.geometry.SplitEdge(worldBounds, seg, delta)
	if err != nil {
		return r, fmt.Errorf("brush %q: %w", b.Name, err)
	}
	b.apply(r.Changes)
	return r, nil
}

// CanSplitFace reports whether SplitFace would succeed.
func (b *Brush) CanSplitFace(worldBounds sdf.Box3, poly geom.Polygon3, delta v3.Vec) bool {
	return b.geometry.CanSplitFace(worldBounds, poly, delta)
}

// SplitFace adds a vertex off the center of a face.
func (b *Brush) SplitFace(worldBounds sdf.Box3, poly geom.Polygon3, delta v3.Vec) (SplitResult, error) {
	r, err := b.geometry.SplitFace(worldBounds, poly, delta)
	if err != nil {
		return r, fmt.Errorf("brush %q: %w", b.Name, err)
	}
	b.apply(r.Changes)
	return r, nil
}

// SnapVertices snaps the vertices at positions to the grid.
func (b *Brush) SnapVertices(worldBounds sdf.Box3, positions []v3.Vec, snapTo float64) (SnapVerticesResult, error) {
	r, err := b.geometry.SnapVertices(worldBounds, positions, snapTo)
	if err != nil {
		return r, fmt.Errorf("brush %q: %w", b.Name, err)
	}
	b.apply(r.Changes)
	return r, nil
}

// SnapAll snaps every vertex of the brush to the grid.
func (b *Brush) SnapAll(worldBounds sdf.Box3, snapTo float64) (SnapVerticesResult, error) {
	return b.SnapVertices(worldBounds, b.geometry.Positions(), snapTo)
}

// FaceOn returns the face whose outward normal is closest to normal, or nil
// for a brush without faces.
func (b *Brush) FaceOn(normal v3.Vec) *Face {
	n := geom.Normalize(normal)
	var best *Face
	bestDot := -2.0
	for _, f := range b.faces {
		if d := f.Plane().Normal.Dot(n); d > bestDot {
			best, bestDot = f, d
		}
	}
	return best
}
