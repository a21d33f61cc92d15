package brush

import (
	"fmt"

	"github.com/chazu/brushwork/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DefaultTexture is assigned to faces created without attributes.
const DefaultTexture = "__TB_empty"

// Attributes is the texture payload of a face. The kernel copies it onto
// faces it creates and never interprets it.
type Attributes struct {
	Texture  string  `json:"texture"`
	XOffset  float64 `json:"x_offset"`
	YOffset  float64 `json:"y_offset"`
	Rotation float64 `json:"rotation"`
	XScale   float64 `json:"x_scale"`
	YScale   float64 `json:"y_scale"`
}

// DefaultAttributes returns unscaled, unrotated attributes for texture.
func DefaultAttributes(texture string) Attributes {
	if texture == "" {
		texture = DefaultTexture
	}
	return Attributes{Texture: texture, XScale: 1, YScale: 1}
}

// Face is one bounding plane of a brush together with its texture payload.
// Faces are owned by the caller; a Geometry only links each of its sides to
// the Face it was cut by.
type Face struct {
	Attributes

	points [3]v3.Vec
	plane  geom.Plane
	side   *Side
}

// NewFace returns the face through three points given clockwise as seen from
// outside the brush.
func NewFace(p0, p1, p2 v3.Vec, attrs Attributes) (*Face, error) {
	plane, ok := geom.PlaneFromPoints(p0, p1, p2)
	if !ok {
		return nil, fmt.Errorf("brush: face points %v %v %v are collinear", p0, p1, p2)
	}
	return &Face{Attributes: attrs, points: [3]v3.Vec{p0, p1, p2}, plane: plane}, nil
}

// NewFaceFromPlane returns a face on the given plane. Its defining points are
// chosen on the plane around the point closest to the origin.
func NewFaceFromPlane(plane geom.Plane, attrs Attributes) *Face {
	return &Face{Attributes: attrs, points: planePoints(plane), plane: plane}
}

// planePoints returns three points of plane in map order.
func planePoints(p geom.Plane) [3]v3.Vec {
	u, w := p.Basis()
	a := p.Anchor()
	const span = 64
	return [3]v3.Vec{a, a.Add(w.MulScalar(span)), a.Add(u.MulScalar(span))}
}

// Points returns the three defining points.
func (f *Face) Points() [3]v3.Vec { return f.points }

// Plane returns the face's boundary plane; its normal points out of the brush.
func (f *Face) Plane() geom.Plane { return f.plane }

// Side returns the side currently backed by this face, or nil when the face
// is not part of any geometry.
func (f *Face) Side() *Side { return f.side }

// Polygon returns the boundary of the backing side, or an empty polygon.
func (f *Face) Polygon() geom.Polygon3 {
	if f.side == nil {
		return geom.Polygon3{}
	}
	return f.side.Polygon()
}

// Clone returns a copy of the face that is not linked to any side.
func (f *Face) Clone() *Face {
	return &Face{Attributes: f.Attributes, points: f.points, plane: f.plane}
}

func (f *Face) setSide(s *Side) { f.side = s }

func (f *Face) String() string {
	return fmt.Sprintf("face(%s %s)", f.plane, f.Texture)
}

// Translate moves the face's points and plane by delta. It does not touch
// the backing side; use Brush.Translate to move a face that is part of a
// brush.
func (f *Face) Translate(delta v3.Vec) {
	for i := range f.points {
		f.points[i] = f.points[i].Add(delta)
	}
	f.plane = f.plane.Translated(delta)
}
