package brush

import (
	"fmt"
	"math"

	"github.com/chazu/brushwork/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"
)

func toMgl(v v3.Vec) mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func fromMgl(v mgl64.Vec3) v3.Vec { return v3.Vec{X: v[0], Y: v[1], Z: v[2]} }

// TransformPoint applies the affine transform m to p.
func TransformPoint(m mgl64.Mat4, p v3.Vec) v3.Vec {
	return geom.Correct(fromMgl(mgl64.TransformCoordinate(toMgl(p), m)))
}

// RotationAbout returns the rotation by degrees around axis through center.
func RotationAbout(axis v3.Vec, degrees float64, center v3.Vec) mgl64.Mat4 {
	to := mgl64.Translate3D(center.X, center.Y, center.Z)
	from := mgl64.Translate3D(-center.X, -center.Y, -center.Z)
	rot := mgl64.HomogRotate3D(mgl64.DegToRad(degrees), toMgl(geom.Normalize(axis)))
	return to.Mul4(rot).Mul4(from)
}

// Transform applies the affine transform m to every face and recuts the
// brush. A mirroring transform keeps the faces facing out. It fails, leaving
// the brush unchanged, when m is singular or a vertex would leave
// worldBounds.
func (b *Brush) Transform(worldBounds sdf.Box3, m mgl64.Mat4) error {
	det := m.Det()
	if math.Abs(det) <= geom.AlmostZero {
		return fmt.Errorf("brush %q: singular transform: %w", b.Name, ErrInvalidEdit)
	}
	for _, v := range b.geometry.Vertices {
		if p := TransformPoint(m, v.Position); !geom.BoxContains(worldBounds, p) {
			return fmt.Errorf("brush %q: vertex %v would leave the world bounds: %w", b.Name, p, ErrInvalidEdit)
		}
	}
	moved := make([]*Face, len(b.faces))
	for i, f := range b.faces {
		pts := f.Points()
		p0, p1, p2 := TransformPoint(m, pts[0]), TransformPoint(m, pts[1]), TransformPoint(m, pts[2])
		if det < 0 {
			p1, p2 = p2, p1
		}
		nf, err := NewFace(p0, p1, p2, f.Attributes)
		if err != nil {
			return fmt.Errorf("brush %q: %v: %w", b.Name, err, ErrInvalidEdit)
		}
		moved[i] = nf
	}
	return b.recut(worldBounds, moved)
}

// Translate moves the brush by delta.
func (b *Brush) Translate(worldBounds sdf.Box3, delta v3.Vec) error {
	if geom.IsZero(delta) {
		return nil
	}
	for _, v := range b.geometry.Vertices {
		if p := v.Position.Add(delta); !geom.BoxContains(worldBounds, p) {
			return fmt.Errorf("brush %q: vertex %v would leave the world bounds: %w", b.Name, p, ErrInvalidEdit)
		}
	}
	moved := make([]*Face, len(b.faces))
	for i, f := range b.faces {
		moved[i] = f.Clone()
		moved[i].Translate(delta)
	}
	return b.recut(worldBounds, moved)
}

// recut rebuilds the geometry from moved, which holds the new version of
// every face in order. On success the brush's own faces take over the moved
// points and planes, so callers holding a face keep a valid one.
func (b *Brush) recut(worldBounds sdf.Box3, moved []*Face) error {
	g := NewGeometry(worldBounds)
	r, err := g.AddFaces(moved)
	if err != nil {
		return fmt.Errorf("brush %q: %w", b.Name, err)
	}
	if r.Code == BrushNull {
		return fmt.Errorf("brush %q: transformed faces enclose nothing: %w", b.Name, ErrInvalidEdit)
	}
	for _, f := range moved {
		if f.Side() == nil {
			return fmt.Errorf("brush %q: face %s would vanish: %w", b.Name, f, ErrInvalidEdit)
		}
	}

	owner := make(map[*Face]*Face, len(moved))
	for i, f := range b.faces {
		f.points = moved[i].points
		f.plane = moved[i].plane
		owner[moved[i]] = f
	}
	for _, s := range g.Sides {
		if s.Face != nil {
			s.Face = owner[s.Face]
		}
	}
	g.RestoreFaceGeometries()
	assertSound(g, "transform")
	b.geometry = g
	return nil
}
