package brush

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/brushwork/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"
)

func newCuboid(t *testing.T, max v3.Vec) *Brush {
	t.Helper()
	b, err := NewCuboid("box", testWorld, sdf.Box3{Max: max}, DefaultAttributes("wood"))
	if err != nil {
		t.Fatalf("NewCuboid: %v", err)
	}
	return b
}

func boxNear(a, b sdf.Box3, tol float64) bool {
	near := func(x, y v3.Vec) bool {
		return math.Abs(x.X-y.X) <= tol && math.Abs(x.Y-y.Y) <= tol && math.Abs(x.Z-y.Z) <= tol
	}
	return near(a.Min, b.Min) && near(a.Max, b.Max)
}

func hasFace(faces []*Face, f *Face) bool {
	for _, o := range faces {
		if o == f {
			return true
		}
	}
	return false
}

func TestNewCuboid(t *testing.T) {
	b := newCuboid(t, v3.Vec{X: 2, Y: 1, Z: 1})
	assertCounts(t, b.Geometry(), 8, 12, 6)
	assertSane(t, b.Geometry())
	if len(b.Faces()) != 6 {
		t.Fatalf("Faces() = %d, want 6", len(b.Faces()))
	}
	for _, f := range b.Faces() {
		if f.Texture != "wood" || f.XScale != 1 || f.YScale != 1 {
			t.Errorf("face attributes = %+v", f.Attributes)
		}
		if f.Side() == nil {
			t.Errorf("face %s has no side", f)
		}
	}
	min, max := b.BoundingBox()
	if min != [3]float64{0, 0, 0} || max != [3]float64{2, 1, 1} {
		t.Errorf("BoundingBox() = %v %v", min, max)
	}
	if len(b.Polygons()) != 6 || len(b.Planes()) != 6 {
		t.Errorf("polygons/planes = %d/%d", len(b.Polygons()), len(b.Planes()))
	}
}

func TestNewBrushNull(t *testing.T) {
	faces := []*Face{
		axisFace(t, v3.Vec{X: 1}, 0),
		axisFace(t, v3.Vec{X: -1}, -1),
	}
	if _, err := NewBrush("empty", testWorld, faces); !errors.Is(err, ErrBrushNull) {
		t.Fatalf("NewBrush error = %v, want ErrBrushNull", err)
	}
	if _, err := NewCuboid("flat", testWorld, sdf.Box3{Max: v3.Vec{X: 1, Y: 1}}, DefaultAttributes("")); !errors.Is(err, ErrBrushNull) {
		t.Fatalf("NewCuboid error = %v, want ErrBrushNull", err)
	}
}

func TestNewBrushDropsRedundantFaces(t *testing.T) {
	faces := append(cubeFaces(t, 1), axisFace(t, v3.Vec{Z: 1}, 3))
	b, err := NewBrush("cube", testWorld, faces)
	if err != nil {
		t.Fatalf("NewBrush: %v", err)
	}
	if len(b.Faces()) != 6 || hasFace(b.Faces(), faces[6]) {
		t.Errorf("Faces() = %v", b.Faces())
	}
}

func TestBrushMoveFaceAppliesChanges(t *testing.T) {
	b := newCuboid(t, v3.Vec{X: 1, Y: 1, Z: 1})
	right := b.FaceOn(v3.Vec{X: 1})
	r, err := b.MoveFaces(testWorld, []geom.Polygon3{right.Polygon()}, v3.Vec{X: 1})
	if err != nil {
		t.Fatalf("MoveFaces: %v", err)
	}
	faces := b.Faces()
	if len(faces) != 6 {
		t.Fatalf("Faces() = %d, want 6", len(faces))
	}
	if hasFace(faces, right) {
		t.Error("dropped face is still listed")
	}
	if !hasFace(faces, r.Added[0]) {
		t.Error("added face is not listed")
	}
	if r.Added[0].Texture != "wood" {
		t.Errorf("added texture = %q", r.Added[0].Texture)
	}
	for _, f := range faces {
		if f.Side() == nil || f.Side().Face != f {
			t.Errorf("face %s is not bound", f)
		}
	}
}

func TestBrushRejectedEditKeepsFaces(t *testing.T) {
	b := newCuboid(t, v3.Vec{X: 1, Y: 1, Z: 1})
	before := b.Faces()
	right := b.FaceOn(v3.Vec{X: 1})
	if _, err := b.MoveFaces(testWorld, []geom.Polygon3{right.Polygon()}, v3.Vec{X: -3}); !errors.Is(err, ErrInvalidEdit) {
		t.Fatalf("MoveFaces error = %v, want ErrInvalidEdit", err)
	}
	if _, err := b.AddFaces([]*Face{axisFace(t, v3.Vec{X: 1}, -2)}); !errors.Is(err, ErrBrushNull) {
		t.Fatalf("AddFaces error = %v, want ErrBrushNull", err)
	}
	after := b.Faces()
	if len(after) != len(before) {
		t.Fatalf("faces %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("face %d replaced", i)
		}
	}
}

func TestBrushTransform(t *testing.T) {
	tests := []struct {
		name string
		m    mgl64.Mat4
		want sdf.Box3
	}{
		{"translate", mgl64.Translate3D(1, 2, 3), sdf.Box3{Min: v3.Vec{X: 1, Y: 2, Z: 3}, Max: v3.Vec{X: 3, Y: 3, Z: 4}}},
		{"rotate about z", RotationAbout(v3.Vec{Z: 1}, 90, v3.Vec{}), sdf.Box3{Min: v3.Vec{X: -1}, Max: v3.Vec{Y: 2, Z: 1}}},
		{"mirror x", mgl64.Scale3D(-1, 1, 1), sdf.Box3{Min: v3.Vec{X: -2}, Max: v3.Vec{Y: 1, Z: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newCuboid(t, v3.Vec{X: 2, Y: 1, Z: 1})
			before := b.Faces()
			if err := b.Transform(testWorld, tt.m); err != nil {
				t.Fatalf("Transform: %v", err)
			}
			assertCounts(t, b.Geometry(), 8, 12, 6)
			assertSane(t, b.Geometry())
			if !boxNear(b.Bounds(), tt.want, 1e-6) {
				t.Errorf("Bounds() = %v, want %v", b.Bounds(), tt.want)
			}
			after := b.Faces()
			if len(after) != 6 {
				t.Fatalf("Faces() = %d, want 6", len(after))
			}
			for _, f := range before {
				if !hasFace(after, f) || f.Side() == nil {
					t.Errorf("face %s lost its identity", f)
				}
			}
		})
	}
}

func TestBrushTransformRejected(t *testing.T) {
	tests := []struct {
		name string
		m    mgl64.Mat4
	}{
		{"leaves the world", mgl64.Translate3D(100, 0, 0)},
		{"singular", mgl64.Scale3D(1, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newCuboid(t, v3.Vec{X: 1, Y: 1, Z: 1})
			before := b.Bounds()
			if err := b.Transform(testWorld, tt.m); !errors.Is(err, ErrInvalidEdit) {
				t.Fatalf("Transform error = %v, want ErrInvalidEdit", err)
			}
			if !geom.BoxEquals(before, b.Bounds()) {
				t.Errorf("bounds changed to %v", b.Bounds())
			}
		})
	}
}

func TestBrushTranslate(t *testing.T) {
	b := newCuboid(t, v3.Vec{X: 1, Y: 1, Z: 1})
	if err := b.Translate(testWorld, v3.Vec{X: -5, Z: 2}); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	want := sdf.Box3{Min: v3.Vec{X: -5, Z: 2}, Max: v3.Vec{X: -4, Y: 1, Z: 3}}
	if !geom.BoxEquals(b.Bounds(), want) {
		t.Errorf("Bounds() = %v, want %v", b.Bounds(), want)
	}
	assertSane(t, b.Geometry())
	if err := b.Translate(testWorld, v3.Vec{Y: 40}); !errors.Is(err, ErrInvalidEdit) {
		t.Errorf("Translate out of the world error = %v", err)
	}
}

func TestBrushClone(t *testing.T) {
	b := newCuboid(t, v3.Vec{X: 1, Y: 1, Z: 1})
	c := b.Clone()
	if err := c.Translate(testWorld, v3.Vec{X: 3}); err != nil {
		t.Fatalf("Translate clone: %v", err)
	}
	if b.Bounds().Max.X != 1 {
		t.Errorf("original moved to %v", b.Bounds())
	}
	for _, f := range b.Faces() {
		if hasFace(c.Faces(), f) {
			t.Error("clone shares a face")
		}
		if f.Side() == nil || f.Side().Face != f {
			t.Errorf("original face %s unbound", f)
		}
	}
}

func TestBrushSnapAll(t *testing.T) {
	b := newCuboid(t, v3.Vec{X: 1, Y: 1, Z: 1})
	right := b.FaceOn(v3.Vec{X: 1})
	if _, err := b.MoveFaces(testWorld, []geom.Polygon3{right.Polygon()}, v3.Vec{X: 0.3}); err != nil {
		t.Fatalf("MoveFaces: %v", err)
	}
	if _, err := b.SnapAll(testWorld, 1); err != nil {
		t.Fatalf("SnapAll: %v", err)
	}
	if !geom.BoxEquals(b.Bounds(), sdf.Box3{Max: v3.Vec{X: 1, Y: 1, Z: 1}}) {
		t.Errorf("Bounds() = %v", b.Bounds())
	}
	if len(b.Faces()) != 6 {
		t.Errorf("Faces() = %d, want 6", len(b.Faces()))
	}
}

func TestFaceFromPoints(t *testing.T) {
	// Clockwise seen from above: the normal points up.
	f, err := NewFace(v3.Vec{Z: 1}, v3.Vec{Y: 1, Z: 1}, v3.Vec{X: 1, Z: 1}, DefaultAttributes(""))
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	if f.Plane().Normal != (v3.Vec{Z: 1}) || f.Plane().Distance != 1 {
		t.Errorf("plane = %s, want +z at 1", f.Plane())
	}
	if f.Texture != DefaultTexture {
		t.Errorf("texture = %q", f.Texture)
	}
	if _, err := NewFace(v3.Vec{}, v3.Vec{X: 1}, v3.Vec{X: 2}, DefaultAttributes("")); err == nil {
		t.Error("NewFace accepted collinear points")
	}

	plane, _ := geom.NewPlane(v3.Vec{X: 1, Y: 1}, 3)
	pf := NewFaceFromPlane(plane, DefaultAttributes(""))
	back, ok := geom.PlaneFromPoints(pf.Points()[0], pf.Points()[1], pf.Points()[2])
	if !ok || !back.Equals(plane) {
		t.Errorf("points of %s span %s", plane, back)
	}
}
