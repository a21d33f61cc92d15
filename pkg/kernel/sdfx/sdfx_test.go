package sdfx

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/brushwork/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// box is an axis-aligned cuboid described by its six planes.
type box struct {
	min, max [3]float64
}

func (b box) BoundingBox() (min, max [3]float64) { return b.min, b.max }

func (b box) Planes() []kernel.Plane {
	var out []kernel.Plane
	for axis := 0; axis < 3; axis++ {
		var lo, hi [3]float64
		lo[axis], hi[axis] = -1, 1
		out = append(out,
			kernel.Plane{Normal: lo, Distance: -b.min[axis]},
			kernel.Plane{Normal: hi, Distance: b.max[axis]})
	}
	return out
}

type opaque struct{}

func (opaque) BoundingBox() (min, max [3]float64) { return }

func TestSDFEvaluate(t *testing.T) {
	s, err := SDF(box{max: [3]float64{10, 20, 30}})
	if err != nil {
		t.Fatalf("SDF failed: %v", err)
	}
	tests := []struct {
		name string
		p    v3.Vec
		want float64
	}{
		{"center", v3.Vec{X: 5, Y: 10, Z: 15}, -5},
		{"on face", v3.Vec{X: 10, Y: 10, Z: 15}, 0},
		{"outside", v3.Vec{X: 5, Y: 10, Z: 32}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Evaluate(tt.p); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Evaluate(%v) = %f, want %f", tt.p, got, tt.want)
			}
		})
	}
}

func TestToMesh(t *testing.T) {
	k := NewWithCells(32)
	mesh, err := k.ToMesh(box{max: [3]float64{100, 50, 25}})
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}

	// The surface stays within a cell of the planes.
	const tol = 100.0 / 32
	for i := 0; i < len(mesh.Vertices); i += 3 {
		x, y, z := float64(mesh.Vertices[i]), float64(mesh.Vertices[i+1]), float64(mesh.Vertices[i+2])
		if x < -tol || x > 100+tol || y < -tol || y > 50+tol || z < -tol || z > 25+tol {
			t.Fatalf("vertex (%f %f %f) is far from the box", x, y, z)
		}
	}
	t.Logf("box triangle count: %d", mesh.TriangleCount())
}

func TestToMeshRejects(t *testing.T) {
	if _, err := New().ToMesh(opaque{}); !errors.Is(err, kernel.ErrUnsupported) {
		t.Errorf("ToMesh(opaque) error = %v, want ErrUnsupported", err)
	}
	if _, err := SDF(planeless{}); err == nil {
		t.Error("SDF without planes succeeded")
	}
}

type planeless struct{ box }

func (planeless) Planes() []kernel.Plane { return nil }

func TestName(t *testing.T) {
	if New().Name() != "sdfx" {
		t.Errorf("Name() = %q", New().Name())
	}
}
