package facet

import (
	"errors"
	"testing"

	"github.com/chazu/brushwork/pkg/kernel"
)

type prism struct {
	polys []kernel.Polygon
}

func (p prism) BoundingBox() (min, max [3]float64) { return }
func (p prism) Polygons() []kernel.Polygon         { return p.polys }

type opaque struct{}

func (opaque) BoundingBox() (min, max [3]float64) { return }

func TestToMeshFansPolygons(t *testing.T) {
	square := kernel.Polygon{
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Normal:   [3]float64{0, 0, 1},
	}
	pentagon := kernel.Polygon{
		Vertices: [][3]float64{{0, 0, 1}, {1, 0, 1}, {1.5, 1, 1}, {0.5, 2, 1}, {-0.5, 1, 1}},
		Normal:   [3]float64{0, 0, 1},
	}
	tests := []struct {
		name  string
		polys []kernel.Polygon
		want  int
	}{
		{"square", []kernel.Polygon{square}, 2},
		{"pentagon", []kernel.Polygon{pentagon}, 3},
		{"both", []kernel.Polygon{square, pentagon}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New().ToMesh(prism{polys: tt.polys})
			if err != nil {
				t.Fatalf("ToMesh failed: %v", err)
			}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
			if len(m.Vertices) != len(m.Normals) {
				t.Fatalf("vertices length %d != normals length %d", len(m.Vertices), len(m.Normals))
			}
		})
	}
}

func TestToMeshRejects(t *testing.T) {
	if _, err := New().ToMesh(opaque{}); !errors.Is(err, kernel.ErrUnsupported) {
		t.Errorf("ToMesh(opaque) error = %v, want ErrUnsupported", err)
	}
	bad := prism{polys: []kernel.Polygon{{Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}}}}}
	if _, err := New().ToMesh(bad); err == nil {
		t.Error("ToMesh(degenerate polygon) succeeded")
	}
}
