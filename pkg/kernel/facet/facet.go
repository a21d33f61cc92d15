// Package facet meshes polyhedra exactly by fanning every convex boundary
// polygon from its first corner.
package facet

import (
	"fmt"

	"github.com/chazu/brushwork/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// Kernel implements kernel.Kernel for kernel.Polyhedron solids.
type Kernel struct{}

// New returns a facet kernel.
func New() *Kernel {
	return &Kernel{}
}

// Name returns "facet".
func (k *Kernel) Name() string { return "facet" }

// ToMesh emits n-2 triangles per n-gon with the polygon's normal on every
// corner.
func (k *Kernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	p, ok := s.(kernel.Polyhedron)
	if !ok {
		return nil, fmt.Errorf("facet: %T is not a polyhedron: %w", s, kernel.ErrUnsupported)
	}
	m := &kernel.Mesh{}
	for _, poly := range p.Polygons() {
		if len(poly.Vertices) < 3 {
			return nil, fmt.Errorf("facet: polygon with %d corners", len(poly.Vertices))
		}
		v := poly.Vertices
		for i := 1; i+1 < len(v); i++ {
			m.AddTriangle(v[0], v[i], v[i+1], poly.Normal)
		}
	}
	return m, nil
}
