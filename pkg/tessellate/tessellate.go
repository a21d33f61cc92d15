// Package tessellate walks a world and produces triangle meshes using a
// geometry kernel. One mesh is produced per brush.
package tessellate

import (
	"fmt"

	"github.com/chazu/brushwork/pkg/brush"
	"github.com/chazu/brushwork/pkg/kernel"
	"github.com/chazu/brushwork/pkg/world"
)

// Tessellate produces one triangle mesh per brush in insertion order using
// the provided geometry kernel. The tessellator is read-only and never
// mutates the world.
func Tessellate(w *world.World, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if w == nil {
		return nil, nil
	}

	meshes := make([]*kernel.Mesh, 0, w.Len())
	for _, b := range w.Brushes() {
		mesh, err := k.ToMesh(b)
		if err != nil {
			return nil, fmt.Errorf("tessellate: %s failed for brush %q: %w", k.Name(), b.Name, err)
		}
		mesh.BrushName = b.Name
		brush.Logger().Debug("tessellated brush", "brush", b.Name, "kernel", k.Name(), "triangles", mesh.TriangleCount())
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}
