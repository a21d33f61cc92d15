// Package kernel defines what a mesher needs to know about a solid and the
// interface meshers implement. Brushes expose themselves through the
// capability interfaces here, so a mesher never depends on the brush
// package.
package kernel

import "errors"

// ErrUnsupported is returned by a kernel that cannot mesh the solid it was
// given because the solid lacks the capability the kernel needs.
var ErrUnsupported = errors.New("kernel: unsupported solid")

// Solid is anything with an axis-aligned extent.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Polygon is one planar boundary face: corners counter-clockwise when seen
// from outside, and the outward unit normal.
type Polygon struct {
	Vertices [][3]float64
	Normal   [3]float64
}

// Polyhedron is a solid that can list its boundary faces.
type Polyhedron interface {
	Solid
	Polygons() []Polygon
}

// Plane bounds the half-space of points p with Normal·p <= Distance.
type Plane struct {
	Normal   [3]float64
	Distance float64
}

// HalfSpaces is a convex solid that can list its bounding planes.
type HalfSpaces interface {
	Solid
	Planes() []Plane
}

// Kernel turns solids into triangle meshes.
type Kernel interface {
	// Name identifies the kernel in logs and configuration.
	Name() string
	// ToMesh triangulates s.
	ToMesh(s Solid) (*Mesh, error)
}
