// Package sdfx meshes convex solids with the github.com/deadsy/sdfx
// marching cubes renderer. A solid's bounding planes become a signed
// distance field; the mesh approximates the exact facet mesh to within the
// cell size.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/brushwork/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface checks.
var _ kernel.Kernel = (*SdfxKernel)(nil)
var _ sdf.SDF3 = (*halfSpaceSDF)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 64

// halfSpaceSDF is the intersection of half-spaces as a distance field: the
// largest signed plane distance. It is exact inside the solid and a lower
// bound outside, which is all marching cubes needs.
type halfSpaceSDF struct {
	planes []kernel.Plane
	bb     sdf.Box3
}

// Evaluate returns the signed distance bound at p.
func (s *halfSpaceSDF) Evaluate(p v3.Vec) float64 {
	d := math.Inf(-1)
	for _, pl := range s.planes {
		n := v3.Vec{X: pl.Normal[0], Y: pl.Normal[1], Z: pl.Normal[2]}
		d = math.Max(d, n.Dot(p)-pl.Distance)
	}
	return d
}

// BoundingBox returns the solid's bounds.
func (s *halfSpaceSDF) BoundingBox() sdf.Box3 {
	return s.bb
}

// SdfxKernel implements kernel.Kernel for kernel.HalfSpaces solids.
type SdfxKernel struct {
	cells int
}

// New returns a kernel meshing with the default resolution.
func New() *SdfxKernel {
	return &SdfxKernel{cells: defaultMeshCells}
}

// NewWithCells returns a kernel that divides the longest side of a solid's
// bounds into cells marching cubes cells.
func NewWithCells(cells int) *SdfxKernel {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	return &SdfxKernel{cells: cells}
}

// Name returns "sdfx".
func (k *SdfxKernel) Name() string { return "sdfx" }

// SDF returns the distance field of s.
func SDF(s kernel.HalfSpaces) (sdf.SDF3, error) {
	planes := s.Planes()
	if len(planes) < 4 {
		return nil, fmt.Errorf("sdfx: %d planes bound no volume", len(planes))
	}
	min, max := s.BoundingBox()
	lo := v3.Vec{X: min[0], Y: min[1], Z: min[2]}
	hi := v3.Vec{X: max[0], Y: max[1], Z: max[2]}
	// Leave room around the surface so the outermost cells straddle it.
	pad := hi.Sub(lo).MulScalar(0.05)
	bb := sdf.Box3{Min: lo.Sub(pad), Max: hi.Add(pad)}
	return &halfSpaceSDF{planes: planes, bb: bb}, nil
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	hs, ok := s.(kernel.HalfSpaces)
	if !ok {
		return nil, fmt.Errorf("sdfx: %T has no bounding planes: %w", s, kernel.ErrUnsupported)
	}
	sdf3, err := SDF(hs)
	if err != nil {
		return nil, err
	}

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
