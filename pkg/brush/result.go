package brush

import (
	"fmt"

	"github.com/chazu/brushwork/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// AddFaceCode is the outcome of clipping a geometry with a face.
type AddFaceCode int

const (
	BrushSplit    AddFaceCode = iota // the face cut the solid
	BrushNull                        // the face's half-space excludes the whole solid
	FaceRedundant                    // the face's half-space already contains the solid
)

func (c AddFaceCode) String() string {
	switch c {
	case BrushSplit:
		return "split"
	case BrushNull:
		return "null"
	case FaceRedundant:
		return "redundant"
	default:
		return fmt.Sprintf("AddFaceCode(%d)", int(c))
	}
}

// Changes lists the faces an operation attached to the geometry and the faces
// it detached. The caller owns both; dropped faces are no longer linked to
// any side.
type Changes struct {
	Added   []*Face
	Dropped []*Face
}

// FaceChanges returns c. It lets every result type satisfy Result.
func (c Changes) FaceChanges() Changes { return c }

// IsEmpty reports whether nothing was added or dropped.
func (c Changes) IsEmpty() bool { return len(c.Added) == 0 && len(c.Dropped) == 0 }

// Append adds the faces of o that c does not list yet.
func (c *Changes) Append(o Changes) {
	c.Added = appendFaces(c.Added, o.Added)
	c.Dropped = appendFaces(c.Dropped, o.Dropped)
}

func appendFaces(dst, src []*Face) []*Face {
outer:
	for _, f := range src {
		for _, g := range dst {
			if f == g {
				continue outer
			}
		}
		dst = append(dst, f)
	}
	return dst
}

// Result is implemented by the value every mutating operation returns.
type Result interface {
	FaceChanges() Changes
	result()
}

// AddFaceResult is returned by Geometry.AddFaces.
type AddFaceResult struct {
	Changes
	Code AddFaceCode
}

// MoveVerticesResult is returned by Geometry.MoveVertices.
type MoveVerticesResult struct {
	Changes
	NewVertexPositions []v3.Vec
}

// MoveEdgesResult is returned by Geometry.MoveEdges.
type MoveEdgesResult struct {
	Changes
	NewEdgePositions []geom.Edge3
}

// MoveFacesResult is returned by Geometry.MoveFaces.
type MoveFacesResult struct {
	Changes
	NewFacePositions []geom.Polygon3
}

// SplitResult is returned by Geometry.SplitEdge and Geometry.SplitFace.
type SplitResult struct {
	Changes
	NewVertexPosition v3.Vec
}

// SnapVerticesResult is returned by Geometry.SnapVertices.
type SnapVerticesResult struct {
	Changes
	NewVertexPositions []v3.Vec
}

func (AddFaceResult) result()      {}
func (MoveVerticesResult) result() {}
func (MoveEdgesResult) result()    {}
func (MoveFacesResult) result()    {}
func (SplitResult) result()        {}
func (SnapVerticesResult) result() {}
