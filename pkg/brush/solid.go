package brush

import (
	"fmt"
	"sort"

	"github.com/chazu/brushwork/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// solid is the scratch form of a polyhedron that edits are computed on: a
// dense point array and, per side, a counter-clockwise loop of indices into
// it. Edits work on a copy and the result is linked into a fresh Geometry, so
// the live graph is only ever replaced whole.
type solid struct {
	points []v3.Vec
	sides  []solidSide
}

type solidSide struct {
	plane geom.Plane
	face  *Face
	loop  []int
}

// boxSolid returns the six-sided solid of b. Its sides carry no face.
func boxSolid(b sdf.Box3) solid {
	corners := geom.BoxCorners(b)
	s := solid{points: corners[:]}
	for axis := 0; axis < 3; axis++ {
		for _, high := range []bool{false, true} {
			var normal v3.Vec
			sign := -1.0
			if high {
				sign = 1
			}
			switch axis {
			case 0:
				normal.X = sign
			case 1:
				normal.Y = sign
			case 2:
				normal.Z = sign
			}
			var loop []int
			for i := range corners {
				if (i&(1<<axis) != 0) == high {
					loop = append(loop, i)
				}
			}
			plane := geom.Plane{Normal: normal, Distance: normal.Dot(corners[loop[0]])}
			geom.SortAround(plane, s.points, loop)
			s.sides = append(s.sides, solidSide{plane: plane, loop: loop})
		}
	}
	return s
}

// toSolid converts g into scratch form.
func (g *Geometry) toSolid() solid {
	index := make(map[*Vertex]int, len(g.Vertices))
	s := solid{points: make([]v3.Vec, len(g.Vertices))}
	for i, v := range g.Vertices {
		index[v] = i
		s.points[i] = v.Position
	}
	for _, side := range g.Sides {
		loop := make([]int, len(side.Vertices))
		for i, v := range side.Vertices {
			loop[i] = index[v]
		}
		s.sides = append(s.sides, solidSide{plane: side.Plane, face: side.Face, loop: loop})
	}
	return s
}

// classify returns the status of every point against p and how many points
// lie strictly above and below it.
func (s solid) classify(p geom.Plane) (status []geom.PointStatus, above, below int) {
	status = make([]geom.PointStatus, len(s.points))
	for i, pt := range s.points {
		status[i] = p.PointStatus(pt)
		switch status[i] {
		case geom.PointAbove:
			above++
		case geom.PointBelow:
			below++
		}
	}
	return status, above, below
}

// clip intersects s with the half-space behind p. The new cap side is bound
// to face. Points on the plane are kept: they count as behind it.
func (s solid) clip(p geom.Plane, face *Face) (solid, AddFaceCode) {
	status, above, below := s.classify(p)
	if above == 0 {
		return s, FaceRedundant
	}
	if below == 0 {
		return s, BrushNull
	}

	out := solid{points: append([]v3.Vec(nil), s.points...)}
	cuts := make(map[[2]int]int)
	cut := func(a, b int) int {
		key := edgeKey(a, b)
		if idx, ok := cuts[key]; ok {
			return idx
		}
		out.points = append(out.points, p.IntersectSegment(s.points[a], s.points[b]))
		idx := len(out.points) - 1
		cuts[key] = idx
		return idx
	}
	onCap := make(map[int]bool)
	onPlane := func(idx int) bool {
		return idx >= len(status) || status[idx] == geom.PointInside
	}

	for _, side := range s.sides {
		n := len(side.loop)
		loop := make([]int, 0, n+1)
		for i, a := range side.loop {
			b := side.loop[(i+1)%n]
			sa, sb := status[a], status[b]
			if sa != geom.PointAbove {
				loop = appendDistinct(loop, a)
				if sa == geom.PointInside {
					onCap[a] = true
				}
			}
			if (sa == geom.PointAbove && sb == geom.PointBelow) || (sa == geom.PointBelow && sb == geom.PointAbove) {
				c := cut(a, b)
				loop = appendDistinct(loop, c)
				onCap[c] = true
			}
		}
		if len(loop) > 1 && loop[0] == loop[len(loop)-1] {
			loop = loop[:len(loop)-1]
		}
		if len(loop) < 3 {
			continue
		}
		flat := true
		for _, idx := range loop {
			if !onPlane(idx) {
				flat = false
				break
			}
		}
		if flat {
			continue
		}
		out.sides = append(out.sides, solidSide{plane: side.plane, face: side.face, loop: loop})
	}

	capLoop := make([]int, 0, len(onCap))
	for idx := range onCap {
		capLoop = append(capLoop, idx)
	}
	if len(capLoop) < 3 {
		// The plane only grazes the solid; nothing worth a side is cut off.
		return s, FaceRedundant
	}
	sort.Ints(capLoop)
	geom.SortAround(p, out.points, capLoop)
	out.sides = append(out.sides, solidSide{plane: p, face: face, loop: capLoop})
	return out.compact(), BrushSplit
}

// compact drops points no side refers to and renumbers the loops.
func (s solid) compact() solid {
	remap := make([]int, len(s.points))
	for i := range remap {
		remap[i] = -1
	}
	out := solid{sides: make([]solidSide, len(s.sides))}
	for si, side := range s.sides {
		loop := make([]int, len(side.loop))
		for i, idx := range side.loop {
			if remap[idx] < 0 {
				remap[idx] = len(out.points)
				out.points = append(out.points, s.points[idx])
			}
			loop[i] = remap[idx]
		}
		out.sides[si] = solidSide{plane: side.plane, face: side.face, loop: loop}
	}
	return out
}

// link builds the pointer graph of s. It fails when an edge is shared by
// more than two sides or traversed twice in the same direction, which a
// convex solid never does.
func (s solid) link() (*Geometry, error) {
	g := &Geometry{Vertices: make([]*Vertex, len(s.points))}
	for i, p := range s.points {
		g.Vertices[i] = &Vertex{Position: p}
	}
	edges := make(map[[2]int]*Edge)
	for _, ss := range s.sides {
		side := &Side{Plane: ss.plane, Face: ss.face}
		n := len(ss.loop)
		for i, a := range ss.loop {
			b := ss.loop[(i+1)%n]
			if a == b {
				return nil, fmt.Errorf("%w: side %s repeats vertex %v", ErrKernelFault, ss.plane, s.points[a])
			}
			va, vb := g.Vertices[a], g.Vertices[b]
			key := edgeKey(a, b)
			e, ok := edges[key]
			switch {
			case !ok:
				e = &Edge{Start: va, End: vb, Right: side}
				edges[key] = e
				g.Edges = append(g.Edges, e)
				va.edges = append(va.edges, e)
				vb.edges = append(vb.edges, e)
			case e.Start == va || e.Left != nil:
				return nil, fmt.Errorf("%w: edge %v is not two-manifold", ErrKernelFault, e.Segment())
			default:
				e.Left = side
			}
			side.Vertices = append(side.Vertices, va)
			side.Edges = append(side.Edges, e)
		}
		g.Sides = append(g.Sides, side)
	}
	g.UpdateBounds()
	return g, nil
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func appendDistinct(loop []int, idx int) []int {
	if len(loop) > 0 && loop[len(loop)-1] == idx {
		return loop
	}
	return append(loop, idx)
}
