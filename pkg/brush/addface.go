package brush

import "fmt"

// AddFaces intersects the solid with the half-space behind each face, in
// order. The code is BrushSplit when any face cut the solid and FaceRedundant
// when none did. When any face would empty the solid the code is BrushNull
// and the geometry is left exactly as it was before the call.
//
// A redundant face is reported as dropped unless its plane coincides with a
// side that has no face yet; it is then attached to that side and reported as
// added.
//
// The error is non-nil only for a kernel fault, which is rolled back.
func (g *Geometry) AddFaces(faces []*Face) (AddFaceResult, error) {
	s := g.toSolid()
	code := FaceRedundant
	for _, f := range faces {
		next, c := s.clip(f.Plane(), f)
		switch c {
		case BrushNull:
			Logger().Debug("brush: face empties solid", "face", f.String())
			return AddFaceResult{Code: BrushNull}, nil
		case BrushSplit:
			s = next
			code = BrushSplit
		case FaceRedundant:
			if i := s.unboundSide(f); i >= 0 {
				s.sides[i].face = f
				s.sides[i].plane = f.Plane()
				continue
			}
			Logger().Debug("brush: redundant face", "face", f.String())
		}
	}

	ng, err := s.link()
	if err != nil {
		Logger().Warn("brush: add faces rolled back", "error", err)
		return AddFaceResult{}, fmt.Errorf("adding %d faces: %w", len(faces), err)
	}
	return AddFaceResult{Changes: g.commit(ng, faces), Code: code}, nil
}

// unboundSide returns the index of the side without a face whose plane
// equals f's, or -1.
func (s solid) unboundSide(f *Face) int {
	for i, side := range s.sides {
		if side.face == nil && side.plane.Equals(f.Plane()) {
			return i
		}
	}
	return -1
}
