package geom

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// PointStatus classifies a point against a plane.
type PointStatus int

const (
	PointAbove  PointStatus = iota // in front of the plane, outside the solid
	PointBelow                     // behind the plane, inside the solid
	PointInside                    // on the plane within PointStatusEpsilon
)

func (s PointStatus) String() string {
	switch s {
	case PointAbove:
		return "above"
	case PointBelow:
		return "below"
	case PointInside:
		return "inside"
	default:
		return fmt.Sprintf("PointStatus(%d)", int(s))
	}
}

// Plane is the set of points p with Normal·p = Distance. Normal is unit
// length and points out of the half-space it bounds.
type Plane struct {
	Normal   v3.Vec
	Distance float64
}

// NewPlane returns the plane with the given normal (normalized here) passing
// at the given distance from the origin, measured along the normalized normal.
func NewPlane(normal v3.Vec, distance float64) (Plane, error) {
	l := normal.Length()
	if l <= AlmostZero {
		return Plane{}, fmt.Errorf("geom: plane normal %v has no length", normal)
	}
	return Plane{Normal: normal.MulScalar(1 / l), Distance: distance}, nil
}

// PlaneThrough returns the plane with the given normal containing anchor.
func PlaneThrough(anchor, normal v3.Vec) (Plane, error) {
	n := Normalize(normal)
	if IsZero(n) {
		return Plane{}, fmt.Errorf("geom: plane normal %v has no length", normal)
	}
	return Plane{Normal: n, Distance: n.Dot(anchor)}, nil
}

// PlaneFromPoints returns the plane through three points given in map order:
// clockwise when seen from the front, so the normal is (p2-p0)×(p1-p0).
// ok is false when the points are collinear.
func PlaneFromPoints(p0, p1, p2 v3.Vec) (Plane, bool) {
	a := p2.Sub(p0)
	b := p1.Sub(p0)
	n := a.Cross(b)
	l := n.Length()
	if l <= ColinearEpsilon*a.Length()*b.Length() || l <= AlmostZero {
		return Plane{}, false
	}
	n = n.MulScalar(1 / l)
	return Plane{Normal: n, Distance: n.Dot(p0)}, true
}

// PointDistance returns the signed distance of v from the plane; positive in
// front.
func (p Plane) PointDistance(v v3.Vec) float64 {
	return p.Normal.Dot(v) - p.Distance
}

// PointStatus classifies v. Points within PointStatusEpsilon are inside.
func (p Plane) PointStatus(v v3.Vec) PointStatus {
	d := p.PointDistance(v)
	switch {
	case d > PointStatusEpsilon:
		return PointAbove
	case d < -PointStatusEpsilon:
		return PointBelow
	default:
		return PointInside
	}
}

// Anchor returns the point of the plane closest to the origin.
func (p Plane) Anchor() v3.Vec {
	return p.Normal.MulScalar(p.Distance)
}

// Flipped returns the plane bounding the opposite half-space.
func (p Plane) Flipped() Plane {
	return Plane{Normal: p.Normal.MulScalar(-1), Distance: -p.Distance}
}

// Translated returns the plane moved by delta.
func (p Plane) Translated(delta v3.Vec) Plane {
	return Plane{Normal: p.Normal, Distance: p.Distance + p.Normal.Dot(delta)}
}

// Equals reports whether both planes bound the same half-space within the
// package tolerances.
func (p Plane) Equals(o Plane) bool {
	if p.Normal.Dot(o.Normal) < 1-ColinearEpsilon {
		return false
	}
	return math.Abs(p.Distance-o.Distance) <= PointStatusEpsilon
}

// IntersectSegment returns the point where the segment a-b crosses the plane.
// The caller guarantees a and b lie on opposite sides.
func (p Plane) IntersectSegment(a, b v3.Vec) v3.Vec {
	da := p.PointDistance(a)
	db := p.PointDistance(b)
	t := da / (da - db)
	return Correct(a.Add(b.Sub(a).MulScalar(t)))
}

// Basis returns two unit vectors u, w spanning the plane such that u, w and
// the normal form a right-handed frame. Angles measured from u towards w run
// counter-clockwise when seen from the front.
func (p Plane) Basis() (u, w v3.Vec) {
	n := p.Normal
	ref := v3.Vec{X: 1}
	if math.Abs(n.X) > 0.9 {
		ref = v3.Vec{Y: 1}
	}
	u = Normalize(ref.Sub(n.MulScalar(n.Dot(ref))))
	w = n.Cross(u)
	return u, w
}

func (p Plane) String() string {
	return fmt.Sprintf("(%.4g %.4g %.4g) %.4g", p.Normal.X, p.Normal.Y, p.Normal.Z, p.Distance)
}
