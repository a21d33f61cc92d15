package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Snap rounds f to the nearest multiple of grid.
func Snap(f, grid float64) float64 {
	if grid <= 0 {
		return f
	}
	return math.Round(f/grid) * grid
}

// SnapVec snaps every component of v to grid.
func SnapVec(v v3.Vec, grid float64) v3.Vec {
	return v3.Vec{X: Snap(v.X, grid), Y: Snap(v.Y, grid), Z: Snap(v.Z, grid)}
}
