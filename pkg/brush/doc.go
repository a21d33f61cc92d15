// Package brush implements the convex polyhedron kernel behind map brushes.
//
// A Geometry owns the vertex/edge/side graph of one convex solid. It is built
// by clipping a world-sized box with the half-spaces of a set of Faces, and
// edited by moving or inserting vertices and snapping them to a grid. Every
// edit is validated before it is applied and leaves the geometry untouched
// when it fails; a successful edit reports which Faces it introduced and
// which it made obsolete, so the owner of the Faces can keep its own
// bookkeeping in step.
//
// Brush is the caller-level aggregate that owns a Face list together with the
// Geometry built from it and applies those reports.
//
// Building with the brushdebug tag runs SanityCheck after every committed
// edit and panics on the first unsound geometry:
//
//	go test -tags brushdebug ./...
//
// None of the types here are safe for concurrent mutation.
package brush
