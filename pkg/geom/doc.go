// Package geom provides the small set of 3D primitives the brush kernel is
// written against: planes, segments, polygons, axis-aligned boxes and grid
// snapping. Vectors and boxes are the sdfx types (v3.Vec, sdf.Box3) so brush
// geometry can be handed to the sdfx meshing backend without conversion.
//
// All predicates share the tolerances declared in tolerance.go. Keeping one
// epsilon per concern avoids classifying a point as on one plane and in front
// of an equivalent plane elsewhere.
package geom
