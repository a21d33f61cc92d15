package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/brushwork/pkg/brush"
	"github.com/chazu/brushwork/pkg/geom"
	"github.com/chazu/brushwork/pkg/world"
	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/go-gl/mathgl/mgl64"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a point or direction.
type sexpVec3 struct {
	vec v3.Vec
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpFace wraps a face that has not been given to a brush yet.
type sexpFace struct {
	face *brush.Face
}

func (f *sexpFace) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(face %s)", f.face)
}
func (f *sexpFace) Type() *zygo.RegisteredType { return nil }

// sexpEdge names an edge by its endpoints.
type sexpEdge struct {
	edge geom.Edge3
}

func (e *sexpEdge) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(edge %s)", e.edge)
}
func (e *sexpEdge) Type() *zygo.RegisteredType { return nil }

// sexpBrushRef refers to a brush in the world by name.
type sexpBrushRef struct {
	name string
}

func (r *sexpBrushRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(brush %q)", r.name)
}
func (r *sexpBrushRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// need returns an error unless at least n positional arguments were given.
func (a kwArgs) need(fn string, n int, usage string) error {
	if len(a.positional) < n {
		return fmt.Errorf("%s requires %s", fn, usage)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

// toVec3 extracts a vector from a sexpVec3.
func toVec3(s zygo.Sexp) (v3.Vec, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return v3.Vec{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// toAxis accepts :x, :y, :z or an arbitrary vec3.
func toAxis(s zygo.Sexp) (v3.Vec, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	name, err := toKeywordString(s)
	if err != nil {
		return v3.Vec{}, fmt.Errorf("expected axis keyword (:x, :y, :z) or vec3: %w", err)
	}
	switch name {
	case "x":
		return v3.Vec{X: 1}, nil
	case "y":
		return v3.Vec{Y: 1}, nil
	case "z":
		return v3.Vec{Z: 1}, nil
	}
	return v3.Vec{}, fmt.Errorf("invalid axis %q, expected x, y, or z", name)
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// toVec3List converts a list of vec3 values.
func toVec3List(s zygo.Sexp) ([]v3.Vec, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	out := make([]v3.Vec, 0, len(items))
	for i, item := range items {
		v, err := toVec3(item)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// vec3List wraps positions as a Lisp list of vec3 values.
func vec3List(vs []v3.Vec) zygo.Sexp {
	items := make([]zygo.Sexp, len(vs))
	for i, v := range vs {
		items[i] = &sexpVec3{vec: v}
	}
	return zygo.MakeList(items)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// builtins holds the world a script populates. Every builtin is a method so
// registration stays a flat list.
type builtins struct {
	w *world.World
}

// registerBuiltins installs the brush DSL into a zygomys environment. Source
// must be run through preprocessSource first so keywords and kebab-case names
// are recognizable.
func registerBuiltins(env *zygo.Zlisp, w *world.World) {
	b := &builtins{w: w}

	env.AddFunction("vec3", b.vec3)
	env.AddFunction("face", b.face)
	env.AddFunction("plane", b.plane)
	env.AddFunction("edge", b.edge)
	env.AddFunction("brush", b.brush)
	env.AddFunction("cuboid", b.cuboid)
	env.AddFunction("move_vertices", b.moveVertices)
	env.AddFunction("move_edges", b.moveEdges)
	env.AddFunction("move_face", b.moveFace)
	env.AddFunction("split_edge", b.splitEdge)
	env.AddFunction("split_face", b.splitFace)
	env.AddFunction("snap", b.snap)
	env.AddFunction("translate", b.translate)
	env.AddFunction("rotate", b.rotate)
	env.AddFunction("scale", b.scale)
	env.AddFunction("remove", b.remove)
}

// lookup resolves a brush argument given as a name or a brush reference.
func (b *builtins) lookup(s zygo.Sexp) (*brush.Brush, error) {
	var name string
	switch v := s.(type) {
	case *sexpBrushRef:
		name = v.name
	case *zygo.SexpStr:
		name = v.S
	default:
		return nil, fmt.Errorf("expected brush name, got %T (%s)", s, s.SexpString(nil))
	}
	return b.w.Get(name)
}

// texture reads the optional :texture keyword.
func texture(pa kwArgs) (string, error) {
	v, ok := pa.kw["texture"]
	if !ok {
		return "", nil
	}
	return toString(v)
}

// edited records an edit of br and returns a reference to it.
func (b *builtins) edited(br *brush.Brush) zygo.Sexp {
	b.w.Touch()
	return &sexpBrushRef{name: br.Name}
}

// (vec3 1 2 3)
func (b *builtins) vec3(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 3 {
		return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
	}
	var c [3]float64
	for i, axis := range []string{"x", "y", "z"} {
		f, err := toFloat64(args[i])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: %s: %w", axis, err)
		}
		c[i] = f
	}
	return &sexpVec3{vec: v3.Vec{X: c[0], Y: c[1], Z: c[2]}}, nil
}

// (face p0 p1 p2 :texture "t"), points clockwise seen from outside.
func (b *builtins) face(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.need("face", 3, "three points"); err != nil {
		return zygo.SexpNull, err
	}
	var pts [3]v3.Vec
	for i := range pts {
		p, err := toVec3(pa.positional[i])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("face: point %d: %w", i, err)
		}
		pts[i] = p
	}
	tex, err := texture(pa)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("face: texture: %w", err)
	}
	f, err := brush.NewFace(pts[0], pts[1], pts[2], b.w.Attributes(tex))
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("face: %w", err)
	}
	return &sexpFace{face: f}, nil
}

// (plane :normal (vec3 0 0 1) :distance 64 :texture "t")
func (b *builtins) plane(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	nv, ok := pa.kw["normal"]
	if !ok {
		return zygo.SexpNull, fmt.Errorf("plane requires :normal")
	}
	normal, err := toVec3(nv)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("plane: normal: %w", err)
	}
	var dist float64
	if v, ok := pa.kw["distance"]; ok {
		if dist, err = toFloat64(v); err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: distance: %w", err)
		}
	}
	p, err := geom.NewPlane(normal, dist)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("plane: %w", err)
	}
	tex, err := texture(pa)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("plane: texture: %w", err)
	}
	return &sexpFace{face: brush.NewFaceFromPlane(p, b.w.Attributes(tex))}, nil
}

// (edge a b)
func (b *builtins) edge(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 2 {
		return zygo.SexpNull, fmt.Errorf("edge requires exactly 2 points, got %d", len(args))
	}
	start, err := toVec3(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("edge: start: %w", err)
	}
	end, err := toVec3(args[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("edge: end: %w", err)
	}
	return &sexpEdge{edge: geom.Edge3{Start: start, End: end}}, nil
}

// (brush "name" face...)
func (b *builtins) brush(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) < 1 {
		return zygo.SexpNull, fmt.Errorf("brush requires a name argument")
	}
	brushName, err := toString(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("brush: name: %w", err)
	}
	faces := make([]*brush.Face, 0, len(args)-1)
	for i, a := range args[1:] {
		f, ok := a.(*sexpFace)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("brush %q: argument %d: expected face, got %T (%s)",
				brushName, i+1, a, a.SexpString(nil))
		}
		faces = append(faces, f.face.Clone())
	}
	br, err := brush.NewBrush(brushName, b.w.Bounds(), faces)
	if err != nil {
		return zygo.SexpNull, err
	}
	if err := b.w.Add(br); err != nil {
		return zygo.SexpNull, err
	}
	return &sexpBrushRef{name: brushName}, nil
}

// (cuboid "name" :min (vec3 0 0 0) :max (vec3 64 64 64) :texture "t")
func (b *builtins) cuboid(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.need("cuboid", 1, "a name argument"); err != nil {
		return zygo.SexpNull, err
	}
	brushName, err := toString(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("cuboid: name: %w", err)
	}
	var corners [2]v3.Vec
	for i, kw := range []string{"min", "max"} {
		v, ok := pa.kw[kw]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("cuboid %q requires :%s", brushName, kw)
		}
		if corners[i], err = toVec3(v); err != nil {
			return zygo.SexpNull, fmt.Errorf("cuboid %q: %s: %w", brushName, kw, err)
		}
	}
	tex, err := texture(pa)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("cuboid %q: texture: %w", brushName, err)
	}
	box := geom.BoundsOf(corners[:])
	br, err := brush.NewCuboid(brushName, b.w.Bounds(), box, b.w.Attributes(tex))
	if err != nil {
		return zygo.SexpNull, err
	}
	if err := b.w.Add(br); err != nil {
		return zygo.SexpNull, err
	}
	return &sexpBrushRef{name: brushName}, nil
}

// (move-vertices "name" (list v...) delta) returns the moved positions.
func (b *builtins) moveVertices(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.need("move-vertices", 3, "a brush, a vertex list and a delta"); err != nil {
		return zygo.SexpNull, err
	}
	br, err := b.lookup(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("move-vertices: %w", err)
	}
	positions, err := toVec3List(pa.positional[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("move-vertices: vertices: %w", err)
	}
	delta, err := toVec3(pa.positional[2])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("move-vertices: delta: %w", err)
	}
	r, err := br.MoveVertices(b.w.Bounds(), positions, delta)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("move-vertices: %w", err)
	}
	b.w.Touch()
	return vec3List(r.NewVertexPositions), nil
}

// (move-edges "name" (list (edge a b)...) delta)
func (b *builtins) moveEdges(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.need("move-edges", 3, "a brush, an edge list and a delta"); err != nil {
		return zygo.SexpNull, err
	}
	br, err := b.lookup(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("move-edges: %w", err)
	}
	items, err := sexpListToSlice(pa.positional[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("move-edges: edges: %w", err)
	}
	edges := make([]geom.Edge3, 0, len(items))
	for i, item := range items {
		e, ok := item.(*sexpEdge)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("move-edges: entry %d: expected edge, got %T", i, item)
		}
		edges = append(edges, e.edge)
	}
	delta, err := toVec3(pa.positional[2])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("move-edges: delta: %w", err)
	}
	if _, err := br.MoveEdges(b.w.Bounds(), edges, delta); err != nil {
		return zygo.SexpNull, fmt.Errorf("move-edges: %w", err)
	}
	return b.edited(br), nil
}

// faceArgs resolves the brush and the face facing :normal for move-face and
// split-face, along with :delta.
func (b *builtins) faceArgs(fn string, args []zygo.Sexp) (*brush.Brush, geom.Polygon3, v3.Vec, error) {
	pa := parseArgs(args)
	if err := pa.need(fn, 1, "a brush argument"); err != nil {
		return nil, geom.Polygon3{}, v3.Vec{}, err
	}
	br, err := b.lookup(pa.positional[0])
	if err != nil {
		return nil, geom.Polygon3{}, v3.Vec{}, fmt.Errorf("%s: %w", fn, err)
	}
	var vecs [2]v3.Vec
	for i, kw := range []string{"normal", "delta"} {
		v, ok := pa.kw[kw]
		if !ok {
			return nil, geom.Polygon3{}, v3.Vec{}, fmt.Errorf("%s requires :%s", fn, kw)
		}
		if vecs[i], err = toVec3(v); err != nil {
			return nil, geom.Polygon3{}, v3.Vec{}, fmt.Errorf("%s: %s: %w", fn, kw, err)
		}
	}
	f := br.FaceOn(vecs[0])
	if f == nil {
		return nil, geom.Polygon3{}, v3.Vec{}, fmt.Errorf("%s: brush %q has no faces", fn, br.Name)
	}
	return br, f.Polygon(), vecs[1], nil
}

// (move-face "name" :normal n :delta d) moves the face whose normal is
// closest to n.
func (b *builtins) moveFace(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	br, poly, delta, err := b.faceArgs("move-face", args)
	if err != nil {
		return zygo.SexpNull, err
	}
	if _, err := br.MoveFaces(b.w.Bounds(), []geom.Polygon3{poly}, delta); err != nil {
		return zygo.SexpNull, fmt.Errorf("move-face: %w", err)
	}
	return b.edited(br), nil
}

// (split-edge "name" a b delta) returns the new vertex.
func (b *builtins) splitEdge(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.need("split-edge", 4, "a brush, two endpoints and a delta"); err != nil {
		return zygo.SexpNull, err
	}
	br, err := b.lookup(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("split-edge: %w", err)
	}
	var vecs [3]v3.Vec
	for i := range vecs {
		if vecs[i], err = toVec3(pa.positional[i+1]); err != nil {
			return zygo.SexpNull, fmt.Errorf("split-edge: argument %d: %w", i+1, err)
		}
	}
	r, err := br.SplitEdge(b.w.Bounds(), geom.Edge3{Start: vecs[0], End: vecs[1]}, vecs[2])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("split-edge: %w", err)
	}
	b.w.Touch()
	return &sexpVec3{vec: r.NewVertexPosition}, nil
}

// (split-face "name" :normal n :delta d) returns the new vertex.
func (b *builtins) splitFace(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	br, poly, delta, err := b.faceArgs("split-face", args)
	if err != nil {
		return zygo.SexpNull, err
	}
	r, err := br.SplitFace(b.w.Bounds(), poly, delta)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("split-face: %w", err)
	}
	b.w.Touch()
	return &sexpVec3{vec: r.NewVertexPosition}, nil
}

// (snap "name" grid)
func (b *builtins) snap(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 2 {
		return zygo.SexpNull, fmt.Errorf("snap requires a brush and a grid size")
	}
	br, err := b.lookup(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("snap: %w", err)
	}
	grid, err := toFloat64(args[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("snap: grid: %w", err)
	}
	if _, err := br.SnapAll(b.w.Bounds(), grid); err != nil {
		return zygo.SexpNull, fmt.Errorf("snap: %w", err)
	}
	return b.edited(br), nil
}

// (translate "name" delta)
func (b *builtins) translate(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 2 {
		return zygo.SexpNull, fmt.Errorf("translate requires a brush and a delta")
	}
	br, err := b.lookup(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("translate: %w", err)
	}
	delta, err := toVec3(args[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("translate: delta: %w", err)
	}
	if err := br.Translate(b.w.Bounds(), delta); err != nil {
		return zygo.SexpNull, fmt.Errorf("translate: %w", err)
	}
	return b.edited(br), nil
}

// center reads :center, defaulting to the middle of the brush bounds.
func center(pa kwArgs, br *brush.Brush) (v3.Vec, error) {
	if v, ok := pa.kw["center"]; ok {
		return toVec3(v)
	}
	return br.Bounds().Center(), nil
}

// (rotate "name" :axis :z :degrees 90 :center v)
func (b *builtins) rotate(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.need("rotate", 1, "a brush argument"); err != nil {
		return zygo.SexpNull, err
	}
	br, err := b.lookup(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
	}
	axis := v3.Vec{Z: 1}
	if v, ok := pa.kw["axis"]; ok {
		if axis, err = toAxis(v); err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: axis: %w", err)
		}
	}
	dv, ok := pa.kw["degrees"]
	if !ok {
		return zygo.SexpNull, fmt.Errorf("rotate requires :degrees")
	}
	degrees, err := toFloat64(dv)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("rotate: degrees: %w", err)
	}
	c, err := center(pa, br)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("rotate: center: %w", err)
	}
	if err := br.Transform(b.w.Bounds(), brush.RotationAbout(axis, degrees, c)); err != nil {
		return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
	}
	return b.edited(br), nil
}

// (scale "name" (vec3 2 1 1) :center v)
func (b *builtins) scale(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.need("scale", 2, "a brush and a scale vector"); err != nil {
		return zygo.SexpNull, err
	}
	br, err := b.lookup(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("scale: %w", err)
	}
	s, err := toVec3(pa.positional[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("scale: factors: %w", err)
	}
	c, err := center(pa, br)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("scale: center: %w", err)
	}
	m := mgl64.Translate3D(c.X, c.Y, c.Z).
		Mul4(mgl64.Scale3D(s.X, s.Y, s.Z)).
		Mul4(mgl64.Translate3D(-c.X, -c.Y, -c.Z))
	if err := br.Transform(b.w.Bounds(), m); err != nil {
		return zygo.SexpNull, fmt.Errorf("scale: %w", err)
	}
	return b.edited(br), nil
}

// (remove "name")
func (b *builtins) remove(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 1 {
		return zygo.SexpNull, fmt.Errorf("remove requires a brush argument")
	}
	br, err := b.lookup(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("remove: %w", err)
	}
	if err := b.w.Remove(br.Name); err != nil {
		return zygo.SexpNull, fmt.Errorf("remove: %w", err)
	}
	return zygo.SexpNull, nil
}
