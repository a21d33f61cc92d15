package world

import (
	"errors"
	"strings"
	"testing"

	"github.com/chazu/brushwork/pkg/brush"
	"github.com/chazu/brushwork/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func cuboid(t *testing.T, w *World, name string, min, max v3.Vec) *brush.Brush {
	t.Helper()
	b, err := brush.NewCuboid(name, w.Bounds(), sdf.Box3{Min: min, Max: max}, w.Attributes(""))
	if err != nil {
		t.Fatalf("NewCuboid(%s): %v", name, err)
	}
	return b
}

// resultHasError returns true if result.Errors contains at least one entry
// whose Message contains substr.
func resultHasError(r ValidationResult, substr string) bool {
	for _, e := range r.Errors {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// resultHasWarning returns true if result.Warnings contains at least one entry
// whose Message contains substr.
func resultHasWarning(r ValidationResult, substr string) bool {
	for _, w := range r.Warnings {
		if strings.Contains(w.Message, substr) {
			return true
		}
	}
	return false
}

func TestNew(t *testing.T) {
	w := New()
	if w.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", w.Len())
	}
	if w.Defaults.WorldSize != DefaultWorldSize || w.Defaults.Texture != brush.DefaultTexture {
		t.Errorf("Defaults = %+v", w.Defaults)
	}
	if b := w.Bounds(); b.Max.X != DefaultWorldSize/2 || b.Min.Z != -DefaultWorldSize/2 {
		t.Errorf("Bounds() = %v", b)
	}
	custom := NewWithDefaults(Defaults{WorldSize: 100})
	if custom.Defaults.WorldSize != 100 || custom.Defaults.Texture != brush.DefaultTexture {
		t.Errorf("custom Defaults = %+v", custom.Defaults)
	}
	if a := custom.Attributes("stone"); a.Texture != "stone" || a.XScale != 1 {
		t.Errorf("Attributes = %+v", a)
	}
}

func TestAddLookupRemove(t *testing.T) {
	w := New()
	a := cuboid(t, w, "a", v3.Vec{}, v3.Vec{X: 1, Y: 1, Z: 1})
	b := cuboid(t, w, "b", v3.Vec{X: 2}, v3.Vec{X: 3, Y: 1, Z: 1})
	for _, br := range []*brush.Brush{a, b} {
		if err := w.Add(br); err != nil {
			t.Fatalf("Add(%s): %v", br.Name, err)
		}
	}
	if err := w.Add(cuboid(t, w, "a", v3.Vec{}, v3.Vec{X: 2, Y: 2, Z: 2})); !errors.Is(err, ErrDuplicateBrush) {
		t.Errorf("Add duplicate error = %v, want ErrDuplicateBrush", err)
	}
	if got := w.Names(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Names() = %v", got)
	}
	if w.Lookup("a") != a || w.MustLookup("b") != b {
		t.Error("lookup returned the wrong brush")
	}
	if w.Lookup("nope") != nil {
		t.Error("Lookup(nope) != nil")
	}
	if _, err := w.Get("nope"); !errors.Is(err, ErrUnknownBrush) {
		t.Errorf("Get(nope) error = %v", err)
	}
	v := w.Version
	if err := w.Remove("a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if w.Version <= v {
		t.Error("Remove did not bump the version")
	}
	if err := w.Remove("a"); !errors.Is(err, ErrUnknownBrush) {
		t.Errorf("second Remove error = %v", err)
	}
	if got := w.Names(); len(got) != 1 || got[0] != "b" {
		t.Errorf("Names() after remove = %v", got)
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup did not panic")
		}
	}()
	New().MustLookup("missing")
}

func TestValidateSoundWorld(t *testing.T) {
	w := New()
	if err := w.Add(cuboid(t, w, "floor", v3.Vec{X: -64, Y: -64, Z: -16}, v3.Vec{X: 64, Y: 64})); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if errs := Validate(w); len(errs) != 0 {
		t.Errorf("Validate() = %v", errs)
	}
	r := ValidateAll(w)
	if len(r.Errors) != 0 || len(r.Warnings) != 0 {
		t.Errorf("ValidateAll() = %+v", r)
	}
}

func TestValidateFindsDamage(t *testing.T) {
	w := New()
	b := cuboid(t, w, "bent", v3.Vec{}, v3.Vec{X: 8, Y: 8, Z: 8})
	if err := w.Add(b); err != nil {
		t.Fatalf("Add: %v", err)
	}
	g := b.Geometry()
	g.Vertices[0].Position = g.Vertices[0].Position.Add(v3.Vec{X: 1, Y: 2, Z: 3})
	g.Edges[0].Left = nil

	r := ValidateAll(w)
	if !resultHasError(r, "not closed") {
		t.Error("expected closure error")
	}
	if !resultHasError(r, "is off side") {
		t.Error("expected planarity error")
	}
	for _, e := range r.Errors {
		if e.Brush != "bent" || e.Severity != SeverityError {
			t.Errorf("finding %v", e)
		}
	}
}

func TestValidateContainment(t *testing.T) {
	w := NewWithDefaults(Defaults{WorldSize: 64})
	b := cuboid(t, w, "edge", v3.Vec{}, v3.Vec{X: 8, Y: 8, Z: 8})
	if err := w.Add(b); err != nil {
		t.Fatalf("Add: %v", err)
	}
	w.Defaults.WorldSize = 8
	if !resultHasError(ValidateAll(w), "world bounds") {
		t.Error("expected containment error after shrinking the world")
	}
}

func TestValidateWarnings(t *testing.T) {
	w := New()
	open, err := brush.NewBrush("open", w.Bounds(), []*brush.Face{
		brush.NewFaceFromPlane(geom.Plane{Normal: v3.Vec{X: 1}, Distance: 0}, w.Attributes("")),
	})
	if err != nil {
		t.Fatalf("NewBrush: %v", err)
	}
	brushes := []*brush.Brush{
		open,
		cuboid(t, w, "sliver", v3.Vec{}, v3.Vec{X: 64, Y: 64, Z: 0.25}),
		cuboid(t, w, "one", v3.Vec{Z: 10}, v3.Vec{X: 4, Y: 4, Z: 14}),
		cuboid(t, w, "two", v3.Vec{Z: 10}, v3.Vec{X: 4, Y: 4, Z: 14}),
	}
	for _, b := range brushes {
		if err := w.Add(b); err != nil {
			t.Fatalf("Add(%s): %v", b.Name, err)
		}
	}

	r := ValidateAll(w)
	if len(r.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", r.Errors)
	}
	tests := []struct {
		brush, substr string
	}{
		{"open", "bounded by the world"},
		{"sliver", "sliver"},
		{"two", `duplicates brush "one"`},
	}
	for _, tt := range tests {
		found := false
		for _, wn := range r.Warnings {
			if wn.Brush == tt.brush && strings.Contains(wn.Message, tt.substr) {
				found = true
			}
		}
		if !found {
			t.Errorf("no warning %q for %s in %+v", tt.substr, tt.brush, r.Warnings)
		}
	}
	if resultHasWarning(r, `duplicates brush "two"`) {
		t.Error("duplicate reported in both directions")
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Brush: "a", Message: "broken", Severity: SeverityError}
	if got := e.Error(); got != `[error] brush "a": broken` {
		t.Errorf("Error() = %q", got)
	}
	e = ValidationError{Message: "empty", Severity: SeverityWarning}
	if got := e.Error(); got != "[warning] empty" {
		t.Errorf("Error() = %q", got)
	}
}
