package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/chazu/brushwork/pkg/world"
)

func TestEvaluateEmptySource(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "empty", source: ""},
		{name: "whitespace", source: "   \n\t  \n  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, evalErrs, err := NewEngine().Evaluate(tt.source)
			if err != nil {
				t.Fatalf("unexpected fatal error: %v", err)
			}
			if len(evalErrs) > 0 {
				t.Fatalf("unexpected eval errors: %v", evalErrs)
			}
			if w == nil {
				t.Fatal("expected non-nil world")
			}
			if w.Len() != 0 {
				t.Errorf("expected empty world, got %d brushes", w.Len())
			}
		})
	}
}

func TestEvaluateValidExpression(t *testing.T) {
	w, evalErrs, err := NewEngine().Evaluate("(+ 1 2)")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if w == nil || w.Len() != 0 {
		t.Fatalf("expected empty world, got %v", w)
	}
}

func TestEvaluateMultipleExpressions(t *testing.T) {
	source := `
(def x 10)
(def y 20)
(+ x y)
`
	w, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if w == nil {
		t.Fatal("expected non-nil world")
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "unmatched paren", source: "(+ 1 2"},
		{name: "undefined symbol", source: "(+ 1 undefined-symbol)"},
		{name: "error on second line", source: "(+ 1 2)\n(+ 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, evalErrs, err := NewEngine().Evaluate(tt.source)
			if err != nil {
				t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
			}
			if w != nil {
				t.Fatal("expected nil world on eval error")
			}
			if len(evalErrs) == 0 {
				t.Fatal("expected at least one eval error")
			}
			if evalErrs[0].Message == "" {
				t.Error("eval error message should not be empty")
			}
		})
	}
}

func TestEvalErrorImplementsError(t *testing.T) {
	e := EvalError{Line: 5, Message: "something went wrong"}
	s := e.Error()
	if !strings.Contains(s, "line 5") {
		t.Errorf("Error() should contain line info, got: %s", s)
	}
	if !strings.Contains(s, "something went wrong") {
		t.Errorf("Error() should contain message, got: %s", s)
	}

	e2 := EvalError{Message: "no location"}
	if strings.Contains(e2.Error(), "line") {
		t.Errorf("Error() with no line should not contain 'line', got: %s", e2.Error())
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	eng := NewEngine()
	source := `(cuboid "crate" :min (vec3 0 0 0) :max (vec3 32 32 32))`

	for i := 0; i < 5; i++ {
		w, evalErrs, err := eng.Evaluate(source)
		if err != nil {
			t.Fatalf("iteration %d: unexpected fatal error: %v", i, err)
		}
		if len(evalErrs) > 0 {
			t.Fatalf("iteration %d: unexpected eval errors: %v", i, evalErrs)
		}
		if w.Len() != 1 {
			t.Errorf("iteration %d: expected 1 brush, got %d", i, w.Len())
		}
	}
}

func TestEngineDefaults(t *testing.T) {
	eng := NewEngineWithDefaults(world.Defaults{WorldSize: 128, Texture: "stone"})
	w, evalErrs, err := eng.Evaluate(`(cuboid "crate" :min (vec3 0 0 0) :max (vec3 32 32 32))`)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("evaluate: %v %v", err, evalErrs)
	}
	if w.Defaults.WorldSize != 128 {
		t.Errorf("world size = %v, want 128", w.Defaults.WorldSize)
	}
	for _, f := range w.MustLookup("crate").Faces() {
		if f.Texture != "stone" {
			t.Errorf("face texture = %q, want stone", f.Texture)
		}
	}

	// Outside a 128 unit world.
	_, evalErrs, err = eng.Evaluate(`(cuboid "far" :min (vec3 100 0 0) :max (vec3 132 32 32))`)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected an eval error for a brush leaving the world")
	}
}

func TestSnapStaysInWorld(t *testing.T) {
	// A 99 unit world ends at x = 49.5.
	eng := NewEngineWithDefaults(world.Defaults{WorldSize: 99})
	const slab = `(cuboid "slab" :min (vec3 0 0 0) :max (vec3 49.25 8 8))
`
	_, evalErrs, err := eng.Evaluate(slab + `(snap "slab" 2)`)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected an eval error for a snap leaving the world")
	}
	if !strings.Contains(evalErrs[0].Message, "world bounds") {
		t.Errorf("eval error %q, want mention of the world bounds", evalErrs[0].Message)
	}

	w, evalErrs, err := eng.Evaluate(slab + `(snap "slab" 4)`)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("evaluate: %v %v", err, evalErrs)
	}
	if got := w.MustLookup("slab").Bounds().Max.X; got < 47.999 || got > 48.001 {
		t.Errorf("max x = %v, want 48", got)
	}
}

func TestEvaluateTimeout(t *testing.T) {
	eng := NewEngine()
	ch := make(chan evalResult) // never sends

	start := time.Now()
	_, _, err := eng.wait(ch, 0, 50*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("expected timeout error message, got: %v", err)
	}
	if time.Since(start) > EvalTimeout {
		t.Errorf("wait ignored the requested timeout")
	}
}

func TestEvaluateGenerationDiscardsStale(t *testing.T) {
	eng := NewEngine()
	eng.generation = 2

	ch := make(chan evalResult, 1)
	ch <- evalResult{}

	_, _, err := eng.wait(ch, 1, time.Second)
	if err == nil {
		t.Fatal("expected error for stale generation")
	}
	if !strings.Contains(err.Error(), "superseded") {
		t.Errorf("expected superseded error, got: %v", err)
	}
}

func TestParseZygomysError(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "error on line format",
			msg:      "Error on line 5: unexpected token\n",
			wantLine: 5,
			wantMsg:  "unexpected token",
		},
		{
			name:     "no line info",
			msg:      "some generic error",
			wantLine: 0,
			wantMsg:  "some generic error",
		},
		{
			name:     "line format lowercase",
			msg:      "error on line 12: missing paren",
			wantLine: 12,
			wantMsg:  "missing paren",
		},
		{
			name:     "short line format",
			msg:      "line 3: brush \"a\": invalid edit",
			wantLine: 3,
			wantMsg:  "invalid edit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := parseZygomysError(errString(tt.msg))
			if len(errs) == 0 {
				t.Fatal("expected at least one error")
			}
			e := errs[0]
			if e.Line != tt.wantLine {
				t.Errorf("line = %d, want %d", e.Line, tt.wantLine)
			}
			if !strings.Contains(e.Message, tt.wantMsg) {
				t.Errorf("message = %q, want containing %q", e.Message, tt.wantMsg)
			}
		})
	}
}

// errString is a simple error type for testing.
type errString string

func (e errString) Error() string { return string(e) }
