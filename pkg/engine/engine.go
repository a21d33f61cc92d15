// Package engine evaluates brush scripts. It wraps zygomys in a sandboxed
// environment and produces a World from user source code.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chazu/brushwork/pkg/brush"
	"github.com/chazu/brushwork/pkg/world"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine wraps the zygomys interpreter for brush scripts.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment and world for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	defaults   world.Defaults
	timeout    time.Duration
}

// NewEngine creates an Engine whose worlds use the default settings.
func NewEngine() *Engine {
	return NewEngineWithDefaults(world.DefaultDefaults())
}

// NewEngineWithDefaults creates an Engine whose worlds use d.
func NewEngineWithDefaults(d world.Defaults) *Engine {
	return &Engine{defaults: d, timeout: EvalTimeout}
}

// SetTimeout changes the evaluation limit. Zero restores EvalTimeout.
func (e *Engine) SetTimeout(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.timeout = d
}

// Evaluate runs a brush script and returns the world it builds.
//
// Return semantics:
//   - On success: returns world + nil errors + nil error
//   - On parse/eval failure, including a rejected edit: returns nil world +
//     eval errors + nil error
//   - On fatal failure (timeout, panic): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*world.World, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	timeout := e.timeout
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		w, evalErrs, err := e.evaluate(source)
		ch <- evalResult{world: w, errors: evalErrs, err: err}
	}()

	return e.wait(ch, gen, timeout)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*world.World, []EvalError, error) {
	w := world.NewWithDefaults(e.defaults)
	if strings.TrimSpace(source) == "" {
		return w, nil, nil
	}

	// Sandbox mode keeps scripts away from the filesystem and syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env, w)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		evalErrs := parseZygomysError(err)
		brush.Logger().Debug("script failed", "errors", len(evalErrs), "first", evalErrs[0].Message)
		return nil, evalErrs, nil
	}

	brush.Logger().Debug("script evaluated", "brushes", w.Len(), "version", w.Version)
	return w, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	// Try to extract line numbers from the error message.
	// zygomys formats parse errors as "Error on line N: <details>\n"
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		detail := strings.TrimSpace(m[2])
		return []EvalError{{
			Line:    line,
			Col:     0,
			Message: detail,
		}}
	}

	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		detail := strings.TrimSpace(m[2])
		return []EvalError{{
			Line:    line,
			Col:     0,
			Message: detail,
		}}
	}

	// Fallback: no line info available.
	return []EvalError{{
		Line:    0,
		Col:     0,
		Message: strings.TrimSpace(msg),
	}}
}
