package main

import (
	"log"

	"github.com/chazu/brushwork/pkg/engine"
	"github.com/chazu/brushwork/pkg/kernel"
	"github.com/chazu/brushwork/pkg/tessellate"
	"github.com/chazu/brushwork/pkg/world"
)

// colorPalette is a default palette used to assign distinct colors to brushes.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App turns brush scripts into meshes for a viewer.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
}

// MeshData is the JSON-serializable mesh format sent to a viewer.
type MeshData struct {
	Vertices  []float32 `json:"vertices"`
	Normals   []float32 `json:"normals"`
	Indices   []uint32  `json:"indices"`
	BrushName string    `json:"brushName"`
	Color     string    `json:"color"`
}

// EvalErrorData is a JSON-serializable error or warning. Brush is set for
// validation findings about a single brush.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
	Brush   string `json:"brush,omitempty"`
}

// EvalResult is the full result of one evaluation.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates an App with the default configuration.
func NewApp() *App {
	app, err := NewAppWithConfig(DefaultConfig())
	if err != nil {
		log.Fatalf("default config: %v", err)
	}
	return app
}

// NewAppWithConfig creates an App from cfg.
func NewAppWithConfig(cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	k, err := cfg.NewKernel()
	if err != nil {
		return nil, err
	}
	eng := engine.NewEngineWithDefaults(cfg.Defaults())
	eng.SetTimeout(cfg.Timeout())
	return &App{engine: eng, kernel: k}, nil
}

// Evaluate runs a brush script, validates the resulting world and returns
// one mesh per brush. Structural validation errors suppress the meshes.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the script into a world.
	w, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 2: Validate.
	v := world.ValidateAll(w)
	for _, wn := range v.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Message: wn.Message, Brush: wn.Brush})
	}
	if len(v.Errors) > 0 {
		for _, e := range v.Errors {
			result.Errors = append(result.Errors, EvalErrorData{Message: e.Message, Brush: e.Brush})
		}
		return result
	}

	// Step 3: Tessellate the world into triangle meshes.
	meshes, err := tessellate.Tessellate(w, a.kernel)
	if err != nil {
		log.Printf("Tessellate error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}

	for i, m := range meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices:  m.Vertices,
			Normals:   m.Normals,
			Indices:   m.Indices,
			BrushName: m.BrushName,
			Color:     colorPalette[i%len(colorPalette)],
		})
	}

	return result
}
