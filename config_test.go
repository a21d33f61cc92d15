package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chazu/brushwork/pkg/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brushwork.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if cfg.Kernel != "facet" {
		t.Errorf("Kernel = %q, want facet", cfg.Kernel)
	}
	if cfg.Timeout() != engine.EvalTimeout {
		t.Errorf("Timeout() = %v, want %v", cfg.Timeout(), engine.EvalTimeout)
	}
	k, err := cfg.NewKernel()
	if err != nil || k.Name() != "facet" {
		t.Errorf("NewKernel() = %v, %v", k, err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"kernel": "sdfx", "mesh_cells": 24, "timeout_ms": 250}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Kernel != "sdfx" || cfg.MeshCells != 24 {
		t.Errorf("loaded %+v", cfg)
	}
	if cfg.Timeout() != 250*time.Millisecond {
		t.Errorf("Timeout() = %v, want 250ms", cfg.Timeout())
	}
	// Fields missing from the file keep their defaults.
	if def := DefaultConfig(); cfg.WorldSize != def.WorldSize || cfg.Texture != def.Texture {
		t.Errorf("defaults lost: %+v", cfg)
	}
	k, err := cfg.NewKernel()
	if err != nil || k.Name() != "sdfx" {
		t.Errorf("NewKernel() = %v, %v", k, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed", `{"kernel": `, "unexpected end"},
		{"unknown kernel", `{"kernel": "manifold"}`, "unknown kernel"},
		{"no cells", `{"mesh_cells": 0}`, "mesh_cells"},
		{"negative world", `{"world_size": -1}`, "world_size"},
		{"no timeout", `{"timeout_ms": 0}`, "timeout_ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q, want containing %q", err, tt.want)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestNewAppWithConfigRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Kernel = "raytrace"
	if _, err := NewAppWithConfig(cfg); err == nil {
		t.Fatal("expected an error for an unknown kernel")
	}
}
