package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/chazu/brushwork/pkg/engine"
	"github.com/chazu/brushwork/pkg/kernel"
	"github.com/chazu/brushwork/pkg/kernel/facet"
	"github.com/chazu/brushwork/pkg/kernel/sdfx"
	"github.com/chazu/brushwork/pkg/world"
)

// Config holds the settings of one evaluation run.
type Config struct {
	// Meshing
	Kernel    string `json:"kernel"`     // "facet" or "sdfx"
	MeshCells int    `json:"mesh_cells"` // marching cubes resolution for sdfx

	// World
	WorldSize float64 `json:"world_size"`
	Texture   string  `json:"texture"`

	// Engine
	TimeoutMS int `json:"timeout_ms"`

	// Debug
	Debug bool `json:"debug"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	d := world.DefaultDefaults()
	return &Config{
		Kernel:    "facet",
		MeshCells: 64,
		WorldSize: d.WorldSize,
		Texture:   d.Texture,
		TimeoutMS: int(engine.EvalTimeout / time.Millisecond),
	}
}

// LoadConfig reads a JSON config file. Fields missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch c.Kernel {
	case "facet", "sdfx":
	default:
		return fmt.Errorf("unknown kernel %q, expected facet or sdfx", c.Kernel)
	}
	if c.MeshCells <= 0 {
		return fmt.Errorf("mesh_cells must be positive, got %d", c.MeshCells)
	}
	if c.WorldSize <= 0 {
		return fmt.Errorf("world_size must be positive, got %g", c.WorldSize)
	}
	if c.TimeoutMS <= 0 {
		return fmt.Errorf("timeout_ms must be positive, got %d", c.TimeoutMS)
	}
	return nil
}

// Defaults returns the world settings of the config.
func (c *Config) Defaults() world.Defaults {
	return world.Defaults{WorldSize: c.WorldSize, Texture: c.Texture}
}

// Timeout returns the script timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// NewKernel returns the mesher named by the config.
func (c *Config) NewKernel() (kernel.Kernel, error) {
	switch c.Kernel {
	case "facet":
		return facet.New(), nil
	case "sdfx":
		return sdfx.NewWithCells(c.MeshCells), nil
	}
	return nil, fmt.Errorf("unknown kernel %q", c.Kernel)
}
