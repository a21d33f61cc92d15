// Command brushwork evaluates a brush script and prints the resulting meshes,
// errors and warnings as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/chazu/brushwork/pkg/brush"
)

func main() {
	configPath := flag.String("config", "", "JSON config file")
	kernelName := flag.String("kernel", "", "mesher: facet or sdfx")
	cells := flag.Int("cells", 0, "marching cubes resolution for the sdfx mesher")
	worldSize := flag.Float64("world-size", 0, "edge length of the world cube")
	texture := flag.String("texture", "", "texture for faces created without one")
	debug := flag.Bool("debug", false, "log kernel diagnostics to stderr")
	pretty := flag.Bool("pretty", false, "indent the JSON output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `brushwork - evaluate a brush script

Usage:
  brushwork [options] script.lisp
  brushwork [options] < script.lisp

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	// Flags given on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "kernel":
			cfg.Kernel = *kernelName
		case "cells":
			cfg.MeshCells = *cells
		case "world-size":
			cfg.WorldSize = *worldSize
		case "texture":
			cfg.Texture = *texture
		case "debug":
			cfg.Debug = *debug
		}
	})

	if cfg.Debug {
		brush.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	source, err := readSource(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	app, err := NewAppWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	result := app.Evaluate(source)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		log.Fatal(err)
	}
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}

// readSource reads the script named by args, or stdin when args is empty.
func readSource(args []string) (string, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	case 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return "", fmt.Errorf("expected at most one script, got %d", len(args))
}
