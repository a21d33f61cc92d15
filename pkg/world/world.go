package world

import (
	"errors"
	"fmt"

	"github.com/chazu/brushwork/pkg/brush"
	"github.com/chazu/brushwork/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
)

// DefaultWorldSize is the edge length of the cube centered on the origin that
// bounds every brush, in map units.
const DefaultWorldSize = 8192.0

var (
	// ErrDuplicateBrush is returned when a name is already taken.
	ErrDuplicateBrush = errors.New("world: duplicate brush name")

	// ErrUnknownBrush is returned when no brush has the given name.
	ErrUnknownBrush = errors.New("world: unknown brush")
)

// Defaults contains world-wide settings.
type Defaults struct {
	WorldSize float64 `json:"world_size"` // edge length of the world cube
	Texture   string  `json:"texture"`    // texture for faces created without one
}

// DefaultDefaults returns the settings a new world starts with.
func DefaultDefaults() Defaults {
	return Defaults{WorldSize: DefaultWorldSize, Texture: brush.DefaultTexture}
}

// World is the set of brushes produced by one evaluation. Brushes are kept
// in insertion order.
type World struct {
	Defaults Defaults `json:"defaults"`
	Version  uint64   `json:"version"`

	brushes map[string]*brush.Brush
	order   []string
}

// New creates an empty world with default settings.
func New() *World {
	return NewWithDefaults(DefaultDefaults())
}

// NewWithDefaults creates an empty world with the given settings. Zero fields
// fall back to the defaults.
func NewWithDefaults(d Defaults) *World {
	def := DefaultDefaults()
	if d.WorldSize <= 0 {
		d.WorldSize = def.WorldSize
	}
	if d.Texture == "" {
		d.Texture = def.Texture
	}
	return &World{Defaults: d, brushes: make(map[string]*brush.Brush)}
}

// Bounds returns the world box.
func (w *World) Bounds() sdf.Box3 {
	return geom.CubeBounds(w.Defaults.WorldSize)
}

// Attributes returns face attributes carrying texture, or the world's default
// texture when texture is empty.
func (w *World) Attributes(texture string) brush.Attributes {
	if texture == "" {
		texture = w.Defaults.Texture
	}
	return brush.DefaultAttributes(texture)
}

// Add registers b under its name.
func (w *World) Add(b *brush.Brush) error {
	if b.Name == "" {
		return fmt.Errorf("world: brush without a name")
	}
	if _, ok := w.brushes[b.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateBrush, b.Name)
	}
	w.brushes[b.Name] = b
	w.order = append(w.order, b.Name)
	w.Version++
	return nil
}

// Lookup returns the brush with the given name, or nil.
func (w *World) Lookup(name string) *brush.Brush {
	return w.brushes[name]
}

// Get returns the brush with the given name or ErrUnknownBrush.
func (w *World) Get(name string) (*brush.Brush, error) {
	b := w.brushes[name]
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBrush, name)
	}
	return b, nil
}

// MustLookup returns the brush with the given name, or panics.
func (w *World) MustLookup(name string) *brush.Brush {
	b := w.Lookup(name)
	if b == nil {
		panic(fmt.Sprintf("world: no brush named %q", name))
	}
	return b
}

// Remove deletes the brush with the given name.
func (w *World) Remove(name string) error {
	if _, ok := w.brushes[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBrush, name)
	}
	delete(w.brushes, name)
	for i, n := range w.order {
		if n == name {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	w.Version++
	return nil
}

// Touch records that a brush was edited in place.
func (w *World) Touch() { w.Version++ }

// Names returns the brush names in insertion order.
func (w *World) Names() []string {
	return append([]string(nil), w.order...)
}

// Brushes returns the brushes in insertion order.
func (w *World) Brushes() []*brush.Brush {
	out := make([]*brush.Brush, 0, len(w.order))
	for _, n := range w.order {
		out = append(out, w.brushes[n])
	}
	return out
}

// Len returns the number of brushes.
func (w *World) Len() int {
	return len(w.order)
}
