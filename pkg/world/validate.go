package world

import (
	"errors"
	"fmt"

	"github.com/chazu/brushwork/pkg/brush"
	"github.com/chazu/brushwork/pkg/geom"
)

// SliverThickness is the extent below which a brush is reported as a sliver.
const SliverThickness = 0.5

// ValidationSeverity indicates whether a validation finding blocks evaluation
// or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks evaluation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Brush    string             // which brush has the problem (empty if world-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Brush == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] brush %q: %s", e.Severity, e.Brush, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Brush   string
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory)
// from all validation tiers.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Validate runs the Tier 1 structural checks on every brush and returns the
// findings. An empty slice means the world is sound. It never mutates the
// world.
func Validate(w *World) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateIndex(w)...)
	errs = append(errs, validateClosure(w)...)
	errs = append(errs, validateSanity(w)...)
	errs = append(errs, validateContainment(w)...)
	return errs
}

// ValidateAll runs both tiers and returns a ValidationResult with separated
// errors and warnings.
func ValidateAll(w *World) ValidationResult {
	var result ValidationResult
	for _, e := range Validate(w) {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{Brush: e.Brush, Message: e.Message})
		} else {
			result.Errors = append(result.Errors, e)
		}
	}

	// Tier 2: geometric warnings.
	result.Warnings = append(result.Warnings, validateUnboundSides(w)...)
	result.Warnings = append(result.Warnings, validateSlivers(w)...)
	result.Warnings = append(result.Warnings, validateDuplicates(w)...)
	if len(result.Errors) > 0 || len(result.Warnings) > 0 {
		brush.Logger().Debug("world validated", "errors", len(result.Errors), "warnings", len(result.Warnings))
	}
	return result
}

// validateIndex checks that the name index and the insertion order agree.
func validateIndex(w *World) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(w.order))
	for _, name := range w.order {
		if seen[name] {
			errs = append(errs, ValidationError{
				Brush:    name,
				Message:  "name listed twice",
				Severity: SeverityError,
			})
		}
		seen[name] = true
		b := w.brushes[name]
		switch {
		case b == nil:
			errs = append(errs, ValidationError{
				Brush:    name,
				Message:  "name has no brush",
				Severity: SeverityError,
			})
		case b.Name != name:
			errs = append(errs, ValidationError{
				Brush:    name,
				Message:  fmt.Sprintf("registered under a name it does not carry (%q)", b.Name),
				Severity: SeverityError,
			})
		}
	}
	for name := range w.brushes {
		if !seen[name] {
			errs = append(errs, ValidationError{
				Brush:    name,
				Message:  "brush is missing from the order",
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateClosure checks that no brush has a hole.
func validateClosure(w *World) []ValidationError {
	var errs []ValidationError
	for _, b := range w.Brushes() {
		if b != nil && !b.Geometry().IsClosed() {
			errs = append(errs, ValidationError{
				Brush:    b.Name,
				Message:  "geometry is not closed",
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateSanity reports every kernel sanity finding as its own error.
func validateSanity(w *World) []ValidationError {
	var errs []ValidationError
	for _, b := range w.Brushes() {
		if b == nil {
			continue
		}
		err := b.Geometry().SanityCheck()
		if err == nil {
			continue
		}
		var se *brush.SanityError
		if !errors.As(err, &se) {
			errs = append(errs, ValidationError{Brush: b.Name, Message: err.Error(), Severity: SeverityError})
			continue
		}
		for _, f := range se.Findings {
			errs = append(errs, ValidationError{Brush: b.Name, Message: f, Severity: SeverityError})
		}
	}
	return errs
}

// validateContainment checks that every vertex lies within the world box.
func validateContainment(w *World) []ValidationError {
	var errs []ValidationError
	bounds := w.Bounds()
	for _, b := range w.Brushes() {
		if b == nil {
			continue
		}
		if !geom.BoxContainsAll(bounds, b.Geometry().Positions()) {
			errs = append(errs, ValidationError{
				Brush:    b.Name,
				Message:  fmt.Sprintf("vertices leave the world bounds %v", bounds),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// ---------------------------------------------------------------------------
// Tier 2: geometric warnings
// ---------------------------------------------------------------------------

// validateUnboundSides warns about sides no face backs. They come from the
// world box when a brush's faces do not close it off.
func validateUnboundSides(w *World) []ValidationWarning {
	var warnings []ValidationWarning
	for _, b := range w.Brushes() {
		if b == nil {
			continue
		}
		n := 0
		for _, s := range b.Geometry().Sides {
			if s.Face == nil {
				n++
			}
		}
		if n > 0 {
			warnings = append(warnings, ValidationWarning{
				Brush:   b.Name,
				Message: fmt.Sprintf("%d sides are bounded by the world, not by faces", n),
			})
		}
	}
	return warnings
}

// validateSlivers warns about brushes thinner than SliverThickness.
func validateSlivers(w *World) []ValidationWarning {
	var warnings []ValidationWarning
	for _, b := range w.Brushes() {
		if b == nil {
			continue
		}
		if e := geom.MinExtent(b.Bounds()); e < SliverThickness {
			warnings = append(warnings, ValidationWarning{
				Brush:   b.Name,
				Message: fmt.Sprintf("brush is a sliver, %.4g units thick", e),
			})
		}
	}
	return warnings
}

// validateDuplicates warns about brushes with the same vertices as an
// earlier brush.
func validateDuplicates(w *World) []ValidationWarning {
	var warnings []ValidationWarning
	brushes := w.Brushes()
	for i, b := range brushes {
		if b == nil {
			continue
		}
		poly := geom.Polygon3{Vertices: b.Geometry().Positions()}
		for _, o := range brushes[:i] {
			if o != nil && poly.Matches(geom.Polygon3{Vertices: o.Geometry().Positions()}) {
				warnings = append(warnings, ValidationWarning{
					Brush:   b.Name,
					Message: fmt.Sprintf("duplicates brush %q", o.Name),
				})
				break
			}
		}
	}
	return warnings
}
