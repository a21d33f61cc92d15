// Package world holds the brushes of one map: a named, ordered registry with
// the world bounds every edit is clamped to, and tiered validation.
package world
