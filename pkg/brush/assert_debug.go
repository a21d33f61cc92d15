//go:build brushdebug

package brush

import "fmt"

// assertSound panics when g fails its sanity check.
func assertSound(g *Geometry, op string) {
	if err := g.SanityCheck(); err != nil {
		panic(fmt.Sprintf("brush: %s left an unsound geometry: %v", op, err))
	}
}
