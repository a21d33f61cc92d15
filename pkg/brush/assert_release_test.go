//go:build !brushdebug

package brush

import "testing"

func TestAssertSoundIsNoop(t *testing.T) {
	g, _ := unitCube(t)
	g.Edges[0].Left = nil
	assertSound(g, "move")
	if g.IsClosed() {
		t.Error("damaged geometry reports closed")
	}
}
