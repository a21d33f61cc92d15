package engine

import (
	"fmt"
	"time"

	"github.com/chazu/brushwork/pkg/world"
)

// EvalTimeout is the default limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// evalResult carries one evaluation's output from its goroutine.
type evalResult struct {
	world  *world.World
	errors []EvalError
	err    error
}

// wait returns the result sent on ch unless timeout fires first or a newer
// evaluation has started since generation gen. A timed-out goroutine keeps
// running; its result is dropped by the generation check.
func (e *Engine) wait(ch <-chan evalResult, gen uint64, timeout time.Duration) (*world.World, []EvalError, error) {
	if timeout <= 0 {
		timeout = EvalTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		e.mu.Lock()
		current := e.generation
		e.mu.Unlock()

		if gen != current {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.world, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", timeout)
	}
}
