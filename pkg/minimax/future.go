package minimax

import (
	"context"

	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// future is a value that is published once and read many times. It is the
// "in-flight marker": a cache entry created before its computation begins,
// whose value is filled in later. Modeled as an Arc<OnceCell>
// would be in a language with shared futures; here a closed channel plays
// that role.
type future struct {
	done  chan struct{}
	value float64
	err   error
}

func newFuture() *future {
	return &future{done: make(chan struct{})}
}

// resolve fulfils the future. Must be called exactly once.
func (f *future) resolve(value float64, err error) {
	f.value = value
	f.err = err
	close(f.done)
}

// await suspends until the future resolves or ctx is cancelled.
func (f *future) await(ctx context.Context) (float64, error) {
	if contextx.IsCancelled(ctx) {
		return 0, ctx.Err()
	}
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
