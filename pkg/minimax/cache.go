package minimax

import (
	"math"
	"sync"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
)

// minimaxSlot is one entry of the minimax cache: a shared future for the
// node's value, and the budget under which it was (or is being) computed.
type minimaxSlot struct {
	future *future
	budget float64
}

// minimaxCache maps StateHash to minimaxSlot, with budget-aware single
// flight: a probe compatible with the existing entry's budget attaches to
// it; a probe strictly exceeding it (beyond budgetCacheTolerance) installs
// a fresh slot — an upgrade — that existing waiters on the old slot do not
// see: existing waiters still get a value, just the weaker one.
//
// Every operation on a key is atomic with respect to other operations on
// that key; a single mutex over the whole map is sufficient here since
// operations never block while holding it (the expensive work happens
// after probeOrPublish returns).
type minimaxCache struct {
	mu sync.Mutex
	m  map[chess.StateHash]*minimaxSlot
}

func newMinimaxCache() *minimaxCache {
	return &minimaxCache{m: map[chess.StateHash]*minimaxSlot{}}
}

// probeOrPublish returns the slot to await for hash at the given budget,
// and whether the caller is the owner responsible for computing and
// resolving it. Publication of a fresh pending slot happens synchronously,
// before the caller does any further work, so
// that a second reader arriving in the same scheduler tick sees the
// pending entry rather than racing to recompute it.
func (c *minimaxCache) probeOrPublish(hash chess.StateHash, budget float64) (slot *minimaxSlot, owner bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.m[hash]; ok {
		if existing.budget >= budget || math.Abs(existing.budget-budget) < budgetCacheTolerance {
			return existing, false
		}
		fresh := &minimaxSlot{future: newFuture(), budget: budget}
		c.m[hash] = fresh
		return fresh, true
	}

	fresh := &minimaxSlot{future: newFuture(), budget: budget}
	c.m[hash] = fresh
	return fresh, true
}
