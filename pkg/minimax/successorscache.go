package minimax

import (
	"sync"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"golang.org/x/sync/singleflight"
)

// successorsCache memoizes Provider.Successors per state, forever (no
// eviction), while deduplicating concurrent in-flight requests for
// the same state via golang.org/x/sync/singleflight — the ecosystem's
// canonical single-flight primitive, a direct fit for the successors and
// description caches (which, unlike the minimax cache, carry no budget
// dimension and so need no custom upgrade logic).
type successorsCache struct {
	mu    sync.RWMutex
	value map[chess.StateHash][]Successor
	err   map[chess.StateHash]error
	sg    singleflight.Group
}

func newSuccessorsCache() *successorsCache {
	return &successorsCache{
		value: map[chess.StateHash][]Successor{},
		err:   map[chess.StateHash]error{},
	}
}

// peek returns the already-resolved successors for hash, if any, without
// triggering computation. Used for the leaf-vs-expand cost estimate, which
// must distinguish "already paid for" from "would need a fresh call".
func (c *successorsCache) peek(hash chess.StateHash) ([]Successor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.value[hash]
	return v, ok
}

// get returns the cached successors for hash, computing them via compute
// on first request (or once per concurrent burst of first requests).
func (c *successorsCache) get(hash chess.StateHash, compute func() ([]Successor, error)) ([]Successor, bool, error) {
	c.mu.RLock()
	if v, ok := c.value[hash]; ok {
		c.mu.RUnlock()
		return v, true, c.err[hash]
	}
	c.mu.RUnlock()

	wasCached := false
	v, err, _ := c.sg.Do(string(hash), func() (interface{}, error) {
		c.mu.RLock()
		if v, ok := c.value[hash]; ok {
			wasCached = true
			c.mu.RUnlock()
			return v, c.err[hash]
		}
		c.mu.RUnlock()

		result, cerr := compute()

		c.mu.Lock()
		c.value[hash] = result
		c.err[hash] = cerr
		c.mu.Unlock()
		return result, cerr
	})

	result, _ := v.([]Successor)
	return result, wasCached, err
}
