package engine

import "sync"

// evalCache memoizes leaf evaluations keyed by canonical position text.
// It is shared by the goroutines exploring one root search and discarded
// when the search returns. Entries are only written at leaves, so cached
// scores do not depend on the alpha-beta window that reached them.
type evalCache struct {
	mu      sync.RWMutex
	entries map[string]float64
}

func newEvalCache() *evalCache {
	return &evalCache{entries: make(map[string]float64)}
}

func (c *evalCache) lookup(key string) (float64, bool) {
	c.mu.RLock()
	var score, ok = c.entries[key]
	c.mu.RUnlock()
	return score, ok
}

func (c *evalCache) store(key string, score float64) {
	c.mu.Lock()
	c.entries[key] = score
	c.mu.Unlock()
}
