package analyze

import (
	"sync"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
)

// StemCache memoizes word-to-stem computations. It is bounded: when full,
// the oldest-inserted entry is evicted. Eviction follows insertion order,
// not access order; a re-read never refreshes an entry's position.
//
// The cache is a pure memoization. It is safe to clear at any time and safe
// for concurrent use.
type StemCache struct {
	mu       sync.Mutex
	entries  map[string]string
	order    []string
	capacity int
}

// NewStemCache creates a StemCache holding at most capacity entries.
// A capacity below one is raised to one.
func NewStemCache(capacity int) *StemCache {
	if capacity < 1 {
		capacity = 1
	}
	return &StemCache{
		entries:  make(map[string]string, capacity),
		order:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Get returns the cached stem for word, if present.
func (c *StemCache) Get(word string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stem, ok := c.entries[word]
	return stem, ok
}

// Put stores the stem for word, evicting the oldest-inserted entry when the
// cache is at capacity.
func (c *StemCache) Put(word, stem string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[word]; exists {
		c.entries[word] = stem
		return
	}
	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[word] = stem
	c.order = append(c.order, word)
}

// Len returns the number of cached entries.
func (c *StemCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear empties the cache.
func (c *StemCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string, c.capacity)
	c.order = c.order[:0]
}

// sequenceCache memoizes full token sequences keyed by a content hash of the
// raw text. Same bounded insertion-order discipline as StemCache.
type sequenceCache struct {
	mu       sync.Mutex
	entries  map[core.ID][]string
	order    []core.ID
	capacity int
}

func newSequenceCache(capacity int) *sequenceCache {
	if capacity < 1 {
		capacity = 1
	}
	return &sequenceCache{
		entries:  make(map[core.ID][]string, capacity),
		order:    make([]core.ID, 0, capacity),
		capacity: capacity,
	}
}

func (c *sequenceCache) get(key core.ID) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	seq, ok := c.entries[key]
	return seq, ok
}

func (c *sequenceCache) put(key core.ID, seq []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; exists {
		c.entries[key] = seq
		return
	}
	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = seq
	c.order = append(c.order, key)
}

func (c *sequenceCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[core.ID][]string, c.capacity)
	c.order = c.order[:0]
}
