package score

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
)

// DefaultFrequencyTTL is how long cached corpus statistics stay fresh.
const DefaultFrequencyTTL = 5 * time.Minute

const (
	minTokenWeight = 0.01
	maxTokenWeight = 1.0
)

// CorpusFrequencies holds document-frequency statistics over one corpus:
// for each stemmed token, the number of corpus documents containing it at
// least once. Counts are non-negative and never exceed TotalDocs.
type CorpusFrequencies struct {
	Counts     map[string]int
	TotalDocs  int
	ComputedAt time.Time
}

// BuildFrequencies computes corpus statistics over the given documents.
// tokens must be the analyzer pipeline; each document counts a token at most
// once regardless of how often it appears.
func BuildFrequencies(docs []core.Document, tokens func(string) []string, now time.Time) *CorpusFrequencies {
	counts := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, t := range tokens(doc.Summary) {
			seen[t] = struct{}{}
		}
		for _, t := range tokens(doc.Description) {
			seen[t] = struct{}{}
		}
		for t := range seen {
			counts[t]++
		}
	}
	return &CorpusFrequencies{
		Counts:     counts,
		TotalDocs:  len(docs),
		ComputedAt: now,
	}
}

// Count returns the document count for a token, clamped into
// [0, TotalDocs]. The clamp is defensive: a count outside that range is an
// invariant violation surfaced by Validate, but on the read path
// availability wins over precision.
func (f *CorpusFrequencies) Count(token string) int {
	n := f.Counts[token]
	if n < 0 {
		return 0
	}
	if n > f.TotalDocs {
		return f.TotalDocs
	}
	return n
}

// Validate checks the frequency invariant: 0 <= count <= TotalDocs for
// every token. Used by debug builds to fail fast on cache corruption.
func (f *CorpusFrequencies) Validate() error {
	if f.TotalDocs < 0 {
		return fmt.Errorf("%w: total document count %d", core.ErrCorruptFrequencies, f.TotalDocs)
	}
	for token, n := range f.Counts {
		if n < 0 || n > f.TotalDocs {
			return fmt.Errorf("%w: token %q has count %d of %d documents",
				core.ErrCorruptFrequencies, token, n, f.TotalDocs)
		}
	}
	return nil
}

// TokenWeight returns the inverse-document-frequency weight of a token in
// [0.01, 1.0]. Rarer tokens weigh more. With fewer than two documents there
// is no usable signal and every token weighs 1.0.
func TokenWeight(token string, freq *CorpusFrequencies) float64 {
	if freq == nil || freq.TotalDocs < 2 {
		return 1.0
	}
	idf := 1.0 + math.Log(float64(freq.TotalDocs)/float64(freq.Count(token)+1))
	if idf < minTokenWeight {
		return minTokenWeight
	}
	if idf > maxTokenWeight {
		return maxTokenWeight
	}
	return idf
}

// FrequencyCache caches CorpusFrequencies per corpus key. An entry is reused
// while younger than the TTL and lazily recomputed on the first read after
// expiry. Safe for concurrent use; entries are pure memoizations, so losing
// or clearing one only costs recomputation.
type FrequencyCache struct {
	mu      sync.Mutex
	entries map[string]*CorpusFrequencies
	ttl     time.Duration
	now     func() time.Time
}

// NewFrequencyCache creates a cache with the given TTL.
// A non-positive TTL falls back to DefaultFrequencyTTL.
func NewFrequencyCache(ttl time.Duration) *FrequencyCache {
	if ttl <= 0 {
		ttl = DefaultFrequencyTTL
	}
	return &FrequencyCache{
		entries: make(map[string]*CorpusFrequencies),
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetOrBuild returns the cached statistics for corpusKey, invoking build to
// (re)compute them when absent or stale.
func (c *FrequencyCache) GetOrBuild(corpusKey string, build func(now time.Time) *CorpusFrequencies) *CorpusFrequencies {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if entry, ok := c.entries[corpusKey]; ok && now.Sub(entry.ComputedAt) < c.ttl {
		return entry
	}
	entry := build(now)
	c.entries[corpusKey] = entry
	return entry
}

// Clear drops every cached entry.
func (c *FrequencyCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*CorpusFrequencies)
}
