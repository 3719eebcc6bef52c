package analyze

import (
	"strings"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
)

const (
	// DefaultStemCacheSize bounds the word-to-stem memoization cache.
	DefaultStemCacheSize = 1000

	// DefaultSequenceCacheSize bounds the per-text token sequence cache.
	DefaultSequenceCacheSize = 1024

	minTokenLength = 3
)

// Analyzer converts raw issue text into stemmed, filtered token sequences.
// The tables it carries are fixed at construction and never mutated, so a
// single Analyzer is safe for concurrent use.
type Analyzer struct {
	synonyms  map[string]string
	stopwords map[string]struct{} // stemmed forms
	stems     *StemCache
	sequences *sequenceCache
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSynonyms replaces the default canonicalization table.
func WithSynonyms(synonyms map[string]string) Option {
	return func(a *Analyzer) {
		if synonyms != nil {
			a.synonyms = synonyms
		}
	}
}

// WithStopwords replaces the default stopword list. Entries are stemmed at
// construction so surface forms match their stems.
func WithStopwords(words []string) Option {
	return func(a *Analyzer) {
		if words != nil {
			a.stopwords = stemSet(words)
		}
	}
}

// WithStemCacheSize sets the stem cache capacity.
// Values below one are raised to one.
func WithStemCacheSize(size int) Option {
	return func(a *Analyzer) {
		a.stems = NewStemCache(size)
	}
}

// WithSequenceCacheSize sets the token sequence cache capacity.
// Values below one are raised to one.
func WithSequenceCacheSize(size int) Option {
	return func(a *Analyzer) {
		a.sequences = newSequenceCache(size)
	}
}

// NewAnalyzer creates an Analyzer with the default tables and cache sizes.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		synonyms:  defaultSynonyms,
		stopwords: stemSet(defaultStopwords),
		stems:     NewStemCache(DefaultStemCacheSize),
		sequences: newSequenceCache(DefaultSequenceCacheSize),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func stemSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[porterStem(strings.ToLower(w))] = struct{}{}
	}
	return set
}

// Normalize lowercases the text, strips every character outside [a-z0-9],
// splits on whitespace, drops tokens of length <= 2, and maps the survivors
// through the synonym table. Pure function of the input and the tables.
func (a *Analyzer) Normalize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, text)

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) < minTokenLength {
			continue
		}
		if mapped, ok := a.synonyms[tok]; ok {
			tok = mapped
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Stem reduces one normalized token to its Porter stem, memoized through the
// bounded stem cache.
func (a *Analyzer) Stem(word string) string {
	if stem, ok := a.stems.Get(word); ok {
		return stem
	}
	stem := porterStem(word)
	a.stems.Put(word, stem)
	return stem
}

// Tokens runs the full pipeline: normalize, stem, filter stopwords. Results
// are cached per raw text; callers must not modify the returned slice.
func (a *Analyzer) Tokens(text string) []string {
	key := core.IDFromContent(text)
	if seq, ok := a.sequences.get(key); ok {
		return seq
	}

	normalized := a.Normalize(text)
	tokens := make([]string, 0, len(normalized))
	for _, tok := range normalized {
		stem := a.Stem(tok)
		if _, stop := a.stopwords[stem]; stop {
			continue
		}
		tokens = append(tokens, stem)
	}

	a.sequences.put(key, tokens)
	return tokens
}

// ClearCaches empties both memoization caches. Safe at any time; subsequent
// calls recompute identical results.
func (a *Analyzer) ClearCaches() {
	a.stems.Clear()
	a.sequences.clear()
}
