package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a 64-bit content-derived identifier used for cache keys.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the same ID, which makes it suitable for
// keying memoization caches by raw text without retaining the text itself.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Status categories as reported by the issue tracker.
const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// Document is one issue record as supplied by the external fetch collaborator.
// It is immutable once handed to the engine; the engine never writes it back.
//
// Empty text fields are valid input and simply contribute nothing to the
// affected similarity signal.
type Document struct {
	ID             string    `json:"id"`
	Summary        string    `json:"summary"`
	Description    string    `json:"description"`
	Reporter       string    `json:"reporter"`
	Labels         []string  `json:"labels,omitempty"`
	Components     []string  `json:"components,omitempty"`
	IssueType      string    `json:"issueType"`
	StatusCategory string    `json:"statusCategory"`
	Created        time.Time `json:"created"`
}

// SignalBreakdown records every sub-score produced while comparing one
// query/candidate pair. It is transient: produced by the scorers, consumed
// by fusion and reason generation, and retained on the ScoredCandidate only
// for debug inspection.
type SignalBreakdown struct {
	SummaryScore     float64
	DescriptionScore float64
	ReporterScore    float64
	LabelsScore      float64
	RecencyScore     float64
	StatusMultiplier float64
	Penalties        float64
	ActiveSignals    int
	SharedObject     bool

	// Reason support, populated by the text scorer.
	SharedKeywords []string // shared summary tokens, highest weight first
	PhraseMatch    bool     // at least one shared summary bigram
	SharedObjects  []string // intent-object terms present in both summaries
}

// ScoredCandidate is the engine's verdict on one candidate document.
type ScoredCandidate struct {
	DocumentID string
	Score      int // final confidence, 0..100
	Reasons    []string
	Breakdown  SignalBreakdown
}
