package rank

import (
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
)

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps and results while
// a query is ranked against its corpus.
type RankMonitor interface {
	Start(queryID string, candidates int)
	AfterCorpusStatistics(totalDocs, distinctTokens int)
	SkippedCandidate(candidateID string, summaryScore float64)
	ScoredPair(candidateID string, score int, breakdown *core.SignalBreakdown)
	BelowThreshold(candidateID string, score int)
	Finish(results []core.ScoredCandidate)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ int)                               {}
func (n *noopMonitor) AfterCorpusStatistics(_, _ int)                      {}
func (n *noopMonitor) SkippedCandidate(_ string, _ float64)                {}
func (n *noopMonitor) ScoredPair(_ string, _ int, _ *core.SignalBreakdown) {}
func (n *noopMonitor) BelowThreshold(_ string, _ int)                      {}
func (n *noopMonitor) Finish(_ []core.ScoredCandidate)                     {}
