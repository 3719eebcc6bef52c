package duplicator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/rank"
)

func engineCorpus() (*core.Document, []core.Document) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	query := &core.Document{
		ID:          "PROJ-100",
		Summary:     "Login button not responding",
		Description: "Clicking the login button does nothing",
		Reporter:    "alice",
		Labels:      []string{"auth", "mobile"},
		IssueType:   "Bug",
		Created:     created,
	}
	candidates := []core.Document{
		{
			ID:          "PROJ-42",
			Summary:     "Login button unresponsive",
			Description: "Pressed login, no response at all",
			Reporter:    "alice",
			Labels:      []string{"auth", "mobile"},
			IssueType:   "Bug",
			Created:     created.Add(-48 * time.Hour),
		},
		{
			ID:        "PROJ-7",
			Summary:   "Add dark theme to settings",
			Reporter:  "carol",
			IssueType: "Story",
			Created:   created.Add(-40 * 24 * time.Hour),
		},
	}
	return query, candidates
}

func TestEngineRank(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	query, candidates := engineCorpus()
	results, err := engine.Rank(context.Background(), query, candidates, "PROJ")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "PROJ-42", results[0].DocumentID)
	assert.GreaterOrEqual(t, results[0].Score, 70)
}

func TestEngineRankAfterClearCaches(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	query, candidates := engineCorpus()
	before, err := engine.Rank(context.Background(), query, candidates, "PROJ")
	require.NoError(t, err)

	engine.ClearCaches()

	after, err := engine.Rank(context.Background(), query, candidates, "PROJ")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEngineConfigOverrides(t *testing.T) {
	engine, err := NewEngine(WithConfig(rank.NewConfig(rank.WithMinScore(95))))
	require.NoError(t, err)
	assert.Equal(t, 95.0, engine.Config().MinScore)

	query, candidates := engineCorpus()
	results, err := engine.Rank(context.Background(), query, candidates, "PROJ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEngineCustomTables(t *testing.T) {
	// Treating "login" as a stopword erases the only strong summary
	// overlap, so the duplicate no longer clears the threshold.
	engine, err := NewEngine(WithStopwords([]string{"login", "button"}))
	require.NoError(t, err)

	query, candidates := engineCorpus()
	results, err := engine.Rank(context.Background(), query, candidates, "PROJ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEngineRejectsInvalidConfig(t *testing.T) {
	_, err := NewEngine(WithConfig(rank.NewConfig(rank.WithMaxResults(-1))))
	assert.ErrorIs(t, err, rank.ErrInvalidMaxResults)
}

func TestEngineSweeper(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	sweeper, err := engine.NewSweeper()
	require.NoError(t, err)
	defer sweeper.Release()

	query, candidates := engineCorpus()
	docs := append([]core.Document{*query}, candidates...)
	found, err := sweeper.Sweep(context.Background(), docs, "PROJ")
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.Equal(t, "PROJ-100", found[0].QueryID)
	require.Len(t, found[0].Matches, 1)
	assert.Equal(t, "PROJ-42", found[0].Matches[0].DocumentID)
}

func TestExplain(t *testing.T) {
	sc := &core.ScoredCandidate{
		DocumentID: "PROJ-42",
		Score:      89,
		Reasons:    []string{"Same reporter"},
		Breakdown: core.SignalBreakdown{
			SummaryScore:     40,
			ReporterScore:    20,
			StatusMultiplier: 1.0,
			ActiveSignals:    2,
		},
	}

	lines := Explain(sc)
	require.NotEmpty(t, lines)
	assert.Equal(t, "PROJ-42 scored 89", lines[0])
	assert.Contains(t, lines[len(lines)-1], "Same reporter")
}
