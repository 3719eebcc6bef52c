package rank

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/analyze"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/score"
)

// maxAncillaryPoints is the most a candidate can earn outside the summary
// signal (description 15, reporter 20, labels 20, recency 10). A candidate
// whose summary score plus this bound stays under the threshold cannot
// qualify and is skipped without full scoring.
const maxAncillaryPoints = 65.0

// Ranker scores a query document against a candidate corpus and returns
// the most likely duplicates.
type Ranker struct {
	analyzer *analyze.Analyzer
	freqs    *score.FrequencyCache
	config   *Config
	logger   *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a new ranker. config may be nil, in which case
// DefaultConfig is used.
func NewRanker(
	analyzer *analyze.Analyzer,
	freqs *score.FrequencyCache,
	config *Config,
	opts ...Option,
) (*Ranker, error) {
	if analyzer == nil {
		return nil, ErrAnalyzerRequired
	}
	if freqs == nil {
		return nil, ErrFrequencyCacheRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	r := &Ranker{
		analyzer: analyzer,
		freqs:    freqs,
		config:   config,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Config returns the active configuration.
func (r *Ranker) Config() *Config {
	return r.config
}

// Rank scores the query against every candidate and returns the candidates
// at or above the configured threshold, best first.
func (r *Ranker) Rank(ctx context.Context, query *core.Document, candidates []core.Document, corpusKey string) ([]core.ScoredCandidate, error) {
	return r.RankWithMonitor(ctx, query, candidates, corpusKey, nil)
}

// RankWithMonitor ranks with monitoring. The monitor receives callbacks at
// each stage of the process. corpusKey identifies the candidate corpus for
// frequency-statistics caching; callers ranking different corpora must use
// distinct keys.
func (r *Ranker) RankWithMonitor(ctx context.Context, query *core.Document, candidates []core.Document, corpusKey string, monitor RankMonitor) ([]core.ScoredCandidate, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateDocument(query); err != nil {
		return nil, err
	}

	monitor.Start(query.ID, len(candidates))

	freq := r.freqs.GetOrBuild(corpusKey, func(now time.Time) *score.CorpusFrequencies {
		return score.BuildFrequencies(candidates, r.analyzer.Tokens, now)
	})
	if r.config.Debug {
		if err := freq.Validate(); err != nil {
			return nil, err
		}
	}
	monitor.AfterCorpusStatistics(freq.TotalDocs, len(freq.Counts))

	scorer := score.NewTextScorer(freq)
	querySummary := r.analyzer.Tokens(query.Summary)
	queryDescription := r.analyzer.Tokens(query.Description)

	results := make([]core.ScoredCandidate, 0, len(candidates))
	for i := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cand := &candidates[i]
		if cand.ID == "" || cand.ID == query.ID {
			continue
		}

		candSummary := r.analyzer.Tokens(cand.Summary)
		summaryScore, sharedKeywords, phrase := scorer.SummaryScore(
			querySummary, candSummary, query.Summary, cand.Summary)

		if summaryScore+maxAncillaryPoints < r.config.MinScore {
			monitor.SkippedCandidate(cand.ID, summaryScore)
			continue
		}

		breakdown := core.SignalBreakdown{
			SummaryScore:     summaryScore,
			DescriptionScore: scorer.DescriptionScore(queryDescription, r.analyzer.Tokens(cand.Description)),
			ReporterScore:    score.ReporterScore(query.Reporter, cand.Reporter),
			LabelsScore:      score.LabelsScore(query.Labels, cand.Labels),
			RecencyScore:     score.RecencyScore(query.Created, cand.Created),
			StatusMultiplier: score.StatusMultiplier(cand.StatusCategory),
			Penalties:        score.MismatchPenalties(query, cand),
			SharedKeywords:   sharedKeywords,
			PhraseMatch:      phrase,
			SharedObjects:    score.SharedObjects(querySummary, candSummary),
		}

		fused, reasons := score.Fuse(&breakdown)
		monitor.ScoredPair(cand.ID, fused, &breakdown)

		if r.config.Debug {
			r.logger.Debug("scored candidate pair",
				"query", query.ID,
				"candidate", cand.ID,
				"score", fused,
				"summary", oneDecimal(breakdown.SummaryScore),
				"description", oneDecimal(breakdown.DescriptionScore),
				"reporter", oneDecimal(breakdown.ReporterScore),
				"labels", oneDecimal(breakdown.LabelsScore),
				"recency", oneDecimal(breakdown.RecencyScore),
				"penalties", oneDecimal(breakdown.Penalties),
				"multiplier", breakdown.StatusMultiplier,
				"signals", breakdown.ActiveSignals,
			)
		}

		if float64(fused) < r.config.MinScore {
			monitor.BelowThreshold(cand.ID, fused)
			continue
		}

		results = append(results, core.ScoredCandidate{
			DocumentID: cand.ID,
			Score:      fused,
			Reasons:    reasons,
			Breakdown:  breakdown,
		})
	}

	// Best first; equal scores order by document ID for stable output.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocumentID < results[j].DocumentID
	})
	if r.config.MaxResults > 0 && len(results) > r.config.MaxResults {
		results = results[:r.config.MaxResults]
	}

	monitor.Finish(results)
	return results, nil
}

func oneDecimal(x float64) float64 {
	return math.Round(x*10) / 10
}
