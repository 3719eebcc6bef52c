// Copyright 2025 The rovo-issue-duplicator Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package duplicator assembles the text analysis, scoring, and ranking
// layers into a single duplicate-detection engine for issue trackers.
package duplicator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/analyze"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/dedupe"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/rank"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/score"
)

// Engine is the top-level entry point: it owns the analyzer, the corpus
// statistics cache, and the ranker, wired together from one configuration.
type Engine struct {
	analyzer *analyze.Analyzer
	freqs    *score.FrequencyCache
	ranker   *rank.Ranker
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	config    *rank.Config
	synonyms  map[string]string
	stopwords []string
	logger    *slog.Logger
}

// WithConfig sets the ranking configuration.
// Default is rank.DefaultConfig().
func WithConfig(config *rank.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.config = config
		}
	}
}

// WithSynonyms replaces the analyzer's canonicalization table.
func WithSynonyms(synonyms map[string]string) EngineOption {
	return func(o *engineOptions) {
		o.synonyms = synonyms
	}
}

// WithStopwords replaces the analyzer's stopword list.
func WithStopwords(words []string) EngineOption {
	return func(o *engineOptions) {
		o.stopwords = words
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	// Apply options
	options := &engineOptions{
		config: rank.DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	analyzerOpts := []analyze.Option{
		analyze.WithStemCacheSize(options.config.StemCacheSize),
		analyze.WithSequenceCacheSize(options.config.SequenceCacheSize),
	}
	if options.synonyms != nil {
		analyzerOpts = append(analyzerOpts, analyze.WithSynonyms(options.synonyms))
	}
	if options.stopwords != nil {
		analyzerOpts = append(analyzerOpts, analyze.WithStopwords(options.stopwords))
	}
	analyzer := analyze.NewAnalyzer(analyzerOpts...)

	freqs := score.NewFrequencyCache(options.config.FrequencyTTL)

	ranker, err := rank.NewRanker(analyzer, freqs, options.config,
		rank.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	return &Engine{
		analyzer: analyzer,
		freqs:    freqs,
		ranker:   ranker,
		logger:   options.logger,
	}, nil
}

// Rank scores the query document against the candidates and returns the
// likely duplicates, best first.
func (e *Engine) Rank(ctx context.Context, query *core.Document, candidates []core.Document, corpusKey string) ([]core.ScoredCandidate, error) {
	return e.ranker.Rank(ctx, query, candidates, corpusKey)
}

// RankWithMonitor ranks with stage-by-stage monitoring.
func (e *Engine) RankWithMonitor(ctx context.Context, query *core.Document, candidates []core.Document, corpusKey string, monitor rank.RankMonitor) ([]core.ScoredCandidate, error) {
	return e.ranker.RankWithMonitor(ctx, query, candidates, corpusKey, monitor)
}

// NewSweeper creates a corpus sweeper backed by this engine's ranker.
// The caller owns the sweeper and must Release it.
func (e *Engine) NewSweeper(opts ...dedupe.Option) (*dedupe.Sweeper, error) {
	opts = append([]dedupe.Option{dedupe.WithLogger(e.logger)}, opts...)
	return dedupe.NewSweeper(e.ranker, opts...)
}

// Config returns the active ranking configuration.
func (e *Engine) Config() *rank.Config {
	return e.ranker.Config()
}

// ClearCaches drops the analyzer memoization caches and the corpus
// statistics. Subsequent calls recompute identical results.
func (e *Engine) ClearCaches() {
	e.analyzer.ClearCaches()
	e.freqs.Clear()
}

// Explain renders a scored candidate as human-readable lines: the verdict,
// the signal breakdown, and the reasons behind it.
func Explain(sc *core.ScoredCandidate) []string {
	b := sc.Breakdown
	lines := []string{
		fmt.Sprintf("%s scored %d", sc.DocumentID, sc.Score),
		fmt.Sprintf("  summary %.1f  description %.1f  reporter %.1f  labels %.1f  recency %.1f",
			b.SummaryScore, b.DescriptionScore, b.ReporterScore, b.LabelsScore, b.RecencyScore),
		fmt.Sprintf("  penalties %.1f  status multiplier %.2f  active signals %d",
			b.Penalties, b.StatusMultiplier, b.ActiveSignals),
	}
	for _, reason := range sc.Reasons {
		lines = append(lines, "  - "+reason)
	}
	return lines
}
