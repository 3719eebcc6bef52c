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

package rank

import (
	"time"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/analyze"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/score"
)

// Config holds ranking configuration.
type Config struct {
	// MinScore is the minimum fused score a candidate must reach to appear
	// in the results. May exceed 100, which matches nothing.
	// Default: 50
	MinScore float64

	// MaxResults caps the number of returned candidates. Zero disables
	// the cap.
	// Default: 10
	MaxResults int

	// Debug enables per-pair breakdown logging and invariant checks on the
	// corpus statistics.
	Debug bool

	// FrequencyTTL is how long cached corpus statistics stay fresh.
	// Default: score.DefaultFrequencyTTL
	FrequencyTTL time.Duration

	// StemCacheSize bounds the analyzer's word-stem memoization cache.
	// Default: analyze.DefaultStemCacheSize
	StemCacheSize int

	// SequenceCacheSize bounds the analyzer's per-text token cache.
	// Default: analyze.DefaultSequenceCacheSize
	SequenceCacheSize int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithMinScore sets the result threshold.
func WithMinScore(min float64) ConfigOption {
	return func(c *Config) {
		c.MinScore = min
	}
}

// WithMaxResults sets the result limit.
func WithMaxResults(max int) ConfigOption {
	return func(c *Config) {
		c.MaxResults = max
	}
}

// WithDebug toggles per-pair breakdown logging.
func WithDebug(debug bool) ConfigOption {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithFrequencyTTL sets the corpus statistics lifetime.
func WithFrequencyTTL(ttl time.Duration) ConfigOption {
	return func(c *Config) {
		c.FrequencyTTL = ttl
	}
}

// WithStemCacheSize bounds the word-stem cache.
func WithStemCacheSize(size int) ConfigOption {
	return func(c *Config) {
		c.StemCacheSize = size
	}
}

// WithSequenceCacheSize bounds the per-text token cache.
func WithSequenceCacheSize(size int) ConfigOption {
	return func(c *Config) {
		c.SequenceCacheSize = size
	}
}

// DefaultConfig returns a Config with the standard thresholds.
func DefaultConfig() *Config {
	return &Config{
		MinScore:          50,
		MaxResults:        10,
		FrequencyTTL:      score.DefaultFrequencyTTL,
		StemCacheSize:     analyze.DefaultStemCacheSize,
		SequenceCacheSize: analyze.DefaultSequenceCacheSize,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if err := core.ValidateMinScore(c.MinScore); err != nil {
		return err
	}
	if c.MaxResults < 0 {
		return ErrInvalidMaxResults
	}
	return nil
}
