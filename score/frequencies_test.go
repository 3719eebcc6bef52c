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

package score

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
)

func splitTokens(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

func TestBuildFrequencies(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	docs := []core.Document{
		{ID: "1", Summary: "login fails", Description: "login broken again"},
		{ID: "2", Summary: "upload slow"},
		{ID: "3", Summary: "login timeout", Description: "upload also affected"},
	}

	freq := BuildFrequencies(docs, splitTokens, now)

	assert.Equal(t, 3, freq.TotalDocs)
	assert.Equal(t, now, freq.ComputedAt)

	// "login" appears twice in doc 1 but counts once per document.
	assert.Equal(t, 2, freq.Count("login"))
	assert.Equal(t, 2, freq.Count("upload"))
	assert.Equal(t, 1, freq.Count("timeout"))
	assert.Equal(t, 0, freq.Count("payment"))
}

func TestBuildFrequenciesEmptyCorpus(t *testing.T) {
	freq := BuildFrequencies(nil, splitTokens, time.Now())
	assert.Equal(t, 0, freq.TotalDocs)
	assert.Empty(t, freq.Counts)
}

func TestCountClampsCorruptEntries(t *testing.T) {
	freq := &CorpusFrequencies{
		Counts:    map[string]int{"neg": -4, "over": 99},
		TotalDocs: 10,
	}
	assert.Equal(t, 0, freq.Count("neg"))
	assert.Equal(t, 10, freq.Count("over"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		freq *CorpusFrequencies
		ok   bool
	}{
		{"valid", &CorpusFrequencies{Counts: map[string]int{"a": 3}, TotalDocs: 5}, true},
		{"empty", &CorpusFrequencies{Counts: map[string]int{}, TotalDocs: 0}, true},
		{"negative count", &CorpusFrequencies{Counts: map[string]int{"a": -1}, TotalDocs: 5}, false},
		{"count above total", &CorpusFrequencies{Counts: map[string]int{"a": 6}, TotalDocs: 5}, false},
		{"negative total", &CorpusFrequencies{Counts: map[string]int{}, TotalDocs: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.freq.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, core.ErrCorruptFrequencies)
			}
		})
	}
}

func TestTokenWeight(t *testing.T) {
	freq := &CorpusFrequencies{
		Counts:    map[string]int{"ubiquitous": 10, "common": 9, "rare": 1},
		TotalDocs: 10,
	}

	t.Run("ubiquitous token is discounted", func(t *testing.T) {
		// 1 + ln(10/11) dips below the neutral weight.
		assert.Less(t, TokenWeight("ubiquitous", freq), 1.0)
		assert.Greater(t, TokenWeight("rare", freq), TokenWeight("ubiquitous", freq))
	})

	t.Run("weight never increases with count", func(t *testing.T) {
		rare := TokenWeight("rare", freq)
		common := TokenWeight("common", freq)
		assert.GreaterOrEqual(t, rare, common)
		assert.GreaterOrEqual(t, common, TokenWeight("ubiquitous", freq))
	})

	t.Run("bounds", func(t *testing.T) {
		for _, token := range []string{"ubiquitous", "common", "rare", "absent"} {
			w := TokenWeight(token, freq)
			assert.GreaterOrEqual(t, w, 0.01)
			assert.LessOrEqual(t, w, 1.0)
		}
	})

	t.Run("absent token clamps to maximum", func(t *testing.T) {
		// 1 + ln(10/1) is well above 1.0.
		assert.Equal(t, 1.0, TokenWeight("absent", freq))
	})

	t.Run("nil frequencies", func(t *testing.T) {
		assert.Equal(t, 1.0, TokenWeight("anything", nil))
	})

	t.Run("too few documents", func(t *testing.T) {
		tiny := &CorpusFrequencies{Counts: map[string]int{"a": 1}, TotalDocs: 1}
		assert.Equal(t, 1.0, TokenWeight("a", tiny))
	})
}

func TestFrequencyCache(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewFrequencyCache(5 * time.Minute)
	cache.now = func() time.Time { return clock }

	builds := 0
	build := func(now time.Time) *CorpusFrequencies {
		builds++
		return &CorpusFrequencies{Counts: map[string]int{}, TotalDocs: builds, ComputedAt: now}
	}

	first := cache.GetOrBuild("PROJ", build)
	require.Equal(t, 1, builds)

	t.Run("fresh entry is reused", func(t *testing.T) {
		clock = clock.Add(4 * time.Minute)
		got := cache.GetOrBuild("PROJ", build)
		assert.Equal(t, 1, builds)
		assert.Same(t, first, got)
	})

	t.Run("distinct corpus keys do not share entries", func(t *testing.T) {
		cache.GetOrBuild("OTHER", build)
		assert.Equal(t, 2, builds)
	})

	t.Run("expired entry is rebuilt", func(t *testing.T) {
		clock = clock.Add(2 * time.Minute) // 6 minutes past first build
		got := cache.GetOrBuild("PROJ", build)
		assert.Equal(t, 3, builds)
		assert.NotSame(t, first, got)
	})

	t.Run("clear drops all entries", func(t *testing.T) {
		cache.Clear()
		cache.GetOrBuild("PROJ", build)
		assert.Equal(t, 4, builds)
	})
}

func TestNewFrequencyCacheDefaultsTTL(t *testing.T) {
	cache := NewFrequencyCache(0)
	assert.Equal(t, DefaultFrequencyTTL, cache.ttl)
}
