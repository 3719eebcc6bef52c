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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryScore(t *testing.T) {
	scorer := NewTextScorer(nil)

	t.Run("keyword and phrase overlap saturates the cap", func(t *testing.T) {
		query := []string{"login", "button", "respond"}
		cand := []string{"login", "button", "unrespons"}

		got, shared, phrase := scorer.SummaryScore(query, cand, "", "")

		// Two shared keywords at 10 points each plus one shared bigram at
		// 2.5 * 20 points is 70 before the clamp.
		assert.Equal(t, SummaryCap, got)
		assert.Equal(t, []string{"button", "login"}, shared)
		assert.True(t, phrase)
	})

	t.Run("no overlap", func(t *testing.T) {
		got, shared, phrase := scorer.SummaryScore(
			[]string{"upload", "timeout"}, []string{"dashboard", "blank"}, "", "")
		assert.Zero(t, got)
		assert.Empty(t, shared)
		assert.False(t, phrase)
	})

	t.Run("single shared keyword scores below the cap", func(t *testing.T) {
		got, shared, _ := scorer.SummaryScore(
			[]string{"login", "slow"}, []string{"login", "broken"}, "", "")
		assert.InDelta(t, 10.0, got, 1e-9)
		assert.Equal(t, []string{"login"}, shared)
	})

	t.Run("containment bonus", func(t *testing.T) {
		got, _, _ := scorer.SummaryScore(nil, nil, "Login fails", "login fails on mobile")
		assert.InDelta(t, containmentBonus, got, 1e-9)
	})

	t.Run("containment needs both raw summaries", func(t *testing.T) {
		got, _, _ := scorer.SummaryScore(nil, nil, "", "login fails")
		assert.Zero(t, got)
	})
}

func TestSummaryScoreWeighted(t *testing.T) {
	// "button" appears in every document, "login" in two of ten, so
	// "button" carries a discounted weight and sorts after "login".
	freq := &CorpusFrequencies{
		Counts:    map[string]int{"button": 10, "login": 2},
		TotalDocs: 10,
	}
	scorer := NewTextScorer(freq)

	got, shared, _ := scorer.SummaryScore(
		[]string{"login", "button"}, []string{"button", "login"}, "", "")

	assert.Equal(t, []string{"login", "button"}, shared)
	// 10*1.0 for login plus 10*(1+ln(10/11)) for button.
	assert.InDelta(t, 19.047, got, 0.001)

	// Without the phrase bonus the common token's discount shows through.
	got, _, _ = scorer.SummaryScore(
		[]string{"button", "slow"}, []string{"button", "broken"}, "", "")
	assert.Less(t, got, 10.0)
	assert.Greater(t, got, 0.0)
}

func TestDescriptionScore(t *testing.T) {
	scorer := NewTextScorer(nil)

	tests := []struct {
		name  string
		query []string
		cand  []string
		want  float64
	}{
		{
			name:  "identical sequences",
			query: []string{"login", "button", "click"},
			cand:  []string{"login", "button", "click"},
			want:  DescriptionCap,
		},
		{
			name:  "partial shingle overlap",
			query: []string{"a", "b", "c", "d"},
			cand:  []string{"b", "c", "d", "e"},
			want:  DescriptionCap / 3, // one shared shingle of three distinct
		},
		{
			name:  "order matters",
			query: []string{"login", "button", "click"},
			cand:  []string{"click", "button", "login"},
			want:  0,
		},
		{
			name:  "too short for a shingle",
			query: []string{"login", "click"},
			cand:  []string{"login", "click"},
			want:  0,
		},
		{
			name: "both empty",
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scorer.DescriptionScore(tt.query, tt.cand), 1e-9)
		})
	}
}

func TestJaccard(t *testing.T) {
	set := func(items ...string) map[string]struct{} { return stringSet(items) }

	assert.Equal(t, 0.0, jaccard(set(), set()))
	assert.Equal(t, 1.0, jaccard(set("a", "b"), set("a", "b")))
	assert.Equal(t, 0.0, jaccard(set("a"), set("b")))
	assert.InDelta(t, 1.0/3.0, jaccard(set("a", "b"), set("b", "c")), 1e-9)
}
