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

// Package score computes the similarity sub-scores for one query/candidate
// pair and fuses them into a final 0-100 confidence value.
//
// Sub-scores:
//   - Summary text similarity: IDF-weighted keyword overlap, bigram phrase
//     overlap, and a substring containment bonus, capped at 40 points
//   - Description similarity: Jaccard over 3-token shingles, capped at 15
//   - Reporter match (20), label-set Jaccard (20), recency decay (10)
//
// Fusion subtracts structural mismatch penalties, applies the status
// multiplier, enforces the single-signal cap and the high-confidence
// corroboration gate, and emits human-readable reasons.
//
// Corpus document-frequency statistics feed the keyword weighting; they are
// cached per corpus key with a five-minute TTL.
package score
