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

// Package analyze turns raw issue text into comparable token sequences.
//
// The Analyzer type runs a three-stage pipeline:
//   - Normalization: lowercasing, punctuation stripping, short-token removal,
//     and canonicalization through a fixed synonym table
//   - Stemming: the classic five-step Porter algorithm, memoized through a
//     bounded cache
//   - Stopword filtering: removal of tokens that appear near-ubiquitously in
//     issue text and carry no discriminative value
//
// The pipeline is a pure function of its input and the fixed tables; both
// caches are pure memoizations and can be cleared at any time without
// affecting results.
package analyze
