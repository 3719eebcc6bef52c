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

package core

import "fmt"

// ValidateMinScore validates a minimum-score threshold at the engine boundary.
//
// A threshold above 100 is legal (it simply filters everything); only a
// negative value is a configuration error.
func ValidateMinScore(minScore float64) error {
	if minScore < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeMinScore, minScore)
	}
	return nil
}

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//
// NOT validated (valid degenerate input, handled by the scorers):
//   - Summary/Description (empty text yields empty token sequences)
//   - Reporter, Labels, Components, IssueType, StatusCategory
//   - Created (zero time simply produces a zero recency signal)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrMissingDocumentID)
	}
	if doc.ID == "" {
		return ErrMissingDocumentID
	}
	return nil
}
