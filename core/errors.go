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

import "errors"

// Domain validation errors
var (
	// ErrNegativeMinScore indicates a minimum-score threshold below zero.
	ErrNegativeMinScore = errors.New("minimum score cannot be negative")

	// ErrMissingDocumentID indicates a document without an identifier.
	ErrMissingDocumentID = errors.New("document id cannot be empty")

	// ErrCorruptFrequencies indicates corpus frequency statistics that violate
	// their invariant (a count below zero or above the total document count).
	ErrCorruptFrequencies = errors.New("corrupt corpus frequencies")
)
