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

import "errors"

var (
	// ErrAnalyzerRequired is returned when an analyzer is not provided.
	ErrAnalyzerRequired = errors.New("analyzer required")

	// ErrFrequencyCacheRequired is returned when a frequency cache is not provided.
	ErrFrequencyCacheRequired = errors.New("frequency cache required")

	// ErrInvalidMaxResults indicates a negative result limit.
	ErrInvalidMaxResults = errors.New("max results cannot be negative")
)
