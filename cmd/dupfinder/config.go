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

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/rank"
)

// fileConfig mirrors the YAML override file. Absent keys leave the
// corresponding defaults untouched.
type fileConfig struct {
	MinScore   *float64          `yaml:"min_score"`
	MaxResults *int              `yaml:"max_results"`
	Debug      *bool             `yaml:"debug"`
	Synonyms   map[string]string `yaml:"synonyms"`
	Stopwords  []string          `yaml:"stopwords"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

func (f *fileConfig) apply(cfg *rank.Config) {
	if f.MinScore != nil {
		cfg.MinScore = *f.MinScore
	}
	if f.MaxResults != nil {
		cfg.MaxResults = *f.MaxResults
	}
	if f.Debug != nil {
		cfg.Debug = *f.Debug
	}
}

// loadDocuments reads an issue corpus from a JSON array file.
func loadDocuments(path string) ([]core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}
	var docs []core.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parsing corpus %s: %w", path, err)
	}
	return docs, nil
}
