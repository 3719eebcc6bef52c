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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	duplicator "github.com/Prabhatcodes-x/rovo-issue-duplicator-i"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/dedupe"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/rank"
)

func main() {
	app := &cli.App{
		Name:  "dupfinder",
		Usage: "Duplicate detection for issue trackers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "rank",
				Usage:  "Rank one issue against the rest of the corpus",
				Action: rankCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to a JSON file holding the issue corpus",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "ID of the issue to find duplicates for",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "project",
						Aliases: []string{"p"},
						Usage:   "Corpus key for frequency-statistics caching",
						Value:   "default",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to a YAML config with threshold and table overrides",
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Minimum score a candidate must reach",
						Value: 50,
					},
					&cli.IntFlag{
						Name:  "max",
						Usage: "Maximum number of results",
						Value: 10,
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Log per-pair signal breakdowns",
					},
				},
			},
			{
				Name:   "sweep",
				Usage:  "Scan a whole corpus for duplicate pairs",
				Action: sweepCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to a JSON file holding the issue corpus",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "project",
						Aliases: []string{"p"},
						Usage:   "Corpus key for frequency-statistics caching",
						Value:   "default",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to a YAML config with threshold and table overrides",
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Minimum score a pair must reach",
						Value: 70,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size (default: half the CPUs)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func rankCommand(c *cli.Context) error {
	docs, err := loadDocuments(c.String("file"))
	if err != nil {
		return err
	}

	queryID := c.String("query")
	query := findDocument(docs, queryID)
	if query == nil {
		return fmt.Errorf("issue %q not found in %s", queryID, c.String("file"))
	}

	engine, err := buildEngine(c)
	if err != nil {
		return err
	}

	results, err := engine.Rank(c.Context, query, docs, c.String("project"))
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Printf("No likely duplicates of %s\n", queryID)
		return nil
	}
	fmt.Printf("Likely duplicates of %s:\n", queryID)
	for i := range results {
		for _, line := range duplicator.Explain(&results[i]) {
			fmt.Println(line)
		}
	}
	return nil
}

func sweepCommand(c *cli.Context) error {
	docs, err := loadDocuments(c.String("file"))
	if err != nil {
		return err
	}

	engine, err := buildEngine(c)
	if err != nil {
		return err
	}

	var opts []dedupe.Option
	if c.IsSet("workers") {
		opts = append(opts, dedupe.WithPoolSize(c.Int("workers")))
	}
	sweeper, err := engine.NewSweeper(opts...)
	if err != nil {
		return err
	}
	defer sweeper.Release()

	found, err := sweeper.Sweep(c.Context, docs, c.String("project"))
	if err != nil {
		return err
	}

	if len(found) == 0 {
		fmt.Println("No duplicate pairs found")
		return nil
	}
	for _, dup := range found {
		fmt.Printf("%s:\n", dup.QueryID)
		for i := range dup.Matches {
			for _, line := range duplicator.Explain(&dup.Matches[i]) {
				fmt.Println(line)
			}
		}
	}
	return nil
}

// buildEngine assembles an engine from the YAML config file, if any, with
// command-line flags taking precedence.
func buildEngine(c *cli.Context) (*duplicator.Engine, error) {
	var overrides *fileConfig
	if path := c.String("config"); path != "" {
		loaded, err := loadFileConfig(path)
		if err != nil {
			return nil, err
		}
		overrides = loaded
	}

	cfg := rank.DefaultConfig()
	if overrides != nil {
		overrides.apply(cfg)
	}
	if c.IsSet("min-score") || overrides == nil || overrides.MinScore == nil {
		cfg.MinScore = c.Float64("min-score")
	}
	if c.IsSet("max") {
		cfg.MaxResults = c.Int("max")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}

	engineOpts := []duplicator.EngineOption{duplicator.WithConfig(cfg)}
	if overrides != nil {
		if overrides.Synonyms != nil {
			engineOpts = append(engineOpts, duplicator.WithSynonyms(overrides.Synonyms))
		}
		if overrides.Stopwords != nil {
			engineOpts = append(engineOpts, duplicator.WithStopwords(overrides.Stopwords))
		}
	}
	return duplicator.NewEngine(engineOpts...)
}

func findDocument(docs []core.Document, id string) *core.Document {
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i]
		}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
