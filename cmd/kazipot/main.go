// Copyright 2025 Poiesic Systems
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
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/kazipot"
	"github.com/poiesic/kazipot/ingestion"
	"github.com/poiesic/kazipot/server"
)

func main() {
	app := &cli.App{
		Name:  "kazipot",
		Usage: "Natural language search over the Slovenian tourism catalogue",
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
				Name:   "index",
				Usage:  "Build the search index from the catalogue store",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "catalogue",
						Aliases:  []string{"c"},
						Usage:    "Path to the BadgerDB catalogue directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "index",
						Aliases:  []string{"i"},
						Usage:    "Path where the search index is created",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents committed per index batch",
						Value: 256,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for document preparation (0 = auto)",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Run a single query against the index",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "catalogue",
						Aliases:  []string{"c"},
						Usage:    "Path to the BadgerDB catalogue directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "index",
						Aliases:  []string{"i"},
						Usage:    "Path to the prebuilt search index",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "gazetteer",
						Aliases:  []string{"g"},
						Usage:    "Path to the town gazetteer file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "assistant-location",
						Usage: "Place applied to list queries that name no location",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the query API over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"f"},
						Usage:   "Path to the YAML configuration file",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	var opts []ingestion.Option
	if c.Int("batch-size") > 0 {
		opts = append(opts, ingestion.WithBatchSize(c.Int("batch-size")))
	}
	if c.Int("pool-size") > 0 {
		opts = append(opts, ingestion.WithPoolSize(c.Int("pool-size")))
	}

	indexed, err := kazipot.BuildIndex(ctx, c.String("catalogue"), c.String("index"), opts...)
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Indexed %d catalogue entries into %s\n", indexed, c.String("index"))
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}

	app, err := kazipot.Open(
		c.String("catalogue"),
		c.String("index"),
		c.String("gazetteer"),
		kazipot.WithAssistantLocation(c.String("assistant-location")),
	)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	defer app.Close()

	hits, err := app.AnalyzeQuery(context.Background(), query)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(hits) == 0 {
		fmt.Println("no results")
		return nil
	}
	for _, hit := range hits {
		marker := " "
		if hit.ExactHit {
			marker = "*"
		}
		fmt.Printf("%s %-40s %-12s %-20s %.3f\n", marker, hit.Name, hit.Kind, hit.RegionName, hit.Score)
		if hit.Suggestion {
			fmt.Printf("  did you mean: %s\n", hit.SuggestionText)
		}
	}
	return nil
}

func serveCommand(c *cli.Context) error {
	cfg := server.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := server.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	app, err := kazipot.Open(
		cfg.Paths.Catalogue,
		cfg.Paths.Index,
		cfg.Paths.Gazetteer,
		kazipot.WithAssistantLocation(cfg.Search.AssistantLocation),
		kazipot.WithListLimit(cfg.Search.ListLimit),
	)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	defer app.Close()

	srv, err := server.NewServer(cfg, app)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
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
