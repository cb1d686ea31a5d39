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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/notedex/ai/openai"
	"github.com/urfave/cli/v2"
)

// newProvider creates the language capabilities for commands that need them.
var newProvider = openai.NewProvider

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "notedex",
		Usage: "Index notes and search them by meaning",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
				Value:   "notedex.yaml",
			},
			&cli.StringFlag{
				Name:  "notes",
				Usage: "Notes root directory (overrides the config file)",
			},
			&cli.StringFlag{
				Name:  "index",
				Usage: "Index store directory (overrides the config file)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Index the notes and save the index",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "full",
						Usage: "Reindex every note, even unchanged ones",
					},
					&cli.BoolFlag{
						Name:  "plain-progress",
						Usage: "Print progress lines instead of a progress bar",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the notes",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "expanded",
						Aliases: []string{"e"},
						Usage:   "Use relaxed thresholds",
					},
					&cli.BoolFlag{
						Name:    "split",
						Aliases: []string{"s"},
						Usage:   "Split the query into independent sub-queries",
					},
				},
			},
			{
				Name:      "similar",
				Usage:     "List the notes most similar to a note",
				ArgsUsage: "<note-id>",
				Action:    similarCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "Maximum number of notes",
						Value:   10,
					},
				},
			},
			{
				Name:      "keywords",
				Usage:     "List the highest weighted terms of a note",
				ArgsUsage: "<note-id>",
				Action:    keywordsCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "Maximum number of terms",
						Value:   10,
					},
				},
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
