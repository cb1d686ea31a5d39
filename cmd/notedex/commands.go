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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/poiesic/notedex"
	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/core"
	"github.com/poiesic/notedex/search"
	"github.com/poiesic/notedex/storage/files"
	"github.com/urfave/cli/v2"
)

var errMissingArgument = errors.New("missing argument")

// session is an open engine with the provider it was built on.
type session struct {
	engine   *notedex.Engine
	provider ai.Provider
}

func (s *session) Close() error {
	return errors.Join(s.engine.Close(), s.provider.Close())
}

func loadConfig(c *cli.Context) (*Config, error) {
	cfg, err := LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if root := c.String("notes"); root != "" {
		cfg.Notes.Root = root
	}
	if dir := c.String("index"); dir != "" {
		cfg.IndexDir = dir
	}
	return cfg, nil
}

func openSession(cfg *Config, opts ...notedex.Option) (*session, error) {
	source, err := files.NewSource(cfg.Notes.Root,
		files.WithIncludes(cfg.Notes.Includes...),
		files.WithExcludes(cfg.Notes.Excludes...),
	)
	if err != nil {
		return nil, fmt.Errorf("opening notes: %w", err)
	}

	provider, err := newProvider(cfg.AI)
	if err != nil {
		return nil, fmt.Errorf("creating AI provider: %w", err)
	}

	opts = append([]notedex.Option{
		notedex.WithProvider(provider),
		notedex.WithSearchConfig(cfg.Search),
		notedex.WithStoragePath(cfg.IndexDir),
	}, opts...)
	engine, err := notedex.NewEngine(source, opts...)
	if err != nil {
		provider.Close()
		return nil, err
	}
	return &session{engine: engine, provider: provider}, nil
}

// restore loads the saved index and waits for it.
func restore(ctx context.Context, engine *notedex.Engine) error {
	if err := engine.Restore(ctx); err != nil {
		return fmt.Errorf("restoring index: %w", err)
	}
	if err := engine.Wait(ctx); err != nil {
		return err
	}
	if !engine.IsReady() {
		slog.Warn("index is incomplete; run notedex index")
	}
	return nil
}

func indexCommand(c *cli.Context) error {
	ctx := c.Context
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	progress := newProgressReporter(c.App.ErrWriter, c.Bool("plain-progress"))
	s, err := openSession(cfg, notedex.WithProgress(progress.update))
	if err != nil {
		return err
	}
	defer s.Close()

	// Restored fingerprints let the rebuild skip unchanged notes.
	if !c.Bool("full") {
		if err := s.engine.Restore(ctx); err != nil {
			return fmt.Errorf("restoring index: %w", err)
		}
		if err := s.engine.Wait(ctx); err != nil {
			return err
		}
	}

	fmt.Fprintf(c.App.ErrWriter, "Notes: %s\n", cfg.Notes.Root)
	fmt.Fprintf(c.App.ErrWriter, "Index: %s\n", cfg.IndexDir)

	progress.start()
	if err := s.engine.RebuildCorpus(ctx, c.Bool("full")); err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}
	if err := s.engine.Wait(ctx); err != nil {
		s.engine.CancelIndexing()
		return err
	}
	progress.finish()
	return nil
}

func searchCommand(c *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("%w: query", errMissingArgument)
	}

	ctx := c.Context
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := restore(ctx, s.engine); err != nil {
		return err
	}

	out := c.App.Writer
	found := false
	q := search.Query{Text: text, Expanded: c.Bool("expanded"), Split: c.Bool("split")}
	err = s.engine.Search(ctx, q, search.Handlers{
		SubQueries: func(parts []string) {
			fmt.Fprintf(out, "Sub-queries: %s\n\n", strings.Join(parts, " | "))
		},
		Result: func(r *core.SearchResult) {
			if !r.Empty() {
				found = true
			}
			printResult(out, r)
		},
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if !found {
		fmt.Fprintln(out, "No matching notes")
	}
	return nil
}

func similarCommand(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("%w: note id", errMissingArgument)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := restore(c.Context, s.engine); err != nil {
		return err
	}

	neighbors, err := s.engine.SimilarNotes(id, nil, c.Int("count"))
	if err != nil {
		return err
	}
	for i, n := range neighbors {
		fmt.Fprintf(c.App.Writer, "%2d. [%.3f] %s\n", i+1, n.Similarity, n.DocumentID)
	}
	return nil
}

func keywordsCommand(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("%w: note id", errMissingArgument)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := restore(c.Context, s.engine); err != nil {
		return err
	}

	keywords, err := s.engine.Keywords(id, c.Int("count"))
	if err != nil {
		return err
	}
	for _, k := range keywords {
		fmt.Fprintf(c.App.Writer, "%-20s %.4f\n", k.Term, k.Score)
	}
	return nil
}

func printResult(w io.Writer, r *core.SearchResult) {
	kind := "search"
	if r.IsQuestion {
		kind = "question"
	}
	fmt.Fprintf(w, "%s: %s\n", kind, r.Query)

	for _, a := range r.Answers {
		fmt.Fprintf(w, "  answer [%.2f] %s\n", a.Confidence, a.Text)
	}
	for i, hit := range r.Notes {
		fmt.Fprintf(w, "  %2d. [%.3f] %s (%s)\n", i+1, hit.Score, hit.Title, hit.DocumentID)
		for _, m := range hit.Matches {
			fmt.Fprintf(w, "        %s: %q\n", m.Field, m.Term)
		}
	}
	for _, hit := range r.Records {
		fmt.Fprintf(w, "      record [%.3f] %s %s (%s)\n", hit.Score, hit.Record.Kind, hit.Record.Title, hit.DocumentID)
	}
	fmt.Fprintln(w)
}
