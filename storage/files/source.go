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


// Package files reads notes from a directory tree, one note per file.
package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/poiesic/notedex/core"
	"github.com/poiesic/notedex/storage"
)

// DefaultIncludes selects markdown and plain text notes.
var DefaultIncludes = []string{"**/*.md", "**/*.txt"}

// DefaultExcludes skips hidden directories.
var DefaultExcludes = []string{"**/.*/**"}

var _ storage.DocumentSource = (*Source)(nil)

// Source is a storage.DocumentSource over the files below a root directory.
// A document ID is the slash-separated path of its file relative to the root.
type Source struct {
	root     string
	includes []string
	excludes []string
	logger   *slog.Logger
}

// Option configures a Source.
type Option func(*Source) error

// WithIncludes replaces the glob patterns selecting note files.
func WithIncludes(patterns ...string) Option {
	return func(s *Source) error {
		if err := validatePatterns(patterns); err != nil {
			return err
		}
		s.includes = patterns
		return nil
	}
}

// WithExcludes replaces the glob patterns of skipped files and directories.
func WithExcludes(patterns ...string) Option {
	return func(s *Source) error {
		if err := validatePatterns(patterns); err != nil {
			return err
		}
		s.excludes = patterns
		return nil
	}
}

// WithLogger sets the logger used to report skipped notes.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) error {
		if logger == nil {
			return ErrNilLogger
		}
		s.logger = logger
		return nil
	}
}

func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
	}
	return nil
}

// NewSource creates a source reading notes below root.
func NewSource(root string, opts ...Option) (*Source, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	s := &Source{
		root:     abs,
		includes: DefaultIncludes,
		excludes: DefaultExcludes,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.With("component", "files", "root", abs)
	return s, nil
}

// Documents reads every selected file, ordered by ID. Notes whose front
// matter cannot be parsed are logged and left out.
func (s *Source) Documents(ctx context.Context) ([]*core.Document, error) {
	var docs []*core.Document
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && s.matches(s.excludes, rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.selected(rel) {
			return nil
		}

		doc, err := s.read(path, rel)
		if errors.Is(err, ErrInvalidFrontMatter) {
			s.logger.Warn("skipping note", "document", rel, "err", err)
			return nil
		}
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Document reads the note with the given ID.
func (s *Source) Document(ctx context.Context, id string) (*core.Document, error) {
	if !filepath.IsLocal(filepath.FromSlash(id)) || !s.selected(id) {
		return nil, fmt.Errorf("document %q: %w", id, storage.ErrNotFound)
	}
	doc, err := s.read(filepath.Join(s.root, filepath.FromSlash(id)), id)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("document %q: %w", id, storage.ErrNotFound)
	}
	return doc, err
}

func (s *Source) selected(rel string) bool {
	return s.matches(s.includes, rel) && !s.matches(s.excludes, rel)
}

func (s *Source) matches(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}

func (s *Source) read(path, id string) (*core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	doc, err := parseNote(id, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	if doc.ModifiedAt.IsZero() {
		doc.ModifiedAt = info.ModTime().UTC()
	}
	return doc, nil
}
