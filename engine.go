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


package notedex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/ai/openai"
	"github.com/poiesic/notedex/core"
	"github.com/poiesic/notedex/index"
	"github.com/poiesic/notedex/ingestion"
	"github.com/poiesic/notedex/search"
	"github.com/poiesic/notedex/storage"
	"github.com/poiesic/notedex/storage/badger"
)

// Engine ties the indices, the indexing pipeline and the searcher to one
// document source. All index mutation is queued on the pipeline; queries
// read the indices concurrently.
type Engine struct {
	source     storage.DocumentSource
	provider   ai.Provider
	terms      *index.TermIndex
	embeddings *index.EmbeddingIndex
	pipeline   *ingestion.Pipeline
	searcher   *search.Searcher
	backend    *badger.Backend
	persistent bool
	ownsAI     bool
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*engineOptions) error

type engineOptions struct {
	aiConfig     *ai.Config
	provider     ai.Provider
	searchConfig search.Config
	storagePath  string
	inMemory     bool
	logger       *slog.Logger
	onProgress   func(remaining int)
	onComplete   func()
}

// WithAIConfig configures the OpenAI-compatible provider the engine creates.
func WithAIConfig(config *ai.Config) Option {
	return func(o *engineOptions) error {
		if config == nil {
			return ErrInvalidOption
		}
		o.aiConfig = config
		return nil
	}
}

// WithProvider supplies the language capabilities. The caller keeps
// ownership and must close the provider after the engine.
func WithProvider(provider ai.Provider) Option {
	return func(o *engineOptions) error {
		if provider == nil {
			return ErrInvalidOption
		}
		o.provider = provider
		return nil
	}
}

// WithSearchConfig overrides the search thresholds.
func WithSearchConfig(config search.Config) Option {
	return func(o *engineOptions) error {
		if err := config.Validate(); err != nil {
			return err
		}
		o.searchConfig = config
		return nil
	}
}

// WithStoragePath persists index snapshots in a badger database at path.
func WithStoragePath(path string) Option {
	return func(o *engineOptions) error {
		if path == "" {
			return ErrInvalidOption
		}
		o.storagePath = path
		o.inMemory = false
		return nil
	}
}

// WithInMemoryStorage keeps index snapshots in an in-memory badger database.
func WithInMemoryStorage() Option {
	return func(o *engineOptions) error {
		o.storagePath = ""
		o.inMemory = true
		return nil
	}
}

// WithLogger sets the logger for the engine and its components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *engineOptions) error {
		if logger == nil {
			return ErrInvalidOption
		}
		o.logger = logger
		return nil
	}
}

// WithProgress registers a callback receiving the number of queued indexing
// tasks after each task.
func WithProgress(fn func(remaining int)) Option {
	return func(o *engineOptions) error {
		o.onProgress = fn
		return nil
	}
}

// WithCompletion registers a callback run each time a corpus pass finishes.
func WithCompletion(fn func()) Option {
	return func(o *engineOptions) error {
		o.onComplete = fn
		return nil
	}
}

// NewEngine creates an engine over source. Without WithProvider an
// OpenAI-compatible provider is created from the AI config.
func NewEngine(source storage.DocumentSource, opts ...Option) (*Engine, error) {
	if source == nil {
		return nil, ErrDocumentSourceRequired
	}

	options := &engineOptions{
		searchConfig: search.DefaultConfig(),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		source: source,
		logger: options.logger.With("component", "engine"),
	}

	e.provider = options.provider
	if e.provider == nil {
		config := options.aiConfig
		if config == nil {
			config = ai.DefaultConfig()
		}
		provider, err := openai.NewProvider(config)
		if err != nil {
			return nil, fmt.Errorf("creating AI provider: %w", err)
		}
		e.provider = provider
		e.ownsAI = true
	}

	if err := e.init(options); err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

func (e *Engine) init(options *engineOptions) error {
	var err error
	indexOpts := []index.Option{index.WithLogger(options.logger)}
	e.terms, err = index.NewTermIndex(e.provider.Tokenizer(), e.provider.WordEmbedder(), indexOpts...)
	if err != nil {
		return err
	}
	e.embeddings, err = index.NewEmbeddingIndex(e.provider.Tokenizer(), e.provider.WordEmbedder(), indexOpts...)
	if err != nil {
		return err
	}

	pipelineOpts := []ingestion.Option{
		ingestion.WithLogger(options.logger),
		ingestion.WithProgress(options.onProgress),
		ingestion.WithCompletion(options.onComplete),
	}
	if options.storagePath != "" || options.inMemory {
		entries, checkpoints, backend, err := badger.NewRepositories(options.storagePath, options.logger)
		if err != nil {
			return err
		}
		e.backend = backend
		e.persistent = true
		pipelineOpts = append(pipelineOpts,
			ingestion.WithIndexRepository(entries),
			ingestion.WithCheckpointRepository(checkpoints),
		)
	}

	e.pipeline, err = ingestion.NewPipeline(e.terms, e.embeddings, pipelineOpts...)
	if err != nil {
		return err
	}

	e.searcher, err = search.NewSearcher(e.source, e.terms, e.provider,
		search.WithLogger(options.logger),
		search.WithConfig(options.searchConfig),
	)
	return err
}

// Close stops indexing and releases storage and, when the engine created
// it, the AI provider. Errors from each are joined.
func (e *Engine) Close() error {
	var errs []error
	if e.pipeline != nil {
		e.pipeline.Release()
	}
	if e.backend != nil {
		if err := e.backend.Close(); err != nil {
			e.logger.Error("error closing index store", "err", err)
			errs = append(errs, err)
		}
	}
	if e.ownsAI && e.provider != nil {
		if err := e.provider.Close(); err != nil {
			e.logger.Error("error closing AI provider", "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IndexDocument queues (re)indexing of doc. The document must be valid.
func (e *Engine) IndexDocument(doc *core.Document) error {
	return e.pipeline.Index(doc)
}

// RemoveDocument queues removal of a document from both indices.
func (e *Engine) RemoveDocument(id string) error {
	return e.pipeline.Remove(id)
}

// RebuildCorpus reads every document from the source and queues a rebuild.
// Pending indexing is cancelled first. Unless full is set, documents whose
// content is unchanged since they were indexed are skipped.
func (e *Engine) RebuildCorpus(ctx context.Context, full bool) error {
	docs, err := e.source.Documents(ctx)
	if err != nil {
		return fmt.Errorf("reading documents: %w", err)
	}
	e.logger.Info("rebuilding corpus", "documents", len(docs), "full", full)
	return e.pipeline.Rebuild(docs, full)
}

// CancelIndexing drops queued indexing tasks. A running task completes.
func (e *Engine) CancelIndexing() {
	e.pipeline.Cancel()
}

// Wait blocks until queued indexing has finished or ctx is done.
func (e *Engine) Wait(ctx context.Context) error {
	return e.pipeline.Wait(ctx)
}

// IsReady reports whether corpus statistics cover the indexed documents.
func (e *Engine) IsReady() bool {
	return e.terms.IsReady()
}

// Restore queues loading of the persisted index snapshot.
func (e *Engine) Restore(ctx context.Context) error {
	if !e.persistent {
		return ErrStorageNotConfigured
	}
	return e.pipeline.Restore(ctx)
}

// Search runs q and streams one result per sub-query to h.
func (e *Engine) Search(ctx context.Context, q search.Query, h search.Handlers) error {
	return e.searcher.Search(ctx, q, h)
}

// SearchAll runs q and returns the results in sub-query order.
func (e *Engine) SearchAll(ctx context.Context, q search.Query) ([]*core.SearchResult, error) {
	return e.searcher.SearchAll(ctx, q)
}

// SimilarNotes ranks candidates by embedding similarity to the note id.
// Nil candidates means every indexed note. maxResults 0 uses the default.
func (e *Engine) SimilarNotes(id string, candidates []string, maxResults int) ([]core.Neighbor, error) {
	if id == "" {
		return nil, core.ErrEmptyID
	}
	if candidates == nil {
		candidates = e.embeddings.Documents()
	}
	return e.embeddings.SimilarNotes(id, candidates, maxResults), nil
}

// Keywords returns the n highest weighted terms of the note id.
func (e *Engine) Keywords(id string, n int) ([]core.Keyword, error) {
	if id == "" {
		return nil, core.ErrEmptyID
	}
	if !e.terms.Contains(id) {
		return nil, fmt.Errorf("note %q: %w", id, storage.ErrNotFound)
	}
	return e.terms.Keywords(id, n), nil
}
