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


package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/notedex/core"
	"github.com/poiesic/notedex/index"
	"github.com/poiesic/notedex/storage"
)

// Pipeline serializes index maintenance on a single worker.
type Pipeline struct {
	terms       *index.TermIndex
	embeddings  *index.EmbeddingIndex
	indices     []documentIndex
	entries     storage.IndexRepository
	checkpoints storage.CheckpointRepository
	pool        *ants.Pool
	logger      *slog.Logger

	onProgress func(remaining int)
	onComplete func()

	// ctx is handed to every task and cancelled by Release.
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	queue    []task
	running  bool
	idle     chan struct{} // Closed while no task is queued or running
	released bool

	// fingerprints is only touched by the worker.
	fingerprints map[string]uint64
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			return ErrNilLogger
		}
		p.logger = logger
		return nil
	}
}

// WithIndexRepository persists every indexed document to repo.
func WithIndexRepository(repo storage.IndexRepository) Option {
	return func(p *Pipeline) error {
		p.entries = repo
		return nil
	}
}

// WithCheckpointRepository records each completed corpus pass in repo.
func WithCheckpointRepository(repo storage.CheckpointRepository) Option {
	return func(p *Pipeline) error {
		p.checkpoints = repo
		return nil
	}
}

// WithProgress sets a callback invoked after every task with the number of
// tasks still queued. It runs on the worker and must not block.
func WithProgress(fn func(remaining int)) Option {
	return func(p *Pipeline) error {
		p.onProgress = fn
		return nil
	}
}

// WithCompletion sets a callback invoked on the worker after every corpus pass.
func WithCompletion(fn func()) Option {
	return func(p *Pipeline) error {
		p.onComplete = fn
		return nil
	}
}

// NewPipeline creates a pipeline maintaining terms and embeddings.
func NewPipeline(terms *index.TermIndex, embeddings *index.EmbeddingIndex, opts ...Option) (*Pipeline, error) {
	if terms == nil {
		return nil, ErrTermIndexRequired
	}
	if embeddings == nil {
		return nil, ErrEmbeddingIndexRequired
	}

	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	idle := make(chan struct{})
	close(idle)
	p := &Pipeline{
		terms:        terms,
		embeddings:   embeddings,
		indices:      []documentIndex{embeddings, terms},
		pool:         pool,
		logger:       slog.Default(),
		idle:         idle,
		fingerprints: make(map[string]uint64),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			pool.Release()
			return nil, optErr
		}
	}
	p.logger = p.logger.With("component", "pipeline")
	p.ctx, p.cancel = context.WithCancel(context.Background())
	return p, nil
}

// Index queues docs for indexing, followed by a corpus pass.
// Documents are validated before anything is queued.
func (p *Pipeline) Index(docs ...*core.Document) error {
	tasks := make([]task, 0, len(docs))
	for _, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			return err
		}
		tasks = append(tasks, task{kind: taskIndex, doc: doc})
	}
	return p.submit(tasks, true)
}

// Remove queues the removal of ids, followed by a corpus pass.
func (p *Pipeline) Remove(ids ...string) error {
	tasks := make([]task, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			return core.ErrEmptyID
		}
		tasks = append(tasks, task{kind: taskRemove, id: id})
	}
	return p.submit(tasks, true)
}

// Rebuild queues a corpus-wide pass over docs, which become the whole corpus:
// indexed documents missing from docs are removed, and documents whose
// content is unchanged since they were indexed are skipped. With full set,
// both indices are reset first and every document is indexed again.
// Pending tasks are dropped.
func (p *Pipeline) Rebuild(docs []*core.Document, full bool) error {
	keep := make(map[string]struct{}, len(docs))
	tasks := make([]task, 0, len(docs)+1)
	if full {
		tasks = append(tasks, task{kind: taskReset})
	} else {
		tasks = append(tasks, task{kind: taskPrune, keep: keep})
	}
	for _, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			return err
		}
		keep[doc.ID] = struct{}{}
		tasks = append(tasks, task{kind: taskIndex, doc: doc})
	}

	p.Cancel()
	return p.submit(tasks, true)
}

// Restore queues loading of every persisted entry into the indices. The
// indices become ready once restored when the last persisted corpus pass
// completed; otherwise they stay partial until the next Rebuild.
func (p *Pipeline) Restore(ctx context.Context) error {
	if p.entries == nil {
		return nil
	}

	ready := false
	if p.checkpoints != nil {
		checkpoint, err := p.checkpoints.LoadCheckpoint(ctx)
		switch {
		case errors.Is(err, storage.ErrNotFound):
		case err != nil:
			return fmt.Errorf("loading checkpoint: %w", err)
		default:
			ready = checkpoint.Ready
			p.logger.Info("restoring index",
				"documents", checkpoint.Documents,
				"ready", checkpoint.Ready,
				"updated", checkpoint.UpdatedAt)
		}
	}
	return p.submit([]task{{kind: taskRestore}}, ready)
}

// Cancel drops every queued task. A task already running completes.
func (p *Pipeline) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.queue); n > 0 {
		p.logger.Info("cancelled pending tasks", "tasks", n)
	}
	p.queue = nil
}

// Pending returns the number of queued tasks, excluding a running one.
func (p *Pipeline) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Wait blocks until no task is queued or running, or ctx is done.
func (p *Pipeline) Wait(ctx context.Context) error {
	p.mu.Lock()
	idle := p.idle
	p.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release drops pending tasks and stops the worker after its current task.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	p.mu.Lock()
	p.released = true
	p.queue = nil
	p.mu.Unlock()

	p.cancel()
	p.pool.Release()
}

// submit appends tasks to the queue. A pending corpus pass is moved behind
// the new tasks; with barrier set, one is added if none was pending.
func (p *Pipeline) submit(tasks []task, barrier bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.released {
		return ErrPipelineReleased
	}

	hadCorpus := false
	pending := p.queue[:0]
	for _, t := range p.queue {
		if t.kind == taskCorpus {
			hadCorpus = true
			continue
		}
		pending = append(pending, t)
	}
	p.queue = append(pending, tasks...)
	if barrier || hadCorpus {
		p.queue = append(p.queue, task{kind: taskCorpus})
	}

	if p.running || len(p.queue) == 0 {
		return nil
	}
	p.running = true
	p.idle = make(chan struct{})
	if err := p.pool.Submit(p.drain); err != nil {
		p.running = false
		p.queue = nil
		close(p.idle)
		return fmt.Errorf("scheduling worker: %w", err)
	}
	return nil
}

// drain runs queued tasks until the queue is empty.
func (p *Pipeline) drain() {
	for {
		p.mu.Lock()
		if len(p.queue) == 0 {
			p.running = false
			close(p.idle)
			p.mu.Unlock()
			return
		}
		next := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		p.run(next)

		p.mu.Lock()
		remaining := len(p.queue)
		p.mu.Unlock()
		if p.onProgress != nil {
			p.onProgress(remaining)
		}
		if next.kind == taskCorpus && p.onComplete != nil {
			p.onComplete()
		}
	}
}
