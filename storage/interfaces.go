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

package storage

import (
	"context"

	"github.com/poiesic/notedex/core"
)

// Repository is the lifecycle shared by index snapshot stores.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// IndexRepository persists the derived index data of each document so an
// engine can start without re-embedding the corpus.
type IndexRepository interface {
	Repository

	// SaveEntries stores entries, replacing any existing entry with the same document ID.
	SaveEntries(ctx context.Context, entries ...*core.IndexEntry) error

	// DeleteEntries removes the entries of the given documents.
	// Missing entries are ignored.
	DeleteEntries(ctx context.Context, ids ...string) error

	// GetEntry retrieves the entry of one document.
	// Returns ErrNotFound if the entry doesn't exist.
	GetEntry(ctx context.Context, id string) (*core.IndexEntry, error)

	// Entries calls fn for every stored entry in document ID order.
	// Iteration stops at the first error returned by fn.
	Entries(ctx context.Context, fn func(*core.IndexEntry) error) error

	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// CheckpointRepository persists the state of the last completed corpus pass.
type CheckpointRepository interface {
	// SaveCheckpoint stores the checkpoint, replacing the previous one.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint returns the stored checkpoint.
	// Returns ErrNotFound if none was saved.
	LoadCheckpoint(ctx context.Context) (*core.Checkpoint, error)
}

// DocumentSource supplies documents owned by the note store.
// The engine only reads from it.
type DocumentSource interface {
	// Documents returns every document in a stable order.
	Documents(ctx context.Context) ([]*core.Document, error)

	// Document returns one document.
	// Returns ErrNotFound if it doesn't exist.
	Document(ctx context.Context, id string) (*core.Document, error)
}
