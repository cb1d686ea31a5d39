package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/notedex/core"
	"github.com/poiesic/notedex/storage"
)

// IndexRepository implements storage.IndexRepository for BadgerDB.
type IndexRepository struct {
	backend *Backend
}

var _ storage.IndexRepository = (*IndexRepository)(nil)

// NewIndexRepository creates a new IndexRepository.
func NewIndexRepository(backend *Backend) *IndexRepository {
	return &IndexRepository{backend: backend}
}

// Close is a no-op; the backend is closed by its owner.
func (r *IndexRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *IndexRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveEntries stores entries, replacing existing entries of the same documents.
func (r *IndexRepository) SaveEntries(ctx context.Context, entries ...*core.IndexEntry) error {
	for _, entry := range entries {
		if err := core.ValidateIndexEntry(entry); err != nil {
			return err
		}
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if err := tx.Set(makeIndexEntryKey(entry.DocumentID), storage.MarshalIndexEntry(entry)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// DeleteEntries removes the entries of ids. Missing entries are ignored.
func (r *IndexRepository) DeleteEntries(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			if err := tx.Delete(makeIndexEntryKey(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetEntry retrieves the entry of one document.
func (r *IndexRepository) GetEntry(ctx context.Context, id string) (*core.IndexEntry, error) {
	var entry *core.IndexEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeIndexEntryKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("index entry %q: %w", id, storage.ErrNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = storage.UnmarshalIndexEntry(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Entries calls fn for every stored entry in document ID order.
func (r *IndexRepository) Entries(ctx context.Context, fn func(*core.IndexEntry) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(indexEntryPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var entry *core.IndexEntry
			err := iter.Item().Value(func(val []byte) error {
				var err error
				entry, err = storage.UnmarshalIndexEntry(val)
				return err
			})
			if err != nil {
				return fmt.Errorf("reading %s: %w", iter.Item().Key(), err)
			}
			if err := fn(entry); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// Clear removes every entry.
func (r *IndexRepository) Clear(ctx context.Context) error {
	return r.backend.dropPrefix(indexEntryPrefix)
}
