// Package memory provides an in-memory document source.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/poiesic/notedex/core"
	"github.com/poiesic/notedex/storage"
)

// Ensure DocumentStore implements the interface.
var _ storage.DocumentSource = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of storage.DocumentSource.
// It stands in for the note store in tests and in embedding applications
// that keep their notes in memory.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]*core.Document
}

// NewDocumentStore creates a new in-memory document store holding docs.
func NewDocumentStore(docs ...*core.Document) *DocumentStore {
	s := &DocumentStore{documents: make(map[string]*core.Document, len(docs))}
	for _, doc := range docs {
		if core.ValidateDocument(doc) == nil {
			s.documents[doc.ID] = doc
		}
	}
	return s
}

// Put stores or replaces documents.
func (s *DocumentStore) Put(docs ...*core.Document) error {
	for _, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range docs {
		s.documents[doc.ID] = doc
	}
	return nil
}

// Delete removes documents. Unknown ids are ignored.
func (s *DocumentStore) Delete(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.documents, id)
	}
}

// Len returns the number of stored documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// Documents returns every stored document ordered by id.
func (s *DocumentStore) Documents(_ context.Context) ([]*core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]*core.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Document retrieves a document by ID.
func (s *DocumentStore) Document(_ context.Context, id string) (*core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, fmt.Errorf("document %q: %w", id, storage.ErrNotFound)
	}
	return doc, nil
}
