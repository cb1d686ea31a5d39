package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/poiesic/notedex/core"
	"github.com/poiesic/notedex/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentStore(t *testing.T) {
	store := NewDocumentStore(
		&core.Document{ID: "b", Title: "Second"},
		&core.Document{ID: "a", Title: "First"},
		nil,
		&core.Document{Title: "no id"},
	)
	assert.Equal(t, 2, store.Len())

	docs, err := store.Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)
}

func TestDocumentStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore()

	require.NoError(t, store.Put(&core.Document{ID: "doc-1", Title: "Original"}))
	require.NoError(t, store.Put(&core.Document{ID: "doc-1", Title: "Updated"}))

	doc, err := store.Document(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Updated", doc.Title)
	assert.Equal(t, 1, store.Len())
}

func TestDocumentStore_PutRejectsInvalid(t *testing.T) {
	store := NewDocumentStore()

	err := store.Put(&core.Document{ID: "ok"}, &core.Document{})
	assert.ErrorIs(t, err, core.ErrEmptyID)
	assert.Equal(t, 0, store.Len(), "a rejected batch stores nothing")
}

func TestDocumentStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore(&core.Document{ID: "doc-1"}, &core.Document{ID: "doc-2"})

	store.Delete("doc-1", "missing")

	_, err := store.Document(ctx, "doc-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.Document(ctx, "doc-2")
	assert.NoError(t, err)
}

func TestDocumentStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Put(&core.Document{ID: string(rune('a' + i%26))})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.Documents(ctx)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, store.Len(), 26)
}
