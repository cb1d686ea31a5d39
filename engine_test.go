package notedex

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/notedex/ai/mock"
	"github.com/poiesic/notedex/core"
	"github.com/poiesic/notedex/search"
	"github.com/poiesic/notedex/storage"
	"github.com/poiesic/notedex/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notes() []*core.Document {
	return []*core.Document{
		{ID: "doc1", Title: "Volcano eruption", Body: "Lava and magma."},
		{ID: "doc2", Title: "Bird migration", Body: "Birds fly south in winter."},
		{ID: "doc3", Title: "Volcanic activity near coast"},
	}
}

func newTestEngine(t *testing.T, store storage.DocumentSource, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithProvider(mock.NewMockProvider())}, opts...)
	e, err := NewEngine(store, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func waitIdle(t *testing.T, e *Engine) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, e.Wait(ctx))
}

func topNote(t *testing.T, e *Engine, text string) string {
	t.Helper()
	results, err := e.SearchAll(context.Background(), search.Query{Text: text, Expanded: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotEmpty(t, results[0].Notes)
	return results[0].Notes[0].DocumentID
}

func TestNewEngine(t *testing.T) {
	store := memory.NewDocumentStore()

	t.Run("requires a document source", func(t *testing.T) {
		_, err := NewEngine(nil, WithProvider(mock.NewMockProvider()))
		assert.ErrorIs(t, err, ErrDocumentSourceRequired)
	})

	t.Run("rejects nil option values", func(t *testing.T) {
		_, err := NewEngine(store, WithProvider(nil))
		assert.ErrorIs(t, err, ErrInvalidOption)

		_, err = NewEngine(store, WithLogger(nil))
		assert.ErrorIs(t, err, ErrInvalidOption)

		_, err = NewEngine(store, WithStoragePath(""))
		assert.ErrorIs(t, err, ErrInvalidOption)
	})

	t.Run("rejects invalid search config", func(t *testing.T) {
		config := search.DefaultConfig()
		config.Concurrency = 0
		_, err := NewEngine(store, WithSearchConfig(config))
		assert.ErrorIs(t, err, search.ErrInvalidConfig)
	})

	t.Run("starts empty", func(t *testing.T) {
		e := newTestEngine(t, store)
		assert.False(t, e.IsReady())
		assert.ErrorIs(t, e.Restore(context.Background()), ErrStorageNotConfigured)
	})
}

func TestEngine_IndexAndSearch(t *testing.T) {
	docs := notes()
	e := newTestEngine(t, memory.NewDocumentStore(docs...))

	for _, doc := range docs {
		require.NoError(t, e.IndexDocument(doc))
	}
	waitIdle(t, e)
	assert.True(t, e.IsReady())

	assert.Equal(t, "doc1", topNote(t, e, "volcano eruption"))
	assert.Equal(t, "doc2", topNote(t, e, "bird migration"))
}

func TestEngine_RemoveDocument(t *testing.T) {
	docs := notes()
	store := memory.NewDocumentStore(docs...)
	e := newTestEngine(t, store)

	require.NoError(t, e.RebuildCorpus(context.Background(), false))
	waitIdle(t, e)

	require.NoError(t, e.RemoveDocument("doc1"))
	waitIdle(t, e)

	results, err := e.SearchAll(context.Background(), search.Query{Text: "volcano eruption", Expanded: true})
	require.NoError(t, err)
	for _, hit := range results[0].Notes {
		assert.NotEqual(t, "doc1", hit.DocumentID)
	}

	assert.ErrorIs(t, e.RemoveDocument(""), core.ErrEmptyID)
}

func TestEngine_RebuildCorpusFollowsSource(t *testing.T) {
	store := memory.NewDocumentStore(notes()...)
	completions := 0
	e := newTestEngine(t, store, WithCompletion(func() { completions++ }))
	ctx := context.Background()

	require.NoError(t, e.RebuildCorpus(ctx, false))
	waitIdle(t, e)
	assert.Equal(t, 1, completions)

	store.Delete("doc2")
	require.NoError(t, store.Put(&core.Document{ID: "doc4", Title: "Magma chamber", Body: "Molten rock below."}))

	require.NoError(t, e.RebuildCorpus(ctx, false))
	waitIdle(t, e)
	assert.Equal(t, 2, completions)

	_, err := e.Keywords("doc2", 3)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	keywords, err := e.Keywords("doc4", 3)
	require.NoError(t, err)
	assert.NotEmpty(t, keywords)
}

func TestEngine_SimilarNotes(t *testing.T) {
	e := newTestEngine(t, memory.NewDocumentStore(notes()...))
	require.NoError(t, e.RebuildCorpus(context.Background(), false))
	waitIdle(t, e)

	neighbors, err := e.SimilarNotes("doc1", nil, 0)
	require.NoError(t, err)
	require.Len(t, neighbors, 2)
	assert.Equal(t, "doc3", neighbors[0].DocumentID)

	neighbors, err = e.SimilarNotes("doc1", []string{"doc2"}, 5)
	require.NoError(t, err)
	require.Len(t, neighbors, 1)
	assert.Equal(t, "doc2", neighbors[0].DocumentID)

	_, err = e.SimilarNotes("", nil, 0)
	assert.ErrorIs(t, err, core.ErrEmptyID)
}

func TestEngine_Keywords(t *testing.T) {
	e := newTestEngine(t, memory.NewDocumentStore(notes()...))
	require.NoError(t, e.RebuildCorpus(context.Background(), false))
	waitIdle(t, e)

	keywords, err := e.Keywords("doc2", 2)
	require.NoError(t, err)
	require.Len(t, keywords, 2)
	assert.GreaterOrEqual(t, keywords[0].Score, keywords[1].Score)

	_, err = e.Keywords("", 2)
	assert.ErrorIs(t, err, core.ErrEmptyID)
}

func TestEngine_CancelIndexing(t *testing.T) {
	e := newTestEngine(t, memory.NewDocumentStore(notes()...))

	e.CancelIndexing()
	require.NoError(t, e.RebuildCorpus(context.Background(), true))
	e.CancelIndexing()
	waitIdle(t, e)

	// Indexing can be restarted after a cancel.
	require.NoError(t, e.RebuildCorpus(context.Background(), true))
	waitIdle(t, e)
	assert.True(t, e.IsReady())
}

func TestEngine_PersistAndRestore(t *testing.T) {
	dir := t.TempDir()
	store := memory.NewDocumentStore(notes()...)
	ctx := context.Background()

	first, err := NewEngine(store, WithProvider(mock.NewMockProvider()), WithStoragePath(dir))
	require.NoError(t, err)
	require.NoError(t, first.RebuildCorpus(ctx, false))
	waitIdle(t, first)
	want := topNote(t, first, "volcano eruption")
	require.NoError(t, first.Close())

	second := newTestEngine(t, store, WithStoragePath(dir))
	assert.False(t, second.IsReady())
	require.NoError(t, second.Restore(ctx))
	waitIdle(t, second)

	assert.True(t, second.IsReady())
	assert.Equal(t, want, topNote(t, second, "volcano eruption"))
}

func TestEngine_InMemoryStorage(t *testing.T) {
	e := newTestEngine(t, memory.NewDocumentStore(notes()...), WithInMemoryStorage())
	ctx := context.Background()

	require.NoError(t, e.Restore(ctx))
	waitIdle(t, e)
	assert.False(t, e.IsReady(), "nothing persisted yet")

	require.NoError(t, e.RebuildCorpus(ctx, false))
	waitIdle(t, e)
	assert.True(t, e.IsReady())
}
