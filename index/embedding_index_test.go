package index

import (
	"context"
	"testing"

	"github.com/poiesic/notedex/ai/mock"
	"github.com/poiesic/notedex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmbeddingIndex(t *testing.T) *EmbeddingIndex {
	t.Helper()
	p := mock.NewMockProvider()
	idx, err := NewEmbeddingIndex(p.Tokenizer(), p.WordEmbedder())
	require.NoError(t, err)
	return idx
}

func indexAll(t *testing.T, idx *EmbeddingIndex, docs ...*core.Document) {
	t.Helper()
	for _, doc := range docs {
		require.NoError(t, idx.IndexDocument(context.Background(), doc))
	}
}

var (
	volcanoDoc  = &core.Document{ID: "volcano", Title: "Volcano eruption", Body: "The lava and magma of the volcano."}
	volcanicDoc = &core.Document{ID: "volcanic", Title: "Volcanic activity near coast"}
	birdDoc     = &core.Document{ID: "bird", Title: "Bird migration", Body: "Birds migrate south in winter."}
	emptyDoc    = &core.Document{ID: "empty", Title: "Zyzzyva", Body: "the of and"}
)

func TestEmbeddingIndex_Terms(t *testing.T) {
	idx := newEmbeddingIndex(t)

	terms := idx.Terms(context.Background(), volcanoDoc)
	assert.Equal(t, []string{"volcano", "eruption", "lava", "magma"}, terms)

	terms = idx.Terms(context.Background(), birdDoc)
	assert.Equal(t, []string{"bird", "migration", "migrate", "south", "winter"}, terms)
}

func TestEmbeddingIndex_Build(t *testing.T) {
	idx := newEmbeddingIndex(t)

	m := idx.Build(context.Background(), volcanicDoc)
	// "near" has no vector
	assert.Len(t, m, 3)

	m = idx.Build(context.Background(), emptyDoc)
	assert.Empty(t, m)
}

func TestEmbeddingIndex_Idempotence(t *testing.T) {
	idx := newEmbeddingIndex(t)
	indexAll(t, idx, volcanoDoc)
	first, ok := idx.Matrix("volcano")
	require.True(t, ok)

	indexAll(t, idx, volcanoDoc)
	second, _ := idx.Matrix("volcano")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, idx.Len())
}

func TestEmbeddingIndex_Similarity(t *testing.T) {
	idx := newEmbeddingIndex(t)
	indexAll(t, idx, volcanoDoc, volcanicDoc, birdDoc, emptyDoc)
	ids := []string{"volcano", "volcanic", "bird", "empty"}

	t.Run("symmetric", func(t *testing.T) {
		for _, a := range ids {
			for _, b := range ids {
				assert.InDelta(t, idx.Similarity(a, b), idx.Similarity(b, a), 1e-12, "%s/%s", a, b)
			}
		}
	})

	t.Run("self similarity is maximal", func(t *testing.T) {
		for _, a := range []string{"volcano", "volcanic", "bird"} {
			self := idx.Similarity(a, a)
			assert.InDelta(t, 1.0, self, 1e-9)
			for _, b := range ids {
				assert.LessOrEqual(t, idx.Similarity(a, b), self+1e-9)
			}
		}
	})

	t.Run("related documents are closer", func(t *testing.T) {
		assert.Greater(t, idx.Similarity("volcano", "volcanic"), idx.Similarity("volcano", "bird"))
	})

	t.Run("empty and missing matrices", func(t *testing.T) {
		assert.Equal(t, 0.0, idx.Similarity("empty", "volcano"))
		assert.Equal(t, 0.0, idx.Similarity("empty", "empty"))
		assert.Equal(t, 0.0, idx.Similarity("missing", "volcano"))
	})
}

func TestSimilarity_Math(t *testing.T) {
	t.Run("identical single vectors", func(t *testing.T) {
		assert.InDelta(t, 1.0, Similarity(Matrix{{1, 2}}, Matrix{{1, 2}}), 1e-12)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		assert.Equal(t, 0.0, Similarity(Matrix{{1, 0}}, Matrix{{0, 1}}))
	})

	t.Run("negative products are clamped", func(t *testing.T) {
		assert.Equal(t, 0.0, Similarity(Matrix{{1, 0}}, Matrix{{-1, 0}}))
	})

	t.Run("hand computed", func(t *testing.T) {
		a := Matrix{{1, 0}, {0, 1}}
		b := Matrix{{1, 0}}
		// AᵀB = [1 0], ‖·‖=1; AᵀA = I, ‖I‖=√2; BᵀB = [1], ‖·‖=1
		assert.InDelta(t, 1/1.189207115, Similarity(a, b), 1e-6)
	})

	t.Run("zero vectors", func(t *testing.T) {
		assert.Equal(t, 0.0, Similarity(Matrix{{0, 0}}, Matrix{{0, 0}}))
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		assert.Equal(t, 0.0, Similarity(Matrix{{1, 0}}, Matrix{{1, 0, 0}}))
	})
}

func TestEmbeddingIndex_SimilarNotes(t *testing.T) {
	idx := newEmbeddingIndex(t)
	indexAll(t, idx, volcanoDoc, volcanicDoc, birdDoc, emptyDoc)
	all := []string{"empty", "bird", "volcanic", "volcano"}

	t.Run("excludes source and ranks", func(t *testing.T) {
		got := idx.SimilarNotes("volcano", all, 10)
		require.Len(t, got, 3)
		assert.Equal(t, "volcanic", got[0].DocumentID)
		for _, n := range got {
			assert.NotEqual(t, "volcano", n.DocumentID)
		}
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Similarity, got[i].Similarity)
		}
	})

	t.Run("ties keep candidate order", func(t *testing.T) {
		got := idx.SimilarNotes("empty", []string{"volcano", "bird", "volcanic"}, 3)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"volcano", "bird", "volcanic"}, []string{got[0].DocumentID, got[1].DocumentID, got[2].DocumentID})
	})

	t.Run("result count", func(t *testing.T) {
		many := []string{"a", "b", "c", "d", "e", "f", "g"}
		assert.Len(t, idx.SimilarNotes("volcano", many, 0), DefaultSimilarNotes)
		assert.Len(t, idx.SimilarNotes("volcano", many, -3), 1)
		assert.Len(t, idx.SimilarNotes("volcano", many, 2), 2)
		assert.Empty(t, idx.SimilarNotes("volcano", nil, 5))
	})
}

func TestEmbeddingIndex_RemoveAndReset(t *testing.T) {
	idx := newEmbeddingIndex(t)
	indexAll(t, idx, volcanoDoc, birdDoc)

	idx.RemoveDocument("volcano")
	_, ok := idx.Matrix("volcano")
	assert.False(t, ok)
	assert.Equal(t, []string{"bird"}, idx.Documents())

	idx.Add("restored", Matrix{{1, 0, 0, 0}})
	m, ok := idx.Matrix("restored")
	require.True(t, ok)
	m[0][0] = 5
	again, _ := idx.Matrix("restored")
	assert.Equal(t, float32(1), again[0][0])

	idx.Reset()
	assert.Equal(t, 0, idx.Len())
}
