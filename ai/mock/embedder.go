package mock

import (
	"context"
	"hash/fnv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/poiesic/notedex/ai"
)

// MockWordEmbedder is a test double for ai.WordEmbedder.
// Terms outside the vocabulary are out of vocabulary unless Fallback is set,
// in which case they get a deterministic hash-derived vector.
type MockWordEmbedder struct {
	// VectorFunc is called by Vector if set.
	VectorFunc func(ctx context.Context, term string) ([]float32, bool)

	// Fallback makes every term embeddable.
	Fallback bool

	mu         sync.RWMutex
	vocabulary map[string][]float32
	callCount  atomic.Int64
}

// NewMockWordEmbedder creates a word embedder over the built-in vocabulary.
func NewMockWordEmbedder() *MockWordEmbedder {
	vocab := make(map[string][]float32, len(defaultVocabulary))
	for term, v := range defaultVocabulary {
		vocab[term] = v
	}
	return &MockWordEmbedder{vocabulary: vocab}
}

// Add puts a term into the vocabulary, replacing any existing vector.
func (m *MockWordEmbedder) Add(term string, vector []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vocabulary[term] = vector
}

// Vector returns the vector of term.
func (m *MockWordEmbedder) Vector(ctx context.Context, term string) ([]float32, bool) {
	m.callCount.Add(1)

	if m.VectorFunc != nil {
		return m.VectorFunc(ctx, term)
	}
	return m.lookup(term)
}

func (m *MockWordEmbedder) lookup(term string) ([]float32, bool) {
	m.mu.RLock()
	v, ok := m.vocabulary[strings.ToLower(term)]
	m.mu.RUnlock()
	if ok {
		return v, true
	}
	if m.Fallback && term != "" {
		return generateDeterministicVector(term, 4), true
	}
	return nil, false
}

// Contains reports whether Vector would return a vector for term.
func (m *MockWordEmbedder) Contains(ctx context.Context, term string) bool {
	_, ok := m.Vector(ctx, term)
	return ok
}

// Distance returns the cosine distance between the vectors of a and b.
func (m *MockWordEmbedder) Distance(ctx context.Context, a, b string) float64 {
	va, ok := m.Vector(ctx, a)
	if !ok {
		return ai.MaxDistance
	}
	vb, ok := m.Vector(ctx, b)
	if !ok {
		return ai.MaxDistance
	}
	return ai.CosineDistance(va, vb)
}

// CallCount returns the number of times Vector was called, directly or through other methods.
func (m *MockWordEmbedder) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and injected behavior.
func (m *MockWordEmbedder) Reset() {
	m.callCount.Store(0)
	m.VectorFunc = nil
}

// MockSentenceEmbedder is a test double for ai.SentenceEmbedder.
// A text is embedded as the mean of its in-vocabulary word vectors.
type MockSentenceEmbedder struct {
	// DistanceFunc is called by Distance if set.
	DistanceFunc func(ctx context.Context, a, b string) float64

	words     *MockWordEmbedder
	callCount atomic.Int64
}

// NewMockSentenceEmbedder creates a sentence embedder backed by words.
func NewMockSentenceEmbedder(words *MockWordEmbedder) *MockSentenceEmbedder {
	return &MockSentenceEmbedder{words: words}
}

// Distance returns the cosine distance between the mean vectors of a and b.
// Texts without any known word are only close to themselves.
func (m *MockSentenceEmbedder) Distance(ctx context.Context, a, b string) float64 {
	m.callCount.Add(1)

	if m.DistanceFunc != nil {
		return m.DistanceFunc(ctx, a, b)
	}

	va, vb := m.mean(a), m.mean(b)
	if va == nil || vb == nil {
		if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) {
			return 0
		}
		return ai.MaxDistance
	}
	return ai.CosineDistance(va, vb)
}

func (m *MockSentenceEmbedder) mean(text string) []float32 {
	var (
		sum   []float32
		count int
	)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		v, ok := m.words.lookup(strings.Trim(w, ".,!?;:\"'()"))
		if !ok {
			continue
		}
		if sum == nil {
			sum = make([]float32, len(v))
		}
		for i := range v {
			sum[i] += v[i]
		}
		count++
	}
	if count == 0 {
		return nil
	}
	for i := range sum {
		sum[i] /= float32(count)
	}
	return sum
}

// CallCount returns the number of times Distance was called.
func (m *MockSentenceEmbedder) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and injected behavior.
func (m *MockSentenceEmbedder) Reset() {
	m.callCount.Store(0)
	m.DistanceFunc = nil
}

// generateDeterministicVector creates a deterministic embedding vector from text.
// It uses FNV hash to ensure the same text always produces the same vector.
func generateDeterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		seed = seed*1664525 + 1013904223 // LCG constants
		vector[i] = float32(seed%1000)/500.0 - 1
	}
	return ai.NormalizeVector(vector)
}
