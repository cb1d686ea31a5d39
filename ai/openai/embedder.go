package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/poiesic/notedex/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Embedder implements ai.WordEmbedder and ai.SentenceEmbedder over an
// OpenAI-compatible embedding API. Vectors are cached by text.
//
// A remote model has no fixed vocabulary: a term is "in vocabulary" when the
// service returns a non-empty vector for it.
type Embedder struct {
	embedder   embeddings.Embedder
	cache      *ristretto.Cache[string, []float32]
	maxRetries int
	retryDelay time.Duration
	failed     atomic.Bool
	logger     *slog.Logger
}

var (
	_ ai.WordEmbedder     = (*Embedder)(nil)
	_ ai.SentenceEmbedder = (*Embedder)(nil)
)

// newEmbedder is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEmbedder(config *ai.Config, model string) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(model),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return newEmbedderWith(embedder, config, model)
}

func newEmbedderWith(embedder embeddings.Embedder, config *ai.Config, model string) (*Embedder, error) {
	e := &Embedder{
		embedder:   embedder,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
		logger:     slog.Default().With("component", "openai-embedder", "model", model),
	}
	if e.maxRetries < 1 {
		e.maxRetries = 1
	}

	if config.CacheSize > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config[string, []float32]{
			NumCounters: config.CacheSize * 10,
			MaxCost:     config.CacheSize,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("creating vector cache: %w", err)
		}
		e.cache = cache
	}
	return e, nil
}

// NewWordEmbedder creates a term embedder using the configured word model.
// The caller's config is left as is.
func NewWordEmbedder(config *ai.Config) (ai.WordEmbedder, error) {
	cfg := normalized(config)
	return newEmbedder(cfg, cfg.WordEmbeddingModel)
}

// NewSentenceEmbedder creates a phrase embedder using the configured sentence model.
// The caller's config is left as is.
func NewSentenceEmbedder(config *ai.Config) (ai.SentenceEmbedder, error) {
	cfg := normalized(config)
	return newEmbedder(cfg, cfg.SentenceEmbeddingModel)
}

func normalized(config *ai.Config) *ai.Config {
	cfg := *config
	cfg.Normalize()
	return &cfg
}

// Vector returns the embedding of term, or false when the service cannot embed it.
func (e *Embedder) Vector(ctx context.Context, term string) ([]float32, bool) {
	key := strings.ToLower(strings.TrimSpace(term))
	if key == "" {
		return nil, false
	}

	if e.cache != nil {
		if v, ok := e.cache.Get(key); ok {
			return v, len(v) > 0
		}
	}

	var vector []float32
	err := ai.RetryWithBackoff(ctx, func() error {
		v, err := e.embedder.EmbedQuery(ctx, key)
		if err != nil {
			return err
		}
		vector = v
		return nil
	}, e.maxRetries, e.retryDelay)
	if err != nil {
		// reported once; later failures degrade silently to out-of-vocabulary
		if e.failed.CompareAndSwap(false, true) {
			e.logger.Error("embedding service unavailable", "err", err)
		}
		return nil, false
	}

	if e.cache != nil {
		e.cache.Set(key, vector, 1)
	}
	return vector, len(vector) > 0
}

// Contains reports whether the service returns a vector for term.
func (e *Embedder) Contains(ctx context.Context, term string) bool {
	_, ok := e.Vector(ctx, term)
	return ok
}

// Distance returns the cosine distance between the embeddings of a and b.
func (e *Embedder) Distance(ctx context.Context, a, b string) float64 {
	va, ok := e.Vector(ctx, a)
	if !ok {
		return ai.MaxDistance
	}
	vb, ok := e.Vector(ctx, b)
	if !ok {
		return ai.MaxDistance
	}
	return ai.CosineDistance(va, vb)
}

// Close releases the vector cache.
func (e *Embedder) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}
