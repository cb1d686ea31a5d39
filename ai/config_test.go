package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.AnswerHost)
	assert.Equal(t, "embeddinggemma", cfg.WordEmbeddingModel)
	assert.Equal(t, "embeddinggemma", cfg.SentenceEmbeddingModel)
	assert.Equal(t, "qwen2.5:3b", cfg.AnswerModel)
	assert.Equal(t, int64(50000), cfg.CacheSize)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.RetryDelay)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.AnswerHost)
	})

	t.Run("with separate hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://embed:8080/v1"),
			WithAnswerHost("http://answer:9090/v1"),
		)

		assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://answer:9090/v1", cfg.AnswerHost)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithWordEmbeddingModel("text-embedding-3-small"),
			WithSentenceEmbeddingModel("text-embedding-3-large"),
			WithAnswerModel("gpt-4o-mini"),
		)

		assert.Equal(t, "text-embedding-3-small", cfg.WordEmbeddingModel)
		assert.Equal(t, "text-embedding-3-large", cfg.SentenceEmbeddingModel)
		assert.Equal(t, "gpt-4o-mini", cfg.AnswerModel)
	})

	t.Run("with cache and retries", func(t *testing.T) {
		cfg := NewConfig(WithCacheSize(10), WithRetries(5, time.Second))

		assert.Equal(t, int64(10), cfg.CacheSize)
		assert.Equal(t, 5, cfg.MaxRetries)
		assert.Equal(t, time.Second, cfg.RetryDelay)
	})
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{name: "already has suffix", host: "http://localhost:11434/v1", want: "http://localhost:11434/v1"},
		{name: "missing suffix", host: "http://localhost:11434", want: "http://localhost:11434/v1"},
		{name: "trailing slash", host: "http://localhost:11434/", want: "http://localhost:11434/v1"},
		{name: "empty stays empty", host: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{EmbeddingHost: tt.host, AnswerHost: tt.host}
			cfg.Normalize()

			assert.Equal(t, tt.want, cfg.EmbeddingHost)
			assert.Equal(t, tt.want, cfg.AnswerHost)
		})
	}

	t.Run("sentence model falls back to word model", func(t *testing.T) {
		cfg := &Config{WordEmbeddingModel: "embed"}
		cfg.Normalize()

		assert.Equal(t, "embed", cfg.SentenceEmbeddingModel)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{name: "valid config", modify: func(c *Config) {}},
		{name: "missing embedding host", modify: func(c *Config) { c.EmbeddingHost = "" }, errMsg: "EmbeddingHost is required"},
		{name: "missing answer host", modify: func(c *Config) { c.AnswerHost = "" }, errMsg: "AnswerHost is required"},
		{name: "missing word model", modify: func(c *Config) { c.WordEmbeddingModel = "" }, errMsg: "WordEmbeddingModel is required"},
		{name: "missing answer model", modify: func(c *Config) { c.AnswerModel = "" }, errMsg: "AnswerModel is required"},
		{name: "negative cache size", modify: func(c *Config) { c.CacheSize = -1 }, errMsg: "CacheSize"},
		{name: "zero retries", modify: func(c *Config) { c.MaxRetries = 0 }, errMsg: "MaxRetries"},
		{name: "negative delay", modify: func(c *Config) { c.RetryDelay = -time.Second }, errMsg: "RetryDelay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	t.Run("normalizes before validating", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:8080"))

		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:8080/v1", cfg.EmbeddingHost)
	})
}
