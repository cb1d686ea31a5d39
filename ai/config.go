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

package ai

import (
	"fmt"
	"strings"
	"time"
)

// Config holds configuration for capability providers backed by
// OpenAI-compatible services.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string `yaml:"embedding_host"`

	// AnswerHost is the base URL for the chat service used for answer extraction.
	AnswerHost string `yaml:"answer_host"`

	// WordEmbeddingModel embeds single terms.
	// Example: "embeddinggemma", "text-embedding-3-small"
	WordEmbeddingModel string `yaml:"word_embedding_model"`

	// SentenceEmbeddingModel embeds whole phrases. May equal WordEmbeddingModel.
	SentenceEmbeddingModel string `yaml:"sentence_embedding_model"`

	// AnswerModel extracts answer spans from contexts.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	AnswerModel string `yaml:"answer_model"`

	// CacheSize is the number of term vectors kept in memory.
	// Default: 50000
	CacheSize int64 `yaml:"cache_size"`

	// MaxRetries is the number of attempts made for each remote call.
	// Default: 3
	MaxRetries int `yaml:"max_retries"`

	// RetryDelay is the delay before the first retry; it doubles afterwards.
	// Default: 200ms
	RetryDelay time.Duration `yaml:"retry_delay"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithAnswerHost sets the answer extraction service host URL.
func WithAnswerHost(host string) ConfigOption {
	return func(c *Config) {
		c.AnswerHost = host
	}
}

// WithHost sets both hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.AnswerHost = host
	}
}

// WithWordEmbeddingModel sets the word embedding model identifier.
func WithWordEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.WordEmbeddingModel = model
	}
}

// WithSentenceEmbeddingModel sets the sentence embedding model identifier.
func WithSentenceEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.SentenceEmbeddingModel = model
	}
}

// WithAnswerModel sets the answer extraction model identifier.
func WithAnswerModel(model string) ConfigOption {
	return func(c *Config) {
		c.AnswerModel = model
	}
}

// WithCacheSize sets the number of cached term vectors.
func WithCacheSize(size int64) ConfigOption {
	return func(c *Config) {
		c.CacheSize = size
	}
}

// WithRetries sets the attempt count and base delay for remote calls.
func WithRetries(attempts int, delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.MaxRetries = attempts
		c.RetryDelay = delay
	}
}

// DefaultConfig returns a Config with sensible defaults for local OpenAI-compatible services.
// By default, embeddings and answers use the same host.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:          defaultHost,
		AnswerHost:             defaultHost,
		WordEmbeddingModel:     "embeddinggemma",
		SentenceEmbeddingModel: "embeddinggemma",
		AnswerModel:            "qwen2.5:3b",
		CacheSize:              50000,
		MaxRetries:             3,
		RetryDelay:             200 * time.Millisecond,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("http://localhost:11434/v1"),
//	    WithWordEmbeddingModel("text-embedding-3-small"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// Hosts get a /v1 suffix, which OpenAI-compatible servers (Ollama, LocalAI, vLLM) expect,
// and an empty sentence model falls back to the word model.
func (c *Config) Normalize() {
	c.EmbeddingHost = normalizeHost(c.EmbeddingHost)
	c.AnswerHost = normalizeHost(c.AnswerHost)
	if c.SentenceEmbeddingModel == "" {
		c.SentenceEmbeddingModel = c.WordEmbeddingModel
	}
}

func normalizeHost(host string) string {
	if host == "" || strings.HasSuffix(host, "/v1") {
		return host
	}
	return strings.TrimSuffix(host, "/") + "/v1"
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return fmt.Errorf("%w: EmbeddingHost is required", ErrInvalidConfig)
	}
	if c.AnswerHost == "" {
		return fmt.Errorf("%w: AnswerHost is required", ErrInvalidConfig)
	}
	if c.WordEmbeddingModel == "" {
		return fmt.Errorf("%w: WordEmbeddingModel is required", ErrInvalidConfig)
	}
	if c.AnswerModel == "" {
		return fmt.Errorf("%w: AnswerModel is required", ErrInvalidConfig)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: CacheSize must not be negative", ErrInvalidConfig)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("%w: MaxRetries must be at least 1", ErrInvalidConfig)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: RetryDelay must not be negative", ErrInvalidConfig)
	}
	return nil
}
