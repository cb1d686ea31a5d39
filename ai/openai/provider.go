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

package openai

import (
	"log/slog"

	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/ai/lexicon"
)

// Provider implements ai.Provider using OpenAI-compatible services for
// embeddings and answers, and the lexicon package for tokenization.
type Provider struct {
	config    *ai.Config
	tokenizer *lexicon.Lexicon
	words     *Embedder
	sentences *Embedder
	answerer  *Answerer
	logger    *slog.Logger
}

// NewProvider creates a new provider with OpenAI-compatible services.
// The config is validated and normalized before use. When the word and
// sentence models are the same, one embedder and cache serve both.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tokenizer, err := lexicon.New()
	if err != nil {
		return nil, err
	}

	words, err := newEmbedder(config, config.WordEmbeddingModel)
	if err != nil {
		return nil, err
	}

	sentences := words
	if config.SentenceEmbeddingModel != config.WordEmbeddingModel {
		sentences, err = newEmbedder(config, config.SentenceEmbeddingModel)
		if err != nil {
			words.Close()
			return nil, err
		}
	}

	answerer, err := newAnswerer(config)
	if err != nil {
		words.Close()
		if sentences != words {
			sentences.Close()
		}
		return nil, err
	}

	return &Provider{
		config:    config,
		tokenizer: tokenizer,
		words:     words,
		sentences: sentences,
		answerer:  answerer,
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

// Tokenizer returns the English tokenizer.
func (p *Provider) Tokenizer() ai.Tokenizer {
	return p.tokenizer
}

// WordEmbedder returns the term embedding service.
func (p *Provider) WordEmbedder() ai.WordEmbedder {
	return p.words
}

// SentenceEmbedder returns the phrase embedding service.
func (p *Provider) SentenceEmbedder() ai.SentenceEmbedder {
	return p.sentences
}

// AnswerExtractor returns the answer extraction service.
func (p *Provider) AnswerExtractor() ai.AnswerExtractor {
	return p.answerer
}

// Close releases the vector caches.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	p.words.Close()
	if p.sentences != p.words {
		p.sentences.Close()
	}
	return nil
}
