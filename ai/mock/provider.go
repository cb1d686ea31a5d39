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

package mock

import "github.com/poiesic/notedex/ai"

// MockProvider is a test double for ai.Provider.
type MockProvider struct {
	tokenizer *MockTokenizer
	words     *MockWordEmbedder
	sentences *MockSentenceEmbedder
	answerer  *MockAnswerer
}

// NewMockProvider creates a new mock provider with default mock services.
// The sentence embedder shares the word embedder's vocabulary.
func NewMockProvider() *MockProvider {
	words := NewMockWordEmbedder()
	return &MockProvider{
		tokenizer: NewMockTokenizer(),
		words:     words,
		sentences: NewMockSentenceEmbedder(words),
		answerer:  NewMockAnswerer(),
	}
}

var _ ai.Provider = (*MockProvider)(nil)

// Tokenizer returns the mock tokenizer.
func (p *MockProvider) Tokenizer() ai.Tokenizer {
	return p.tokenizer
}

// WordEmbedder returns the mock word embedder.
func (p *MockProvider) WordEmbedder() ai.WordEmbedder {
	return p.words
}

// SentenceEmbedder returns the mock sentence embedder.
func (p *MockProvider) SentenceEmbedder() ai.SentenceEmbedder {
	return p.sentences
}

// AnswerExtractor returns the mock answer extractor.
func (p *MockProvider) AnswerExtractor() ai.AnswerExtractor {
	return p.answerer
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockTokenizer returns the underlying mock tokenizer.
func (p *MockProvider) GetMockTokenizer() *MockTokenizer {
	return p.tokenizer
}

// GetMockWordEmbedder returns the underlying mock word embedder.
func (p *MockProvider) GetMockWordEmbedder() *MockWordEmbedder {
	return p.words
}

// GetMockSentenceEmbedder returns the underlying mock sentence embedder.
func (p *MockProvider) GetMockSentenceEmbedder() *MockSentenceEmbedder {
	return p.sentences
}

// GetMockAnswerer returns the underlying mock answer extractor.
func (p *MockProvider) GetMockAnswerer() *MockAnswerer {
	return p.answerer
}
