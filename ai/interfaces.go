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

import "context"

// Tokenizer splits text into units, tags words with lexical classes and lemmatizes them.
// Implementations must be safe for concurrent use and free of side effects.
type Tokenizer interface {
	// Tokenize splits text into words, sentences or paragraphs.
	// Word tokens are lowercased; punctuation is dropped.
	Tokenize(text string, unit TokenUnit) []string

	// Tag returns the words of text with their lexical class, in order.
	// Words the tagger cannot classify carry ClassOther.
	Tag(text string) []TaggedToken

	// Lemmatize returns the dictionary form of a lowercase word.
	// Unknown words are returned unchanged.
	Lemmatize(word string) string

	// IsStopword reports whether a lowercase word carries no search value.
	IsStopword(word string) bool
}

// WordEmbedder maps single terms to vectors.
// Implementations must be thread-safe for concurrent use.
type WordEmbedder interface {
	// Vector returns the embedding of term, or false when the term is out of vocabulary.
	Vector(ctx context.Context, term string) ([]float32, bool)

	// Contains reports whether the term is in the embedding vocabulary.
	Contains(ctx context.Context, term string) bool

	// Distance returns the cosine distance between two terms in [0,2].
	// Returns 2 when either term is out of vocabulary.
	Distance(ctx context.Context, a, b string) float64
}

// SentenceEmbedder compares arbitrary strings.
// Implementations must be thread-safe for concurrent use.
type SentenceEmbedder interface {
	// Distance returns the cosine distance between two texts in [0,2].
	// Returns 2 when either text cannot be embedded.
	Distance(ctx context.Context, a, b string) float64
}

// AnswerExtractor locates a literal answer to a question inside a context.
// Implementations must be thread-safe for concurrent use.
type AnswerExtractor interface {
	// Predict returns the answer span found in context with a confidence in [0,1].
	// A nil answer with a nil error means the context holds no answer.
	Predict(ctx context.Context, question, context string) (*Answer, error)
}

// Provider aggregates the language capabilities used by the engine and
// manages their shared configuration and lifecycle.
type Provider interface {
	// Tokenizer returns the tokenizer.
	Tokenizer() Tokenizer

	// WordEmbedder returns the word-level embedding model.
	WordEmbedder() WordEmbedder

	// SentenceEmbedder returns the sentence-level embedding model.
	SentenceEmbedder() SentenceEmbedder

	// AnswerExtractor returns the extractive question answering model.
	AnswerExtractor() AnswerExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
