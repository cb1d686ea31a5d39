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

// Package ai defines the language capabilities the search engine consumes.
//
// The engine never talks to a model directly. It depends on four small
// interfaces, each injected through a Provider:
//
//   - Tokenizer: word/sentence/paragraph splitting, lexical class tagging, lemmatization
//   - WordEmbedder: term vectors and term-to-term cosine distance
//   - SentenceEmbedder: phrase-to-phrase cosine distance
//   - AnswerExtractor: extractive question answering over a short context
//
// # Implementation Packages
//
//   - ai/lexicon: English tokenizer with prose tagging and golem lemmas
//   - ai/openai: embeddings and answer extraction over OpenAI-compatible APIs
//   - ai/mock: deterministic test doubles with a small built-in vocabulary
//
// Public constructors of production implementations return interface types.
// Mock constructors return concrete types so tests can inject behavior and
// inspect call counts.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	d := provider.WordEmbedder().Distance(ctx, "volcano", "eruption")
package ai
