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

// Package index maintains the derived per-document data the search engine reads.
//
// TermIndex keeps a term frequency map per document and corpus-wide document
// frequencies, from which TF-IDF weights are computed on demand with
// idf = ln(N/df). EmbeddingIndex keeps one matrix of word vectors per document
// and compares documents with a clamped matrix generalization of cosine
// similarity.
//
// Both indices are written by a single indexing worker and read concurrently
// by queries; each guards its maps with a sync.RWMutex. A query racing a
// rebuild may see a partial corpus, never an inconsistent map.
package index
