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


package index

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/core"
)

// DefaultSimilarNotes is the result count SimilarNotes uses when asked for 0.
const DefaultSimilarNotes = 5

// EmbeddingIndex keeps one embedding matrix per document.
type EmbeddingIndex struct {
	tokenizer ai.Tokenizer
	words     ai.WordEmbedder

	mu       sync.RWMutex
	matrices map[string]Matrix

	logger *slog.Logger
}

// NewEmbeddingIndex creates an empty embedding index.
func NewEmbeddingIndex(tokenizer ai.Tokenizer, words ai.WordEmbedder, opts ...Option) (*EmbeddingIndex, error) {
	if tokenizer == nil {
		return nil, ErrTokenizerRequired
	}
	if words == nil {
		return nil, ErrEmbedderRequired
	}
	o, err := applyOptions("embedding-index", opts)
	if err != nil {
		return nil, err
	}

	return &EmbeddingIndex{
		tokenizer: tokenizer,
		words:     words,
		matrices:  make(map[string]Matrix),
		logger:    o.logger,
	}, nil
}

// Terms returns the retained unique terms of doc: title terms first, then
// body terms, normalized, without stopwords, in first-seen order.
func (e *EmbeddingIndex) Terms(ctx context.Context, doc *core.Document) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, text := range []string{doc.Title, doc.Body} {
		for _, w := range e.tokenizer.Tokenize(text, ai.UnitWord) {
			term := NormalizeTerm(ctx, e.tokenizer, e.words, w)
			if e.tokenizer.IsStopword(term) || e.tokenizer.IsStopword(w) {
				continue
			}
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}
	return terms
}

// Build computes the embedding matrix of doc without indexing it.
// Terms without a vector are skipped; the result may be empty.
func (e *EmbeddingIndex) Build(ctx context.Context, doc *core.Document) Matrix {
	terms := e.Terms(ctx, doc)
	m := make(Matrix, 0, len(terms))
	for _, term := range terms {
		if v, ok := e.words.Vector(ctx, term); ok {
			m = append(m, v)
		}
	}
	return m
}

// IndexDocument replaces the embedding matrix of doc.
func (e *EmbeddingIndex) IndexDocument(ctx context.Context, doc *core.Document) error {
	if err := core.ValidateDocument(doc); err != nil {
		return err
	}
	m := e.Build(ctx, doc)
	e.Add(doc.ID, m)
	e.logger.Debug("indexed embeddings", "document", doc.ID, "rows", len(m))
	return nil
}

// Add stores a matrix under id, replacing any previous one.
func (e *EmbeddingIndex) Add(id string, m Matrix) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.matrices[id] = m
}

// RemoveDocument deletes the matrix of id.
func (e *EmbeddingIndex) RemoveDocument(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.matrices, id)
}

// Reset drops all matrices.
func (e *EmbeddingIndex) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.matrices = make(map[string]Matrix)
}

// Matrix returns a copy of the matrix of id and whether it exists.
func (e *EmbeddingIndex) Matrix(id string) (Matrix, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	m, ok := e.matrices[id]
	return m.Clone(), ok
}

// Len returns the number of indexed documents.
func (e *EmbeddingIndex) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.matrices)
}

// Documents returns the ids of all indexed documents in lexical order.
func (e *EmbeddingIndex) Documents() []string {
	e.mu.RLock()
	ids := make([]string, 0, len(e.matrices))
	for id := range e.matrices {
		ids = append(ids, id)
	}
	e.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// Similarity returns the matrix similarity of two indexed documents,
// or 0 when either is missing.
func (e *EmbeddingIndex) Similarity(a, b string) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Similarity(e.matrices[a], e.matrices[b])
}

// SimilarNotes ranks candidates by similarity to source, most similar first.
// The source itself is skipped and equal scores keep candidate order.
// maxResults 0 means DefaultSimilarNotes; other values below 1 mean 1.
func (e *EmbeddingIndex) SimilarNotes(source string, candidates []string, maxResults int) []core.Neighbor {
	switch {
	case maxResults == 0:
		maxResults = DefaultSimilarNotes
	case maxResults < 1:
		maxResults = 1
	}

	e.mu.RLock()
	src := e.matrices[source]
	neighbors := make([]core.Neighbor, 0, len(candidates))
	for _, id := range candidates {
		if id == source {
			continue
		}
		neighbors = append(neighbors, core.Neighbor{
			DocumentID: id,
			Similarity: Similarity(src, e.matrices[id]),
		})
	}
	e.mu.RUnlock()

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})
	if len(neighbors) > maxResults {
		neighbors = neighbors[:maxResults]
	}
	return neighbors
}
