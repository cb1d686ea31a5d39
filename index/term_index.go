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
	"math"
	"sort"
	"sync"

	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/core"
)

// TermIndex maintains term frequencies per document and document
// frequencies per term. TF-IDF weights are a view over both and are never stored.
type TermIndex struct {
	tokenizer ai.Tokenizer
	words     ai.WordEmbedder

	mu     sync.RWMutex
	docs   map[string]map[string]int
	corpus map[string]int
	ready  bool

	logger *slog.Logger
}

// NewTermIndex creates an empty term index.
func NewTermIndex(tokenizer ai.Tokenizer, words ai.WordEmbedder, opts ...Option) (*TermIndex, error) {
	if tokenizer == nil {
		return nil, ErrTokenizerRequired
	}
	if words == nil {
		return nil, ErrEmbedderRequired
	}
	o, err := applyOptions("term-index", opts)
	if err != nil {
		return nil, err
	}

	return &TermIndex{
		tokenizer: tokenizer,
		words:     words,
		docs:      make(map[string]map[string]int),
		corpus:    make(map[string]int),
		logger:    o.logger,
	}, nil
}

// Frequencies computes the term frequency map of doc without indexing it.
func (t *TermIndex) Frequencies(ctx context.Context, doc *core.Document) map[string]int {
	tf := make(map[string]int)
	for _, w := range t.tokenizer.Tokenize(documentText(doc), ai.UnitWord) {
		tf[NormalizeTerm(ctx, t.tokenizer, t.words, w)]++
	}
	return tf
}

// IndexDocument replaces the term frequencies of doc. Re-indexing a document
// first withdraws its previous contribution, so repeated calls are idempotent.
func (t *TermIndex) IndexDocument(ctx context.Context, doc *core.Document) error {
	if err := core.ValidateDocument(doc); err != nil {
		return err
	}
	t.Add(doc.ID, t.Frequencies(ctx, doc))
	return nil
}

// Add stores a precomputed term frequency map under id, replacing any previous one.
func (t *TermIndex) Add(id string, tf map[string]int) {
	own := make(map[string]int, len(tf))
	for term, count := range tf {
		if count > 0 {
			own[term] = count
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.removeLocked(id)
	t.docs[id] = own
	for term := range own {
		t.corpus[term]++
	}
	t.logger.Debug("indexed terms", "document", id, "terms", len(own))
}

// RemoveDocument withdraws the terms of id from the corpus counts.
// Unknown ids are ignored.
func (t *TermIndex) RemoveDocument(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.removeLocked(id)
}

func (t *TermIndex) removeLocked(id string) {
	tf, ok := t.docs[id]
	if !ok {
		return
	}
	for term := range tf {
		if n := t.corpus[term]; n > 1 {
			t.corpus[term] = n - 1
		} else {
			delete(t.corpus, term)
		}
	}
	delete(t.docs, id)
}

// RecomputeCorpus rebuilds the document frequencies from every stored term
// frequency map and marks the index ready.
func (t *TermIndex) RecomputeCorpus() {
	t.mu.Lock()
	defer t.mu.Unlock()

	corpus := make(map[string]int, len(t.corpus))
	for _, tf := range t.docs {
		for term := range tf {
			corpus[term]++
		}
	}
	t.corpus = corpus
	t.ready = true
	t.logger.Info("corpus statistics recomputed", "documents", len(t.docs), "terms", len(corpus))
}

// Reset drops all documents and clears readiness.
func (t *TermIndex) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.docs = make(map[string]map[string]int)
	t.corpus = make(map[string]int)
	t.ready = false
}

// IsReady reports whether a corpus-wide pass has completed since the last Reset.
func (t *TermIndex) IsReady() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ready
}

// Len returns the number of indexed documents.
func (t *TermIndex) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.docs)
}

// Contains reports whether id is indexed.
func (t *TermIndex) Contains(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.docs[id]
	return ok
}

// Documents returns the ids of all indexed documents in lexical order.
func (t *TermIndex) Documents() []string {
	t.mu.RLock()
	ids := make([]string, 0, len(t.docs))
	for id := range t.docs {
		ids = append(ids, id)
	}
	t.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// TermFrequencies returns a copy of the stored term frequency map of id, or nil.
func (t *TermIndex) TermFrequencies(id string) map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tf, ok := t.docs[id]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(tf))
	for term, count := range tf {
		out[term] = count
	}
	return out
}

// CorpusCount returns the number of documents containing term.
func (t *TermIndex) CorpusCount(term string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.corpus[term]
}

// idfLocked returns ln(N/df), or false for terms no document contains.
func (t *TermIndex) idfLocked(term string) (float64, bool) {
	df := t.corpus[term]
	if df <= 0 || len(t.docs) == 0 {
		return 0, false
	}
	return math.Log(float64(len(t.docs)) / float64(df)), true
}

// WeightsForTerm returns the TF-IDF weight of term in every document containing it,
// highest first. Ties are ordered by document id.
func (t *TermIndex) WeightsForTerm(term string) []core.TermWeight {
	t.mu.RLock()
	defer t.mu.RUnlock()

	idf, ok := t.idfLocked(term)
	if !ok {
		return nil
	}

	var weights []core.TermWeight
	for id, tf := range t.docs {
		if count := tf[term]; count > 0 {
			weights = append(weights, core.TermWeight{DocumentID: id, Score: float64(count) * idf})
		}
	}
	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Score != weights[j].Score {
			return weights[i].Score > weights[j].Score
		}
		return weights[i].DocumentID < weights[j].DocumentID
	})
	return weights
}

// Vector returns the TF-IDF vector of id. Unknown ids yield nil.
func (t *TermIndex) Vector(id string) map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tf, ok := t.docs[id]
	if !ok {
		return nil
	}
	vec := make(map[string]float64, len(tf))
	for term, count := range tf {
		if idf, ok := t.idfLocked(term); ok {
			vec[term] = float64(count) * idf
		}
	}
	return vec
}

// Score sums the TF-IDF weights of terms in id.
func (t *TermIndex) Score(id string, terms []string) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tf, ok := t.docs[id]
	if !ok {
		return 0
	}
	var sum float64
	for _, term := range terms {
		if idf, ok := t.idfLocked(term); ok {
			sum += float64(tf[term]) * idf
		}
	}
	return sum
}

// Keywords returns up to n non-stopword terms of id by descending TF-IDF weight.
func (t *TermIndex) Keywords(id string, n int) []core.Keyword {
	vec := t.Vector(id)
	keywords := make([]core.Keyword, 0, len(vec))
	for term, score := range vec {
		if t.tokenizer.IsStopword(term) {
			continue
		}
		keywords = append(keywords, core.Keyword{Term: term, Score: score})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].Term < keywords[j].Term
	})
	if n > 0 && len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}
