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

package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/core"
	"github.com/poiesic/notedex/index"
	"github.com/poiesic/notedex/query"
	"github.com/poiesic/notedex/storage"
	"golang.org/x/sync/errgroup"
)

// Query is a search request.
type Query struct {
	Text string

	// Expanded lowers every threshold to return more, looser matches.
	Expanded bool

	// Split decomposes the query into one sub-query per topic.
	Split bool
}

// Handlers receive search output. Any handler may be nil.
// Calls are serialized; Result is called once per sub-query in completion order.
type Handlers struct {
	Result     func(result *core.SearchResult)
	SubQueries func(subQueries []string) // Only called when the query was split in more than one sub-query
	Completion func()
}

// Searcher scores indexed notes against queries.
type Searcher struct {
	source    storage.DocumentSource
	terms     *index.TermIndex
	processor *query.Processor
	tokenizer ai.Tokenizer
	words     ai.WordEmbedder
	sentences ai.SentenceEmbedder
	answerer  ai.AnswerExtractor
	config    Config
	logger    *slog.Logger

	answerFailed atomic.Bool
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			return ErrNilLogger
		}
		s.logger = logger
		return nil
	}
}

// WithConfig replaces the default thresholds and limits.
func WithConfig(config Config) Option {
	return func(s *Searcher) error {
		if err := config.Validate(); err != nil {
			return err
		}
		s.config = config
		return nil
	}
}

// NewSearcher creates a new searcher. Only documents present in the term
// index are searched; the source supplies their current fields.
func NewSearcher(
	source storage.DocumentSource,
	terms *index.TermIndex,
	provider ai.Provider,
	opts ...Option,
) (*Searcher, error) {
	if source == nil {
		return nil, ErrDocumentSourceRequired
	}
	if terms == nil {
		return nil, ErrTermIndexRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	s := &Searcher{
		source:    source,
		terms:     terms,
		tokenizer: provider.Tokenizer(),
		words:     provider.WordEmbedder(),
		sentences: provider.SentenceEmbedder(),
		answerer:  provider.AnswerExtractor(),
		config:    DefaultConfig(),
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	processor, err := query.NewProcessor(s.tokenizer, s.words, query.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	s.processor = processor
	s.logger = s.logger.With("component", "searcher")
	return s, nil
}

// Search runs q and streams one result per sub-query to h.
func (s *Searcher) Search(ctx context.Context, q Query, h Handlers) error {
	_, err := s.search(ctx, q, h, nil)
	return err
}

// SearchWithMonitor runs q like Search, reporting each stage to monitor.
func (s *Searcher) SearchWithMonitor(ctx context.Context, q Query, h Handlers, monitor SearchMonitor) error {
	_, err := s.search(ctx, q, h, monitor)
	return err
}

// SearchAll runs q and returns the results in sub-query order.
func (s *Searcher) SearchAll(ctx context.Context, q Query) ([]*core.SearchResult, error) {
	return s.search(ctx, q, Handlers{}, nil)
}

func (s *Searcher) search(ctx context.Context, q Query, h Handlers, monitor SearchMonitor) ([]*core.SearchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(q.Text)

	processed := s.processor.Process(ctx, q.Text, q.Split)
	monitor.AfterQueryProcessing(processed)
	if len(processed.SubQueries) > 1 && h.SubQueries != nil {
		h.SubQueries(slices.Clone(processed.SubQueries))
	}

	docs, err := s.indexedDocuments(ctx)
	if err != nil {
		s.logger.Error("error loading documents", "err", err)
		return nil, err
	}

	results := make([]*core.SearchResult, len(processed.SubQueries))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)
	for i, subQuery := range processed.SubQueries {
		g.Go(func() error {
			result, err := s.searchSubQuery(gctx, q, processed.IsQuestion, subQuery, docs, monitor)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			results[i] = result
			monitor.SubQueryDone(result)
			if h.Result != nil {
				h.Result(result)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	monitor.Finish(results)
	if h.Completion != nil {
		h.Completion()
	}
	return results, nil
}

// StringSimilarity compares text with target the way note fields are scored.
func (s *Searcher) StringSimilarity(ctx context.Context, text, target string) Similarity {
	return newMatcher(s.tokenizer, s.words, s.sentences, text).similarity(ctx, target)
}

// indexedDocuments returns the source documents known to the term index, ordered by id.
func (s *Searcher) indexedDocuments(ctx context.Context) ([]*core.Document, error) {
	all, err := s.source.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}
	docs := make([]*core.Document, 0, len(all))
	for _, doc := range all {
		if doc != nil && s.terms.Contains(doc.ID) {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (s *Searcher) searchSubQuery(
	ctx context.Context,
	q Query,
	question bool,
	subQuery string,
	docs []*core.Document,
	monitor SearchMonitor,
) (*core.SearchResult, error) {
	thresholds := s.config.Thresholds(q.Expanded)
	m := newMatcher(s.tokenizer, s.words, s.sentences, subQuery)

	var (
		notes    []core.NoteHit
		records  []core.RecordHit
		contexts []string
	)
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scored := s.scoreNote(ctx, m, thresholds, doc)
		monitor.NoteScored(subQuery, doc.ID, scored.note.Score)
		if scored.note.Score > 0 {
			notes = append(notes, scored.note)
		}
		records = append(records, scored.records...)
		contexts = append(contexts, scored.contexts...)
	}

	result := &core.SearchResult{
		Query:      subQuery,
		IsQuestion: question,
		Notes:      s.rankNotes(notes, strings.Fields(subQuery), thresholds.Result),
		Records:    rankRecords(records, thresholds.Result),
	}

	if question {
		byID := make(map[string]*core.Document, len(docs))
		for _, doc := range docs {
			byID[doc.ID] = doc
		}
		meta := s.metaStatements(result.Notes, byID, docs)
		if meta != "" {
			contexts = append([]string{meta}, contexts...)
		}

		answers, err := s.answer(ctx, q.Text, thresholds.Answer, contexts)
		if err != nil {
			return nil, err
		}
		for _, a := range answers {
			monitor.AnswerFound(subQuery, a)
		}
		result.Answers = answers
	}

	s.logger.Debug("sub-query complete",
		"query", subQuery,
		"notes", len(result.Notes),
		"records", len(result.Records),
		"answers", len(result.Answers))
	return result, nil
}

// noteScore is the raw score of one document for one sub-query.
type noteScore struct {
	note     core.NoteHit
	records  []core.RecordHit
	contexts []string // Candidate contexts for question answering
}

func (s *Searcher) scoreNote(ctx context.Context, m *matcher, t Thresholds, doc *core.Document) noteScore {
	result := noteScore{note: core.NoteHit{DocumentID: doc.ID, Title: doc.Title}}
	match := func(field core.Field, text string, sim Similarity) core.Match {
		return core.Match{
			Field:   field,
			Text:    text,
			Term:    sim.Term(),
			Score:   sim.Score(),
			Lexical: sim.Lexical >= t.Lexical,
		}
	}
	answerable := func(sim Similarity) bool {
		return sim.Lexical+sim.Semantic >= s.config.AnswerFieldScore
	}

	var title float64
	if sim := m.similarity(ctx, doc.Title); sim.Hit(t) {
		title = sim.Score()
		result.note.Matches = append(result.note.Matches, match(core.FieldTitle, doc.Title, sim))
	}

	var paragraph float64
	var best *core.Match
	for _, p := range s.tokenizer.Tokenize(doc.Body, ai.UnitParagraph) {
		sim := m.similarity(ctx, p)
		if !sim.Hit(t) {
			continue
		}
		if answerable(sim) {
			result.contexts = append(result.contexts, p)
		}
		if sim.Score() > paragraph {
			paragraph = sim.Score()
			found := match(core.FieldParagraph, p, sim)
			best = &found
		}
	}
	if best != nil {
		result.note.Matches = append(result.note.Matches, *best)
	}

	var drawings float64
	if labels := strings.Join(doc.Labels, " "); labels != "" {
		if sim := m.similarity(ctx, labels); sim.Hit(t) {
			drawings = sim.Score()
			result.note.Matches = append(result.note.Matches, match(core.FieldDrawings, labels, sim))
		}
	}

	var attached float64
	for _, record := range doc.Records {
		text := record.Text()
		sim := m.similarity(ctx, text)
		if !sim.Hit(t) {
			continue
		}
		attached += sim.Score()
		result.note.Matches = append(result.note.Matches, match(core.FieldRecord, text, sim))
		result.records = append(result.records, core.RecordHit{
			DocumentID: doc.ID,
			Record:     record,
			Score:      sim.Score(),
		})
		if record.Description != "" && answerable(sim) {
			result.contexts = append(result.contexts, record.Description)
		}
	}

	result.note.Score = 2*title + 2*paragraph + 2*drawings + attached
	return result
}

// rankNotes normalizes scores against the best note, drops notes below
// threshold and orders the rest. Equal scores are ordered by the TF-IDF
// weight of the query terms, then by document id.
func (s *Searcher) rankNotes(notes []core.NoteHit, terms []string, threshold float64) []core.NoteHit {
	var top float64
	for _, n := range notes {
		top = max(top, n.Score)
	}
	if top == 0 {
		return []core.NoteHit{}
	}

	type ranked struct {
		hit    core.NoteHit
		weight float64
	}
	kept := make([]ranked, 0, len(notes))
	for _, n := range notes {
		n.Score /= top
		if n.Score < threshold {
			continue
		}
		kept = append(kept, ranked{hit: n, weight: s.terms.Score(n.DocumentID, terms)})
	}
	sort.Slice(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.hit.Score != b.hit.Score {
			return a.hit.Score > b.hit.Score
		}
		if a.weight != b.weight {
			return a.weight > b.weight
		}
		return a.hit.DocumentID < b.hit.DocumentID
	})

	out := make([]core.NoteHit, len(kept))
	for i, r := range kept {
		out[i] = r.hit
	}
	return out
}

// rankRecords normalizes record scores against the best record.
func rankRecords(records []core.RecordHit, threshold float64) []core.RecordHit {
	var top float64
	for _, r := range records {
		top = max(top, r.Score)
	}
	if top == 0 {
		return []core.RecordHit{}
	}

	out := make([]core.RecordHit, 0, len(records))
	for _, r := range records {
		r.Score /= top
		if r.Score >= threshold {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].DocumentID != out[j].DocumentID {
			return out[i].DocumentID < out[j].DocumentID
		}
		return out[i].Record.ID < out[j].Record.ID
	})
	return out
}
