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


package query

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/index"
)

// Phrase is the grammatical shape of a query.
type Phrase int

const (
	// PhraseKeyword is a single word.
	PhraseKeyword Phrase = iota
	// PhraseClause is a short group of words without a subject and verb.
	PhraseClause
	// PhraseExtendedClause is five or more words without a subject and verb.
	PhraseExtendedClause
	// PhraseSentence has both a noun or pronoun and a verb.
	PhraseSentence
)

func (p Phrase) String() string {
	switch p {
	case PhraseKeyword:
		return "keyword"
	case PhraseClause:
		return "clause"
	case PhraseExtendedClause:
		return "extended-clause"
	case PhraseSentence:
		return "sentence"
	default:
		return "unknown"
	}
}

// ClusterThreshold is the word similarity above which two terms share a sub-query.
const ClusterThreshold = 0.5

// extendedClauseLength is the token count from which a clause is extended.
const extendedClauseLength = 5

var questionWords = map[string]struct{}{
	"who": {}, "what": {}, "where": {}, "which": {}, "when": {}, "whose": {}, "how": {},
}

// Result is a processed query.
type Result struct {
	SubQueries []string
	IsQuestion bool
	Phrase     Phrase
}

// Processor analyzes queries. It is safe for concurrent use.
type Processor struct {
	tokenizer ai.Tokenizer
	words     ai.WordEmbedder
	logger    *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor) error

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) error {
		if logger == nil {
			return ErrNilLogger
		}
		p.logger = logger
		return nil
	}
}

// NewProcessor creates a query processor.
func NewProcessor(tokenizer ai.Tokenizer, words ai.WordEmbedder, opts ...Option) (*Processor, error) {
	if tokenizer == nil {
		return nil, ErrTokenizerRequired
	}
	if words == nil {
		return nil, ErrEmbedderRequired
	}

	p := &Processor{
		tokenizer: tokenizer,
		words:     words,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.logger = p.logger.With("component", "query-processor")
	return p, nil
}

// Process analyzes text. With split set, the retained terms are clustered
// into one sub-query per topic, unless the query is a full-sentence question,
// which is always kept whole.
func (p *Processor) Process(ctx context.Context, text string, split bool) Result {
	words := p.tokenizer.Tokenize(text, ai.UnitWord)
	switch len(words) {
	case 0:
		return Result{Phrase: PhraseKeyword}
	case 1:
		return Result{
			SubQueries: []string{index.NormalizeTerm(ctx, p.tokenizer, p.words, words[0])},
			Phrase:     PhraseKeyword,
		}
	}

	tags := p.tokenizer.Tag(text)
	for i := range tags {
		tags[i].Text = p.tokenizer.Lemmatize(strings.ToLower(tags[i].Text))
	}

	phrase := classify(tags, len(words))
	question := isQuestion(text, words, tags)
	terms := p.retain(ctx, tags)

	result := Result{IsQuestion: question, Phrase: phrase}
	forced := phrase == PhraseSentence && question
	if !split || forced || len(terms) < 2 {
		if len(terms) == 0 {
			result.SubQueries = []string{strings.ToLower(strings.TrimSpace(text))}
		} else {
			result.SubQueries = []string{strings.Join(terms, " ")}
		}
	} else {
		result.SubQueries = p.cluster(ctx, terms)
	}

	p.logger.Debug("processed query",
		"phrase", phrase.String(),
		"question", question,
		"subqueries", len(result.SubQueries))
	return result
}

func classify(tags []ai.TaggedToken, tokens int) Phrase {
	var subject, verb bool
	for _, tag := range tags {
		switch tag.Class {
		case ai.ClassNoun, ai.ClassPronoun:
			subject = true
		case ai.ClassVerb:
			verb = true
		}
	}
	switch {
	case subject && verb:
		return PhraseSentence
	case tokens >= extendedClauseLength:
		return PhraseExtendedClause
	default:
		return PhraseClause
	}
}

func isQuestion(text string, words []string, tags []ai.TaggedToken) bool {
	if strings.HasSuffix(strings.TrimSpace(text), "?") {
		return true
	}
	if len(tags) > 0 && tags[0].Class == ai.ClassVerb {
		return true
	}
	for _, w := range words {
		if _, ok := questionWords[w]; ok {
			return true
		}
	}
	return false
}

// retain keeps the content-bearing terms in order, normalized and deduplicated.
// A tagger that recognized nothing leaves every non-stopword in place.
func (p *Processor) retain(ctx context.Context, tags []ai.TaggedToken) []string {
	degraded := true
	for _, tag := range tags {
		if tag.Class != ai.ClassOther {
			degraded = false
			break
		}
	}

	seen := make(map[string]struct{})
	var terms []string
	for _, tag := range tags {
		keep := false
		switch tag.Class {
		case ai.ClassNoun, ai.ClassAdjective, ai.ClassNumber:
			keep = !degraded
		case ai.ClassOther:
			keep = !p.tokenizer.IsStopword(tag.Text)
		}
		if !keep {
			continue
		}

		term := index.NormalizeTerm(ctx, p.tokenizer, p.words, tag.Text)
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	return terms
}
