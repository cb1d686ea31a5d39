package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/core"
)

const dateLayout = "January 2, 2006"

// questionOverhead is reserved next to the question in every answer context.
const questionOverhead = 3

// metaStatements describes the matched notes and the most recently modified
// notes in plain sentences, so questions about the notes themselves can be answered.
func (s *Searcher) metaStatements(hits []core.NoteHit, byID map[string]*core.Document, docs []*core.Document) string {
	var statements []string
	for _, hit := range hits {
		doc, ok := byID[hit.DocumentID]
		if !ok {
			continue
		}
		if !doc.CreatedAt.IsZero() {
			statements = append(statements,
				fmt.Sprintf("The note %q was created on %s.", doc.Title, doc.CreatedAt.Format(dateLayout)))
		}
		if !doc.ModifiedAt.IsZero() {
			statements = append(statements,
				fmt.Sprintf("The note %q was last modified on %s.", doc.Title, doc.ModifiedAt.Format(dateLayout)))
		}
	}

	if recent := s.recentNotes(docs); len(recent) > 0 {
		titles := make([]string, len(recent))
		for i, doc := range recent {
			titles[i] = fmt.Sprintf("%q", doc.Title)
		}
		statements = append(statements, "The most recent notes are "+joinTitles(titles)+".")
	}
	return strings.Join(statements, " ")
}

func (s *Searcher) recentNotes(docs []*core.Document) []*core.Document {
	if s.config.RecentNotes == 0 {
		return nil
	}
	dated := make([]*core.Document, 0, len(docs))
	for _, doc := range docs {
		if !doc.ModifiedAt.IsZero() {
			dated = append(dated, doc)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].ModifiedAt.After(dated[j].ModifiedAt)
	})
	if len(dated) > s.config.RecentNotes {
		dated = dated[:s.config.RecentNotes]
	}
	return dated
}

func joinTitles(titles []string) string {
	switch len(titles) {
	case 1:
		return titles[0]
	case 2:
		return titles[0] + " and " + titles[1]
	default:
		return strings.Join(titles[:len(titles)-1], ", ") + " and " + titles[len(titles)-1]
	}
}

// answer asks the answer extractor for a span of every distinct context, so
// no (context, answer) pair is reported twice. Answers below minConfidence
// are dropped and the rest sorted by descending confidence.
func (s *Searcher) answer(ctx context.Context, question string, minConfidence float64, contexts []string) ([]core.Answer, error) {
	limit := s.config.AnswerContextWords - len(s.tokenizer.Tokenize(question, ai.UnitWord)) - questionOverhead
	if limit <= 0 || len(contexts) == 0 {
		return []core.Answer{}, nil
	}

	asked := make(map[string]struct{}, len(contexts))
	answers := []core.Answer{}
	for _, c := range contexts {
		c = truncateWords(c, limit)
		if c == "" {
			continue
		}
		if _, ok := asked[c]; ok {
			continue
		}
		asked[c] = struct{}{}

		found, err := s.answerer.Predict(ctx, question, c)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if s.answerFailed.CompareAndSwap(false, true) {
				s.logger.Warn("answer extraction failed", "err", err)
			} else {
				s.logger.Debug("answer extraction failed", "err", err)
			}
			continue
		}
		if found == nil || found.Text == "" || found.Confidence < minConfidence {
			continue
		}
		answers = append(answers, core.Answer{Context: c, Text: found.Text, Confidence: found.Confidence})
	}

	sort.SliceStable(answers, func(i, j int) bool {
		return answers[i].Confidence > answers[j].Confidence
	})
	return answers, nil
}
