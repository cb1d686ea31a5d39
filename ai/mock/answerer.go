package mock

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/poiesic/notedex/ai"
)

var questionWords = map[string]struct{}{
	"who": {}, "what": {}, "where": {}, "which": {}, "when": {}, "whose": {}, "how": {}, "why": {},
}

// MockAnswerer is a test double for ai.AnswerExtractor.
type MockAnswerer struct {
	// PredictFunc is called by Predict if set.
	// If nil, the first sentence of the context mentioning a question keyword
	// is returned, with the share of keywords found as confidence.
	PredictFunc func(ctx context.Context, question, context string) (*ai.Answer, error)

	callCount atomic.Int64
}

// NewMockAnswerer creates a mock answer extractor with default behavior.
func NewMockAnswerer() *MockAnswerer {
	return &MockAnswerer{}
}

// Predict returns an answer from context or nil.
func (m *MockAnswerer) Predict(ctx context.Context, question, context string) (*ai.Answer, error) {
	m.callCount.Add(1)

	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, question, context)
	}

	var keywords []string
	for _, w := range strings.Fields(strings.ToLower(question)) {
		w = strings.Trim(w, ".,!?;:\"'()")
		if _, ok := questionWords[w]; ok || len(w) <= 3 {
			continue
		}
		keywords = append(keywords, w)
	}
	if len(keywords) == 0 {
		return nil, nil
	}

	lower := strings.ToLower(context)
	found := 0
	first := -1
	for _, k := range keywords {
		if i := strings.Index(lower, k); i >= 0 {
			found++
			if first < 0 || i < first {
				first = i
			}
		}
	}
	if found == 0 {
		return nil, nil
	}

	return &ai.Answer{
		Text:       sentenceAt(context, first),
		Confidence: float64(found) / float64(len(keywords)),
	}, nil
}

func sentenceAt(text string, pos int) string {
	start := strings.LastIndexAny(text[:pos], ".!?\n") + 1
	end := strings.IndexAny(text[pos:], ".!?\n")
	if end < 0 {
		end = len(text)
	} else {
		end += pos
	}
	return strings.TrimSpace(text[start:end])
}

// CallCount returns the number of times Predict was called.
func (m *MockAnswerer) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and injected behavior.
func (m *MockAnswerer) Reset() {
	m.callCount.Store(0)
	m.PredictFunc = nil
}
