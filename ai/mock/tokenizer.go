package mock

import (
	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/ai/lexicon"
)

// MockTokenizer splits text like the lexicon tokenizer but tags and
// lemmatizes with small deterministic rule tables, so tests need no model.
// Tagging can be replaced, for example to simulate a tagger that knows no
// lexical classes.
type MockTokenizer struct {
	lexicon.Splitter

	// TagFunc is called by Tag if set.
	TagFunc func(text string) []ai.TaggedToken
}

var _ ai.Tokenizer = (*MockTokenizer)(nil)

// NewMockTokenizer creates a rule-based tokenizer.
func NewMockTokenizer() *MockTokenizer {
	return &MockTokenizer{}
}

// Tag tags text with TagFunc or the rule tables.
func (m *MockTokenizer) Tag(text string) []ai.TaggedToken {
	if m.TagFunc != nil {
		return m.TagFunc(text)
	}
	return ruleTags(m.Tokenize(text, ai.UnitWord))
}

// Lemmatize returns the rule-based lemma of word.
func (m *MockTokenizer) Lemmatize(word string) string {
	return ruleLemma(word)
}

// UnknownTags is a TagFunc that tags every word as ai.ClassOther.
func (m *MockTokenizer) UnknownTags(text string) []ai.TaggedToken {
	words := m.Tokenize(text, ai.UnitWord)
	tokens := make([]ai.TaggedToken, len(words))
	for i, w := range words {
		tokens[i] = ai.TaggedToken{Text: w, Class: ai.ClassOther}
	}
	return tokens
}
