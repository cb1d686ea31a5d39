package lexicon

import (
	"testing"

	"github.com/poiesic/notedex/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_Words(t *testing.T) {
	var l Splitter

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "lowercases and drops punctuation", text: "Volcano eruption, near the Coast!", want: []string{"volcano", "eruption", "near", "the", "coast"}},
		{name: "keeps numbers", text: "Flight 370 in 2014", want: []string{"flight", "370", "in", "2014"}},
		{name: "strips possessive", text: "Darwin's finches", want: []string{"darwin", "finches"}},
		{name: "keeps contractions", text: "don't stop", want: []string{"don't", "stop"}},
		{name: "folds compatibility forms", text: "ｆｕｌｌ width", want: []string{"full", "width"}},
		{name: "accented letters", text: "Café crème", want: []string{"café", "crème"}},
		{name: "empty", text: "  ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Tokenize(tt.text, ai.UnitWord))
		})
	}
}

func TestTokenize_Sentences(t *testing.T) {
	var l Splitter

	got := l.Tokenize("Birds migrate south. Why do they go? Nobody knows...\nNew line", ai.UnitSentence)
	assert.Equal(t, []string{"Birds migrate south.", "Why do they go?", "Nobody knows...", "New line"}, got)

	assert.Equal(t, []string{"Version 2.5 shipped."}, l.Tokenize("Version 2.5 shipped.", ai.UnitSentence))
}

func TestTokenize_Paragraphs(t *testing.T) {
	var l Splitter

	got := l.Tokenize("first line\r\n\n  second line  \n\n\nthird", ai.UnitParagraph)
	assert.Equal(t, []string{"first line", "second line", "third"}, got)
}

func TestIsStopword(t *testing.T) {
	var l Splitter

	for _, w := range []string{"the", "is", "what", "of", "they"} {
		assert.True(t, l.IsStopword(w), w)
	}
	for _, w := range []string{"volcano", "bird", "coast", ""} {
		assert.False(t, l.IsStopword(w), w)
	}
}

func TestLexicon(t *testing.T) {
	l, err := New()
	require.NoError(t, err)

	t.Run("tag", func(t *testing.T) {
		tokens := l.Tag("The volcano erupted violently.")
		require.Len(t, tokens, 4)
		assert.Equal(t, []string{"the", "volcano", "erupted", "violently"},
			[]string{tokens[0].Text, tokens[1].Text, tokens[2].Text, tokens[3].Text})
		assert.Equal(t, ai.ClassDeterminer, tokens[0].Class)
		assert.Equal(t, ai.ClassNoun, tokens[1].Class)
		assert.Equal(t, ai.ClassVerb, tokens[2].Class)
		assert.Equal(t, ai.ClassAdverb, tokens[3].Class)
	})

	t.Run("tag drops punctuation and possessives", func(t *testing.T) {
		for _, tok := range l.Tag("Darwin's finches, again!") {
			assert.NotContains(t, []string{"'s", ",", "!"}, tok.Text)
		}
		assert.Empty(t, l.Tag("?! ..."))
	})

	t.Run("tag folds compatibility forms", func(t *testing.T) {
		tokens := l.Tag("ｂｉｒｄｓ")
		require.Len(t, tokens, 1)
		assert.Equal(t, "birds", tokens[0].Text)
	})

	t.Run("lemmatize", func(t *testing.T) {
		tests := map[string]string{
			"birds":     "bird",
			"Volcanoes": "volcano",
			"children":  "child",
			"mice":      "mouse",
			"xyzzy":     "xyzzy",
		}
		for word, want := range tests {
			assert.Equal(t, want, l.Lemmatize(word), word)
		}
	})
}

func TestClassOf(t *testing.T) {
	tests := map[string]ai.LexicalClass{
		"NNS":  ai.ClassNoun,
		"PRP":  ai.ClassPronoun,
		"PRP$": ai.ClassDeterminer,
		"VBD":  ai.ClassVerb,
		"MD":   ai.ClassVerb,
		"JJR":  ai.ClassAdjective,
		"WRB":  ai.ClassAdverb,
		"CD":   ai.ClassNumber,
		"WDT":  ai.ClassDeterminer,
		"TO":   ai.ClassPreposition,
		"CC":   ai.ClassConjunction,
		"SYM":  ai.ClassOther,
	}
	for tag, want := range tests {
		assert.Equal(t, want, classOf(tag), tag)
	}
}
