package index

import (
	"context"
	"strings"

	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/core"
)

// NormalizeTerm lowercases word and replaces it with its lemma when the
// lemma is in the embedding vocabulary.
func NormalizeTerm(ctx context.Context, tokenizer ai.Tokenizer, words ai.WordEmbedder, word string) string {
	word = strings.ToLower(word)
	if lemma := tokenizer.Lemmatize(word); lemma != word && words.Contains(ctx, lemma) {
		return lemma
	}
	return word
}

// documentText is the text both indices derive terms from.
func documentText(doc *core.Document) string {
	if doc.Body == "" {
		return doc.Title
	}
	return doc.Title + "\n" + doc.Body
}
