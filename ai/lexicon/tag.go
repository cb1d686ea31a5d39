package lexicon

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
	"github.com/poiesic/notedex/ai"
	"golang.org/x/text/unicode/norm"
)

// Tag assigns a lexical class to every word of text. Punctuation and
// possessive markers are dropped. When the tagger fails every word is
// returned as ai.ClassOther.
func (l *Lexicon) Tag(text string) []ai.TaggedToken {
	text = norm.NFKC.String(text)
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		ws := l.Tokenize(text, ai.UnitWord)
		tokens := make([]ai.TaggedToken, len(ws))
		for i, w := range ws {
			tokens[i] = ai.TaggedToken{Text: w, Class: ai.ClassOther}
		}
		return tokens
	}

	var tokens []ai.TaggedToken
	for _, tok := range doc.Tokens() {
		if tok.Tag == "POS" || !hasWordRune(tok.Text) {
			continue
		}
		tokens = append(tokens, ai.TaggedToken{
			Text:  strings.ToLower(tok.Text),
			Class: classOf(tok.Tag),
		})
	}
	return tokens
}

// classOf folds a Penn Treebank tag into a lexical class.
func classOf(tag string) ai.LexicalClass {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return ai.ClassNoun
	case "PRP", "WP", "WP$", "EX":
		return ai.ClassPronoun
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ", "MD":
		return ai.ClassVerb
	case "JJ", "JJR", "JJS":
		return ai.ClassAdjective
	case "RB", "RBR", "RBS", "WRB", "RP":
		return ai.ClassAdverb
	case "CD":
		return ai.ClassNumber
	case "DT", "PDT", "WDT", "PRP$":
		return ai.ClassDeterminer
	case "IN", "TO":
		return ai.ClassPreposition
	case "CC":
		return ai.ClassConjunction
	}
	return ai.ClassOther
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
