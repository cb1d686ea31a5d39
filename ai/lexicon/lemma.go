package lexicon

import "strings"

// Lemmatize returns the dictionary form of word, lowercased. Words missing
// from the dictionary are returned lowercased.
func (l *Lexicon) Lemmatize(word string) string {
	word = strings.ToLower(word)
	if lemma := l.lemmatizer.Lemma(word); lemma != "" {
		return strings.ToLower(lemma)
	}
	return word
}
