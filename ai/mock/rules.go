package mock

import (
	"strconv"
	"strings"

	"github.com/poiesic/notedex/ai"
)

// ruleTags classifies words with closed-class lists, suffix rules and the
// class of the preceding word. Undecided words are nouns.
func ruleTags(words []string) []ai.TaggedToken {
	tokens := make([]ai.TaggedToken, len(words))
	prev := ai.ClassOther
	for i, w := range words {
		class := classify(w, prev, i == 0)
		tokens[i] = ai.TaggedToken{Text: w, Class: class}
		prev = class
	}
	return tokens
}

func classify(word string, prev ai.LexicalClass, first bool) ai.LexicalClass {
	if class, ok := closedClass[word]; ok {
		return class
	}
	if isNumber(word) {
		return ai.ClassNumber
	}
	if !isAlpha(word) {
		return ai.ClassOther
	}

	modified := prev == ai.ClassDeterminer || prev == ai.ClassAdjective
	if _, ok := verbForms[word]; ok && !modified {
		return ai.ClassVerb
	}
	if class, ok := bySuffix(word); ok {
		return class
	}
	if len(word) >= 5 && (strings.HasSuffix(word, "ing") || strings.HasSuffix(word, "ed")) && !modified {
		return ai.ClassVerb
	}

	switch {
	case prev == ai.ClassPronoun:
		// "they migrate"
		return ai.ClassVerb
	case first:
		// imperative queries: "find notes about birds"
		if _, ok := imperatives[word]; ok {
			return ai.ClassVerb
		}
	}
	return ai.ClassNoun
}

var suffixRules = []struct {
	suffix string
	class  ai.LexicalClass
}{
	{"ly", ai.ClassAdverb},
	{"tion", ai.ClassNoun},
	{"sion", ai.ClassNoun},
	{"ment", ai.ClassNoun},
	{"ness", ai.ClassNoun},
	{"ity", ai.ClassNoun},
	{"ism", ai.ClassNoun},
	{"ist", ai.ClassNoun},
	{"ship", ai.ClassNoun},
	{"ous", ai.ClassAdjective},
	{"ful", ai.ClassAdjective},
	{"less", ai.ClassAdjective},
	{"ive", ai.ClassAdjective},
	{"able", ai.ClassAdjective},
	{"ible", ai.ClassAdjective},
	{"ical", ai.ClassAdjective},
	{"ic", ai.ClassAdjective},
	{"ish", ai.ClassAdjective},
	{"ize", ai.ClassVerb},
	{"ise", ai.ClassVerb},
	{"ate", ai.ClassVerb},
	{"ify", ai.ClassVerb},
}

func bySuffix(word string) (ai.LexicalClass, bool) {
	// short words are too ambiguous for suffix rules ("fly", "ate", "ice")
	if len(word) < 5 {
		return ai.ClassOther, false
	}
	for _, rule := range suffixRules {
		if strings.HasSuffix(word, rule.suffix) {
			return rule.class, true
		}
	}
	return ai.ClassOther, false
}

func isNumber(word string) bool {
	if _, ok := numberWords[word]; ok {
		return true
	}
	_, err := strconv.ParseFloat(word, 64)
	return err == nil
}

func isAlpha(word string) bool {
	for _, r := range word {
		if (r < 'a' || r > 'z') && r != '\'' && r < 0x80 {
			return false
		}
	}
	return true
}

// ruleLemma strips regular plural and third-person suffixes and looks up
// irregular forms. Past and progressive forms are kept as they are.
func ruleLemma(word string) string {
	word = strings.ToLower(word)
	if lemma, ok := irregular[word]; ok {
		return lemma
	}
	if len(word) <= 3 {
		return word
	}

	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ied") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "sses"),
		strings.HasSuffix(word, "ches"),
		strings.HasSuffix(word, "shes"),
		strings.HasSuffix(word, "xes"),
		strings.HasSuffix(word, "zzes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "oes") && len(word) > 4:
		// volcanoes, tomatoes
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"),
		strings.HasSuffix(word, "us"),
		strings.HasSuffix(word, "is"),
		strings.HasSuffix(word, "ous"):
		return word
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1]
	}
	return word
}
