package ai

// TokenUnit selects the granularity of Tokenizer.Tokenize.
type TokenUnit int

const (
	UnitWord TokenUnit = iota
	UnitSentence
	UnitParagraph
)

// LexicalClass is the part of speech assigned to a word by a Tokenizer.
type LexicalClass int

const (
	// ClassOther marks words the tagger could not classify.
	ClassOther LexicalClass = iota
	ClassNoun
	ClassPronoun
	ClassVerb
	ClassAdjective
	ClassAdverb
	ClassNumber
	ClassDeterminer
	ClassPreposition
	ClassConjunction
)

var classNames = [...]string{
	ClassOther:       "other",
	ClassNoun:        "noun",
	ClassPronoun:     "pronoun",
	ClassVerb:        "verb",
	ClassAdjective:   "adjective",
	ClassAdverb:      "adverb",
	ClassNumber:      "number",
	ClassDeterminer:  "determiner",
	ClassPreposition: "preposition",
	ClassConjunction: "conjunction",
}

func (c LexicalClass) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "other"
	}
	return classNames[c]
}

// TaggedToken is a lowercase word with its lexical class.
type TaggedToken struct {
	Text  string
	Class LexicalClass
}

// Answer is a span extracted from a context by an AnswerExtractor.
type Answer struct {
	Text       string
	Confidence float64
}
