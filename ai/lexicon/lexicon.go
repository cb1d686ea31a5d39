package lexicon

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/poiesic/notedex/ai"
	"golang.org/x/text/unicode/norm"
)

// Splitter breaks text into words, sentences and paragraphs and knows the
// English stopwords. The zero value is ready to use.
type Splitter struct{}

// Tokenize splits text into lowercase words, sentences or paragraphs.
func (Splitter) Tokenize(text string, unit ai.TokenUnit) []string {
	text = norm.NFKC.String(text)
	switch unit {
	case ai.UnitSentence:
		return sentences(text)
	case ai.UnitParagraph:
		return paragraphs(text)
	default:
		return words(text)
	}
}

// IsStopword reports whether word is a common English function word.
func (Splitter) IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// Lexicon implements ai.Tokenizer for English text. Tagging uses the prose
// averaged perceptron and lemmas come from the golem English dictionary.
// It is safe for concurrent use.
type Lexicon struct {
	Splitter
	lemmatizer *golem.Lemmatizer
}

var _ ai.Tokenizer = (*Lexicon)(nil)

// New loads the lemma dictionary and returns a Lexicon.
func New() (*Lexicon, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("loading lemma dictionary: %w", err)
	}
	return &Lexicon{lemmatizer: lemmatizer}, nil
}

func words(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’'
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ReplaceAll(f, "’", "'")
		f = strings.TrimSuffix(f, "'s")
		f = strings.Trim(f, "'")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func sentences(text string) []string {
	var (
		out   []string
		start int
	)
	runes := []rune(text)
	flush := func(end int) {
		if s := strings.TrimSpace(string(runes[start:end])); s != "" {
			out = append(out, s)
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\n':
			flush(i + 1)
		case '.', '!', '?':
			j := i + 1
			for j < len(runes) && strings.ContainsRune(".!?", runes[j]) {
				j++
			}
			if j == len(runes) || unicode.IsSpace(runes[j]) {
				flush(j)
			}
			i = j - 1
		}
	}
	flush(len(runes))
	return out
}

// paragraphs treats every non-blank line as a paragraph; handwritten note
// bodies arrive one recognized line per paragraph.
func paragraphs(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
