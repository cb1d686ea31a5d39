package search

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/index"
)

// minTargetLength is the shortest target word considered for matching, in runes.
const minTargetLength = 3

// Similarity is the best match of a query inside a target text.
// Lexical and Semantic are averages over the query words, each in [0,1].
type Similarity struct {
	Semantic       float64
	Lexical        float64
	SemanticTarget string // Target word closest in meaning to the query
	LexicalTarget  string // Target word closest in spelling to the query
}

// Hit reports whether either similarity reaches its threshold.
func (s Similarity) Hit(t Thresholds) bool {
	return s.Lexical >= t.Lexical || s.Semantic >= t.Semantic
}

// Score is the field score of a hit.
func (s Similarity) Score() float64 {
	return max(s.Lexical, s.Semantic)
}

// Term is the closest target word, preferring the lexical match when it is at least as strong.
func (s Similarity) Term() string {
	if s.Lexical >= s.Semantic && s.LexicalTarget != "" {
		return s.LexicalTarget
	}
	return s.SemanticTarget
}

type pair struct {
	a, b string
}

// matcher compares one query against many targets.
// Semantic scores are memoized per word pair; a matcher is not safe for concurrent use.
type matcher struct {
	tokenizer ai.Tokenizer
	words     ai.WordEmbedder
	sentences ai.SentenceEmbedder
	query     []string
	memo      map[pair]float64
}

func newMatcher(tokenizer ai.Tokenizer, words ai.WordEmbedder, sentences ai.SentenceEmbedder, query string) *matcher {
	return &matcher{
		tokenizer: tokenizer,
		words:     words,
		sentences: sentences,
		query:     tokenizer.Tokenize(query, ai.UnitWord),
		memo:      make(map[pair]float64),
	}
}

// targets returns the distinct normalized words of text eligible for matching.
func (m *matcher) targets(ctx context.Context, text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, w := range m.tokenizer.Tokenize(text, ai.UnitWord) {
		if utf8.RuneCountInString(w) < minTargetLength || m.tokenizer.IsStopword(w) {
			continue
		}
		w = index.NormalizeTerm(ctx, m.tokenizer, m.words, w)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func (m *matcher) similarity(ctx context.Context, text string) Similarity {
	targets := m.targets(ctx, text)
	if len(m.query) == 0 || len(targets) == 0 {
		return Similarity{}
	}

	var (
		result             Similarity
		bestLex, bestSem   float64
		lexTotal, semTotal float64
	)
	bestLex, bestSem = -1, -1
	for _, q := range m.query {
		wordLex, wordSem := 0.0, 0.0
		lexTarget, semTarget := "", ""
		for _, t := range targets {
			if l := lexicalSimilarity(q, t); l > wordLex || lexTarget == "" {
				wordLex, lexTarget = l, t
			}
			if s := m.semantic(ctx, q, t); s > wordSem || semTarget == "" {
				wordSem, semTarget = s, t
			}
		}
		lexTotal += wordLex
		semTotal += wordSem
		if wordLex > bestLex {
			bestLex, result.LexicalTarget = wordLex, lexTarget
		}
		if wordSem > bestSem {
			bestSem, result.SemanticTarget = wordSem, semTarget
		}
	}

	n := float64(len(m.query))
	result.Lexical = lexTotal / n
	result.Semantic = semTotal / n
	return result
}

// semantic maps the cosine distance of two words onto [0,1].
// Words outside the word vocabulary are compared with the sentence model.
func (m *matcher) semantic(ctx context.Context, a, b string) float64 {
	key := pair{a, b}
	if s, ok := m.memo[key]; ok {
		return s
	}

	var d float64
	if m.words.Contains(ctx, a) && m.words.Contains(ctx, b) {
		d = m.words.Distance(ctx, a, b)
	} else {
		d = m.sentences.Distance(ctx, a, b)
	}
	d = min(max(d, 0), ai.MaxDistance)
	s := (1 + (1 - d)) / 2

	m.memo[key] = s
	return s
}

// lexicalSimilarity is one minus the normalized edit distance of a and b.
func lexicalSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}
	return 1 - float64(editDistance(ra, rb))/float64(longest)
}

// editDistance is the optimal string alignment variant of the
// Damerau-Levenshtein distance: insertions, deletions, substitutions and
// transpositions of adjacent runes, with no substring edited twice.
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Three rolling rows: i-2, i-1 and i.
	prev2 := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				cur[j] = min(cur[j], prev2[j-2]+1)
			}
		}
		prev2, prev, cur = prev, cur, prev2
	}
	return prev[len(b)]
}

// truncateWords keeps at most n whitespace separated words of text.
func truncateWords(text string, n int) string {
	if n <= 0 {
		return ""
	}
	fields := strings.Fields(text)
	if len(fields) <= n {
		return strings.Join(fields, " ")
	}
	return strings.Join(fields[:n], " ")
}
