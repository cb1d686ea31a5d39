package lexicon

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// stopwords are common English words filtered from search and index terms.
var stopwords = set(
	"the", "a", "an", "is", "are", "was", "were", "be", "been", "being", "am",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"will", "would", "could", "should", "may", "might", "shall", "can", "must",
	"of", "in", "to", "for", "with", "on", "at", "from", "by", "about", "as",
	"into", "through", "during", "before", "after", "over", "under", "again",
	"and", "or", "but", "not", "no", "nor", "so", "than", "too", "very", "if",
	"then", "there", "here", "just", "only", "also", "own", "same", "such",
	"what", "how", "when", "where", "which", "who", "whom", "whose", "why",
	"this", "that", "these", "those", "it", "its", "my", "your", "our", "their",
	"his", "her", "hers", "him", "i", "me", "we", "us", "you", "he", "she",
	"they", "them", "myself", "yourself", "itself", "themselves",
	"all", "any", "both", "each", "few", "more", "most", "other", "some",
	"s", "t", "d", "ll", "m", "re", "ve", "don't", "can't", "won't", "isn't",
)
