package mock

import "github.com/poiesic/notedex/ai"

func classSet(class ai.LexicalClass, words ...string) map[string]ai.LexicalClass {
	m := make(map[string]ai.LexicalClass, len(words))
	for _, w := range words {
		m[w] = class
	}
	return m
}

func merge(sets ...map[string]ai.LexicalClass) map[string]ai.LexicalClass {
	out := make(map[string]ai.LexicalClass)
	for _, set := range sets {
		for w, c := range set {
			out[w] = c
		}
	}
	return out
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var closedClass = merge(
	classSet(ai.ClassPronoun,
		"i", "me", "we", "us", "you", "he", "him", "she", "her", "it", "they", "them",
		"myself", "yourself", "himself", "herself", "itself", "ourselves", "themselves",
		"mine", "yours", "hers", "ours", "theirs",
		"who", "whom", "whose", "what", "which", "someone", "something", "anyone",
		"anything", "everyone", "everything", "nothing", "nobody"),
	classSet(ai.ClassDeterminer,
		"the", "a", "an", "this", "that", "these", "those", "my", "your", "his", "its",
		"our", "their", "some", "any", "every", "each", "no", "all", "both", "either",
		"neither", "another", "such", "much", "many", "few", "several", "more", "most"),
	classSet(ai.ClassPreposition,
		"of", "in", "on", "at", "to", "for", "with", "from", "by", "about", "into",
		"onto", "over", "under", "near", "between", "through", "during", "before",
		"after", "above", "below", "around", "across", "along", "against", "without",
		"within", "behind", "beside", "beyond", "toward", "towards", "upon", "via", "like"),
	classSet(ai.ClassConjunction,
		"and", "or", "but", "nor", "so", "yet", "because", "although", "though",
		"while", "if", "unless", "whether", "than"),
	classSet(ai.ClassAdverb,
		"not", "very", "too", "also", "just", "only", "then", "there", "here", "now",
		"never", "always", "often", "soon", "again", "still", "already", "where",
		"when", "why", "how", "ago", "today", "yesterday", "tomorrow"),
	classSet(ai.ClassVerb,
		"is", "are", "was", "were", "be", "been", "being", "am", "do", "does", "did",
		"have", "has", "had", "will", "would", "can", "could", "shall", "should",
		"may", "might", "must"),
)

var verbForms = set(
	"sit", "sits", "sat", "sitting",
	"go", "goes", "went", "gone", "going",
	"run", "runs", "ran", "running",
	"see", "sees", "saw", "seen",
	"make", "makes", "made",
	"take", "takes", "took", "taken",
	"eat", "eats", "ate", "eaten",
	"write", "writes", "wrote", "written",
	"read", "reads",
	"find", "finds", "found",
	"think", "thinks", "thought",
	"know", "knows", "knew", "known",
	"get", "gets", "got", "gotten",
	"give", "gives", "gave", "given",
	"come", "comes", "came",
	"say", "says", "said",
	"tell", "tells", "told",
	"fly", "flies", "flew", "flown",
	"grow", "grows", "grew", "grown",
	"draw", "draws", "drew", "drawn",
	"fall", "falls", "fell", "fallen",
	"begin", "begins", "began", "begun",
	"meet", "meets", "met",
	"buy", "buys", "bought",
	"bring", "brings", "brought",
	"feel", "feels", "felt",
	"leave", "leaves", "left",
	"keep", "keeps", "kept",
	"erupt", "erupts",
	"migrate", "migrates",
	"happen", "happens",
	"want", "wants",
	"need", "needs",
	"live", "lives",
	"visit", "visits",
	"learn", "learns",
	"explain", "explains",
	"show", "shows", "showed", "shown",
	"mean", "means", "meant",
)

var imperatives = set(
	"find", "show", "list", "search", "explain", "describe", "tell", "give", "compare", "summarize",
)

var numberWords = set(
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen",
	"eighteen", "nineteen", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety", "hundred", "thousand", "million", "billion",
	"first", "second", "third", "fourth", "fifth", "tenth", "hundredth",
)

// irregular maps inflected forms to their lemma.
var irregular = map[string]string{
	"is": "be", "are": "be", "was": "be", "were": "be", "been": "be", "being": "be", "am": "be",
	"does": "do", "did": "do", "done": "do",
	"has": "have", "had": "have",
	"sat": "sit", "went": "go", "gone": "go", "ran": "run", "saw": "see", "seen": "see",
	"made": "make", "took": "take", "taken": "take", "ate": "eat", "eaten": "eat",
	"wrote": "write", "written": "write", "found": "find", "thought": "think",
	"knew": "know", "known": "know", "got": "get", "gotten": "get", "gave": "give",
	"given": "give", "came": "come", "said": "say", "told": "tell", "flew": "fly",
	"flown": "fly", "grew": "grow", "grown": "grow", "drew": "draw", "drawn": "draw",
	"fell": "fall", "fallen": "fall", "began": "begin", "begun": "begin", "met": "meet",
	"bought": "buy", "brought": "bring", "felt": "feel", "left": "leave", "kept": "keep",
	"showed": "show", "shown": "show", "meant": "mean",
	"children": "child", "people": "person", "men": "man", "women": "woman",
	"mice": "mouse", "geese": "goose", "feet": "foot", "teeth": "tooth",
	"leaves": "leaf", "wolves": "wolf", "lives": "life", "knives": "knife",
	"data": "datum", "criteria": "criterion", "phenomena": "phenomenon",
	"better": "good", "best": "good", "worse": "bad", "worst": "bad",
}
