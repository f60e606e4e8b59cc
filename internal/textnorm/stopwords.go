package textnorm

// stopwords is the shared English stopword set. Read-only after init; safe
// for concurrent lookups from parallel analyses.
var stopwords = map[string]struct{}{}

var stopwordList = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am",
	"an", "and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"cannot", "could", "couldn't", "did", "didn't", "do", "does", "doesn't",
	"doing", "don't", "down", "during", "each", "few", "for", "from",
	"further", "had", "hadn't", "has", "hasn't", "have", "haven't", "having",
	"he", "her", "here", "hers", "herself", "him", "himself", "his", "how",
	"i", "if", "in", "into", "is", "isn't", "it", "its", "itself", "just",
	"me", "more", "most", "mustn't", "my", "myself", "no", "nor", "not",
	"of", "off", "on", "once", "only", "or", "other", "ought", "our", "ours",
	"ourselves", "out", "over", "own", "same", "shan't", "she", "should",
	"shouldn't", "so", "some", "such", "than", "that", "the", "their",
	"theirs", "them", "themselves", "then", "there", "these", "they", "this",
	"those", "through", "to", "too", "under", "until", "up", "very", "was",
	"wasn't", "we", "were", "weren't", "what", "when", "where", "which",
	"while", "who", "whom", "why", "will", "with", "won't", "would",
	"wouldn't", "you", "your", "yours", "yourself", "yourselves",
}

func init() {
	for _, w := range stopwordList {
		stopwords[w] = struct{}{}
	}
}

// IsStopword reports whether token (already lowercased) is an English stopword.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
