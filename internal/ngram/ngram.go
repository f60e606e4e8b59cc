// Package ngram builds weighted-ready frequency tables of short word
// sequences. Weighting is layered on by callers; this package only counts.
package ngram

import (
	"strings"

	"github.com/jonathan/ats-matcher/internal/textnorm"
)

const (
	// DefaultMaxN is the longest phrase length extracted.
	DefaultMaxN = 3
	// minPhraseLen drops fragments too short to carry meaning.
	minPhraseLen = 4
)

// Extract returns every contiguous 1..maxN-gram of the text's tokens mapped
// to its occurrence count. Tokens keep their original adjacency (stopwords
// included while windowing), but any gram containing a stopword is discarded,
// as is any phrase shorter than four characters. Frequencies are plain
// occurrence counts.
func Extract(text string, maxN int) map[string]int {
	if maxN <= 0 {
		maxN = DefaultMaxN
	}

	tokens := textnorm.Tokenize(text)
	freqs := make(map[string]int)
	if len(tokens) == 0 {
		return freqs
	}

	for n := 1; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			gram := tokens[i : i+n]
			if containsStopword(gram) {
				continue
			}
			phrase := strings.Join(gram, " ")
			if len(phrase) < minPhraseLen {
				continue
			}
			freqs[phrase]++
		}
	}
	return freqs
}

func containsStopword(gram []string) bool {
	for _, token := range gram {
		if textnorm.IsStopword(token) {
			return true
		}
	}
	return false
}
