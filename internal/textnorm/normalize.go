// Package textnorm provides text cleanup and tokenization shared by every
// stage of the matching pipeline.
package textnorm

import (
	"regexp"
	"strings"
)

// minTokenLen is the shortest token kept after cleanup; anything at or below
// this length carries too little matching signal.
const minTokenLen = 2

var (
	urlPattern      = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`)
	bracketPattern  = regexp.MustCompile(`\[[^\[\]]*\]|\([^()]*\)`)
	nonWordPattern  = regexp.MustCompile(`[^a-z0-9]+`)
	multiWhitespace = regexp.MustCompile(`\s+`)
)

// Clean strips noise from raw text: HTML markup is flattened to plain text,
// URLs and bracketed or parenthetical asides are removed, the remainder is
// lowercased, and every non-alphanumeric run becomes a single space.
func Clean(text string) string {
	text = FlattenHTML(text)
	text = urlPattern.ReplaceAllString(text, " ")
	text = bracketPattern.ReplaceAllString(text, " ")
	text = strings.ToLower(text)
	text = nonWordPattern.ReplaceAllString(text, " ")
	text = multiWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize splits cleaned text into tokens longer than two characters.
// Stopwords are retained so that callers building n-grams see the original
// word adjacency; use Normalize when stopwords should be dropped.
func Tokenize(text string) []string {
	cleaned := Clean(text)
	if cleaned == "" {
		return nil
	}

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) <= minTokenLen {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// Normalize returns the tokens of text with stopwords removed. Deterministic,
// no side effects; empty input yields an empty slice.
func Normalize(text string) []string {
	all := Tokenize(text)
	tokens := make([]string, 0, len(all))
	for _, token := range all {
		if IsStopword(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
