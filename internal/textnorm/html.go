package textnorm

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	htmlTagHint  = []string{"<p", "<div", "<br", "<ul", "<li", "<span", "<h1", "<h2", "<h3", "<body", "<html"}
	blockClose   = regexp.MustCompile(`(?i)</(p|div|li|h[1-6]|tr|ul|ol|table|section|article)>`)
	lineBreakTag = regexp.MustCompile(`(?i)<br\s*/?>`)
	blankRun     = regexp.MustCompile(`\n{3,}`)
)

// looksLikeHTML is a cheap guard so plain text never pays for a DOM parse.
func looksLikeHTML(text string) bool {
	if !strings.Contains(text, "<") || !strings.Contains(text, ">") {
		return false
	}
	lower := strings.ToLower(text)
	for _, hint := range htmlTagHint {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// FlattenHTML converts HTML markup to plain text. Callers are expected to
// supply plain UTF-8, but pasted job postings are frequently HTML fragments;
// non-HTML input passes through unchanged, as does input the parser rejects.
// Block-element boundaries become line breaks so downstream line-based
// heuristics still see document structure.
func FlattenHTML(text string) string {
	if !looksLikeHTML(text) {
		return text
	}

	withBreaks := blockClose.ReplaceAllString(text, "\n")
	withBreaks = lineBreakTag.ReplaceAllString(withBreaks, "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(withBreaks))
	if err != nil {
		return text
	}
	doc.Find("script,style").Remove()

	flattened := doc.Text()
	lines := strings.Split(flattened, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	flattened = strings.TrimSpace(blankRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
	if flattened == "" {
		return text
	}
	return flattened
}
