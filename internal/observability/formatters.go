// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/ats-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", padLine(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %s │\n", padLine(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// padLine truncates and pads a line to the box's inner width. Truncation and
// padding count runes, not bytes, so bullet characters never get split.
func padLine(line string) string {
	runes := []rune(line)
	if len(runes) > boxWidth-4 {
		return string(runes[:boxWidth-7]) + "..."
	}
	return line + strings.Repeat(" ", boxWidth-4-len(runes))
}

// PrintAnalysis outputs a human-readable summary of one analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:       %.1f / 100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Confidence:  %s\n", result.Confidence))
	sb.WriteString(fmt.Sprintf("Job type:    %s\n", result.JobType))
	sb.WriteString(fmt.Sprintf("Density:     %.1f%%\n", result.KeywordDensity))
	sb.WriteString("\n")

	appendKeywordList(&sb, "Matched keywords:", result.MatchingKeywords)
	appendKeywordList(&sb, "Missing keywords:", result.MissingKeywords)

	if len(result.SectionScores) > 0 {
		sb.WriteString("Section scores:\n")
		names := make([]string, 0, len(result.SectionScores))
		for name := range result.SectionScores {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("  %-15s %.1f\n", name, result.SectionScores[name]))
		}
	}

	p.printBox("ANALYSIS RESULT", strings.TrimSuffix(sb.String(), "\n"))
	p.printSuggestions(result.Suggestions)
}

// printSuggestions outputs the improvement suggestions, one numbered entry each.
func (p *Printer) printSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, suggestion := range suggestions {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, suggestion.Title))
		sb.WriteString(fmt.Sprintf("    %s\n", suggestion.Content))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func appendKeywordList(sb *strings.Builder, label string, keywords []string) {
	if len(keywords) == 0 {
		return
	}

	sb.WriteString(label)
	sb.WriteString("\n")
	count := min(len(keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords[i]))
	}
	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
