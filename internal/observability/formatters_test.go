package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/ats-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleAnalysis() *types.AnalysisResult {
	return &types.AnalysisResult{
		Score:            62.4,
		Confidence:       types.ConfidenceMedium,
		MatchingKeywords: []string{"python", "django", "aws", "docker", "flask", "linux"},
		MissingKeywords:  []string{"kubernetes"},
		SectionScores:    map[string]float64{"skills": 80.2, "experience": 45.0},
		JobType:          types.JobTypeTechnical,
		KeywordDensity:   4.5,
		Suggestions: []types.Suggestion{
			{Type: "keywords", Title: "Add missing keywords", Content: "Consider kubernetes."},
		},
	}
}

func TestPrintAnalysis_IncludesCoreFields(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintAnalysis(sampleAnalysis())

	out := buf.String()
	assert.Contains(t, out, "62.4")
	assert.Contains(t, out, "medium")
	assert.Contains(t, out, "technical")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "kubernetes")
	assert.Contains(t, out, "ANALYSIS RESULT")
	assert.Contains(t, out, "SUGGESTIONS")
}

func TestPrintAnalysis_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintAnalysis(sampleAnalysis())

	assert.Contains(t, buf.String(), "and 1 more")
}

func TestPrintAnalysis_TruncationPreservesUTF8(t *testing.T) {
	result := sampleAnalysis()
	result.MatchingKeywords = []string{
		"integración continua y despliegue de servicios de misión crítica en la nube",
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(result)

	out := buf.String()
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "...")
	// Bullet lines carry multibyte runes; every box row must still line up.
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), "line %q", line)
	}
}

func TestPrintAnalysis_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysis_SectionOrderIsStable(t *testing.T) {
	var first, second bytes.Buffer
	NewPrinter(&first).PrintAnalysis(sampleAnalysis())
	NewPrinter(&second).PrintAnalysis(sampleAnalysis())

	assert.Equal(t, first.String(), second.String())
}
