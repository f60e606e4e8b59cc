// Package analyzer is the public entry point: it wires the normalizer,
// section detector, job description processor, matcher, and suggestion
// generator into a single resume-vs-job analysis.
package analyzer

import (
	"log"
	"math"
	"strings"

	"github.com/jonathan/ats-matcher/internal/jobdesc"
	"github.com/jonathan/ats-matcher/internal/matching"
	"github.com/jonathan/ats-matcher/internal/ngram"
	"github.com/jonathan/ats-matcher/internal/sections"
	"github.com/jonathan/ats-matcher/internal/suggest"
	"github.com/jonathan/ats-matcher/internal/textnorm"
	"github.com/jonathan/ats-matcher/internal/types"
)

// Analyze scores a resume against a job description using the default
// calibration. It never returns an error and never panics: empty input and
// any unexpected internal failure both degrade to the zero-score sentinel.
func Analyze(resumeText, jobText string) types.AnalysisResult {
	return AnalyzeWithConfig(resumeText, jobText, matching.DefaultScoringConfig())
}

// AnalyzeWithConfig is Analyze with a caller-supplied scoring calibration.
func AnalyzeWithConfig(resumeText, jobText string, cfg matching.ScoringConfig) (result types.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			// Availability over fail-fast: callers get the sentinel,
			// diagnostics go to the log.
			log.Printf("analyzer: recovered from internal failure: %v", r)
			result = types.EmptyResult()
		}
	}()

	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return types.EmptyResult()
	}

	jdElements := jobdesc.Process(jobText)
	jobType := jobdesc.DetectJobType(jobText)

	sectionMap := sections.Detect(resumeText)
	resumeNgrams := ngram.Extract(resumeText, ngram.DefaultMaxN)
	resumeTokenCount := len(textnorm.Tokenize(resumeText))

	matchResult := matching.Match(resumeNgrams, resumeTokenCount, jdElements)
	sectionScores := matching.SectionScores(sectionMap, jdElements, jobType)
	score := matching.CalibrateScore(matchResult, sectionScores, cfg)

	return types.AnalysisResult{
		Score:            round2(score),
		Confidence:       matching.DetectConfidence(matchResult),
		MatchingKeywords: matchResult.TopMatching,
		MissingKeywords:  matchResult.TopMissing,
		SectionScores:    roundScores(sectionScores),
		JobType:          jobType,
		KeywordDensity:   round2(matchResult.KeywordDensity),
		Suggestions:      suggest.Generate(matchResult, sectionScores, sectionMap, jdElements),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundScores(scores map[string]float64) map[string]float64 {
	rounded := make(map[string]float64, len(scores))
	for section, score := range scores {
		rounded[section] = round2(score)
	}
	return rounded
}
