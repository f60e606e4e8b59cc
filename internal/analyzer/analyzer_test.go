package analyzer

import (
	"strings"
	"testing"

	"github.com/jonathan/ats-matcher/internal/matching"
	"github.com/jonathan/ats-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
john.smith@example.com

## Summary
Backend developer focused on API development and cloud services.

## Experience
- Built REST APIs in Python using Django and Flask
- Deployed workloads to AWS with Docker
- Maintained CI/CD pipelines in Jenkins

## Skills
Python, Django, Flask, AWS, Docker, CI/CD, PostgreSQL

## Education
BSc Computer Science, State University, 2018`

const sampleJob = `Python Developer

## Requirements
- 3+ years Python and Django experience
- AWS services
- RESTful API development`

func TestAnalyze_SampleScenario(t *testing.T) {
	result := Analyze(sampleResume, sampleJob)

	assert.Contains(t, result.MatchingKeywords, "python")
	assert.Contains(t, result.MatchingKeywords, "django")
	assert.Greater(t, result.Score, 50.0)
	assert.Equal(t, types.JobTypeTechnical, result.JobType)
}

func TestAnalyze_SemanticMatchThroughTaxonomy(t *testing.T) {
	result := Analyze("I am proficient in React and Redux.", "Requires JavaScript experience.")

	assert.Contains(t, result.MatchingKeywords, "javascript")
}

func TestAnalyze_SectionScoresPopulated(t *testing.T) {
	result := Analyze(sampleResume, sampleJob)

	require.Contains(t, result.SectionScores, "skills")
	require.Contains(t, result.SectionScores, "experience")
	assert.Greater(t, result.SectionScores["skills"], 0.0)
}

func TestAnalyze_EmptyInputLaw(t *testing.T) {
	for _, pair := range [][2]string{{"", ""}, {sampleResume, ""}, {"", sampleJob}} {
		result := Analyze(pair[0], pair[1])

		assert.Zero(t, result.Score)
		assert.Equal(t, types.ConfidenceLow, result.Confidence)
		assert.Empty(t, result.MatchingKeywords)
		assert.Empty(t, result.MissingKeywords)
		assert.Empty(t, result.SectionScores)
		assert.Equal(t, types.JobTypeUnknown, result.JobType)
		assert.Zero(t, result.KeywordDensity)
		assert.Empty(t, result.Suggestions)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	first := Analyze(sampleResume, sampleJob)
	second := Analyze(sampleResume, sampleJob)

	assert.Equal(t, first, second)
}

func TestAnalyze_RangeInvariant(t *testing.T) {
	inputs := []string{sampleResume, "short", strings.Repeat("python django aws ", 400), "!!! ??? ###"}
	for _, resume := range inputs {
		result := Analyze(resume, sampleJob)

		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 100.0)
		for section, score := range result.SectionScores {
			assert.GreaterOrEqual(t, score, 0.0, "section %s", section)
			assert.LessOrEqual(t, score, 100.0, "section %s", section)
		}
	}
}

func TestAnalyze_MonotonicUnderKeywordSuperset(t *testing.T) {
	weaker := `## Experience
- Shipped internal tooling

## Skills
Python`
	stronger := weaker + "\nDjango, AWS, RESTful API development"

	job := sampleJob

	weakScore := Analyze(weaker, job).Score
	strongScore := Analyze(stronger, job).Score

	assert.GreaterOrEqual(t, strongScore, weakScore)
}

func TestAnalyze_MatchedAndMissingDisjoint(t *testing.T) {
	result := Analyze(sampleResume, sampleJob)

	for _, keyword := range result.MatchingKeywords {
		assert.NotContains(t, result.MissingKeywords, keyword)
	}
}

func TestAnalyze_ConfidenceNeverHighOnTinyJob(t *testing.T) {
	result := Analyze(sampleResume, "Python")

	assert.NotEqual(t, types.ConfidenceHigh, result.Confidence)
}

func TestAnalyze_SuggestionsCapped(t *testing.T) {
	result := Analyze("unrelated plumbing credentials", sampleJob)

	assert.NotEmpty(t, result.Suggestions)
	assert.LessOrEqual(t, len(result.Suggestions), 5)
}

func TestAnalyzeWithConfig_BaseScoreShiftsOutput(t *testing.T) {
	defaultResult := Analyze(sampleResume, sampleJob)

	cfg := matching.DefaultScoringConfig()
	cfg.BaseScore = 0
	custom := AnalyzeWithConfig(sampleResume, sampleJob, cfg)

	assert.Less(t, custom.Score, defaultResult.Score)
}
