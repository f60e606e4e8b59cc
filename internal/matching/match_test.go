package matching

import (
	"testing"

	"github.com/jonathan/ats-matcher/internal/jobdesc"
	"github.com/jonathan/ats-matcher/internal/sections"
	"github.com/jonathan/ats-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elementsWithKeywords(keywords map[string]float64) *jobdesc.Elements {
	return &jobdesc.Elements{
		Requirements:     []string{},
		Responsibilities: []string{},
		Sections:         map[string]string{},
		Keywords:         keywords,
	}
}

func TestMatch_ExactMatches(t *testing.T) {
	jd := elementsWithKeywords(map[string]float64{
		"python": 3.0,
		"django": 2.0,
		"golang": 1.0,
	})
	resumeNgrams := map[string]int{"python": 2, "django": 1}

	result := Match(resumeNgrams, 50, jd)

	require.Contains(t, result.Exact, "python")
	assert.Equal(t, 2, result.Exact["python"].Frequency)
	assert.InDelta(t, 3.0, result.Exact["python"].Weight, 0.001)
	assert.NotContains(t, result.Exact, "golang")
	assert.InDelta(t, 5.0, result.WeightedMatchScore, 0.001)
	assert.InDelta(t, 2.0, result.MatchedJobKeywords, 0.001)
}

func TestMatch_SemanticViaSiblingSkill(t *testing.T) {
	// "javascript" is a web_development skill; the resume mentions react,
	// a sibling in the same category.
	jd := elementsWithKeywords(map[string]float64{"javascript": 2.0})
	resumeNgrams := map[string]int{"react": 1, "redux": 1, "proficient": 1}

	result := Match(resumeNgrams, 10, jd)

	require.Contains(t, result.Semantic, "javascript")
	match := result.Semantic["javascript"]
	assert.Equal(t, "react", match.MatchedWith)
	assert.InDelta(t, 2.0*creditSiblingSkill, match.Weight, 0.001)
	assert.Equal(t, types.ConfidenceMedium, match.Confidence)
	assert.Contains(t, result.TopMatching, "javascript")
}

func TestMatch_SemanticViaCategorySkills(t *testing.T) {
	// "python" is itself a taxonomy category; the resume mentions django.
	jd := elementsWithKeywords(map[string]float64{"python": 2.0})
	resumeNgrams := map[string]int{"django": 1}

	result := Match(resumeNgrams, 10, jd)

	require.Contains(t, result.Semantic, "python")
	match := result.Semantic["python"]
	assert.Equal(t, "django", match.MatchedWith)
	assert.Equal(t, types.ConfidenceHigh, match.Confidence)
	assert.InDelta(t, creditCategorySkills, result.MatchedJobKeywords, 0.001)
}

func TestMatch_ExactWinsOverSemantic(t *testing.T) {
	jd := elementsWithKeywords(map[string]float64{"python": 2.0})
	resumeNgrams := map[string]int{"python": 1, "django": 3}

	result := Match(resumeNgrams, 10, jd)

	assert.Contains(t, result.Exact, "python")
	assert.NotContains(t, result.Semantic, "python")
}

func TestMatch_KeywordDensity(t *testing.T) {
	jd := elementsWithKeywords(map[string]float64{"python": 1.0})
	resumeNgrams := map[string]int{"python": 3}

	result := Match(resumeNgrams, 100, jd)

	assert.InDelta(t, 3.0, result.KeywordDensity, 0.001)
}

func TestMatch_ZeroTokenResume(t *testing.T) {
	jd := elementsWithKeywords(map[string]float64{"python": 1.0})

	result := Match(map[string]int{}, 0, jd)

	assert.Zero(t, result.KeywordDensity)
	assert.Empty(t, result.TopMatching)
	assert.Equal(t, []string{"python"}, result.TopMissing)
}

func TestMatch_TopListsAreDisjointAndRanked(t *testing.T) {
	jd := elementsWithKeywords(map[string]float64{
		"python":     5.0,
		"django":     3.0,
		"kubernetes": 4.0,
		"terraform":  2.0,
	})
	resumeNgrams := map[string]int{"python": 1, "django": 1}

	result := Match(resumeNgrams, 40, jd)

	assert.Equal(t, []string{"python", "django"}, result.TopMatching)
	assert.Equal(t, []string{"kubernetes", "terraform"}, result.TopMissing)
	for _, keyword := range result.TopMatching {
		assert.NotContains(t, result.TopMissing, keyword)
	}
}

func TestMatch_EveryKeywordClassifiedExactlyOnce(t *testing.T) {
	jd := elementsWithKeywords(map[string]float64{
		"python":     2.0,
		"django":     1.5,
		"javascript": 1.2,
		"kubernetes": 1.0,
		"terraform":  0.8,
		"graphql":    0.5,
	})
	resumeNgrams := map[string]int{"python": 2, "django": 1, "react": 1}

	result := Match(resumeNgrams, 60, jd)

	for keyword := range jd.Keywords {
		memberships := 0
		if _, ok := result.Exact[keyword]; ok {
			memberships++
		}
		if _, ok := result.Semantic[keyword]; ok {
			memberships++
		}
		for _, missing := range result.TopMissing {
			if missing == keyword {
				memberships++
				break
			}
		}
		assert.Equal(t, 1, memberships, "keyword %q", keyword)
	}
}

func TestMatch_Deterministic(t *testing.T) {
	jd := elementsWithKeywords(map[string]float64{
		"python": 1.1, "django": 1.2, "flask": 1.3, "aws": 1.4,
		"docker": 1.5, "kubernetes": 1.6, "terraform": 1.7,
	})
	resumeNgrams := map[string]int{"python": 2, "flask": 1, "docker": 4}

	first := Match(resumeNgrams, 80, jd)
	second := Match(resumeNgrams, 80, jd)

	assert.Equal(t, first, second)
}

func TestSectionScores_MatchesAndWeights(t *testing.T) {
	jd := elementsWithKeywords(map[string]float64{
		"python":           1.0,
		"machine learning": 1.0,
	})
	sectionMap := sections.Map{
		"skills":         "Python, SQL",
		"summary":        "Machine learning practitioner",
		"references":     "Available on request",
		sections.Unknown: "python python python",
	}

	scores := SectionScores(sectionMap, jd, types.JobTypeDefault)

	assert.NotContains(t, scores, sections.Unknown)
	// skills: python matched, half the keywords, weighted 1.8
	assert.InDelta(t, 50.0*1.8, scores["skills"], 0.001)
	// summary: multi-word keyword matched via substring on joined tokens
	assert.InDelta(t, 50.0*1.2, scores["summary"], 0.001)
	assert.Zero(t, scores["references"])
}

func TestSectionScores_CappedAt100(t *testing.T) {
	jd := elementsWithKeywords(map[string]float64{"python": 1.0})
	sectionMap := sections.Map{"skills": "python"}

	scores := SectionScores(sectionMap, jd, types.JobTypeTechnical)

	// 100% of keyword weight * 2.0 technical skills weight, capped
	assert.InDelta(t, 100.0, scores["skills"], 0.001)
}

func TestSectionScores_JobTypeOverlay(t *testing.T) {
	jd := elementsWithKeywords(map[string]float64{"python": 1.0, "golang": 1.0})
	sectionMap := sections.Map{"skills": "python"}

	defaultScore := SectionScores(sectionMap, jd, types.JobTypeDefault)["skills"]
	technicalScore := SectionScores(sectionMap, jd, types.JobTypeTechnical)["skills"]

	assert.Greater(t, technicalScore, defaultScore)
}

func TestWeightsFor_ReturnsFreshCopy(t *testing.T) {
	first := WeightsFor(types.JobTypeTechnical)
	first["skills"] = 99

	second := WeightsFor(types.JobTypeTechnical)

	assert.InDelta(t, 2.0, second["skills"], 0.001)
	assert.InDelta(t, 1.8, WeightsFor(types.JobTypeDefault)["skills"], 0.001)
}
