// Package matching combines resume structure, n-gram tables, and weighted
// job keywords into match statistics and the calibrated overall score.
package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-matcher/internal/jobdesc"
	"github.com/jonathan/ats-matcher/internal/sections"
	"github.com/jonathan/ats-matcher/internal/taxonomy"
	"github.com/jonathan/ats-matcher/internal/textnorm"
	"github.com/jonathan/ats-matcher/internal/types"
)

// Semantic-match credit multipliers. The credit both scales the recorded
// match weight and counts fractionally toward matched_job_keywords.
const (
	creditCategoryName   = 0.8  // resume mentions the category the keyword belongs to
	creditSiblingSkill   = 0.7  // resume mentions a sibling skill of the keyword
	creditCategorySkills = 0.85 // keyword is itself a category and the resume has one of its skills
)

// topKeywordCount bounds the matched/missing keyword lists.
const topKeywordCount = 15

// ExactMatch records one verbatim keyword hit.
type ExactMatch struct {
	Weight    float64
	Frequency int
}

// SemanticMatch records a keyword satisfied through the skill taxonomy
// rather than literal text.
type SemanticMatch struct {
	MatchedWith string
	Weight      float64
	Confidence  types.Confidence
}

// Result carries every intermediate match statistic the scorer and the
// suggestion generator consume. Internal to one analyze call.
type Result struct {
	Exact              map[string]ExactMatch
	Semantic           map[string]SemanticMatch
	TotalJobKeywords   int
	MatchedJobKeywords float64
	WeightedMatchScore float64
	KeywordDensity     float64
	TopMatching        []string
	TopMissing         []string
}

// Match computes exact and semantic keyword matches between a resume's
// n-gram table and a job description's weighted keywords, plus keyword
// density and the ranked matched/missing lists. Keywords are visited in
// sorted order so repeated calls accumulate floats identically.
func Match(resumeNgrams map[string]int, resumeTokenCount int, jd *jobdesc.Elements) *Result {
	result := &Result{
		Exact:            map[string]ExactMatch{},
		Semantic:         map[string]SemanticMatch{},
		TotalJobKeywords: len(jd.Keywords),
		TopMatching:      []string{},
		TopMissing:       []string{},
	}

	keywords := sortedKeys(jd.Keywords)

	for _, keyword := range keywords {
		weight := jd.Keywords[keyword]
		if freq, ok := resumeNgrams[keyword]; ok {
			result.Exact[keyword] = ExactMatch{Weight: weight, Frequency: freq}
			result.WeightedMatchScore += weight
			result.MatchedJobKeywords++
		}
	}

	for _, keyword := range keywords {
		if _, ok := result.Exact[keyword]; ok {
			continue
		}
		if match, credit, ok := semanticLookup(keyword, jd.Keywords[keyword], resumeNgrams); ok {
			result.Semantic[keyword] = match
			result.MatchedJobKeywords += credit
		}
	}

	if resumeTokenCount > 0 {
		occurrences := 0
		for _, match := range result.Exact {
			occurrences += match.Frequency
		}
		result.KeywordDensity = float64(occurrences) / float64(resumeTokenCount) * 100
	}

	result.TopMatching = rankMatched(result)
	result.TopMissing = rankMissing(result, jd.Keywords)

	return result
}

// semanticLookup resolves one job keyword through the taxonomy. Per
// category containing the keyword, the category name itself is checked
// before sibling skills; a keyword that is itself a category falls back to
// that category's skill list. First qualifying match wins.
func semanticLookup(keyword string, weight float64, resumeNgrams map[string]int) (SemanticMatch, float64, bool) {
	for _, category := range taxonomy.CategoriesOf(keyword) {
		if _, ok := resumeNgrams[category]; ok {
			return SemanticMatch{
				MatchedWith: category,
				Weight:      weight * creditCategoryName,
				Confidence:  types.ConfidenceMedium,
			}, creditCategoryName, true
		}
		for _, sibling := range taxonomy.SkillsOf(category) {
			if sibling == keyword {
				continue
			}
			if _, ok := resumeNgrams[sibling]; ok {
				return SemanticMatch{
					MatchedWith: sibling,
					Weight:      weight * creditSiblingSkill,
					Confidence:  types.ConfidenceMedium,
				}, creditSiblingSkill, true
			}
		}
	}

	if taxonomy.IsCategory(keyword) {
		for _, skill := range taxonomy.SkillsOf(keyword) {
			if _, ok := resumeNgrams[skill]; ok {
				return SemanticMatch{
					MatchedWith: skill,
					Weight:      weight * creditCategorySkills,
					Confidence:  types.ConfidenceHigh,
				}, creditCategorySkills, true
			}
		}
	}

	return SemanticMatch{}, 0, false
}

// SectionScores scores every detected resume section against the job's
// keywords, scaled by the job-type-adjusted section weight and capped at
// 100. The unknown bucket is skipped.
func SectionScores(sectionMap sections.Map, jd *jobdesc.Elements, jobType types.JobType) map[string]float64 {
	scores := map[string]float64{}
	if jd.TotalKeywords() == 0 {
		return scores
	}

	weights := WeightsFor(jobType)
	keywords := sortedKeys(jd.Keywords)

	for name, content := range sectionMap {
		if name == sections.Unknown {
			continue
		}

		tokens := textnorm.Tokenize(content)
		joined := strings.Join(tokens, " ")
		tokenSet := make(map[string]struct{}, len(tokens))
		for _, token := range tokens {
			tokenSet[token] = struct{}{}
		}

		matchedWeight := 0.0
		for _, keyword := range keywords {
			if strings.Contains(keyword, " ") {
				if strings.Contains(joined, keyword) {
					matchedWeight += jd.Keywords[keyword]
				}
			} else if _, ok := tokenSet[keyword]; ok {
				matchedWeight += jd.Keywords[keyword]
			}
		}

		score := matchedWeight / float64(jd.TotalKeywords()) * 100 * weights[name]
		scores[name] = clamp(score, 0, 100)
	}
	return scores
}

type rankedKeyword struct {
	keyword string
	key     float64
}

func rankMatched(result *Result) []string {
	ranked := make([]rankedKeyword, 0, len(result.Exact)+len(result.Semantic))
	for keyword, match := range result.Exact {
		ranked = append(ranked, rankedKeyword{keyword, match.Weight * float64(match.Frequency)})
	}
	for keyword, match := range result.Semantic {
		ranked = append(ranked, rankedKeyword{keyword, match.Weight})
	}
	return takeTop(ranked, topKeywordCount)
}

func rankMissing(result *Result, keywords map[string]float64) []string {
	ranked := make([]rankedKeyword, 0, len(keywords))
	for keyword, weight := range keywords {
		if _, ok := result.Exact[keyword]; ok {
			continue
		}
		if _, ok := result.Semantic[keyword]; ok {
			continue
		}
		ranked = append(ranked, rankedKeyword{keyword, weight})
	}
	return takeTop(ranked, topKeywordCount)
}

// takeTop sorts descending by rank key with a lexicographic tie-break so
// output ordering never depends on map iteration.
func takeTop(ranked []rankedKeyword, n int) []string {
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].key != ranked[j].key {
			return ranked[i].key > ranked[j].key
		}
		return ranked[i].keyword < ranked[j].keyword
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	top := make([]string, len(ranked))
	for i, entry := range ranked {
		top[i] = entry.keyword
	}
	return top
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
