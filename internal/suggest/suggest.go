// Package suggest turns match statistics into human-readable improvement
// suggestions.
package suggest

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-matcher/internal/jobdesc"
	"github.com/jonathan/ats-matcher/internal/matching"
	"github.com/jonathan/ats-matcher/internal/sections"
	"github.com/jonathan/ats-matcher/internal/textnorm"
	"github.com/jonathan/ats-matcher/internal/types"
)

const (
	maxSuggestions      = 5
	maxMissingListed    = 5
	maxRequirementsScan = 5

	weakSectionThreshold = 50.0
	lowDensityThreshold  = 3.0
	highDensityThreshold = 7.0

	// requirement coverage counts only tokens long enough to be meaningful
	minOverlapTokenLen = 4
)

// Suggestion type labels.
const (
	TypeKeywords      = "keywords"
	TypeSection       = "section"
	TypeDensity       = "density"
	TypeQualification = "qualification"
)

// weakSectionPriority fixes which sections rule 2 inspects, in order.
var weakSectionPriority = []string{"experience", "skills", "education"}

// Generate derives at most five suggestions from a match result. Rules are
// applied in a fixed order (missing keywords, weak core sections, keyword
// density, uncovered requirements), each contributing until the cap is hit.
func Generate(result *matching.Result, sectionScores map[string]float64, sectionMap sections.Map, jd *jobdesc.Elements) []types.Suggestion {
	suggestions := []types.Suggestion{}

	if len(result.TopMissing) > 0 {
		listed := result.TopMissing
		if len(listed) > maxMissingListed {
			listed = listed[:maxMissingListed]
		}
		suggestions = append(suggestions, types.Suggestion{
			Type:    TypeKeywords,
			Title:   "Add missing keywords",
			Content: fmt.Sprintf("The job description emphasizes terms your resume never mentions. Consider working in: %s.", strings.Join(listed, ", ")),
		})
	}

	for _, section := range weakSectionPriority {
		if len(suggestions) >= maxSuggestions {
			return suggestions
		}
		if sectionScores[section] < weakSectionThreshold {
			suggestions = append(suggestions, types.Suggestion{
				Type:    TypeSection,
				Title:   fmt.Sprintf("Strengthen your %s section", section),
				Content: fmt.Sprintf("Your %s section covers little of what this job asks for. Mirror the job description's language when describing relevant %s.", section, section),
			})
		}
	}

	if len(suggestions) < maxSuggestions {
		switch {
		case result.KeywordDensity < lowDensityThreshold:
			suggestions = append(suggestions, types.Suggestion{
				Type:    TypeDensity,
				Title:   "Increase keyword density",
				Content: fmt.Sprintf("Matched keywords make up only %.1f%% of your resume. Use the job's key terms more often where they genuinely apply.", result.KeywordDensity),
			})
		case result.KeywordDensity > highDensityThreshold:
			suggestions = append(suggestions, types.Suggestion{
				Type:    TypeDensity,
				Title:   "Reduce keyword stuffing",
				Content: fmt.Sprintf("Matched keywords make up %.1f%% of your resume, which screeners flag as stuffing. Replace repetition with concrete accomplishments.", result.KeywordDensity),
			})
		}
	}

	if len(suggestions) < maxSuggestions {
		if uncovered, ok := firstUncoveredRequirement(jd.Requirements, sectionMap); ok {
			suggestions = append(suggestions, types.Suggestion{
				Type:    TypeQualification,
				Title:   "Address an unmet requirement",
				Content: fmt.Sprintf("Nothing in your resume speaks to this requirement: %q. Add evidence for it, or a closely related accomplishment.", uncovered),
			})
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// firstUncoveredRequirement scans the leading job requirements for one with
// no meaningful token overlap anywhere in the resume.
func firstUncoveredRequirement(requirements []string, sectionMap sections.Map) (string, bool) {
	if len(requirements) == 0 {
		return "", false
	}

	resumeTokens := map[string]struct{}{}
	for _, content := range sectionMap {
		for _, token := range textnorm.Tokenize(content) {
			if len(token) >= minOverlapTokenLen {
				resumeTokens[token] = struct{}{}
			}
		}
	}

	limit := maxRequirementsScan
	if len(requirements) < limit {
		limit = len(requirements)
	}
	for _, requirement := range requirements[:limit] {
		covered := false
		for _, token := range textnorm.Normalize(requirement) {
			if len(token) < minOverlapTokenLen {
				continue
			}
			if _, ok := resumeTokens[token]; ok {
				covered = true
				break
			}
		}
		if !covered {
			return requirement, true
		}
	}
	return "", false
}
