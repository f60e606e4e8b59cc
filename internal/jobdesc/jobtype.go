package jobdesc

import (
	"strings"

	"github.com/jonathan/ats-matcher/internal/types"
)

// jobTypeIndicators maps each detectable job type to the words that signal
// it. Priority on tied counts follows the order of jobTypePriority.
var jobTypeIndicators = map[types.JobType][]string{
	types.JobTypeTechnical: {
		"developer", "engineer", "programming", "software", "technical",
		"architecture", "debugging", "coding", "backend", "frontend",
		"devops", "infrastructure",
	},
	types.JobTypeManagement: {
		"manager", "director", "leadership", "strategy", "management",
		"stakeholder", "supervise", "executive", "head of",
	},
	types.JobTypeAcademic: {
		"research", "professor", "phd", "academic", "publication",
		"teaching", "faculty", "lecturer", "scientific",
	},
	types.JobTypeEntryLevel: {
		"intern", "internship", "junior", "entry level", "entry-level",
		"graduate", "trainee", "no experience",
	},
}

var jobTypePriority = []types.JobType{
	types.JobTypeTechnical,
	types.JobTypeManagement,
	types.JobTypeAcademic,
	types.JobTypeEntryLevel,
}

// DetectJobType classifies a job description by counting indicator words.
// The type with the most hits wins; ties break in priority order; a text
// with no hits at all is JobTypeDefault.
func DetectJobType(text string) types.JobType {
	lower := strings.ToLower(text)

	best := types.JobTypeDefault
	bestCount := 0
	for _, jobType := range jobTypePriority {
		count := 0
		for _, indicator := range jobTypeIndicators[jobType] {
			count += strings.Count(lower, indicator)
		}
		if count > bestCount {
			best = jobType
			bestCount = count
		}
	}
	return best
}
