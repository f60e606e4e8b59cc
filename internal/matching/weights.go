package matching

import (
	"github.com/jonathan/ats-matcher/internal/types"
)

// defaultSectionWeights is the baseline importance of each resume section
// when scoring it against the job's keywords. Read-only; WeightsFor hands
// every call its own copy.
var defaultSectionWeights = map[string]float64{
	"contact_info":   0.3,
	"summary":        1.2,
	"experience":     1.5,
	"education":      1.0,
	"skills":         1.8,
	"projects":       1.3,
	"certifications": 1.1,
	"achievements":   1.0,
	"languages":      0.6,
	"interests":      0.3,
	"references":     0.2,
	"publications":   0.8,
	"additional":     0.5,
}

// jobTypeWeightOverlays adjusts specific section weights per detected job
// type; entries not listed keep their default.
var jobTypeWeightOverlays = map[types.JobType]map[string]float64{
	types.JobTypeTechnical: {
		"skills":         2.0,
		"projects":       1.5,
		"certifications": 1.3,
	},
	types.JobTypeManagement: {
		"experience":   1.8,
		"achievements": 1.4,
		"summary":      1.4,
	},
	types.JobTypeAcademic: {
		"education":    1.8,
		"publications": 1.6,
		"achievements": 1.2,
	},
	types.JobTypeEntryLevel: {
		"education": 1.6,
		"projects":  1.5,
		"skills":    1.5,
	},
}

// WeightsFor returns the section-weight table adjusted for the job type.
// The result is a fresh copy on every call so concurrent analyses can never
// observe each other's adjustments.
func WeightsFor(jobType types.JobType) map[string]float64 {
	weights := make(map[string]float64, len(defaultSectionWeights))
	for section, weight := range defaultSectionWeights {
		weights[section] = weight
	}
	for section, weight := range jobTypeWeightOverlays[jobType] {
		weights[section] = weight
	}
	return weights
}
