// Package types provides type definitions for structured data used throughout the ats-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Confidence expresses how much signal backed an analysis score.
type Confidence string

// Confidence levels, ordered low to high.
const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// JobType classifies a job description for section-weight adjustment.
type JobType string

// Recognized job types. JobTypeUnknown is reserved for the degenerate
// empty-input result and is never produced by detection.
const (
	JobTypeTechnical  JobType = "technical"
	JobTypeManagement JobType = "management"
	JobTypeAcademic   JobType = "academic"
	JobTypeEntryLevel JobType = "entry_level"
	JobTypeDefault    JobType = "default"
	JobTypeUnknown    JobType = "unknown"
)

// Suggestion is a single actionable improvement derived from an analysis.
type Suggestion struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AnalysisResult is the complete outcome of matching one resume against one
// job description. It is produced fresh per call and never mutated afterward.
type AnalysisResult struct {
	Score            float64            `json:"score"`
	Confidence       Confidence         `json:"confidence"`
	MatchingKeywords []string           `json:"matching_keywords"`
	MissingKeywords  []string           `json:"missing_keywords"`
	SectionScores    map[string]float64 `json:"section_scores"`
	JobType          JobType            `json:"job_type"`
	KeywordDensity   float64            `json:"keyword_density"`
	Suggestions      []Suggestion       `json:"suggestions"`
}

// EmptyResult returns the sentinel produced for empty or unanalyzable input.
// Callers can treat it like any other result; nothing is nil.
func EmptyResult() AnalysisResult {
	return AnalysisResult{
		Score:            0,
		Confidence:       ConfidenceLow,
		MatchingKeywords: []string{},
		MissingKeywords:  []string{},
		SectionScores:    map[string]float64{},
		JobType:          JobTypeUnknown,
		KeywordDensity:   0,
		Suggestions:      []Suggestion{},
	}
}
