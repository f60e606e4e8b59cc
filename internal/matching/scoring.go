package matching

import (
	"math"

	"github.com/jonathan/ats-matcher/internal/types"
)

// ScoringConfig names every calibration constant of the overall score. The
// defaults are empirically tuned to mimic the score distributions of
// commercial ATS tools; they are a tuning surface, not physical constants,
// but changing them changes every score the engine produces.
type ScoringConfig struct {
	// BaseScore is the additive floor applied before clamping.
	BaseScore float64 `json:"base_score" validate:"gte=0,lte=100"`
	// Scale multiplies the summed components before the floor is added.
	Scale float64 `json:"scale" validate:"gt=0,lte=2"`

	// ExactWeight caps the exact-match component.
	ExactWeight float64 `json:"exact_weight" validate:"gte=0"`
	// ExactSlope steepens the sigmoid transition between weak and strong
	// matches; higher values make the threshold sharper.
	ExactSlope float64 `json:"exact_slope" validate:"gt=0"`
	// ExactMidpoint is the raw match ratio at the sigmoid's center.
	ExactMidpoint float64 `json:"exact_midpoint" validate:"gte=0,lte=1"`

	// SectionWeight caps the core-section coverage component.
	SectionWeight float64 `json:"section_weight" validate:"gte=0"`

	// SemanticPerMatch is the credit for each taxonomy-backed match,
	// capped at SemanticCap.
	SemanticPerMatch float64 `json:"semantic_per_match" validate:"gte=0"`
	SemanticCap      float64 `json:"semantic_cap" validate:"gte=0"`

	// DensityTarget is the keyword density (percent) granting the full
	// DensityWeight; beyond it the over-stuffing penalty ramps over
	// DensityPenaltySpan points of density, capped at DensityPenaltyCap.
	DensityTarget      float64 `json:"density_target" validate:"gt=0"`
	DensityWeight      float64 `json:"density_weight" validate:"gte=0"`
	DensityPenaltySpan float64 `json:"density_penalty_span" validate:"gt=0"`
	DensityPenaltyCap  float64 `json:"density_penalty_cap" validate:"gte=0"`

	// HighValuePerMatch rewards exact hits on the top-ranked matches,
	// capped at HighValueCap.
	HighValuePerMatch float64 `json:"high_value_per_match" validate:"gte=0"`
	HighValueCap      float64 `json:"high_value_cap" validate:"gte=0"`
}

// DefaultScoringConfig returns the behavior-parity calibration values.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		BaseScore:          30,
		Scale:              0.8,
		ExactWeight:        55,
		ExactSlope:         12,
		ExactMidpoint:      0.4,
		SectionWeight:      12,
		SemanticPerMatch:   1.8,
		SemanticCap:        18,
		DensityTarget:      5.0,
		DensityWeight:      10,
		DensityPenaltySpan: 7,
		DensityPenaltyCap:  8,
		HighValuePerMatch:  1.5,
		HighValueCap:       5,
	}
}

// coreSections are the resume sections whose presence feeds the section
// component of the calibrated score.
var coreSections = []string{"experience", "skills", "education", "summary"}

// highValueWindow is how many of the top matching keywords count as
// high-value when computing the exact-hit bonus.
const highValueWindow = 5

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// CalibrateScore maps raw match statistics onto the final 0-100 score. The
// sigmoid over the raw match ratio produces a steep transition centered on
// ExactMidpoint so mediocre matches score low and strong matches score
// disproportionately high, mirroring the threshold behavior of real ATS
// tools.
func CalibrateScore(result *Result, sectionScores map[string]float64, cfg ScoringConfig) float64 {
	if result == nil || result.TotalJobKeywords == 0 {
		return 0
	}

	rawRatio := result.WeightedMatchScore / (float64(result.TotalJobKeywords) * 2)
	exactComponent := sigmoid(cfg.ExactSlope*(rawRatio-cfg.ExactMidpoint)) * cfg.ExactWeight

	covered := 0
	for _, section := range coreSections {
		if sectionScores[section] > 0 {
			covered++
		}
	}
	sectionComponent := float64(covered) / float64(len(coreSections)) * cfg.SectionWeight

	semanticComponent := math.Min(float64(len(result.Semantic))*cfg.SemanticPerMatch, cfg.SemanticCap)

	density := result.KeywordDensity
	var densityComponent float64
	if density <= cfg.DensityTarget {
		densityComponent = density / cfg.DensityTarget * cfg.DensityWeight
	} else {
		penalty := math.Min((density-cfg.DensityTarget)/cfg.DensityPenaltySpan*cfg.DensityWeight, cfg.DensityPenaltyCap)
		densityComponent = cfg.DensityWeight - penalty
	}

	highValue := 0
	window := highValueWindow
	if len(result.TopMatching) < window {
		window = len(result.TopMatching)
	}
	for _, keyword := range result.TopMatching[:window] {
		if _, ok := result.Exact[keyword]; ok {
			highValue++
		}
	}
	highValueBonus := math.Min(float64(highValue)*cfg.HighValuePerMatch, cfg.HighValueCap)

	score := cfg.BaseScore + (exactComponent+sectionComponent+semanticComponent+densityComponent+highValueBonus)*cfg.Scale
	return clamp(score, 0, 100)
}

// DetectConfidence grades how much signal backed the score: too few job
// keywords means low no matter what, a high exact-match ratio means high,
// and a majority of combined coverage means medium.
func DetectConfidence(result *Result) types.Confidence {
	if result == nil || result.TotalJobKeywords < 5 {
		return types.ConfidenceLow
	}

	total := float64(result.TotalJobKeywords)
	exactRatio := float64(len(result.Exact)) / total
	if exactRatio > 0.7 {
		return types.ConfidenceHigh
	}
	combinedRatio := float64(len(result.Exact)+len(result.Semantic)) / total
	if combinedRatio > 0.5 {
		return types.ConfidenceMedium
	}
	return types.ConfidenceLow
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
