package analysis

import (
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// Scoring rule constants. The minimum achievable base score is scoreBase; the
// maximum is capped at scoreMax.
const (
	scoreBase            = 35
	scorePerCategory     = 5
	scoreCategoryCap     = 30
	scoreCompanyBonus    = 10
	scoreRoleBonus       = 10
	scoreLongJDBonus     = 10
	scoreLongJDThreshold = 800
	scoreMax             = 100

	// confidenceStep is the per-skill adjustment applied during live
	// rescoring: +2 for a known skill, -2 for one still being practiced.
	confidenceStep = 2
)

// CalcReadinessScore computes the 0-100 base readiness score from the analysis
// inputs. Purely a function of its arguments: no hidden state, deterministic,
// idempotent under repeated calls.
func CalcReadinessScore(company, role, jdText string, skills []types.SkillCategory) int {
	score := scoreBase

	categoryCount := 0
	for _, cat := range skills {
		if cat.Name != CategoryGeneral {
			categoryCount++
		}
	}
	score += min(categoryCount*scorePerCategory, scoreCategoryCap)

	if strings.TrimSpace(company) != "" {
		score += scoreCompanyBonus
	}
	if strings.TrimSpace(role) != "" {
		score += scoreRoleBonus
	}
	if len(jdText) > scoreLongJDThreshold {
		score += scoreLongJDBonus
	}

	return min(score, scoreMax)
}

// RecomputeFinalScore applies the per-skill confidence adjustments to the base
// score: +2 for each skill marked "know", -2 for each skill marked or
// defaulting to "practice", clamped to 0-100. Runs in O(number of skills) so it
// is cheap enough to call synchronously on every toggle.
func RecomputeFinalScore(baseScore int, skills []types.SkillCategory, confidence map[string]types.ConfidenceLevel) int {
	score := baseScore
	for _, cat := range skills {
		for _, skill := range cat.Skills {
			if confidence[skill] == types.ConfidenceKnow {
				score += confidenceStep
			} else {
				score -= confidenceStep
			}
		}
	}
	return clamp(score, 0, scoreMax)
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
