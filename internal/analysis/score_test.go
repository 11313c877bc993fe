package analysis

import (
	"strings"
	"testing"

	"github.com/jonathan/placement-prep/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCalcReadinessScore_EmptyEverythingIsBase(t *testing.T) {
	skills := ExtractSkills("")
	score := CalcReadinessScore("", "", "", skills)

	assert.Equal(t, 35, score)
}

func TestCalcReadinessScore_FallbackCategoryDoesNotCount(t *testing.T) {
	skills := []types.SkillCategory{
		{Name: CategoryGeneral, Skills: []string{"General fresher stack"}},
	}

	assert.Equal(t, 35, CalcReadinessScore("", "", "", skills))
}

func TestCalcReadinessScore_CategoryBonusIsCapped(t *testing.T) {
	// Seven non-fallback categories would be 35 points; the cap holds it at 30.
	skills := []types.SkillCategory{
		{Name: CategoryCoreCS, Skills: []string{"DSA"}},
		{Name: CategoryLang, Skills: []string{"Java"}},
		{Name: CategoryWeb, Skills: []string{"React"}},
		{Name: CategoryData, Skills: []string{"SQL"}},
		{Name: CategoryCloud, Skills: []string{"AWS"}},
		{Name: CategoryTesting, Skills: []string{"Selenium"}},
		{Name: "Extra", Skills: []string{"X"}},
	}

	assert.Equal(t, 35+30, CalcReadinessScore("", "", "", skills))
}

func TestCalcReadinessScore_AllBonuses(t *testing.T) {
	skills := []types.SkillCategory{
		{Name: CategoryCoreCS, Skills: []string{"DSA"}},
		{Name: CategoryWeb, Skills: []string{"React"}},
	}
	longJD := strings.Repeat("a", 801)

	score := CalcReadinessScore("Acme", "SDE", longJD, skills)
	assert.Equal(t, 35+10+10+10+10, score)
}

func TestCalcReadinessScore_WhitespaceCompanyAndRoleEarnNoBonus(t *testing.T) {
	skills := ExtractSkills("")

	assert.Equal(t, 35, CalcReadinessScore("   ", "\t", "", skills))
}

func TestCalcReadinessScore_JDLengthBoundary(t *testing.T) {
	skills := ExtractSkills("")

	assert.Equal(t, 35, CalcReadinessScore("", "", strings.Repeat("a", 800), skills))
	assert.Equal(t, 45, CalcReadinessScore("", "", strings.Repeat("a", 801), skills))
}

func TestRecomputeFinalScore_MixedConfidence(t *testing.T) {
	skills := []types.SkillCategory{
		{Name: CategoryLang, Skills: []string{"Java", "Python"}},
	}
	confidence := map[string]types.ConfidenceLevel{
		"Java": types.ConfidenceKnow,
	}

	// +2 for Java, -2 for Python defaulting to practice.
	assert.Equal(t, 50, RecomputeFinalScore(50, skills, confidence))
}

func TestRecomputeFinalScore_AllKnown(t *testing.T) {
	skills := []types.SkillCategory{
		{Name: CategoryLang, Skills: []string{"Java", "Python"}},
	}
	confidence := map[string]types.ConfidenceLevel{
		"Java":   types.ConfidenceKnow,
		"Python": types.ConfidenceKnow,
	}

	assert.Equal(t, 54, RecomputeFinalScore(50, skills, confidence))
}

func TestRecomputeFinalScore_ClampsToLowerBound(t *testing.T) {
	skills := []types.SkillCategory{
		{Name: CategoryLang, Skills: []string{"A", "B", "C"}},
	}

	assert.Equal(t, 0, RecomputeFinalScore(3, skills, nil))
}

func TestRecomputeFinalScore_ClampsToUpperBound(t *testing.T) {
	skills := []types.SkillCategory{
		{Name: CategoryLang, Skills: []string{"A", "B"}},
	}
	confidence := map[string]types.ConfidenceLevel{
		"A": types.ConfidenceKnow,
		"B": types.ConfidenceKnow,
	}

	assert.Equal(t, 100, RecomputeFinalScore(99, skills, confidence))
}

func TestRecomputeFinalScore_NilConfidenceMapTreatsAllAsPractice(t *testing.T) {
	skills := []types.SkillCategory{
		{Name: CategoryLang, Skills: []string{"Java"}},
	}

	assert.Equal(t, 48, RecomputeFinalScore(50, skills, nil))
}
