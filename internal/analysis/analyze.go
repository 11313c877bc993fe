package analysis

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/placement-prep/internal/types"
)

// Run sequences the extractor, scorer, content generators and company intel
// inferrer exactly once and assembles the immutable creation event. The
// returned entry has a fresh id, CreatedAt == UpdatedAt, BaseScore ==
// FinalScore, and an empty confidence map. No side effects: persistence is the
// caller's responsibility.
func Run(company, role, jdText string) types.AnalysisEntry {
	skills := ExtractSkills(jdText)
	caps := BuildCapabilities(skills)
	score := CalcReadinessScore(company, role, jdText, skills)
	now := time.Now().UTC()

	return types.AnalysisEntry{
		ID:              uuid.NewString(),
		SchemaVersion:   types.CurrentSchemaVersion,
		CreatedAt:       now,
		UpdatedAt:       now,
		Company:         company,
		Role:            role,
		JDText:          jdText,
		ExtractedSkills: skills,
		Plan:            generatePlan(caps),
		Checklist:       generateChecklist(caps),
		Questions:       generateQuestions(caps),
		BaseScore:       score,
		FinalScore:      score,
		SkillConfidence: make(map[string]types.ConfidenceLevel),
		CompanyIntel:    GenerateCompanyIntel(company, jdText, skills),
	}
}
