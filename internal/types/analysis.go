// Package types defines the data model shared across the placement prep engine.
package types

import (
	"strings"
	"time"
)

// CurrentSchemaVersion is the schema version stamped on newly created entries.
// Stored records carrying an older version are upgraded on load by the history
// package's migration chain.
const CurrentSchemaVersion = 2

// ConfidenceLevel records how confident the user is about a single skill.
type ConfidenceLevel string

const (
	// ConfidenceKnow marks a skill the user already knows.
	ConfidenceKnow ConfidenceLevel = "know"
	// ConfidencePractice marks a skill the user still needs to practice.
	// This is the default for skills absent from the confidence map.
	ConfidencePractice ConfidenceLevel = "practice"
)

// SkillCategory is a named bucket of canonical skill labels detected in a job
// description. Skills preserve insertion order and contain no duplicates.
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// DayPlan is one day of the 7-day study plan.
type DayPlan struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// RoundChecklist is the preparation checklist for one interview round.
type RoundChecklist struct {
	Round string   `json:"round"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// AnalysisEntry is the aggregate root produced by one analysis run. All fields
// except FinalScore, SkillConfidence and UpdatedAt are immutable after creation.
type AnalysisEntry struct {
	ID              string                     `json:"id"`
	SchemaVersion   int                        `json:"schemaVersion"`
	CreatedAt       time.Time                  `json:"createdAt"`
	UpdatedAt       time.Time                  `json:"updatedAt"`
	Company         string                     `json:"company"`
	Role            string                     `json:"role"`
	JDText          string                     `json:"jdText"`
	ExtractedSkills []SkillCategory            `json:"extractedSkills"`
	Plan            []DayPlan                  `json:"plan"`
	Checklist       []RoundChecklist           `json:"checklist"`
	Questions       []string                   `json:"questions"`
	BaseScore       int                        `json:"baseScore"`
	FinalScore      int                        `json:"finalScore"`
	SkillConfidence map[string]ConfidenceLevel `json:"skillConfidenceMap"`
	CompanyIntel    *CompanyIntel              `json:"companyIntel,omitempty"`
}

// FlattenedSkills returns every skill label across all categories, in category
// order then insertion order.
func (e *AnalysisEntry) FlattenedSkills() []string {
	var skills []string
	for _, cat := range e.ExtractedSkills {
		skills = append(skills, cat.Skills...)
	}
	return skills
}

// Confidence returns the confidence level recorded for a skill. Skills with no
// recorded level default to ConfidencePractice.
func (e *AnalysisEntry) Confidence(skill string) ConfidenceLevel {
	if level, ok := e.SkillConfidence[skill]; ok && level == ConfidenceKnow {
		return ConfidenceKnow
	}
	return ConfidencePractice
}

// HasCategory reports whether a category with the given name was extracted.
func HasCategory(skills []SkillCategory, name string) bool {
	for _, cat := range skills {
		if cat.Name == name {
			return true
		}
	}
	return false
}

// HasSkillHit reports whether any extracted skill label contains the given
// substring, case-insensitively. Substring containment is deliberate: "sql"
// matches SQL, MySQL, PostgreSQL and NoSQL alike.
func HasSkillHit(skills []SkillCategory, substr string) bool {
	needle := strings.ToLower(substr)
	for _, cat := range skills {
		for _, skill := range cat.Skills {
			if strings.Contains(strings.ToLower(skill), needle) {
				return true
			}
		}
	}
	return false
}
