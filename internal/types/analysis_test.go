package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidence_DefaultsToPractice(t *testing.T) {
	entry := AnalysisEntry{
		SkillConfidence: map[string]ConfidenceLevel{"React": ConfidenceKnow},
	}

	assert.Equal(t, ConfidenceKnow, entry.Confidence("React"))
	assert.Equal(t, ConfidencePractice, entry.Confidence("SQL"))
}

func TestConfidence_NilMap(t *testing.T) {
	entry := AnalysisEntry{}

	assert.Equal(t, ConfidencePractice, entry.Confidence("anything"))
}

func TestConfidence_UnknownLevelTreatedAsPractice(t *testing.T) {
	entry := AnalysisEntry{
		SkillConfidence: map[string]ConfidenceLevel{"React": "garbage"},
	}

	assert.Equal(t, ConfidencePractice, entry.Confidence("React"))
}

func TestFlattenedSkills_PreservesOrder(t *testing.T) {
	entry := AnalysisEntry{
		ExtractedSkills: []SkillCategory{
			{Name: "Core CS", Skills: []string{"DSA", "OOP"}},
			{Name: "Web", Skills: []string{"React"}},
		},
	}

	assert.Equal(t, []string{"DSA", "OOP", "React"}, entry.FlattenedSkills())
}

func TestHasSkillHit_Substring(t *testing.T) {
	skills := []SkillCategory{
		{Name: "Data", Skills: []string{"PostgreSQL"}},
	}

	assert.True(t, HasSkillHit(skills, "sql"))
	assert.True(t, HasSkillHit(skills, "os"))
	assert.False(t, HasSkillHit(skills, "redis"))
}

func TestAnalysisEntry_JSONFieldNames(t *testing.T) {
	entry := AnalysisEntry{
		ID:              "abc",
		SchemaVersion:   CurrentSchemaVersion,
		SkillConfidence: map[string]ConfidenceLevel{},
	}

	doc, err := json.Marshal(entry)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(doc, &fields))

	// Stored field names are part of the persisted contract.
	for _, key := range []string{
		"id", "schemaVersion", "createdAt", "updatedAt", "jdText",
		"extractedSkills", "plan", "checklist", "questions",
		"baseScore", "finalScore", "skillConfidenceMap",
	} {
		assert.Contains(t, fields, key)
	}
	// companyIntel is omitted when absent.
	assert.NotContains(t, fields, "companyIntel")
}
