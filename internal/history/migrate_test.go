package history

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/placement-prep/internal/analysis"
	"github.com/jonathan/placement-prep/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateEntry_LegacyWebAppRecord(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "legacy-1",
		"jdText": "react and sql",
		"createdAt": "2024-01-15T10:00:00Z",
		"readinessScore": 50
	}`)

	entry, err := MigrateEntry(raw)
	require.NoError(t, err)

	assert.Equal(t, "legacy-1", entry.ID)
	assert.Equal(t, 50, entry.BaseScore)
	assert.Equal(t, 50, entry.FinalScore)
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
	assert.Equal(t, types.CurrentSchemaVersion, entry.SchemaVersion)
	assert.Empty(t, entry.SkillConfidence)
	assert.Empty(t, entry.ExtractedSkills)
	assert.Empty(t, entry.Company)
}

func TestMigrateEntry_LegacyRecordWithoutScore(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "legacy-2",
		"jdText": "x",
		"createdAt": "2024-01-15T10:00:00Z"
	}`)

	entry, err := MigrateEntry(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, entry.BaseScore)
	assert.Equal(t, 0, entry.FinalScore)
}

func TestMigrateEntry_V1RecordGetsVersionTag(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "v1-1",
		"jdText": "sql",
		"createdAt": "2024-06-01T08:30:00Z",
		"baseScore": 40,
		"finalScore": 44,
		"questions": ["q1"]
	}`)

	entry, err := MigrateEntry(raw)
	require.NoError(t, err)
	assert.Equal(t, types.CurrentSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, 40, entry.BaseScore)
	assert.Equal(t, 44, entry.FinalScore)
	assert.Equal(t, []string{"q1"}, entry.Questions)
}

func TestMigrateEntry_CurrentRecordIsIdempotent(t *testing.T) {
	original := analysis.Run("Amazon", "SDE", "react sql dsa")
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	entry, err := MigrateEntry(raw)
	require.NoError(t, err)

	assert.Equal(t, original.ID, entry.ID)
	assert.Equal(t, original.BaseScore, entry.BaseScore)
	assert.Equal(t, original.FinalScore, entry.FinalScore)
	assert.Equal(t, original.ExtractedSkills, entry.ExtractedSkills)
	assert.Equal(t, original.Questions, entry.Questions)
	assert.Equal(t, original.SchemaVersion, entry.SchemaVersion)
}

func TestMigrateEntry_EmptyJDTextIsAllowed(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "e-1",
		"jdText": "",
		"createdAt": "2024-01-15T10:00:00Z",
		"readinessScore": 35
	}`)

	entry, err := MigrateEntry(raw)
	require.NoError(t, err)
	assert.Equal(t, "", entry.JDText)
}

func TestMigrateEntry_RejectsMissingID(t *testing.T) {
	raw := json.RawMessage(`{"jdText": "x", "createdAt": "2024-01-15T10:00:00Z"}`)

	_, err := MigrateEntry(raw)
	assert.Error(t, err)
}

func TestMigrateEntry_RejectsEmptyID(t *testing.T) {
	raw := json.RawMessage(`{"id": "", "jdText": "x", "createdAt": "2024-01-15T10:00:00Z"}`)

	_, err := MigrateEntry(raw)
	assert.Error(t, err)
}

func TestMigrateEntry_RejectsNonObject(t *testing.T) {
	_, err := MigrateEntry(json.RawMessage(`[1, 2, 3]`))
	assert.Error(t, err)

	_, err = MigrateEntry(json.RawMessage(`"just a string"`))
	assert.Error(t, err)
}

func TestMigrateEntry_RejectsWrongShapeArrayField(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "bad-1",
		"jdText": "x",
		"createdAt": "2024-01-15T10:00:00Z",
		"questions": "not an array"
	}`)

	_, err := MigrateEntry(raw)
	assert.Error(t, err)
}

func TestMigrateEntry_BackfillsAbsentArrays(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "sparse-1",
		"jdText": "x",
		"createdAt": "2024-01-15T10:00:00Z",
		"readinessScore": 42
	}`)

	entry, err := MigrateEntry(raw)
	require.NoError(t, err)
	assert.Empty(t, entry.Plan)
	assert.Empty(t, entry.Checklist)
	assert.Empty(t, entry.Questions)
}

func TestMigrateEntry_RejectsNewerSchemaVersion(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "future-1",
		"jdText": "x",
		"createdAt": "2024-01-15T10:00:00Z",
		"schemaVersion": 99,
		"baseScore": 10
	}`)

	_, err := MigrateEntry(raw)
	assert.Error(t, err)
}

func TestMigrateEntry_RejectsOutOfRangeScore(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "oob-1",
		"jdText": "x",
		"createdAt": "2024-01-15T10:00:00Z",
		"readinessScore": 150
	}`)

	_, err := MigrateEntry(raw)
	assert.Error(t, err)
}
