package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateChecklist_ShapeIsFixed(t *testing.T) {
	checklist := GenerateChecklist(ExtractSkills(""))

	require.Len(t, checklist, 4)
	assert.Equal(t, "Round 1", checklist[0].Round)
	assert.Equal(t, "Aptitude & Basics", checklist[0].Title)
	assert.Len(t, checklist[0].Items, 7)
	assert.Equal(t, "DSA & Core CS", checklist[1].Title)
	assert.Len(t, checklist[1].Items, 8)
	assert.Equal(t, "Technical Interview (Projects + Stack)", checklist[2].Title)
	assert.Len(t, checklist[2].Items, 8)
	assert.Equal(t, "Managerial / HR", checklist[3].Title)
	assert.Len(t, checklist[3].Items, 7)
}

func TestGenerateChecklist_ShapeStableAcrossInputs(t *testing.T) {
	generic := GenerateChecklist(ExtractSkills(""))
	aware := GenerateChecklist(ExtractSkills("react sql docker selenium dsa oop"))

	require.Len(t, aware, len(generic))
	for i := range generic {
		assert.Equal(t, generic[i].Round, aware[i].Round)
		assert.Equal(t, generic[i].Title, aware[i].Title)
		assert.Len(t, aware[i].Items, len(generic[i].Items))
	}
}

func TestGenerateChecklist_CoreCSSwapsSlots(t *testing.T) {
	checklist := GenerateChecklist(ExtractSkills("dsa and dbms"))

	assert.Equal(t, "Revise OS concepts: processes, threads, scheduling", checklist[0].Items[4])
	assert.Equal(t, "Revise DBMS: normalization, ACID, joins, indexing", checklist[1].Items[4])
	assert.Equal(t, "Review OS: deadlocks, memory management, paging", checklist[1].Items[5])
}

func TestGenerateChecklist_GenericSlotsWithoutCoreCS(t *testing.T) {
	checklist := GenerateChecklist(ExtractSkills("react"))

	assert.Equal(t, "Review basic computer fundamentals", checklist[0].Items[4])
	assert.Equal(t, "Review basic database concepts", checklist[1].Items[4])
}

func TestGenerateChecklist_Round3BranchesOnStack(t *testing.T) {
	checklist := GenerateChecklist(ExtractSkills("react sql docker selenium"))

	items := checklist[2].Items
	assert.Equal(t, "Be ready to explain React lifecycle / hooks in depth", items[1])
	assert.Equal(t, "Practice writing complex SQL queries from scratch", items[2])
	assert.Equal(t, "Explain your CI/CD pipeline or deployment setup", items[3])
	assert.Equal(t, "Describe your testing strategy and tools used", items[4])
}

func TestGenerateChecklist_Round4IsAlwaysFixed(t *testing.T) {
	generic := GenerateChecklist(ExtractSkills(""))
	aware := GenerateChecklist(ExtractSkills("react sql docker selenium dsa"))

	assert.Equal(t, generic[3], aware[3])
}
