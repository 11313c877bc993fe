package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuestions_NoSkillsYieldsGenericSet(t *testing.T) {
	questions := GenerateQuestions(ExtractSkills(""))

	require.Len(t, questions, 4)
	assert.Equal(t, genericQuestions, questions)
}

func TestGenerateQuestions_NeverExceedsTen(t *testing.T) {
	jd := "dsa oop dbms sql postgresql react docker aws rest graphql mongodb selenium java python"
	questions := GenerateQuestions(ExtractSkills(jd))

	assert.Len(t, questions, 10)
}

func TestGenerateQuestions_Unique(t *testing.T) {
	questions := GenerateQuestions(ExtractSkills("sql mysql postgresql dsa react"))

	seen := make(map[string]bool)
	for _, q := range questions {
		assert.False(t, seen[q], "duplicate question: %s", q)
		seen[q] = true
	}
}

func TestGenerateQuestions_PriorityOrderFillsFromGroups(t *testing.T) {
	// dsa(3) + oop(2) + dbms(1) + sql(2) = 8 gated candidates, then the first
	// two generic closers complete the set of ten.
	questions := GenerateQuestions(ExtractSkills("dsa oop dbms sql"))

	require.Len(t, questions, 10)
	assert.Equal(t,
		"How would you find the kth largest element in an unsorted array? Discuss time complexity.",
		questions[0])
	assert.Equal(t,
		"Explain the different levels of database normalization and when you'd denormalize.",
		questions[5])
	assert.Equal(t, genericQuestions[0], questions[8])
	assert.Equal(t, genericQuestions[1], questions[9])
}

func TestGenerateQuestions_SystemDesignGroupNeverTriggers(t *testing.T) {
	// No extracted skill label contains "system design", so its group is
	// unreachable through extraction.
	jd := "dsa oop react node.js python java docker aws sql mongodb selenium system design"
	questions := GenerateQuestions(ExtractSkills(jd))

	assert.NotContains(t, questions,
		"Design a URL shortener service. Discuss storage, hashing strategy, and read/write patterns.")
}

func TestGenerateQuestions_Deterministic(t *testing.T) {
	jd := "react node.js sql docker"

	assert.Equal(t,
		GenerateQuestions(ExtractSkills(jd)),
		GenerateQuestions(ExtractSkills(jd)))
}
