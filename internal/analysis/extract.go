// Package analysis derives a structured interview-preparation bundle from a
// free-text job description: categorized skills, a readiness score, a
// multi-round checklist, a 7-day study plan, a ranked question set and
// heuristic company intel.
package analysis

import (
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// Category names emitted by the extractor, in table order.
const (
	CategoryCoreCS  = "Core CS"
	CategoryLang    = "Languages"
	CategoryWeb     = "Web"
	CategoryData    = "Data"
	CategoryCloud   = "Cloud/DevOps"
	CategoryTesting = "Testing"
	// CategoryGeneral is the fallback emitted when nothing matches.
	CategoryGeneral = "General"
)

// fallbackSkill is the placeholder skill emitted under the fallback category.
const fallbackSkill = "General fresher stack"

// skillGroup pairs a category with its keyword phrases. Order matters: category
// emission follows table order, not text order.
type skillGroup struct {
	category string
	keywords []string
}

var skillTable = []skillGroup{
	{CategoryCoreCS, []string{"dsa", "data structures", "algorithms", "oop", "object oriented", "dbms", "database management", "os", "operating system", "networks", "networking", "computer networks"}},
	{CategoryLang, []string{"java", "python", "javascript", "typescript", "c++", "c#", "golang", "go lang"}},
	{CategoryWeb, []string{"react", "next.js", "nextjs", "node.js", "nodejs", "express", "rest", "restful", "graphql", "angular", "vue", "html", "css"}},
	{CategoryData, []string{"sql", "mongodb", "postgresql", "mysql", "redis", "nosql", "database"}},
	{CategoryCloud, []string{"aws", "azure", "gcp", "docker", "kubernetes", "k8s", "ci/cd", "cicd", "linux", "terraform", "jenkins"}},
	{CategoryTesting, []string{"selenium", "cypress", "playwright", "junit", "pytest", "testing", "unit test", "integration test"}},
}

// displayNames maps matched keywords to their canonical display form. Variants
// of the same skill collapse onto one label, which also deduplicates them.
var displayNames = map[string]string{
	"dsa": "DSA", "data structures": "DSA", "algorithms": "DSA",
	"oop": "OOP", "object oriented": "OOP",
	"dbms": "DBMS", "database management": "DBMS",
	"os": "OS", "operating system": "OS",
	"networks": "Networks", "networking": "Networks", "computer networks": "Networks",
	"java": "Java", "python": "Python", "javascript": "JavaScript", "typescript": "TypeScript",
	"c++": "C++", "c#": "C#", "golang": "Go", "go lang": "Go",
	"react": "React", "next.js": "Next.js", "nextjs": "Next.js",
	"node.js": "Node.js", "nodejs": "Node.js", "express": "Express",
	"rest": "REST", "restful": "REST", "graphql": "GraphQL",
	"angular": "Angular", "vue": "Vue", "html": "HTML", "css": "CSS",
	"sql": "SQL", "mongodb": "MongoDB", "postgresql": "PostgreSQL",
	"mysql": "MySQL", "redis": "Redis", "nosql": "NoSQL", "database": "Database",
	"aws": "AWS", "azure": "Azure", "gcp": "GCP", "docker": "Docker",
	"kubernetes": "Kubernetes", "k8s": "Kubernetes", "ci/cd": "CI/CD", "cicd": "CI/CD",
	"linux": "Linux", "terraform": "Terraform", "jenkins": "Jenkins",
	"selenium": "Selenium", "cypress": "Cypress", "playwright": "Playwright",
	"junit": "JUnit", "pytest": "PyTest",
	"testing": "Testing", "unit test": "Unit Testing", "integration test": "Integration Testing",
}

// ExtractSkills maps job-description text to categorized skill labels via
// keyword tables. Matching is case-insensitive substring containment, not
// word-boundary matching: "java" matches "javascript" too, a deliberate
// trade-off carried over from the reference groupings. The result is never
// empty; when nothing matches, a single fallback category is emitted. Total
// over any input, including the empty string.
func ExtractSkills(jdText string) []types.SkillCategory {
	lower := strings.ToLower(jdText)

	var result []types.SkillCategory
	for _, group := range skillTable {
		var found []string
		seen := make(map[string]bool)
		for _, kw := range group.keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			display := displayNames[kw]
			if display == "" {
				display = kw
			}
			if !seen[display] {
				seen[display] = true
				found = append(found, display)
			}
		}
		if len(found) > 0 {
			result = append(result, types.SkillCategory{Name: group.category, Skills: found})
		}
	}

	if len(result) == 0 {
		result = append(result, types.SkillCategory{
			Name:   CategoryGeneral,
			Skills: []string{fallbackSkill},
		})
	}

	return result
}
