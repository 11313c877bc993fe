package analysis

import (
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// Capabilities is the capability set computed once per analysis from the
// extracted categories. The content generators and the company intel inferrer
// branch on it instead of re-scanning the category list.
type Capabilities struct {
	HasWeb     bool
	HasData    bool
	HasCloud   bool
	HasCoreCS  bool
	HasTesting bool

	// lowercased skill labels, flattened across categories
	skills []string
}

// BuildCapabilities flattens the extracted categories into a capability set.
func BuildCapabilities(skills []types.SkillCategory) Capabilities {
	caps := Capabilities{
		HasWeb:     types.HasCategory(skills, CategoryWeb),
		HasData:    types.HasCategory(skills, CategoryData),
		HasCloud:   types.HasCategory(skills, CategoryCloud),
		HasCoreCS:  types.HasCategory(skills, CategoryCoreCS),
		HasTesting: types.HasCategory(skills, CategoryTesting),
	}
	for _, cat := range skills {
		for _, skill := range cat.Skills {
			caps.skills = append(caps.skills, strings.ToLower(skill))
		}
	}
	return caps
}

// HasHit reports whether any extracted skill label contains the given
// substring, case-insensitively. Containment is intentional: "sql" hits SQL,
// MySQL, PostgreSQL and NoSQL, and "os" hits PostgreSQL as well as OS.
func (c Capabilities) HasHit(substr string) bool {
	needle := strings.ToLower(substr)
	for _, skill := range c.skills {
		if strings.Contains(skill, needle) {
			return true
		}
	}
	return false
}

// hasAnyHit reports whether any of the substrings hits an extracted skill.
func (c Capabilities) hasAnyHit(substrs ...string) bool {
	for _, s := range substrs {
		if c.HasHit(s) {
			return true
		}
	}
	return false
}
