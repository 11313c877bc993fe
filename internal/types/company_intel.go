package types

// CompanySize classifies the estimated size of a company.
type CompanySize string

const (
	// SizeStartup covers companies estimated below 200 people.
	SizeStartup CompanySize = "Startup"
	// SizeMidSize covers companies estimated between 200 and 2000 people.
	SizeMidSize CompanySize = "Mid-size"
	// SizeEnterprise covers companies estimated above 2000 people.
	SizeEnterprise CompanySize = "Enterprise"
)

// RoundMapping describes one expected interview round and the rationale for it.
type RoundMapping struct {
	Round string `json:"round"`
	Title string `json:"title"`
	Why   string `json:"why"`
}

// CompanyIntel holds heuristically inferred facts about the hiring company.
// It is only present on entries created with a non-blank company name.
type CompanyIntel struct {
	CompanyName string         `json:"companyName"`
	Industry    string         `json:"industry"`
	Size        CompanySize    `json:"size"`
	HiringFocus string         `json:"hiringFocus"`
	Rounds      []RoundMapping `json:"rounds"`
}
