package analysis

import (
	"regexp"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// enterpriseNames and midSizeNames are checked in that priority order against
// the lowercased company name; anything unmatched defaults to Startup.
var enterpriseNames = []string{
	"amazon", "google", "microsoft", "apple", "meta", "netflix", "oracle",
	"ibm", "intel", "adobe", "salesforce", "sap", "cisco", "nvidia",
	"qualcomm", "samsung", "uber", "walmart", "paypal", "goldman sachs",
	"jpmorgan", "morgan stanley", "accenture", "infosys", "tcs",
	"tata consultancy", "wipro", "cognizant", "capgemini", "hcl", "deloitte",
}

var midSizeNames = []string{
	"zoho", "freshworks", "razorpay", "cred", "postman", "browserstack",
	"zerodha", "groww", "meesho", "swiggy", "zomato", "phonepe", "dream11",
	"chargebee", "clevertap", "innovaccer", "druva", "icertis",
}

// industryPattern pairs an industry label with its keyword family. Families
// are checked in order against company name plus JD text; the first match
// wins, so order matters when text satisfies several families.
type industryPattern struct {
	industry string
	re       *regexp.Regexp
}

var industryPatterns = []industryPattern{
	{"Fintech", regexp.MustCompile(`(?i)fintech|bank|payment|finance|financial|trading|lending|insurance|wealth`)},
	{"Healthcare", regexp.MustCompile(`(?i)health|medical|pharma|clinic|hospital|biotech|diagnostic`)},
	{"E-commerce", regexp.MustCompile(`(?i)e-?commerce|retail|marketplace|shopping|grocery|quick commerce`)},
	{"EdTech", regexp.MustCompile(`(?i)edtech|education|learning platform|upskill|tutoring|courses`)},
	{"Gaming", regexp.MustCompile(`(?i)gaming|game studio|esports|real money gaming`)},
	{"Logistics", regexp.MustCompile(`(?i)logistics|supply chain|shipping|freight|last mile|warehouse`)},
}

// defaultIndustry is used when no keyword family matches.
const defaultIndustry = "Technology Services"

var hiringFocus = map[types.CompanySize]string{
	types.SizeEnterprise: "Large companies run structured, multi-round pipelines with a heavy emphasis on DSA, core CS fundamentals, and standardized online assessments. Expect at least one bar-raiser style round and consistent behavioral questions mapped to leadership principles.",
	types.SizeMidSize:    "Mid-size companies balance fundamentals with practical stack depth. Expect a screening call, one solid coding round, and a technical deep dive into your projects — interviewers usually work on the team you would join.",
	types.SizeStartup:    "Startups hire for ownership and shipping speed. Expect practical, hands-on rounds built around real problems from their codebase, and a founder conversation probing how you think, learn, and handle ambiguity.",
}

// GenerateCompanyIntel classifies company size and industry from the company
// name and JD text and derives an expected interview-round mapping conditioned
// on size and the detected skills. Returns nil when the trimmed company name is
// empty; no inference runs in that case and absence must not be re-derived
// later from other fields.
func GenerateCompanyIntel(company, jdText string, skills []types.SkillCategory) *types.CompanyIntel {
	name := strings.TrimSpace(company)
	if name == "" {
		return nil
	}

	caps := BuildCapabilities(skills)
	size := inferSize(name)

	return &types.CompanyIntel{
		CompanyName: name,
		Industry:    inferIndustry(name + " " + jdText),
		Size:        size,
		HiringFocus: hiringFocus[size],
		Rounds:      buildRounds(size, caps),
	}
}

func inferSize(name string) types.CompanySize {
	lower := strings.ToLower(name)
	for _, known := range enterpriseNames {
		if strings.Contains(lower, known) {
			return types.SizeEnterprise
		}
	}
	for _, known := range midSizeNames {
		if strings.Contains(lower, known) {
			return types.SizeMidSize
		}
	}
	return types.SizeStartup
}

func inferIndustry(text string) string {
	for _, p := range industryPatterns {
		if p.re.MatchString(text) {
			return p.industry
		}
	}
	return defaultIndustry
}

// buildRounds expands the per-size round template. Enterprise and mid-size
// companies map to four rounds, startups to three; specific round titles
// branch on the detected skill categories.
func buildRounds(size types.CompanySize, caps Capabilities) []types.RoundMapping {
	coreCS := caps.HasCoreCS || caps.HasHit("dsa")

	switch size {
	case types.SizeEnterprise:
		return []types.RoundMapping{
			{Round: "Round 1", Title: "Online Assessment",
				Why: "Enterprises screen at scale with timed aptitude and coding tests before any human round."},
			{Round: "Round 2",
				Title: pick(coreCS, "DSA & Core CS Interview", "Problem Solving Interview"),
				Why:   "A dedicated algorithms round is standard; strong fundamentals are the main filter."},
			{Round: "Round 3",
				Title: enterpriseTechTitle(caps),
				Why:   "Interviewers probe the stack named in the JD and the trade-offs behind your projects."},
			{Round: "Round 4", Title: "Managerial + HR",
				Why: "Behavioral fit, compensation, and team matching close out the loop."},
		}
	case types.SizeMidSize:
		return []types.RoundMapping{
			{Round: "Round 1", Title: "Recruiter Screening Call",
				Why: "A short call confirms background, notice period, and expectations."},
			{Round: "Round 2",
				Title: pick(coreCS, "DSA + Core CS Round", "Practical Coding Round"),
				Why:   "One focused coding round, usually with an engineer from the hiring team."},
			{Round: "Round 3",
				Title: pick(caps.HasWeb, "Technical Deep Dive (Projects + Web Stack)", "Technical Deep Dive (Projects + Stack)"),
				Why:   "Expect detailed questions on your projects and the stack from the JD."},
			{Round: "Round 4", Title: "Culture Fit + HR",
				Why: "A final conversation on working style, growth, and the offer."},
		}
	default:
		return []types.RoundMapping{
			{Round: "Round 1", Title: "Practical Coding Round",
				Why: "Startups skip formal screens and start with a hands-on problem close to their day-to-day work."},
			{Round: "Round 2",
				Title: startupTechTitle(caps),
				Why:   "The deep dive centers on shipping: what you built, how it runs, and what broke."},
			{Round: "Round 3", Title: "Founder / Culture Conversation",
				Why: "Small teams hire for ownership; expect direct questions about ambiguity and speed."},
		}
	}
}

func enterpriseTechTitle(caps Capabilities) string {
	switch {
	case caps.HasWeb:
		return "Technical Deep Dive (Projects + Web Stack)"
	case caps.HasCloud:
		return "Technical Deep Dive (Projects + Infrastructure)"
	default:
		return "Technical Deep Dive (Projects + Stack)"
	}
}

func startupTechTitle(caps Capabilities) string {
	switch {
	case caps.HasWeb:
		return "Full-Stack Deep Dive"
	case caps.HasCloud:
		return "Systems & Infrastructure Deep Dive"
	default:
		return "Technical Deep Dive"
	}
}
