package analysis

import "github.com/jonathan/placement-prep/internal/types"

// GenerateChecklist produces the four-round preparation checklist. Item count
// and position are fixed per round; only the text of specific slots swaps
// between a skills-aware variant and a generic fallback, so the checklist
// shape stays stable for consumers.
func GenerateChecklist(skills []types.SkillCategory) []types.RoundChecklist {
	caps := BuildCapabilities(skills)
	return generateChecklist(caps)
}

func generateChecklist(caps Capabilities) []types.RoundChecklist {
	return []types.RoundChecklist{
		{
			Round: "Round 1",
			Title: "Aptitude & Basics",
			Items: []string{
				"Practice quantitative aptitude (percentages, time & work, probability)",
				"Brush up logical reasoning and pattern recognition",
				"Review verbal ability and reading comprehension",
				"Practice basic programming MCQs",
				pick(caps.HasCoreCS,
					"Revise OS concepts: processes, threads, scheduling",
					"Review basic computer fundamentals"),
				"Solve 2–3 previous years' aptitude papers",
				"Time yourself on mock aptitude tests",
			},
		},
		{
			Round: "Round 2",
			Title: "DSA & Core CS",
			Items: []string{
				"Master arrays, strings, and hashing patterns",
				"Practice linked lists, stacks, queues",
				"Solve tree and graph problems (BFS, DFS, shortest path)",
				"Study dynamic programming: top-down & bottom-up",
				pick(caps.HasCoreCS,
					"Revise DBMS: normalization, ACID, joins, indexing",
					"Review basic database concepts"),
				pick(caps.HasCoreCS,
					"Review OS: deadlocks, memory management, paging",
					"Understand process vs thread basics"),
				"Practice 3 medium-level problems daily on any coding platform",
				"Review time & space complexity analysis",
			},
		},
		{
			Round: "Round 3",
			Title: "Technical Interview (Projects + Stack)",
			Items: []string{
				"Prepare a 2-minute walkthrough of your top project",
				pick(caps.HasWeb,
					"Be ready to explain React lifecycle / hooks in depth",
					"Review your primary framework's core concepts"),
				pick(caps.HasData,
					"Practice writing complex SQL queries from scratch",
					"Know basic CRUD query patterns"),
				pick(caps.HasCloud,
					"Explain your CI/CD pipeline or deployment setup",
					"Understand basic deployment concepts"),
				pick(caps.HasTesting,
					"Describe your testing strategy and tools used",
					"Know the difference between unit and integration tests"),
				"Prepare to discuss trade-offs in your architectural decisions",
				"Have 2–3 examples of bugs you debugged and how",
				"Know your resume inside-out — every bullet point",
			},
		},
		{
			Round: "Round 4",
			Title: "Managerial / HR",
			Items: []string{
				"Prepare 'Tell me about yourself' (90-second version)",
				"Have 3 STAR-format stories ready (leadership, conflict, failure)",
				"Research the company's mission, recent news, and culture",
				"Prepare thoughtful questions for the interviewer",
				"Practice salary negotiation talking points",
				"Review common behavioral questions (teamwork, deadlines)",
				"Be ready to discuss your 5-year career goals",
			},
		},
	}
}

// pick selects the skills-aware variant when the condition holds.
func pick(cond bool, aware, generic string) string {
	if cond {
		return aware
	}
	return generic
}
