package analysis

import "github.com/jonathan/placement-prep/internal/types"

// GeneratePlan produces the fixed 7-day study plan. Days 1-4 cover CS
// fundamentals with minor substitutions keyed on specific keyword hits, Day 5
// branches on the detected stack, Days 6-7 are fully fixed.
func GeneratePlan(skills []types.SkillCategory) []types.DayPlan {
	caps := BuildCapabilities(skills)
	return generatePlan(caps)
}

func generatePlan(caps Capabilities) []types.DayPlan {
	day5Frontend := "Review your project's tech stack deeply"
	if caps.HasHit("react") {
		day5Frontend = "Review React hooks, state management, component lifecycle"
	} else if caps.HasWeb {
		day5Frontend = "Revise your frontend framework's core patterns"
	}

	day5Backend := "Review backend concepts you've used"
	if caps.HasHit("node") {
		day5Backend = "Revise Node.js event loop, middleware, async patterns"
	} else if caps.HasCloud {
		day5Backend = "Review your backend/infra tools and deployment flow"
	}

	return []types.DayPlan{
		{
			Day:   "Day 1",
			Focus: "Fundamentals & Core CS",
			Tasks: []string{
				"Review OOP principles: encapsulation, inheritance, polymorphism, abstraction",
				"Revise OS basics: process scheduling, deadlocks, virtual memory",
				"Study DBMS: normalization (1NF–BCNF), ACID properties",
				pick(caps.HasHit("python"),
					"Practice Python basics: list comprehensions, generators, decorators",
					"Review your primary language's core features"),
				"Solve 5 easy coding problems (arrays, strings)",
			},
		},
		{
			Day:   "Day 2",
			Focus: "Core CS Deep Dive",
			Tasks: []string{
				"Study networking: TCP/IP, HTTP/HTTPS, DNS resolution",
				pick(caps.HasData || caps.HasHit("sql"),
					"Practice SQL: JOINs, GROUP BY, subqueries, window functions",
					"Review basic query patterns"),
				"Revise complexity analysis: Big O for common algorithms",
				"Study sorting algorithms: quicksort, mergesort, heapsort",
				"Solve 5 easy-medium problems (hashing, two pointers)",
			},
		},
		{
			Day:   "Day 3",
			Focus: "DSA — Trees, Graphs, Recursion",
			Tasks: []string{
				"Study binary trees: traversals, BST operations, height-balanced trees",
				"Practice graph algorithms: BFS, DFS, topological sort",
				"Solve 3 medium tree/graph problems",
				"Review recursion and backtracking patterns",
				"Study linked list operations and cycle detection",
			},
		},
		{
			Day:   "Day 4",
			Focus: "DSA — DP & Advanced Patterns",
			Tasks: []string{
				"Study DP fundamentals: memoization vs tabulation",
				"Practice classic DP: knapsack, LCS, LIS, coin change",
				"Solve 3 medium DP problems",
				"Review sliding window and prefix sum techniques",
				"Practice greedy algorithm problems",
			},
		},
		{
			Day:   "Day 5",
			Focus: "Projects, Resume & Stack",
			Tasks: []string{
				"Prepare 2-minute explanation of your top 2 projects",
				day5Frontend,
				day5Backend,
				"Align resume bullets with the JD's required skills",
				"Prepare to discuss technical trade-offs you made in projects",
			},
		},
		{
			Day:   "Day 6",
			Focus: "Mock Interview Practice",
			Tasks: []string{
				"Do a timed mock coding round (2 problems in 45 min)",
				"Practice behavioral questions using STAR format",
				"Do a mock system design discussion (e.g., URL shortener)",
				"Record yourself answering 'Tell me about yourself'",
				"Review common HR questions: strengths, weaknesses, conflict",
			},
		},
		{
			Day:   "Day 7",
			Focus: "Revision & Weak Areas",
			Tasks: []string{
				"Revisit problems you got wrong during the week",
				"Re-read key CS concepts you're weakest in",
				"Do a final timed aptitude test",
				"Review all your notes and flashcards",
				"Get good sleep — confidence matters on the day",
			},
		},
	}
}
