package analysis

import "github.com/jonathan/placement-prep/internal/types"

// maxQuestions caps the generated question set.
const maxQuestions = 10

// questionGroup gates a block of questions on keyword hits. A group is
// appended to the candidate pool when any of its triggers hits an extracted
// skill label.
type questionGroup struct {
	triggers  []string
	questions []string
}

// questionGroups in fixed priority order. Group order and exact string
// literals are load-bearing: deduplication is by exact string equality and the
// first ten unique candidates win.
var questionGroups = []questionGroup{
	{[]string{"dsa"}, []string{
		"How would you find the kth largest element in an unsorted array? Discuss time complexity.",
		"Explain how you'd detect a cycle in a linked list and find its starting node.",
		"How would you optimize search in a sorted, rotated array?",
	}},
	{[]string{"oop"}, []string{
		"Explain the difference between composition and inheritance with a real-world example.",
		"What are SOLID principles? Which one do you find hardest to follow and why?",
	}},
	{[]string{"dbms"}, []string{
		"Explain the different levels of database normalization and when you'd denormalize.",
	}},
	{[]string{"sql", "postgresql", "mysql"}, []string{
		"Explain indexing in databases — when does it help and when can it hurt performance?",
		"Write a query to find the second highest salary in a table without using LIMIT.",
	}},
	{[]string{"react"}, []string{
		"Explain the difference between useState, useReducer, and external state management like Redux or Zustand.",
		"How does React's reconciliation algorithm work? What are keys and why do they matter?",
	}},
	{[]string{"node"}, []string{
		"Explain the Node.js event loop. How does it handle I/O-bound vs CPU-bound tasks?",
	}},
	{[]string{"python"}, []string{
		"What are Python decorators? Write a simple caching decorator from scratch.",
	}},
	{[]string{"java"}, []string{
		"Explain the difference between HashMap and ConcurrentHashMap. When would you use each?",
	}},
	{[]string{"docker", "kubernetes"}, []string{
		"Explain the difference between a Docker image and a container. How do layers work?",
	}},
	{[]string{"aws", "gcp", "azure"}, []string{
		"Compare serverless (Lambda/Cloud Functions) vs containerized deployments. When would you pick each?",
	}},
	{[]string{"rest", "graphql"}, []string{
		"Compare REST and GraphQL. What are the trade-offs and when would you choose one over the other?",
	}},
	{[]string{"mongodb", "nosql"}, []string{
		"When would you choose a NoSQL database over a relational one? Discuss consistency trade-offs.",
	}},
	{[]string{"ci/cd"}, []string{
		"Describe a CI/CD pipeline you've set up. What stages did it include and why?",
	}},
	{[]string{"testing", "selenium", "cypress"}, []string{
		"Explain the testing pyramid. How do you decide what to unit test vs integration test vs e2e test?",
	}},
	{[]string{"os"}, []string{
		"Explain deadlock conditions and how an operating system can prevent or recover from them.",
	}},
	{[]string{"system design"}, []string{
		"Design a URL shortener service. Discuss storage, hashing strategy, and read/write patterns.",
	}},
}

// genericQuestions close out every pool, guaranteeing at least four candidates
// regardless of what was extracted.
var genericQuestions = []string{
	"Walk me through a challenging bug you debugged recently. What was your approach?",
	"How do you decide between optimizing for time complexity vs space complexity?",
	"Tell me about a project where you had to learn a new technology quickly. How did you approach it?",
	"Explain the difference between processes and threads. When would you use multithreading?",
}

// GenerateQuestions builds a candidate pool from keyword-gated question groups
// in fixed priority order, appends the generic closers, and returns the first
// ten unique questions scanning the pool in order.
func GenerateQuestions(skills []types.SkillCategory) []string {
	caps := BuildCapabilities(skills)
	return generateQuestions(caps)
}

func generateQuestions(caps Capabilities) []string {
	var pool []string
	for _, group := range questionGroups {
		if caps.hasAnyHit(group.triggers...) {
			pool = append(pool, group.questions...)
		}
	}
	pool = append(pool, genericQuestions...)

	questions := make([]string, 0, maxQuestions)
	seen := make(map[string]bool)
	for _, q := range pool {
		if len(questions) >= maxQuestions {
			break
		}
		if !seen[q] {
			seen[q] = true
			questions = append(questions, q)
		}
	}
	return questions
}
