// Package ingestion prepares job-description text for analysis: cleaning
// pasted text and extracting it from files or job-posting URLs.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	multiSpace      = regexp.MustCompile(`[ \t]+`)
	excessBlankLine = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes job-description text: CRLF line endings, trailing
// whitespace, collapsed runs of spaces, and at most one blank line between
// paragraphs. Structure-bearing lines (bullets, headings) keep their prefix.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			cleaned = append(cleaned, "")
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		body := multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
		cleaned = append(cleaned, indent+body)
	}

	result := strings.Join(cleaned, "\n")
	result = excessBlankLine.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// FromFile reads a job description from a text file and cleans it.
func FromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return CleanText(string(content)), nil
}
