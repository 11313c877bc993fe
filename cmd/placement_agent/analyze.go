package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/analysis"
	"github.com/jonathan/placement-prep/internal/ingestion"
)

var (
	analyzeCompany string
	analyzeRole    string
	analyzeJDFile  string
	analyzeJDURL   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and save the result",
	Long:  `Analyze a job description into a skill breakdown, readiness score, prep plan, interview checklist and likely questions, then save the entry to history.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name (optional)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target role (optional)")
	analyzeCmd.Flags().StringVar(&analyzeJDFile, "jd-file", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJDURL, "jd-url", "", "URL to fetch the job description from")
	analyzeCmd.MarkFlagsMutuallyExclusive("jd-file", "jd-url")
	analyzeCmd.MarkFlagsOneRequired("jd-file", "jd-url")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	_, log, store, cleanup, err := setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	defer func() { _ = log.Sync() }()

	var jdText string
	if analyzeJDFile != "" {
		jdText, err = ingestion.FromFile(analyzeJDFile)
	} else {
		jdText, err = ingestion.FromURL(ctx, analyzeJDURL)
	}
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	entry := analysis.Run(analyzeCompany, analyzeRole, jdText)
	if err := store.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	fmt.Printf("Analysis saved: %s\n", entry.ID)
	fmt.Printf("Readiness score: %d/100\n", entry.BaseScore)
	for _, category := range entry.ExtractedSkills {
		fmt.Printf("  %s: %d skills\n", category.Name, len(category.Skills))
	}
	if entry.CompanyIntel != nil {
		fmt.Printf("Company: %s (%s, %s)\n",
			entry.CompanyIntel.CompanyName,
			entry.CompanyIntel.Size,
			entry.CompanyIntel.Industry)
	}
	fmt.Printf("Use 'placement_agent show %s' for the full breakdown.\n", entry.ID)
	return nil
}
