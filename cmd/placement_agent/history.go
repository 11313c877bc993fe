package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses, newest first",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	_, log, store, cleanup, err := setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	defer func() { _ = log.Sync() }()

	result, err := store.History(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if result.HadCorruption {
		fmt.Println("Warning: corrupt records were found and removed from history.")
	}
	if len(result.Entries) == 0 {
		fmt.Println("No analyses saved yet.")
		return nil
	}

	for _, entry := range result.Entries {
		company := entry.Company
		if company == "" {
			company = "-"
		}
		role := entry.Role
		if role == "" {
			role = "-"
		}
		fmt.Printf("%s  %s  score=%d  company=%s  role=%s\n",
			entry.ID,
			entry.CreatedAt.Format("2006-01-02 15:04"),
			entry.FinalScore,
			company,
			role)
	}
	fmt.Printf("%d analyses.\n", len(result.Entries))
	return nil
}
