package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/types"
)

var confidenceCmd = &cobra.Command{
	Use:   "confidence <id> <skill>",
	Short: "Toggle a skill between 'know' and 'practice' and rescore the entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfidence,
}

func init() {
	rootCmd.AddCommand(confidenceCmd)
}

func runConfidence(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, log, store, cleanup, err := setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	defer func() { _ = log.Sync() }()

	id, skill := args[0], args[1]
	entry, err := store.ToggleSkillConfidence(ctx, id, skill)
	if err != nil {
		return fmt.Errorf("failed to toggle confidence: %w", err)
	}

	level := entry.Confidence(skill)
	if level == types.ConfidenceKnow {
		fmt.Printf("%s: marked as known\n", skill)
	} else {
		fmt.Printf("%s: marked as needs practice\n", skill)
	}
	fmt.Printf("Score: %d/100 (base %d)\n", entry.FinalScore, entry.BaseScore)
	return nil
}
