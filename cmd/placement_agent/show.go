package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one saved analysis as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, log, store, cleanup, err := setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	defer func() { _ = log.Sync() }()

	entry, err := store.EntryByID(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if entry == nil {
		return fmt.Errorf("no analysis with id %s", args[0])
	}

	out, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format entry: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
