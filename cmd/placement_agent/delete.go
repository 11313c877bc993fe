package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := store.DeleteEntry(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}
