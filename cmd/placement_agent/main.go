// Package main provides the entry point for the Placement Prep agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "placement_agent",
	Short: "Placement Prep analysis agent",
	Long:  "Placement Prep analyzes job descriptions into skill breakdowns, readiness scores, prep plans and interview questions, and keeps a persistent analysis history.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
