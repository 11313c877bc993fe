package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the analysis and history endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, log, store, cleanup, err := setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	defer func() { _ = log.Sync() }()

	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	srv := server.New(server.Config{Port: port}, store, log)
	return srv.Start(ctx)
}
