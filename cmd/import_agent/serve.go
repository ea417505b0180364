package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-importer/internal/fetch"
	"github.com/jonathan/profile-importer/internal/handoff"
	"github.com/jonathan/profile-importer/internal/importer"
	"github.com/jonathan/profile-importer/internal/server"
)

var (
	servePort    int
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the import endpoint for uploads and URL imports.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// A server process keeps a per-process hand-off channel; URL imports need
	// the fetch endpoint configured in the environment.
	var fetcher importer.ProfileFetcher
	if endpoint := os.Getenv("PROFILE_IMPORTER_FETCH_ENDPOINT"); endpoint != "" {
		fetcher = fetch.NewClient(endpoint, nil)
	}

	imp := importer.New(handoff.NewMemoryStore(), fetcher, serveVerbose)
	srv := server.New(server.Config{Port: servePort}, imp)

	return srv.Start()
}
