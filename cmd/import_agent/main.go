// Package main provides the entry point for the profile importer CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "import_agent",
	Short: "LinkedIn profile importer",
	Long:  "Import profile data from a LinkedIn data export archive, an exported profile PDF, a completed OAuth hand-off, or a profile URL, and normalize it into canonical resume content.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
