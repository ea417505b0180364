package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-importer/internal/config"
	"github.com/jonathan/profile-importer/internal/fetch"
	"github.com/jonathan/profile-importer/internal/handoff"
	"github.com/jonathan/profile-importer/internal/importer"
	"github.com/jonathan/profile-importer/internal/observability"
)

var importCommand = &cobra.Command{
	Use:   "import",
	Short: "Import a profile from an archive, document, hand-off, or URL",
	Long: `Runs one import: a data export archive (.zip), an exported profile document (.pdf, .html), a pending OAuth hand-off payload, or a profile URL, in that order of precedence.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runImportCmd,
}

var (
	importConfigPath  string
	importFile        string
	importURL         string
	importOut         string
	importSession     string
	importEndpoint    string
	importDatabaseURL string
	importVerbose     bool
)

func init() {
	// Config file flag (processed first)
	importCommand.Flags().StringVar(&importConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	importCommand.Flags().StringVarP(&importFile, "file", "f", "", "Path to a .zip data export or a .pdf/.html profile document (mutually exclusive with --url)")
	importCommand.Flags().StringVarP(&importURL, "url", "u", "", "Profile URL for the fallback fetch path (mutually exclusive with --file)")
	importCommand.Flags().StringVarP(&importOut, "out", "o", "", "Write the imported resume JSON to this path (defaults to stdout)")
	importCommand.Flags().StringVar(&importSession, "session", "", "Session ID for reading a pending OAuth hand-off from the database")
	importCommand.Flags().StringVar(&importEndpoint, "fetch-endpoint", "", "Import service endpoint for URL imports (optional, defaults to PROFILE_IMPORTER_FETCH_ENDPOINT env var)")
	importCommand.Flags().StringVar(&importDatabaseURL, "db-url", "", "PostgreSQL connection URL for the hand-off store (optional, defaults to PROFILE_IMPORTER_DATABASE_URL env var)")
	importCommand.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(importCommand)
}

func runImportCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if importConfigPath != "" {
		loadedCfg, err := config.LoadConfig(importConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if importVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", importConfigPath)
		}
	}

	// Step 2: Overlay environment, then CLI overrides (flags take priority)
	cfg.FromEnv()
	if cmd.Flags().Changed("file") {
		cfg.File = importFile
	}
	if cmd.Flags().Changed("url") {
		cfg.URL = importURL
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = importOut
	}
	if cmd.Flags().Changed("fetch-endpoint") {
		cfg.FetchEndpoint = importEndpoint
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = importDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = importVerbose
	}

	// Step 3: Validate
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 4: Assemble collaborators
	imp, cleanup, err := buildImporter(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	in := importer.Input{URL: cfg.URL}
	if cfg.File != "" {
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		in.Filename = cfg.File
		in.Data = data
	}

	// Step 5: Run the import and report
	result := imp.Import(ctx, in)

	printer := observability.NewPrinter(os.Stderr)
	printer.PrintImportResult(result)

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if cfg.Out != "" {
		if err := os.WriteFile(cfg.Out, append(encoded, '\n'), 0o600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if cfg.Verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Result written to: %s\n", cfg.Out)
		}
	} else {
		_, _ = fmt.Fprintln(os.Stdout, string(encoded))
	}

	if !result.Success {
		return fmt.Errorf("import failed: %s", result.Error)
	}
	return nil
}

// buildImporter wires the hand-off store and the optional URL fetcher. The
// returned cleanup closes the database pool when one was opened.
func buildImporter(ctx context.Context, cfg config.Config) (*importer.Importer, func(), error) {
	var store handoff.Store
	cleanup := func() {}

	if cfg.DatabaseURL != "" && importSession != "" {
		pgStore, err := handoff.ConnectPostgres(ctx, cfg.DatabaseURL, importSession)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open hand-off store: %w", err)
		}
		store = pgStore
		cleanup = pgStore.Close
	} else {
		store = handoff.NewMemoryStore()
	}

	var fetcher importer.ProfileFetcher
	if cfg.FetchEndpoint != "" {
		fetcher = fetch.NewClient(cfg.FetchEndpoint, nil)
	}

	return importer.New(store, fetcher, cfg.Verbose), cleanup, nil
}
