package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/systmms/officemru/cmd/officemru/commands"
	"github.com/systmms/officemru/internal/config"
	"github.com/systmms/officemru/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Global flags
	var (
		configFile string
		noColor    bool
		debug      bool
	)

	// Create config placeholder
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "officemru",
		Short: "Resolve Office template MRU locations and authentication containers",
		Long: `officemru scans the per-application configuration store for Word,
PowerPoint and Excel, discovers authentication containers, and resolves the
"File MRU" locations where each application tracks recently used templates.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize logger with parsed flags
			logger := logging.New(debug, noColor)

			// Update config with parsed values
			cfg.Path = configFile
			cfg.Logger = logger
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "officemru.yaml", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Add commands
	rootCmd.AddCommand(
		commands.NewResolveCommand(cfg),
		commands.NewContainersCommand(cfg),
		commands.NewPathsCommand(cfg),
		commands.NewPrimaryCommand(cfg),
		commands.NewMRUCommand(cfg),
		commands.NewTemplatesCommand(cfg),
		commands.NewOpenCommand(cfg),
		commands.NewCompletionCommand(cfg),
	)

	return rootCmd.Execute()
}
