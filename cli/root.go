// Package cli provides the calculator-api command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"calculator-api/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	cfgFile    string
	jsonOutput bool
	yamlOutput bool
	verbose    bool

	cfg        config.Config
	logCleanup = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "calculator-api",
	Short: "Calculators and converters as a JSON API and CLI",
	Long: `calculator-api serves a set of small calculators (ideal weight, simple
interest, inflation, break-even, alcohol calories, currency conversion) and text
tools (case converter, text cipher) over HTTP, and runs the same calculations
from the command line.

Configuration is read from calculator-api.yaml in the working directory or
~/.config/calculator-api/, and from CALCULATOR_API_* environment variables.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(config.NewViper(cfgFile))
		if err != nil {
			return err
		}

		level := cfg.LogLevel()
		if verbose {
			level = slog.LevelDebug
		}
		logger, cleanup := config.SetupLogger(cfg.Log.File, level)
		slog.SetDefault(logger)
		logCleanup = cleanup
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := logCleanup(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./calculator-api.yaml or ~/.config/calculator-api/calculator-api.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON")
	rootCmd.PersistentFlags().BoolVar(&yamlOutput, "yaml", false, "output results as YAML")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(sitemapCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
