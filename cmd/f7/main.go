// Package main provides the f7 developer CLI: preview server, page
// rendering, and PWA manifest generation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	f7 "github.com/lamarque/go-f7"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "f7",
	Short: "f7 - Framework7 markup tooling",
	Long: `f7 renders and previews Framework7 component markup built with the
go-f7 library.

The preview server serves one demo page per layout so chrome and
component markup can be inspected in a browser.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// loadConfig resolves the app config from --config, or defaults.
func loadConfig() (f7.Config, error) {
	if configPath == "" {
		return f7.DefaultConfig(), nil
	}
	return f7.LoadConfig(configPath)
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML app config")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(manifestCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
