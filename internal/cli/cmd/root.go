// Package cmd provides Cobra CLI commands for bangr.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/bangr/internal/cli"
	"github.com/bnema/bangr/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "bangr",
		Short: "Resolve !bang queries and search the bang catalog",
		Long: `Bangr - DuckDuckGo-style bangs for your launcher, browser and scripts.

A query such as "!gh bnema/bangr" is resolved into the matching service's
search URL. Queries without a bang go to your default bang.

Features:
  - Built-in catalog of well-known services, or your own JSON/YAML/TOML file
  - Ranked bang search for launchers and dropdowns
  - Custom bangs that override built-ins, stored in SQLite or bbolt
  - "Did you mean" hints for mistyped bangs`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/bangr/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
