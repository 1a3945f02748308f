package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/bangr/internal/cli"
	"github.com/bnema/bangr/internal/infrastructure/config"
	"github.com/bnema/bangr/internal/infrastructure/worker"
	"github.com/bnema/bangr/internal/logging"
)

const defaultCompleteTimeout = 250 * time.Millisecond

var (
	completeMax     int
	completeTimeout time.Duration
)

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Stream ranked bangs for queries read from stdin",
	Long: `Read one query per line from stdin and write one JSON object per line
with the ranked bangs for it. Meant for launchers that keep bangr running
while the user types. Config changes and custom bangs edited from another
shell are picked up without a restart.

Example:
  printf 'g\ngh\n' | bangr complete --max 5`,
	Args: cobra.NoArgs,
	RunE: runComplete,
}

func init() {
	rootCmd.AddCommand(completeCmd)

	completeCmd.Flags().IntVar(&completeMax, "max", 0, "maximum results per query (default: search.dropdown_items)")
	completeCmd.Flags().DurationVar(&completeTimeout, "timeout", defaultCompleteTimeout, "how long to wait for the background worker")
}

func runComplete(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	maxItems := completeMax
	if maxItems <= 0 {
		maxItems = app.Config.Search.DropdownItems
	}

	client := worker.Start(ctx, app.Catalog, worker.Options{
		CacheSize: app.Config.Search.CacheSize,
		MaxItems:  maxItems,
		Policy:    app.Config.RankPolicy(),
	})
	defer client.Close()

	app.Manager.OnConfigChange(func(cfg *config.Config) { client.SetPolicy(cfg.RankPolicy()) })
	if err := app.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	completer := &cli.Completer{
		Client:        client,
		Search:        app.SearchUC,
		LoadOverrides: app.CustomBangsUC.List,
		MaxItems:      maxItems,
		Timeout:       completeTimeout,
	}
	return completer.Stream(ctx, os.Stdin, os.Stdout)
}
