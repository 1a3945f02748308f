package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/bangr/internal/cli/styles"
	"github.com/bnema/bangr/internal/logging"
)

var defaultClear bool

var defaultCmd = &cobra.Command{
	Use:   "default [trigger]",
	Short: "Show or set the default bang",
	Long: `The default bang handles queries without a bang, and queries whose
bang is unknown. Without arguments the current default is shown.

Examples:
  bangr default          # show
  bangr default ddg      # use DuckDuckGo
  bangr default --clear  # back to the configured fallback`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDefault,
}

func init() {
	rootCmd.AddCommand(defaultCmd)

	defaultCmd.Flags().BoolVar(&defaultClear, "clear", false, "remove the stored default bang")
}

func runDefault(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	switch {
	case defaultClear:
		if err := app.CustomBangsUC.SetDefault(ctx, ""); err != nil {
			return err
		}
	case len(args) == 1:
		if err := app.CustomBangsUC.SetDefault(ctx, strings.TrimPrefix(args[0], "!")); err != nil {
			return err
		}
	}

	settings, err := app.CustomBangsUC.Sync(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("settings unavailable")
	}

	configured := settings.DefaultBang != ""
	trigger := settings.DefaultBang
	if !configured {
		trigger = app.Config.Resolve.FallbackTrigger
	}
	entry, ok := app.SearchUC.Find(ctx, trigger)
	if !ok {
		return fmt.Errorf("default bang !%s is not in the catalog", trigger)
	}

	fmt.Println(styles.NewBangsRenderer(app.Theme).RenderDefault(entry, configured))
	return nil
}
