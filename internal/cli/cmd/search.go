package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/bangr/internal/application/usecase"
	"github.com/bnema/bangr/internal/cli/styles"
	"github.com/bnema/bangr/internal/logging"
)

var (
	searchMax      int
	searchDropdown bool
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the bang catalog",
	Long: `Rank bangs matching a partial trigger, service name or category.

Examples:
  bangr search gh            # triggers starting with "gh" first
  bangr search video         # every bang in a matching category
  bangr search y --dropdown  # shorter list for suggestion menus`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchMax, "max", 0, "maximum results (default from config)")
	searchCmd.Flags().BoolVar(&searchDropdown, "dropdown", false, "use the dropdown result limit")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
}

func runSearch(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	if _, err := app.CustomBangsUC.Sync(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("custom bangs unavailable, searching built-ins only")
	}

	query := strings.Join(args, " ")
	out := app.SearchUC.FilterBangs(ctx, usecase.FilterBangsInput{
		Query:    query,
		MaxItems: searchLimit(app.Config.Search.MaxItems, app.Config.Search.DropdownItems),
	})

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(out.Results)
	}

	fmt.Println(styles.NewBangsRenderer(app.Theme).RenderResults(query, out.Results))
	return nil
}

// searchLimit applies --max and --dropdown over the configured limits.
func searchLimit(maxItems, dropdownItems int) int {
	switch {
	case searchMax > 0:
		return searchMax
	case searchDropdown:
		return dropdownItems
	default:
		return maxItems
	}
}
