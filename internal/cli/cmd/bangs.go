package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/bangr/internal/application/usecase"
	"github.com/bnema/bangr/internal/cli/styles"
	"github.com/bnema/bangr/internal/infrastructure/catalog"
)

var (
	bangsJSON         bool
	bangsListTrigger  string
	bangAddName       string
	bangAddDomain     string
	bangAddCategory   string
	bangAddSubcat     string
	bangsExportFormat string
	bangsResetYes     bool
)

var bangsCmd = &cobra.Command{
	Use:   "bangs",
	Short: "Manage custom bangs",
	Long: `Custom bangs are stored in your settings and take precedence over the
built-in catalog. A custom bang that shares a trigger with a built-in one
replaces that built-in entry entirely.`,
}

var bangsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom bangs",
	Long: `List custom bangs. With --trigger, list every entry of the merged
catalog declaring that trigger instead, built-in ones included. The first
entry listed is the one !trigger resolves to.`,
	Args: cobra.NoArgs,
	RunE:  runBangsList,
}

var bangsAddCmd = &cobra.Command{
	Use:   "add <trigger[,alias...]> <url-template>",
	Short: "Add or replace a custom bang",
	Long: `Add a custom bang. The template must contain {{{s}}} or {searchTerms}
where the search terms go.

Examples:
  bangr bangs add mt,mytube 'https://mytube.example/search?q={{{s}}}'
  bangr bangs add gh 'https://gitea.example/explore/repos?q={searchTerms}' --name Gitea`,
	Args: cobra.ExactArgs(2),
	RunE: runBangsAdd,
}

var bangsRemoveCmd = &cobra.Command{
	Use:     "remove <trigger>",
	Aliases: []string{"rm"},
	Short:   "Remove the custom bang declaring a trigger",
	Args:    cobra.ExactArgs(1),
	RunE:    runBangsRemove,
}

var bangsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import custom bangs from a JSON, YAML or TOML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBangsImport,
}

var bangsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export custom bangs",
	Long: `Export custom bangs to a file, or to stdout when no file is given.
The format follows the file extension unless --format is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBangsExport,
}

var bangsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all custom bangs and the default bang",
	Args:  cobra.NoArgs,
	RunE:  runBangsReset,
}

func init() {
	rootCmd.AddCommand(bangsCmd)
	bangsCmd.AddCommand(bangsListCmd, bangsAddCmd, bangsRemoveCmd, bangsImportCmd, bangsExportCmd, bangsResetCmd)

	bangsListCmd.Flags().BoolVar(&bangsJSON, "json", false, "output as JSON")
	bangsListCmd.Flags().StringVar(&bangsListTrigger, "trigger", "", "list catalog entries declaring this trigger")

	bangsAddCmd.Flags().StringVar(&bangAddName, "name", "", "service name (default: the trigger)")
	bangsAddCmd.Flags().StringVar(&bangAddDomain, "domain", "", "service domain (default: the template host)")
	bangsAddCmd.Flags().StringVar(&bangAddCategory, "category", "", "category used by search")
	bangsAddCmd.Flags().StringVar(&bangAddSubcat, "subcategory", "", "subcategory")

	bangsExportCmd.Flags().StringVar(&bangsExportFormat, "format", "", "json, yaml or toml")

	bangsResetCmd.Flags().BoolVar(&bangsResetYes, "yes", false, "confirm the reset")
}

func runBangsList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	settings, err := app.CustomBangsUC.Sync(app.Ctx())
	if err != nil {
		return err
	}

	entries := settings.CustomBangs
	if bangsListTrigger != "" {
		entries = app.SearchUC.Lookup(app.Ctx(), bangsListTrigger)
	}

	if bangsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(entries)
	}

	renderer := styles.NewBangsRenderer(app.Theme)
	if bangsListTrigger != "" {
		fmt.Println(renderer.RenderTrigger(bangsListTrigger, entries))
		return nil
	}
	fmt.Println(renderer.RenderList(entries, settings.DefaultBang))
	return nil
}

func runBangsAdd(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.CustomBangsUC.Add(app.Ctx(), usecase.AddCustomBangInput{
		Triggers:    splitTriggers(args[0]),
		ServiceName: bangAddName,
		Domain:      bangAddDomain,
		Category:    bangAddCategory,
		Subcategory: bangAddSubcat,
		URLTemplate: args[1],
	})
	if err != nil {
		return err
	}

	fmt.Println(styles.NewBangsRenderer(app.Theme).RenderAdded(out.Entry, out.Replaced))
	return nil
}

func runBangsRemove(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	trigger := strings.TrimPrefix(args[0], "!")
	removed, err := app.CustomBangsUC.Remove(app.Ctx(), trigger)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewBangsRenderer(app.Theme).RenderRemoved(trigger, removed))
	return nil
}

func runBangsImport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	entries, err := catalog.LoadFile(args[0])
	if err != nil {
		return err
	}
	count, err := app.CustomBangsUC.Import(app.Ctx(), entries)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewBangsRenderer(app.Theme).RenderImported(count, args[0]))
	return nil
}

func runBangsExport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	entries, err := app.CustomBangsUC.List(app.Ctx())
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	format, err := exportFormat(bangsExportFormat, path)
	if err != nil {
		return err
	}

	if path == "" {
		return catalog.Export(os.Stdout, entries, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := catalog.Export(f, entries, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runBangsReset(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if !bangsResetYes {
		return fmt.Errorf("refusing to delete custom bangs without --yes")
	}

	if err := app.CustomBangsUC.Reset(app.Ctx()); err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessStyle.Render(styles.IconTrash) + " Custom bangs and default bang cleared")
	return nil
}

// splitTriggers accepts "a,b" as well as "a b" or "!a".
func splitTriggers(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' })
}

// exportFormat picks the explicit format, else the extension of path, else JSON.
func exportFormat(explicit, path string) (catalog.Format, error) {
	switch {
	case explicit != "":
		return catalog.FormatFromPath("bangs." + strings.ToLower(explicit))
	case path != "":
		return catalog.FormatFromPath(path)
	default:
		return catalog.FormatJSON, nil
	}
}
