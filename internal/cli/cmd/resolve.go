package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/bangr/internal/application/usecase"
	"github.com/bnema/bangr/internal/cli/styles"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <query...>",
	Short: "Resolve a query into a search URL",
	Long: `Resolve a query into the URL of the bang it names. The bang may appear
anywhere in the query. Without a bang the default bang is used.

Examples:
  bangr resolve !gh bnema/bangr   # https://github.com/search?q=bnema%2Fbangr...
  bangr resolve golang generics   # default bang
  xdg-open "$(bangr resolve !w go)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "print the full resolution as JSON")
}

func runResolve(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.ResolveUC.Resolve(app.Ctx(), usecase.ResolveBangInput{Query: strings.Join(args, " ")})
	if err != nil {
		return err
	}

	if resolveJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(out)
	}

	// hints go to stderr so the URL stays pipeable
	if len(out.Suggestions) > 0 {
		fmt.Fprintln(os.Stderr, styles.NewBangsRenderer(app.Theme).RenderSuggestions(out.Token, out.Suggestions))
	}
	fmt.Println(out.URL)
	return nil
}
