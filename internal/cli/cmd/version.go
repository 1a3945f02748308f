package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/bangr/internal/cli/styles"
	"github.com/bnema/bangr/internal/infrastructure/catalog"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Display version, build info and the size of the built-in bang catalog.`,
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "output as JSON")
}

func runVersion(_ *cobra.Command, _ []string) error {
	if versionJSON {
		return json.NewEncoder(os.Stdout).Encode(buildInfo)
	}

	builtins := -1
	if entries, err := catalog.Default(); err == nil {
		builtins = len(entries)
	}
	fmt.Println(styles.NewVersionRenderer(styles.NewTheme()).Render(buildInfo, builtins))
	return nil
}
