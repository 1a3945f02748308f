package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bangr/internal/infrastructure/catalog"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of catalog files",
	Long: `Print the JSON schema accepted by catalog.path and 'bangr bangs import'.
Editors can use it to validate and complete catalog files.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := catalog.Schema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
