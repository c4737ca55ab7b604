package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/bcsv/csvio"
	"github.com/arloliu/bcsv/table"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Convert CSV text to a binary table",
	Long: `Parse CSV text and encode it as a binary table with a canonical
field layout. Typed headers (name:Type:default) fix each column's
type; plain headers infer types from the cell literals.

Example:
  bcsv import -o ScenarioData.bcsv ScenarioData.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		tbl, err := csvio.Read(f, csvio.DefaultOptions())
		if err != nil {
			return err
		}
		opts, err := codecOptions(cmd)
		if err != nil {
			return err
		}

		data, err := table.Encode(tbl, opts)
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("output")
		if path == "" {
			return fmt.Errorf("import requires --output")
		}

		return writeDump(cmd, path, data)
	},
}

func init() {
	importCmd.Flags().StringP("output", "o", "", "Output binary table path")
	rootCmd.AddCommand(importCmd)
}
