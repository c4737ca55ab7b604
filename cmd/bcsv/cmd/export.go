package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/bcsv/csvio"
	"github.com/arloliu/bcsv/table"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Convert a binary table to CSV",
	Long: `Decode a binary table and write it as CSV text.

With --typed-header each header cell carries the field's type and
default as name:Type:default, which lets import reconstruct the exact
schema without inference.

Example:
  bcsv export --lookup names.txt -o ScenarioData.csv ScenarioData.bcsv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readDump(cmd, args[0])
		if err != nil {
			return err
		}
		opts, err := codecOptions(cmd)
		if err != nil {
			return err
		}
		names, err := loadNames(cmd)
		if err != nil {
			return err
		}

		tbl, err := table.Decode(data, names, opts)
		if err != nil {
			return err
		}

		csvOpts := csvio.DefaultOptions()
		csvOpts.TypedHeader, _ = cmd.Flags().GetBool("typed-header")

		out := cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		return csvio.Write(out, tbl, csvOpts)
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output CSV path (default stdout)")
	exportCmd.Flags().Bool("typed-header", false, "Write name:Type:default header cells")
	rootCmd.AddCommand(exportCmd)
}
