package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/bcsv/table"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print a table's header and field layout",
	Long: `Print a table's record count, stride and per-field layout.

Example:
  bcsv info --lookup names.txt ScenarioData.bcsv`,
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

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "records: %d\n", tbl.Len())
		fmt.Fprintf(out, "fields:  %d\n", tbl.NumFields())
		fmt.Fprintf(out, "%-24s %-14s %8s %6s %10s\n", "NAME", "TYPE", "OFFSET", "SHIFT", "MASK")
		for _, f := range tbl.Layout().Fields() {
			fmt.Fprintf(out, "%-24s %-14s %8d %6d 0x%08X\n",
				f.Name, f.Entry.Type, f.Entry.Offset, f.Entry.Shift, f.Entry.Mask)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
