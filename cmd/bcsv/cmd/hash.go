package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/bcsv/lookup"
)

var hashCmd = &cobra.Command{
	Use:   "hash <name>...",
	Short: "Compute field name hashes",
	Long: `Compute the 32-bit field hash of each given name.

Example:
  bcsv hash ScenarioNo ZoneName`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "%08X  %s\n", lookup.Calc(name), name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
