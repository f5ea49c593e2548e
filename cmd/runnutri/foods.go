package runnutri

import (
	"fmt"

	"github.com/saadjs/runnutri/internal/service"
	"github.com/spf13/cobra"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List the built-in food catalog",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "ID\tLABEL\tUNIT\tC/UNIT\tP/UNIT\tMAX\tSTEP")
		for _, f := range service.Foods() {
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", f.ID, f.Label, f.Unit, formatGrams(f.CarbG), formatGrams(f.ProteinG), formatGrams(f.Max), formatGrams(f.Step))
		}
	},
}

func init() {
	rootCmd.AddCommand(foodsCmd)
}
