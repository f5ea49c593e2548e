package runnutri

import (
	"fmt"

	"github.com/saadjs/runnutri/internal/service"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <current> <target>",
	Short: "Classify an intake against a target (Low, On target, Over)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := parseFloatArg("current", args[0])
		if err != nil {
			return err
		}
		target, err := parseFloatArg("target", args[1])
		if err != nil {
			return err
		}
		if current < 0 || target < 0 {
			return fmt.Errorf("current and target must be >= 0")
		}
		ev := service.Evaluate(current, target)
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", ev.Label, ev.Tier)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}
