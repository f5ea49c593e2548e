package runnutri

import (
	"fmt"
	"io"

	"github.com/saadjs/runnutri/internal/model"
	"github.com/saadjs/runnutri/internal/service"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show daily and per-meal carb/protein targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		training, err := service.TrainingConfigFor(cfg.Training)
		if err != nil {
			return err
		}
		daily, err := service.DailyTargetsFor(cfg.WeightKg, cfg.Training)
		if err != nil {
			return err
		}
		meals := service.MealTargetsFor(daily, cfg.DinnerRecovery)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Weight: %s kg | Training: %s (%s) | Dinner recovery: %s\n", formatGrams(cfg.WeightKg), training.Label, training.Category, onOff(cfg.DinnerRecovery))
		fmt.Fprintf(out, "Daily: C %dg | P %dg\n", daily.CarbG, daily.ProteinG)
		printMealTargets(out, meals)
		return nil
	},
}

func printMealTargets(out io.Writer, meals model.MealTargets) {
	fmt.Fprintln(out, "MEAL\tCARB\tPROTEIN")
	for _, slot := range model.MealSlots {
		t := meals.For(slot)
		fmt.Fprintf(out, "%s\t%d\t%d\n", slot, t.CarbG, t.ProteinG)
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
}
