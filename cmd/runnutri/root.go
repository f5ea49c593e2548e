package runnutri

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	envFile      string
	logLevel     string
	logFormat    string
	flagWeight   float64
	flagTraining string
	flagMeal     string
	flagRecovery bool
)

var rootCmd = &cobra.Command{
	Use:           "runnutri",
	Short:         "runnutri plans daily carb and protein targets for runners",
	Long:          "runnutri derives daily and per-meal carbohydrate/protein targets from body weight and training load, and tracks a session food log against them.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&envFile, "env-file", "", "Path to a dotenv config file (default <user config dir>/runnutri/runnutri.env)")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "Log format: text or json")
	pf.Float64Var(&flagWeight, "weight", 0, "Body weight in kg")
	pf.StringVar(&flagTraining, "training", "", "Training category: easy, moderate, hard")
	pf.StringVar(&flagMeal, "meal", "", "Active meal slot: preWorkout, breakfast, lunch, dinner, postWorkout")
	pf.BoolVar(&flagRecovery, "dinner-recovery", false, "Fold the post-workout allotment into dinner")
}
