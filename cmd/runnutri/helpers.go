package runnutri

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/saadjs/runnutri/internal/config"
	"github.com/saadjs/runnutri/internal/logger"
	"github.com/saadjs/runnutri/internal/service"
	"github.com/spf13/cobra"
)

// loadSettings resolves config and lets explicitly set flags override it.
func loadSettings(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("weight") {
		cfg.WeightKg = flagWeight
	}
	if flags.Changed("training") {
		c, err := service.ParseTrainingCategory(flagTraining)
		if err != nil {
			return nil, nil, err
		}
		cfg.Training = c
	}
	if flags.Changed("meal") {
		m, err := service.ParseMealSlot(flagMeal)
		if err != nil {
			return nil, nil, err
		}
		cfg.Meal = m
	}
	if flags.Changed("dinner-recovery") {
		cfg.DinnerRecovery = flagRecovery
	}
	if flags.Changed("log-level") {
		if cfg.Logger.Level, err = logger.ParseLevel(logLevel); err != nil {
			return nil, nil, err
		}
	}
	if flags.Changed("log-format") {
		if cfg.Logger.Format, err = logger.ParseFormat(logFormat); err != nil {
			return nil, nil, err
		}
	}
	return cfg, logger.New(cfg.Logger, cmd.ErrOrStderr()), nil
}

func newSession(cmd *cobra.Command) (*service.Session, error) {
	cfg, log, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	return service.NewSession(service.SessionInput{
		WeightKg:       cfg.WeightKg,
		Training:       cfg.Training,
		Meal:           cfg.Meal,
		DinnerRecovery: cfg.DinnerRecovery,
		Logger:         log,
	})
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func parseFloatArg(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func formatGrams(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
