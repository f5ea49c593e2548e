package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/saadjs/runnutri/internal/app"
	"github.com/saadjs/runnutri/internal/logger"
	"github.com/saadjs/runnutri/internal/model"
	"github.com/saadjs/runnutri/internal/service"
)

const (
	EnvWeightKg       = "RUNNUTRI_WEIGHT_KG"
	EnvTraining       = "RUNNUTRI_TRAINING"
	EnvMeal           = "RUNNUTRI_MEAL"
	EnvDinnerRecovery = "RUNNUTRI_DINNER_RECOVERY"
	EnvLogLevel       = "RUNNUTRI_LOG_LEVEL"
	EnvLogFormat      = "RUNNUTRI_LOG_FORMAT"
)

const DefaultWeightKg = 65

type Config struct {
	WeightKg       float64
	Training       model.TrainingCategory
	Meal           model.MealSlot
	DinnerRecovery bool
	Logger         logger.Config
}

// Load resolves configuration from the process environment, then the dotenv
// file at envPath, then defaults. An empty envPath means app.DefaultEnvPath;
// a missing file is not an error.
func Load(envPath string) (*Config, error) {
	file, err := readEnvFile(envPath)
	if err != nil {
		return nil, err
	}
	get := func(key string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(file[key])
	}

	cfg := &Config{
		WeightKg: DefaultWeightKg,
		Training: model.TrainingModerate,
		Meal:     model.MealPreWorkout,
	}
	if v := get(EnvWeightKg); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil || !(w > 0) || math.IsInf(w, 1) {
			return nil, fmt.Errorf("invalid %s %q (expected a positive number)", EnvWeightKg, v)
		}
		cfg.WeightKg = w
	}
	if v := get(EnvTraining); v != "" {
		c, err := service.ParseTrainingCategory(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvTraining, err)
		}
		cfg.Training = c
	}
	if v := get(EnvMeal); v != "" {
		m, err := service.ParseMealSlot(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvMeal, err)
		}
		cfg.Meal = m
	}
	if v := get(EnvDinnerRecovery); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q (expected true or false)", EnvDinnerRecovery, v)
		}
		cfg.DinnerRecovery = b
	}
	if cfg.Logger.Level, err = logger.ParseLevel(get(EnvLogLevel)); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	if cfg.Logger.Format, err = logger.ParseFormat(get(EnvLogFormat)); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogFormat, err)
	}
	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		p, err := app.DefaultEnvPath()
		if err != nil {
			return map[string]string{}, nil
		}
		path = p
	}
	ok, err := app.FileExists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}
