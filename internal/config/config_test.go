package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/runnutri/internal/config"
	"github.com/saadjs/runnutri/internal/logger"
	"github.com/saadjs/runnutri/internal/model"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvWeightKg, config.EnvTraining, config.EnvMeal,
		config.EnvDinnerRecovery, config.EnvLogLevel, config.EnvLogFormat,
	} {
		t.Setenv(k, "")
	}
}

func writeEnvFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runnutri.env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		WeightKg: config.DefaultWeightKg,
		Training: model.TrainingModerate,
		Meal:     model.MealPreWorkout,
		Logger:   logger.Config{Level: slog.LevelWarn, Format: logger.FormatText},
	}, cfg)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, `
RUNNUTRI_WEIGHT_KG=58.5
RUNNUTRI_TRAINING=hard
RUNNUTRI_MEAL=dinner
RUNNUTRI_DINNER_RECOVERY=true
RUNNUTRI_LOG_LEVEL=debug
RUNNUTRI_LOG_FORMAT=json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 58.5, cfg.WeightKg)
	assert.Equal(t, model.TrainingHard, cfg.Training)
	assert.Equal(t, model.MealDinner, cfg.Meal)
	assert.True(t, cfg.DinnerRecovery)
	assert.Equal(t, slog.LevelDebug, cfg.Logger.Level)
	assert.Equal(t, logger.FormatJSON, cfg.Logger.Format)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "RUNNUTRI_WEIGHT_KG=58.5\nRUNNUTRI_TRAINING=hard\n")
	t.Setenv(config.EnvWeightKg, "72")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 72.0, cfg.WeightKg)
	assert.Equal(t, model.TrainingHard, cfg.Training)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		config.EnvWeightKg:       "heavy",
		config.EnvTraining:       "tempo",
		config.EnvMeal:           "brunch",
		config.EnvDinnerRecovery: "sometimes",
		config.EnvLogLevel:       "loud",
		config.EnvLogFormat:      "xml",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}

	clearEnv(t)
	t.Setenv(config.EnvWeightKg, "-4")
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, config.EnvWeightKg)
}

func TestLoadRejectsDirectoryPath(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(t.TempDir())
	assert.Error(t, err)
}
