package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log     LogConfig
	Seed    SeedConfig
	Scoring ScoringConfig
	Metrics MetricsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig controls loading of the built-in demo dataset.
type SeedConfig struct {
	Demo bool
}

// ScoringConfig tunes the lead-scoring collaborator.
type ScoringConfig struct {
	Enabled  bool
	Provider string
}

// MetricsConfig toggles the Prometheus registry.
type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// With an explicit config file a missing .env surfaces as a path
	// error, not viper's not-found type. Either way the file is optional.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Seed = SeedConfig{
		Demo: v.GetBool("SEED_DEMO_DATA"),
	}

	cfg.Scoring = ScoringConfig{
		Enabled:  v.GetBool("ENABLE_LEAD_SCORING"),
		Provider: v.GetString("LEAD_SCORING_PROVIDER"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("ENABLE_METRICS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SEED_DEMO_DATA", true)

	v.SetDefault("ENABLE_LEAD_SCORING", true)
	v.SetDefault("LEAD_SCORING_PROVIDER", "heuristic")

	v.SetDefault("ENABLE_METRICS", true)
}
