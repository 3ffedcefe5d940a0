package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/datagen/synthetic-data/internal/domain"
)

// EnvSettings holds overrides read from the environment. Unset variables
// leave the file or default values alone.
type EnvSettings struct {
	Seed               *int64 `env:"DATAGEN_SEED"`
	ParquetCompression string `env:"DATAGEN_PARQUET_COMPRESSION"`
	OutputDir          string `env:"DATAGEN_OUTPUT_DIR"`
	Verbose            bool   `env:"DATAGEN_VERBOSE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnvSettings reads the DATAGEN_* variables.
func LoadEnvSettings() (EnvSettings, error) {
	var s EnvSettings
	if err := ParseEnv(&s); err != nil {
		return EnvSettings{}, err
	}
	return s, nil
}

// Apply copies the set overrides onto config.
func (s EnvSettings) Apply(config *domain.Configuration) {
	if s.Seed != nil {
		config.ApplySeed(*s.Seed)
	}
	if s.ParquetCompression != "" {
		config.Output.ParquetCompression = s.ParquetCompression
	}
	if s.OutputDir != "" {
		config.Output.Dir = s.OutputDir
	}
}
