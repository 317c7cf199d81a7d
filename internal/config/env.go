package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Vazpera/vividry/internal/types"
)

// EnvPrefix is prepended to every override variable, e.g. VIVIDRY_NUMBER.
const EnvPrefix = "vividry"

// DotEnvFile may hold VIVIDRY_* overrides for the working directory.
const DotEnvFile = ".env"

// Env holds overrides loaded from environment variables.
// Zero values mean "not set".
type Env struct {
	// Config is the config file path
	// Env: VIVIDRY_CONFIG
	Config string `envconfig:"CONFIG"`

	// LogLevel overrides log_level
	// Env: VIVIDRY_LOG_LEVEL
	LogLevel string `envconfig:"LOG_LEVEL"`

	// Number overrides gradient.number
	// Env: VIVIDRY_NUMBER
	Number int `envconfig:"NUMBER"`

	// Foreground overrides swatch.foreground
	// Env: VIVIDRY_FOREGROUND
	Foreground string `envconfig:"FOREGROUND"`

	// Listen overrides serve.listen
	// Env: VIVIDRY_LISTEN
	Listen string `envconfig:"LISTEN"`
}

// LoadEnv loads overrides from environment variables and DotEnvFile.
func LoadEnv() (*Env, error) {
	return LoadEnvFile(DotEnvFile)
}

// LoadEnvFile loads overrides from environment variables, filling in unset
// VIVIDRY_* variables from the dotenv file at path. A missing file is fine.
func LoadEnvFile(path string) (*Env, error) {
	if err := loadDotEnv(path); err != nil {
		return nil, err
	}
	var e Env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return nil, fmt.Errorf("failed to load settings from environment: %w", err)
	}
	return &e, nil
}

// ConfigPath returns the config path from the environment, falling back to
// the given path.
func (e *Env) ConfigPath(fallback string) string {
	if e.Config != "" {
		return e.Config
	}
	return fallback
}

// Apply copies every set override onto cfg.
func (e *Env) Apply(cfg *Config) {
	if e.LogLevel != "" {
		cfg.LogLevel = types.LogLevel(e.LogLevel)
	}
	if e.Number != 0 {
		cfg.Gradient.Number = e.Number
	}
	if e.Foreground != "" {
		cfg.Swatch.Foreground = types.Foreground(e.Foreground)
	}
	if e.Listen != "" {
		cfg.Serve.Listen = e.Listen
	}
}

// loadDotEnv exports the VIVIDRY_* entries of path that the process
// environment does not already set. Other entries are ignored.
func loadDotEnv(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	prefix := strings.ToUpper(EnvPrefix) + "_"
	for k, v := range vars {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if cur, ok := os.LookupEnv(k); ok && cur != "" {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}
