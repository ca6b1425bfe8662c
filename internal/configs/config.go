package configs

import (
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Keygen  KeygenConfig  `toml:"keygen"`
	Prompt  PromptConfig  `toml:"prompt"`
	Audit   AuditConfig   `toml:"audit"`
	Display DisplayConfig `toml:"display"`
}

type KeygenConfig struct {
	MaxExponentAttempts int `toml:"max_exponent_attempts" validate:"min=1,max=10000000"`
}

type PromptConfig struct {
	MaxRetries int `toml:"max_retries" validate:"min=1,max=100"`
}

type AuditConfig struct {
	Enabled bool `toml:"enabled"`
}

type DisplayConfig struct {
	Banner     bool   `toml:"banner"`
	BannerFont string `toml:"banner_font" validate:"required"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Keygen:  KeygenConfig{MaxExponentAttempts: 100000},
		Prompt:  PromptConfig{MaxRetries: 5},
		Audit:   AuditConfig{Enabled: true},
		Display: DisplayConfig{Banner: true, BannerFont: "standard"},
	}
}

// Validate checks that all fields are within range.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig loads the configuration from path, or from ConfigFilePath when
// path is empty. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigFilePath()
	}

	config := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to path, or to ConfigFilePath when path
// is empty.
func SaveConfig(path string, config *Config) error {
	if path == "" {
		path = ConfigFilePath()
	}

	if err := config.Validate(); err != nil {
		return err
	}

	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
