// Package config loads desky's configuration from file and environment
// with viper and reloads it when the file changes.
package config

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-desky"
	"github.com/grindlemire/go-desky/internal/logging"
	"github.com/grindlemire/go-desky/pkg/termstyle"
)

// UIConfig sizes the demo layout.
type UIConfig struct {
	Columns int `mapstructure:"columns" yaml:"columns" json:"columns" jsonschema:"minimum=1"`
	Rows    int `mapstructure:"rows" yaml:"rows" json:"rows" jsonschema:"minimum=1"`
	Spacing int `mapstructure:"spacing" yaml:"spacing" json:"spacing" jsonschema:"minimum=0"`

	// DividerSize is the gutter width in cells.
	DividerSize int `mapstructure:"divider_size" yaml:"divider_size" json:"divider_size" jsonschema:"minimum=0"`

	MaxLayoutIterations int `mapstructure:"max_layout_iterations" yaml:"max_layout_iterations" json:"max_layout_iterations" jsonschema:"minimum=1"`
}

// Config is the full desky configuration.
type Config struct {
	UI      UIConfig          `mapstructure:"ui" yaml:"ui" json:"ui"`
	Logging logging.Config    `mapstructure:"logging" yaml:"logging" json:"logging"`
	Theme   termstyle.Palette `mapstructure:"theme" yaml:"theme" json:"theme"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Columns:             2,
			Rows:                2,
			Spacing:             0,
			DividerSize:         1,
			MaxLayoutIterations: desky.DefaultMaxLayoutIterations,
		},
		Logging: logging.DefaultConfig(),
		Theme:   termstyle.DefaultPalette(),
	}
}

// validateConfig collects every invalid value into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	if config.UI.Columns < 1 {
		validationErrors = append(validationErrors, "ui.columns must be at least 1")
	}
	if config.UI.Rows < 1 {
		validationErrors = append(validationErrors, "ui.rows must be at least 1")
	}
	if config.UI.Spacing < 0 {
		validationErrors = append(validationErrors, "ui.spacing must be non-negative")
	}
	if config.UI.DividerSize < 0 {
		validationErrors = append(validationErrors, "ui.divider_size must be non-negative")
	}
	if config.UI.MaxLayoutIterations < 1 {
		validationErrors = append(validationErrors, "ui.max_layout_iterations must be at least 1")
	}

	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, "logging.level: "+err.Error())
	}
	switch config.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be %q or %q", logging.FormatConsole, logging.FormatJSON))
	}

	colours := []struct{ key, value string }{
		{"theme.background", config.Theme.Background},
		{"theme.surface", config.Theme.Surface},
		{"theme.text", config.Theme.Text},
		{"theme.muted", config.Theme.Muted},
		{"theme.accent", config.Theme.Accent},
		{"theme.border", config.Theme.Border},
	}
	for _, c := range colours {
		if strings.TrimSpace(c.value) == "" {
			validationErrors = append(validationErrors, c.key+" must not be empty")
		}
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}
