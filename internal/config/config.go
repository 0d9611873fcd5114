// Package config loads settings for the pyrometer command from an optional
// YAML file, PYROMETER_* environment variables and built-in defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-pyrometer/pyrometer"
	"github.com/cwbudde/algo-pyrometer/radiation"
)

// Config represents the complete command configuration.
type Config struct {
	Calibration CalibrationConfig `mapstructure:"calibration"`
	Window      WindowConfig      `mapstructure:"window"`
	Units       string            `mapstructure:"units"`
	Workers     int               `mapstructure:"workers"`
	Exposure    float64           `mapstructure:"exposure"`
	Report      ReportConfig      `mapstructure:"report"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// CalibrationConfig locates the reference spectrum and its temperature.
type CalibrationConfig struct {
	Path        string  `mapstructure:"path"`
	Temperature float64 `mapstructure:"temperature"`
}

// WindowConfig is the fit window in nanometers.
type WindowConfig struct {
	Lower float64 `mapstructure:"lower"`
	Upper float64 `mapstructure:"upper"`
}

// ReportConfig controls the printed summary.
type ReportConfig struct {
	Tail int `mapstructure:"tail"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from path, if non-empty, and from the
// environment. Environment variables use the PYROMETER_ prefix with dots
// replaced by underscores, e.g. PYROMETER_WINDOW_LOWER.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PYROMETER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calibration.path", "")
	v.SetDefault("calibration.temperature", 2856.0)

	v.SetDefault("window.lower", 500.0)
	v.SetDefault("window.upper", 900.0)

	v.SetDefault("units", "celsius")
	v.SetDefault("workers", 1)
	v.SetDefault("exposure", 0.0)

	v.SetDefault("report.tail", 50)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	if c.Calibration.Path == "" {
		return fmt.Errorf("calibration.path is required")
	}
	if !(c.Calibration.Temperature > 0) {
		return fmt.Errorf("calibration.temperature must be > 0 K")
	}
	if err := c.FitWindow().Validate(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if _, err := radiation.ParseUnits(c.Units); err != nil {
		return fmt.Errorf("units: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.Report.Tail < 0 {
		return fmt.Errorf("report.tail must be >= 0")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}

// FitWindow returns the configured window.
func (c *Config) FitWindow() pyrometer.Window {
	return pyrometer.Window{Lower: c.Window.Lower, Upper: c.Window.Upper}
}

// TemperatureUnits returns the parsed units, defaulting to Celsius.
func (c *Config) TemperatureUnits() radiation.Units {
	u, err := radiation.ParseUnits(c.Units)
	if err != nil {
		return radiation.Celsius
	}
	return u
}
