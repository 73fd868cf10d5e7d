// Package config loads rodcut CLI configuration from defaults, an optional
// YAML file and RODCUT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/rodcut/rodcut"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidLogLevel  = errors.New("invalid logging level")
	ErrInvalidLogFormat = errors.New("invalid logging format")
	ErrInvalidPrinter   = errors.New("invalid printer defaults")
)

// Output formats understood by the CLI renderers.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StrategyBoth runs every strategy and cross-checks their optimum.
const StrategyBoth = "both"

// Default configuration values.
const (
	DefaultStrategy      = "memo"
	DefaultOrder         = "taken"
	DefaultFormat        = FormatText
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
	DefaultMaxItems      = 0
	DefaultMaxVolume     = 0.0
	envPrefix            = "RODCUT"
	defaultConfigName    = "rodcut"
	defaultConfigType    = "yaml"
	defaultUserConfigDir = "$HOME/.config/rodcut"
)

// Config holds all configuration for the rodcut CLI.
type Config struct {
	Solver  SolverConfig  `mapstructure:"solver"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
	Printer PrinterConfig `mapstructure:"printer"`
}

// SolverConfig holds rod-cutting defaults.
type SolverConfig struct {
	Strategy string `mapstructure:"strategy"`
	Order    string `mapstructure:"order"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Color     bool   `mapstructure:"color"`
	ShowTable bool   `mapstructure:"show_table"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PrinterConfig holds fallback printer constraints for the plan command.
// Zero values mean "take them from the input file".
type PrinterConfig struct {
	MaxVolume float64 `mapstructure:"max_volume"`
	MaxItems  int     `mapstructure:"max_items"`
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath searches rodcut.yaml in ".", "./config" and
// $HOME/.config/rodcut; a missing file there is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(defaultConfigName)
		viperCfg.SetConfigType(defaultConfigType)
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath(defaultUserConfigDir)
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("solver.strategy", DefaultStrategy)
	viperCfg.SetDefault("solver.order", DefaultOrder)

	viperCfg.SetDefault("output.format", DefaultFormat)
	viperCfg.SetDefault("output.color", true)
	viperCfg.SetDefault("output.show_table", false)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)

	viperCfg.SetDefault("printer.max_volume", DefaultMaxVolume)
	viperCfg.SetDefault("printer.max_items", DefaultMaxItems)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Solver.Strategy != StrategyBoth {
		if _, err := rodcut.ParseStrategy(config.Solver.Strategy); err != nil {
			return fmt.Errorf("solver.strategy %q: %w", config.Solver.Strategy, err)
		}
	}

	if _, err := rodcut.ParseOrder(config.Solver.Order); err != nil {
		return fmt.Errorf("solver.order %q: %w", config.Solver.Order, err)
	}

	switch config.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Output.Format)
	}

	if _, err := ParseLevel(config.Logging.Level); err != nil {
		return err
	}

	switch config.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	if config.Printer.MaxVolume < 0 || config.Printer.MaxItems < 0 {
		return fmt.Errorf("%w: max_volume=%v max_items=%d", ErrInvalidPrinter, config.Printer.MaxVolume, config.Printer.MaxItems)
	}

	return nil
}

// ParseLevel maps a logging level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}
