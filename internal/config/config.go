package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Input formats.
const (
	InputAuto = "auto"
	InputJSON = "json"
	InputYAML = "yaml"
)

// Output formats.
const (
	OutputJSON      = "json"
	OutputRelaxed   = "relaxed"
	OutputCanonical = "canonical"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings of the mongopatch command.
type Config struct {
	Input      string
	Output     string
	StrictAdd  bool
	CopyValues bool
	Indent     bool
	LogLevel   string
	Color      string
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Input:      InputAuto,
		Output:     OutputJSON,
		StrictAdd:  false,
		CopyValues: true,
		Indent:     false,
		LogLevel:   "warn",
		Color:      ColorAuto,
	}
}

// Load loads configuration using viper.
// CLI flags > environment > config file > defaults precedence; flags are
// applied by the caller.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("input", def.Input)
	v.SetDefault("output", def.Output)
	v.SetDefault("strict_add", def.StrictAdd)
	v.SetDefault("copy_values", def.CopyValues)
	v.SetDefault("indent", def.Indent)
	v.SetDefault("log.level", def.LogLevel)
	v.SetDefault("color", def.Color)

	// Bind environment variables with MONGOPATCH_ prefix
	v.SetEnvPrefix("MONGOPATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Input:      strings.ToLower(v.GetString("input")),
		Output:     strings.ToLower(v.GetString("output")),
		StrictAdd:  v.GetBool("strict_add"),
		CopyValues: v.GetBool("copy_values"),
		Indent:     v.GetBool("indent"),
		LogLevel:   strings.ToLower(v.GetString("log.level")),
		Color:      strings.ToLower(v.GetString("color")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every enumerated setting holds a known value.
func (c *Config) Validate() error {
	switch c.Input {
	case InputAuto, InputJSON, InputYAML:
	default:
		return fmt.Errorf("input must be one of auto, json, yaml, got %q", c.Input)
	}
	switch c.Output {
	case OutputJSON, OutputRelaxed, OutputCanonical:
	default:
		return fmt.Errorf("output must be one of json, relaxed, canonical, got %q", c.Output)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never, got %q", c.Color)
	}
	return nil
}
