package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	UI          UIConfig          `mapstructure:"ui"`
	Counter     CounterConfig     `mapstructure:"counter"`
	Log         LogConfig         `mapstructure:"log"`
	Keybindings []KeybindingEntry `mapstructure:"keybindings"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title        string `mapstructure:"title"`
	ShowDisabled bool   `mapstructure:"show_disabled"`
}

// CounterConfig holds the demo view model bounds.
type CounterConfig struct {
	Start int `mapstructure:"start"`
	Step  int `mapstructure:"step"`
	Max   int `mapstructure:"max"`
}

// LogConfig holds slog settings. An empty path discards log output.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// KeybindingEntry overrides the keys of one binding.
type KeybindingEntry struct {
	Scope   string   `mapstructure:"scope"`
	Action  string   `mapstructure:"action"`
	Command string   `mapstructure:"command"`
	Keys    []string `mapstructure:"keys"`
}

// DefaultPath is used when BINDCMD_CONFIG is unset.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "bindcmd", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix BINDCMD_.
func Load() (Config, error) {
	path := os.Getenv("BINDCMD_CONFIG")
	if path == "" {
		path = DefaultPath()
	}
	return LoadFile(path)
}

// LoadFile reads path if it exists, then applies defaults and env overrides.
func LoadFile(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.title", "bindcmd")
	v.SetDefault("ui.show_disabled", true)
	v.SetDefault("counter.start", 0)
	v.SetDefault("counter.step", 1)
	v.SetDefault("counter.max", 10)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("BINDCMD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Counter.Step <= 0 {
		return fmt.Errorf("%w: counter.step must be positive, got %d", ErrInvalidConfig, c.Counter.Step)
	}
	if c.Counter.Max < 0 {
		return fmt.Errorf("%w: counter.max must not be negative, got %d", ErrInvalidConfig, c.Counter.Max)
	}
	if c.Counter.Start < 0 || c.Counter.Start > c.Counter.Max {
		return fmt.Errorf("%w: counter.start %d outside [0, %d]", ErrInvalidConfig, c.Counter.Start, c.Counter.Max)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// Save writes cfg to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.show_disabled", cfg.UI.ShowDisabled)
	v.Set("counter.start", cfg.Counter.Start)
	v.Set("counter.step", cfg.Counter.Step)
	v.Set("counter.max", cfg.Counter.Max)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	if len(cfg.Keybindings) > 0 {
		items := make([]map[string]any, 0, len(cfg.Keybindings))
		for _, k := range cfg.Keybindings {
			items = append(items, map[string]any{
				"scope":   k.Scope,
				"action":  k.Action,
				"command": k.Command,
				"keys":    k.Keys,
			})
		}
		v.Set("keybindings", items)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
