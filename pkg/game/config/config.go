// Package config loads the game settings. Values are layered: built-in defaults, then
// an optional stonesnspells.yaml, then a .env file, then SNS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SNS_LOG_LEVEL.
const EnvPrefix = "SNS"

// Window settings
type Window struct {
	Width  int     `mapstructure:"width"`
	Height int     `mapstructure:"height"`
	Scale  float64 `mapstructure:"scale"`
}

// Game settings
type Game struct {
	TPS           int           `mapstructure:"tps"`
	Seed          int64         `mapstructure:"seed"`
	Chests        int           `mapstructure:"chests"`
	PlayerIFrames time.Duration `mapstructure:"player_iframes"`
}

// Assets settings
type Assets struct {
	Dir string `mapstructure:"dir"`
}

// Locale settings
type Locale struct {
	Dir  string `mapstructure:"dir"`
	Lang string `mapstructure:"lang"`
}

// Log settings. An empty File logs to stderr only.
type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Dev settings
type Dev struct {
	DumpDir string `mapstructure:"dump_dir"`
}

// Config is the full settings tree.
type Config struct {
	Window Window `mapstructure:"window"`
	Game   Game   `mapstructure:"game"`
	Assets Assets `mapstructure:"assets"`
	Locale Locale `mapstructure:"locale"`
	Log    Log    `mapstructure:"log"`
	Dev    Dev    `mapstructure:"dev"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

var defaults = map[string]any{
	"window.width":        1200,
	"window.height":       900,
	"window.scale":        1.0,
	"game.tps":            100,
	"game.seed":           0,
	"game.chests":         3,
	"game.player_iframes": "2s",
	"assets.dir":          "assets",
	"locale.dir":          "locales",
	"locale.lang":         "en_GB",
	"log.level":           "info",
	"log.file":            "",
	"log.max_size_mb":     10,
	"log.max_backups":     3,
	"log.max_age_days":    28,
	"log.compress":        false,
	"dev.dump_dir":        ".",
}

var (
	currentMu sync.RWMutex
	current   *Config
)

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. path names an explicit config file; when empty,
// stonesnspells.yaml is searched for in the working directory and in
// $HOME/.config/stonesnspells, and its absence is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("stonesnspells")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "stonesnspells"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	cfg.Source = v.ConfigFileUsed()

	currentMu.Lock()
	current = cfg
	currentMu.Unlock()
	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Game.TPS <= 0:
		return fmt.Errorf("config: game.tps must be positive, got %d", c.Game.TPS)
	case c.Game.Chests < 0:
		return fmt.Errorf("config: game.chests must not be negative, got %d", c.Game.Chests)
	case c.Window.Scale <= 0:
		return fmt.Errorf("config: window.scale must be positive, got %v", c.Window.Scale)
	}
	return nil
}

// Defaults returns the built-in configuration, ignoring files and environment.
func Defaults() *Config {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	cfg, err := decode(v)
	if err != nil {
		panic(fmt.Sprintf("config: built-in defaults are invalid: %v", err))
	}
	return cfg
}

// Current returns the last loaded configuration, or the defaults if Load was never
// called.
func Current() *Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if current == nil {
		return Defaults()
	}
	return current
}
