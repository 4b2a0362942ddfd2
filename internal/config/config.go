package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Window WindowConfig
	Log    LogConfig
	UI     UIConfig
}

// WindowConfig holds window and frame pacing settings.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	// FPS is the update rate limit.
	FPS int
}

// LogConfig holds runtime log settings.
type LogConfig struct {
	// File is the run log path; empty disables the file.
	File  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	FontSize float64 `mapstructure:"font_size"`
	Debug    bool
}

// Load reads configuration from file and env. Env var overrides use prefix MACROTRACK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 512)
	v.SetDefault("window.title", "MacroApp")
	v.SetDefault("window.fps", 144)
	v.SetDefault("log.file", "macro_runtime_log.txt")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.font_size", 28)
	v.SetDefault("ui.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MACROTRACK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "macrotrack"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MACROTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// the home config is optional; an explicit MACROTRACK_CONFIG is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("config: fps %d must be positive", c.Window.FPS)
	}
	if c.UI.FontSize <= 0 {
		return fmt.Errorf("config: font size %g must be positive", c.UI.FontSize)
	}
	return nil
}
