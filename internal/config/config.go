// Package config provides configuration types, defaults, and persistence for sheets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/zjrosen/sheets/internal/log"
	"github.com/zjrosen/sheets/internal/sheet"
	"github.com/zjrosen/sheets/internal/templates"
)

// DefaultArgument is the argument passed to the third screen.
const DefaultArgument = "this is an argument"

// Config holds all configuration options for sheets.
type Config struct {
	Sheet   SheetConfig     `mapstructure:"sheet"`
	Screens ScreensConfig   `mapstructure:"screens"`
	UI      UIConfig        `mapstructure:"ui"`
	Theme   ThemeConfig     `mapstructure:"theme"`
	Flags   map[string]bool `mapstructure:"flags"`
	Debug   bool            `mapstructure:"debug"`
	LogPath string          `mapstructure:"log_path"`
}

// SheetConfig controls the bottom sheet animation and size.
type SheetConfig struct {
	AnimationDuration time.Duration `mapstructure:"animation_duration"`
	FrameRate         int           `mapstructure:"frame_rate"`
	// HeightRatio is the fraction of the terminal height the expanded sheet covers.
	HeightRatio float64 `mapstructure:"height_ratio"`
}

// Animation converts the sheet settings to controller settings.
func (s SheetConfig) Animation() sheet.Config {
	return sheet.Config{
		Duration:  s.AnimationDuration,
		FrameRate: s.FrameRate,
	}
}

// ScreensConfig holds the content passed to the sheet screens.
type ScreensConfig struct {
	Argument string `mapstructure:"argument"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	Intro         string `mapstructure:"intro"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
}

// ThemeConfig holds colour overrides. Empty values keep the built-in colour.
type ThemeConfig struct {
	Highlight   string `mapstructure:"highlight"`
	Subtle      string `mapstructure:"subtle"`
	ScreenOne   string `mapstructure:"screen_one"`
	ScreenTwo   string `mapstructure:"screen_two"`
	ScreenThree string `mapstructure:"screen_three"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Sheet: SheetConfig{
			AnimationDuration: sheet.DefaultDuration,
			FrameRate:         sheet.DefaultFrameRate,
			HeightRatio:       0.5,
		},
		Screens: ScreensConfig{
			Argument: DefaultArgument,
		},
		UI: UIConfig{
			Intro:         templates.Intro(),
			MarkdownStyle: "dark",
			ShowStatusBar: true,
		},
		Theme: ThemeConfig{
			Highlight:   "#7D56F4",
			Subtle:      "#696969",
			ScreenOne:   "#FFFF00",
			ScreenTwo:   "#00FFFF",
			ScreenThree: "#D3D3D3",
		},
		Flags: map[string]bool{
			"tap-outside-dismiss": true,
			"drag-dismiss":        true,
			"config-reload":       true,
		},
		LogPath: "debug.log",
	}
}

// SetDefaults registers Defaults on v so unmarshalling fills missing keys.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("sheet.animation_duration", d.Sheet.AnimationDuration)
	v.SetDefault("sheet.frame_rate", d.Sheet.FrameRate)
	v.SetDefault("sheet.height_ratio", d.Sheet.HeightRatio)
	v.SetDefault("screens.argument", d.Screens.Argument)
	v.SetDefault("ui.intro", d.UI.Intro)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("ui.show_status_bar", d.UI.ShowStatusBar)
	v.SetDefault("theme.highlight", d.Theme.Highlight)
	v.SetDefault("theme.subtle", d.Theme.Subtle)
	v.SetDefault("theme.screen_one", d.Theme.ScreenOne)
	v.SetDefault("theme.screen_two", d.Theme.ScreenTwo)
	v.SetDefault("theme.screen_three", d.Theme.ScreenThree)
	v.SetDefault("flags", d.Flags)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_path", d.LogPath)
}

// Load reads and validates the config file at path on a fresh viper instance.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	log.Debug(log.CatConfig, "Loaded config", "path", path)
	return cfg, nil
}

// Validate checks the sheet settings and theme colours.
func Validate(cfg Config) error {
	var errs []error

	if cfg.Sheet.AnimationDuration < 0 {
		errs = append(errs, fmt.Errorf("sheet.animation_duration must not be negative, got %s", cfg.Sheet.AnimationDuration))
	}
	if cfg.Sheet.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("sheet.frame_rate must be positive, got %d", cfg.Sheet.FrameRate))
	}
	if cfg.Sheet.HeightRatio <= 0 || cfg.Sheet.HeightRatio > 1 {
		errs = append(errs, fmt.Errorf("sheet.height_ratio must be in (0, 1], got %g", cfg.Sheet.HeightRatio))
	}

	switch cfg.UI.MarkdownStyle {
	case "", "dark", "light":
	default:
		errs = append(errs, fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", cfg.UI.MarkdownStyle))
	}

	colors := []struct{ key, value string }{
		{"theme.highlight", cfg.Theme.Highlight},
		{"theme.subtle", cfg.Theme.Subtle},
		{"theme.screen_one", cfg.Theme.ScreenOne},
		{"theme.screen_two", cfg.Theme.ScreenTwo},
		{"theme.screen_three", cfg.Theme.ScreenThree},
	}
	for _, c := range colors {
		if c.value != "" && !isHexColor(c.value) {
			errs = append(errs, fmt.Errorf("%s: invalid hex color %q", c.key, c.value))
		}
	}

	return errors.Join(errs...)
}

func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return templates.DefaultConfig()
}

// WriteDefaultConfig creates a config file with default settings.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

// FlagValues returns the default feature flags overlaid with configured ones.
func (c Config) FlagValues() map[string]bool {
	merged := Defaults().Flags
	for name, enabled := range c.Flags {
		merged[name] = enabled
	}
	return merged
}
