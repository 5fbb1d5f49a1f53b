// Package config loads the keyboard application settings from a TOML file
// with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BrandonKowalski/keycap/pkg/keycap/constants"
	"github.com/BurntSushi/toml"
)

const (
	ThemeDefault = "default"
	ThemeCannoli = "cannoli"
	ThemeNextUI  = "nextui"
)

type Config struct {
	WindowTitle      string      `toml:"window_title"`
	ShowBackground   bool        `toml:"show_background"`
	Theme            string      `toml:"theme"`
	AccentColor      string      `toml:"accent_color"`
	FontPath         string      `toml:"font_path"`
	FontSize         int         `toml:"font_size"`
	LogFilename      string      `toml:"log_filename"`
	LogLevel         string      `toml:"log_level"`
	InputMappingPath string      `toml:"input_mapping_path"`
	InitialText      string      `toml:"initial_text"`
	PowerButton      PowerButton `toml:"power_button"`
}

type PowerButton struct {
	Enabled         bool          `toml:"enabled"`
	DevicePath      string        `toml:"device_path"`
	ButtonCode      int           `toml:"button_code"`
	ShortPressMax   time.Duration `toml:"short_press_max"`
	CoolDownTime    time.Duration `toml:"cool_down_time"`
	SuspendCommand  string        `toml:"suspend_command"`
	ShutdownCommand string        `toml:"shutdown_command"`
}

func Default() Config {
	return Config{
		WindowTitle: "Keyboard",
		Theme:       ThemeDefault,
		FontSize:    44,
		LogFilename: "app.log",
		LogLevel:    "info",
		PowerButton: PowerButton{
			DevicePath:    "/dev/input/event1",
			ButtonCode:    116,
			ShortPressMax: 2 * time.Second,
			CoolDownTime:  1 * time.Second,
		},
	}
}

// Load reads path on top of the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config: unknown key %q in %s", undecoded[0].String(), path)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML text on top of the defaults without touching the environment.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(constants.FontPathEnvVar); v != "" {
		c.FontPath = v
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(constants.InputMappingPathEnvVar); v != "" {
		c.InputMappingPath = v
	}
}

func (c Config) Validate() error {
	switch c.Theme {
	case ThemeDefault, ThemeCannoli, ThemeNextUI:
	default:
		return fmt.Errorf("config: unknown theme %q", c.Theme)
	}

	if c.AccentColor != "" {
		if _, err := c.AccentColorHex(); err != nil {
			return err
		}
	}

	if c.FontSize <= 0 {
		return fmt.Errorf("config: font_size must be positive, got %d", c.FontSize)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}

	if c.PowerButton.Enabled {
		if c.PowerButton.DevicePath == "" {
			return fmt.Errorf("config: power_button.device_path is required when enabled")
		}
		if c.PowerButton.ShortPressMax <= 0 {
			return fmt.Errorf("config: power_button.short_press_max must be positive")
		}
	}

	return nil
}

// AccentColorHex parses AccentColor ("#9B2257", "0x9B2257" or "9B2257").
// Zero means no override.
func (c Config) AccentColorHex() (uint32, error) {
	if c.AccentColor == "" {
		return 0, nil
	}
	raw := strings.TrimPrefix(strings.TrimPrefix(c.AccentColor, "#"), "0x")
	hex, err := strconv.ParseUint(raw, 16, 32)
	if err != nil || len(raw) != 6 {
		return 0, fmt.Errorf("config: invalid accent_color %q", c.AccentColor)
	}
	return uint32(hex), nil
}
