// Package keycap is an on-screen keyboard for SDL2 handhelds and desktops.
//
// Call Init once, then Keyboard for each piece of text, then Close.
package keycap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/keycap/pkg/keycap/config"
	"github.com/BrandonKowalski/keycap/pkg/keycap/constants"
	"github.com/BrandonKowalski/keycap/pkg/keycap/internal"
)

const (
	cannoliFontPath      = "/mnt/SDCARD/System/fonts/Cannoli.ttf"
	nextUIBackgroundPath = "/mnt/SDCARD/bg.png"
)

type Options struct {
	WindowTitle      string
	ShowBackground   bool
	Theme            string
	AccentColorHex   uint32
	FontPath         string
	FontSize         int
	LogFilename      string
	LogLevel         string
	InputMappingPath string
	PowerButton      config.PowerButton
}

// OptionsFromConfig converts a validated config into Init options.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	accent, err := cfg.AccentColorHex()
	if err != nil {
		return Options{}, err
	}

	return Options{
		WindowTitle:      cfg.WindowTitle,
		ShowBackground:   cfg.ShowBackground,
		Theme:            cfg.Theme,
		AccentColorHex:   accent,
		FontPath:         cfg.FontPath,
		FontSize:         cfg.FontSize,
		LogFilename:      cfg.LogFilename,
		LogLevel:         cfg.LogLevel,
		InputMappingPath: cfg.InputMappingPath,
		PowerButton:      cfg.PowerButton,
	}, nil
}

// Init initializes SDL and the UI.
// Must be called before Keyboard!
func Init(options Options) error {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := themeFor(options.Theme)
	if options.AccentColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.AccentColorHex)
	}
	internal.SetTheme(theme)

	if options.InputMappingPath != "" {
		internal.SetInputMappingPath(options.InputMappingPath)
	}

	fontPath := options.FontPath
	if fontPath == "" {
		fontPath = theme.FontPath
	}

	fontSize := options.FontSize
	if fontSize <= 0 {
		fontSize = config.Default().FontSize
	}

	initOptions := internal.InitOptions{
		Title:          options.WindowTitle,
		ShowBackground: options.ShowBackground,
		FontPath:       fontPath,
		FontSizes:      internal.SizesFor(fontSize),
	}
	if options.PowerButton.Enabled {
		initOptions.PowerButton = &internal.PowerButtonConfig{
			ButtonCode:      options.PowerButton.ButtonCode,
			DevicePath:      options.PowerButton.DevicePath,
			ShortPressMax:   options.PowerButton.ShortPressMax,
			CoolDownTime:    options.PowerButton.CoolDownTime,
			SuspendCommand:  options.PowerButton.SuspendCommand,
			ShutdownCommand: options.PowerButton.ShutdownCommand,
		}
	}

	if err := internal.Init(initOptions); err != nil {
		internal.GetInternalLogger().Error("Failed to initialize", "error", err)
		internal.SDLCleanup()
		return fmt.Errorf("keycap init: %w", err)
	}

	return nil
}

func themeFor(name string) internal.Theme {
	switch name {
	case config.ThemeCannoli:
		return internal.CannoliTheme(cannoliFontPath)
	case config.ThemeNextUI:
		background := os.Getenv(constants.BackgroundPathEnvVar)
		if background == "" {
			background = nextUIBackgroundPath
		}
		return internal.NextUITheme(background)
	default:
		return internal.DefaultTheme()
	}
}

// Close tidies up SDL and the UI.
// Must be called after all UI functions!
func Close() {
	internal.SDLCleanup()
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

func SetInputMappingBytes(data []byte) {
	internal.SetInputMappingBytes(data)
}
