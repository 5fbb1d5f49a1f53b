package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/keycap/pkg/keycap/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keycap.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(constants.FontPathEnvVar, "")
	t.Setenv(constants.LogLevelEnvVar, "")
	t.Setenv(constants.InputMappingPathEnvVar, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(constants.FontPathEnvVar, "")
	t.Setenv(constants.LogLevelEnvVar, "")
	t.Setenv(constants.InputMappingPathEnvVar, "")

	path := writeConfig(t, `
window_title = "Notes"
theme = "nextui"
accent_color = "#9B2257"
initial_text = "Hello"

[power_button]
enabled = true
short_press_max = "1500ms"
suspend_command = "/usr/bin/suspend"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Notes", cfg.WindowTitle)
	assert.Equal(t, ThemeNextUI, cfg.Theme)
	assert.Equal(t, "Hello", cfg.InitialText)
	assert.True(t, cfg.PowerButton.Enabled)
	assert.Equal(t, 1500*time.Millisecond, cfg.PowerButton.ShortPressMax)
	assert.Equal(t, "/dev/input/event1", cfg.PowerButton.DevicePath)
	assert.Equal(t, 116, cfg.PowerButton.ButtonCode)

	hex, err := cfg.AccentColorHex()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x9B2257), hex)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(constants.FontPathEnvVar, "/fonts/mono.ttf")
	t.Setenv(constants.LogLevelEnvVar, "debug")
	t.Setenv(constants.InputMappingPathEnvVar, "/etc/mapping.json")

	path := writeConfig(t, `font_path = "/fonts/other.ttf"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/fonts/mono.ttf", cfg.FontPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/mapping.json", cfg.InputMappingPath)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(constants.LogLevelEnvVar, "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `theme = [`))
	assert.ErrorContains(t, err, "decode")

	_, err = Load(writeConfig(t, `colour = "red"`))
	assert.ErrorContains(t, err, `unknown key "colour"`)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"unknown theme", `theme = "solarized"`, `unknown theme "solarized"`},
		{"bad accent", `accent_color = "#12"`, `invalid accent_color`},
		{"bad font size", `font_size = 0`, `font_size must be positive`},
		{"bad level", `log_level = "loud"`, `unknown log level`},
		{"power without device", "[power_button]\nenabled = true\ndevice_path = \"\"", `device_path is required`},
		{"valid cannoli", `theme = "cannoli"`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestAccentColorHexForms(t *testing.T) {
	for _, raw := range []string{"#008080", "0x008080", "008080"} {
		hex, err := Config{AccentColor: raw}.AccentColorHex()
		require.NoError(t, err, raw)
		assert.Equal(t, uint32(0x008080), hex, raw)
	}

	hex, err := Config{}.AccentColorHex()
	require.NoError(t, err)
	assert.Zero(t, hex)
}
