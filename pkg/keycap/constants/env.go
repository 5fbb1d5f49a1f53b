package constants

import (
	"os"
	"strings"
)

const (
	EnvironmentEnvVar      = "ENVIRONMENT"
	DebugEnvVar            = "KEYCAP_DEBUG"
	ConfigPathEnvVar       = "KEYCAP_CONFIG"
	FontPathEnvVar         = "KEYCAP_FONT"
	LogLevelEnvVar         = "KEYCAP_LOG_LEVEL"
	InputMappingPathEnvVar = "INPUT_MAPPING_PATH"
	BackgroundPathEnvVar   = "BACKGROUND_PATH"
	WindowWidthEnvVar      = "WINDOW_WIDTH"
	WindowHeightEnvVar     = "WINDOW_HEIGHT"
)

// IsDevMode is true when running on a desktop rather than on the device.
func IsDevMode() bool {
	return strings.EqualFold(os.Getenv(EnvironmentEnvVar), "DEV")
}
