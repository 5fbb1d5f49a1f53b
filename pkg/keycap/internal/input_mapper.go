package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BrandonKowalski/keycap/pkg/keycap/constants"
	"github.com/veandco/go-sdl2/sdl"
)

var inputMappingBytes []byte
var inputMappingPath string

func SetInputMappingBytes(data []byte) {
	inputMappingBytes = data
}

// SetInputMappingPath overrides INPUT_MAPPING_PATH.
func SetInputMappingPath(path string) {
	inputMappingPath = path
}

type Source int

const (
	SourceKeyboard Source = iota
	SourceController
	SourceJoystick
	SourceHatSwitch
)

// Event is a virtual button press or release.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  Source
	RawCode int
}

type JoystickAxisMapping struct {
	PositiveButton constants.VirtualButton
	NegativeButton constants.VirtualButton
	Threshold      int16
}

// InputMapping maps physical inputs onto virtual buttons.
type InputMapping struct {
	KeyboardMap         map[sdl.Keycode]constants.VirtualButton
	ControllerButtonMap map[sdl.GameControllerButton]constants.VirtualButton
	JoystickAxisMap     map[uint8]JoystickAxisMapping
	JoystickButtonMap   map[uint8]constants.VirtualButton
	JoystickHatMap      map[uint8]constants.VirtualButton
}

type axisMapping struct {
	PositiveButton int   `json:"positive_button"`
	NegativeButton int   `json:"negative_button"`
	Threshold      int16 `json:"threshold"`
}

// mappingFile is the JSON form: SDL codes to VirtualButton values.
type mappingFile struct {
	KeyboardMap         map[int]int         `json:"keyboard_map"`
	ControllerButtonMap map[int]int         `json:"controller_button_map"`
	JoystickAxisMap     map[int]axisMapping `json:"joystick_axis_map"`
	JoystickButtonMap   map[int]int         `json:"joystick_button_map"`
	JoystickHatMap      map[int]int         `json:"joystick_hat_map"`
}

func newInputMapping() *InputMapping {
	return &InputMapping{
		KeyboardMap:         make(map[sdl.Keycode]constants.VirtualButton),
		ControllerButtonMap: make(map[sdl.GameControllerButton]constants.VirtualButton),
		JoystickAxisMap:     make(map[uint8]JoystickAxisMapping),
		JoystickButtonMap:   make(map[uint8]constants.VirtualButton),
		JoystickHatMap:      make(map[uint8]constants.VirtualButton),
	}
}

// DefaultInputMapping covers desktop arrow keys and standard game controllers.
func DefaultInputMapping() *InputMapping {
	m := newInputMapping()
	m.KeyboardMap = map[sdl.Keycode]constants.VirtualButton{
		sdl.K_UP:     constants.VirtualButtonUp,
		sdl.K_DOWN:   constants.VirtualButtonDown,
		sdl.K_LEFT:   constants.VirtualButtonLeft,
		sdl.K_RIGHT:  constants.VirtualButtonRight,
		sdl.K_a:      constants.VirtualButtonA,
		sdl.K_b:      constants.VirtualButtonB,
		sdl.K_x:      constants.VirtualButtonX,
		sdl.K_y:      constants.VirtualButtonY,
		sdl.K_l:      constants.VirtualButtonL1,
		sdl.K_r:      constants.VirtualButtonR1,
		sdl.K_RETURN: constants.VirtualButtonStart,
		sdl.K_SPACE:  constants.VirtualButtonSelect,
		sdl.K_h:      constants.VirtualButtonMenu,
	}
	m.ControllerButtonMap = map[sdl.GameControllerButton]constants.VirtualButton{
		sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
		sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
		sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
		sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
		sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
		sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
		sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonY,
		sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonX,
		sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
		sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
		sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
		sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
		sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
	}
	return m
}

// GetInputMapping prefers embedded bytes, then the configured or
// INPUT_MAPPING_PATH file, then the default mapping.
func GetInputMapping() *InputMapping {
	logger := GetInternalLogger()

	if len(inputMappingBytes) > 0 {
		mapping, err := LoadInputMappingFromBytes(inputMappingBytes)
		if err == nil {
			logger.Info("Loaded custom input mapping from embedded bytes")
			return mapping
		}
		logger.Warn("Failed to load custom input mapping from bytes, trying file path", "error", err)
	}

	path := inputMappingPath
	if path == "" {
		path = os.Getenv(constants.InputMappingPathEnvVar)
	}
	if path != "" {
		mapping, err := LoadInputMappingFromJSON(path)
		if err == nil {
			logger.Info("Loaded custom input mapping", "path", path)
			return mapping
		}
		logger.Warn("Failed to load custom input mapping, using default", "path", path, "error", err)
	}

	return DefaultInputMapping()
}

func LoadInputMappingFromJSON(filePath string) (*InputMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return LoadInputMappingFromBytes(data)
}

func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var file mappingFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	mapping := newInputMapping()

	for keyCode, button := range file.KeyboardMap {
		mapping.KeyboardMap[sdl.Keycode(keyCode)] = constants.VirtualButton(button)
	}
	for button, vb := range file.ControllerButtonMap {
		mapping.ControllerButtonMap[sdl.GameControllerButton(button)] = constants.VirtualButton(vb)
	}
	for axis, am := range file.JoystickAxisMap {
		mapping.JoystickAxisMap[uint8(axis)] = JoystickAxisMapping{
			PositiveButton: constants.VirtualButton(am.PositiveButton),
			NegativeButton: constants.VirtualButton(am.NegativeButton),
			Threshold:      am.Threshold,
		}
	}
	for button, vb := range file.JoystickButtonMap {
		mapping.JoystickButtonMap[uint8(button)] = constants.VirtualButton(vb)
	}
	for hat, vb := range file.JoystickHatMap {
		mapping.JoystickHatMap[uint8(hat)] = constants.VirtualButton(vb)
	}

	return mapping, nil
}
