package internal

import (
	"fmt"

	"github.com/BrandonKowalski/keycap/pkg/keycap/constants"
	"github.com/veandco/go-sdl2/sdl"
)

var globalInputProcessor *Processor
var gameControllers []*sdl.GameController
var rawJoysticks []*sdl.Joystick

// InitInputProcessor opens every attached controller and joystick.
func InitInputProcessor() {
	globalInputProcessor = NewInputProcessor(GetInputMapping())
	logger := GetInternalLogger()

	numJoysticks := sdl.NumJoysticks()
	for i := 0; i < numJoysticks; i++ {
		if sdl.IsGameController(i) {
			controller := sdl.GameControllerOpen(i)
			if controller == nil {
				logger.Error("Failed to open game controller", "index", i)
				continue
			}
			logger.Debug("Opened game controller", "index", i, "name", controller.Name())
			gameControllers = append(gameControllers, controller)
			continue
		}

		joystick := sdl.JoystickOpen(i)
		if joystick == nil {
			logger.Debug("Failed to open raw joystick", "index", i)
			continue
		}
		logger.Debug("Opened raw joystick", "index", i, "name", joystick.Name())
		rawJoysticks = append(rawJoysticks, joystick)
	}

	logger.Debug("Controller detection complete",
		"game_controllers", len(gameControllers),
		"raw_joysticks", len(rawJoysticks))
}

func GetInputProcessor() *Processor {
	return globalInputProcessor
}

// Processor turns SDL input events into virtual button events.
type Processor struct {
	mapping    *InputMapping
	axisStates map[uint8]int8  // -1 negative, 0 centred, 1 positive
	hatStates  map[uint8]uint8 // last hat position
	eventQueue []*Event
}

func NewInputProcessor(mapping *InputMapping) *Processor {
	return &Processor{
		mapping:    mapping,
		axisStates: make(map[uint8]int8),
		hatStates:  make(map[uint8]uint8),
	}
}

// ProcessSDLEvent returns nil for unmapped input. A hat or axis moving
// straight from one direction to another yields the release and queues the
// press; drain it with NextQueued.
func (ip *Processor) ProcessSDLEvent(event sdl.Event) *Event {
	logger := GetInternalLogger()

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		keyCode := e.Keysym.Sym
		if button, ok := ip.mapping.KeyboardMap[keyCode]; ok {
			logger.Debug("Keyboard input mapped", "key", sdl.GetKeyName(keyCode), "virtual_button", button.GetName())
			return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN, Source: SourceKeyboard, RawCode: int(keyCode)}
		}
		logger.Debug("Keyboard input not mapped", "key", fmt.Sprintf("%s (%d)", sdl.GetKeyName(keyCode), keyCode))

	case *sdl.ControllerButtonEvent:
		if button, ok := ip.mapping.ControllerButtonMap[sdl.GameControllerButton(e.Button)]; ok {
			logger.Debug("Controller button mapped", "button", e.Button, "virtual_button", button.GetName())
			return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN, Source: SourceController, RawCode: int(e.Button)}
		}
		logger.Debug("Controller button not mapped", "button", e.Button)

	case *sdl.JoyButtonEvent:
		if button, ok := ip.mapping.JoystickButtonMap[e.Button]; ok {
			return &Event{Button: button, Pressed: e.Type == sdl.JOYBUTTONDOWN, Source: SourceJoystick, RawCode: int(e.Button)}
		}
		logger.Debug("Joy button not mapped", "button", e.Button)

	case *sdl.JoyHatEvent:
		return ip.processHat(e.Hat, e.Value)

	case *sdl.ControllerAxisEvent:
		return ip.processAxis(e.Axis, e.Value, SourceController)

	case *sdl.JoyAxisEvent:
		return ip.processAxis(e.Axis, e.Value, SourceJoystick)
	}

	return nil
}

func (ip *Processor) processHat(hat uint8, value uint8) *Event {
	previous := ip.hatStates[hat]
	ip.hatStates[hat] = value

	if previous == value {
		return nil
	}

	var release, press *Event
	if previous != sdl.HAT_CENTERED {
		if button, ok := ip.mapping.JoystickHatMap[previous]; ok {
			release = &Event{Button: button, Pressed: false, Source: SourceHatSwitch, RawCode: int(previous)}
		}
	}
	if value != sdl.HAT_CENTERED {
		if button, ok := ip.mapping.JoystickHatMap[value]; ok {
			press = &Event{Button: button, Pressed: true, Source: SourceHatSwitch, RawCode: int(value)}
		}
	}

	if release != nil {
		if press != nil {
			ip.eventQueue = append(ip.eventQueue, press)
		}
		return release
	}
	return press
}

func (ip *Processor) processAxis(axis uint8, value int16, source Source) *Event {
	config, ok := ip.mapping.JoystickAxisMap[axis]
	if !ok {
		return nil
	}

	var state int8
	if value > config.Threshold {
		state = 1
	} else if value < -config.Threshold {
		state = -1
	}

	previous := ip.axisStates[axis]
	if state == previous {
		return nil
	}
	ip.axisStates[axis] = state

	buttonFor := func(s int8) constants.VirtualButton {
		if s > 0 {
			return config.PositiveButton
		}
		return config.NegativeButton
	}

	var release, press *Event
	if previous != 0 {
		release = &Event{Button: buttonFor(previous), Pressed: false, Source: source, RawCode: int(axis)}
	}
	if state != 0 {
		press = &Event{Button: buttonFor(state), Pressed: true, Source: source, RawCode: int(axis)}
	}

	if release != nil {
		if press != nil {
			ip.eventQueue = append(ip.eventQueue, press)
		}
		return release
	}
	return press
}

// NextQueued pops the next queued event, or nil.
func (ip *Processor) NextQueued() *Event {
	if len(ip.eventQueue) == 0 {
		return nil
	}
	evt := ip.eventQueue[0]
	ip.eventQueue = ip.eventQueue[1:]
	return evt
}

func CloseAllControllers() {
	for _, controller := range gameControllers {
		if controller != nil {
			controller.Close()
		}
	}
	for _, joystick := range rawJoysticks {
		if joystick != nil {
			joystick.Close()
		}
	}
	gameControllers = nil
	rawJoysticks = nil
}
