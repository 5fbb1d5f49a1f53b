package keycap

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/keycap/pkg/keycap/compose"
	"github.com/BrandonKowalski/keycap/pkg/keycap/constants"
	"github.com/BrandonKowalski/keycap/pkg/keycap/internal"
	"github.com/BrandonKowalski/keycap/pkg/keycap/keys"
	"github.com/veandco/go-sdl2/sdl"
)

// Buttons that stand in for a key on the layout.
var shortcutKeys = map[constants.VirtualButton]keys.Key{
	constants.VirtualButtonB:      keys.Do(keys.ActionBackspace),
	constants.VirtualButtonX:      keys.Char(' '),
	constants.VirtualButtonSelect: keys.Shift(keys.SideLeft),
	constants.VirtualButtonL1:     keys.Do(keys.ActionCapsLock),
	constants.VirtualButtonR1:     keys.Do(keys.ActionTab),
}

type virtualKeyboard struct {
	layout  keys.Layout
	session *compose.Session
	logger  *slog.Logger

	fieldRect    sdl.Rect
	keyboardRect sdl.Rect
	keyRects     [][]sdl.Rect

	selectedRow int
	selectedCol int

	confirmed bool

	cursorVisible   bool
	lastCursorBlink time.Time
	cursorBlinkRate time.Duration

	inputDelay    time.Duration
	lastInputTime time.Time

	heldDirections struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

func newVirtualKeyboard(layout keys.Layout, windowWidth, windowHeight int32, scaleFactor float32, initialText string, logger *slog.Logger) *virtualKeyboard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	kb := &virtualKeyboard{
		layout:          layout,
		session:         compose.NewSession(logger),
		logger:          logger,
		cursorVisible:   true,
		lastCursorBlink: time.Now(),
		cursorBlinkRate: 500 * time.Millisecond,
		inputDelay:      100 * time.Millisecond,
		lastInputTime:   time.Now(),
		lastRepeatTime:  time.Now(),
		repeatDelay:     150 * time.Millisecond,
		repeatInterval:  50 * time.Millisecond,
	}

	kb.fieldRect, kb.keyboardRect = screenLayout(windowWidth, windowHeight, scaleFactor)
	kb.keyRects = layoutKeyRects(layout, kb.keyboardRect)

	if initialText != "" {
		kb.session.SetText(initialText)
	}

	// start on the first letter rather than the backtick
	if row, col, ok := layout.Find(keys.Char('q')); ok {
		kb.selectedRow, kb.selectedCol = row, col
	}

	return kb
}

// Keyboard displays the on-screen keyboard seeded with initialText.
// Start confirms and returns the composed text. Y, closing the window or a
// long power button press returns ErrCancelled.
func Keyboard(initialText string) (*KeyboardResult, error) {
	window := internal.GetWindow()
	renderer := window.Renderer
	logger := internal.GetInternalLogger()

	kb := newVirtualKeyboard(keys.Default(), window.GetWidth(), window.GetHeight(), internal.GetScaleFactor(), initialText, logger)

	icons := loadKeyIcons(renderer, kb.iconSize())
	defer icons.destroy()

	for {
		if kb.handleEvents() {
			break
		}
		if internal.QuitRequested() {
			logger.Debug("Quit requested while keyboard open")
			break
		}

		kb.handleDirectionalRepeats()

		kb.updateCursorBlink()
		kb.render(renderer, icons)
		sdl.Delay(16)
	}

	if kb.confirmed {
		return &KeyboardResult{Text: kb.session.Text()}, nil
	}
	return nil, ErrCancelled
}

func (kb *virtualKeyboard) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
				kb.click(e.X, e.Y)
			}

		case *sdl.TouchFingerEvent:
			if e.Type == sdl.FINGERDOWN {
				window := internal.GetWindow()
				kb.click(int32(e.X*float32(window.GetWidth())), int32(e.Y*float32(window.GetHeight())))
			}

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
			for inputEvent := processor.ProcessSDLEvent(event); inputEvent != nil; inputEvent = processor.NextQueued() {
				if inputEvent.Pressed {
					if kb.handleInputEvent(inputEvent) {
						return true
					}
				} else {
					kb.handleInputEventRelease(inputEvent)
				}
			}
		}
	}
	return false
}

// handleInputEvent reacts to a virtual button press and reports whether the
// keyboard should close.
func (kb *virtualKeyboard) handleInputEvent(inputEvent *internal.Event) bool {
	button := inputEvent.Button

	if button.IsDirectional() {
		if time.Since(kb.lastInputTime) < kb.inputDelay {
			return false
		}
		kb.lastInputTime = time.Now()
	}

	switch button {
	case constants.VirtualButtonUp:
		kb.navigate(button)
		kb.heldDirections.up = true
		kb.heldDirections.down = false
		kb.lastRepeatTime = time.Now()
	case constants.VirtualButtonDown:
		kb.navigate(button)
		kb.heldDirections.down = true
		kb.heldDirections.up = false
		kb.lastRepeatTime = time.Now()
	case constants.VirtualButtonLeft:
		kb.navigate(button)
		kb.heldDirections.left = true
		kb.heldDirections.right = false
		kb.lastRepeatTime = time.Now()
	case constants.VirtualButtonRight:
		kb.navigate(button)
		kb.heldDirections.right = true
		kb.heldDirections.left = false
		kb.lastRepeatTime = time.Now()
	case constants.VirtualButtonA:
		kb.activateSelected()
	case constants.VirtualButtonB, constants.VirtualButtonX, constants.VirtualButtonSelect,
		constants.VirtualButtonL1, constants.VirtualButtonR1:
		kb.activateShortcut(button)
	case constants.VirtualButtonY:
		return true
	case constants.VirtualButtonStart:
		kb.confirmed = true
		return true
	}

	return false
}

func (kb *virtualKeyboard) handleInputEventRelease(inputEvent *internal.Event) {
	switch inputEvent.Button {
	case constants.VirtualButtonUp:
		kb.heldDirections.up = false
		kb.hasRepeated = false
	case constants.VirtualButtonDown:
		kb.heldDirections.down = false
		kb.hasRepeated = false
	case constants.VirtualButtonLeft:
		kb.heldDirections.left = false
		kb.hasRepeated = false
	case constants.VirtualButtonRight:
		kb.heldDirections.right = false
		kb.hasRepeated = false
	}
}

func (kb *virtualKeyboard) handleDirectionalRepeats() {
	if !kb.heldDirections.up && !kb.heldDirections.down && !kb.heldDirections.left && !kb.heldDirections.right {
		kb.lastRepeatTime = time.Now()
		kb.hasRepeated = false
		return
	}

	threshold := kb.repeatInterval
	if !kb.hasRepeated {
		threshold = kb.repeatDelay
	}

	if time.Since(kb.lastRepeatTime) >= threshold {
		kb.lastRepeatTime = time.Now()
		kb.hasRepeated = true

		if kb.heldDirections.up {
			kb.navigate(constants.VirtualButtonUp)
		} else if kb.heldDirections.down {
			kb.navigate(constants.VirtualButtonDown)
		} else if kb.heldDirections.left {
			kb.navigate(constants.VirtualButtonLeft)
		} else if kb.heldDirections.right {
			kb.navigate(constants.VirtualButtonRight)
		}
	}
}

func (kb *virtualKeyboard) navigate(button constants.VirtualButton) {
	row, col := kb.selectedRow, kb.selectedCol

	switch button {
	case constants.VirtualButtonUp:
		row, col = moveVertical(kb.keyRects, row, col, -1)
	case constants.VirtualButtonDown:
		row, col = moveVertical(kb.keyRects, row, col, 1)
	case constants.VirtualButtonLeft:
		row, col = moveHorizontal(kb.keyRects, row, col, -1)
	case constants.VirtualButtonRight:
		row, col = moveHorizontal(kb.keyRects, row, col, 1)
	}

	kb.selectedRow, kb.selectedCol = row, col
}

func (kb *virtualKeyboard) selectedKey() keys.Key {
	k, _ := kb.layout.At(kb.selectedRow, kb.selectedCol)
	return k
}

func (kb *virtualKeyboard) activateSelected() {
	kb.activate(kb.selectedKey())
}

// activateShortcut looks the button's key up on the layout so the session
// receives the same descriptor a click on that key would send.
func (kb *virtualKeyboard) activateShortcut(button constants.VirtualButton) {
	want, ok := shortcutKeys[button]
	if !ok {
		return
	}
	row, col, ok := kb.layout.Find(want)
	if !ok {
		kb.logger.Debug("Shortcut key missing from layout", "button", button.GetName(), "key", want.Label())
		return
	}
	k, _ := kb.layout.At(row, col)
	kb.activate(k)
}

func (kb *virtualKeyboard) click(x, y int32) {
	row, col, ok := keyAt(kb.keyRects, x, y)
	if !ok {
		return
	}
	kb.selectedRow, kb.selectedCol = row, col
	kb.activateSelected()
}

func (kb *virtualKeyboard) activate(k keys.Key) {
	if k == nil {
		return
	}
	kb.session.Activate(k)

	kb.cursorVisible = true
	kb.lastCursorBlink = time.Now()
}

func (kb *virtualKeyboard) updateCursorBlink() {
	if time.Since(kb.lastCursorBlink) > kb.cursorBlinkRate {
		kb.cursorVisible = !kb.cursorVisible
		kb.lastCursorBlink = time.Now()
	}
}

// latched reports whether k is a modifier whose state is currently on.
func (kb *virtualKeyboard) latched(k keys.Key) bool {
	action, ok := k.(keys.ActionKey)
	if !ok {
		return false
	}
	switch action.Action {
	case keys.ActionCapsLock:
		return kb.session.CapsLock()
	case keys.ActionShift:
		return action.Side != keys.SideNone && action.Side == kb.session.ActiveShiftSide()
	}
	return false
}
