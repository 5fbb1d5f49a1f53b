// Package keys describes the on-screen keyboard: the key descriptors and the
// fixed QWERTY layout they are arranged in.
package keys

// Action is the control function of a non-printing key.
type Action int

const (
	ActionBackspace Action = iota
	ActionTab
	ActionCapsLock
	ActionEnter
	ActionShift
	ActionCtrl
	ActionAlt
)

var actionNames = [...]string{
	ActionBackspace: "Backspace",
	ActionTab:       "Tab",
	ActionCapsLock:  "Caps Lock",
	ActionEnter:     "Enter",
	ActionShift:     "Shift",
	ActionCtrl:      "Ctrl",
	ActionAlt:       "Alt",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Side tells the two Shift keys apart. Every other key has SideNone.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Key is either a CharKey or an ActionKey.
type Key interface {
	// Label is the text shown on the key cap.
	Label() string
	isKey()
}

// CharKey produces a printable character. Shifted is zero when the key has
// no shifted form (letters and space).
type CharKey struct {
	Base    rune
	Shifted rune
}

func (k CharKey) HasShifted() bool {
	return k.Shifted != 0
}

func (k CharKey) Label() string {
	if k.Base == ' ' {
		return "Space"
	}
	return string(k.Base)
}

func (CharKey) isKey() {}

// ActionKey triggers a control function.
type ActionKey struct {
	Action Action
	Side   Side
}

func (k ActionKey) Label() string {
	return k.Action.String()
}

func (ActionKey) isKey() {}

// Char is shorthand for a key without a shifted form.
func Char(base rune) CharKey {
	return CharKey{Base: base}
}

// Shifted is shorthand for a key with both a base and a shifted form.
func Shifted(base, shifted rune) CharKey {
	return CharKey{Base: base, Shifted: shifted}
}

// Do is shorthand for an action key.
func Do(action Action) ActionKey {
	return ActionKey{Action: action}
}

// Shift returns the Shift key on the given side.
func Shift(side Side) ActionKey {
	return ActionKey{Action: ActionShift, Side: side}
}

const (
	WidthNormal    = 1.0
	WidthWide      = 1.75
	WidthExtraWide = 7.0
)

// Width is the relative width of a key in key units.
func Width(k Key) float64 {
	switch k := k.(type) {
	case CharKey:
		if k.Base == ' ' {
			return WidthExtraWide
		}
		return WidthNormal
	case ActionKey:
		if k.Action == ActionTab {
			return WidthNormal
		}
		return WidthWide
	}
	return WidthNormal
}
