// Package compose turns activated keys into text. A Session owns the text
// buffer and the modifier flags; it knows nothing about rendering.
package compose

import (
	"log/slog"

	"github.com/BrandonKowalski/keycap/pkg/keycap/keys"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// State is a read-only snapshot of a Session.
type State struct {
	Text            string
	CapsLock        bool
	ShiftActive     bool
	ActiveShiftSide keys.Side
}

// Session is not safe for concurrent use. Drive it from the UI loop only.
type Session struct {
	buffer      []rune
	capsLock    bool
	shiftActive bool
	shiftSide   keys.Side
	logger      *slog.Logger

	// casers keep state between calls and are not shared across sessions
	upper cases.Caser
	lower cases.Caser
}

// NewSession returns an empty session. A nil logger discards output.
func NewSession(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		logger: logger,
		upper:  cases.Upper(language.Und),
		lower:  cases.Lower(language.Und),
	}
}

// Activate applies one key press.
func (s *Session) Activate(k keys.Key) {
	switch k := k.(type) {
	case keys.CharKey:
		s.typeChar(k)
	case keys.ActionKey:
		s.doAction(k)
	default:
		return
	}

	s.logger.Debug("Key activated",
		"key", k.Label(),
		"length", len(s.buffer),
		"caps_lock", s.capsLock,
		"shift", s.shiftActive,
		"shift_side", s.shiftSide.String())
}

func (s *Session) typeChar(k keys.CharKey) {
	var out string
	if s.isLetter(k.Base) {
		if s.capsLock != s.shiftActive {
			out = s.upper.String(string(k.Base))
		} else {
			out = s.lower.String(string(k.Base))
		}
	} else if s.shiftActive && k.HasShifted() {
		out = string(k.Shifted)
	} else {
		out = string(k.Base)
	}

	s.buffer = append(s.buffer, []rune(out)...)

	// shift is one-shot
	if s.shiftActive {
		s.shiftActive = false
		s.shiftSide = keys.SideNone
	}
}

func (s *Session) doAction(k keys.ActionKey) {
	switch k.Action {
	case keys.ActionShift:
		s.toggleShift(k.Side)
	case keys.ActionCapsLock:
		s.capsLock = !s.capsLock
	case keys.ActionEnter:
		s.buffer = append(s.buffer, '\n')
	case keys.ActionTab:
		s.buffer = append(s.buffer, '\t')
	case keys.ActionBackspace:
		if len(s.buffer) > 0 {
			s.buffer = s.buffer[:len(s.buffer)-1]
		}
	case keys.ActionCtrl, keys.ActionAlt:
		// reserved
	}
}

// toggleShift flips the shift flag on every press and tracks the side on its
// own. Pressing left then right leaves shift off with the right side marked.
func (s *Session) toggleShift(side keys.Side) {
	s.shiftActive = !s.shiftActive
	if s.shiftSide == side {
		s.shiftSide = keys.SideNone
	} else {
		s.shiftSide = side
	}
}

// isLetter reports whether r has distinct upper and lower case forms.
func (s *Session) isLetter(r rune) bool {
	ch := string(r)
	return s.lower.String(ch) != s.upper.String(ch)
}

func (s *Session) Text() string {
	return string(s.buffer)
}

// Len is the buffer length in characters.
func (s *Session) Len() int {
	return len(s.buffer)
}

func (s *Session) CapsLock() bool {
	return s.capsLock
}

func (s *Session) ShiftActive() bool {
	return s.shiftActive
}

func (s *Session) ActiveShiftSide() keys.Side {
	return s.shiftSide
}

func (s *Session) State() State {
	return State{
		Text:            s.Text(),
		CapsLock:        s.capsLock,
		ShiftActive:     s.shiftActive,
		ActiveShiftSide: s.shiftSide,
	}
}

// SetText replaces the buffer. Modifier flags are left alone.
func (s *Session) SetText(text string) {
	s.buffer = []rune(text)
}

// Reset clears the buffer and all modifiers.
func (s *Session) Reset() {
	s.buffer = nil
	s.capsLock = false
	s.shiftActive = false
	s.shiftSide = keys.SideNone
}
