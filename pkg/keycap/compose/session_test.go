package compose

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/BrandonKowalski/keycap/pkg/keycap/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	leftShift  = keys.Shift(keys.SideLeft)
	rightShift = keys.Shift(keys.SideRight)
	capsLock   = keys.Do(keys.ActionCapsLock)
	backspace  = keys.Do(keys.ActionBackspace)
	enter      = keys.Do(keys.ActionEnter)
	tab        = keys.Do(keys.ActionTab)
	space      = keys.Char(' ')
)

func press(s *Session, ks ...keys.Key) {
	for _, k := range ks {
		s.Activate(k)
	}
}

func allCharKeys() []keys.CharKey {
	var out []keys.CharKey
	for _, row := range keys.Default() {
		for _, k := range row {
			if ck, ok := k.(keys.CharKey); ok {
				out = append(out, ck)
			}
		}
	}
	return out
}

func TestNewSessionIsEmpty(t *testing.T) {
	s := NewSession(nil)
	assert.Equal(t, State{ActiveShiftSide: keys.SideNone}, s.State())
	assert.Zero(t, s.Len())
}

func TestLetterCasing(t *testing.T) {
	tests := []struct {
		name  string
		caps  bool
		shift bool
		want  string
	}{
		{"plain", false, false, "q"},
		{"caps", true, false, "Q"},
		{"shift", false, true, "Q"},
		{"caps and shift", true, true, "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(nil)
			if tt.caps {
				press(s, capsLock)
			}
			if tt.shift {
				press(s, leftShift)
			}
			press(s, keys.Char('q'))
			assert.Equal(t, tt.want, s.Text())
		})
	}
}

func TestEveryLetterKey(t *testing.T) {
	for _, k := range allCharKeys() {
		if k.Base < 'a' || k.Base > 'z' {
			continue
		}
		lowerWant := string(k.Base)
		upperWant := string(k.Base - 'a' + 'A')

		s := NewSession(nil)
		press(s, k)
		press(s, capsLock, k)
		press(s, leftShift, k)
		press(s, capsLock, leftShift, k)

		assert.Equal(t, lowerWant+upperWant+lowerWant+upperWant, s.Text(), "key %q", k.Base)
	}
}

func TestSymbolKeys(t *testing.T) {
	for _, k := range allCharKeys() {
		if !k.HasShifted() {
			continue
		}

		s := NewSession(nil)
		press(s, k)
		assert.Equal(t, string(k.Base), s.Text())

		s = NewSession(nil)
		press(s, leftShift, k)
		assert.Equal(t, string(k.Shifted), s.Text())

		s = NewSession(nil)
		press(s, capsLock, k)
		assert.Equal(t, string(k.Base), s.Text(), "caps lock must not shift %q", k.Base)

		s = NewSession(nil)
		press(s, capsLock, rightShift, k)
		assert.Equal(t, string(k.Shifted), s.Text(), "caps lock must not cancel shift on %q", k.Base)
	}
}

func TestShiftIsConsumedByAnyCharacter(t *testing.T) {
	for _, k := range []keys.Key{keys.Char('a'), keys.Shifted('1', '!'), space} {
		s := NewSession(nil)
		press(s, rightShift)
		require.True(t, s.ShiftActive())
		require.Equal(t, keys.SideRight, s.ActiveShiftSide())

		press(s, k)
		assert.False(t, s.ShiftActive(), k.Label())
		assert.Equal(t, keys.SideNone, s.ActiveShiftSide(), k.Label())
	}
}

func TestShiftSurvivesActionKeys(t *testing.T) {
	s := NewSession(nil)
	press(s, leftShift, enter, tab, backspace, capsLock, keys.Do(keys.ActionCtrl))

	assert.True(t, s.ShiftActive())
	assert.Equal(t, keys.SideLeft, s.ActiveShiftSide())
}

func TestShiftToggle(t *testing.T) {
	s := NewSession(nil)

	press(s, leftShift)
	assert.True(t, s.ShiftActive())
	assert.Equal(t, keys.SideLeft, s.ActiveShiftSide())

	press(s, leftShift)
	assert.False(t, s.ShiftActive())
	assert.Equal(t, keys.SideNone, s.ActiveShiftSide())
}

func TestShiftOtherSideQuirk(t *testing.T) {
	s := NewSession(nil)

	press(s, leftShift, rightShift)
	assert.False(t, s.ShiftActive())
	assert.Equal(t, keys.SideRight, s.ActiveShiftSide())

	// a third press on the same side clears the side while turning shift back on
	press(s, rightShift)
	assert.True(t, s.ShiftActive())
	assert.Equal(t, keys.SideNone, s.ActiveShiftSide())
}

func TestSpaceIgnoresModifiers(t *testing.T) {
	s := NewSession(nil)
	press(s, space, capsLock, space, leftShift, space)
	assert.Equal(t, "   ", s.Text())
}

func TestControlCharacters(t *testing.T) {
	tests := []struct {
		key  keys.Key
		want string
	}{
		{enter, "\n"},
		{tab, "\t"},
		{space, " "},
	}

	for _, tt := range tests {
		s := NewSession(nil)
		s.SetText("abc")
		press(s, tt.key)
		assert.Equal(t, 4, s.Len(), tt.key.Label())
		assert.Equal(t, "abc"+tt.want, s.Text())
	}
}

func TestBackspace(t *testing.T) {
	s := NewSession(nil)
	press(s, backspace, backspace)
	assert.Empty(t, s.Text())

	s.SetText("né")
	press(s, backspace)
	assert.Equal(t, "n", s.Text())
}

func TestCapsLockTwice(t *testing.T) {
	s := NewSession(nil)
	s.SetText("x")
	press(s, capsLock, capsLock)

	assert.False(t, s.CapsLock())
	assert.Equal(t, "x", s.Text())
}

func TestCtrlAltHaveNoEffect(t *testing.T) {
	s := NewSession(nil)
	press(s, capsLock, leftShift)
	before := s.State()

	press(s, keys.Do(keys.ActionCtrl), keys.Do(keys.ActionAlt))
	assert.Equal(t, before, s.State())
}

func TestScenarioCapsLock(t *testing.T) {
	s := NewSession(nil)
	press(s, capsLock)
	require.True(t, s.CapsLock())

	press(s, keys.Char('a'))
	assert.Equal(t, "A", s.Text())

	press(s, keys.Char('a'))
	assert.Equal(t, "AA", s.Text())
}

func TestScenarioShiftedDigit(t *testing.T) {
	s := NewSession(nil)
	press(s, leftShift)
	require.True(t, s.ShiftActive())
	require.Equal(t, keys.SideLeft, s.ActiveShiftSide())

	press(s, keys.Shifted('1', '!'))
	assert.Equal(t, State{Text: "!"}, s.State())
}

func TestScenarioEditing(t *testing.T) {
	s := NewSession(nil)
	s.SetText("Hello")

	press(s, backspace)
	assert.Equal(t, "Hell", s.Text())
	press(s, enter)
	assert.Equal(t, "Hell\n", s.Text())
	press(s, tab)
	assert.Equal(t, "Hell\n\t", s.Text())
}

func TestTypingFromLayout(t *testing.T) {
	l := keys.Default()
	at := func(r, c int) keys.Key {
		k, ok := l.At(r, c)
		require.True(t, ok)
		return k
	}

	s := NewSession(nil)
	// Shift h i Shift 1
	press(s, at(3, 0), at(2, 6), at(1, 8), at(3, 11), at(0, 1))
	assert.Equal(t, "Hi!", s.Text())
}

func TestReset(t *testing.T) {
	s := NewSession(nil)
	press(s, capsLock, keys.Char('a'), leftShift)
	s.Reset()
	assert.Equal(t, State{}, s.State())
}

func TestNilKeyIsIgnored(t *testing.T) {
	s := NewSession(nil)
	s.Activate(nil)
	assert.Zero(t, s.Len())
}

func TestActivationIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := NewSession(logger)
	press(s, keys.Char('z'))

	assert.Contains(t, buf.String(), `"msg":"Key activated"`)
	assert.Contains(t, buf.String(), `"key":"z"`)
}
