package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newPowerState() *powerButtonState {
	return &powerButtonState{cfg: PowerButtonConfig{
		ShortPressMax: 2 * time.Second,
		CoolDownTime:  time.Second,
	}}
}

func TestPowerButtonShortPress(t *testing.T) {
	s := newPowerState()
	t0 := time.Unix(1000, 0)

	assert.Equal(t, powerActionNone, s.handle(evdevKeyDown, t0))
	assert.Equal(t, powerActionSuspend, s.handle(evdevKeyUp, t0.Add(300*time.Millisecond)))
}

func TestPowerButtonLongHoldFiresWhileHeld(t *testing.T) {
	s := newPowerState()
	t0 := time.Unix(1000, 0)

	s.handle(evdevKeyDown, t0)
	assert.Equal(t, powerActionNone, s.handle(evdevKeyRepeat, t0.Add(time.Second)))
	assert.Equal(t, powerActionShutdown, s.handle(evdevKeyRepeat, t0.Add(3*time.Second)))
	assert.Equal(t, powerActionNone, s.handle(evdevKeyRepeat, t0.Add(4*time.Second)))
	assert.Equal(t, powerActionNone, s.handle(evdevKeyUp, t0.Add(5*time.Second)))
}

func TestPowerButtonLongPressWithoutRepeats(t *testing.T) {
	s := newPowerState()
	t0 := time.Unix(1000, 0)

	s.handle(evdevKeyDown, t0)
	assert.Equal(t, powerActionShutdown, s.handle(evdevKeyUp, t0.Add(3*time.Second)))
}

func TestPowerButtonCoolDown(t *testing.T) {
	s := newPowerState()
	t0 := time.Unix(1000, 0)

	s.handle(evdevKeyDown, t0)
	assert.Equal(t, powerActionSuspend, s.handle(evdevKeyUp, t0.Add(100*time.Millisecond)))

	s.handle(evdevKeyDown, t0.Add(200*time.Millisecond))
	assert.Equal(t, powerActionNone, s.handle(evdevKeyUp, t0.Add(400*time.Millisecond)))

	s.handle(evdevKeyDown, t0.Add(2*time.Second))
	assert.Equal(t, powerActionSuspend, s.handle(evdevKeyUp, t0.Add(2100*time.Millisecond)))
}

func TestPowerButtonStrayRelease(t *testing.T) {
	s := newPowerState()
	assert.Equal(t, powerActionNone, s.handle(evdevKeyUp, time.Unix(1000, 0)))
}

func TestQuitRequest(t *testing.T) {
	t.Cleanup(ClearQuitRequest)

	ClearQuitRequest()
	assert.False(t, QuitRequested())
	RequestQuit()
	assert.True(t, QuitRequested())
}
