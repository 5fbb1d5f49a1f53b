package internal

import (
	"context"
	"os/exec"
	"strings"
	"sync"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

type PowerButtonConfig struct {
	ButtonCode      int
	DevicePath      string
	ShortPressMax   time.Duration
	CoolDownTime    time.Duration
	SuspendCommand  string
	ShutdownCommand string
}

var quitRequested = atomic.NewBool(false)

// QuitRequested is set from the power button goroutine and polled by the
// render loop.
func QuitRequested() bool {
	return quitRequested.Load()
}

func RequestQuit() {
	quitRequested.Store(true)
}

func ClearQuitRequest() {
	quitRequested.Store(false)
}

type powerAction int

const (
	powerActionNone powerAction = iota
	powerActionSuspend
	powerActionShutdown
)

const (
	evdevKeyUp     = 0
	evdevKeyDown   = 1
	evdevKeyRepeat = 2
)

type powerButtonState struct {
	cfg        PowerButtonConfig
	pressedAt  time.Time
	held       bool
	handled    bool
	lastAction time.Time
}

// handle folds one key event into the state. A hold longer than
// ShortPressMax fires shutdown while still held; a shorter press fires
// suspend on release. Nothing fires within CoolDownTime of the last action.
func (s *powerButtonState) handle(value int32, at time.Time) powerAction {
	switch value {
	case evdevKeyDown:
		s.pressedAt = at
		s.held = true
		s.handled = false
		return powerActionNone

	case evdevKeyRepeat:
		if !s.held || s.handled || at.Sub(s.pressedAt) <= s.cfg.ShortPressMax {
			return powerActionNone
		}
		s.handled = true
		return s.fire(powerActionShutdown, at)

	case evdevKeyUp:
		if !s.held {
			return powerActionNone
		}
		s.held = false
		if s.handled {
			return powerActionNone
		}
		s.handled = true
		if at.Sub(s.pressedAt) > s.cfg.ShortPressMax {
			return s.fire(powerActionShutdown, at)
		}
		return s.fire(powerActionSuspend, at)
	}

	return powerActionNone
}

func (s *powerButtonState) fire(action powerAction, at time.Time) powerAction {
	if !s.lastAction.IsZero() && at.Sub(s.lastAction) < s.cfg.CoolDownTime {
		return powerActionNone
	}
	s.lastAction = at
	return action
}

// PowerButtonHandler watches the power button until ctx is done or the
// device fails. Long holds request the UI to close.
func PowerButtonHandler(ctx context.Context, wg *sync.WaitGroup, cfg PowerButtonConfig) {
	defer wg.Done()
	logger := GetInternalLogger()

	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		logger.Error("Failed to open power button device", "path", cfg.DevicePath, "error", err)
		return
	}

	go func() {
		<-ctx.Done()
		dev.Close()
	}()

	state := &powerButtonState{cfg: cfg}
	code := evdev.EvCode(cfg.ButtonCode)

	for {
		event, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("Power button read failed", "error", err)
			}
			return
		}
		if event.Type != evdev.EV_KEY || event.Code != code {
			continue
		}

		switch state.handle(event.Value, time.Now()) {
		case powerActionSuspend:
			logger.Debug("Power button short press")
			runPowerCommand(cfg.SuspendCommand)
		case powerActionShutdown:
			logger.Debug("Power button long press")
			RequestQuit()
			runPowerCommand(cfg.ShutdownCommand)
		}
	}
}

func runPowerCommand(command string) {
	args := strings.Fields(command)
	if len(args) == 0 {
		return
	}
	if err := exec.Command(args[0], args[1:]...).Run(); err != nil {
		GetInternalLogger().Error("Power command failed", "command", command, "error", err)
	}
}
