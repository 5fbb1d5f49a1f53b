package internal

import (
	"context"
	"fmt"
	"sync"

	"github.com/BrandonKowalski/keycap/pkg/keycap/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

type InitOptions struct {
	Title          string
	ShowBackground bool
	FontPath       string
	FontSizes      FontSizes
	PowerButton    *PowerButtonConfig
}

var (
	powerButtonWG   sync.WaitGroup
	stopPowerButton context.CancelFunc
	sdlInitialised  bool
)

// Init brings up SDL, the window, fonts and input. Call SDLCleanup when done.
func Init(opts InitOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER); err != nil {
		return fmt.Errorf("failed to initialize SDL: %w", err)
	}
	sdlInitialised = true

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("failed to initialize SDL_ttf: %w", err)
	}

	win, err := initWindow(opts.Title, opts.ShowBackground)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	window = win

	if err := initFonts(opts.FontPath, opts.FontSizes); err != nil {
		return err
	}

	InitInputProcessor()
	ClearQuitRequest()

	if opts.PowerButton != nil && !constants.IsDevMode() {
		ctx, cancel := context.WithCancel(context.Background())
		stopPowerButton = cancel
		powerButtonWG.Add(1)
		go PowerButtonHandler(ctx, &powerButtonWG, *opts.PowerButton)
	}

	return nil
}

// SDLCleanup releases everything Init created. Safe after a failed Init.
func SDLCleanup() {
	if stopPowerButton != nil {
		stopPowerButton()
		powerButtonWG.Wait()
		stopPowerButton = nil
	}

	CloseAllControllers()
	closeFonts()

	if window != nil {
		window.closeWindow()
		window = nil
	}

	if ttf.WasInit() > 0 {
		ttf.Quit()
	}
	if sdlInitialised {
		sdl.Quit()
		sdlInitialised = false
	}

	CloseLogger()
}
