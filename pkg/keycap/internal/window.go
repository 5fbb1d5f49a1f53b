package internal

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/keycap/pkg/keycap/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
}

var window *Window

func initWindow(title string, displayBackground bool) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		GetInternalLogger().Error("Failed to get display mode", "error", err)
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, displayBackground)
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func initWindowWithSize(title string, width, height int32, displayBackground bool) (*Window, error) {
	x, y := int32(0), int32(0)
	windowFlags := uint32(sdl.WINDOW_SHOWN)

	if constants.IsDevMode() {
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, 1024)
		height = envDimension(constants.WindowHeightEnvVar, 768)
		windowFlags |= sdl.WINDOW_BORDERLESS
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	w, err := sdl.CreateWindow(title, x, y, width, height, windowFlags)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		w.Destroy()
		return nil, err
	}
	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	win := &Window{
		Window:            w,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
	}
	if displayBackground {
		win.loadBackground()
	}

	return win, nil
}

func (window *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if path == "" {
		return
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)
	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		GetInternalLogger().Debug("No background image", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()

	img.Quit()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

// Clear paints the background image, or the theme background colour.
func (window *Window) Clear() {
	if window.DisplayBackground && window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
		return
	}
	bg := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	window.Renderer.Clear()
}
