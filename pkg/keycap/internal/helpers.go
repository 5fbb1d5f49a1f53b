package internal

import (
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func HexToColor(hex uint32) sdl.Color {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return sdl.Color{R: r, G: g, B: b, A: 255}
}

// DrawRoundedRect fills rect with rounded corners.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(rect)
		return
	}

	radius = Min32(radius, Min32(rect.W, rect.H)/2)

	gfx.BoxColor(renderer, rect.X+radius, rect.Y, rect.X+rect.W-radius, rect.Y+rect.H, color)
	gfx.BoxColor(renderer, rect.X, rect.Y+radius, rect.X+radius, rect.Y+rect.H-radius, color)
	gfx.BoxColor(renderer, rect.X+rect.W-radius, rect.Y+radius, rect.X+rect.W, rect.Y+rect.H-radius, color)

	drawRoundedCorner(renderer, rect.X+radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+radius, rect.Y+rect.H-radius, radius, color)
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+rect.H-radius, radius, color)
}

func drawRoundedCorner(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	gfx.FilledCircleColor(renderer, centerX, centerY, radius, color)
	gfx.AACircleColor(renderer, centerX, centerY, radius, color)
	if radius > 2 {
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
	}
}

// DrawCircle draws an anti-aliased filled circle.
func DrawCircle(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	drawRoundedCorner(renderer, centerX, centerY, radius, color)
}

// RenderText draws text with its top-left corner at x, y and returns the
// rendered size. Empty text and render failures draw nothing.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y int32) (int32, int32) {
	if text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.W, surface.H
}

// RenderTextCentered draws text centred inside rect.
func RenderTextCentered(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, rect sdl.Rect) {
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return
	}
	RenderText(renderer, font, text, color, rect.X+(rect.W-int32(w))/2, rect.Y+(rect.H-int32(h))/2)
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
