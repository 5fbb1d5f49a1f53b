package keycap

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/BrandonKowalski/keycap/pkg/keycap/internal"
	"github.com/BrandonKowalski/keycap/pkg/keycap/keys"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Icons are drawn white and tinted with SetColorMod at render time.
var keyIconSVG = map[keys.Action]string{
	keys.ActionBackspace: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#FFFFFF" d="M22 4 H8 L1 12 L8 20 H22 Z"/></svg>`,
	keys.ActionTab:       `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#FFFFFF" d="M11.59 7.41 L15.17 11 H1 V13 H15.17 L11.58 16.59 L13 18 L19 12 L13 6 Z M20 6 V18 H22 V6 Z"/></svg>`,
	keys.ActionEnter:     `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#FFFFFF" d="M19 7 V11 H5.83 L9.41 7.41 L8 6 L2 12 L8 18 L9.41 16.59 L5.83 13 H21 V7 Z"/></svg>`,
	keys.ActionShift:     `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#FFFFFF" d="M12 3 L3 13 H8 V21 H16 V13 H21 Z"/></svg>`,
}

type keyIcons struct {
	textures map[keys.Action]*sdl.Texture
}

// loadKeyIcons rasterizes every key icon at size x size. Icons that fail
// to load are skipped and their keys fall back to a text label.
func loadKeyIcons(renderer *sdl.Renderer, size int32) *keyIcons {
	icons := &keyIcons{textures: make(map[keys.Action]*sdl.Texture)}

	for action, svg := range keyIconSVG {
		texture, err := loadSVGTexture(renderer, []byte(svg), size, size)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load key icon", "action", action.String(), "error", err)
			continue
		}
		icons.textures[action] = texture
	}

	return icons
}

func (icons *keyIcons) get(action keys.Action) *sdl.Texture {
	if icons == nil {
		return nil
	}
	return icons.textures[action]
}

func (icons *keyIcons) destroy() {
	for action, texture := range icons.textures {
		texture.Destroy()
		delete(icons.textures, action)
	}
}

// rasterizeSVG draws an SVG into a width x height RGBA image. A zero size
// uses the SVG's own viewBox.
func rasterizeSVG(svgData []byte, width, height int32) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	if width == 0 || height == 0 {
		width = int32(icon.ViewBox.W)
		height = int32(icon.ViewBox.H)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// loadSVGTexture rasterizes an SVG and creates an SDL texture
func loadSVGTexture(renderer *sdl.Renderer, svgData []byte, width, height int32) (*sdl.Texture, error) {
	rgba, err := rasterizeSVG(svgData, width, height)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("failed to encode SVG as PNG: %w", err)
	}

	rw, err := sdl.RWFromMem(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create RWops from image data: %w", err)
	}
	texture, err := img.LoadTextureRW(renderer, rw, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture from image data: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
