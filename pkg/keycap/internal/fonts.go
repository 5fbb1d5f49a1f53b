package internal

import (
	"fmt"

	"github.com/BrandonKowalski/keycap/pkg/keycap/constants"
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are reference sizes for a 1024px wide screen.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
	Tiny   int
}

// SizesFor derives the full set of sizes from the medium size.
func SizesFor(medium int) FontSizes {
	return FontSizes{
		Large:  medium * 50 / 44,
		Medium: medium,
		Small:  medium * 34 / 44,
		Tiny:   medium * 24 / 44,
	}
}

var Fonts fontsManager

type fontsManager struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
	TinyFont   *ttf.Font
}

func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	return int(float32(baseSize) * scaleFor(screenWidth))
}

// GetScaleFactor returns the scale factor for the current window width.
func GetScaleFactor() float32 {
	return scaleFor(GetWindow().GetWidth())
}

func scaleFor(screenWidth int32) float32 {
	const referenceWidth int32 = 1024
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	// damp growth on large screens
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return scaleFactor
}

func initFonts(path string, sizes FontSizes) error {
	if path == "" {
		return fmt.Errorf("no font configured: set font_path or %s", constants.FontPathEnvVar)
	}

	screenWidth := GetWindow().GetWidth()
	load := func(base int) (*ttf.Font, error) {
		size := CalculateFontSizeForResolution(base, screenWidth)
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			return nil, fmt.Errorf("failed to load font %s at size %d: %w", path, size, err)
		}
		return font, nil
	}

	var err error
	if Fonts.LargeFont, err = load(sizes.Large); err != nil {
		return err
	}
	if Fonts.MediumFont, err = load(sizes.Medium); err != nil {
		return err
	}
	if Fonts.SmallFont, err = load(sizes.Small); err != nil {
		return err
	}
	if Fonts.TinyFont, err = load(sizes.Tiny); err != nil {
		return err
	}

	GetInternalLogger().Debug("Fonts loaded", "path", path, "medium", sizes.Medium)
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont, Fonts.TinyFont} {
		if f != nil {
			f.Close()
		}
	}
}
