package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

type Theme struct {
	HighlightColor       sdl.Color // selected key background, footer button background
	AccentColor          sdl.Color // latched modifiers, footer pill
	KeyColor             sdl.Color // idle key background
	KeyBorderColor       sdl.Color
	ButtonLabelColor     sdl.Color // text inside footer buttons
	TextColor            sdl.Color
	HighlightedTextColor sdl.Color // text on the selected key
	HintColor            sdl.Color // shifted symbols, footer help text
	FieldColor           sdl.Color // output field background
	BackgroundColor      sdl.Color
	FontPath             string
	BackgroundImagePath  string
}

var currentTheme = DefaultTheme()

func DefaultTheme() Theme {
	return Theme{
		HighlightColor:       HexToColor(0x6464F0),
		AccentColor:          HexToColor(0x505078),
		KeyColor:             HexToColor(0x32323C),
		KeyBorderColor:       HexToColor(0x464650),
		ButtonLabelColor:     HexToColor(0x000000),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0xFFFFFF),
		HintColor:            HexToColor(0xB4B4B4),
		FieldColor:           HexToColor(0x323232),
		BackgroundColor:      HexToColor(0x000000),
	}
}

func CannoliTheme(fontPath string) Theme {
	t := DefaultTheme()
	t.HighlightColor = HexToColor(0xFFFFFF)
	t.AccentColor = HexToColor(0x008080)
	t.HighlightedTextColor = HexToColor(0x000000)
	t.HintColor = HexToColor(0xD0D0D0)
	t.FontPath = fontPath
	return t
}

func NextUITheme(backgroundPath string) Theme {
	t := DefaultTheme()
	t.HighlightColor = HexToColor(0xFFFFFF)
	t.AccentColor = HexToColor(0x9B2257)
	t.ButtonLabelColor = HexToColor(0x1E2329)
	t.HighlightedTextColor = HexToColor(0x000000)
	t.BackgroundImagePath = backgroundPath
	return t
}

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}
