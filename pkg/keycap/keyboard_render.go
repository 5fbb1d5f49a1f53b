package keycap

import (
	"strings"

	"github.com/BrandonKowalski/keycap/pkg/keycap/internal"
	"github.com/BrandonKowalski/keycap/pkg/keycap/keys"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	tabDisplay  = "    "
	cursorWidth = 2
)

func (kb *virtualKeyboard) iconSize() int32 {
	if len(kb.keyRects) == 0 || len(kb.keyRects[0]) == 0 {
		return 0
	}
	return kb.keyRects[0][0].H * 45 / 100
}

func (kb *virtualKeyboard) render(renderer *sdl.Renderer, icons *keyIcons) {
	internal.GetWindow().Clear()

	kb.renderOutput(renderer, internal.Fonts.MediumFont)
	kb.renderKeys(renderer, icons)
	renderFooter(renderer, internal.Fonts.SmallFont, keyboardFooterItems, int32(20*internal.GetScaleFactor()))

	renderer.Present()
}

// displayLines expands tabs and keeps the last maxLines lines of text.
func displayLines(text string, maxLines int) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\t", tabDisplay), "\n")
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines
}

// tailThatFits drops leading runes until measure(line) fits in maxWidth, so
// the end of a long line stays next to the cursor.
func tailThatFits(line string, maxWidth int32, measure func(string) int32) string {
	runes := []rune(line)
	for len(runes) > 0 && measure(string(runes)) > maxWidth {
		runes = runes[1:]
	}
	return string(runes)
}

func (kb *virtualKeyboard) renderOutput(renderer *sdl.Renderer, font *ttf.Font) {
	theme := internal.GetTheme()
	internal.DrawRoundedRect(renderer, &kb.fieldRect, int32(12*internal.GetScaleFactor()), theme.FieldColor)

	padding := int32(12 * internal.GetScaleFactor())
	lineHeight := int32(font.Height())
	if lineHeight <= 0 {
		return
	}
	maxLines := int((kb.fieldRect.H - padding*2) / lineHeight)
	visibleWidth := kb.fieldRect.W - padding*2 - cursorWidth

	measure := func(s string) int32 {
		w, _, err := font.SizeUTF8(s)
		if err != nil {
			return 0
		}
		return int32(w)
	}

	x := kb.fieldRect.X + padding
	y := kb.fieldRect.Y + padding
	lines := displayLines(kb.session.Text(), maxLines)

	var cursorX int32
	for i, line := range lines {
		w, _ := internal.RenderText(renderer, font, tailThatFits(line, visibleWidth, measure), theme.TextColor, x, y)
		if i == len(lines)-1 {
			cursorX = x + w
			break
		}
		y += lineHeight
	}

	if kb.cursorVisible {
		c := theme.TextColor
		renderer.SetDrawColor(c.R, c.G, c.B, c.A)
		renderer.FillRect(&sdl.Rect{X: cursorX, Y: y, W: cursorWidth, H: lineHeight})
	}
}

func (kb *virtualKeyboard) renderKeys(renderer *sdl.Renderer, icons *keyIcons) {
	theme := internal.GetTheme()

	for r, row := range kb.layout {
		for c, k := range row {
			rect := kb.keyRects[r][c]

			background, text, hint := theme.KeyColor, theme.TextColor, theme.HintColor
			if r == kb.selectedRow && c == kb.selectedCol {
				background, text, hint = theme.HighlightColor, theme.HighlightedTextColor, theme.HighlightedTextColor
			} else if kb.latched(k) {
				background = theme.AccentColor
			}

			internal.DrawRoundedRect(renderer, &rect, rect.H/6, background)
			renderKeyFace(renderer, icons, k, rect, text, hint)
		}
	}
}

func renderKeyFace(renderer *sdl.Renderer, icons *keyIcons, k keys.Key, rect sdl.Rect, text, hint sdl.Color) {
	switch k := k.(type) {
	case keys.CharKey:
		if k.HasShifted() {
			top := sdl.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H / 2}
			bottom := sdl.Rect{X: rect.X, Y: rect.Y + rect.H/2, W: rect.W, H: rect.H - rect.H/2}
			internal.RenderTextCentered(renderer, internal.Fonts.TinyFont, string(k.Shifted), hint, top)
			internal.RenderTextCentered(renderer, internal.Fonts.SmallFont, string(k.Base), text, bottom)
			return
		}
		font := internal.Fonts.MediumFont
		if k.Base == ' ' {
			font = internal.Fonts.SmallFont
		}
		internal.RenderTextCentered(renderer, font, k.Label(), text, rect)

	case keys.ActionKey:
		if texture := icons.get(k.Action); texture != nil {
			if _, _, w, h, err := texture.Query(); err == nil {
				texture.SetColorMod(text.R, text.G, text.B)
				renderer.Copy(texture, nil, &sdl.Rect{X: rect.X + (rect.W-w)/2, Y: rect.Y + (rect.H-h)/2, W: w, H: h})
				return
			}
		}
		internal.RenderTextCentered(renderer, internal.Fonts.SmallFont, k.Label(), text, rect)
	}
}
