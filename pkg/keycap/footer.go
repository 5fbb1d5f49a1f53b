package keycap

import (
	"github.com/BrandonKowalski/keycap/pkg/keycap/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// footerHelpItem is a button name drawn in the inner pill followed by what
// the button does.
type footerHelpItem struct {
	ButtonName string
	HelpText   string
}

var keyboardFooterItems = []footerHelpItem{
	{ButtonName: "A", HelpText: "Type"},
	{ButtonName: "B", HelpText: "Delete"},
	{ButtonName: "Y", HelpText: "Cancel"},
	{ButtonName: "Start", HelpText: "Done"},
}

func footerPillHeight(scaleFactor float32) int32 {
	return int32(60 * scaleFactor)
}

// splitFooterItems puts the first half of the items on the left and the
// rest on the right. A single item goes on the left.
func splitFooterItems(items []footerHelpItem) (left, right []footerHelpItem) {
	if len(items) <= 1 {
		return items, nil
	}
	half := (len(items) + 1) / 2
	return items[:half], items[half:]
}

func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []footerHelpItem, bottomPadding int32) {
	if len(items) == 0 {
		return
	}

	scaleFactor := internal.GetScaleFactor()
	windowWidth, windowHeight := internal.GetWindow().Window.GetSize()
	outerPillHeight := footerPillHeight(scaleFactor)
	innerPillMargin := int32(6 * scaleFactor)
	y := windowHeight - bottomPadding - outerPillHeight

	left, right := splitFooterItems(items)
	if len(left) > 0 {
		renderPillGroup(renderer, font, left, bottomPadding, y, outerPillHeight, innerPillMargin)
	}
	if len(right) > 0 {
		width := pillGroupWidth(font, right, outerPillHeight, innerPillMargin)
		renderPillGroup(renderer, font, right, windowWidth-bottomPadding-width, y, outerPillHeight, innerPillMargin)
	}
}

func innerPillWidth(textWidth, innerPillHeight int32) int32 {
	if textWidth <= innerPillHeight-20 {
		return innerPillHeight
	}
	return textWidth + 20
}

func pillGroupWidth(font *ttf.Font, items []footerHelpItem, outerPillHeight, innerPillMargin int32) int32 {
	scaleFactor := internal.GetScaleFactor()
	innerPillHeight := outerPillHeight - innerPillMargin*2
	gap := int32(10 * scaleFactor)

	total := gap
	for i, item := range items {
		buttonWidth, _, err := font.SizeUTF8(item.ButtonName)
		if err != nil {
			continue
		}
		helpWidth, _, err := font.SizeUTF8(item.HelpText)
		if err != nil {
			continue
		}
		total += innerPillWidth(int32(buttonWidth), innerPillHeight) + gap + int32(helpWidth)
		if i < len(items)-1 {
			total += gap * 2
		}
	}
	return total + gap*2
}

func renderPillGroup(renderer *sdl.Renderer, font *ttf.Font, items []footerHelpItem, startX, y, outerPillHeight, innerPillMargin int32) {
	theme := internal.GetTheme()
	scaleFactor := internal.GetScaleFactor()
	gap := int32(10 * scaleFactor)

	outer := &sdl.Rect{X: startX, Y: y, W: pillGroupWidth(font, items, outerPillHeight, innerPillMargin), H: outerPillHeight}
	internal.DrawRoundedRect(renderer, outer, outerPillHeight/2, theme.AccentColor)

	innerPillHeight := outerPillHeight - innerPillMargin*2
	x := startX + gap

	for _, item := range items {
		buttonWidth, _, err := font.SizeUTF8(item.ButtonName)
		if err != nil {
			continue
		}
		width := innerPillWidth(int32(buttonWidth), innerPillHeight)

		inner := sdl.Rect{X: x, Y: y + innerPillMargin, W: width, H: innerPillHeight}
		if width == innerPillHeight {
			internal.DrawCircle(renderer, x+innerPillHeight/2, y+innerPillMargin+innerPillHeight/2, innerPillHeight/2, theme.HighlightColor)
		} else {
			internal.DrawRoundedRect(renderer, &inner, innerPillHeight/2, theme.HighlightColor)
		}
		internal.RenderTextCentered(renderer, font, item.ButtonName, theme.ButtonLabelColor, inner)

		x += width + gap
		helpWidth, helpHeight, err := font.SizeUTF8(item.HelpText)
		if err != nil {
			continue
		}
		internal.RenderText(renderer, font, item.HelpText, theme.HintColor, x, y+(outerPillHeight-int32(helpHeight))/2)
		x += int32(helpWidth) + gap*2
	}
}
