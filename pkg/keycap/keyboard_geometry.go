package keycap

import (
	"math"

	"github.com/BrandonKowalski/keycap/pkg/keycap/keys"
	"github.com/veandco/go-sdl2/sdl"
)

const keySpacing int32 = 4

// screenLayout splits the window into the output field and the keyboard,
// leaving room for the footer.
func screenLayout(windowWidth, windowHeight int32, scaleFactor float32) (field, keyboard sdl.Rect) {
	padding := int32(20 * scaleFactor)
	footerHeight := footerPillHeight(scaleFactor) + padding

	width := windowWidth * 90 / 100
	x := (windowWidth - width) / 2

	usable := windowHeight - padding - footerHeight - padding
	fieldHeight := usable / 4

	field = sdl.Rect{X: x, Y: padding, W: width, H: fieldHeight}

	keyboardY := padding + fieldHeight + padding
	keyboard = sdl.Rect{X: x, Y: keyboardY, W: width, H: windowHeight - footerHeight - padding - keyboardY}
	return field, keyboard
}

// layoutKeyRects places every key of layout inside area. Rows share the
// height evenly, a key's width is proportional to keys.Width and every row
// is centred horizontally.
func layoutKeyRects(layout keys.Layout, area sdl.Rect) [][]sdl.Rect {
	rects := make([][]sdl.Rect, len(layout))
	if len(layout) == 0 {
		return rects
	}

	unit := float64(area.W) / layout.MaxRowWidth()
	rowHeight := area.H / int32(len(layout))

	for r, row := range layout {
		rowStart := float64(area.X) + (float64(area.W)-layout.RowWidth(r)*unit)/2
		y := area.Y + int32(r)*rowHeight + keySpacing/2

		rects[r] = make([]sdl.Rect, len(row))
		offset := 0.0
		for c, k := range row {
			left := int32(math.Floor(rowStart+offset*unit)) + keySpacing/2
			offset += keys.Width(k)
			right := int32(math.Floor(rowStart+offset*unit)) - keySpacing/2
			rects[r][c] = sdl.Rect{X: left, Y: y, W: right - left, H: rowHeight - keySpacing}
		}
	}

	return rects
}

// keyAt hit-tests a point against the key rects.
func keyAt(rects [][]sdl.Rect, x, y int32) (row, col int, ok bool) {
	point := sdl.Point{X: x, Y: y}
	for r := range rects {
		for c := range rects[r] {
			if point.InRect(&rects[r][c]) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func centreX(rect sdl.Rect) int32 {
	return rect.X + rect.W/2
}

// moveHorizontal steps within a row, wrapping at both ends.
func moveHorizontal(rects [][]sdl.Rect, row, col, delta int) (int, int) {
	n := len(rects[row])
	return row, ((col+delta)%n + n) % n
}

// moveVertical steps to the next or previous row, wrapping, and lands on
// the key whose centre is horizontally closest to the current key.
func moveVertical(rects [][]sdl.Rect, row, col, delta int) (int, int) {
	n := len(rects)
	target := ((row+delta)%n + n) % n
	from := centreX(rects[row][col])

	best, bestDistance := 0, int32(math.MaxInt32)
	for c, rect := range rects[target] {
		distance := centreX(rect) - from
		if distance < 0 {
			distance = -distance
		}
		if distance < bestDistance {
			best, bestDistance = c, distance
		}
	}
	return target, best
}
