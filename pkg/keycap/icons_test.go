package keycap

import (
	"testing"

	"github.com/BrandonKowalski/keycap/pkg/keycap/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIconsRasterize(t *testing.T) {
	for _, action := range []keys.Action{keys.ActionBackspace, keys.ActionTab, keys.ActionEnter, keys.ActionShift} {
		t.Run(action.String(), func(t *testing.T) {
			svg, ok := keyIconSVG[action]
			require.True(t, ok)

			rgba, err := rasterizeSVG([]byte(svg), 32, 32)
			require.NoError(t, err)
			assert.Equal(t, 32, rgba.Bounds().Dx())

			painted := 0
			for i := 3; i < len(rgba.Pix); i += 4 {
				if rgba.Pix[i] > 0 {
					painted++
				}
			}
			assert.Positive(t, painted)
		})
	}
}

func TestRasterizeSVGViewBoxSize(t *testing.T) {
	rgba, err := rasterizeSVG([]byte(keyIconSVG[keys.ActionTab]), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 24, rgba.Bounds().Dx())
	assert.Equal(t, 24, rgba.Bounds().Dy())
}

func TestRasterizeSVGInvalid(t *testing.T) {
	_, err := rasterizeSVG([]byte(`<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0`), 16, 16)
	assert.ErrorContains(t, err, "failed to parse SVG")
}

func TestNilIconsGet(t *testing.T) {
	var icons *keyIcons
	assert.Nil(t, icons.get(keys.ActionTab))
}
