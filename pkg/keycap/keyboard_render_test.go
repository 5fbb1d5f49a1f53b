package keycap

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDisplayLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxLines int
		want     []string
	}{
		{"empty", "", 3, []string{""}},
		{"single", "abc", 3, []string{"abc"}},
		{"tab expanded", "a\tb", 3, []string{"a    b"}},
		{"trailing newline", "abc\n", 3, []string{"abc", ""}},
		{"keeps latest", "1\n2\n3\n4", 2, []string{"3", "4"}},
		{"at least one", "1\n2", 0, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayLines(tt.text, tt.maxLines))
		})
	}
}

func TestTailThatFits(t *testing.T) {
	tenPerRune := func(s string) int32 {
		return int32(utf8.RuneCountInString(s) * 10)
	}

	assert.Equal(t, "abc", tailThatFits("abc", 30, tenPerRune))
	assert.Equal(t, "bc", tailThatFits("abc", 25, tenPerRune))
	assert.Equal(t, "é€", tailThatFits("aé€", 20, tenPerRune))
	assert.Equal(t, "", tailThatFits("abc", 5, tenPerRune))
}

func TestIconSize(t *testing.T) {
	kb := newTestKeyboard(t, "")
	assert.Equal(t, kb.keyRects[0][0].H*45/100, kb.iconSize())
	assert.Positive(t, kb.iconSize())
}
