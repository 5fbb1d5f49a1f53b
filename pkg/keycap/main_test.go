package keycap

import (
	"io"
	"os"
	"testing"

	"github.com/BrandonKowalski/keycap/pkg/keycap/internal"
)

func TestMain(m *testing.M) {
	internal.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}
