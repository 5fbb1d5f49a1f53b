package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVirtualButtonGetName(t *testing.T) {
	assert.Equal(t, "Start", VirtualButtonStart.GetName())
	assert.Equal(t, "L1", VirtualButtonL1.GetName())
	assert.Equal(t, "Unknown", VirtualButton(99).GetName())
}

func TestIsDirectional(t *testing.T) {
	for _, vb := range []VirtualButton{VirtualButtonUp, VirtualButtonDown, VirtualButtonLeft, VirtualButtonRight} {
		assert.True(t, vb.IsDirectional(), vb.GetName())
	}
	assert.False(t, VirtualButtonA.IsDirectional())
	assert.False(t, VirtualButtonMenu.IsDirectional())
}

func TestIsDevMode(t *testing.T) {
	t.Setenv(EnvironmentEnvVar, "dev")
	assert.True(t, IsDevMode())

	t.Setenv(EnvironmentEnvVar, "")
	assert.False(t, IsDevMode())
}
