package term

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestNewDisabled(t *testing.T) {
	assert.Equal(t, New(false), Codes{})
}

func TestNewEnabled(t *testing.T) {
	c := New(true)
	if !EnableVT() {
		assert.Equal(t, c, Codes{})
		return
	}
	assert.Equal(t, c.Zero, "\033[0m")
	assert.That(t, c.Yell != "" && c.Purp != "" && c.Und != "")
}
