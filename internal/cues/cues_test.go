package cues

import (
	"bytes"
	"testing"

	"github.com/alexanderramin/tempo/internal/engine"
	"github.com/stretchr/testify/assert"
)

// Terminal must satisfy the engine's cue port.
var _ engine.Cues = (*Terminal)(nil)

func TestTerminal_RingsPerTransition(t *testing.T) {
	var buf bytes.Buffer
	c := NewTerminal(&buf, true)

	c.PlayStart()
	assert.Equal(t, "\a", buf.String())

	buf.Reset()
	c.PlayComplete()
	assert.Equal(t, "\a\a", buf.String(), "completion rings twice")
}

func TestTerminal_DisabledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	c := NewTerminal(&buf, false)

	c.PlayStart()
	c.PlayPause()
	c.PlayResume()
	c.PlayComplete()

	assert.Empty(t, buf.String())
}

func TestTerminal_NilWriterIsSafe(t *testing.T) {
	c := NewTerminal(nil, true)
	assert.NotPanics(t, func() {
		c.PlayStart()
		c.PlayComplete()
	})
}
