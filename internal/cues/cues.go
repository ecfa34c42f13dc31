// Package cues plays short terminal notification cues on session
// transitions. Cues are fire-and-forget: write errors are swallowed.
package cues

import "io"

const bell = "\a"

// Terminal emits BEL sequences on a writer, typically the controlling
// terminal. Completion rings twice so it is distinguishable from the
// single-bell transition cues.
type Terminal struct {
	w       io.Writer
	enabled bool
}

// NewTerminal creates a Terminal cue player. When enabled is false all
// cues are silent, matching the user's sound preference.
func NewTerminal(w io.Writer, enabled bool) *Terminal {
	return &Terminal{w: w, enabled: enabled}
}

func (t *Terminal) PlayStart()    { t.ring(1) }
func (t *Terminal) PlayPause()    { t.ring(1) }
func (t *Terminal) PlayResume()   { t.ring(1) }
func (t *Terminal) PlayComplete() { t.ring(2) }

func (t *Terminal) ring(n int) {
	if !t.enabled || t.w == nil {
		return
	}
	for i := 0; i < n; i++ {
		_, _ = io.WriteString(t.w, bell)
	}
}
