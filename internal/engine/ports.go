package engine

import (
	"context"

	"github.com/alexanderramin/tempo/internal/domain"
)

// Cues plays short notification cues on lifecycle transitions.
// Implementations are fire-and-forget: they must not block and no
// failure propagates back to the engine.
type Cues interface {
	PlayStart()
	PlayPause()
	PlayResume()
	PlayComplete()
}

// Recorder persists completed sessions. Append is best-effort: a failed
// append is logged by the engine and never reverts completion.
type Recorder interface {
	Append(ctx context.Context, s *domain.FocusSession) error
}

// NoopCues discards all cues. Useful for tests and non-interactive runs.
type NoopCues struct{}

func (NoopCues) PlayStart()    {}
func (NoopCues) PlayPause()    {}
func (NoopCues) PlayResume()   {}
func (NoopCues) PlayComplete() {}

// NoopRecorder discards completed sessions.
type NoopRecorder struct{}

func (NoopRecorder) Append(context.Context, *domain.FocusSession) error { return nil }
