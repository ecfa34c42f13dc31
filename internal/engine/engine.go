package engine

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
)

// State is the lifecycle state of the timer session engine.
type State string

const (
	StateSetup     State = "setup"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// ErrSessionActive is returned by Start while a session is already
// running, paused, or awaiting reset.
var ErrSessionActive = errors.New("a session is already active")

// Engine owns the session lifecycle (SETUP → RUNNING ⇄ PAUSED → COMPLETED)
// and the wall-clock countdown. Remaining time is always derived from the
// absolute end timestamp, never from counting ticks, so delayed or missed
// ticks self-correct instead of accumulating drift.
//
// All methods must be called from a single goroutine (the bubbletea update
// loop); the engine holds no locks. Async advisory results arriving from
// other goroutines are routed back through that loop and applied via the
// Attach methods, which drop results tagged with a stale session sequence.
type Engine struct {
	state State
	seq   int // session identity, bumped on every Start

	session domain.FocusSession
	total   time.Duration
	endAt   time.Time

	remainingPct float64
	remainingSec int

	celebration string

	cues     Cues
	recorder Recorder
	now      func() time.Time
	logf     func(format string, args ...any)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall-clock source. Tests use this to simulate
// elapsed time without sleeping.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogf sets the destination for best-effort failure logging.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(e *Engine) { e.logf = logf }
}

// New creates an engine in the SETUP state.
func New(cues Cues, recorder Recorder, opts ...Option) *Engine {
	e := &Engine{
		state:        StateSetup,
		remainingPct: 100,
		cues:         cues,
		recorder:     recorder,
		now:          time.Now,
		logf:         func(string, ...any) {},
	}
	if e.cues == nil {
		e.cues = NoopCues{}
	}
	if e.recorder == nil {
		e.recorder = NoopRecorder{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start validates the configuration and transitions SETUP → RUNNING.
// The configuration is frozen for the lifetime of the session.
func (e *Engine) Start(category domain.Category, durationMinutes int, intention string) error {
	if e.state != StateSetup {
		return ErrSessionActive
	}
	s := domain.NewFocusSession(category, durationMinutes, intention)
	if err := s.Validate(); err != nil {
		return err
	}

	e.seq++
	e.session = s
	e.total = s.TotalDuration()
	e.endAt = e.now().Add(e.total)
	e.remainingPct = 100
	e.remainingSec = durationMinutes * 60
	e.state = StateRunning
	e.cues.PlayStart()
	return nil
}

// Pause transitions RUNNING → PAUSED, freezing the last computed remaining
// values. No-op in any other state.
func (e *Engine) Pause() {
	if e.state != StateRunning {
		return
	}
	e.state = StatePaused
	e.cues.PlayPause()
}

// Resume transitions PAUSED → RUNNING. The end timestamp is recomputed from
// the frozen percentage, so time spent paused is excluded from the
// countdown. No-op in any other state.
func (e *Engine) Resume() {
	if e.state != StatePaused {
		return
	}
	remaining := time.Duration(e.remainingPct / 100 * float64(e.total))
	e.endAt = e.now().Add(remaining)
	e.state = StateRunning
	e.cues.PlayResume()
}

// Abandon discards the current session without persisting it and returns to
// SETUP. Any attached advisory text is cleared and the percentage resets to
// 100 for the next session's initial render. No-op in SETUP or COMPLETED.
func (e *Engine) Abandon() {
	if e.state != StateRunning && e.state != StatePaused {
		return
	}
	e.session.AIMotivation = ""
	e.total = 0
	e.endAt = time.Time{}
	e.remainingPct = 100
	e.remainingSec = 0
	e.celebration = ""
	e.state = StateSetup
}

// Tick evaluates the countdown while RUNNING and reports whether this tick
// completed the session. Completion fires at most once: the first tick that
// observes a non-positive remaining duration transitions to COMPLETED, and
// subsequent ticks are no-ops.
func (e *Engine) Tick(ctx context.Context) bool {
	if e.state != StateRunning {
		return false
	}
	diff := e.endAt.Sub(e.now())
	if diff <= 0 {
		e.complete(ctx)
		return true
	}
	e.remainingPct = clampPct(float64(diff) / float64(e.total) * 100)
	e.remainingSec = int(math.Ceil(diff.Seconds()))
	return false
}

// complete transitions RUNNING → COMPLETED and appends the session to the
// history store. The append does not wait for an in-flight motivation
// fetch; whatever is attached at this instant is what gets persisted.
func (e *Engine) complete(ctx context.Context) {
	now := e.now()
	e.state = StateCompleted
	e.remainingPct = 0
	e.remainingSec = 0
	e.session.CompletedAt = &now
	e.cues.PlayComplete()
	if err := e.recorder.Append(ctx, &e.session); err != nil {
		e.logf("recording completed session: %v", err)
	}
}

// Reset transitions COMPLETED → SETUP, keeping the last-used configuration
// as defaults and clearing the celebration message. No-op in other states.
func (e *Engine) Reset() {
	if e.state != StateCompleted {
		return
	}
	e.session = domain.NewFocusSession(e.session.Category, e.session.DurationMinutes, e.session.Intention)
	e.total = 0
	e.endAt = time.Time{}
	e.remainingPct = 100
	e.remainingSec = 0
	e.celebration = ""
	e.state = StateSetup
}

// AttachMotivation applies an advisory tip that was fetched for session seq.
// The tip attaches in any state as long as the session identity still
// matches and nothing is attached yet; stale or empty results are dropped.
// Reports whether the tip was applied.
func (e *Engine) AttachMotivation(seq int, text string) bool {
	if seq != e.seq || text == "" || e.session.AIMotivation != "" {
		return false
	}
	e.session.AIMotivation = text
	return true
}

// AttachCelebration applies a completion message fetched for session seq.
// Unlike the motivation tip, the celebration is transient: it is shown on
// the COMPLETED screen only and is never part of the persisted record.
func (e *Engine) AttachCelebration(seq int, text string) bool {
	if seq != e.seq || e.state != StateCompleted || text == "" {
		return false
	}
	e.celebration = text
	return true
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Seq returns the current session identity. Async fetches record it at
// dispatch time and pass it back to the Attach methods.
func (e *Engine) Seq() int { return e.seq }

// Session returns a copy of the current session configuration.
func (e *Engine) Session() domain.FocusSession { return e.session }

// RemainingPercent returns the last computed remaining percentage in [0,100].
func (e *Engine) RemainingPercent() float64 { return e.remainingPct }

// RemainingSeconds returns the last computed whole seconds remaining.
func (e *Engine) RemainingSeconds() int { return e.remainingSec }

// Celebration returns the transient completion message, if one arrived.
func (e *Engine) Celebration() string { return e.celebration }

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
