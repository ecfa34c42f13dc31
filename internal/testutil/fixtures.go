package testutil

import (
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/google/uuid"
)

// FixtureNow is the reference instant used by session fixtures.
var FixtureNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// SessionOption customizes a fixture session.
type SessionOption func(*domain.FocusSession)

// WithIntention sets the intention text.
func WithIntention(intention string) SessionOption {
	return func(s *domain.FocusSession) { s.Intention = intention }
}

// WithMotivation attaches advisory text.
func WithMotivation(text string) SessionOption {
	return func(s *domain.FocusSession) { s.AIMotivation = text }
}

// WithCompletedAt overrides the completion timestamp.
func WithCompletedAt(t time.Time) SessionOption {
	return func(s *domain.FocusSession) { s.CompletedAt = &t }
}

// WithID overrides the generated ID.
func WithID(id string) SessionOption {
	return func(s *domain.FocusSession) { s.ID = id }
}

// NewCompletedSession builds a completed session fixture ready for Append.
func NewCompletedSession(category domain.Category, minutes int, opts ...SessionOption) *domain.FocusSession {
	completed := FixtureNow
	s := &domain.FocusSession{
		ID:              uuid.New().String(),
		Category:        category,
		DurationMinutes: minutes,
		CompletedAt:     &completed,
		CreatedAt:       FixtureNow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
