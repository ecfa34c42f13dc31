package domain

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// MaxIntentionLen bounds the free-text intention field, in runes.
const MaxIntentionLen = 60

var (
	ErrInvalidDuration  = errors.New("duration must be a positive number of minutes")
	ErrInvalidCategory  = errors.New("unknown category")
	ErrIntentionTooLong = fmt.Errorf("intention exceeds %d characters", MaxIntentionLen)
)

// FocusSession is one configured focus interval. The configuration fields
// (Category, DurationMinutes, Intention) are frozen once the session starts;
// AIMotivation is attached later by the advisory fetch, if it resolves.
// CompletedAt is set only on successful completion.
type FocusSession struct {
	ID              string
	Category        Category
	DurationMinutes int
	Intention       string
	AIMotivation    string
	CompletedAt     *time.Time
	CreatedAt       time.Time
}

// NewFocusSession builds an unvalidated session configuration.
func NewFocusSession(category Category, durationMinutes int, intention string) FocusSession {
	return FocusSession{
		Category:        category,
		DurationMinutes: durationMinutes,
		Intention:       intention,
	}
}

// Validate checks the configuration before a session may start.
func (s *FocusSession) Validate() error {
	if s.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if !ValidCategories[s.Category] {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, s.Category)
	}
	if utf8.RuneCountInString(s.Intention) > MaxIntentionLen {
		return ErrIntentionTooLong
	}
	return nil
}

// TotalDuration returns the fixed session length.
func (s *FocusSession) TotalDuration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// Prefs holds the user's last-used session configuration and settings.
// Singleton: exactly one row exists in storage.
type Prefs struct {
	DefaultCategory    Category
	DefaultDurationMin int
	SoundEnabled       bool
}

// DefaultPrefs returns the factory configuration used before the user has
// completed or started any session.
func DefaultPrefs() Prefs {
	return Prefs{
		DefaultCategory:    CategoryFocus,
		DefaultDurationMin: 25,
		SoundEnabled:       true,
	}
}
