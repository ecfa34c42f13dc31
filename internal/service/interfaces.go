package service

import (
	"context"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
)

// SessionService records completed sessions and serves history queries.
// Append satisfies engine.Recorder, so the engine persists through the
// same service the CLI reads from.
type SessionService interface {
	Append(ctx context.Context, s *domain.FocusSession) error
	History(ctx context.Context, limit int) ([]*domain.FocusSession, error)
	Stats(ctx context.Context, days int) ([]repository.CategorySummary, error)
	Delete(ctx context.Context, id string) error
}

// PrefsService loads and saves the user's default session configuration.
type PrefsService interface {
	Get(ctx context.Context) (*domain.Prefs, error)
	Save(ctx context.Context, p *domain.Prefs) error
}
