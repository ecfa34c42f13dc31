package repository

import (
	"context"

	"github.com/alexanderramin/tempo/internal/domain"
)

// CategorySummary aggregates completed sessions for one category.
type CategorySummary struct {
	Category     domain.Category
	Sessions     int
	TotalMinutes int
}

type SessionRepo interface {
	Append(ctx context.Context, s *domain.FocusSession) error
	GetByID(ctx context.Context, id string) (*domain.FocusSession, error)
	ListHistory(ctx context.Context, limit int) ([]*domain.FocusSession, error)
	ListRecent(ctx context.Context, days int) ([]*domain.FocusSession, error)
	SummaryByCategory(ctx context.Context, days int) ([]CategorySummary, error)
	Delete(ctx context.Context, id string) error
}

type PrefsRepo interface {
	Get(ctx context.Context) (*domain.Prefs, error)
	Upsert(ctx context.Context, p *domain.Prefs) error
}
