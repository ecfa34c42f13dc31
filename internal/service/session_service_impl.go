package service

import (
	"context"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) Append(ctx context.Context, session *domain.FocusSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	return s.sessions.Append(ctx, session)
}

func (s *sessionService) History(ctx context.Context, limit int) ([]*domain.FocusSession, error) {
	return s.sessions.ListHistory(ctx, limit)
}

func (s *sessionService) Stats(ctx context.Context, days int) ([]repository.CategorySummary, error) {
	return s.sessions.SummaryByCategory(ctx, days)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

type prefsService struct {
	prefs repository.PrefsRepo
}

func NewPrefsService(prefs repository.PrefsRepo) PrefsService {
	return &prefsService{prefs: prefs}
}

func (s *prefsService) Get(ctx context.Context) (*domain.Prefs, error) {
	return s.prefs.Get(ctx)
}

func (s *prefsService) Save(ctx context.Context, p *domain.Prefs) error {
	return s.prefs.Upsert(ctx, p)
}
