package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/engine"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionService(t *testing.T) (SessionService, repository.SessionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)
	return NewSessionService(repo), repo
}

func TestAppend_AssignsIDAndCreatedAt(t *testing.T) {
	svc, repo := setupSessionService(t)
	ctx := context.Background()

	completed := testutil.FixtureNow
	s := &domain.FocusSession{
		Category:        domain.CategoryFocus,
		DurationMinutes: 25,
		Intention:       "Finish report",
		CompletedAt:     &completed,
	}
	require.NoError(t, svc.Append(ctx, s))

	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Finish report", got.Intention)
}

func TestAppend_KeepsExistingID(t *testing.T) {
	svc, _ := setupSessionService(t)

	s := testutil.NewCompletedSession(domain.CategoryRest, 5, testutil.WithID("fixed-id"))
	require.NoError(t, svc.Append(context.Background(), s))
	assert.Equal(t, "fixed-id", s.ID)
}

func TestSessionService_SatisfiesEngineRecorder(t *testing.T) {
	svc, repo := setupSessionService(t)

	// Wire the service straight into an engine and complete a session
	// through it, end to end.
	now := testutil.FixtureNow
	clock := func() time.Time { return now }
	eng := engine.New(engine.NoopCues{}, svc, engine.WithClock(clock))

	require.NoError(t, eng.Start(domain.CategoryFocus, 25, "Finish report"))
	now = now.Add(25 * time.Minute)
	require.True(t, eng.Tick(context.Background()))

	history, err := repo.ListHistory(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.CategoryFocus, history[0].Category)
	assert.Equal(t, 25, history[0].DurationMinutes)
	assert.Equal(t, "Finish report", history[0].Intention)
}

func TestHistoryAndStats(t *testing.T) {
	svc, _ := setupSessionService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	for i, minutes := range []int{25, 25, 50} {
		s := testutil.NewCompletedSession(domain.CategoryFocus, minutes,
			testutil.WithCompletedAt(now.Add(-time.Duration(i)*time.Hour)))
		require.NoError(t, svc.Append(ctx, s))
	}

	history, err := svc.History(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	stats, err := svc.Stats(ctx, 7)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 3, stats[0].Sessions)
	assert.Equal(t, 100, stats[0].TotalMinutes)
}

func TestPrefsService_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPrefsService(repository.NewSQLitePrefsRepo(database))
	ctx := context.Background()

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPrefs(), *p)

	p.DefaultCategory = domain.CategoryCreative
	p.DefaultDurationMin = 45
	require.NoError(t, svc.Save(ctx, p))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryCreative, got.DefaultCategory)
	assert.Equal(t, 45, got.DefaultDurationMin)
}
