package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_AppendAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	s := testutil.NewCompletedSession(domain.CategoryFocus, 25,
		testutil.WithIntention("Finish report"),
		testutil.WithMotivation("One thing at a time."),
	)
	require.NoError(t, repo.Append(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryFocus, got.Category)
	assert.Equal(t, 25, got.DurationMinutes)
	assert.Equal(t, "Finish report", got.Intention)
	assert.Equal(t, "One thing at a time.", got.AIMotivation)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, testutil.FixtureNow, *got.CompletedAt)
}

func TestSessionRepo_AppendWithoutMotivation(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	// The advisory fetch may not have resolved by completion time;
	// the record is stored with a NULL motivation.
	s := testutil.NewCompletedSession(domain.CategoryChore, 15)
	require.NoError(t, repo.Append(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, got.AIMotivation)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_ListHistory_NewestFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	base := testutil.FixtureNow
	for i := 0; i < 3; i++ {
		s := testutil.NewCompletedSession(domain.CategoryLearning, 10+i,
			testutil.WithCompletedAt(base.Add(time.Duration(i)*time.Hour)),
		)
		require.NoError(t, repo.Append(ctx, s))
	}

	got, err := repo.ListHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 12, got[0].DurationMinutes, "most recent completion first")
	assert.Equal(t, 10, got[2].DurationMinutes)
}

func TestSessionRepo_ListHistory_RespectsLimit(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, testutil.NewCompletedSession(domain.CategoryFocus, 25)))
	}

	got, err := repo.ListHistory(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSessionRepo_ListRecent_WindowFilter(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	now := time.Now().UTC()
	recent := testutil.NewCompletedSession(domain.CategoryFocus, 25,
		testutil.WithCompletedAt(now.Add(-time.Hour)))
	old := testutil.NewCompletedSession(domain.CategoryFocus, 25,
		testutil.WithCompletedAt(now.AddDate(0, 0, -30)))
	require.NoError(t, repo.Append(ctx, recent))
	require.NoError(t, repo.Append(ctx, old))

	got, err := repo.ListRecent(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, recent.ID, got[0].ID)
}

func TestSessionRepo_SummaryByCategory(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	now := time.Now().UTC()
	append := func(c domain.Category, minutes int) {
		s := testutil.NewCompletedSession(c, minutes, testutil.WithCompletedAt(now.Add(-time.Hour)))
		require.NoError(t, repo.Append(ctx, s))
	}
	append(domain.CategoryFocus, 25)
	append(domain.CategoryFocus, 50)
	append(domain.CategoryRest, 5)

	got, err := repo.SummaryByCategory(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, domain.CategoryFocus, got[0].Category, "sorted by total minutes")
	assert.Equal(t, 2, got[0].Sessions)
	assert.Equal(t, 75, got[0].TotalMinutes)
	assert.Equal(t, domain.CategoryRest, got[1].Category)
	assert.Equal(t, 5, got[1].TotalMinutes)
}

func TestSessionRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	s := testutil.NewCompletedSession(domain.CategoryCreative, 45)
	require.NoError(t, repo.Append(ctx, s))
	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err := repo.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
