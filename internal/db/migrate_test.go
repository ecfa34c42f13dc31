package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already ran migrations once; running them again must succeed.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_SeedsDefaultPrefs(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var category string
	var durationMin, soundEnabled int
	err = database.QueryRow(
		`SELECT default_category, default_duration_min, sound_enabled FROM prefs WHERE id = 'default'`,
	).Scan(&category, &durationMin, &soundEnabled)
	require.NoError(t, err)

	assert.Equal(t, "focus", category)
	assert.Equal(t, 25, durationMin)
	assert.Equal(t, 1, soundEnabled)
}

func TestMigrate_RejectsInvalidCategory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO focus_sessions (id, category, duration_minutes, intention, created_at)
		 VALUES ('s1', 'gaming', 25, '', '2025-06-15T10:00:00Z')`)
	assert.Error(t, err, "CHECK constraint should reject unknown categories")
}

func TestMigrate_RejectsNonPositiveDuration(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO focus_sessions (id, category, duration_minutes, intention, created_at)
		 VALUES ('s1', 'focus', 0, '', '2025-06-15T10:00:00Z')`)
	assert.Error(t, err)
}
