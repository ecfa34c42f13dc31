package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
)

// SQLitePrefsRepo implements PrefsRepo on the singleton prefs row.
type SQLitePrefsRepo struct {
	db db.DBTX
}

// NewSQLitePrefsRepo creates a new SQLitePrefsRepo.
func NewSQLitePrefsRepo(db db.DBTX) *SQLitePrefsRepo {
	return &SQLitePrefsRepo{db: db}
}

func (r *SQLitePrefsRepo) Get(ctx context.Context) (*domain.Prefs, error) {
	query := `SELECT default_category, default_duration_min, sound_enabled
		FROM prefs WHERE id = 'default'`
	var p domain.Prefs
	var category string
	var sound int
	err := r.db.QueryRowContext(ctx, query).Scan(&category, &p.DefaultDurationMin, &sound)
	if err != nil {
		return nil, fmt.Errorf("loading prefs: %w", err)
	}
	p.DefaultCategory = domain.Category(category)
	p.SoundEnabled = intToBool(sound)
	return &p, nil
}

func (r *SQLitePrefsRepo) Upsert(ctx context.Context, p *domain.Prefs) error {
	query := `INSERT INTO prefs (id, default_category, default_duration_min, sound_enabled)
		VALUES ('default', ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			default_category = excluded.default_category,
			default_duration_min = excluded.default_duration_min,
			sound_enabled = excluded.sound_enabled`
	_, err := r.db.ExecContext(ctx, query,
		string(p.DefaultCategory),
		p.DefaultDurationMin,
		boolToInt(p.SoundEnabled),
	)
	if err != nil {
		return fmt.Errorf("upserting prefs: %w", err)
	}
	return nil
}
