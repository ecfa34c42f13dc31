package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Append(ctx context.Context, s *domain.FocusSession) error {
	query := `INSERT INTO focus_sessions (id, category, duration_minutes, intention, ai_motivation, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	var motivation interface{}
	if s.AIMotivation != "" {
		motivation = s.AIMotivation
	}
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		string(s.Category),
		s.DurationMinutes,
		s.Intention,
		motivation,
		nullableTimeToString(s.CompletedAt),
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting focus session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.FocusSession, error) {
	query := `SELECT id, category, duration_minutes, intention, ai_motivation, completed_at, created_at
		FROM focus_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) ListHistory(ctx context.Context, limit int) ([]*domain.FocusSession, error) {
	query := `SELECT id, category, duration_minutes, intention, ai_motivation, completed_at, created_at
		FROM focus_sessions ORDER BY completed_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing session history: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, days int) ([]*domain.FocusSession, error) {
	query := `SELECT id, category, duration_minutes, intention, ai_motivation, completed_at, created_at
		FROM focus_sessions
		WHERE completed_at >= date('now', ? || ' days')
		ORDER BY completed_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) SummaryByCategory(ctx context.Context, days int) ([]CategorySummary, error) {
	query := `SELECT category, COUNT(*), SUM(duration_minutes)
		FROM focus_sessions
		WHERE completed_at >= date('now', ? || ' days')
		GROUP BY category
		ORDER BY SUM(duration_minutes) DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("summarizing sessions by category: %w", err)
	}
	defer rows.Close()

	var summaries []CategorySummary
	for rows.Next() {
		var s CategorySummary
		var category string
		if err := rows.Scan(&category, &s.Sessions, &s.TotalMinutes); err != nil {
			return nil, fmt.Errorf("scanning category summary: %w", err)
		}
		s.Category = domain.Category(category)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category summaries: %w", err)
	}
	return summaries, nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM focus_sessions WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting focus session: %w", err)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.FocusSession, error) {
	var s domain.FocusSession
	var category, createdAtStr string
	var motivation, completedAt sql.NullString

	err := row.Scan(&s.ID, &category, &s.DurationMinutes, &s.Intention, &motivation, &completedAt, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("focus session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning focus session: %w", err)
	}

	return r.populateSession(&s, category, motivation, completedAt, createdAtStr)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.FocusSession, error) {
	var sessions []*domain.FocusSession
	for rows.Next() {
		var s domain.FocusSession
		var category, createdAtStr string
		var motivation, completedAt sql.NullString

		err := rows.Scan(&s.ID, &category, &s.DurationMinutes, &s.Intention, &motivation, &completedAt, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, category, motivation, completedAt, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a FocusSession after scanning raw values.
func (r *SQLiteSessionRepo) populateSession(s *domain.FocusSession, category string, motivation, completedAt sql.NullString, createdAtStr string) (*domain.FocusSession, error) {
	s.Category = domain.Category(category)
	if motivation.Valid {
		s.AIMotivation = motivation.String
	}
	s.CompletedAt = parseNullableTime(completedAt)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return s, nil
}
