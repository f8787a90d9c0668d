package sessionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/arxlab/arxpoints/internal/domain"
	"github.com/arxlab/arxpoints/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, sessionID string) (*domain.MiningSession, error) {
	query := `
        SELECT id, user_id, started_at, ended_at, is_active, raw_points, credited_at
        FROM mining_sessions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, sessionID)

	var session domain.MiningSession
	err := row.Scan(&session.ID, &session.UserID, &session.StartedAt, &session.EndedAt, &session.IsActive, &session.RawPoints, &session.CreditedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find mining session", zap.Error(err))
		return nil, err
	}
	return &session, nil
}

func (r *Repository) Save(ctx context.Context, session *domain.MiningSession) error {
	query := `
        INSERT INTO mining_sessions (id, user_id, started_at, is_active, raw_points)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, session.ID, session.UserID, session.StartedAt, session.IsActive, session.RawPoints)
	if err != nil {
		zap.L().Error("can't save mining session", zap.Error(err))
		return err
	}
	return nil
}

// MarkCredited is the compare-and-swap on credited_at: it succeeds only if
// no other caller has credited the session yet. Reports whether this caller
// won.
func (r *Repository) MarkCredited(ctx context.Context, sessionID string, creditedAt time.Time) (bool, error) {
	query := `
        UPDATE mining_sessions
        SET credited_at = $1
        WHERE id = $2 AND credited_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, creditedAt, sessionID)
	if err != nil {
		zap.L().Error("failed to mark session credited", zap.String("sessionID", sessionID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ClearCredited rolls the CAS back after a failed balance write so a retry
// can credit the session.
func (r *Repository) ClearCredited(ctx context.Context, sessionID string) error {
	query := `
        UPDATE mining_sessions
        SET credited_at = NULL
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, sessionID)
	if err != nil {
		zap.L().Error("failed to clear credited mark", zap.String("sessionID", sessionID), zap.Error(err))
		return err
	}
	return nil
}

// Close ends a session and freezes its raw points. RawPoints is never
// recomputed after this write. Reports whether this caller did the close;
// false means another caller froze the points first and its value is the
// authoritative one.
func (r *Repository) Close(ctx context.Context, sessionID string, endedAt time.Time, rawPoints int64) (bool, error) {
	query := `
        UPDATE mining_sessions
        SET is_active = FALSE, ended_at = $1, raw_points = $2
        WHERE id = $3 AND is_active
    `
	tag, err := r.db.Exec(ctx, query, endedAt, rawPoints, sessionID)
	if err != nil {
		zap.L().Error("failed to close session", zap.String("sessionID", sessionID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindStale(ctx context.Context, startedBefore time.Time, limit int) ([]domain.MiningSession, error) {
	query := `
        SELECT id, user_id, started_at, ended_at, is_active, raw_points, credited_at
        FROM mining_sessions
        WHERE is_active AND started_at < $1
        ORDER BY started_at ASC
        LIMIT $2
    `
	return r.findMany(ctx, query, startedBefore, limit)
}

func (r *Repository) FindOrphaned(ctx context.Context, limit int) ([]domain.MiningSession, error) {
	query := `
        SELECT id, user_id, started_at, ended_at, is_active, raw_points, credited_at
        FROM mining_sessions
        WHERE NOT is_active AND credited_at IS NULL AND raw_points > 0
        ORDER BY started_at ASC
        LIMIT $1
    `
	return r.findMany(ctx, query, limit)
}

// SumRawPointsByUser totals every session row for the user regardless of the
// credited flag; session rows are the proof of mined points.
func (r *Repository) SumRawPointsByUser(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(raw_points), 0)
        FROM mining_sessions
        WHERE user_id = $1
    `
	var sum int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		zap.L().Error("can't sum session points", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.MiningSession, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query mining sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.MiningSession
	for rows.Next() {
		var session domain.MiningSession
		err := rows.Scan(&session.ID, &session.UserID, &session.StartedAt, &session.EndedAt, &session.IsActive, &session.RawPoints, &session.CreditedAt)
		if err != nil {
			zap.L().Error("can't scan session row", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
