package proofrepo

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
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.ProofEvent, error) {
	query := `
        SELECT id, user_id, kind, amount, status, credited_at, created_at
        FROM proof_events
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var proof domain.ProofEvent
	err := row.Scan(&proof.ID, &proof.UserID, &proof.Kind, &proof.Amount, &proof.Status, &proof.CreditedAt, &proof.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find proof event", zap.Error(err))
		return nil, err
	}
	return &proof, nil
}

// FindOldestUncredited returns the oldest eligible proof row of the given
// kind that has not been paid out yet.
func (r *Repository) FindOldestUncredited(ctx context.Context, userID int, kind domain.ProofKind) (*domain.ProofEvent, error) {
	query := `
        SELECT id, user_id, kind, amount, status, credited_at, created_at
        FROM proof_events
        WHERE user_id = $1 AND kind = $2 AND credited_at IS NULL
          AND (
                (kind = 'task' AND status = 'completed')
             OR (kind = 'social' AND status = 'approved')
             OR kind IN ('checkin', 'referral')
          )
        ORDER BY created_at ASC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, userID, kind)

	var proof domain.ProofEvent
	err := row.Scan(&proof.ID, &proof.UserID, &proof.Kind, &proof.Amount, &proof.Status, &proof.CreditedAt, &proof.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find uncredited proof", zap.Error(err))
		return nil, err
	}
	return &proof, nil
}

// MarkCredited is the same compare-and-swap discipline as for sessions.
func (r *Repository) MarkCredited(ctx context.Context, id int, creditedAt time.Time) (bool, error) {
	query := `
        UPDATE proof_events
        SET credited_at = $1
        WHERE id = $2 AND credited_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, creditedAt, id)
	if err != nil {
		zap.L().Error("failed to mark proof credited", zap.Int("proofID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ClearCredited(ctx context.Context, id int) error {
	query := `
        UPDATE proof_events
        SET credited_at = NULL
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to clear proof credited mark", zap.Int("proofID", id), zap.Error(err))
		return err
	}
	return nil
}

// SumTaskProof totals completed task rows.
func (r *Repository) SumTaskProof(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM proof_events
        WHERE user_id = $1 AND kind = 'task' AND status = 'completed'
    `
	return r.sum(ctx, query, userID)
}

// SumSocialProof totals approved submissions plus check-in awards.
func (r *Repository) SumSocialProof(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM proof_events
        WHERE user_id = $1
          AND ((kind = 'social' AND status = 'approved') OR kind = 'checkin')
    `
	return r.sum(ctx, query, userID)
}

// SumReferralProof totals referral rows where the user is the referrer.
// Rows without an explicit amount count as defaultPoints.
func (r *Repository) SumReferralProof(ctx context.Context, userID int, defaultPoints int64) (int64, error) {
	query := `
        SELECT COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE $2 END), 0)
        FROM proof_events
        WHERE user_id = $1 AND kind = 'referral'
    `
	return r.sum(ctx, query, userID, defaultPoints)
}

func (r *Repository) sum(ctx context.Context, query string, args ...any) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		zap.L().Error("can't sum proof events", zap.Error(err))
		return 0, err
	}
	return total, nil
}
