package auditrepo

import (
	"context"

	"github.com/arxlab/arxpoints/internal/domain"
	"github.com/arxlab/arxpoints/internal/pg"
	"go.uber.org/zap"
)

// Repository appends to and reads the audit log. There is deliberately no
// update or delete path.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Insert(ctx context.Context, entry *domain.AuditLogEntry) (*domain.AuditLogEntry, error) {
	query := `
        INSERT INTO audit_log (
            user_id, action,
            stored_mining, stored_task, stored_social, stored_referral, stored_total,
            proven_mining, proven_task, proven_social, proven_referral, proven_total,
            mining_diff, task_diff, social_diff, referral_diff, total_diff,
            actor, note, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		entry.UserID, entry.Action,
		entry.StoredMining, entry.StoredTask, entry.StoredSocial, entry.StoredReferral, entry.StoredTotal,
		entry.ProvenMining, entry.ProvenTask, entry.ProvenSocial, entry.ProvenReferral, entry.ProvenTotal,
		entry.MiningDiff, entry.TaskDiff, entry.SocialDiff, entry.ReferralDiff, entry.TotalDiff,
		entry.Actor, entry.Note, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't write audit entry", zap.Int("userID", entry.UserID), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int, limit int) ([]domain.AuditLogEntry, error) {
	query := `
        SELECT id, user_id, action,
               stored_mining, stored_task, stored_social, stored_referral, stored_total,
               proven_mining, proven_task, proven_social, proven_referral, proven_total,
               mining_diff, task_diff, social_diff, referral_diff, total_diff,
               actor, note, created_at
        FROM audit_log
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't fetch audit entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditLogEntry
	for rows.Next() {
		var e domain.AuditLogEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.Action,
			&e.StoredMining, &e.StoredTask, &e.StoredSocial, &e.StoredReferral, &e.StoredTotal,
			&e.ProvenMining, &e.ProvenTask, &e.ProvenSocial, &e.ProvenReferral, &e.ProvenTotal,
			&e.MiningDiff, &e.TaskDiff, &e.SocialDiff, &e.ReferralDiff, &e.TotalDiff,
			&e.Actor, &e.Note, &e.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan audit row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
