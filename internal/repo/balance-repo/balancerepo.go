package balancerepo

import (
	"context"
	"fmt"

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

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, mining_subtotal, task_subtotal, social_subtotal, referral_subtotal, total
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.MiningSubtotal, &balance.TaskSubtotal, &balance.SocialSubtotal, &balance.ReferralSubtotal, &balance.Total)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, mining_subtotal, task_subtotal, social_subtotal, referral_subtotal, total)
        VALUES ($1, 0, 0, 0, 0, 0)
        RETURNING id, user_id, mining_subtotal, task_subtotal, social_subtotal, referral_subtotal, total
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.MiningSubtotal, &balance.TaskSubtotal, &balance.SocialSubtotal, &balance.ReferralSubtotal, &balance.Total)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func categoryColumn(category domain.Category) (string, error) {
	switch category {
	case domain.CategoryMining:
		return "mining_subtotal", nil
	case domain.CategoryTask:
		return "task_subtotal", nil
	case domain.CategorySocial:
		return "social_subtotal", nil
	case domain.CategoryReferral:
		return "referral_subtotal", nil
	}
	return "", fmt.Errorf("unknown balance category: %s", category)
}

// AddToCategory atomically moves delta points through one subtotal and the
// total in a single statement, keeping total == sum of subtotals.
func (r *Repository) AddToCategory(ctx context.Context, userID int, category domain.Category, delta int64) error {
	column, err := categoryColumn(category)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
        UPDATE balances
        SET %s = %s + $1, total = total + $1
        WHERE user_id = $2
    `, column, column)

	tag, err := r.db.Exec(ctx, query, delta, userID)
	if err != nil {
		zap.L().Error("failed to add to balance", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no balance row for user %d", userID)
	}
	return nil
}

// UpdateSubtotals overwrites every subtotal and the total in one
// transaction. Used only by reconciliation, the clamp and settlement, which
// write their audit entry first.
func (r *Repository) UpdateSubtotals(ctx context.Context, userID int, balance *domain.Balance) (*domain.Balance, error) {
	var updated domain.Balance
	query := `
        UPDATE balances
        SET mining_subtotal = $1, task_subtotal = $2, social_subtotal = $3, referral_subtotal = $4, total = $5
        WHERE user_id = $6
        RETURNING id, user_id, mining_subtotal, task_subtotal, social_subtotal, referral_subtotal, total
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, balance.MiningSubtotal, balance.TaskSubtotal, balance.SocialSubtotal, balance.ReferralSubtotal, balance.Total, userID)
		err := row.Scan(&updated.ID, &updated.UserID, &updated.MiningSubtotal, &updated.TaskSubtotal, &updated.SocialSubtotal, &updated.ReferralSubtotal, &updated.Total)
		if err != nil {
			zap.L().Error("failed to update user balance", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListUserIDs pages through balance rows for batch reconciliation passes.
func (r *Repository) ListUserIDs(ctx context.Context, limit, offset int) ([]int, error) {
	query := `
        SELECT user_id
        FROM balances
        ORDER BY user_id ASC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't list balance users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan user id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
