package arenarepo

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

func (r *Repository) FindBattle(ctx context.Context, battleID string) (*domain.Battle, error) {
	query := `
        SELECT id, title, winning_side, settled_at, created_at
        FROM battles
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, battleID)

	var battle domain.Battle
	err := row.Scan(&battle.ID, &battle.Title, &battle.WinningSide, &battle.SettledAt, &battle.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find battle", zap.Error(err))
		return nil, err
	}
	return &battle, nil
}

// MarkSettled is the settlement compare-and-swap: exactly one caller per
// battle id wins it.
func (r *Repository) MarkSettled(ctx context.Context, battleID, winningSide string, settledAt time.Time) (bool, error) {
	query := `
        UPDATE battles
        SET settled_at = $1, winning_side = $2
        WHERE id = $3 AND settled_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, settledAt, winningSide, battleID)
	if err != nil {
		zap.L().Error("failed to mark battle settled", zap.String("battleID", battleID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ClearSettled(ctx context.Context, battleID string) error {
	query := `
        UPDATE battles
        SET settled_at = NULL, winning_side = NULL
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, battleID)
	if err != nil {
		zap.L().Error("failed to clear settled mark", zap.String("battleID", battleID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListStakes(ctx context.Context, battleID string) ([]domain.StakeVote, error) {
	query := `
        SELECT id, battle_id, user_id, side, amount, created_at
        FROM stake_votes
        WHERE battle_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, battleID)
	if err != nil {
		zap.L().Error("can't list stakes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stakes []domain.StakeVote
	for rows.Next() {
		var s domain.StakeVote
		if err := rows.Scan(&s.ID, &s.BattleID, &s.UserID, &s.Side, &s.Amount, &s.CreatedAt); err != nil {
			zap.L().Error("can't scan stake row", zap.Error(err))
			return nil, err
		}
		stakes = append(stakes, s)
	}
	return stakes, nil
}

// InsertStake writes the vote only while the battle is still open. The
// settled_at check runs inside the insert statement, so a stake racing a
// settlement either lands before the settled mark or is rejected; it can
// never be debited and then miss the payout set. Reports whether the row
// was written.
func (r *Repository) InsertStake(ctx context.Context, stake *domain.StakeVote) (bool, error) {
	query := `
        INSERT INTO stake_votes (battle_id, user_id, side, amount, created_at)
        SELECT $1, $2, $3, $4, $5
        WHERE EXISTS (SELECT 1 FROM battles WHERE id = $1 AND settled_at IS NULL)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, stake.BattleID, stake.UserID, stake.Side, stake.Amount, stake.CreatedAt).Scan(&stake.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't save stake", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) InsertEarning(ctx context.Context, earning *domain.ArenaEarning) error {
	query := `
        INSERT INTO arena_earnings (battle_id, user_id, amount, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, earning.BattleID, earning.UserID, earning.Amount, earning.CreatedAt).Scan(&earning.ID)
	if err != nil {
		zap.L().Error("can't save arena earning", zap.Error(err))
		return err
	}
	return nil
}

// SumEarningsByUser and SumStakesByUser feed the reconciliation proof
// totals: net arena movement is part of the social proof column.
func (r *Repository) SumEarningsByUser(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM arena_earnings
        WHERE user_id = $1
    `
	var sum int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		zap.L().Error("can't sum arena earnings", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) SumStakesByUser(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM stake_votes
        WHERE user_id = $1
    `
	var sum int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		zap.L().Error("can't sum stakes", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
