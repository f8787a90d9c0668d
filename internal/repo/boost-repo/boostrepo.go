package boostrepo

import (
	"context"

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

// FindByUserID returns every boost source for the user, expired ones
// included; expiry is evaluated by the aggregator against an explicit
// point in time.
func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.BoostSource, error) {
	query := `
        SELECT id, user_id, kind, percentage, expires_at, created_at
        FROM boost_sources
        WHERE user_id = $1
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't fetch boost sources", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sources []domain.BoostSource
	for rows.Next() {
		var s domain.BoostSource
		if err := rows.Scan(&s.ID, &s.UserID, &s.Kind, &s.Percentage, &s.ExpiresAt, &s.CreatedAt); err != nil {
			zap.L().Error("can't scan boost source row", zap.Error(err))
			return nil, err
		}
		sources = append(sources, s)
	}
	return sources, nil
}
