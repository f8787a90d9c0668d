package proofrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/arxlab/arxpoints/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.ProofEvent
	}{
		{
			name: "Proof found",
			id:   42,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "kind", "amount", "status", "credited_at", "created_at"}).
					AddRow(42, 1, domain.ProofKindTask, int64(20), "completed", nil, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, kind, amount, status, credited_at, created_at
        FROM proof_events
        WHERE id = $1
    `)).
					WithArgs(42).
					WillReturnRows(rows)
			},
			result: &domain.ProofEvent{
				ID:        42,
				UserID:    1,
				Kind:      domain.ProofKindTask,
				Amount:    20,
				Status:    "completed",
				CreatedAt: createdAt,
			},
		},
		{
			name: "Proof not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, kind, amount, status, credited_at, created_at
        FROM proof_events
        WHERE id = $1
    `)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, kind, amount, status, credited_at, created_at
        FROM proof_events
        WHERE id = $1
    `)).
					WithArgs(42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindOldestUncredited(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "user_id", "kind", "amount", "status", "credited_at", "created_at"}).
		AddRow(7, 1, domain.ProofKindSocial, int64(15), "approved", nil, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta(`
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
    `)).
		WithArgs(1, domain.ProofKindSocial).
		WillReturnRows(rows)

	proof, err := repo.FindOldestUncredited(context.Background(), 1, domain.ProofKindSocial)
	assert.NoError(t, err)
	assert.Equal(t, 7, proof.ID)
	assert.Equal(t, "approved", proof.Status)
}

func TestRepository_FindOldestUncredited_NoRows(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
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
    `)).
		WithArgs(1, domain.ProofKindTask).
		WillReturnError(pgx.ErrNoRows)

	proof, err := repo.FindOldestUncredited(context.Background(), 1, domain.ProofKindTask)
	assert.NoError(t, err)
	assert.Nil(t, proof)
}

func TestRepository_MarkCredited(t *testing.T) {
	repo, mock := NewMock(t)
	creditedAt := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		rows int64
		won  bool
	}{
		{name: "First caller wins", rows: 1, won: true},
		{name: "Already credited", rows: 0, won: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE proof_events
        SET credited_at = $1
        WHERE id = $2 AND credited_at IS NULL
    `)).
				WithArgs(creditedAt, 42).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.rows))

			won, err := repo.MarkCredited(context.Background(), 42, creditedAt)
			assert.NoError(t, err)
			assert.Equal(t, tt.won, won)
		})
	}
}

func TestRepository_ClearCredited(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE proof_events
        SET credited_at = NULL
        WHERE id = $1
    `)).
		WithArgs(42).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.ClearCredited(context.Background(), 42)
	assert.NoError(t, err)
}

func TestRepository_SumProofs(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Task proof", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT COALESCE(SUM(amount), 0)
        FROM proof_events
        WHERE user_id = $1 AND kind = 'task' AND status = 'completed'
    `)).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(200)))

		sum, err := repo.SumTaskProof(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(200), sum)
	})

	t.Run("Social proof includes checkins", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT COALESCE(SUM(amount), 0)
        FROM proof_events
        WHERE user_id = $1
          AND ((kind = 'social' AND status = 'approved') OR kind = 'checkin')
    `)).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(150)))

		sum, err := repo.SumSocialProof(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(150), sum)
	})

	t.Run("Referral proof applies default", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE $2 END), 0)
        FROM proof_events
        WHERE user_id = $1 AND kind = 'referral'
    `)).
			WithArgs(1, int64(100)).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(300)))

		sum, err := repo.SumReferralProof(context.Background(), 1, 100)
		assert.NoError(t, err)
		assert.Equal(t, int64(300), sum)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT COALESCE(SUM(amount), 0)
        FROM proof_events
        WHERE user_id = $1 AND kind = 'task' AND status = 'completed'
    `)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		sum, err := repo.SumTaskProof(context.Background(), 1)
		assert.Error(t, err)
		assert.Equal(t, int64(0), sum)
	})
}
