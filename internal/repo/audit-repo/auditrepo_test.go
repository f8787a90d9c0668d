package auditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/arxlab/arxpoints/internal/domain"
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

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	entry := &domain.AuditLogEntry{
		UserID:       1,
		Action:       domain.AuditActionRestored,
		StoredMining: 250,
		ProvenMining: 400,
		MiningDiff:   150,
		TotalDiff:    150,
		Actor:        "reconcile",
		CreatedAt:    createdAt,
	}

	t.Run("Insert succeeds", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO audit_log")).
			WithArgs(
				1, domain.AuditActionRestored,
				int64(250), int64(0), int64(0), int64(0), int64(0),
				int64(400), int64(0), int64(0), int64(0), int64(0),
				int64(150), int64(0), int64(0), int64(0), int64(150),
				"reconcile", "", createdAt,
			).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(9))

		saved, err := repo.Insert(context.Background(), entry)
		assert.NoError(t, err)
		assert.Equal(t, 9, saved.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO audit_log")).
			WillReturnError(errors.New("database error"))

		saved, err := repo.Insert(context.Background(), entry)
		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	columns := []string{
		"id", "user_id", "action",
		"stored_mining", "stored_task", "stored_social", "stored_referral", "stored_total",
		"proven_mining", "proven_task", "proven_social", "proven_referral", "proven_total",
		"mining_diff", "task_diff", "social_diff", "referral_diff", "total_diff",
		"actor", "note", "created_at",
	}
	rows := pgxmock.NewRows(columns).
		AddRow(9, 1, domain.AuditActionRestored,
			int64(250), int64(0), int64(0), int64(0), int64(250),
			int64(400), int64(0), int64(0), int64(0), int64(400),
			int64(150), int64(0), int64(0), int64(0), int64(150),
			"reconcile", "", createdAt)
	mock.ExpectQuery(regexp.QuoteMeta("FROM audit_log")).
		WithArgs(1, 10).
		WillReturnRows(rows)

	entries, err := repo.FindByUserID(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, domain.AuditActionRestored, entries[0].Action)
	assert.Equal(t, int64(150), entries[0].TotalDiff)
}
