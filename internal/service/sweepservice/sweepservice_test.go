package sweepservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arxlab/arxpoints/internal/boost"
	"github.com/arxlab/arxpoints/internal/domain"
	"github.com/arxlab/arxpoints/internal/service/creditservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockSessionRepo, *MockGate) {
	ctrl := gomock.NewController(t)
	sessionRepo := NewMockSessionRepo(ctrl)
	gate := NewMockGate(ctrl)
	service := New(sessionRepo, gate).WithNow(func() time.Time { return testNow })
	defer ctrl.Finish()
	return service, sessionRepo, gate
}

func staleSession(id string, started time.Time) domain.MiningSession {
	return domain.MiningSession{ID: id, UserID: 1, StartedAt: started, IsActive: true}
}

func TestSweepStale(t *testing.T) {
	started := testNow.Add(-10 * time.Hour)
	cutoff := testNow.Add(-boost.SessionCap)

	t.Run("Stale session is closed at the cap and credited", func(t *testing.T) {
		service, sessionRepo, gate := NewMock(t)
		session := staleSession("s-1", started)

		sessionRepo.EXPECT().FindStale(gomock.Any(), cutoff, DefaultBatchSize).Return([]domain.MiningSession{session}, nil)
		gate.EXPECT().MaxAwardForSession(gomock.Any(), gomock.Any(), testNow).Return(int64(80), nil)
		sessionRepo.EXPECT().Close(gomock.Any(), "s-1", started.Add(boost.SessionCap), int64(80)).Return(true, nil)
		gate.EXPECT().CreditClosedSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.MiningSession) (*creditservice.CreditResult, error) {
				assert.False(t, s.IsActive)
				assert.Equal(t, int64(80), s.RawPoints)
				return &creditservice.CreditResult{Awarded: 80, Status: creditservice.StatusCredited}, nil
			})

		result, err := service.SweepStale(context.Background(), 0, false)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
		assert.Equal(t, 1, result.Credited)
		assert.Equal(t, int64(80), result.TotalPointsDelta)
	})

	t.Run("Dry run reports awards without mutating", func(t *testing.T) {
		service, sessionRepo, gate := NewMock(t)
		sessions := []domain.MiningSession{
			staleSession("s-1", started),
			staleSession("s-2", started.Add(-time.Hour)),
		}

		sessionRepo.EXPECT().FindStale(gomock.Any(), cutoff, 50).Return(sessions, nil)
		gate.EXPECT().MaxAwardForSession(gomock.Any(), gomock.Any(), testNow).Return(int64(80), nil).Times(2)

		result, err := service.SweepStale(context.Background(), 50, true)
		assert.NoError(t, err)
		assert.True(t, result.DryRun)
		assert.Equal(t, 2, result.Processed)
		assert.Equal(t, 0, result.Credited)
		assert.Equal(t, int64(160), result.TotalPointsDelta)
		assert.Len(t, result.Results, 2)
	})

	t.Run("Session closed by a live credit keeps its frozen points", func(t *testing.T) {
		service, sessionRepo, gate := NewMock(t)
		session := staleSession("s-1", started)

		endedAt := testNow.Add(-time.Minute)
		frozen := session
		frozen.IsActive = false
		frozen.EndedAt = &endedAt
		frozen.RawPoints = 35

		sessionRepo.EXPECT().FindStale(gomock.Any(), cutoff, DefaultBatchSize).Return([]domain.MiningSession{session}, nil)
		gate.EXPECT().MaxAwardForSession(gomock.Any(), gomock.Any(), testNow).Return(int64(80), nil)
		sessionRepo.EXPECT().Close(gomock.Any(), "s-1", started.Add(boost.SessionCap), int64(80)).Return(false, nil)
		sessionRepo.EXPECT().FindByID(gomock.Any(), "s-1").Return(&frozen, nil)
		gate.EXPECT().CreditClosedSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.MiningSession) (*creditservice.CreditResult, error) {
				assert.Equal(t, int64(35), s.RawPoints)
				return &creditservice.CreditResult{Awarded: 35, Status: creditservice.StatusCredited}, nil
			})

		result, err := service.SweepStale(context.Background(), 0, false)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Credited)
		assert.Equal(t, int64(35), result.TotalPointsDelta)
	})

	t.Run("Fetch failure propagates", func(t *testing.T) {
		service, sessionRepo, _ := NewMock(t)
		sessionRepo.EXPECT().FindStale(gomock.Any(), cutoff, DefaultBatchSize).Return(nil, errors.New("db error"))

		_, err := service.SweepStale(context.Background(), 0, false)
		assert.Error(t, err)
	})

	t.Run("Batch size is clamped", func(t *testing.T) {
		service, sessionRepo, _ := NewMock(t)
		sessionRepo.EXPECT().FindStale(gomock.Any(), cutoff, MaxBatchSize).Return(nil, nil)

		result, err := service.SweepStale(context.Background(), 100000, false)
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Processed)
	})
}

func TestBackfillOrphans(t *testing.T) {
	t.Run("Orphaned session credited through the gate", func(t *testing.T) {
		service, sessionRepo, gate := NewMock(t)
		session := domain.MiningSession{ID: "s-9", UserID: 3, RawPoints: 42}

		sessionRepo.EXPECT().FindOrphaned(gomock.Any(), DefaultBatchSize).Return([]domain.MiningSession{session}, nil)
		gate.EXPECT().CreditClosedSession(gomock.Any(), gomock.Any()).Return(&creditservice.CreditResult{Awarded: 42, Status: creditservice.StatusCredited}, nil)

		result, err := service.BackfillOrphans(context.Background(), 0, false)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
		assert.Equal(t, 1, result.Credited)
		assert.Equal(t, int64(42), result.TotalPointsDelta)
	})

	t.Run("Session credited by a racing request counts as processed only", func(t *testing.T) {
		service, sessionRepo, gate := NewMock(t)
		session := domain.MiningSession{ID: "s-9", UserID: 3, RawPoints: 42}

		sessionRepo.EXPECT().FindOrphaned(gomock.Any(), DefaultBatchSize).Return([]domain.MiningSession{session}, nil)
		gate.EXPECT().CreditClosedSession(gomock.Any(), gomock.Any()).Return(&creditservice.CreditResult{Awarded: 0, Status: creditservice.StatusAlreadyCredited}, nil)

		result, err := service.BackfillOrphans(context.Background(), 0, false)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
		assert.Equal(t, 0, result.Credited)
		assert.Equal(t, int64(0), result.TotalPointsDelta)
	})

	t.Run("Dry run lists frozen raw points", func(t *testing.T) {
		service, sessionRepo, _ := NewMock(t)
		sessions := []domain.MiningSession{
			{ID: "s-1", UserID: 1, RawPoints: 10},
			{ID: "s-2", UserID: 2, RawPoints: 20},
		}

		sessionRepo.EXPECT().FindOrphaned(gomock.Any(), DefaultBatchSize).Return(sessions, nil)

		result, err := service.BackfillOrphans(context.Background(), 0, true)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Processed)
		assert.Equal(t, int64(30), result.TotalPointsDelta)
	})
}
