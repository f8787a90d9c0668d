package sweepservice

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arxlab/arxpoints/internal/boost"
	"github.com/arxlab/arxpoints/internal/domain"
	"github.com/arxlab/arxpoints/internal/service/creditservice"
)

//go:generate mockgen -source=sweepservice.go -destination=sweepservice_mock.go -package=sweepservice

type SessionRepo interface {
	FindByID(ctx context.Context, sessionID string) (*domain.MiningSession, error)
	FindStale(ctx context.Context, startedBefore time.Time, limit int) ([]domain.MiningSession, error)
	FindOrphaned(ctx context.Context, limit int) ([]domain.MiningSession, error)
	Close(ctx context.Context, sessionID string, endedAt time.Time, rawPoints int64) (bool, error)
}

// Gate is the crediting gate surface the sweepers share with live traffic,
// so a sweep and a client retry racing on one session cannot both pay.
type Gate interface {
	MaxAwardForSession(ctx context.Context, session *domain.MiningSession, asOf time.Time) (int64, error)
	CreditClosedSession(ctx context.Context, session *domain.MiningSession) (*creditservice.CreditResult, error)
}

const (
	DefaultBatchSize = 100
	MaxBatchSize     = 1000
)

// sweeping guards against the same session being processed by two
// overlapping sweep runs in this process.
var sweeping sync.Map

type Item struct {
	SessionID string `json:"session_id"`
	UserID    int    `json:"user_id"`
	Awarded   int64  `json:"awarded"`
	Status    string `json:"status"`
}

type Result struct {
	Processed        int    `json:"processed"`
	Credited         int    `json:"credited"`
	TotalPointsDelta int64  `json:"totalPointsDelta"`
	DryRun           bool   `json:"dryRun"`
	Results          []Item `json:"results"`
}

type Service struct {
	sessionRepo SessionRepo
	gate        Gate
	workerPool  WorkerPoolI
	now         func() time.Time
}

func New(sessionRepo SessionRepo, gate Gate) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		gate:        gate,
		workerPool:  NewWorkerPool(10),
		now:         time.Now,
	}
}

// WithNow replaces the clock. Tests only.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// SweepStale closes sessions whose owner never reported completion and
// credits them through the shared gate. In dry-run mode it reports the
// would-be awards without touching any row.
func (s *Service) SweepStale(ctx context.Context, batchSize int, dryRun bool) (*Result, error) {
	batchSize = clampBatch(batchSize)
	now := s.now()

	sessions, err := s.sessionRepo.FindStale(ctx, now.Add(-boost.SessionCap), batchSize)
	if err != nil {
		zap.L().Error("failed to fetch stale sessions", zap.Error(err))
		return nil, err
	}

	result := &Result{DryRun: dryRun}
	if dryRun {
		for i := range sessions {
			session := &sessions[i]
			award, err := s.gate.MaxAwardForSession(ctx, session, now)
			if err != nil {
				return nil, err
			}
			result.Processed++
			result.TotalPointsDelta += award
			result.Results = append(result.Results, Item{SessionID: session.ID, UserID: session.UserID, Awarded: award, Status: "would credit"})
		}
		return result, nil
	}

	var mu sync.Mutex
	var g errgroup.Group
	for i := range sessions {
		session := sessions[i]

		if _, loaded := sweeping.LoadOrStore(session.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweeping.Delete(session.ID)
				item, err := s.sweepOne(ctx, session, now)
				if err != nil {
					return err
				}
				mu.Lock()
				result.Processed++
				if item.Status == creditservice.StatusCredited {
					result.Credited++
					result.TotalPointsDelta += item.Awarded
				}
				result.Results = append(result.Results, item)
				mu.Unlock()
				return nil
			})
			if err != nil {
				sweeping.Delete(session.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error sweeping stale sessions", zap.Error(err))
		return result, err
	}
	return result, nil
}

func (s *Service) sweepOne(ctx context.Context, session domain.MiningSession, now time.Time) (Item, error) {
	award, err := s.gate.MaxAwardForSession(ctx, &session, now)
	if err != nil {
		return Item{}, err
	}

	endedAt := session.StartedAt.Add(boost.SessionCap)
	closed, err := s.sessionRepo.Close(ctx, session.ID, endedAt, award)
	if err != nil {
		return Item{}, err
	}
	if !closed {
		// a live credit closed the session between FindStale and here;
		// its frozen raw points win over the sweep's computation
		fresh, err := s.sessionRepo.FindByID(ctx, session.ID)
		if err != nil {
			return Item{}, err
		}
		if fresh == nil {
			return Item{SessionID: session.ID, UserID: session.UserID, Status: "gone"}, nil
		}
		session = *fresh
	} else {
		session.IsActive = false
		session.EndedAt = &endedAt
		session.RawPoints = award
	}

	credit, err := s.gate.CreditClosedSession(ctx, &session)
	if err != nil {
		return Item{}, err
	}
	return Item{SessionID: session.ID, UserID: session.UserID, Awarded: credit.Awarded, Status: credit.Status}, nil
}

// BackfillOrphans credits sessions that were closed with points but never
// paid, for example when a crediting attempt crashed between the CAS
// rollback and the retry. The gate's CAS makes re-runs and races with live
// traffic safe.
func (s *Service) BackfillOrphans(ctx context.Context, batchSize int, dryRun bool) (*Result, error) {
	batchSize = clampBatch(batchSize)

	sessions, err := s.sessionRepo.FindOrphaned(ctx, batchSize)
	if err != nil {
		zap.L().Error("failed to fetch orphaned sessions", zap.Error(err))
		return nil, err
	}

	result := &Result{DryRun: dryRun}
	if dryRun {
		for i := range sessions {
			session := &sessions[i]
			result.Processed++
			result.TotalPointsDelta += session.RawPoints
			result.Results = append(result.Results, Item{SessionID: session.ID, UserID: session.UserID, Awarded: session.RawPoints, Status: "would credit"})
		}
		return result, nil
	}

	var mu sync.Mutex
	var g errgroup.Group
	for i := range sessions {
		session := sessions[i]

		if _, loaded := sweeping.LoadOrStore(session.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweeping.Delete(session.ID)
				credit, err := s.gate.CreditClosedSession(ctx, &session)
				if err != nil {
					return err
				}
				mu.Lock()
				result.Processed++
				if credit.Status == creditservice.StatusCredited {
					result.Credited++
					result.TotalPointsDelta += credit.Awarded
				}
				result.Results = append(result.Results, Item{SessionID: session.ID, UserID: session.UserID, Awarded: credit.Awarded, Status: credit.Status})
				mu.Unlock()
				return nil
			})
			if err != nil {
				sweeping.Delete(session.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error backfilling orphaned sessions", zap.Error(err))
		return result, err
	}
	return result, nil
}

func clampBatch(batchSize int) int {
	if batchSize <= 0 {
		return DefaultBatchSize
	}
	if batchSize > MaxBatchSize {
		return MaxBatchSize
	}
	return batchSize
}
