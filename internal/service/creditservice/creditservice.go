package creditservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arxlab/arxpoints/internal/boost"
	"github.com/arxlab/arxpoints/internal/domain"
)

//go:generate mockgen -source=creditservice.go -destination=creditservice_mock.go -package=creditservice

type SessionRepo interface {
	FindByID(ctx context.Context, sessionID string) (*domain.MiningSession, error)
	Save(ctx context.Context, session *domain.MiningSession) error
	MarkCredited(ctx context.Context, sessionID string, creditedAt time.Time) (bool, error)
	ClearCredited(ctx context.Context, sessionID string) error
	Close(ctx context.Context, sessionID string, endedAt time.Time, rawPoints int64) (bool, error)
}

type ProofRepo interface {
	FindByID(ctx context.Context, id int) (*domain.ProofEvent, error)
	FindOldestUncredited(ctx context.Context, userID int, kind domain.ProofKind) (*domain.ProofEvent, error)
	MarkCredited(ctx context.Context, id int, creditedAt time.Time) (bool, error)
	ClearCredited(ctx context.Context, id int) error
}

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	AddToCategory(ctx context.Context, userID int, category domain.Category, delta int64) error
}

type BoostRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.BoostSource, error)
}

var (
	ErrValidation      = errors.New("invalid credit request")
	ErrSessionNotFound = errors.New("session not found")
	ErrProofNotFound   = errors.New("proof not found")
	// ErrTransientStore marks a balance write that failed after the CAS was
	// rolled back; the caller may retry.
	ErrTransientStore = errors.New("balance write failed, retry")
)

const (
	StatusCredited        = "credited"
	StatusAlreadyCredited = "already credited"
	StatusNoAward         = "no award"
)

// MaxClaimPerRequest bounds any single credit claim before further logic.
const MaxClaimPerRequest = 500

type CreditResult struct {
	Awarded int64
	Status  string
}

// Service is the crediting gate: it converts proof rows into one-time
// balance credits. The credited_at compare-and-swap is what keeps
// concurrent retries from paying twice.
type Service struct {
	sessionRepo SessionRepo
	proofRepo   ProofRepo
	balanceRepo BalanceRepo
	boostRepo   BoostRepo
	now         func() time.Time
}

func New(sessionRepo SessionRepo, proofRepo ProofRepo, balanceRepo BalanceRepo, boostRepo BoostRepo) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		proofRepo:   proofRepo,
		balanceRepo: balanceRepo,
		boostRepo:   boostRepo,
		now:         time.Now,
	}
}

// WithNow replaces the clock. Tests only.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// StartSession opens a new active mining session for the user.
func (s *Service) StartSession(ctx context.Context, userID int) (*domain.MiningSession, error) {
	session := &domain.MiningSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartedAt: s.now(),
		IsActive:  true,
	}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		zap.L().Error("can't start session", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return session, nil
}

// CreditSession awards a finished mining session at most once. The claimed
// amount is bounded by elapsed time and boosts, the session is closed if
// still active, and the award is applied only after winning the
// credited_at compare-and-swap.
func (s *Service) CreditSession(ctx context.Context, userID int, sessionID string, claimed int64) (*CreditResult, error) {
	if claimed < 0 {
		return nil, fmt.Errorf("%w: negative amount", ErrValidation)
	}
	if claimed > MaxClaimPerRequest {
		claimed = MaxClaimPerRequest
	}

	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	if session.CreditedAt != nil {
		return &CreditResult{Awarded: 0, Status: StatusAlreadyCredited}, nil
	}

	now := s.now()
	maxAllowed, err := s.maxAllowed(ctx, session, now)
	if err != nil {
		return nil, err
	}

	award := claimed
	if award > maxAllowed {
		award = maxAllowed
	}
	if !session.IsActive && session.RawPoints < award {
		// raw points were frozen at close time and stay authoritative
		award = session.RawPoints
	}
	if award <= 0 {
		return &CreditResult{Awarded: 0, Status: StatusNoAward}, nil
	}

	if session.IsActive {
		endedAt := now
		if capAt := session.StartedAt.Add(boost.SessionCap); endedAt.After(capAt) {
			endedAt = capAt
		}
		closed, err := s.sessionRepo.Close(ctx, sessionID, endedAt, award)
		if err != nil {
			return nil, err
		}
		if !closed {
			// a racing call closed the session first; the raw points it
			// froze are authoritative, not the amount computed here
			session, err = s.sessionRepo.FindByID(ctx, sessionID)
			if err != nil {
				return nil, err
			}
			if session == nil {
				return nil, ErrSessionNotFound
			}
			if session.CreditedAt != nil {
				return &CreditResult{Awarded: 0, Status: StatusAlreadyCredited}, nil
			}
			award = session.RawPoints
			if award <= 0 {
				return &CreditResult{Awarded: 0, Status: StatusNoAward}, nil
			}
		}
	}

	return s.casAndCredit(ctx, session.UserID, sessionID, award, now)
}

// CreditClosedSession pays out an already-closed session using its frozen
// raw points. Shared by the orphan backfill.
func (s *Service) CreditClosedSession(ctx context.Context, session *domain.MiningSession) (*CreditResult, error) {
	if session.CreditedAt != nil {
		return &CreditResult{Awarded: 0, Status: StatusAlreadyCredited}, nil
	}
	if session.RawPoints <= 0 {
		return &CreditResult{Awarded: 0, Status: StatusNoAward}, nil
	}
	return s.casAndCredit(ctx, session.UserID, session.ID, session.RawPoints, s.now())
}

// CreditProof pays out one eligible proof row (task or social family),
// named by id or chosen oldest-first, with the same CAS discipline.
func (s *Service) CreditProof(ctx context.Context, userID int, kind domain.ProofKind, proofID *int, claimed int64) (*CreditResult, error) {
	if claimed < 0 {
		return nil, fmt.Errorf("%w: negative amount", ErrValidation)
	}
	if claimed > MaxClaimPerRequest {
		claimed = MaxClaimPerRequest
	}

	var proof *domain.ProofEvent
	var err error
	if proofID != nil {
		proof, err = s.proofRepo.FindByID(ctx, *proofID)
	} else {
		proof, err = s.proofRepo.FindOldestUncredited(ctx, userID, kind)
	}
	if err != nil {
		return nil, err
	}
	if proof == nil || proof.UserID != userID || proof.Kind != kind {
		return nil, ErrProofNotFound
	}
	if !proof.Eligible() {
		return nil, fmt.Errorf("%w: proof not eligible", ErrValidation)
	}
	if proof.CreditedAt != nil {
		return &CreditResult{Awarded: 0, Status: StatusAlreadyCredited}, nil
	}

	award := claimed
	if award > proof.Amount {
		award = proof.Amount
	}
	if award <= 0 {
		return &CreditResult{Awarded: 0, Status: StatusNoAward}, nil
	}

	now := s.now()
	won, err := s.proofRepo.MarkCredited(ctx, proof.ID, now)
	if err != nil {
		return nil, err
	}
	if !won {
		return &CreditResult{Awarded: 0, Status: StatusAlreadyCredited}, nil
	}

	category := categoryForKind(kind)
	if err := s.balanceRepo.AddToCategory(ctx, userID, category, award); err != nil {
		zap.L().Error("balance write failed, rolling back proof credit",
			zap.Int("proofID", proof.ID), zap.Error(err))
		if rbErr := s.proofRepo.ClearCredited(ctx, proof.ID); rbErr != nil {
			zap.L().Error("rollback of proof credit failed", zap.Int("proofID", proof.ID), zap.Error(rbErr))
		}
		return nil, fmt.Errorf("%w: %v", ErrTransientStore, err)
	}

	return &CreditResult{Awarded: award, Status: StatusCredited}, nil
}

// MaxAwardForSession recomputes the time-and-boost bound for a session.
// The sweeper uses it with the same boost aggregation as live crediting.
func (s *Service) MaxAwardForSession(ctx context.Context, session *domain.MiningSession, asOf time.Time) (int64, error) {
	return s.maxAllowed(ctx, session, asOf)
}

func (s *Service) maxAllowed(ctx context.Context, session *domain.MiningSession, asOf time.Time) (int64, error) {
	sources, err := s.boostRepo.FindByUserID(ctx, session.UserID)
	if err != nil {
		return 0, err
	}
	totalBoost := boost.TotalPercent(sources, asOf)

	end := asOf
	if session.EndedAt != nil {
		end = *session.EndedAt
	}
	return boost.MaxAward(end.Sub(session.StartedAt), totalBoost), nil
}

// casAndCredit is steps 4-5 of the gate: win the credited_at CAS, then move
// the award; a failed balance write rolls the CAS back so the session is
// never left paid-but-marked-unpaid or the reverse.
func (s *Service) casAndCredit(ctx context.Context, userID int, sessionID string, award int64, now time.Time) (*CreditResult, error) {
	won, err := s.sessionRepo.MarkCredited(ctx, sessionID, now)
	if err != nil {
		return nil, err
	}
	if !won {
		return &CreditResult{Awarded: 0, Status: StatusAlreadyCredited}, nil
	}

	if err := s.balanceRepo.AddToCategory(ctx, userID, domain.CategoryMining, award); err != nil {
		zap.L().Error("balance write failed, rolling back session credit",
			zap.String("sessionID", sessionID), zap.Error(err))
		if rbErr := s.sessionRepo.ClearCredited(ctx, sessionID); rbErr != nil {
			zap.L().Error("rollback of session credit failed", zap.String("sessionID", sessionID), zap.Error(rbErr))
		}
		return nil, fmt.Errorf("%w: %v", ErrTransientStore, err)
	}

	return &CreditResult{Awarded: award, Status: StatusCredited}, nil
}

func categoryForKind(kind domain.ProofKind) domain.Category {
	switch kind {
	case domain.ProofKindTask:
		return domain.CategoryTask
	case domain.ProofKindReferral:
		return domain.CategoryReferral
	default:
		return domain.CategorySocial
	}
}
