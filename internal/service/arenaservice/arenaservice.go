package arenaservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/arxlab/arxpoints/internal/domain"
	"github.com/arxlab/arxpoints/internal/pg"
)

//go:generate mockgen -source=arenaservice.go -destination=arenaservice_mock.go -package=arenaservice

type ArenaRepo interface {
	FindBattle(ctx context.Context, battleID string) (*domain.Battle, error)
	MarkSettled(ctx context.Context, battleID, winningSide string, settledAt time.Time) (bool, error)
	ClearSettled(ctx context.Context, battleID string) error
	ListStakes(ctx context.Context, battleID string) ([]domain.StakeVote, error)
	InsertStake(ctx context.Context, stake *domain.StakeVote) (bool, error)
	InsertEarning(ctx context.Context, earning *domain.ArenaEarning) error
}

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	AddToCategory(ctx context.Context, userID int, category domain.Category, delta int64) error
}

type AuditRepo interface {
	Insert(ctx context.Context, entry *domain.AuditLogEntry) (*domain.AuditLogEntry, error)
}

var (
	ErrValidation          = errors.New("invalid stake request")
	ErrBattleNotFound      = errors.New("battle not found")
	ErrBattleClosed        = errors.New("battle already settled")
	ErrInsufficientBalance = errors.New("insufficient balance for stake")
	ErrTransientStore      = errors.New("transient storage failure")
)

const (
	StatusSettled        = "settled"
	StatusAlreadySettled = "already settled"

	actorArena = "arena"
)

type Payout struct {
	UserID  int   `json:"userID"`
	StakeID int   `json:"stakeID"`
	Amount  int64 `json:"amount"`
}

type SettleResult struct {
	BattleID    string   `json:"battleID"`
	WinningSide string   `json:"winningSide"`
	TotalPool   int64    `json:"totalPool"`
	WinningPool int64    `json:"winningPool"`
	Multiplier  float64  `json:"multiplier"`
	Payouts     []Payout `json:"payouts"`
	Status      string   `json:"status"`
}

type Service struct {
	arenaRepo   ArenaRepo
	balanceRepo BalanceRepo
	auditRepo   AuditRepo
	txManager   pg.TXManager
	now         func() time.Time
}

func New(arenaRepo ArenaRepo, balanceRepo BalanceRepo, auditRepo AuditRepo, txManager pg.TXManager) *Service {
	return &Service{
		arenaRepo:   arenaRepo,
		balanceRepo: balanceRepo,
		auditRepo:   auditRepo,
		txManager:   txManager,
		now:         time.Now,
	}
}

// WithNow replaces the clock. Tests only.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// PlaceStake debits the stake from the user's balance and records the vote
// in one transaction. The debit drains subtotals in a fixed category order
// so the four columns always stay non-negative.
func (s *Service) PlaceStake(ctx context.Context, userID int, battleID, side string, amount int64) (*domain.StakeVote, error) {
	if battleID == "" || side == "" {
		return nil, fmt.Errorf("%w: battle id and side are required", ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: stake amount must be positive", ErrValidation)
	}

	battle, err := s.arenaRepo.FindBattle(ctx, battleID)
	if err != nil {
		return nil, err
	}
	if battle == nil {
		return nil, ErrBattleNotFound
	}
	if battle.SettledAt != nil {
		return nil, ErrBattleClosed
	}

	stake := &domain.StakeVote{
		BattleID:  battleID,
		UserID:    userID,
		Side:      side,
		Amount:    amount,
		CreatedAt: s.now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil || balance.Total < amount {
			return ErrInsufficientBalance
		}

		remaining := amount
		for _, category := range domain.DeductionOrder {
			if remaining == 0 {
				break
			}
			available := subtotalFor(balance, category)
			if available == 0 {
				continue
			}
			take := remaining
			if take > available {
				take = available
			}
			if err := s.balanceRepo.AddToCategory(ctx, userID, category, -take); err != nil {
				return err
			}
			remaining -= take
		}
		// the insert re-checks settled_at, so a battle settled after the
		// FindBattle read above rolls the whole debit back
		inserted, err := s.arenaRepo.InsertStake(ctx, stake)
		if err != nil {
			return err
		}
		if !inserted {
			return ErrBattleClosed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("stake placed",
		zap.Int("userID", userID),
		zap.String("battleID", battleID),
		zap.Int64("amount", amount))
	return stake, nil
}

// Settle closes a battle and pays the whole pool out to the winning side,
// proportionally to stake size. The settled mark is a compare-and-swap, so
// a repeated call for the same battle pays nothing twice. The stake set is
// read only after the mark is won: once settled_at is set no new stake can
// land, so the snapshot is the full pool and the payouts stay zero-sum.
// Payouts are floor-divided; the leftover goes to the largest winning stake.
func (s *Service) Settle(ctx context.Context, battleID, winningSide string) (*SettleResult, error) {
	if battleID == "" || winningSide == "" {
		return nil, fmt.Errorf("%w: battle id and winning side are required", ErrValidation)
	}

	battle, err := s.arenaRepo.FindBattle(ctx, battleID)
	if err != nil {
		return nil, err
	}
	if battle == nil {
		return nil, ErrBattleNotFound
	}
	if battle.SettledAt != nil {
		return &SettleResult{BattleID: battleID, WinningSide: deref(battle.WinningSide), Status: StatusAlreadySettled}, nil
	}

	won, err := s.arenaRepo.MarkSettled(ctx, battleID, winningSide, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransientStore, err)
	}
	if !won {
		return &SettleResult{BattleID: battleID, WinningSide: winningSide, Status: StatusAlreadySettled}, nil
	}

	stakes, err := s.arenaRepo.ListStakes(ctx, battleID)
	if err != nil {
		if clearErr := s.arenaRepo.ClearSettled(ctx, battleID); clearErr != nil {
			zap.L().Error("failed to roll back settled mark",
				zap.String("battleID", battleID), zap.Error(clearErr))
		}
		return nil, fmt.Errorf("%w: %v", ErrTransientStore, err)
	}

	result := &SettleResult{BattleID: battleID, WinningSide: winningSide, Status: StatusSettled}
	for _, st := range stakes {
		result.TotalPool += st.Amount
		if st.Side == winningSide {
			result.WinningPool += st.Amount
		}
	}

	if result.WinningPool == 0 {
		// nobody backed the winning side; the pool is forfeited
		zap.L().Info("battle settled with no winners",
			zap.String("battleID", battleID),
			zap.Int64("forfeitedPool", result.TotalPool))
		return result, nil
	}

	result.Multiplier = float64(result.TotalPool) / float64(result.WinningPool)
	result.Payouts = computePayouts(stakes, winningSide, result.TotalPool, result.WinningPool)

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, payout := range result.Payouts {
			earning := &domain.ArenaEarning{
				BattleID:  battleID,
				UserID:    payout.UserID,
				Amount:    payout.Amount,
				CreatedAt: s.now(),
			}
			if err := s.arenaRepo.InsertEarning(ctx, earning); err != nil {
				return err
			}
			if err := s.balanceRepo.AddToCategory(ctx, payout.UserID, domain.CategorySocial, payout.Amount); err != nil {
				return err
			}
			entry := &domain.AuditLogEntry{
				UserID:     payout.UserID,
				Action:     domain.AuditActionSettled,
				SocialDiff: payout.Amount,
				TotalDiff:  payout.Amount,
				Actor:      actorArena,
				Note:       "battle " + battleID,
				CreatedAt:  s.now(),
			}
			if _, err := s.auditRepo.Insert(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if clearErr := s.arenaRepo.ClearSettled(ctx, battleID); clearErr != nil {
			zap.L().Error("failed to roll back settled mark",
				zap.String("battleID", battleID), zap.Error(clearErr))
		}
		return nil, fmt.Errorf("%w: %v", ErrTransientStore, err)
	}

	zap.L().Info("battle settled",
		zap.String("battleID", battleID),
		zap.String("winningSide", winningSide),
		zap.Int64("totalPool", result.TotalPool),
		zap.Int("payouts", len(result.Payouts)))
	return result, nil
}

// computePayouts floor-divides the pool across winning stakes and gives the
// remainder to the largest one, so the payouts always sum to the pool
// exactly.
func computePayouts(stakes []domain.StakeVote, winningSide string, totalPool, winningPool int64) []Payout {
	var payouts []Payout
	var paid, largestStake int64
	largest := -1
	for _, st := range stakes {
		if st.Side != winningSide {
			continue
		}
		amount := st.Amount * totalPool / winningPool
		payouts = append(payouts, Payout{UserID: st.UserID, StakeID: st.ID, Amount: amount})
		paid += amount
		if st.Amount > largestStake {
			largestStake = st.Amount
			largest = len(payouts) - 1
		}
	}
	if remainder := totalPool - paid; remainder > 0 && largest >= 0 {
		payouts[largest].Amount += remainder
	}
	return payouts
}

func subtotalFor(balance *domain.Balance, category domain.Category) int64 {
	switch category {
	case domain.CategoryMining:
		return balance.MiningSubtotal
	case domain.CategoryTask:
		return balance.TaskSubtotal
	case domain.CategorySocial:
		return balance.SocialSubtotal
	case domain.CategoryReferral:
		return balance.ReferralSubtotal
	}
	return 0
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
