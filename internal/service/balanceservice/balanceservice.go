package balanceservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/arxlab/arxpoints/internal/domain"
)

//go:generate mockgen -source=balanceservice.go -destination=balanceservice_mock.go -package=balanceservice

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
}

type Service struct {
	balanceRepo BalanceRepo
}

func New(balanceRepo BalanceRepo) *Service {
	return &Service{balanceRepo: balanceRepo}
}

// GetBalance reads the four subtotals and total. A user without a row yet
// gets the zero balance rather than an error, so fresh accounts read as
// zero everywhere.
func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return &domain.Balance{UserID: userID}, nil
	}
	return balance, nil
}

// CreateUserBalance seeds the zero balance row for a fresh account. It
// satisfies the balance-creator seam registration depends on.
func (s *Service) CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.CreateUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}
