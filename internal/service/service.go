package service

import (
	"github.com/arxlab/arxpoints/internal/config"
	"github.com/arxlab/arxpoints/internal/pg"
	"github.com/arxlab/arxpoints/internal/repo"
	"github.com/arxlab/arxpoints/internal/service/arenaservice"
	"github.com/arxlab/arxpoints/internal/service/authservice"
	"github.com/arxlab/arxpoints/internal/service/balanceservice"
	"github.com/arxlab/arxpoints/internal/service/creditservice"
	"github.com/arxlab/arxpoints/internal/service/reconcileservice"
	"github.com/arxlab/arxpoints/internal/service/sweepservice"
	"github.com/arxlab/arxpoints/pkg/auth"
)

// Services aggregates the business layer of the ledger.
type Services struct {
	AuthService      *authservice.Service
	CreditService    *creditservice.Service
	BalanceService   *balanceservice.Service
	SweepService     *sweepservice.Service
	ReconcileService *reconcileservice.Service
	ArenaService     *arenaservice.Service
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager) *Services {
	creditSvc := creditservice.New(repos.SessionRepo, repos.ProofRepo, repos.BalanceRepo, repos.BoostRepo)
	balanceSvc := balanceservice.New(repos.BalanceRepo)

	return &Services{
		AuthService:      authservice.New(repos.UserRepo, balanceSvc, &auth.HashService{}, &auth.JWTService{}),
		CreditService:    creditSvc,
		BalanceService:   balanceSvc,
		SweepService:     sweepservice.New(repos.SessionRepo, creditSvc),
		ReconcileService: reconcileservice.New(repos.SessionRepo, repos.ProofRepo, repos.ArenaRepo, repos.BalanceRepo, repos.AuditRepo, cfg.ReferralDefaultPoints),
		ArenaService:     arenaservice.New(repos.ArenaRepo, repos.BalanceRepo, repos.AuditRepo, txManager),
	}
}
