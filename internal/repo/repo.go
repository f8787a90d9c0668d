package repo

import (
	"github.com/arxlab/arxpoints/internal/pg"
	arenarepo "github.com/arxlab/arxpoints/internal/repo/arena-repo"
	auditrepo "github.com/arxlab/arxpoints/internal/repo/audit-repo"
	balancerepo "github.com/arxlab/arxpoints/internal/repo/balance-repo"
	boostrepo "github.com/arxlab/arxpoints/internal/repo/boost-repo"
	proofrepo "github.com/arxlab/arxpoints/internal/repo/proof-repo"
	sessionrepo "github.com/arxlab/arxpoints/internal/repo/session-repo"
	userrepo "github.com/arxlab/arxpoints/internal/repo/user-repo"
)

// Repositories aggregates the data-access layer for the ledger.
type Repositories struct {
	UserRepo    *userrepo.Repository
	SessionRepo *sessionrepo.Repository
	ProofRepo   *proofrepo.Repository
	BalanceRepo *balancerepo.Repository
	BoostRepo   *boostrepo.Repository
	AuditRepo   *auditrepo.Repository
	ArenaRepo   *arenarepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		SessionRepo: sessionrepo.New(conn, txManager),
		ProofRepo:   proofrepo.New(conn),
		BalanceRepo: balancerepo.New(conn, txManager),
		BoostRepo:   boostrepo.New(conn),
		AuditRepo:   auditrepo.New(conn),
		ArenaRepo:   arenarepo.New(conn, txManager),
	}
}
