package handlers

import (
	"net/http"

	_ "github.com/arxlab/arxpoints/docs"
	arenahandlers "github.com/arxlab/arxpoints/internal/handlers/arena"
	authhandlers "github.com/arxlab/arxpoints/internal/handlers/auth"
	balancehandlers "github.com/arxlab/arxpoints/internal/handlers/balance"
	credithandlers "github.com/arxlab/arxpoints/internal/handlers/credit"
	ledgeropshandlers "github.com/arxlab/arxpoints/internal/handlers/ledgerops"
	"github.com/arxlab/arxpoints/internal/ratelimit"
	"github.com/arxlab/arxpoints/internal/service"
	"github.com/arxlab/arxpoints/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CreditHandler interface {
	StartSession(w http.ResponseWriter, r *http.Request)
	Credit(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type ArenaHandler interface {
	Stake(w http.ResponseWriter, r *http.Request)
	Settle(w http.ResponseWriter, r *http.Request)
}

type LedgerOpsHandler interface {
	SweepStale(w http.ResponseWriter, r *http.Request)
	SweepOrphans(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	Clamp(w http.ResponseWriter, r *http.Request)
	AuditTrail(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	CreditHandler    CreditHandler
	BalanceHandler   BalanceHandler
	ArenaHandler     ArenaHandler
	LedgerOpsHandler LedgerOpsHandler

	limiter ratelimit.Limiter
}

func New(s *service.Services, limiter ratelimit.Limiter) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		CreditHandler:    credithandlers.New(s.CreditService, s.BalanceService),
		BalanceHandler:   balancehandlers.New(s.BalanceService),
		ArenaHandler:     arenahandlers.New(s.ArenaService),
		LedgerOpsHandler: ledgeropshandlers.New(s.SweepService, s.ReconcileService),
		limiter:          limiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(ratelimit.Middleware(h.limiter, ratelimit.ClassAuth))
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Group(func(r chi.Router) {
				r.Use(ratelimit.Middleware(h.limiter, ratelimit.ClassStandard))
				r.Post("/session/start", h.CreditHandler.StartSession)
				r.Post("/credit", h.CreditHandler.Credit)
				r.Get("/balance", h.BalanceHandler.GetBalance)
			})

			r.Group(func(r chi.Router) {
				r.Use(ratelimit.Middleware(h.limiter, ratelimit.ClassExpensive))
				r.Post("/arena/stake", h.ArenaHandler.Stake)
			})
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(
			auth.AuthMiddleware,
			auth.AdminMiddleware,
			ratelimit.Middleware(h.limiter, ratelimit.ClassBatch),
		)
		r.Post("/sweep/stale", h.LedgerOpsHandler.SweepStale)
		r.Post("/sweep/orphans", h.LedgerOpsHandler.SweepOrphans)
		r.Post("/reconcile", h.LedgerOpsHandler.Reconcile)
		r.Post("/clamp", h.LedgerOpsHandler.Clamp)
		r.Get("/audit/{userID}", h.LedgerOpsHandler.AuditTrail)
		r.Post("/arena/settle", h.ArenaHandler.Settle)
	})

	return r
}
