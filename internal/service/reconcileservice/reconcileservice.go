package reconcileservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/arxlab/arxpoints/internal/domain"
)

//go:generate mockgen -source=reconcileservice.go -destination=reconcileservice_mock.go -package=reconcileservice

type SessionRepo interface {
	SumRawPointsByUser(ctx context.Context, userID int) (int64, error)
}

type ProofRepo interface {
	SumTaskProof(ctx context.Context, userID int) (int64, error)
	SumSocialProof(ctx context.Context, userID int) (int64, error)
	SumReferralProof(ctx context.Context, userID int, defaultPoints int64) (int64, error)
}

type ArenaRepo interface {
	SumEarningsByUser(ctx context.Context, userID int) (int64, error)
	SumStakesByUser(ctx context.Context, userID int) (int64, error)
}

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	UpdateSubtotals(ctx context.Context, userID int, balance *domain.Balance) (*domain.Balance, error)
	ListUserIDs(ctx context.Context, limit, offset int) ([]int, error)
}

type AuditRepo interface {
	Insert(ctx context.Context, entry *domain.AuditLogEntry) (*domain.AuditLogEntry, error)
	FindByUserID(ctx context.Context, userID int, limit int) ([]domain.AuditLogEntry, error)
}

// ErrInconclusive marks a user whose proof totals could not be established;
// such users are skipped with an audit note, never guessed at.
var ErrInconclusive = errors.New("could not establish proof totals")

const (
	DefaultBatchSize = 100
	MaxBatchSize     = 1000

	DefaultAuditLimit = 50
	MaxAuditLimit     = 500

	// DefaultClampThreshold is the suspicion ratio: stored mining at or
	// above this multiple of proven mining triggers the clamp.
	DefaultClampThreshold = 1.5

	actorReconcile = "reconcile"
	actorClamp     = "clamp"
)

type BatchResult struct {
	Processed        int                    `json:"processed"`
	Changed          int                    `json:"changed"`
	Flagged          int                    `json:"flagged"`
	Skipped          int                    `json:"skipped"`
	TotalPointsDelta int64                  `json:"totalPointsDelta"`
	DryRun           bool                   `json:"dryRun"`
	Results          []domain.AuditLogEntry `json:"results"`
}

// proofTotals are the per-category sums recomputed from the source tables.
// Net arena movement (earnings minus stakes) is folded into the social
// column so reconciliation never "restores" a stake the user spent.
type proofTotals struct {
	Mining   int64
	Task     int64
	Social   int64
	Referral int64
}

func (p proofTotals) Total() int64 {
	return p.Mining + p.Task + p.Social + p.Referral
}

func (p proofTotals) AllZero() bool {
	return p.Mining == 0 && p.Task == 0 && p.Social == 0 && p.Referral == 0
}

type Service struct {
	sessionRepo     SessionRepo
	proofRepo       ProofRepo
	arenaRepo       ArenaRepo
	balanceRepo     BalanceRepo
	auditRepo       AuditRepo
	referralDefault int64
	now             func() time.Time
}

func New(sessionRepo SessionRepo, proofRepo ProofRepo, arenaRepo ArenaRepo, balanceRepo BalanceRepo, auditRepo AuditRepo, referralDefault int64) *Service {
	return &Service{
		sessionRepo:     sessionRepo,
		proofRepo:       proofRepo,
		arenaRepo:       arenaRepo,
		balanceRepo:     balanceRepo,
		auditRepo:       auditRepo,
		referralDefault: referralDefault,
		now:             time.Now,
	}
}

// WithNow replaces the clock. Tests only.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) computeProof(ctx context.Context, userID int) (proofTotals, error) {
	var p proofTotals
	var err error

	if p.Mining, err = s.sessionRepo.SumRawPointsByUser(ctx, userID); err != nil {
		return p, fmt.Errorf("%w: mining: %v", ErrInconclusive, err)
	}
	if p.Task, err = s.proofRepo.SumTaskProof(ctx, userID); err != nil {
		return p, fmt.Errorf("%w: task: %v", ErrInconclusive, err)
	}
	if p.Social, err = s.proofRepo.SumSocialProof(ctx, userID); err != nil {
		return p, fmt.Errorf("%w: social: %v", ErrInconclusive, err)
	}
	if p.Referral, err = s.proofRepo.SumReferralProof(ctx, userID, s.referralDefault); err != nil {
		return p, fmt.Errorf("%w: referral: %v", ErrInconclusive, err)
	}

	earnings, err := s.arenaRepo.SumEarningsByUser(ctx, userID)
	if err != nil {
		return p, fmt.Errorf("%w: arena earnings: %v", ErrInconclusive, err)
	}
	stakes, err := s.arenaRepo.SumStakesByUser(ctx, userID)
	if err != nil {
		return p, fmt.Errorf("%w: arena stakes: %v", ErrInconclusive, err)
	}
	p.Social += earnings - stakes

	return p, nil
}

// tolerance is the allowed overshoot of a stored total above its proof:
// 10 percent or 100 points, whichever is larger.
func tolerance(provenTotal int64) int64 {
	t := provenTotal / 10
	if t < 100 {
		t = 100
	}
	return t
}

// ReconcileUser recomputes the user's proof totals and restores any points
// the ledger owes. Subtotals are only ever raised here; an overshoot beyond
// tolerance is flagged for clamp review, never silently removed. Every
// invocation writes an audit entry, dry-run included.
func (s *Service) ReconcileUser(ctx context.Context, userID int, dryRun bool) (*domain.AuditLogEntry, error) {
	proof, err := s.computeProof(ctx, userID)
	if err != nil {
		s.auditInconclusive(ctx, userID, actorReconcile, err)
		return nil, err
	}

	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		err := fmt.Errorf("%w: no balance row for user %d", ErrInconclusive, userID)
		s.auditInconclusive(ctx, userID, actorReconcile, err)
		return nil, err
	}

	entry := s.newEntry(userID, actorReconcile, balance, proof)

	switch {
	case proof.Total() > balance.Total:
		entry.Action = domain.AuditActionRestored
		entry.MiningDiff = raiseDiff(balance.MiningSubtotal, proof.Mining)
		entry.TaskDiff = raiseDiff(balance.TaskSubtotal, proof.Task)
		entry.SocialDiff = raiseDiff(balance.SocialSubtotal, proof.Social)
		entry.ReferralDiff = raiseDiff(balance.ReferralSubtotal, proof.Referral)
		entry.TotalDiff = entry.MiningDiff + entry.TaskDiff + entry.SocialDiff + entry.ReferralDiff
	case balance.Total-proof.Total() > tolerance(proof.Total()):
		entry.Action = domain.AuditActionFlagged
		entry.Note = "stored total exceeds proof beyond tolerance"
	default:
		entry.Action = domain.AuditActionNone
	}
	if dryRun {
		entry.Note = appendNote(entry.Note, "dry run")
	}

	// the audit entry always lands before any mutation, so a crash in
	// between is recoverable by re-running
	if _, err := s.auditRepo.Insert(ctx, entry); err != nil {
		return nil, err
	}

	if entry.Action == domain.AuditActionRestored && !dryRun {
		updated := &domain.Balance{
			MiningSubtotal:   balance.MiningSubtotal + entry.MiningDiff,
			TaskSubtotal:     balance.TaskSubtotal + entry.TaskDiff,
			SocialSubtotal:   balance.SocialSubtotal + entry.SocialDiff,
			ReferralSubtotal: balance.ReferralSubtotal + entry.ReferralDiff,
		}
		updated.Total = updated.SumSubtotals()
		if _, err := s.balanceRepo.UpdateSubtotals(ctx, userID, updated); err != nil {
			return nil, err
		}
		zap.L().Info("balance restored",
			zap.Int("userID", userID),
			zap.Int64("delta", entry.TotalDiff))
	}

	return entry, nil
}

// ClampUser lowers subtotals that exceed their provable maximum. Users with
// zero proof in every category are assumed to be manually seeded and are
// skipped. The audit entry showing the negative deltas is written before
// the balance is touched.
func (s *Service) ClampUser(ctx context.Context, userID int, threshold float64, dryRun bool) (*domain.AuditLogEntry, error) {
	if threshold <= 0 {
		threshold = DefaultClampThreshold
	}

	proof, err := s.computeProof(ctx, userID)
	if err != nil {
		s.auditInconclusive(ctx, userID, actorClamp, err)
		return nil, err
	}

	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		err := fmt.Errorf("%w: no balance row for user %d", ErrInconclusive, userID)
		s.auditInconclusive(ctx, userID, actorClamp, err)
		return nil, err
	}

	entry := s.newEntry(userID, actorClamp, balance, proof)

	suspicious := balance.MiningSubtotal > proof.Mining &&
		float64(balance.MiningSubtotal) >= threshold*float64(proof.Mining)

	switch {
	case proof.AllZero():
		entry.Action = domain.AuditActionNone
		entry.Note = "no proof in any category, assumed seeded, skipped"
	case !suspicious:
		entry.Action = domain.AuditActionNone
	default:
		entry.Action = domain.AuditActionClamped
		entry.MiningDiff = lowerDiff(balance.MiningSubtotal, proof.Mining)
		entry.TaskDiff = lowerDiff(balance.TaskSubtotal, proof.Task)
		entry.SocialDiff = lowerDiff(balance.SocialSubtotal, proof.Social)
		entry.ReferralDiff = lowerDiff(balance.ReferralSubtotal, proof.Referral)
		entry.TotalDiff = entry.MiningDiff + entry.TaskDiff + entry.SocialDiff + entry.ReferralDiff
	}
	if dryRun {
		entry.Note = appendNote(entry.Note, "dry run")
	}

	if _, err := s.auditRepo.Insert(ctx, entry); err != nil {
		return nil, err
	}

	if entry.Action == domain.AuditActionClamped && !dryRun {
		updated := &domain.Balance{
			MiningSubtotal:   balance.MiningSubtotal + entry.MiningDiff,
			TaskSubtotal:     balance.TaskSubtotal + entry.TaskDiff,
			SocialSubtotal:   balance.SocialSubtotal + entry.SocialDiff,
			ReferralSubtotal: balance.ReferralSubtotal + entry.ReferralDiff,
		}
		updated.Total = updated.SumSubtotals()
		if _, err := s.balanceRepo.UpdateSubtotals(ctx, userID, updated); err != nil {
			return nil, err
		}
		zap.L().Warn("balance clamped",
			zap.Int("userID", userID),
			zap.Int64("delta", entry.TotalDiff))
	}

	return entry, nil
}

// AuditTrail returns the user's most recent audit entries, newest first.
// Every restore, clamp, flag and settlement leaves one, so this is the
// full mutation history of the balance.
func (s *Service) AuditTrail(ctx context.Context, userID, limit int) ([]domain.AuditLogEntry, error) {
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	if limit > MaxAuditLimit {
		limit = MaxAuditLimit
	}
	entries, err := s.auditRepo.FindByUserID(ctx, userID, limit)
	if err != nil {
		zap.L().Error("can't read audit trail", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// ReconcileBatch pages through balance rows and reconciles each user
// independently. A user whose proof cannot be established is skipped, not
// guessed at.
func (s *Service) ReconcileBatch(ctx context.Context, batchSize, offset int, dryRun bool) (*BatchResult, error) {
	return s.runBatch(ctx, batchSize, offset, dryRun, func(ctx context.Context, userID int) (*domain.AuditLogEntry, error) {
		return s.ReconcileUser(ctx, userID, dryRun)
	})
}

func (s *Service) ClampBatch(ctx context.Context, batchSize, offset int, threshold float64, dryRun bool) (*BatchResult, error) {
	return s.runBatch(ctx, batchSize, offset, dryRun, func(ctx context.Context, userID int) (*domain.AuditLogEntry, error) {
		return s.ClampUser(ctx, userID, threshold, dryRun)
	})
}

func (s *Service) runBatch(ctx context.Context, batchSize, offset int, dryRun bool, fn func(ctx context.Context, userID int) (*domain.AuditLogEntry, error)) (*BatchResult, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if batchSize > MaxBatchSize {
		batchSize = MaxBatchSize
	}
	if offset < 0 {
		offset = 0
	}

	userIDs, err := s.balanceRepo.ListUserIDs(ctx, batchSize, offset)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{DryRun: dryRun}
	for _, userID := range userIDs {
		entry, err := fn(ctx, userID)
		if err != nil {
			zap.L().Error("skipping user in batch", zap.Int("userID", userID), zap.Error(err))
			result.Skipped++
			continue
		}
		result.Processed++
		switch entry.Action {
		case domain.AuditActionRestored, domain.AuditActionClamped:
			result.Changed++
			result.TotalPointsDelta += entry.TotalDiff
		case domain.AuditActionFlagged:
			result.Flagged++
		}
		result.Results = append(result.Results, *entry)
	}
	return result, nil
}

func (s *Service) newEntry(userID int, actor string, balance *domain.Balance, proof proofTotals) *domain.AuditLogEntry {
	return &domain.AuditLogEntry{
		UserID:         userID,
		StoredMining:   balance.MiningSubtotal,
		StoredTask:     balance.TaskSubtotal,
		StoredSocial:   balance.SocialSubtotal,
		StoredReferral: balance.ReferralSubtotal,
		StoredTotal:    balance.Total,
		ProvenMining:   proof.Mining,
		ProvenTask:     proof.Task,
		ProvenSocial:   proof.Social,
		ProvenReferral: proof.Referral,
		ProvenTotal:    proof.Total(),
		Actor:          actor,
		CreatedAt:      s.now(),
	}
}

func (s *Service) auditInconclusive(ctx context.Context, userID int, actor string, cause error) {
	entry := &domain.AuditLogEntry{
		UserID:    userID,
		Action:    domain.AuditActionNone,
		Actor:     actor,
		Note:      "inconclusive: " + cause.Error(),
		CreatedAt: s.now(),
	}
	if _, err := s.auditRepo.Insert(ctx, entry); err != nil {
		zap.L().Error("can't write inconclusive audit note", zap.Int("userID", userID), zap.Error(err))
	}
}

// raiseDiff never lowers: the restore path only moves a subtotal up toward
// its proof.
func raiseDiff(stored, proven int64) int64 {
	if proven > stored {
		return proven - stored
	}
	return 0
}

// lowerDiff never raises: the clamp only moves a subtotal down toward its
// proof. A negative proof (net arena stakes exceeding social proof) targets
// zero, so balance columns stay non-negative.
func lowerDiff(stored, proven int64) int64 {
	if proven < 0 {
		proven = 0
	}
	if stored > proven {
		return proven - stored
	}
	return 0
}

func appendNote(note, extra string) string {
	if note == "" {
		return extra
	}
	return note + "; " + extra
}
