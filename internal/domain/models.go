package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// MiningSession is one timed mining attempt. RawPoints is frozen when the
// session closes and never recomputed; CreditedAt is set at most once.
type MiningSession struct {
	ID         string     `db:"id"`
	UserID     int        `db:"user_id"`
	StartedAt  time.Time  `db:"started_at"`
	EndedAt    *time.Time `db:"ended_at"`
	IsActive   bool       `db:"is_active"`
	RawPoints  int64      `db:"raw_points"`
	CreditedAt *time.Time `db:"credited_at"`
}

type ProofKind string

const (
	ProofKindTask     ProofKind = "task"
	ProofKindSocial   ProofKind = "social"
	ProofKindCheckin  ProofKind = "checkin"
	ProofKindReferral ProofKind = "referral"
)

const (
	ProofStatusCompleted = "completed"
	ProofStatusApproved  = "approved"
	ProofStatusPending   = "pending"
)

// ProofEvent is an immutable activity record written by an external
// collaborator. Task rows require status completed and social rows status
// approved before they may be credited; checkin and referral rows are
// unconditional.
type ProofEvent struct {
	ID         int        `db:"id"`
	UserID     int        `db:"user_id"`
	Kind       ProofKind  `db:"kind"`
	Amount     int64      `db:"amount"`
	Status     string     `db:"status"`
	CreditedAt *time.Time `db:"credited_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (p *ProofEvent) Eligible() bool {
	switch p.Kind {
	case ProofKindTask:
		return p.Status == ProofStatusCompleted
	case ProofKindSocial:
		return p.Status == ProofStatusApproved
	default:
		return true
	}
}

type BoostKind string

const (
	BoostKindReferral    BoostKind = "referral"
	BoostKindSocialPost  BoostKind = "social-post"
	BoostKindDailyStreak BoostKind = "daily-streak"
	BoostKindProfileScan BoostKind = "profile-scan"
	BoostKindArena       BoostKind = "arena"
	BoostKindNexus       BoostKind = "nexus"
)

type BoostSource struct {
	ID         int        `db:"id"`
	UserID     int        `db:"user_id"`
	Kind       BoostKind  `db:"kind"`
	Percentage int64      `db:"percentage"`
	ExpiresAt  *time.Time `db:"expires_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

// Active reports whether the boost applies at the given instant. Sources
// without an expiry never lapse.
func (b *BoostSource) Active(asOf time.Time) bool {
	return b.ExpiresAt == nil || b.ExpiresAt.After(asOf)
}

type Category string

const (
	CategoryMining   Category = "mining"
	CategoryTask     Category = "task"
	CategorySocial   Category = "social"
	CategoryReferral Category = "referral"
)

// DeductionOrder is the documented priority in which a debit is spread
// across subtotals when no single category is named.
var DeductionOrder = []Category{CategoryMining, CategoryTask, CategorySocial, CategoryReferral}

// Balance is the materialized per-user aggregate. Total must always equal
// the sum of the four subtotals; every write is atomic relative to the
// proof row it originates from.
type Balance struct {
	ID               int   `db:"id"`
	UserID           int   `db:"user_id"`
	MiningSubtotal   int64 `db:"mining_subtotal"`
	TaskSubtotal     int64 `db:"task_subtotal"`
	SocialSubtotal   int64 `db:"social_subtotal"`
	ReferralSubtotal int64 `db:"referral_subtotal"`
	Total            int64 `db:"total"`
}

func (b *Balance) SumSubtotals() int64 {
	return b.MiningSubtotal + b.TaskSubtotal + b.SocialSubtotal + b.ReferralSubtotal
}

type AuditAction string

const (
	AuditActionRestored AuditAction = "restored"
	AuditActionClamped  AuditAction = "clamped"
	AuditActionNone     AuditAction = "none"
	AuditActionFlagged  AuditAction = "flagged"
	AuditActionSettled  AuditAction = "settled"
)

// AuditLogEntry is append-only. It is the sole mechanism for explaining any
// balance change made outside normal crediting.
type AuditLogEntry struct {
	ID             int         `db:"id"`
	UserID         int         `db:"user_id"`
	Action         AuditAction `db:"action"`
	StoredMining   int64       `db:"stored_mining"`
	StoredTask     int64       `db:"stored_task"`
	StoredSocial   int64       `db:"stored_social"`
	StoredReferral int64       `db:"stored_referral"`
	StoredTotal    int64       `db:"stored_total"`
	ProvenMining   int64       `db:"proven_mining"`
	ProvenTask     int64       `db:"proven_task"`
	ProvenSocial   int64       `db:"proven_social"`
	ProvenReferral int64       `db:"proven_referral"`
	ProvenTotal    int64       `db:"proven_total"`
	MiningDiff     int64       `db:"mining_diff"`
	TaskDiff       int64       `db:"task_diff"`
	SocialDiff     int64       `db:"social_diff"`
	ReferralDiff   int64       `db:"referral_diff"`
	TotalDiff      int64       `db:"total_diff"`
	Actor          string      `db:"actor"`
	Note           string      `db:"note"`
	CreatedAt      time.Time   `db:"created_at"`
}

type Battle struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	WinningSide *string    `db:"winning_side"`
	SettledAt   *time.Time `db:"settled_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

// StakeVote is the debit half of an arena wager; the balance deduction is
// applied when the row is written.
type StakeVote struct {
	ID        int       `db:"id"`
	BattleID  string    `db:"battle_id"`
	UserID    int       `db:"user_id"`
	Side      string    `db:"side"`
	Amount    int64     `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}

// ArenaEarning is the credit half, written once per winning stake at
// settlement.
type ArenaEarning struct {
	ID        int       `db:"id"`
	BattleID  string    `db:"battle_id"`
	UserID    int       `db:"user_id"`
	Amount    int64     `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}
