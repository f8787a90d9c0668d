// Package boost computes the effective mining multiplier from a user's boost
// sources. It is the single implementation shared by the crediting gate, the
// sweepers and reconciliation; the functions are pure and take time as an
// explicit argument.
package boost

import (
	"time"

	"github.com/arxlab/arxpoints/internal/domain"
)

const (
	ReferralCapPercent = 50
	StreakCapPercent   = 30
	TotalCapPercent    = 500

	BaseHourlyRate = 10
	MaxHourlyRate  = 60

	SessionCap      = 8 * time.Hour
	MaxSessionAward = 480 // 8h at the 60/hr ceiling
)

// TotalPercent combines a user's boost sources into one percentage.
// Referral and streak boosts are capped independently; arena and nexus
// grants are summed over the ones still active at asOf. The aggregate is
// hard-capped at 500.
func TotalPercent(sources []domain.BoostSource, asOf time.Time) int64 {
	var referral, social, streak, scan, arena, nexus int64
	for _, s := range sources {
		switch s.Kind {
		case domain.BoostKindReferral:
			referral += s.Percentage
		case domain.BoostKindSocialPost:
			social += s.Percentage
		case domain.BoostKindDailyStreak:
			streak += s.Percentage
		case domain.BoostKindProfileScan:
			if s.Active(asOf) {
				scan += s.Percentage
			}
		case domain.BoostKindArena:
			if s.Active(asOf) {
				arena += s.Percentage
			}
		case domain.BoostKindNexus:
			if s.Active(asOf) {
				nexus += s.Percentage
			}
		}
	}

	total := min64(referral, ReferralCapPercent) + social + min64(streak, StreakCapPercent) + scan + arena + nexus
	return min64(total, TotalCapPercent)
}

// HourlyRate converts a total boost percentage into points per hour,
// capped at 60.
func HourlyRate(totalPercent int64) float64 {
	rate := BaseHourlyRate * (1 + float64(totalPercent)/100)
	if rate > MaxHourlyRate {
		return MaxHourlyRate
	}
	return rate
}

// MaxAward is the upper bound on points for a session of the given length:
// floor(elapsed hours x hourly rate), never above 480. Elapsed time beyond
// the 8-hour session cap does not accrue.
func MaxAward(elapsed time.Duration, totalPercent int64) int64 {
	if elapsed <= 0 {
		return 0
	}
	if elapsed > SessionCap {
		elapsed = SessionCap
	}
	award := int64(elapsed.Hours() * HourlyRate(totalPercent))
	return min64(award, MaxSessionAward)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
