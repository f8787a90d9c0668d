// Package ratelimit bounds request rates per caller identity. The backend
// is pluggable: a Redis-backed limiter shares its window across instances,
// the in-process fallback is best-effort for single-instance deployments.
package ratelimit

import (
	"context"
	"time"
)

type Limiter interface {
	Allow(ctx context.Context, key string, perMinute int) (*Result, error)
}

type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
	ResetAfter time.Duration
}

// Class groups routes that share a budget. The key space is segmented per
// class, so burning the standard budget leaves the auth budget intact.
type Class struct {
	Name      string
	PerMinute int
}

var (
	ClassStandard  = Class{Name: "standard", PerMinute: 60}
	ClassExpensive = Class{Name: "expensive", PerMinute: 10}
	ClassAuth      = Class{Name: "auth", PerMinute: 10}
	ClassBatch     = Class{Name: "batch", PerMinute: 5}
)
