package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/arxlab/arxpoints/pkg/auth"
	"github.com/arxlab/arxpoints/pkg/utils"
)

// Middleware enforces the class budget per caller. Authenticated requests
// are keyed by user id, anonymous ones by client IP. A limiter backend
// failure fails open.
func Middleware(limiter Limiter, class Class) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rl:" + class.Name + ":" + identity(r)

			res, err := limiter.Allow(r.Context(), key, class.PerMinute)
			if err != nil {
				zap.L().Error("rate limiter unavailable", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%.0f", res.ResetAfter.Seconds()))

			if !res.Allowed {
				retryAfter := int(res.RetryAfter.Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				utils.RespondWithError(w, http.StatusTooManyRequests, "Too Many Requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func identity(r *http.Request) string {
	if userID, ok := r.Context().Value(auth.UserIDKey).(int); ok && userID != 0 {
		return "user:" + strconv.Itoa(userID)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + host
}
