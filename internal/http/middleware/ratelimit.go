package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/mareksuchodolski12-hash/marek-it-website/internal/ratelimit"
	"github.com/mareksuchodolski12-hash/marek-it-website/pkg/logging"
)

// MsgTooFast is the throttle response rendered by the form controller.
const MsgTooFast = "Za szybko. Spróbuj za chwilę."

// RateLimit returns middleware gating requests through the limiter, keyed by
// client IP. Rejections get 429 with the standard envelope. Limiter errors
// (e.g. Redis unreachable) fail open: throttling is defensive, not
// security-critical, so an unavailable limiter must not take the form down.
func RateLimit(limiter ratelimit.Limiter, logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientIP(r)
			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Error("rate limiter unavailable, admitting request", "error", err, "client", key)
				allowed = true
			}
			if !allowed {
				logger.Info("request throttled", "client", key, "path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(struct {
					OK    bool   `json:"ok"`
					Error string `json:"error"`
				}{false, MsgTooFast})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
