package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
)

// RateLimitMiddleware keys the limiter on the client IP. It expects
// middleware.RealIP to have already rewritten RemoteAddr.
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			allowed, wait := limiter.Allow(ip)
			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded", "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
