package rest

import (
	"net/http"

	"go.uber.org/zap"
)

const rateLimitMessage = "Demasiadas solicitudes, intente más tarde"

// rateLimit rejects callers over their fixed window quota before the request
// body is even read. A limiter outage fails open: throttling is protection
// for the backends, not a correctness guarantee.
func (a *Adapter) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		allowed, err := a.limiter.Allow(r.Context(), clientIP(r))
		if err != nil {
			a.logger.Warn("rate limiter unavailable", zap.Error(err))
			allowed = true
		}

		if !allowed {
			renderJSONError(w, http.StatusTooManyRequests, rateLimitMessage)
			return
		}

		next.ServeHTTP(w, r)
	})
}
