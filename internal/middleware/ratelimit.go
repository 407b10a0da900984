package middleware

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"meus-podcasts/internal/httperr"
)

// RateLimiter holds a token-bucket limiter per authenticated user.
type RateLimiter struct {
	limiters map[int64]*rate.Limiter
	mu       sync.Mutex
	// rate is the number of events per second.
	rate rate.Limit
	// burst is the burst size.
	burst int
}

// NewRateLimiter creates a per-user rate limiter.
func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[int64]*rate.Limiter),
		rate:     r,
		burst:    b,
	}
}

// Middleware enforces the limit. It must run after Auth, which puts the
// user id in the context.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		usuarioID, ok := UserID(r.Context())
		if !ok {
			httperr.Write(w, httperr.Unauthorized("Token de acesso não informado."))
			return
		}

		rl.mu.Lock()
		limiter, exists := rl.limiters[usuarioID]
		if !exists {
			limiter = rate.NewLimiter(rl.rate, rl.burst)
			rl.limiters[usuarioID] = limiter
		}
		rl.mu.Unlock()

		if !limiter.Allow() {
			httperr.Write(w, httperr.New(http.StatusTooManyRequests, "Limite de requisições excedido."))
			return
		}

		next.ServeHTTP(w, r)
	})
}
