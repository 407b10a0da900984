package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"meus-podcasts/internal/auth"
	"meus-podcasts/internal/httperr"
)

type contextKey string

// userIDContextKey is the key for the authenticated user id in the
// request context.
const userIDContextKey = contextKey("usuario_id")

// Auth validates the Bearer access token and stores the authenticated
// user id in the request context. Refresh tokens are rejected here.
func Auth(tokens *auth.Manager, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httperr.Write(w, httperr.Unauthorized("Token de acesso não informado."))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				httperr.Write(w, httperr.Unauthorized("Cabeçalho de autorização deve estar no formato 'Bearer <token>'."))
				return
			}

			usuarioID, err := tokens.VerifyToken(parts[1], auth.TokenTypeAccess)
			if err != nil {
				logger.Warn().Err(err).Msg("rejected access token")
				httperr.Write(w, httperr.Unauthorized("Token de acesso inválido ou expirado."))
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, usuarioID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID returns a context carrying the authenticated user id. Used
// by tests to bypass the middleware.
func WithUserID(ctx context.Context, usuarioID int64) context.Context {
	return context.WithValue(ctx, userIDContextKey, usuarioID)
}

// UserID extracts the authenticated user id from the context.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDContextKey).(int64)
	return id, ok
}
