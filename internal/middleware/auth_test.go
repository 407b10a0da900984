package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meus-podcasts/internal/auth"
	"meus-podcasts/internal/httperr"
)

func authGuard(tokens *auth.Manager, next http.Handler) http.Handler {
	return Auth(tokens, zerolog.Nop())(next)
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewManager("test-secret", time.Hour, 24*time.Hour)

	t.Run("valid access token", func(t *testing.T) {
		token, err := tokens.IssueAccessToken(42, "Ana", "ana@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			usuarioID, ok := UserID(r.Context())
			assert.True(t, ok)
			assert.Equal(t, int64(42), usuarioID)
			w.WriteHeader(http.StatusOK)
		})

		authGuard(tokens, next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("no authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		authGuard(tokens, nil).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		var envelope httperr.Error
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		assert.Equal(t, "Unauthorized", envelope.Name)
		assert.Equal(t, http.StatusUnauthorized, envelope.StatusCode)
	})

	t.Run("invalid header format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "tma sometoken")
		rr := httptest.NewRecorder()

		authGuard(tokens, nil).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		token, err := tokens.IssueRefreshToken(42)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		authGuard(tokens, nil).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := auth.NewManager("test-secret", -time.Minute, -time.Minute)
		token, err := expired.IssueAccessToken(42, "Ana", "ana@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		authGuard(tokens, nil).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
