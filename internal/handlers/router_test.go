package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterProtectsUserRoutes(t *testing.T) {
	h, mock, tokens := newTestHandlers(t, &mockFetcher{})
	router := h.Router()

	t.Run("rejects missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/usuario/podcast", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects refresh token", func(t *testing.T) {
		token, err := tokens.IssueRefreshToken(1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/usuario/podcast", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("accepts access token", func(t *testing.T) {
		token, err := tokens.IssueAccessToken(1, "Ana", "ana@example.com")
		require.NoError(t, err)

		mock.ExpectQuery("JOIN rel_podcast_usuario").
			WithArgs(int64(1)).
			WillReturnRows(podcastRows(nerdcast))

		req := httptest.NewRequest(http.MethodGet, "/usuario/podcast", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRouterPublicRoutes(t *testing.T) {
	h, mock, _ := newTestHandlers(t, &mockFetcher{})
	router := h.Router()

	mock.ExpectQuery("FROM podcast ORDER BY id").
		WillReturnRows(podcastRows(nerdcast))

	req := httptest.NewRequest(http.MethodGet, "/podcast", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
