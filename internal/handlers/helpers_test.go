package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"meus-podcasts/internal/auth"
	"meus-podcasts/internal/feed"
	"meus-podcasts/internal/httperr"
	"meus-podcasts/internal/models"
	"meus-podcasts/internal/test"
)

// mockFetcher is a FeedFetcher returning canned results.
type mockFetcher struct {
	meta *feed.Metadata
	err  error
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (*feed.Metadata, error) {
	return m.meta, m.err
}

func newTestHandlers(t *testing.T, fetcher FeedFetcher) (*Handlers, sqlmock.Sqlmock, *auth.Manager) {
	t.Helper()

	store, mock := test.NewMockDB(t)
	tokens := auth.NewManager("test-secret", time.Hour, 24*time.Hour)
	return New(store, tokens, fetcher, zerolog.Nop()), mock, tokens
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) httperr.Error {
	t.Helper()

	var envelope httperr.Error
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope
}

func podcastRows(podcasts ...models.Podcast) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "titulo", "descricao", "autor", "poster_url", "feed_url"})
	for _, p := range podcasts {
		rows.AddRow(p.ID, p.Titulo, p.Descricao, p.Autor, p.PosterURL, p.FeedURL)
	}
	return rows
}

func userRows(u models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "nome", "email", "senha"}).
		AddRow(u.ID, u.Nome, u.Email, u.Senha)
}
