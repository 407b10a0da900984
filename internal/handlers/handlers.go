package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"meus-podcasts/internal/auth"
	"meus-podcasts/internal/db"
	"meus-podcasts/internal/feed"
	"meus-podcasts/internal/httperr"
	"meus-podcasts/internal/middleware"
)

// Requests per second and burst allowed per user on the authenticated
// routes.
const (
	userRateLimit = rate.Limit(5)
	userRateBurst = 10
)

// FeedFetcher fetches and parses a feed document.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (*feed.Metadata, error)
}

// Handlers bundles the HTTP handlers and their dependencies.
type Handlers struct {
	store   *db.Store
	tokens  *auth.Manager
	fetcher FeedFetcher
	logger  zerolog.Logger
}

// New creates the handler set.
func New(store *db.Store, tokens *auth.Manager, fetcher FeedFetcher, logger zerolog.Logger) *Handlers {
	return &Handlers{
		store:   store,
		tokens:  tokens,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Router builds the full route table, wiring the auth guard and rate
// limiter onto the per-user routes.
func (h *Handlers) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/usuario", h.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/refresh", h.Refresh).Methods(http.MethodPost)

	r.HandleFunc("/podcast", h.ListPodcasts).Methods(http.MethodGet)
	r.HandleFunc("/podcast/importar", h.ImportPodcast).Methods(http.MethodPost)
	r.HandleFunc("/podcast/{id:[0-9]+}", h.GetPodcast).Methods(http.MethodGet)

	limiter := middleware.NewRateLimiter(userRateLimit, userRateBurst)
	protected := r.PathPrefix("/usuario/podcast").Subrouter()
	protected.Use(middleware.Auth(h.tokens, h.logger))
	protected.Use(limiter.Middleware)
	protected.HandleFunc("", h.ListUserPodcasts).Methods(http.MethodGet)
	protected.HandleFunc("", h.AddUserPodcast).Methods(http.MethodPost)
	protected.HandleFunc("/{id:[0-9]+}", h.RemoveUserPodcast).Methods(http.MethodDelete)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError translates any error into the shared envelope. Unexpected
// errors are logged with full detail and surfaced as a generic 500.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	var httpErr *httperr.Error
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode >= http.StatusInternalServerError {
			h.logger.Error().Err(err).Msg("request failed")
		} else {
			h.logger.Warn().Msg(httpErr.Message)
		}
		httperr.Write(w, httpErr)
		return
	}

	h.logger.Error().Err(err).Msg("unexpected error")
	httperr.Write(w, httperr.Internal("Ocorreu um erro inesperado no servidor."))
}

// internalError logs the underlying failure with full detail and writes
// a generic Internal envelope. The detail never reaches the client.
func (h *Handlers) internalError(w http.ResponseWriter, err error, message string) {
	h.logger.Error().Err(err).Msg(message)
	httperr.Write(w, httperr.Internal(message))
}
