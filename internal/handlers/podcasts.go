package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"meus-podcasts/internal/db"
	"meus-podcasts/internal/httperr"
	"meus-podcasts/internal/models"
)

type importPodcastRequest struct {
	RSSFeedURL string `json:"rss_feed_url"`
}

// ListPodcasts returns every podcast in the base.
func (h *Handlers) ListPodcasts(w http.ResponseWriter, r *http.Request) {
	podcasts, err := h.store.ListPodcasts(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if podcasts == nil {
		podcasts = []models.Podcast{}
	}
	writeJSON(w, http.StatusOK, podcasts)
}

// GetPodcast returns a single podcast by id.
func (h *Handlers) GetPodcast(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeError(w, httperr.BadRequest("Atributo [podcast_id] é um campo obrigatório."))
		return
	}

	h.logger.Info().Int64("podcast_id", id).Msg("buscando podcast")

	podcast, err := h.store.GetPodcastByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			h.writeError(w, httperr.NotFound(fmt.Sprintf("Podcast de id [%d] não encontrado.", id)))
			return
		}
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, podcast)
}

// ImportPodcast fetches and parses a feed, dedups by title
// case-insensitively and inserts the new podcast. The stored feed_url is
// the request URL verbatim, not one re-derived from the document.
func (h *Handlers) ImportPodcast(w http.ResponseWriter, r *http.Request) {
	var req importPodcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, httperr.BadRequest("Corpo da requisição inválido."))
		return
	}
	if req.RSSFeedURL == "" {
		h.writeError(w, httperr.BadRequest("Atributo [rss_feed_url] é um campo obrigatório."))
		return
	}

	ctx := r.Context()

	meta, err := h.fetcher.Fetch(ctx, req.RSSFeedURL)
	if err != nil {
		h.internalError(w, err, "Ocorreu um erro inesperado ao processar o feed.")
		return
	}

	conflictErr := httperr.Conflict(fmt.Sprintf("Podcast '%s' já cadastrado na plataforma.", meta.Titulo))

	_, err = h.store.GetPodcastByTitle(ctx, meta.Titulo)
	if err == nil {
		h.writeError(w, conflictErr)
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		h.writeError(w, err)
		return
	}

	podcast, err := h.store.CreatePodcast(ctx, &models.Podcast{
		Titulo:    meta.Titulo,
		Descricao: meta.Descricao,
		Autor:     meta.Autor,
		PosterURL: meta.PosterURL,
		FeedURL:   req.RSSFeedURL,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			h.writeError(w, conflictErr)
			return
		}
		h.internalError(w, err, "Ocorreu um erro inesperado ao importar o podcast.")
		return
	}

	h.logger.Info().Int64("podcast_id", podcast.ID).Str("titulo", podcast.Titulo).Msg("podcast importado")
	writeJSON(w, http.StatusOK, podcast)
}
