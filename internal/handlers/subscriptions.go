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
	"meus-podcasts/internal/middleware"
	"meus-podcasts/internal/models"
)

type addPodcastRequest struct {
	PodcastID int64 `json:"podcast_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// ListUserPodcasts returns the authenticated user's podcast list. The
// user id comes from the token subject, never from the request.
func (h *Handlers) ListUserPodcasts(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeError(w, httperr.Unauthorized("Token de acesso não informado."))
		return
	}

	podcasts, err := h.store.ListUserPodcasts(r.Context(), usuarioID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if podcasts == nil {
		podcasts = []models.Podcast{}
	}
	writeJSON(w, http.StatusOK, podcasts)
}

// AddUserPodcast adds an existing podcast to the authenticated user's
// list.
func (h *Handlers) AddUserPodcast(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeError(w, httperr.Unauthorized("Token de acesso não informado."))
		return
	}

	var req addPodcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, httperr.BadRequest("Corpo da requisição inválido."))
		return
	}
	if req.PodcastID == 0 {
		h.writeError(w, httperr.BadRequest("Atributo [podcast_id] é um campo obrigatório."))
		return
	}

	ctx := r.Context()

	podcast, err := h.store.GetPodcastByID(ctx, req.PodcastID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			h.writeError(w, httperr.NotFound(fmt.Sprintf("Podcast de id [%d] não encontrado.", req.PodcastID)))
			return
		}
		h.writeError(w, err)
		return
	}

	conflictErr := httperr.Conflict("Podcast já cadastrado a lista do usuário.")

	exists, err := h.store.HasSubscription(ctx, usuarioID, podcast.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if exists {
		h.writeError(w, conflictErr)
		return
	}

	if err := h.store.AddSubscription(ctx, usuarioID, podcast.ID); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			h.writeError(w, conflictErr)
			return
		}
		h.internalError(w, err, "Ocorreu um erro inesperado ao adicionar podcast.")
		return
	}

	h.logger.Info().Int64("usuario_id", usuarioID).Int64("podcast_id", podcast.ID).Msg("podcast adicionado à lista")
	writeJSON(w, http.StatusCreated, podcast)
}

// RemoveUserPodcast removes a podcast from the authenticated user's
// list. An unknown podcast id and a podcast absent from the list are
// distinct Not Found cases.
func (h *Handlers) RemoveUserPodcast(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeError(w, httperr.Unauthorized("Token de acesso não informado."))
		return
	}

	podcastID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeError(w, httperr.BadRequest("Atributo [podcast_id] é um campo obrigatório."))
		return
	}

	ctx := r.Context()

	if _, err := h.store.GetPodcastByID(ctx, podcastID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			h.writeError(w, httperr.NotFound(fmt.Sprintf("Podcast de id [%d] não encontrado.", podcastID)))
			return
		}
		h.writeError(w, err)
		return
	}

	if err := h.store.RemoveSubscription(ctx, usuarioID, podcastID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			h.writeError(w, httperr.NotFound("Podcast não encontrado na lista do usuário."))
			return
		}
		h.internalError(w, err, "Ocorreu um erro inesperado ao remover podcast.")
		return
	}

	h.logger.Info().Int64("usuario_id", usuarioID).Int64("podcast_id", podcastID).Msg("podcast removido da lista")
	writeJSON(w, http.StatusOK, messageResponse{Message: "Podcast removido da lista do usuário com sucesso."})
}
