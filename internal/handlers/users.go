package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"meus-podcasts/internal/auth"
	"meus-podcasts/internal/db"
	"meus-podcasts/internal/httperr"
)

type createUserRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func (r *createUserRequest) validate() *httperr.Error {
	if r.Nome == "" {
		return httperr.BadRequest("Atributo [nome] é um campo obrigatório.")
	}
	if r.Email == "" {
		return httperr.BadRequest("Atributo [email] é um campo obrigatório.")
	}
	if r.Senha == "" {
		return httperr.BadRequest("Atributo [senha] é um campo obrigatório.")
	}
	return nil
}

// CreateUser registers a new user. A taken email is rejected before the
// insert; the unique constraint covers the race.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, httperr.BadRequest("Corpo da requisição inválido."))
		return
	}
	if err := req.validate(); err != nil {
		h.writeError(w, err)
		return
	}

	ctx := r.Context()
	duplicateErr := httperr.BadRequest(fmt.Sprintf("E-mail %s já cadastrado.", req.Email))

	_, err := h.store.GetUserByEmail(ctx, req.Email)
	if err == nil {
		h.writeError(w, duplicateErr)
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		h.writeError(w, err)
		return
	}

	senhaHash, err := auth.HashPassword(req.Senha)
	if err != nil {
		h.writeError(w, err)
		return
	}

	user, err := h.store.CreateUser(ctx, req.Nome, req.Email, senhaHash)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			h.writeError(w, duplicateErr)
			return
		}
		h.internalError(w, err, "Ocorreu um erro inesperado ao criar usuário.")
		return
	}

	h.logger.Info().Int64("usuario_id", user.ID).Msg("usuário criado")
	writeJSON(w, http.StatusCreated, user)
}
