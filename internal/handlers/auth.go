package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"meus-podcasts/internal/auth"
	"meus-podcasts/internal/db"
	"meus-podcasts/internal/httperr"
)

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Login verifies the credentials and issues an access/refresh token
// pair. Unknown email and wrong password produce the same message so the
// response never reveals which one was wrong.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, httperr.BadRequest("Corpo da requisição inválido."))
		return
	}
	if req.Email == "" || req.Senha == "" {
		h.writeError(w, httperr.BadRequest("Email e/ou senha não preenchidos."))
		return
	}

	invalidCreds := httperr.Unauthorized("Email e/ou senha inválidos.")

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			h.writeError(w, invalidCreds)
			return
		}
		h.writeError(w, err)
		return
	}

	if !auth.CheckPassword(user.Senha, req.Senha) {
		h.writeError(w, invalidCreds)
		return
	}

	accessToken, err := h.tokens.IssueAccessToken(user.ID, user.Nome, user.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}
	refreshToken, err := h.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.logger.Info().Int64("usuario_id", user.ID).Msg("login efetuado")
	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Refresh mints a new access token from a valid refresh token. The new
// token carries only the subject, no display claims.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	raw, err := bearerToken(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	usuarioID, verifyErr := h.tokens.VerifyToken(raw, auth.TokenTypeRefresh)
	if verifyErr != nil {
		h.logger.Warn().Err(verifyErr).Msg("rejected refresh token")
		h.writeError(w, httperr.Unauthorized("Token de refresh inválido ou expirado."))
		return
	}

	accessToken, issueErr := h.tokens.IssueAccessToken(usuarioID, "", "")
	if issueErr != nil {
		h.writeError(w, issueErr)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: accessToken})
}

// bearerToken extracts the raw token from the Authorization header.
func bearerToken(r *http.Request) (string, *httperr.Error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", httperr.Unauthorized("Token não informado.")
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", httperr.Unauthorized("Cabeçalho de autorização deve estar no formato 'Bearer <token>'.")
	}
	return parts[1], nil
}
