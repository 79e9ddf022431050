package handler

import (
	"fmt"
	"net/http"
	"terea-store/internal/auth"
	"terea-store/internal/user"
	"terea-store/internal/utils"
	"terea-store/internal/validation"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"`
	Admin       *user.AdminUser `json:"admin"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.Struct(req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", user.ErrInvalidInput, err))
		return
	}

	token, admin, err := h.admins.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ttl := h.admins.TokenTTL()
	auth.SetTokenCookie(w, token, ttl, h.secureCookie)

	utils.WriteJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(ttl.Seconds()),
		Admin:       admin,
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	auth.ClearTokenCookie(w, h.secureCookie)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.GetAdminIDFromContext(r.Context())
	if !ok {
		writeError(w, r, user.ErrUnauthorized)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"id":       id,
		"username": utils.GetAdminUsernameFromContext(r.Context()),
	})
}
