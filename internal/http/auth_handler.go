package http

import (
	"net/http"

	"bookshelf/internal/httpx"
)

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if !decode(w, r, &req) {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.resolver.UserCreate(r.Context(), req.Email, req.Password))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if !decode(w, r, &req) {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.resolver.UserLogin(r.Context(), req.Email, req.Password))
}

type changeEmailReq struct {
	Email        string `json:"email"`
	EmailConfirm string `json:"email_confirm"`
	UserID       string `json:"user_id"`
}

func (h *Handler) ChangeEmail(w http.ResponseWriter, r *http.Request) {
	var req changeEmailReq
	if !decode(w, r, &req) {
		return
	}
	token := httpx.BearerToken(r)
	httpx.WriteJSON(w, http.StatusOK, h.resolver.ChangeEmail(r.Context(), token, req.Email, req.EmailConfirm, req.UserID))
}

type changePasswordReq struct {
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	UserID          string `json:"user_id"`
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordReq
	if !decode(w, r, &req) {
		return
	}
	token := httpx.BearerToken(r)
	httpx.WriteJSON(w, http.StatusOK, h.resolver.ChangePassword(r.Context(), token, req.Password, req.PasswordConfirm, req.UserID))
}
