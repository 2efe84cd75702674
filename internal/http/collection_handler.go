package http

import (
	"net/http"

	"bookshelf/internal/httpx"
)

type collectionReq struct {
	BookID     string `json:"book_id"`
	UserID     string `json:"user_id"`
	BookStatus string `json:"book_status"`
	NewStatus  string `json:"new_status"`
}

func (h *Handler) AddToCollection(w http.ResponseWriter, r *http.Request) {
	var req collectionReq
	if !decode(w, r, &req) {
		return
	}
	token := httpx.BearerToken(r)
	httpx.WriteJSON(w, http.StatusOK, h.resolver.AddToCollection(r.Context(), token, req.BookID, req.UserID, req.BookStatus))
}

func (h *Handler) ChangeBookStatus(w http.ResponseWriter, r *http.Request) {
	var req collectionReq
	if !decode(w, r, &req) {
		return
	}
	token := httpx.BearerToken(r)
	httpx.WriteJSON(w, http.StatusOK, h.resolver.ChangeBookStatus(r.Context(), token, req.BookID, req.UserID, req.NewStatus))
}

func (h *Handler) RemoveFromCollection(w http.ResponseWriter, r *http.Request) {
	var req collectionReq
	if !decode(w, r, &req) {
		return
	}
	token := httpx.BearerToken(r)
	httpx.WriteJSON(w, http.StatusOK, h.resolver.RemoveFromCollection(r.Context(), token, req.BookID, req.UserID))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	token := httpx.BearerToken(r)
	userID := r.PathValue("id")
	filter := r.URL.Query().Get("bookFilter")
	httpx.WriteJSON(w, http.StatusOK, h.resolver.GetUser(r.Context(), token, userID, filter))
}
