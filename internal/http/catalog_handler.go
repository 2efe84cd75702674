package http

import (
	"net/http"

	"bookshelf/internal/httpx"
	"bookshelf/internal/resolver"
)

type bookAddReq struct {
	Title       string   `json:"title"`
	ISBN        string   `json:"isbn"`
	Authors     []string `json:"authors"`
	Pages       int      `json:"pages"`
	Description string   `json:"description"`
	ImgURL      string   `json:"img_url"`
}

func (h *Handler) BookAdd(w http.ResponseWriter, r *http.Request) {
	var req bookAddReq
	if !decode(w, r, &req) {
		return
	}
	token := httpx.BearerToken(r)
	meta := resolver.BookMeta{
		Title:       req.Title,
		ISBN:        req.ISBN,
		Pages:       req.Pages,
		Description: req.Description,
		ImgURL:      req.ImgURL,
	}
	httpx.WriteJSON(w, http.StatusOK, h.resolver.BookAdd(r.Context(), token, meta, req.Authors))
}

func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	token := httpx.BearerToken(r)
	httpx.WriteJSON(w, http.StatusOK, h.resolver.GetBook(r.Context(), token, r.PathValue("id")))
}

func (h *Handler) GetBooks(w http.ResponseWriter, r *http.Request) {
	token := httpx.BearerToken(r)
	httpx.WriteJSON(w, http.StatusOK, h.resolver.GetBooks(r.Context(), token))
}

func (h *Handler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	token := httpx.BearerToken(r)
	httpx.WriteJSON(w, http.StatusOK, h.resolver.GetAuthor(r.Context(), token, r.PathValue("id")))
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	token := httpx.BearerToken(r)
	data := r.URL.Query().Get("data")
	category := r.URL.Query().Get("category")
	httpx.WriteJSON(w, http.StatusOK, h.resolver.Search(r.Context(), token, data, category))
}
