package http

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bookshelf/internal/httpx"
)

// Pinger is what the readiness probe needs from the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

const maxBodyBytes = 1 << 20 // 1 MiB

// NewRouter wires the handler's endpoints and the middleware chain.
func NewRouter(h *Handler, db Pinger, log *zap.Logger, rps float64, burst int) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	mux.HandleFunc("POST /users/register", h.Register)
	mux.HandleFunc("POST /users/login", h.Login)
	mux.HandleFunc("POST /users/email", h.ChangeEmail)
	mux.HandleFunc("POST /users/password", h.ChangePassword)
	mux.HandleFunc("GET /users/{id}", h.GetUser)

	mux.HandleFunc("POST /books", h.BookAdd)
	mux.HandleFunc("GET /books", h.GetBooks)
	mux.HandleFunc("GET /books/{id}", h.GetBook)
	mux.HandleFunc("GET /authors/{id}", h.GetAuthor)
	mux.HandleFunc("GET /search", h.Search)

	mux.HandleFunc("POST /collection", h.AddToCollection)
	mux.HandleFunc("PATCH /collection", h.ChangeBookStatus)
	mux.HandleFunc("DELETE /collection", h.RemoveFromCollection)

	rateLimit := httpx.NewRateLimiter(rps, burst)

	return httpx.Chain(mux,
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(log),
		httpx.AccessLogMiddleware(log),
		httpx.SecurityHeadersMiddleware,
		httpx.RequestSizeLimitMiddleware(maxBodyBytes),
		rateLimit.Middleware,
	)
}
