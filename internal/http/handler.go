// Package http maps JSON endpoints onto resolver operations. The mapping
// is deliberately thin: handlers decode arguments, pass the bearer token
// through, and encode whatever payload the resolver returns. Operation
// errors travel inside the payload, so handlers answer 200 unless the
// request itself is unreadable.
package http

import (
	"encoding/json"
	"net/http"

	"bookshelf/internal/resolver"

	"bookshelf/internal/httpx"
)

type Handler struct {
	resolver *resolver.Resolver
}

func NewHandler(res *resolver.Resolver) *Handler {
	return &Handler{resolver: res}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return false
	}
	return true
}
