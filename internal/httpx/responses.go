package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON renders an operation payload. Operations carry their errors
// inside the payload, so the transport answers 200 either way; statusCode
// differs only for transport-level failures (bad body, rate limit, panic).
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Errors []errorBody `json:"errors"`
}

// WriteError renders a transport-level error in the same errors-list shape
// the payloads use.
func WriteError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, errorResponse{Errors: []errorBody{{Code: code, Message: message}}})
}
