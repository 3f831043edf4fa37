package httpx

import (
	"encoding/json"
	"net/http"
)

// DetailResponse is the error payload shape used across the API. Every
// error response carries a single human-readable detail string.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON writes a JSON response with the given status code. It sets
// Content-Type and no-store cache headers; most responses carry tokens or
// account data and must never be cached.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteDetail writes the standard error payload.
func WriteDetail(w http.ResponseWriter, code int, detail string) {
	WriteJSON(w, code, DetailResponse{Detail: detail})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
