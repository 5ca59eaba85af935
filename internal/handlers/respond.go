package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	apperr "github.com/example/goldshop-gateway/pkg/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError is the only place unit errors become HTTP. Client mistakes get
// a specific 400; everything else is logged in full and answered generically
// so upstream detail never leaks to callers.
func writeError(w http.ResponseWriter, err error) {
	switch apperr.CodeOf(err) {
	case apperr.CodeInvalidAmount:
		writeJSON(w, http.StatusBadRequest, ErrorOut{Error: "amount must be a positive number"})
	case apperr.CodeSignatureMismatch:
		writeJSON(w, http.StatusBadRequest, ErrorOut{Error: "payment verification failed"})
	default:
		log.Printf("request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorOut{Error: "something went wrong"})
	}
}
