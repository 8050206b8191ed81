package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/plutoledger/pluto/internal/errors"
)

// userHeader carries the owner id resolved by the auth layer in front of this
// service.
const userHeader = "X-User-ID"

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperrors.StatusOf(err), map[string]string{"error": err.Error()})
}

// requireUser extracts the owner id from the request. It writes a 401 and
// returns false when the header is missing.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get(userHeader)
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing user identity"})
		return "", false
	}
	return userID, true
}
