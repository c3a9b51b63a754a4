// Package httpapi is the public HTTP surface of the server: JSON handlers,
// the cookie-based write gate and the request router.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkovs/techcards/internal/common"
)

// errorEnvelope is the uniform failure body: a human-readable message and a
// machine-readable code.
type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusForKind(k common.Kind) int {
	switch k {
	case common.KindValidation:
		return http.StatusBadRequest
	case common.KindUnauthorized:
		return http.StatusUnauthorized
	case common.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as the error envelope. Errors that are not a
// *common.Error are treated as unexpected server faults and never leak
// their text to the client.
func writeError(w http.ResponseWriter, err error) {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		writeJSON(w, statusForKind(appErr.Kind), errorEnvelope{Error: appErr.Message, Code: appErr.Code})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: "Internal server error", Code: "SERVER_ERROR"})
}
