package middleware

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeError writes the same error envelope the REST handlers use, so
// clients see one shape whether a request failed in middleware or later.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	var body envelope
	body.Error.Code = code
	body.Error.Message = msg
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
