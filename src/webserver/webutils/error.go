// Package webutils contains helpers shared by the HTTP handlers.
package webutils

import (
	"encoding/json"
	"net/http"
)

// JSONError writes a JSON object with an error message and sets the HTTP status
// code.
func JSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	resp := jsonErrorMessage{
		Error: message,
	}
	_ = json.NewEncoder(w).Encode(&resp)
}

// JSONResponse writes resp encoded as JSON with status 200.
func JSONResponse(w http.ResponseWriter, resp any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(resp)
}

type jsonErrorMessage struct {
	Error string `json:"error"`
}
