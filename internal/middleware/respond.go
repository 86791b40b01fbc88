package middleware

import (
	"encoding/json"
	"net/http"
)

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error     errorDetail `json:"error"`
	SignInURL string      `json:"sign_in_url,omitempty"`
}

// writeError writes the API's standard error envelope. The handler package
// writes the same shape; middleware cannot import it without a cycle.
func writeError(w http.ResponseWriter, _ *http.Request, status int, code, message string) {
	writeErrorBody(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

func writeErrorBody(w http.ResponseWriter, status int, body errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
