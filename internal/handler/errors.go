package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/i18n"
	"github.com/pkordes/guidebook/internal/mockgen"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope: {"error":{"code":..,"message":..}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// decodeJSON reads a JSON request body into dst. Unknown fields are ignored.
// A failure has already been answered when it returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body is too large")
	case errors.Is(err, io.EOF):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
	default:
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body: "+err.Error())
	}
	return false
}

// pathID binds the {id} path parameter. A failure has already been answered
// (400) when it returns false.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid id: "+err.Error())
		return uuid.Nil, false
	}
	return id, true
}

// respondErr maps a service error to its HTTP status and envelope.
// what names the resource for 404/409 messages (e.g. "collection").
// Unexpected errors are logged with the request id and answered with a
// localized generic notice.
func (s *Server) respondErr(w http.ResponseWriter, r *http.Request, err error, what string) {
	lang := i18n.FromContext(r.Context())
	switch {
	case errors.Is(err, domain.ErrCollectionRequired):
		writeError(w, http.StatusUnprocessableEntity, "collection_required", i18n.Notice(lang, i18n.CollectionRequired))
	case errors.Is(err, mockgen.ErrUnsupportedCountry):
		writeError(w, http.StatusUnprocessableEntity, "unsupported_country", i18n.Notice(lang, i18n.UnsupportedCountry))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", subject(what, "not found"))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", subject(what, "already exists"))
	case errors.Is(err, domain.ErrExpired):
		writeError(w, http.StatusGone, "expired", unwrapMessage(err, domain.ErrExpired))
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthenticated", i18n.Notice(lang, i18n.SignInRequired))
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", domain.ErrForbidden.Error())
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"error", err,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", i18n.Notice(lang, i18n.TryAgain))
	}
}

func subject(what, outcome string) string {
	if what == "" {
		return outcome
	}
	return what + " " + outcome
}

// unwrapMessage extracts the human-readable part that follows a wrapped sentinel.
// e.g. "service.PlanService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}

func badParam(w http.ResponseWriter, name string, err error) {
	writeError(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("invalid %s: %v", name, err))
}
