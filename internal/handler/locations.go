package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/i18n"
	"github.com/pkordes/guidebook/internal/selection"
	"github.com/pkordes/guidebook/internal/taxonomy"
)

// SelectionRequest is the body of POST /selection.
// Value is a string for the location stages and a number (or numeric
// string) for result_count.
type SelectionRequest struct {
	State selection.State `json:"state"`
	Stage string          `json:"stage"`
	Value json.RawMessage `json:"value"`
}

// SelectionResponse carries the next state and every stage's choices.
type SelectionResponse struct {
	State   selection.State   `json:"state"`
	Options selection.Options `json:"options"`
}

// ResolveRequest is the body of POST /cities/resolve.
type ResolveRequest struct {
	State selection.State `json:"state"`
	Query string          `json:"query"`
}

// ResolveResponse carries the state with the matched city promoted.
type ResolveResponse struct {
	State   selection.State   `json:"state"`
	Match   taxonomy.Place    `json:"match"`
	Options selection.Options `json:"options"`
}

// getLocations handles GET /locations.
func (s *Server) getLocations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Selection.Taxonomy().Regions())
}

// getCities handles GET /locations/cities.
func (s *Server) getCities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Selection.Taxonomy().Flatten())
}

// getCategories handles GET /categories.
func (s *Server) getCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Categories)
}

// postSelection handles POST /selection.
func (s *Server) postSelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	stage, err := selection.ParseStage(req.Stage)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	value, ok := scalarString(req.Value)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "value must be a string or a number")
		return
	}

	state, opts, err := s.svc.Selection.Apply(req.State, stage, value)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, SelectionResponse{State: state, Options: opts})
}

// postResolveCity handles POST /cities/resolve.
func (s *Server) postResolveCity(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	state, place, err := s.svc.Selection.ResolveCity(req.State, req.Query)
	if errors.Is(err, domain.ErrNotFound) {
		lang := i18n.FromContext(r.Context())
		writeError(w, http.StatusNotFound, "city_not_found", i18n.Notice(lang, i18n.CityNotFound))
		return
	}
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, ResolveResponse{State: state, Match: place, Options: s.svc.Selection.Options(state)})
}

// scalarString turns a JSON string or number into its text. A missing or
// null value is the empty string, which clears the stage.
func scalarString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", true
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if _, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return n.String(), true
		}
	}
	return "", false
}
