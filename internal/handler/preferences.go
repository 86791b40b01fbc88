package handler

import (
	"net/http"
	"time"

	"github.com/pkordes/guidebook/internal/auth"
	"github.com/pkordes/guidebook/internal/domain"
)

// PreferenceBody is both the request and response shape of /me/preferences.
type PreferenceBody struct {
	Language        string     `json:"language"`
	DefaultCategory string     `json:"default_category"`
	DefaultRegion   string     `json:"default_region"`
	DefaultCountry  string     `json:"default_country"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// getPreferences handles GET /me/preferences.
func (s *Server) getPreferences(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	p, err := s.svc.Preferences.Get(r.Context(), sess.User.ID)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, preferenceToBody(p))
}

// putPreferences handles PUT /me/preferences. The body replaces every field.
func (s *Server) putPreferences(w http.ResponseWriter, r *http.Request) {
	var req PreferenceBody
	if !decodeJSON(w, r, &req) {
		return
	}
	sess, _ := auth.FromContext(r.Context())
	p, err := s.svc.Preferences.Update(r.Context(), domain.UserPreference{
		UserID:          sess.User.ID,
		Language:        req.Language,
		DefaultCategory: req.DefaultCategory,
		DefaultRegion:   req.DefaultRegion,
		DefaultCountry:  req.DefaultCountry,
	})
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, preferenceToBody(p))
}

func preferenceToBody(p domain.UserPreference) PreferenceBody {
	body := PreferenceBody{
		Language:        p.Language,
		DefaultCategory: p.DefaultCategory,
		DefaultRegion:   p.DefaultRegion,
		DefaultCountry:  p.DefaultCountry,
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		body.UpdatedAt = &t
	}
	return body
}
