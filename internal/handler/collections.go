package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/guidebook/internal/auth"
	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/service"
)

// CollectionRequest is the body of POST /collections.
type CollectionRequest struct {
	Name string `json:"name"`
}

// CollectionResponse is one of the user's named lists.
type CollectionResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SavedResponse is one stored record.
type SavedResponse struct {
	ID           uuid.UUID             `json:"id"`
	CollectionID uuid.UUID             `json:"collection_id"`
	Record       domain.BusinessRecord `json:"record"`
	CreatedAt    time.Time             `json:"created_at"`
}

// SaveBody is the body of POST /saves. Exactly one of CollectionID and
// NewCollectionName picks the destination.
type SaveBody struct {
	CollectionID      *uuid.UUID            `json:"collection_id"`
	NewCollectionName string                `json:"new_collection_name"`
	Record            domain.BusinessRecord `json:"record"`
}

// ShareRequest is the body of POST /collections/{id}/share.
type ShareRequest struct {
	ExpiresInHours *int `json:"expires_in_hours"`
}

// ShareResponse carries the token and the public URL built from it.
type ShareResponse struct {
	Token     string     `json:"token"`
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// SharedResponse is the anonymous view of a shared collection.
type SharedResponse struct {
	Collection CollectionResponse `json:"collection"`
	Saved      []SavedResponse    `json:"saved"`
	ExpiresAt  *time.Time         `json:"expires_at,omitempty"`
}

// listCollections handles GET /collections.
func (s *Server) listCollections(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	list, err := s.svc.Collections.List(r.Context(), sess.User.ID)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	out := make([]CollectionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, collectionToResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// createCollection handles POST /collections.
func (s *Server) createCollection(w http.ResponseWriter, r *http.Request) {
	var req CollectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sess, _ := auth.FromContext(r.Context())
	c, err := s.svc.Collections.Create(r.Context(), sess.User.ID, req.Name)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, collectionToResponse(c))
}

// deleteCollection handles DELETE /collections/{id}. Its saved records go with it.
func (s *Server) deleteCollection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess, _ := auth.FromContext(r.Context())
	if err := s.svc.Collections.Delete(r.Context(), sess.User.ID, id); err != nil {
		s.respondErr(w, r, err, "collection")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listSaved handles GET /collections/{id}/saved.
func (s *Server) listSaved(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess, _ := auth.FromContext(r.Context())
	saved, err := s.svc.Collections.ListSaved(r.Context(), sess.User.ID, id)
	if err != nil {
		s.respondErr(w, r, err, "collection")
		return
	}
	writeJSON(w, http.StatusOK, savedToResponse(saved))
}

// deleteSaved handles DELETE /saved/{id}.
func (s *Server) deleteSaved(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess, _ := auth.FromContext(r.Context())
	if err := s.svc.Collections.DeleteSaved(r.Context(), sess.User.ID, id); err != nil {
		s.respondErr(w, r, err, "saved record")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// postSave handles POST /saves.
func (s *Server) postSave(w http.ResponseWriter, r *http.Request) {
	var req SaveBody
	if !decodeJSON(w, r, &req) {
		return
	}
	sess, _ := auth.FromContext(r.Context())
	saved, err := s.svc.Collections.Save(r.Context(), sess.User.ID, service.SaveRequest{
		CollectionID:      req.CollectionID,
		NewCollectionName: req.NewCollectionName,
		Record:            req.Record,
	})
	if err != nil {
		s.respondErr(w, r, err, "collection")
		return
	}
	writeJSON(w, http.StatusCreated, savedOneToResponse(saved))
}

// shareCollection handles POST /collections/{id}/share. The body is optional.
func (s *Server) shareCollection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req ShareRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	sess, _ := auth.FromContext(r.Context())
	link, err := s.svc.Shares.Share(r.Context(), sess.User.ID, id, req.ExpiresInHours)
	if err != nil {
		s.respondErr(w, r, err, "collection")
		return
	}
	writeJSON(w, http.StatusCreated, ShareResponse{
		Token:     link.Token,
		URL:       s.opts.PublicOrigin + "/shared/" + link.Token,
		ExpiresAt: link.ExpiresAt,
	})
}

// getShared handles GET /shared/{token}. No authentication.
func (s *Server) getShared(w http.ResponseWriter, r *http.Request) {
	shared, err := s.svc.Shares.Resolve(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		s.respondErr(w, r, err, "shared collection")
		return
	}
	writeJSON(w, http.StatusOK, SharedResponse{
		Collection: collectionToResponse(shared.Collection),
		Saved:      savedToResponse(shared.Saved),
		ExpiresAt:  shared.ExpiresAt,
	})
}

func collectionToResponse(c domain.Collection) CollectionResponse {
	return CollectionResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func savedOneToResponse(sr domain.SavedRestaurant) SavedResponse {
	return SavedResponse{ID: sr.ID, CollectionID: sr.CollectionID, Record: sr.Record, CreatedAt: sr.CreatedAt}
}

func savedToResponse(list []domain.SavedRestaurant) []SavedResponse {
	out := make([]SavedResponse, 0, len(list))
	for _, sr := range list {
		out = append(out, savedOneToResponse(sr))
	}
	return out
}
