package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// OverviewResponse is the admin dashboard summary.
type OverviewResponse struct {
	Businesses int64 `json:"businesses"`
	Plans      int64 `json:"subscription_plans"`
	GiftCards  int64 `json:"gift_cards"`
	Amenities  int64 `json:"amenities"`
}

// GrantRequest is the body of POST /admin/grants.
type GrantRequest struct {
	Email openapi_types.Email `json:"email"`
}

// getOverview handles GET /admin/overview.
func (s *Server) getOverview(w http.ResponseWriter, r *http.Request) {
	o, err := s.svc.Admin.Overview(r.Context())
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, OverviewResponse{
		Businesses: o.Businesses,
		Plans:      o.Plans,
		GiftCards:  o.GiftCards,
		Amenities:  o.Amenities,
	})
}

// postGrant handles POST /admin/grants: promote an existing account to admin.
func (s *Server) postGrant(w http.ResponseWriter, r *http.Request) {
	var req GrantRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := s.svc.Admin.GrantAdmin(r.Context(), string(req.Email))
	if err != nil {
		s.respondErr(w, r, err, "user")
		return
	}
	writeJSON(w, http.StatusOK, userToResponse(u))
}
