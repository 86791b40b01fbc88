package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/guidebook/internal/domain"
)

// Pagination describes the page a list response covers.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// BusinessRequest is the body of POST and PUT /admin/businesses.
// Email is checked as an address while the body is decoded.
type BusinessRequest struct {
	OwnerID            *uuid.UUID           `json:"owner_id"`
	Name               string               `json:"name"`
	Category           domain.Category      `json:"category"`
	Region             string               `json:"region"`
	Country            string               `json:"country"`
	City               string               `json:"city"`
	Address            string               `json:"address"`
	Phone              string               `json:"phone"`
	Email              *openapi_types.Email `json:"email"`
	Website            string               `json:"website"`
	Description        string               `json:"description"`
	Amenities          []string             `json:"amenities"`
	SubscriptionPlanID *uuid.UUID           `json:"subscription_plan_id"`
}

// BusinessResponse is a listing as the admin panel sees it.
type BusinessResponse struct {
	ID                 uuid.UUID       `json:"id"`
	OwnerID            *uuid.UUID      `json:"owner_id,omitempty"`
	Name               string          `json:"name"`
	Category           domain.Category `json:"category"`
	Region             string          `json:"region"`
	Country            string          `json:"country"`
	City               string          `json:"city"`
	Address            string          `json:"address"`
	Phone              string          `json:"phone"`
	Email              string          `json:"email"`
	Website            string          `json:"website"`
	Description        string          `json:"description"`
	Amenities          []string        `json:"amenities"`
	SubscriptionPlanID *uuid.UUID      `json:"subscription_plan_id"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// BusinessList is one page of listings.
type BusinessList struct {
	Data       []BusinessResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// SubscriptionRequest is the body of PUT /admin/businesses/{id}/subscription.
// A null plan_id cancels the subscription.
type SubscriptionRequest struct {
	PlanID *uuid.UUID `json:"plan_id"`
}

// listBusinesses handles GET /admin/businesses.
// Supports ?page=, ?limit= (defaults: page=1, limit=20, max=100) and ?q= name search.
func (s *Server) listBusinesses(w http.ResponseWriter, r *http.Request) {
	var (
		page, limit *int
		q           *string
	)
	query := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &page); err != nil {
		badParam(w, "page", err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &limit); err != nil {
		badParam(w, "limit", err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "q", query, &q); err != nil {
		badParam(w, "q", err)
		return
	}

	params := domain.NewPaginationParams(page, limit)
	var filter domain.BusinessFilter
	if q != nil {
		filter.Query = *q
	}
	result, err := s.svc.Businesses.List(r.Context(), filter, params)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}

	data := make([]BusinessResponse, len(result.Items))
	for i, b := range result.Items {
		data[i] = businessToResponse(b)
	}
	writeJSON(w, http.StatusOK, BusinessList{
		Data:       data,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: result.Total},
	})
}

// createBusiness handles POST /admin/businesses.
func (s *Server) createBusiness(w http.ResponseWriter, r *http.Request) {
	var req BusinessRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	b, err := s.svc.Businesses.Create(r.Context(), requestToBusiness(uuid.Nil, req))
	if err != nil {
		s.respondErr(w, r, err, "subscription plan")
		return
	}
	writeJSON(w, http.StatusCreated, businessToResponse(b))
}

// getBusiness handles GET /admin/businesses/{id}.
func (s *Server) getBusiness(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b, err := s.svc.Businesses.GetByID(r.Context(), id)
	if err != nil {
		s.respondErr(w, r, err, "business")
		return
	}
	writeJSON(w, http.StatusOK, businessToResponse(b))
}

// updateBusiness handles PUT /admin/businesses/{id}. The subscription is
// left alone; change it through the subscription endpoint.
func (s *Server) updateBusiness(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req BusinessRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	b, err := s.svc.Businesses.Update(r.Context(), requestToBusiness(id, req))
	if err != nil {
		s.respondErr(w, r, err, "business")
		return
	}
	writeJSON(w, http.StatusOK, businessToResponse(b))
}

// deleteBusiness handles DELETE /admin/businesses/{id}.
func (s *Server) deleteBusiness(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.svc.Businesses.Delete(r.Context(), id); err != nil {
		s.respondErr(w, r, err, "business")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// putSubscription handles PUT /admin/businesses/{id}/subscription.
func (s *Server) putSubscription(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req SubscriptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	b, err := s.svc.Businesses.SetSubscription(r.Context(), id, req.PlanID)
	if err != nil {
		s.respondErr(w, r, err, "business or plan")
		return
	}
	writeJSON(w, http.StatusOK, businessToResponse(b))
}

func requestToBusiness(id uuid.UUID, req BusinessRequest) domain.Business {
	b := domain.Business{
		ID:                 id,
		OwnerID:            req.OwnerID,
		Name:               req.Name,
		Category:           req.Category,
		Region:             req.Region,
		Country:            req.Country,
		City:               req.City,
		Address:            req.Address,
		Phone:              req.Phone,
		Website:            req.Website,
		Description:        req.Description,
		Amenities:          req.Amenities,
		SubscriptionPlanID: req.SubscriptionPlanID,
	}
	if req.Email != nil {
		b.Email = string(*req.Email)
	}
	return b
}

func businessToResponse(b domain.Business) BusinessResponse {
	amenities := b.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return BusinessResponse{
		ID:                 b.ID,
		OwnerID:            b.OwnerID,
		Name:               b.Name,
		Category:           b.Category,
		Region:             b.Region,
		Country:            b.Country,
		City:               b.City,
		Address:            b.Address,
		Phone:              b.Phone,
		Email:              b.Email,
		Website:            b.Website,
		Description:        b.Description,
		Amenities:          amenities,
		SubscriptionPlanID: b.SubscriptionPlanID,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
