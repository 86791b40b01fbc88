package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/service"
)

// PlanBody is the request and response shape of a subscription plan.
type PlanBody struct {
	ID         uuid.UUID              `json:"id"`
	Name       string                 `json:"name"`
	Tier       domain.Tier            `json:"tier"`
	PriceCents int64                  `json:"price_cents"`
	Interval   domain.BillingInterval `json:"billing_interval"`
	Features   []string               `json:"features"`
	Active     bool                   `json:"active"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// GiftCardRequest is the body of POST /admin/gift-cards.
// Amount may be sent as a string ("25.50") or a JSON number.
type GiftCardRequest struct {
	BusinessID uuid.UUID           `json:"business_id"`
	Amount     json.RawMessage     `json:"amount"`
	Currency   string              `json:"currency"`
	ExpiresOn  *openapi_types.Date `json:"expires_on"`
}

// RedeemRequest is the body of POST /admin/gift-cards/{id}/redeem.
type RedeemRequest struct {
	Amount json.RawMessage `json:"amount"`
}

// GiftCardResponse renders money as two-decimal strings.
type GiftCardResponse struct {
	ID         uuid.UUID           `json:"id"`
	BusinessID uuid.UUID           `json:"business_id"`
	Code       string              `json:"code"`
	Amount     string              `json:"amount"`
	Balance    string              `json:"balance"`
	Currency   string              `json:"currency"`
	ExpiresOn  *openapi_types.Date `json:"expires_on,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// AmenityBody is the request and response shape of an amenity option.
type AmenityBody struct {
	ID       uuid.UUID       `json:"id"`
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
}

// listPlans handles GET /admin/subscription-plans.
func (s *Server) listPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.svc.Plans.List(r.Context())
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	out := make([]PlanBody, len(plans))
	for i, p := range plans {
		out[i] = planToBody(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// createPlan handles POST /admin/subscription-plans.
func (s *Server) createPlan(w http.ResponseWriter, r *http.Request) {
	var req PlanBody
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := s.svc.Plans.Create(r.Context(), bodyToPlan(uuid.Nil, req))
	if err != nil {
		s.respondErr(w, r, err, "subscription plan")
		return
	}
	writeJSON(w, http.StatusCreated, planToBody(p))
}

// getPlan handles GET /admin/subscription-plans/{id}.
func (s *Server) getPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := s.svc.Plans.GetByID(r.Context(), id)
	if err != nil {
		s.respondErr(w, r, err, "subscription plan")
		return
	}
	writeJSON(w, http.StatusOK, planToBody(p))
}

// updatePlan handles PUT /admin/subscription-plans/{id}.
func (s *Server) updatePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req PlanBody
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := s.svc.Plans.Update(r.Context(), bodyToPlan(id, req))
	if err != nil {
		s.respondErr(w, r, err, "subscription plan")
		return
	}
	writeJSON(w, http.StatusOK, planToBody(p))
}

// deletePlan handles DELETE /admin/subscription-plans/{id}.
func (s *Server) deletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.svc.Plans.Delete(r.Context(), id); err != nil {
		s.respondErr(w, r, err, "subscription plan")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listGiftCards handles GET /admin/gift-cards, optionally ?business_id=.
func (s *Server) listGiftCards(w http.ResponseWriter, r *http.Request) {
	var businessID *uuid.UUID
	if err := runtime.BindQueryParameter("form", true, false, "business_id", r.URL.Query(), &businessID); err != nil {
		badParam(w, "business_id", err)
		return
	}
	cards, err := s.svc.GiftCards.List(r.Context(), businessID)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	out := make([]GiftCardResponse, len(cards))
	for i, c := range cards {
		out[i] = giftCardToResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// createGiftCard handles POST /admin/gift-cards. The code is generated here,
// never supplied by the client.
func (s *Server) createGiftCard(w http.ResponseWriter, r *http.Request) {
	var req GiftCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	amount, ok := amountString(req.Amount)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "amount must be a string or a number")
		return
	}
	in := service.GiftCardInput{BusinessID: req.BusinessID, Amount: amount, Currency: req.Currency}
	if req.ExpiresOn != nil {
		t := req.ExpiresOn.Time
		in.ExpiresOn = &t
	}
	card, err := s.svc.GiftCards.Create(r.Context(), in)
	if err != nil {
		s.respondErr(w, r, err, "business")
		return
	}
	writeJSON(w, http.StatusCreated, giftCardToResponse(card))
}

// getGiftCard handles GET /admin/gift-cards/{id}.
func (s *Server) getGiftCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	card, err := s.svc.GiftCards.GetByID(r.Context(), id)
	if err != nil {
		s.respondErr(w, r, err, "gift card")
		return
	}
	writeJSON(w, http.StatusOK, giftCardToResponse(card))
}

// deleteGiftCard handles DELETE /admin/gift-cards/{id}.
func (s *Server) deleteGiftCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.svc.GiftCards.Delete(r.Context(), id); err != nil {
		s.respondErr(w, r, err, "gift card")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// redeemGiftCard handles POST /admin/gift-cards/{id}/redeem.
func (s *Server) redeemGiftCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req RedeemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	amount, ok := amountString(req.Amount)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "amount must be a string or a number")
		return
	}
	card, err := s.svc.GiftCards.Redeem(r.Context(), id, amount)
	if err != nil {
		s.respondErr(w, r, err, "gift card")
		return
	}
	writeJSON(w, http.StatusOK, giftCardToResponse(card))
}

// listAmenities handles GET /admin/amenities, optionally ?category=.
func (s *Server) listAmenities(w http.ResponseWriter, r *http.Request) {
	var category *domain.Category
	if err := runtime.BindQueryParameter("form", true, false, "category", r.URL.Query(), &category); err != nil {
		badParam(w, "category", err)
		return
	}
	list, err := s.svc.Amenities.List(r.Context(), category)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	out := make([]AmenityBody, len(list))
	for i, a := range list {
		out[i] = AmenityBody{ID: a.ID, Category: a.Category, Label: a.Label}
	}
	writeJSON(w, http.StatusOK, out)
}

// createAmenity handles POST /admin/amenities.
func (s *Server) createAmenity(w http.ResponseWriter, r *http.Request) {
	var req AmenityBody
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := s.svc.Amenities.Create(r.Context(), domain.AmenityOption{Category: req.Category, Label: req.Label})
	if err != nil {
		s.respondErr(w, r, err, "amenity")
		return
	}
	writeJSON(w, http.StatusCreated, AmenityBody{ID: a.ID, Category: a.Category, Label: a.Label})
}

// updateAmenity handles PUT /admin/amenities/{id}.
func (s *Server) updateAmenity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req AmenityBody
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := s.svc.Amenities.Update(r.Context(), domain.AmenityOption{ID: id, Category: req.Category, Label: req.Label})
	if err != nil {
		s.respondErr(w, r, err, "amenity")
		return
	}
	writeJSON(w, http.StatusOK, AmenityBody{ID: a.ID, Category: a.Category, Label: a.Label})
}

// deleteAmenity handles DELETE /admin/amenities/{id}.
func (s *Server) deleteAmenity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.svc.Amenities.Delete(r.Context(), id); err != nil {
		s.respondErr(w, r, err, "amenity")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func bodyToPlan(id uuid.UUID, b PlanBody) domain.SubscriptionPlan {
	return domain.SubscriptionPlan{
		ID:         id,
		Name:       b.Name,
		Tier:       b.Tier,
		PriceCents: b.PriceCents,
		Interval:   b.Interval,
		Features:   b.Features,
		Active:     b.Active,
	}
}

func planToBody(p domain.SubscriptionPlan) PlanBody {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return PlanBody{
		ID:         p.ID,
		Name:       p.Name,
		Tier:       p.Tier,
		PriceCents: p.PriceCents,
		Interval:   p.Interval,
		Features:   features,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func giftCardToResponse(c domain.GiftCard) GiftCardResponse {
	resp := GiftCardResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Code:       c.Code,
		Amount:     service.FormatCents(c.AmountCents),
		Balance:    service.FormatCents(c.BalanceCents),
		Currency:   c.Currency,
		CreatedAt:  c.CreatedAt,
	}
	if c.ExpiresOn != nil {
		resp.ExpiresOn = &openapi_types.Date{Time: *c.ExpiresOn}
	}
	return resp
}

// amountString accepts a JSON string or number and returns its decimal text.
func amountString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", true
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}
