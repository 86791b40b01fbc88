// Package handler implements the HTTP handlers for the Guidebook API.
// All handlers are methods on Server. Methods are split into resource files
// (locations.go, search.go, collections.go, ...) but share the same Server
// struct so they can reach its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/pkordes/guidebook/internal/auth"
	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/middleware"
	"github.com/pkordes/guidebook/internal/mockgen"
	"github.com/pkordes/guidebook/internal/selection"
	"github.com/pkordes/guidebook/internal/service"
	"github.com/pkordes/guidebook/internal/taxonomy"
)

// SelectionServicer drives the location picker.
// Defining the interface here (in the consumer package) lets handler tests
// inject a fake without touching the service layer.
type SelectionServicer interface {
	Taxonomy() *taxonomy.Taxonomy
	Apply(state selection.State, stage selection.Stage, value string) (selection.State, selection.Options, error)
	Options(state selection.State) selection.Options
	ResolveCity(state selection.State, query string) (selection.State, taxonomy.Place, error)
}

// SearchServicer runs mock searches and exposes the latest-results board.
type SearchServicer interface {
	Search(ctx context.Context, sessionKey string, q mockgen.Query) (service.Batch, error)
	Latest(ctx context.Context, sessionKey string) (service.Batch, error)
	Forget(sessionKey string)
}

// AuthServicer defines the account and session operations.
type AuthServicer interface {
	SignUp(ctx context.Context, email, password, name string) (auth.Session, error)
	SignIn(ctx context.Context, email, password string) (auth.Session, error)
	SignOut(ctx context.Context, token string) error
	SessionUser(ctx context.Context, token string) (auth.Session, error)
}

// CollectionServicer defines the per-user collection operations.
type CollectionServicer interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (domain.Collection, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListSaved(ctx context.Context, userID, collectionID uuid.UUID) ([]domain.SavedRestaurant, error)
	DeleteSaved(ctx context.Context, userID, id uuid.UUID) error
	Save(ctx context.Context, userID uuid.UUID, req service.SaveRequest) (domain.SavedRestaurant, error)
}

// ShareServicer issues and resolves share links.
type ShareServicer interface {
	Share(ctx context.Context, userID, collectionID uuid.UUID, expiresInHours *int) (domain.ShareLink, error)
	Resolve(ctx context.Context, token string) (domain.SharedCollection, error)
}

// PreferenceServicer reads and writes the signed-in user's defaults.
type PreferenceServicer interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.UserPreference, error)
	Update(ctx context.Context, p domain.UserPreference) (domain.UserPreference, error)
}

// AdminServicer backs the admin dashboard.
type AdminServicer interface {
	GrantAdmin(ctx context.Context, email string) (domain.User, error)
	Overview(ctx context.Context) (service.Overview, error)
}

// BusinessServicer defines the admin business-listing operations.
type BusinessServicer interface {
	Create(ctx context.Context, b domain.Business) (domain.Business, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Business, error)
	List(ctx context.Context, f domain.BusinessFilter, p domain.PaginationParams) (domain.Page[domain.Business], error)
	Update(ctx context.Context, b domain.Business) (domain.Business, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetSubscription(ctx context.Context, id uuid.UUID, planID *uuid.UUID) (domain.Business, error)
}

// PlanServicer defines the subscription-plan operations.
type PlanServicer interface {
	Create(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.SubscriptionPlan, error)
	List(ctx context.Context) ([]domain.SubscriptionPlan, error)
	Update(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GiftCardServicer defines the gift-card operations.
type GiftCardServicer interface {
	Create(ctx context.Context, in service.GiftCardInput) (domain.GiftCard, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.GiftCard, error)
	List(ctx context.Context, businessID *uuid.UUID) ([]domain.GiftCard, error)
	Redeem(ctx context.Context, id uuid.UUID, amount string) (domain.GiftCard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AmenityServicer defines the amenity-option operations.
type AmenityServicer interface {
	Create(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error)
	List(ctx context.Context, category *domain.Category) ([]domain.AmenityOption, error)
	Update(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Services groups every dependency the handlers call into.
type Services struct {
	Selection   SelectionServicer
	Search      SearchServicer
	Auth        AuthServicer
	Collections CollectionServicer
	Shares      ShareServicer
	Preferences PreferenceServicer
	Admin       AdminServicer
	Businesses  BusinessServicer
	Plans       PlanServicer
	GiftCards   GiftCardServicer
	Amenities   AmenityServicer
}

// Options carries the HTTP-facing settings taken from config.
type Options struct {
	CORSOrigins  []string
	PublicOrigin string
	SignInPath   string
	CookieSecure bool
	MaxBodyBytes int64
}

// Server holds the handler dependencies. Mount it with Routes.
type Server struct {
	svc  Services
	opts Options
	log  *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svc Services, opts Options, log *slog.Logger) *Server {
	if opts.SignInPath == "" {
		opts.SignInPath = "/signin"
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{svc: svc, opts: opts, log: log}
}

// Routes returns the fully assembled router.
// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer,
// then CORS, the body limit, locale negotiation and session lookup.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(s.log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(s.opts.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(s.opts.MaxBodyBytes))
	r.Use(middleware.NewLocaleHandler())
	r.Use(middleware.NewAuthenticator(s.svc.Auth, s.log))

	r.Get("/healthz", s.getHealth)
	r.Get("/openapi.yaml", s.getOpenAPI)

	r.Get("/locations", s.getLocations)
	r.Get("/locations/cities", s.getCities)
	r.Get("/categories", s.getCategories)
	r.Post("/selection", s.postSelection)
	r.Post("/cities/resolve", s.postResolveCity)

	r.Post("/search", s.postSearch)
	r.Post("/search/export", s.postSearchExport)
	r.Get("/shared/{token}", s.getShared)

	r.Post("/auth/signup", s.postSignUp)
	r.Post("/auth/signin", s.postSignIn)
	r.Post("/auth/signout", s.postSignOut)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(s.opts.SignInPath))

		r.Get("/auth/me", s.getMe)
		r.Get("/search/latest", s.getLatest)
		r.Get("/search/latest/export", s.getLatestExport)

		r.Get("/collections", s.listCollections)
		r.Post("/collections", s.createCollection)
		r.Delete("/collections/{id}", s.deleteCollection)
		r.Get("/collections/{id}/saved", s.listSaved)
		r.Post("/collections/{id}/share", s.shareCollection)
		r.Delete("/saved/{id}", s.deleteSaved)
		r.Post("/saves", s.postSave)

		r.Get("/me/preferences", s.getPreferences)
		r.Put("/me/preferences", s.putPreferences)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(s.opts.SignInPath))

		r.Get("/overview", s.getOverview)
		r.Post("/grants", s.postGrant)

		r.Get("/businesses", s.listBusinesses)
		r.Post("/businesses", s.createBusiness)
		r.Get("/businesses/{id}", s.getBusiness)
		r.Put("/businesses/{id}", s.updateBusiness)
		r.Delete("/businesses/{id}", s.deleteBusiness)
		r.Put("/businesses/{id}/subscription", s.putSubscription)

		r.Get("/subscription-plans", s.listPlans)
		r.Post("/subscription-plans", s.createPlan)
		r.Get("/subscription-plans/{id}", s.getPlan)
		r.Put("/subscription-plans/{id}", s.updatePlan)
		r.Delete("/subscription-plans/{id}", s.deletePlan)

		r.Get("/gift-cards", s.listGiftCards)
		r.Post("/gift-cards", s.createGiftCard)
		r.Get("/gift-cards/{id}", s.getGiftCard)
		r.Delete("/gift-cards/{id}", s.deleteGiftCard)
		r.Post("/gift-cards/{id}/redeem", s.redeemGiftCard)

		r.Get("/amenities", s.listAmenities)
		r.Post("/amenities", s.createAmenity)
		r.Put("/amenities/{id}", s.updateAmenity)
		r.Delete("/amenities/{id}", s.deleteAmenity)
	})

	return r
}
