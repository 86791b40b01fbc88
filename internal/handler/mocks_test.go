package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/guidebook/internal/auth"
	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/handler"
	"github.com/pkordes/guidebook/internal/mockgen"
	"github.com/pkordes/guidebook/internal/service"
	"github.com/pkordes/guidebook/internal/taxonomy"
)

// ---- mocks -----------------------------------------------------------------
// Set only the method fields your test needs.

type mockAuthServicer struct {
	signUp      func(ctx context.Context, email, password, name string) (auth.Session, error)
	signIn      func(ctx context.Context, email, password string) (auth.Session, error)
	signOut     func(ctx context.Context, token string) error
	sessionUser func(ctx context.Context, token string) (auth.Session, error)
}

func (m *mockAuthServicer) SignUp(ctx context.Context, email, password, name string) (auth.Session, error) {
	return m.signUp(ctx, email, password, name)
}
func (m *mockAuthServicer) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	return m.signIn(ctx, email, password)
}
func (m *mockAuthServicer) SignOut(ctx context.Context, token string) error {
	return m.signOut(ctx, token)
}
func (m *mockAuthServicer) SessionUser(ctx context.Context, token string) (auth.Session, error) {
	return m.sessionUser(ctx, token)
}

type mockCollectionServicer struct {
	create      func(ctx context.Context, userID uuid.UUID, name string) (domain.Collection, error)
	list        func(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error)
	delete      func(ctx context.Context, userID, id uuid.UUID) error
	listSaved   func(ctx context.Context, userID, collectionID uuid.UUID) ([]domain.SavedRestaurant, error)
	deleteSaved func(ctx context.Context, userID, id uuid.UUID) error
	save        func(ctx context.Context, userID uuid.UUID, req service.SaveRequest) (domain.SavedRestaurant, error)
}

func (m *mockCollectionServicer) Create(ctx context.Context, userID uuid.UUID, name string) (domain.Collection, error) {
	return m.create(ctx, userID, name)
}
func (m *mockCollectionServicer) List(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error) {
	return m.list(ctx, userID)
}
func (m *mockCollectionServicer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}
func (m *mockCollectionServicer) ListSaved(ctx context.Context, userID, collectionID uuid.UUID) ([]domain.SavedRestaurant, error) {
	return m.listSaved(ctx, userID, collectionID)
}
func (m *mockCollectionServicer) DeleteSaved(ctx context.Context, userID, id uuid.UUID) error {
	return m.deleteSaved(ctx, userID, id)
}
func (m *mockCollectionServicer) Save(ctx context.Context, userID uuid.UUID, req service.SaveRequest) (domain.SavedRestaurant, error) {
	return m.save(ctx, userID, req)
}

type mockShareServicer struct {
	share   func(ctx context.Context, userID, collectionID uuid.UUID, expiresInHours *int) (domain.ShareLink, error)
	resolve func(ctx context.Context, token string) (domain.SharedCollection, error)
}

func (m *mockShareServicer) Share(ctx context.Context, userID, collectionID uuid.UUID, expiresInHours *int) (domain.ShareLink, error) {
	return m.share(ctx, userID, collectionID, expiresInHours)
}
func (m *mockShareServicer) Resolve(ctx context.Context, token string) (domain.SharedCollection, error) {
	return m.resolve(ctx, token)
}

type mockPreferenceServicer struct {
	get    func(ctx context.Context, userID uuid.UUID) (domain.UserPreference, error)
	update func(ctx context.Context, p domain.UserPreference) (domain.UserPreference, error)
}

func (m *mockPreferenceServicer) Get(ctx context.Context, userID uuid.UUID) (domain.UserPreference, error) {
	return m.get(ctx, userID)
}
func (m *mockPreferenceServicer) Update(ctx context.Context, p domain.UserPreference) (domain.UserPreference, error) {
	return m.update(ctx, p)
}

type mockAdminServicer struct {
	grantAdmin func(ctx context.Context, email string) (domain.User, error)
	overview   func(ctx context.Context) (service.Overview, error)
}

func (m *mockAdminServicer) GrantAdmin(ctx context.Context, email string) (domain.User, error) {
	return m.grantAdmin(ctx, email)
}
func (m *mockAdminServicer) Overview(ctx context.Context) (service.Overview, error) {
	return m.overview(ctx)
}

type mockBusinessServicer struct {
	create          func(ctx context.Context, b domain.Business) (domain.Business, error)
	getByID         func(ctx context.Context, id uuid.UUID) (domain.Business, error)
	list            func(ctx context.Context, f domain.BusinessFilter, p domain.PaginationParams) (domain.Page[domain.Business], error)
	update          func(ctx context.Context, b domain.Business) (domain.Business, error)
	delete          func(ctx context.Context, id uuid.UUID) error
	setSubscription func(ctx context.Context, id uuid.UUID, planID *uuid.UUID) (domain.Business, error)
}

func (m *mockBusinessServicer) Create(ctx context.Context, b domain.Business) (domain.Business, error) {
	return m.create(ctx, b)
}
func (m *mockBusinessServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Business, error) {
	return m.getByID(ctx, id)
}
func (m *mockBusinessServicer) List(ctx context.Context, f domain.BusinessFilter, p domain.PaginationParams) (domain.Page[domain.Business], error) {
	return m.list(ctx, f, p)
}
func (m *mockBusinessServicer) Update(ctx context.Context, b domain.Business) (domain.Business, error) {
	return m.update(ctx, b)
}
func (m *mockBusinessServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockBusinessServicer) SetSubscription(ctx context.Context, id uuid.UUID, planID *uuid.UUID) (domain.Business, error) {
	return m.setSubscription(ctx, id, planID)
}

type mockPlanServicer struct {
	create  func(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.SubscriptionPlan, error)
	list    func(ctx context.Context) ([]domain.SubscriptionPlan, error)
	update  func(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPlanServicer) Create(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error) {
	return m.create(ctx, p)
}
func (m *mockPlanServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.SubscriptionPlan, error) {
	return m.getByID(ctx, id)
}
func (m *mockPlanServicer) List(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	return m.list(ctx)
}
func (m *mockPlanServicer) Update(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error) {
	return m.update(ctx, p)
}
func (m *mockPlanServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockGiftCardServicer struct {
	create  func(ctx context.Context, in service.GiftCardInput) (domain.GiftCard, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.GiftCard, error)
	list    func(ctx context.Context, businessID *uuid.UUID) ([]domain.GiftCard, error)
	redeem  func(ctx context.Context, id uuid.UUID, amount string) (domain.GiftCard, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockGiftCardServicer) Create(ctx context.Context, in service.GiftCardInput) (domain.GiftCard, error) {
	return m.create(ctx, in)
}
func (m *mockGiftCardServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.GiftCard, error) {
	return m.getByID(ctx, id)
}
func (m *mockGiftCardServicer) List(ctx context.Context, businessID *uuid.UUID) ([]domain.GiftCard, error) {
	return m.list(ctx, businessID)
}
func (m *mockGiftCardServicer) Redeem(ctx context.Context, id uuid.UUID, amount string) (domain.GiftCard, error) {
	return m.redeem(ctx, id, amount)
}
func (m *mockGiftCardServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockAmenityServicer struct {
	create func(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error)
	list   func(ctx context.Context, category *domain.Category) ([]domain.AmenityOption, error)
	update func(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockAmenityServicer) Create(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error) {
	return m.create(ctx, a)
}
func (m *mockAmenityServicer) List(ctx context.Context, category *domain.Category) ([]domain.AmenityOption, error) {
	return m.list(ctx, category)
}
func (m *mockAmenityServicer) Update(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error) {
	return m.update(ctx, a)
}
func (m *mockAmenityServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time checks: every mock must satisfy its handler interface.
var (
	_ handler.AuthServicer       = (*mockAuthServicer)(nil)
	_ handler.CollectionServicer = (*mockCollectionServicer)(nil)
	_ handler.ShareServicer      = (*mockShareServicer)(nil)
	_ handler.PreferenceServicer = (*mockPreferenceServicer)(nil)
	_ handler.AdminServicer      = (*mockAdminServicer)(nil)
	_ handler.BusinessServicer   = (*mockBusinessServicer)(nil)
	_ handler.PlanServicer       = (*mockPlanServicer)(nil)
	_ handler.GiftCardServicer   = (*mockGiftCardServicer)(nil)
	_ handler.AmenityServicer    = (*mockAmenityServicer)(nil)

	_ handler.SelectionServicer = (*service.SelectionService)(nil)
	_ handler.SearchServicer    = (*service.SearchService)(nil)
)

// ---- harness ---------------------------------------------------------------

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	testUser  = domain.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada", Role: domain.RoleUser}
	testAdmin = domain.User{ID: uuid.New(), Email: "root@example.com", Name: "Root", Role: domain.RoleAdmin}
)

// harness wires a Server with real selection and search services and
// mocks for everything that would touch the database. Mock fields may be
// set after construction; the server holds the same pointers.
type harness struct {
	auth        *mockAuthServicer
	collections *mockCollectionServicer
	shares      *mockShareServicer
	preferences *mockPreferenceServicer
	admin       *mockAdminServicer
	businesses  *mockBusinessServicer
	plans       *mockPlanServicer
	giftCards   *mockGiftCardServicer
	amenities   *mockAmenityServicer

	h http.Handler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		auth: &mockAuthServicer{
			sessionUser: func(_ context.Context, token string) (auth.Session, error) {
				switch token {
				case userToken:
					return auth.Session{Token: token, User: testUser}, nil
				case adminToken:
					return auth.Session{Token: token, User: testAdmin}, nil
				}
				return auth.Session{}, domain.ErrUnauthenticated
			},
		},
		collections: &mockCollectionServicer{},
		shares:      &mockShareServicer{},
		preferences: &mockPreferenceServicer{},
		admin:       &mockAdminServicer{},
		businesses:  &mockBusinessServicer{},
		plans:       &mockPlanServicer{},
		giftCards:   &mockGiftCardServicer{},
		amenities:   &mockAmenityServicer{},
	}

	gen := mockgen.New(rand.New(rand.NewPCG(1, 2)), 0)
	srv := handler.NewServer(handler.Services{
		Selection:   service.NewSelectionService(taxonomy.Default()),
		Search:      service.NewSearchService(gen, service.NewResultBoard()),
		Auth:        h.auth,
		Collections: h.collections,
		Shares:      h.shares,
		Preferences: h.preferences,
		Admin:       h.admin,
		Businesses:  h.businesses,
		Plans:       h.plans,
		GiftCards:   h.giftCards,
		Amenities:   h.amenities,
	}, handler.Options{
		CORSOrigins:  []string{"http://localhost:5173"},
		PublicOrigin: "https://guide.example.com",
		SignInPath:   "/signin",
		CookieSecure: true,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.h = srv.Routes()
	return h
}

// do sends a request through the full router. body is JSON-encoded unless nil.
// A non-empty token is sent as a Bearer header.
func (h *harness) do(t *testing.T, method, path string, body any, token string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = jsonBody(t, body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.h.ServeHTTP(rec, req)
	return rec
}

func newRequest(method, path string, body io.Reader) (*http.Request, *httptest.ResponseRecorder) {
	return httptest.NewRequest(method, path, body), httptest.NewRecorder()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

// errorBody mirrors the error envelope, including the sign-in hint on 401s.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	SignInURL string `json:"sign_in_url"`
}

func fixedTime() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}
