package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field; set only the ones a test needs.
// Calling an unset field panics, which flags an unexpected repo call.

type mockUserRepo struct {
	create         func(ctx context.Context, u domain.User) (domain.User, error)
	getByID        func(ctx context.Context, id uuid.UUID) (domain.User, error)
	getByEmail     func(ctx context.Context, email string) (domain.User, error)
	setRoleByEmail func(ctx context.Context, email string, role domain.Role) (domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.create(ctx, u)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserRepo) SetRoleByEmail(ctx context.Context, email string, role domain.Role) (domain.User, error) {
	return m.setRoleByEmail(ctx, email, role)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

type mockSessionRepo struct {
	create        func(ctx context.Context, s domain.Session) (domain.Session, error)
	get           func(ctx context.Context, token string) (domain.Session, error)
	delete        func(ctx context.Context, token string) error
	deleteExpired func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepo) Create(ctx context.Context, s domain.Session) (domain.Session, error) {
	return m.create(ctx, s)
}
func (m *mockSessionRepo) Get(ctx context.Context, token string) (domain.Session, error) {
	return m.get(ctx, token)
}
func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	return m.delete(ctx, token)
}
func (m *mockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	return m.deleteExpired(ctx)
}

var _ repo.SessionRepo = (*mockSessionRepo)(nil)

type mockCollectionRepo struct {
	create          func(ctx context.Context, userID uuid.UUID, name string) (domain.Collection, error)
	getByID         func(ctx context.Context, userID, id uuid.UUID) (domain.Collection, error)
	getByIDUnscoped func(ctx context.Context, id uuid.UUID) (domain.Collection, error)
	listByUser      func(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error)
	delete          func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockCollectionRepo) Create(ctx context.Context, userID uuid.UUID, name string) (domain.Collection, error) {
	return m.create(ctx, userID, name)
}
func (m *mockCollectionRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Collection, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockCollectionRepo) GetByIDUnscoped(ctx context.Context, id uuid.UUID) (domain.Collection, error) {
	return m.getByIDUnscoped(ctx, id)
}
func (m *mockCollectionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error) {
	return m.listByUser(ctx, userID)
}
func (m *mockCollectionRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

var _ repo.CollectionRepo = (*mockCollectionRepo)(nil)

type mockSavedRepo struct {
	create           func(ctx context.Context, s domain.SavedRestaurant) (domain.SavedRestaurant, error)
	listByCollection func(ctx context.Context, collectionID uuid.UUID) ([]domain.SavedRestaurant, error)
	delete           func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockSavedRepo) Create(ctx context.Context, s domain.SavedRestaurant) (domain.SavedRestaurant, error) {
	return m.create(ctx, s)
}
func (m *mockSavedRepo) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.SavedRestaurant, error) {
	return m.listByCollection(ctx, collectionID)
}
func (m *mockSavedRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

var _ repo.SavedRepo = (*mockSavedRepo)(nil)

type mockShareRepo struct {
	create     func(ctx context.Context, l domain.ShareLink) (domain.ShareLink, error)
	getByToken func(ctx context.Context, token string) (domain.ShareLink, error)
}

func (m *mockShareRepo) Create(ctx context.Context, l domain.ShareLink) (domain.ShareLink, error) {
	return m.create(ctx, l)
}
func (m *mockShareRepo) GetByToken(ctx context.Context, token string) (domain.ShareLink, error) {
	return m.getByToken(ctx, token)
}

var _ repo.ShareRepo = (*mockShareRepo)(nil)

type mockBusinessRepo struct {
	create          func(ctx context.Context, b domain.Business) (domain.Business, error)
	getByID         func(ctx context.Context, id uuid.UUID) (domain.Business, error)
	list            func(ctx context.Context, f domain.BusinessFilter, p domain.PaginationParams) (domain.Page[domain.Business], error)
	update          func(ctx context.Context, b domain.Business) (domain.Business, error)
	setSubscription func(ctx context.Context, id uuid.UUID, planID *uuid.UUID) (domain.Business, error)
	delete          func(ctx context.Context, id uuid.UUID) error
	count           func(ctx context.Context) (int64, error)
}

func (m *mockBusinessRepo) Create(ctx context.Context, b domain.Business) (domain.Business, error) {
	return m.create(ctx, b)
}
func (m *mockBusinessRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Business, error) {
	return m.getByID(ctx, id)
}
func (m *mockBusinessRepo) List(ctx context.Context, f domain.BusinessFilter, p domain.PaginationParams) (domain.Page[domain.Business], error) {
	return m.list(ctx, f, p)
}
func (m *mockBusinessRepo) Update(ctx context.Context, b domain.Business) (domain.Business, error) {
	return m.update(ctx, b)
}
func (m *mockBusinessRepo) SetSubscription(ctx context.Context, id uuid.UUID, planID *uuid.UUID) (domain.Business, error) {
	return m.setSubscription(ctx, id, planID)
}
func (m *mockBusinessRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockBusinessRepo) Count(ctx context.Context) (int64, error) {
	return m.count(ctx)
}

var _ repo.BusinessRepo = (*mockBusinessRepo)(nil)

type mockPlanRepo struct {
	create  func(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.SubscriptionPlan, error)
	list    func(ctx context.Context) ([]domain.SubscriptionPlan, error)
	update  func(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error)
	delete  func(ctx context.Context, id uuid.UUID) error
	count   func(ctx context.Context) (int64, error)
}

func (m *mockPlanRepo) Create(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error) {
	return m.create(ctx, p)
}
func (m *mockPlanRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.SubscriptionPlan, error) {
	return m.getByID(ctx, id)
}
func (m *mockPlanRepo) List(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	return m.list(ctx)
}
func (m *mockPlanRepo) Update(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error) {
	return m.update(ctx, p)
}
func (m *mockPlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockPlanRepo) Count(ctx context.Context) (int64, error) {
	return m.count(ctx)
}

var _ repo.PlanRepo = (*mockPlanRepo)(nil)

type mockGiftCardRepo struct {
	create  func(ctx context.Context, g domain.GiftCard) (domain.GiftCard, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.GiftCard, error)
	list    func(ctx context.Context, businessID *uuid.UUID) ([]domain.GiftCard, error)
	redeem  func(ctx context.Context, id uuid.UUID, amountCents int64) (domain.GiftCard, error)
	delete  func(ctx context.Context, id uuid.UUID) error
	count   func(ctx context.Context) (int64, error)
}

func (m *mockGiftCardRepo) Create(ctx context.Context, g domain.GiftCard) (domain.GiftCard, error) {
	return m.create(ctx, g)
}
func (m *mockGiftCardRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.GiftCard, error) {
	return m.getByID(ctx, id)
}
func (m *mockGiftCardRepo) List(ctx context.Context, businessID *uuid.UUID) ([]domain.GiftCard, error) {
	return m.list(ctx, businessID)
}
func (m *mockGiftCardRepo) Redeem(ctx context.Context, id uuid.UUID, amountCents int64) (domain.GiftCard, error) {
	return m.redeem(ctx, id, amountCents)
}
func (m *mockGiftCardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockGiftCardRepo) Count(ctx context.Context) (int64, error) {
	return m.count(ctx)
}

var _ repo.GiftCardRepo = (*mockGiftCardRepo)(nil)

type mockAmenityRepo struct {
	create func(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error)
	list   func(ctx context.Context, category *domain.Category) ([]domain.AmenityOption, error)
	update func(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error)
	delete func(ctx context.Context, id uuid.UUID) error
	count  func(ctx context.Context) (int64, error)
}

func (m *mockAmenityRepo) Create(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error) {
	return m.create(ctx, a)
}
func (m *mockAmenityRepo) List(ctx context.Context, category *domain.Category) ([]domain.AmenityOption, error) {
	return m.list(ctx, category)
}
func (m *mockAmenityRepo) Update(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error) {
	return m.update(ctx, a)
}
func (m *mockAmenityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockAmenityRepo) Count(ctx context.Context) (int64, error) {
	return m.count(ctx)
}

var _ repo.AmenityRepo = (*mockAmenityRepo)(nil)

type mockPreferenceRepo struct {
	get    func(ctx context.Context, userID uuid.UUID) (domain.UserPreference, error)
	upsert func(ctx context.Context, p domain.UserPreference) (domain.UserPreference, error)
}

func (m *mockPreferenceRepo) Get(ctx context.Context, userID uuid.UUID) (domain.UserPreference, error) {
	return m.get(ctx, userID)
}
func (m *mockPreferenceRepo) Upsert(ctx context.Context, p domain.UserPreference) (domain.UserPreference, error) {
	return m.upsert(ctx, p)
}

var _ repo.PreferenceRepo = (*mockPreferenceRepo)(nil)

func count(n int64) func(context.Context) (int64, error) {
	return func(context.Context) (int64, error) { return n, nil }
}
