package impl

import (
	"context"
	"io"
	"time"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeTxManager runs the callback directly against a fixed factory, standing
// in for a real database transaction.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.factory)
}

// fakeRepoFactory hands out the repositories it was built with.
type fakeRepoFactory struct {
	users      repository.UserRepository
	corporates repository.CorporateRepository
}

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository {
	return f.users
}

func (f *fakeRepoFactory) NewCorporateRepository() repository.CorporateRepository {
	return f.corporates
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) FindByAuthID(ctx context.Context, authID string) (*entity.User, error) {
	args := m.Called(ctx, authID)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) TouchLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockUserRepository) UpsertDetails(ctx context.Context, authID, email, name, phone string) (*entity.User, error) {
	args := m.Called(ctx, authID, email, name, phone)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

type mockRestaurantRepository struct {
	mock.Mock
}

func (m *mockRestaurantRepository) List(ctx context.Context, filter repository.RestaurantFilter) ([]*entity.Restaurant, int64, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]*entity.Restaurant)

	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	restaurant, _ := args.Get(0).(*entity.Restaurant)

	return restaurant, args.Error(1)
}

func (m *mockRestaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	args := m.Called(ctx, restaurant)

	return args.Error(0)
}

func (m *mockRestaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	args := m.Called(ctx, restaurant)

	return args.Error(0)
}

func (m *mockRestaurantRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockRestaurantRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockStoreRepository struct {
	mock.Mock
}

func (m *mockStoreRepository) List(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, int64, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]*entity.Store)

	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockStoreRepository) FindByID(ctx context.Context, id uuid.UUID, include repository.StoreInclude) (*entity.Store, error) {
	args := m.Called(ctx, id, include)
	store, _ := args.Get(0).(*entity.Store)

	return store, args.Error(1)
}

func (m *mockStoreRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockStoreRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockHeroOfferRepository struct {
	mock.Mock
}

func (m *mockHeroOfferRepository) ListActive(ctx context.Context) ([]*entity.HomeHeroOffer, error) {
	args := m.Called(ctx)
	offers, _ := args.Get(0).([]*entity.HomeHeroOffer)

	return offers, args.Error(1)
}

func (m *mockHeroOfferRepository) Create(ctx context.Context, offer *entity.HomeHeroOffer) error {
	args := m.Called(ctx, offer)

	return args.Error(0)
}

func (m *mockHeroOfferRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockSpotlightRepository struct {
	mock.Mock
}

func (m *mockSpotlightRepository) ListActive(ctx context.Context, moduleType string) ([]*entity.SpotlightItem, error) {
	args := m.Called(ctx, moduleType)
	items, _ := args.Get(0).([]*entity.SpotlightItem)

	return items, args.Error(1)
}

func (m *mockSpotlightRepository) FindByID(ctx context.Context, id int64) (*entity.SpotlightItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*entity.SpotlightItem)

	return item, args.Error(1)
}

func (m *mockSpotlightRepository) Create(ctx context.Context, item *entity.SpotlightItem) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *mockSpotlightRepository) Update(ctx context.Context, item *entity.SpotlightItem) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *mockSpotlightRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockSpotlightRepository) UpdateOrderIndex(ctx context.Context, id int64, orderIndex int) error {
	args := m.Called(ctx, id, orderIndex)

	return args.Error(0)
}

type mockCorporateRepository struct {
	mock.Mock
}

func (m *mockCorporateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Corporate, error) {
	args := m.Called(ctx, id)
	corporate, _ := args.Get(0).(*entity.Corporate)

	return corporate, args.Error(1)
}

func (m *mockCorporateRepository) Create(ctx context.Context, corporate *entity.Corporate) error {
	args := m.Called(ctx, corporate)

	return args.Error(0)
}

func (m *mockCorporateRepository) UpdateEmployees(ctx context.Context, id uuid.UUID, employees []entity.Employee) error {
	args := m.Called(ctx, id, employees)

	return args.Error(0)
}

func (m *mockCorporateRepository) FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionPlan, error) {
	args := m.Called(ctx, id)
	plan, _ := args.Get(0).(*entity.SubscriptionPlan)

	return plan, args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) IssueSession(identity, email, role string) (string, error) {
	args := m.Called(identity, email, role)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateSession(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.SessionClaims)

	return claims, args.Error(1)
}

func (m *mockTokenService) SessionDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockMediaStorage struct {
	mock.Mock
}

func (m *mockMediaStorage) Save(ctx context.Context, filename string, contentType string, content io.Reader) (string, error) {
	args := m.Called(ctx, filename, contentType, content)

	return args.String(0), args.Error(1)
}
