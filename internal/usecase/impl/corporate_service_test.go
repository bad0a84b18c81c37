package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// corporateServiceFixtures holds all test dependencies for corporate service tests.
type corporateServiceFixtures struct {
	service       usecase.CorporateUsecase
	userRepo      *mockUserRepository
	corporateRepo *mockCorporateRepository
}

func createTestCorporateService(t *testing.T) corporateServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	corporateRepo := &mockCorporateRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		users:      userRepo,
		corporates: corporateRepo,
	}}

	return corporateServiceFixtures{
		service:       NewCorporateService(txManager, corporateRepo, logger),
		userRepo:      userRepo,
		corporateRepo: corporateRepo,
	}
}

func TestCorporateService_Create_Success(t *testing.T) {
	fixtures := createTestCorporateService(t)
	ctx := context.Background()

	ownerID := uuid.New()
	planID := uuid.New()

	fixtures.userRepo.On("FindByID", ctx, ownerID).
		Return(&entity.User{ID: ownerID, Email: "Owner@Example.com"}, nil)
	fixtures.corporateRepo.On("FindPlanByID", ctx, planID).
		Return(&entity.SubscriptionPlan{ID: planID, Name: "Team"}, nil)
	fixtures.corporateRepo.On("Create", ctx, mock.AnythingOfType("*entity.Corporate")).
		Run(func(args mock.Arguments) {
			corporate := args.Get(1).(*entity.Corporate)
			corporate.ID = uuid.New()
		}).
		Return(nil)

	corporate, err := fixtures.service.Create(ctx, &usecase.CreateCorporateInput{
		Name:           "Acme GmbH",
		OwnerUserID:    ownerID,
		OwnerEmail:     "owner@example.com", // case differs from the registry
		Seats:          10,
		SubscriptionID: &planID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Team", corporate.PlanName)
	assert.Equal(t, "Owner@Example.com", corporate.OwnerEmail)
}

func TestCorporateService_Create_OwnerEmailMismatch(t *testing.T) {
	fixtures := createTestCorporateService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fixtures.userRepo.On("FindByID", ctx, ownerID).
		Return(&entity.User{ID: ownerID, Email: "owner@example.com"}, nil)

	_, err := fixtures.service.Create(ctx, &usecase.CreateCorporateInput{
		Name:        "Acme GmbH",
		OwnerUserID: ownerID,
		OwnerEmail:  "someone-else@example.com",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fixtures.corporateRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCorporateService_Create_UnknownPlan(t *testing.T) {
	fixtures := createTestCorporateService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	planID := uuid.New()

	fixtures.userRepo.On("FindByID", ctx, ownerID).
		Return(&entity.User{ID: ownerID, Email: "owner@example.com"}, nil)
	fixtures.corporateRepo.On("FindPlanByID", ctx, planID).
		Return(nil, repository.ErrPlanNotFound)

	_, err := fixtures.service.Create(ctx, &usecase.CreateCorporateInput{
		Name:           "Acme GmbH",
		OwnerUserID:    ownerID,
		OwnerEmail:     "owner@example.com",
		SubscriptionID: &planID,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPlanNotFound))
}

func TestCorporateService_MergeEmployees_Success(t *testing.T) {
	fixtures := createTestCorporateService(t)
	ctx := context.Background()

	corporateID := uuid.New()
	existingID := uuid.New()
	newID := uuid.New()

	fixtures.corporateRepo.On("FindByID", ctx, corporateID).Return(&entity.Corporate{
		ID:    corporateID,
		Seats: 5,
		Employees: []entity.Employee{
			{UserID: existingID, Email: "first@example.com", Name: "First"},
		},
	}, nil)
	fixtures.userRepo.On("FindByID", ctx, newID).
		Return(&entity.User{ID: newID, Email: "second@example.com", Name: "Second"}, nil)
	fixtures.corporateRepo.On("UpdateEmployees", ctx, corporateID, mock.AnythingOfType("[]entity.Employee")).
		Return(nil)

	corporate, err := fixtures.service.MergeEmployees(ctx, corporateID, []usecase.EmployeeInput{
		{UserID: newID, Email: "SECOND@example.com"},
	})

	require.NoError(t, err)
	require.Len(t, corporate.Employees, 2)
	// Existing entries keep their position; new ones append.
	assert.Equal(t, existingID, corporate.Employees[0].UserID)
	assert.Equal(t, newID, corporate.Employees[1].UserID)
	// Name falls back to the registry when the batch omits it.
	assert.Equal(t, "Second", corporate.Employees[1].Name)
}

func TestCorporateService_MergeEmployees_EmailMismatchWritesNothing(t *testing.T) {
	fixtures := createTestCorporateService(t)
	ctx := context.Background()

	corporateID := uuid.New()
	okID := uuid.New()
	badID := uuid.New()

	fixtures.corporateRepo.On("FindByID", ctx, corporateID).
		Return(&entity.Corporate{ID: corporateID}, nil)
	fixtures.userRepo.On("FindByID", ctx, okID).
		Return(&entity.User{ID: okID, Email: "ok@example.com"}, nil)
	fixtures.userRepo.On("FindByID", ctx, badID).
		Return(&entity.User{ID: badID, Email: "real@example.com"}, nil)

	_, err := fixtures.service.MergeEmployees(ctx, corporateID, []usecase.EmployeeInput{
		{UserID: okID, Email: "ok@example.com"},
		{UserID: badID, Email: "forged@example.com"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmployeeEmailMismatch))
	fixtures.corporateRepo.AssertNotCalled(t, "UpdateEmployees", mock.Anything, mock.Anything, mock.Anything)
}

func TestCorporateService_MergeEmployees_UnknownUserWritesNothing(t *testing.T) {
	fixtures := createTestCorporateService(t)
	ctx := context.Background()

	corporateID := uuid.New()
	ghostID := uuid.New()

	fixtures.corporateRepo.On("FindByID", ctx, corporateID).
		Return(&entity.Corporate{ID: corporateID}, nil)
	fixtures.userRepo.On("FindByID", ctx, ghostID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.MergeEmployees(ctx, corporateID, []usecase.EmployeeInput{
		{UserID: ghostID, Email: "ghost@example.com"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	fixtures.corporateRepo.AssertNotCalled(t, "UpdateEmployees", mock.Anything, mock.Anything, mock.Anything)
}

func TestCorporateService_MergeEmployees_SeatCapExceeded(t *testing.T) {
	fixtures := createTestCorporateService(t)
	ctx := context.Background()

	corporateID := uuid.New()
	memberID := uuid.New()
	newID := uuid.New()

	fixtures.corporateRepo.On("FindByID", ctx, corporateID).Return(&entity.Corporate{
		ID:    corporateID,
		Seats: 1,
		Employees: []entity.Employee{
			{UserID: memberID, Email: "member@example.com"},
		},
	}, nil)
	fixtures.userRepo.On("FindByID", ctx, newID).
		Return(&entity.User{ID: newID, Email: "extra@example.com"}, nil)

	_, err := fixtures.service.MergeEmployees(ctx, corporateID, []usecase.EmployeeInput{
		{UserID: newID, Email: "extra@example.com"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSeatLimitExceeded))
	fixtures.corporateRepo.AssertNotCalled(t, "UpdateEmployees", mock.Anything, mock.Anything, mock.Anything)
}

func TestCorporateService_MergeEmployees_UpdateWithinCapSucceeds(t *testing.T) {
	fixtures := createTestCorporateService(t)
	ctx := context.Background()

	corporateID := uuid.New()
	memberID := uuid.New()

	fixtures.corporateRepo.On("FindByID", ctx, corporateID).Return(&entity.Corporate{
		ID:    corporateID,
		Seats: 1,
		Employees: []entity.Employee{
			{UserID: memberID, Email: "member@example.com", Name: "Old Name"},
		},
	}, nil)
	fixtures.userRepo.On("FindByID", ctx, memberID).
		Return(&entity.User{ID: memberID, Email: "member@example.com"}, nil)
	fixtures.corporateRepo.On("UpdateEmployees", ctx, corporateID, mock.AnythingOfType("[]entity.Employee")).
		Return(nil)

	corporate, err := fixtures.service.MergeEmployees(ctx, corporateID, []usecase.EmployeeInput{
		{UserID: memberID, Email: "member@example.com", Name: "New Name"},
	})

	require.NoError(t, err)
	require.Len(t, corporate.Employees, 1)
	assert.Equal(t, "New Name", corporate.Employees[0].Name)
}

func TestCorporateService_RemoveEmployee_AbsentIDIsNoOp(t *testing.T) {
	fixtures := createTestCorporateService(t)
	ctx := context.Background()

	corporateID := uuid.New()
	memberID := uuid.New()

	fixtures.corporateRepo.On("FindByID", ctx, corporateID).Return(&entity.Corporate{
		ID: corporateID,
		Employees: []entity.Employee{
			{UserID: memberID, Email: "member@example.com"},
		},
	}, nil)

	corporate, err := fixtures.service.RemoveEmployee(ctx, corporateID, uuid.New())

	require.NoError(t, err)
	require.Len(t, corporate.Employees, 1)
	fixtures.corporateRepo.AssertNotCalled(t, "UpdateEmployees", mock.Anything, mock.Anything, mock.Anything)
}

func TestCorporateService_RemoveEmployee_RemovesMatch(t *testing.T) {
	fixtures := createTestCorporateService(t)
	ctx := context.Background()

	corporateID := uuid.New()
	memberID := uuid.New()

	fixtures.corporateRepo.On("FindByID", ctx, corporateID).Return(&entity.Corporate{
		ID: corporateID,
		Employees: []entity.Employee{
			{UserID: memberID, Email: "member@example.com"},
		},
	}, nil)
	fixtures.corporateRepo.On("UpdateEmployees", ctx, corporateID, mock.AnythingOfType("[]entity.Employee")).
		Return(nil)

	corporate, err := fixtures.service.RemoveEmployee(ctx, corporateID, memberID)

	require.NoError(t, err)
	assert.Empty(t, corporate.Employees)
}
