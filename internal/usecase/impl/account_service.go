package impl

import (
	"context"
	"log/slog"

	"bistro/config"
	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	batchLimit   int
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Config       *config.Config `optional:"true"`
	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	batchLimit := usecase.MaxAccountBatchSize
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.BulkAccountLimit > 0 {
		batchLimit = params.Config.Auth.BulkAccountLimit
	}

	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		batchLimit:   batchLimit,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginOrRegister resolves the asserted identity against the registry,
// creating the row on first contact, and issues a session token.
func (srv *accountService) LoginOrRegister(ctx context.Context, input *usecase.LoginOrRegisterInput) (*usecase.LoginOrRegisterOutput, error) {
	srv.log(ctx).Info("Login or register", slog.String("identity", input.Identity), slog.String("email", input.Email))

	var (
		sessionUser *entity.User
		outcome     string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := userRepo.FindByAuthID(ctx, input.Identity)
		if errors.Is(err, repository.ErrUserNotFound) {
			newUser := &entity.User{
				AuthID: input.Identity,
				Email:  input.Email,
				Name:   input.Name,
				Role:   entity.RoleUser,
			}
			if err := userRepo.Create(ctx, newUser); err != nil {
				return errors.Wrap(err, "failed to create registry row")
			}

			sessionUser = newUser
			outcome = usecase.OutcomeRegistered

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find registry row")
		}

		if err := userRepo.TouchLogin(ctx, found.ID); err != nil {
			return errors.Wrap(err, "failed to touch login timestamps")
		}

		sessionUser = found
		outcome = usecase.OutcomeLoggedIn

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute login-or-register transaction", slog.String("identity", input.Identity), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login-or-register transaction")
	}

	token, err := srv.tokenService.IssueSession(sessionUser.AuthID, sessionUser.Email, sessionUser.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login or register completed", slog.String("outcome", outcome), slog.Any("userID", sessionUser.ID))

	return &usecase.LoginOrRegisterOutput{
		Outcome: outcome,
		Token:   token,
		User:    sessionUser,
	}, nil
}

// ProvisionAccounts creates the given accounts one by one, continuing past
// per-item failures and reporting both partitions.
func (srv *accountService) ProvisionAccounts(ctx context.Context, inputs []usecase.ProvisionAccountInput) (*usecase.ProvisionAccountsOutput, error) {
	if len(inputs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no accounts to create")
	}
	if len(inputs) > srv.batchLimit {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "batch exceeds the %d account limit", srv.batchLimit)
	}

	srv.log(ctx).Info("Provisioning accounts", slog.Int("count", len(inputs)))

	output := &usecase.ProvisionAccountsOutput{}
	for _, input := range inputs {
		account, err := srv.provisionOne(ctx, input)
		if err != nil {
			srv.log(ctx).Warn("Failed to provision account", slog.String("email", input.Email), slog.Any("error", err))
			output.Failed = append(output.Failed, usecase.ProvisionFailure{
				Email:  input.Email,
				Reason: err.Error(),
			})

			continue
		}

		output.Succeeded = append(output.Succeeded, *account)
	}

	return output, nil
}

// provisionOne creates a single account and issues its session token.
func (srv *accountService) provisionOne(ctx context.Context, input usecase.ProvisionAccountInput) (*usecase.ProvisionedAccount, error) {
	role := input.Role
	if role == entity.RoleNone {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown role %q", input.Role)
	}

	password := input.Password
	generated := password == ""
	if generated {
		password = uuid.New().String()
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		AuthID:       uuid.New().String(),
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		Role:         role,
		PasswordHash: hash,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	token, err := srv.tokenService.IssueSession(newUser.AuthID, newUser.Email, newUser.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	account := &usecase.ProvisionedAccount{
		User:  newUser,
		Token: token,
	}
	if generated {
		account.Password = password
	}

	return account, nil
}
