package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// Login outcomes reported by LoginOrRegister.
const (
	OutcomeRegistered = "registered"
	OutcomeLoggedIn   = "logged_in"
)

// MaxAccountBatchSize is the default cap on accounts one provisioning
// request may create. Deployments override it through auth.bulkAccountLimit.
const MaxAccountBatchSize = 200

// --- Input DTOs ---

// LoginOrRegisterInput carries the external identity asserted by the caller.
type LoginOrRegisterInput struct {
	Identity string
	Email    string
	Name     string
}

// ProvisionAccountInput defines one account to create directly.
// An empty Password means one is generated server-side.
type ProvisionAccountInput struct {
	Email    string
	Name     string
	Phone    string
	Role     entity.Role
	Password string
}

// --- Output DTOs ---

// LoginOrRegisterOutput returns the session token plus whether the call
// registered a new user or logged an existing one in.
type LoginOrRegisterOutput struct {
	Outcome string
	Token   string
	User    *entity.User
}

// ProvisionedAccount is one successfully created account. Password is set
// only when it was generated server-side.
type ProvisionedAccount struct {
	User     *entity.User
	Token    string
	Password string
}

// ProvisionFailure records why one account of a batch could not be created.
type ProvisionFailure struct {
	Email  string
	Reason string
}

// ProvisionAccountsOutput partitions a batch into successes and failures.
type ProvisionAccountsOutput struct {
	Succeeded []ProvisionedAccount
	Failed    []ProvisionFailure
}

// AccountUsecase defines the session issuing and account provisioning
// operations. This is the contract the delivery layer depends on.
type AccountUsecase interface {
	// LoginOrRegister creates the registry row when the identity is new,
	// touches the login timestamps when it is not, and issues a session
	// token either way.
	LoginOrRegister(ctx context.Context, input *LoginOrRegisterInput) (*LoginOrRegisterOutput, error)

	// ProvisionAccounts creates the given accounts sequentially, continuing
	// past per-item failures. The batch is capped at MaxAccountBatchSize.
	ProvisionAccounts(ctx context.Context, inputs []ProvisionAccountInput) (*ProvisionAccountsOutput, error)
}
