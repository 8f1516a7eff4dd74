// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounthub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to create a new account.
type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ChangeStatusInput defines the data required to change an account's status.
type ChangeStatusInput struct {
	Status entity.AccountStatus `json:"status" validate:"required"`
}

// --- Output DTOs ---

// AccountStatistics aggregates counts over the current stored state.
// Nothing here is cached; every call recomputes from the store.
type AccountStatistics struct {
	TotalAccounts                  int64 `json:"totalAccounts"`
	ActiveAccounts                 int64 `json:"activeAccounts"`
	SuspendedAccounts              int64 `json:"suspendedAccounts"`
	DeletedAccounts                int64 `json:"deletedAccounts"`
	PublicProfiles                 int64 `json:"publicProfiles"`
	PrivateProfiles                int64 `json:"privateProfiles"`
	AccountsWithEmailNotifications int64 `json:"accountsWithEmailNotifications"`
	AccountsWithTwoFactor          int64 `json:"accountsWithTwoFactor"`
}

// AccountUsecase defines the interface for account lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// CreateWithDefaults creates the account together with its default
	// profile and settings in a single atomic unit.
	CreateWithDefaults(ctx context.Context, input *CreateAccountInput) (*entity.Account, error)

	// FindByIdentifier resolves an account by username or email. Absence is
	// not an error: the result is (nil, nil).
	FindByIdentifier(ctx context.Context, usernameOrEmail string) (*entity.Account, error)

	// ChangeStatus sets the account status and applies the one-way
	// visibility cascade for SUSPENDED and DELETED.
	ChangeStatus(ctx context.Context, accountID uuid.UUID, status entity.AccountStatus) (*entity.Account, error)

	// Delete removes the account and its owned profile and settings.
	Delete(ctx context.Context, accountID uuid.UUID) error

	// ListActiveWithPublicProfiles returns ACTIVE accounts with a public profile.
	ListActiveWithPublicProfiles(ctx context.Context) ([]*entity.Account, error)

	// Statistics computes the aggregate account/profile/settings counts.
	Statistics(ctx context.Context) (*AccountStatistics, error)
}
