// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounthub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID, with profile and
	// settings attached.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIdentifier retrieves a single account whose username or email
	// matches the identifier exactly.
	FindByIdentifier(ctx context.Context, usernameOrEmail string) (*entity.Account, error)

	// ExistsByUsername reports whether any account holds the username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether any account holds the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account row. Owned profile and settings rows are
	// removed by the same call so the three records vanish together.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListActiveWithPublicProfiles returns ACTIVE accounts whose profile is public.
	ListActiveWithPublicProfiles(ctx context.Context) ([]*entity.Account, error)

	// ListByTheme returns accounts whose settings use the given theme.
	ListByTheme(ctx context.Context, theme entity.Theme) ([]*entity.Account, error)

	// CountAll returns the total number of accounts.
	CountAll(ctx context.Context) (int64, error)

	// CountByStatus returns the number of accounts in the given status.
	CountByStatus(ctx context.Context, status entity.AccountStatus) (int64, error)
}
