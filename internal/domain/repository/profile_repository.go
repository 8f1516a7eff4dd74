package repository

import (
	"context"
	"errors"
	"time"

	"accounthub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// FindByAccountID retrieves the profile owned by the account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)

	// Create persists a new profile entity to the storage.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile entity in the storage.
	Update(ctx context.Context, profile *entity.Profile) error

	// SearchPublicByName returns profiles of ACTIVE accounts whose first or
	// last name contains the term (case-insensitive), ordered by profile ID.
	SearchPublicByName(ctx context.Context, term string) ([]*entity.Profile, error)

	// ListPublicActive returns all public profiles of ACTIVE accounts,
	// ordered by profile ID.
	ListPublicActive(ctx context.Context) ([]*entity.Profile, error)

	// ListByBirthDateRange returns public profiles of ACTIVE accounts whose
	// birth date falls in [from, to], boundaries inclusive, ordered by
	// profile ID.
	ListByBirthDateRange(ctx context.Context, from, to time.Time) ([]*entity.Profile, error)

	// CountByVisibility returns the number of profiles with the given visibility.
	CountByVisibility(ctx context.Context, isPublic bool) (int64, error)
}
