package usecase

import (
	"context"
	"time"

	"accounthub/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries a partial profile. A nil field means "leave the
// stored value untouched"; a non-nil field overwrites it. The wrapper types
// keep "unset" unambiguous, which raw zero values cannot.
type UpdateProfileInput struct {
	FirstName       *string        `json:"firstName" validate:"omitempty,max=100"`
	LastName        *string        `json:"lastName" validate:"omitempty,max=100"`
	Bio             *string        `json:"bio" validate:"omitempty,max=500"`
	Location        *string        `json:"location" validate:"omitempty,max=100"`
	Website         *string        `json:"website" validate:"omitempty,max=255"`
	PhoneNumber     *string        `json:"phoneNumber" validate:"omitempty,max=20"`
	BirthDate       *time.Time     `json:"birthDate"`
	Gender          *entity.Gender `json:"gender"`
	ProfileImageURL *string        `json:"profileImageUrl"`
	IsPublic        *bool          `json:"isPublic"`
}

// UpdateVisibilityInput toggles profile visibility.
type UpdateVisibilityInput struct {
	IsPublic bool `json:"isPublic"`
}

// ProfileCompletionStats reports how many of the tracked profile fields are
// filled in, and which human-readable fields are still missing.
type ProfileCompletionStats struct {
	CompletionPercentage int      `json:"completionPercentage"`
	CompletedFields      int      `json:"completedFields"`
	TotalFields          int      `json:"totalFields"`
	MissingFields        []string `json:"missingFields"`
}

// ProfileUsecase defines the interface for profile operations.
type ProfileUsecase interface {
	// GetProfile retrieves the profile owned by the account.
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)

	// UpdateProfile applies a field-level merge, or creates the profile from
	// the partial when the account has none yet.
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// UpdateVisibility sets the profile's public flag.
	UpdateVisibility(ctx context.Context, accountID uuid.UUID, isPublic bool) (*entity.Profile, error)

	// SearchPublic returns public profiles of ACTIVE accounts matching the
	// term by first or last name; an empty term returns all of them.
	SearchPublic(ctx context.Context, term string) ([]*entity.Profile, error)

	// ProfilesByAgeRange returns public, ACTIVE-account profiles whose age
	// falls within [minAge, maxAge].
	ProfilesByAgeRange(ctx context.Context, minAge, maxAge int) ([]*entity.Profile, error)

	// CompletionStats scores the nine tracked profile fields.
	CompletionStats(ctx context.Context, accountID uuid.UUID) (*ProfileCompletionStats, error)
}
