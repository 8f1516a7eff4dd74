package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"accounthub/internal/domain/entity"
	domainerrors "accounthub/internal/domain/errors"
	"accounthub/internal/domain/repository"
	"accounthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileFieldCount is the number of fields tracked by completion scoring.
const profileFieldCount = 9

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:   txManager,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile retrieves the profile owned by the account.
func (srv *profileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile not found for account: " + accountID.String())
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile applies a field-level merge: every non-nil field of the input
// overwrites the stored value, nil fields are left untouched. When the
// account has no profile yet the partial becomes the new profile, with unset
// fields at their defaults. Profile and account timestamps move together in
// one transaction.
func (srv *profileService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.logger.Info("Updating profile", slog.Any("accountID", accountID))

	if input.BirthDate != nil && !input.BirthDate.Before(time.Now()) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("birth date must be in the past")
	}
	if input.Gender != nil && !input.Gender.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown gender: " + string(*input.Gender))
	}

	var result *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		profileRepo := repoFactory.ProfileRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account not found: " + accountID.String())
			}

			return errors.Wrap(err, "failed to find account")
		}

		now := time.Now()

		if account.Profile == nil {
			newProfile := entity.NewDefaultProfile(accountID)
			mergeProfileFields(newProfile, input)

			if err := profileRepo.Create(ctx, newProfile); err != nil {
				return errors.Wrap(err, "failed to create profile")
			}
			result = newProfile
		} else {
			mergeProfileFields(account.Profile, input)
			account.Profile.UpdatedAt = now

			if err := profileRepo.Update(ctx, account.Profile); err != nil {
				return errors.Wrap(err, "failed to update profile")
			}
			result = account.Profile
		}

		account.UpdatedAt = now
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to touch account")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute profile update transaction", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return result, nil
}

// UpdateVisibility sets the profile's public flag and touches both timestamps.
func (srv *profileService) UpdateVisibility(ctx context.Context, accountID uuid.UUID, isPublic bool) (*entity.Profile, error) {
	srv.logger.Info("Updating profile visibility", slog.Any("accountID", accountID), slog.Bool("isPublic", isPublic))

	var result *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		profileRepo := repoFactory.ProfileRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account not found: " + accountID.String())
			}

			return errors.Wrap(err, "failed to find account")
		}

		if account.Profile == nil {
			return domainerrors.ErrProfileNotFound.WrapMessage("profile not found for account: " + accountID.String())
		}

		now := time.Now()
		account.Profile.IsPublic = isPublic
		account.Profile.UpdatedAt = now

		if err := profileRepo.Update(ctx, account.Profile); err != nil {
			return errors.Wrap(err, "failed to update profile visibility")
		}

		account.UpdatedAt = now
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to touch account")
		}

		result = account.Profile

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute visibility update transaction", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute visibility update transaction")
	}

	return result, nil
}

// SearchPublic returns public profiles of ACTIVE accounts. A non-empty term
// matches first or last name as a case-insensitive substring; an empty term
// returns all public profiles. The repository query already restricts to
// active accounts; visibility is re-checked here in case a cascade left
// stale rows behind.
func (srv *profileService) SearchPublic(ctx context.Context, term string) ([]*entity.Profile, error) {
	term = strings.TrimSpace(term)

	var (
		profiles []*entity.Profile
		err      error
	)
	if term != "" {
		profiles, err = srv.profileRepo.SearchPublicByName(ctx, term)
	} else {
		profiles, err = srv.profileRepo.ListPublicActive(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to search profiles")
	}

	return filterPublic(profiles), nil
}

// ProfilesByAgeRange returns public, active-account profiles whose birth date
// falls in the inclusive window [today-(maxAge+1) years, today-minAge years].
func (srv *profileService) ProfilesByAgeRange(ctx context.Context, minAge, maxAge int) ([]*entity.Profile, error) {
	if minAge < 0 || maxAge < minAge {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("invalid age range")
	}

	today := time.Now()
	from := today.AddDate(-(maxAge + 1), 0, 0)
	to := today.AddDate(-minAge, 0, 0)

	profiles, err := srv.profileRepo.ListByBirthDateRange(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by birth date range")
	}

	return filterPublic(profiles), nil
}

// CompletionStats scores the nine tracked profile fields. Gender only counts
// once it has been changed away from NOT_SPECIFIED.
func (srv *profileService) CompletionStats(ctx context.Context, accountID uuid.UUID) (*usecase.ProfileCompletionStats, error) {
	profile, err := srv.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &usecase.ProfileCompletionStats{
				CompletionPercentage: 0,
				MissingFields:        []string{"Profile not created"},
			}, nil
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	completed := 0
	missing := make([]string, 0, profileFieldCount)

	check := func(filled bool, label string) {
		if filled {
			completed++
		} else {
			missing = append(missing, label)
		}
	}

	check(profile.FirstName != "", "First Name")
	check(profile.LastName != "", "Last Name")
	check(profile.Bio != "", "Bio")
	check(profile.Location != "", "Location")
	check(profile.BirthDate != nil, "Birth Date")
	check(profile.PhoneNumber != "", "Phone Number")
	check(profile.Website != "", "Website")
	check(profile.ProfileImageURL != "", "Profile Image")
	check(profile.Gender != entity.GenderNotSpecified, "Gender")

	return &usecase.ProfileCompletionStats{
		CompletionPercentage: completed * 100 / profileFieldCount,
		CompletedFields:      completed,
		TotalFields:          profileFieldCount,
		MissingFields:        missing,
	}, nil
}

// mergeProfileFields copies every non-nil input field onto the profile.
func mergeProfileFields(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = *input.LastName
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.Website != nil {
		profile.Website = *input.Website
	}
	if input.PhoneNumber != nil {
		profile.PhoneNumber = *input.PhoneNumber
	}
	if input.BirthDate != nil {
		birthDate := *input.BirthDate
		profile.BirthDate = &birthDate
	}
	if input.Gender != nil {
		profile.Gender = *input.Gender
	}
	if input.ProfileImageURL != nil {
		profile.ProfileImageURL = *input.ProfileImageURL
	}
	if input.IsPublic != nil {
		profile.IsPublic = *input.IsPublic
	}
}

func filterPublic(profiles []*entity.Profile) []*entity.Profile {
	visible := make([]*entity.Profile, 0, len(profiles))
	for _, profile := range profiles {
		if profile.IsPublic {
			visible = append(visible, profile)
		}
	}

	return visible
}
