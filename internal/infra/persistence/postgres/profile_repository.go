package postgres

import (
	"context"
	"time"

	"accounthub/internal/domain/entity"
	domainerrors "accounthub/internal/domain/errors"
	"accounthub/internal/domain/repository"
	"accounthub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByAccountID retrieves the profile owned by the account.
func (repo *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by account id")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile row.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("account already has a profile")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("owning account does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing profile row.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// SearchPublicByName returns public profiles of ACTIVE accounts whose first or
// last name contains the term, case-insensitively, ordered by profile ID.
func (repo *profileRepository) SearchPublicByName(ctx context.Context, term string) ([]*entity.Profile, error) {
	pattern := "%" + term + "%"

	var profileMs []*model.ProfileModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.id = profiles.account_id").
		Where("profiles.is_public = ? AND accounts.status = ?", true, string(entity.StatusActive)).
		Where("profiles.first_name ILIKE ? OR profiles.last_name ILIKE ?", pattern, pattern).
		Order("profiles.id").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search profiles by name")
	}

	return toProfileDomainList(profileMs), nil
}

// ListPublicActive returns all public profiles of ACTIVE accounts, ordered by
// profile ID.
func (repo *profileRepository) ListPublicActive(ctx context.Context) ([]*entity.Profile, error) {
	var profileMs []*model.ProfileModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.id = profiles.account_id").
		Where("profiles.is_public = ? AND accounts.status = ?", true, string(entity.StatusActive)).
		Order("profiles.id").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public profiles")
	}

	return toProfileDomainList(profileMs), nil
}

// ListByBirthDateRange returns public profiles of ACTIVE accounts whose birth
// date falls in [from, to], boundaries inclusive, ordered by profile ID.
func (repo *profileRepository) ListByBirthDateRange(ctx context.Context, from, to time.Time) ([]*entity.Profile, error) {
	var profileMs []*model.ProfileModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.id = profiles.account_id").
		Where("profiles.is_public = ? AND accounts.status = ?", true, string(entity.StatusActive)).
		Where("profiles.birth_date BETWEEN ? AND ?", from, to).
		Order("profiles.id").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by birth date range")
	}

	return toProfileDomainList(profileMs), nil
}

// CountByVisibility returns the number of profiles with the given visibility.
func (repo *profileRepository) CountByVisibility(ctx context.Context, isPublic bool) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("is_public = ?", isPublic).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count profiles by visibility")
	}

	return count, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:              data.ID,
		AccountID:       data.AccountID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Bio:             data.Bio,
		Location:        data.Location,
		Website:         data.Website,
		PhoneNumber:     data.PhoneNumber,
		BirthDate:       data.BirthDate,
		Gender:          entity.Gender(data.Gender),
		ProfileImageURL: data.ProfileImageURL,
		IsPublic:        data.IsPublic,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel for persistence.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:              data.ID,
		AccountID:       data.AccountID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Bio:             data.Bio,
		Location:        data.Location,
		Website:         data.Website,
		PhoneNumber:     data.PhoneNumber,
		BirthDate:       data.BirthDate,
		Gender:          string(data.Gender),
		ProfileImageURL: data.ProfileImageURL,
		IsPublic:        data.IsPublic,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toProfileDomainList(data []*model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(data))
	for _, profileM := range data {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}
