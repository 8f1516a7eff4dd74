// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"accounthub/internal/domain/entity"
	domainerrors "accounthub/internal/domain/errors"
	"accounthub/internal/domain/repository"
	"accounthub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID, preloading the owned
// profile and settings records.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Preload("Settings").
		Where("id = ?", id).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByIdentifier retrieves a single account whose username or email matches
// the identifier exactly, preloading profile and settings.
func (repo *accountRepository) FindByIdentifier(ctx context.Context, usernameOrEmail string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Preload("Settings").
		Where("username = ? OR email = ?", usernameOrEmail, usernameOrEmail).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by identifier")
	}

	return toAccountDomain(&accountM), nil
}

// ExistsByUsername reports whether any account holds the username.
func (repo *accountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check username existence")
	}

	return count > 0, nil
}

// ExistsByEmail reports whether any account holds the email.
func (repo *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return count > 0, nil
}

// Create persists a new account row. Profile and settings are persisted by
// their own repositories inside the same transaction, so associations are
// deliberately omitted here.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateIdentifier.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Propagate the generated ID and timestamps back to the entity.
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account row. Associations are omitted for the
// same reason as in Create.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateIdentifier.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountUpdateFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Delete removes the account row. The ON DELETE CASCADE constraints on
// profiles and settings remove the owned rows in the same statement.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// ListActiveWithPublicProfiles returns ACTIVE accounts whose profile is public,
// ordered by account ID for stable results.
func (repo *accountRepository) ListActiveWithPublicProfiles(ctx context.Context) ([]*entity.Account, error) {
	var accountMs []*model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Preload("Settings").
		Joins("JOIN profiles ON profiles.account_id = accounts.id").
		Where("accounts.status = ? AND profiles.is_public = ?", string(entity.StatusActive), true).
		Order("accounts.id").
		Find(&accountMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active accounts with public profiles")
	}

	return toAccountDomainList(accountMs), nil
}

// ListByTheme returns accounts whose settings use the given theme, ordered by
// account ID.
func (repo *accountRepository) ListByTheme(ctx context.Context, theme entity.Theme) ([]*entity.Account, error) {
	var accountMs []*model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Preload("Settings").
		Joins("JOIN settings ON settings.account_id = accounts.id").
		Where("settings.theme = ?", string(theme)).
		Order("accounts.id").
		Find(&accountMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by theme")
	}

	return toAccountDomainList(accountMs), nil
}

// CountAll returns the total number of accounts.
func (repo *accountRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count accounts")
	}

	return count, nil
}

// CountByStatus returns the number of accounts in the given status.
func (repo *accountRepository) CountByStatus(ctx context.Context, status entity.AccountStatus) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count accounts by status")
	}

	return count, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		Password:  data.Password,
		Status:    entity.AccountStatus(data.Status),
		Profile:   toProfileDomain(data.Profile),
		Settings:  toSettingsDomain(data.Settings),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		Password:  data.Password,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toAccountDomainList(data []*model.AccountModel) []*entity.Account {
	accounts := make([]*entity.Account, 0, len(data))
	for _, accountM := range data {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts
}
