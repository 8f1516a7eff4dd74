// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "accounthub/internal/delivery/context"
	"accounthub/internal/domain/entity"
	domainerrors "accounthub/internal/domain/errors"
	"accounthub/internal/domain/repository"
	"accounthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	profileRepo  repository.ProfileRepository
	settingsRepo repository.SettingsRepository
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	profileRepo repository.ProfileRepository,
	settingsRepo repository.SettingsRepository,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager:    txManager,
		accountRepo:  accountRepo,
		profileRepo:  profileRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateWithDefaults creates the account and its default profile and settings
// as one logical unit. Either all three records become visible together or
// none do; the transaction rollback guarantees no partial creation is ever
// observable. The uniqueness pre-checks produce friendly errors, while the
// database unique constraints remain the actual safety mechanism against
// concurrent creations with the same identifier.
func (srv *accountService) CreateWithDefaults(ctx context.Context, input *usecase.CreateAccountInput) (*entity.Account, error) {
	srv.log(ctx).Info("Creating account with defaults", slog.String("username", input.Username))

	var created *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		profileRepo := repoFactory.ProfileRepo()
		settingsRepo := repoFactory.SettingsRepo()

		usernameTaken, err := accountRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username existence")
		}
		if usernameTaken {
			return domainerrors.ErrDuplicateIdentifier.WrapMessage("username already exists: " + input.Username)
		}

		emailTaken, err := accountRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email existence")
		}
		if emailTaken {
			return domainerrors.ErrDuplicateIdentifier.WrapMessage("email already exists: " + input.Email)
		}

		newAccount := &entity.Account{
			Username: input.Username,
			Email:    input.Email,
			Password: input.Password,
			Status:   entity.StatusActive,
		}

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		defaultProfile := entity.NewDefaultProfile(newAccount.ID)
		if err := profileRepo.Create(ctx, defaultProfile); err != nil {
			return errors.Wrap(err, "failed to create default profile")
		}

		defaultSettings := entity.NewDefaultSettings(newAccount.ID)
		if err := settingsRepo.Create(ctx, defaultSettings); err != nil {
			return errors.Wrap(err, "failed to create default settings")
		}

		newAccount.Profile = defaultProfile
		newAccount.Settings = defaultSettings
		created = newAccount

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute account creation transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account creation transaction")
	}

	srv.log(ctx).Debug("Account created", slog.Any("accountID", created.ID))

	return created, nil
}

// FindByIdentifier resolves an account by username or email, with profile and
// settings attached. Absence is not an error here; the caller decides how to
// surface an empty result.
func (srv *accountService) FindByIdentifier(ctx context.Context, usernameOrEmail string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByIdentifier(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find account by identifier")
	}

	return account, nil
}

// ChangeStatus sets the account status and applies the visibility cascade:
// suspending or deleting an account with a public profile forces the profile
// private. Reactivation never restores visibility; the cascade is one-way.
func (srv *accountService) ChangeStatus(ctx context.Context, accountID uuid.UUID, status entity.AccountStatus) (*entity.Account, error) {
	srv.log(ctx).Info("Changing account status", slog.Any("accountID", accountID), slog.Any("status", status))

	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("unknown account status: " + string(status))
	}

	var updated *entity.Account
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
		account.Status = status
		account.UpdatedAt = now

		if (status == entity.StatusSuspended || status == entity.StatusDeleted) &&
			account.Profile != nil && account.Profile.IsPublic {
			account.Profile.IsPublic = false
			account.Profile.UpdatedAt = now

			if err := profileRepo.Update(ctx, account.Profile); err != nil {
				return errors.Wrap(err, "failed to cascade visibility change")
			}
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account status")
		}

		updated = account

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute status change transaction", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute status change transaction")
	}

	return updated, nil
}

// Delete removes the account together with its profile and settings. The
// three records vanish in one transaction, never partially.
func (srv *accountService) Delete(ctx context.Context, accountID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("accountID", accountID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if _, err := accountRepo.FindByID(ctx, accountID); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account not found: " + accountID.String())
			}

			return errors.Wrap(err, "failed to find account")
		}

		if err := accountRepo.Delete(ctx, accountID); err != nil {
			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute account deletion transaction", slog.Any("accountID", accountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	return nil
}

// ListActiveWithPublicProfiles returns ACTIVE accounts whose profile is public.
func (srv *accountService) ListActiveWithPublicProfiles(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListActiveWithPublicProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active accounts with public profiles")
	}

	return accounts, nil
}

// Statistics recomputes every aggregate from the current stored state.
func (srv *accountService) Statistics(ctx context.Context) (*usecase.AccountStatistics, error) {
	srv.log(ctx).Debug("Computing account statistics")

	stats := &usecase.AccountStatistics{}

	var err error
	if stats.TotalAccounts, err = srv.accountRepo.CountAll(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count accounts")
	}
	if stats.ActiveAccounts, err = srv.accountRepo.CountByStatus(ctx, entity.StatusActive); err != nil {
		return nil, errors.Wrap(err, "failed to count active accounts")
	}
	if stats.SuspendedAccounts, err = srv.accountRepo.CountByStatus(ctx, entity.StatusSuspended); err != nil {
		return nil, errors.Wrap(err, "failed to count suspended accounts")
	}
	if stats.DeletedAccounts, err = srv.accountRepo.CountByStatus(ctx, entity.StatusDeleted); err != nil {
		return nil, errors.Wrap(err, "failed to count deleted accounts")
	}
	if stats.PublicProfiles, err = srv.profileRepo.CountByVisibility(ctx, true); err != nil {
		return nil, errors.Wrap(err, "failed to count public profiles")
	}
	if stats.PrivateProfiles, err = srv.profileRepo.CountByVisibility(ctx, false); err != nil {
		return nil, errors.Wrap(err, "failed to count private profiles")
	}
	if stats.AccountsWithEmailNotifications, err = srv.settingsRepo.CountEmailNotificationsEnabled(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count email notification users")
	}
	if stats.AccountsWithTwoFactor, err = srv.settingsRepo.CountTwoFactorEnabled(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count two-factor users")
	}

	return stats, nil
}
