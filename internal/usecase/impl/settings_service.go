package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"accounthub/internal/domain/entity"
	domainerrors "accounthub/internal/domain/errors"
	"accounthub/internal/domain/repository"
	"accounthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	settingsRepo repository.SettingsRepository
	logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	settingsRepo repository.SettingsRepository,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		txManager:    txManager,
		accountRepo:  accountRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSettings retrieves the settings record owned by the account.
func (srv *settingsService) GetSettings(ctx context.Context, accountID uuid.UUID) (*entity.Settings, error) {
	settings, err := srv.settingsRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, domainerrors.ErrSettingsNotFound.WrapMessage("settings not found for account: " + accountID.String())
		}

		return nil, errors.Wrap(err, "failed to find settings")
	}

	return settings, nil
}

// UpdateSettings applies a field-level merge over the sixteen preference
// fields: nil preserves the stored value, non-nil overwrites it. When the
// account has no settings yet the partial becomes the new record on top of
// the defaults. Settings and account timestamps move together in one
// transaction.
func (srv *settingsService) UpdateSettings(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateSettingsInput) (*entity.Settings, error) {
	srv.logger.Info("Updating settings", slog.Any("accountID", accountID))

	if err := validateSettingsEnums(input); err != nil {
		return nil, err
	}

	var result *entity.Settings
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		settingsRepo := repoFactory.SettingsRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account not found: " + accountID.String())
			}

			return errors.Wrap(err, "failed to find account")
		}

		now := time.Now()

		if account.Settings == nil {
			newSettings := entity.NewDefaultSettings(accountID)
			mergeSettingsFields(newSettings, input)

			if err := settingsRepo.Create(ctx, newSettings); err != nil {
				return errors.Wrap(err, "failed to create settings")
			}
			result = newSettings
		} else {
			mergeSettingsFields(account.Settings, input)
			account.Settings.UpdatedAt = now

			if err := settingsRepo.Update(ctx, account.Settings); err != nil {
				return errors.Wrap(err, "failed to update settings")
			}
			result = account.Settings
		}

		account.UpdatedAt = now
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to touch account")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute settings update transaction", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute settings update transaction")
	}

	return result, nil
}

// UpdateNotificationPreferences overwrites the four notification fields.
// Unlike the merge update, this requires the settings record to exist.
func (srv *settingsService) UpdateNotificationPreferences(ctx context.Context, accountID uuid.UUID, input *usecase.NotificationPreferencesInput) (*entity.Settings, error) {
	srv.logger.Info("Updating notification preferences", slog.Any("accountID", accountID))

	if !input.NotificationFrequency.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown notification frequency: " + string(input.NotificationFrequency))
	}

	return srv.overwritePreferences(ctx, accountID, func(settings *entity.Settings) {
		settings.EmailNotifications = input.EmailNotifications
		settings.PushNotifications = input.PushNotifications
		settings.SMSNotifications = input.SMSNotifications
		settings.NotificationFrequency = input.NotificationFrequency
	})
}

// UpdatePrivacyPreferences overwrites the three privacy fields.
func (srv *settingsService) UpdatePrivacyPreferences(ctx context.Context, accountID uuid.UUID, input *usecase.PrivacyPreferencesInput) (*entity.Settings, error) {
	srv.logger.Info("Updating privacy preferences", slog.Any("accountID", accountID))

	return srv.overwritePreferences(ctx, accountID, func(settings *entity.Settings) {
		settings.ProfileVisibility = input.ProfileVisibility
		settings.AllowMessages = input.AllowMessages
		settings.ShowOnlineStatus = input.ShowOnlineStatus
	})
}

// UpdateSecurityPreferences range-checks the session timeout before any
// lookup so an invalid request never touches the store, then overwrites
// both security fields.
func (srv *settingsService) UpdateSecurityPreferences(ctx context.Context, accountID uuid.UUID, input *usecase.SecurityPreferencesInput) (*entity.Settings, error) {
	srv.logger.Info("Updating security preferences", slog.Any("accountID", accountID))

	if input.SessionTimeout < entity.MinSessionTimeoutMinutes || input.SessionTimeout > entity.MaxSessionTimeoutMinutes {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage(fmt.Sprintf(
			"session timeout must be between %d and %d minutes",
			entity.MinSessionTimeoutMinutes, entity.MaxSessionTimeoutMinutes,
		))
	}

	return srv.overwritePreferences(ctx, accountID, func(settings *entity.Settings) {
		settings.TwoFactorEnabled = input.TwoFactorEnabled
		settings.SessionTimeout = input.SessionTimeout
	})
}

// AccountsByTheme returns ACTIVE accounts whose settings use the theme.
func (srv *settingsService) AccountsByTheme(ctx context.Context, theme entity.Theme) ([]*entity.Account, error) {
	if !theme.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("unknown theme: " + string(theme))
	}

	accounts, err := srv.accountRepo.ListByTheme(ctx, theme)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by theme")
	}

	active := make([]*entity.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Status == entity.StatusActive {
			active = append(active, account)
		}
	}

	return active, nil
}

// Analytics recomputes every preference aggregate from the current stored
// state. Each count is independent, including the push notification count.
func (srv *settingsService) Analytics(ctx context.Context) (*usecase.SettingsAnalytics, error) {
	srv.logger.Debug("Computing settings analytics")

	analytics := &usecase.SettingsAnalytics{}

	var err error
	if analytics.TotalSettings, err = srv.settingsRepo.CountAll(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count settings")
	}
	if analytics.LightThemeAccounts, err = srv.settingsRepo.CountByTheme(ctx, entity.ThemeLight); err != nil {
		return nil, errors.Wrap(err, "failed to count light theme accounts")
	}
	if analytics.DarkThemeAccounts, err = srv.settingsRepo.CountByTheme(ctx, entity.ThemeDark); err != nil {
		return nil, errors.Wrap(err, "failed to count dark theme accounts")
	}
	if analytics.AutoThemeAccounts, err = srv.settingsRepo.CountByTheme(ctx, entity.ThemeAuto); err != nil {
		return nil, errors.Wrap(err, "failed to count auto theme accounts")
	}
	if analytics.EmailNotificationUsers, err = srv.settingsRepo.CountEmailNotificationsEnabled(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count email notification users")
	}
	if analytics.PushNotificationUsers, err = srv.settingsRepo.CountPushNotificationsEnabled(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count push notification users")
	}
	if analytics.TwoFactorUsers, err = srv.settingsRepo.CountTwoFactorEnabled(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count two-factor users")
	}
	if analytics.EnglishUsers, err = srv.settingsRepo.CountByLanguageCode(ctx, "en"); err != nil {
		return nil, errors.Wrap(err, "failed to count english users")
	}

	return analytics, nil
}

// overwritePreferences loads the account's settings inside a transaction,
// applies the mutation, and saves both timestamps together. The preference
// group updates require an existing settings record.
func (srv *settingsService) overwritePreferences(ctx context.Context, accountID uuid.UUID, apply func(*entity.Settings)) (*entity.Settings, error) {
	var result *entity.Settings
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		settingsRepo := repoFactory.SettingsRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account not found: " + accountID.String())
			}

			return errors.Wrap(err, "failed to find account")
		}

		if account.Settings == nil {
			return domainerrors.ErrSettingsNotFound.WrapMessage("settings not found for account: " + accountID.String())
		}

		now := time.Now()
		apply(account.Settings)
		account.Settings.UpdatedAt = now

		if err := settingsRepo.Update(ctx, account.Settings); err != nil {
			return errors.Wrap(err, "failed to update settings")
		}

		account.UpdatedAt = now
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to touch account")
		}

		result = account.Settings

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute preferences update transaction", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute preferences update transaction")
	}

	return result, nil
}

// validateSettingsEnums rejects unknown enum values before any mutation.
func validateSettingsEnums(input *usecase.UpdateSettingsInput) error {
	if input.Theme != nil && !input.Theme.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown theme: " + string(*input.Theme))
	}
	if input.DateFormat != nil && !input.DateFormat.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown date format: " + string(*input.DateFormat))
	}
	if input.NotificationFrequency != nil && !input.NotificationFrequency.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown notification frequency: " + string(*input.NotificationFrequency))
	}
	if input.SessionTimeout != nil &&
		(*input.SessionTimeout < entity.MinSessionTimeoutMinutes || *input.SessionTimeout > entity.MaxSessionTimeoutMinutes) {
		return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf(
			"session timeout must be between %d and %d minutes",
			entity.MinSessionTimeoutMinutes, entity.MaxSessionTimeoutMinutes,
		))
	}

	return nil
}

// mergeSettingsFields copies every non-nil input field onto the settings.
func mergeSettingsFields(settings *entity.Settings, input *usecase.UpdateSettingsInput) {
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}
	if input.LanguageCode != nil {
		settings.LanguageCode = *input.LanguageCode
	}
	if input.TimeZone != nil {
		settings.TimeZone = *input.TimeZone
	}
	if input.DateFormat != nil {
		settings.DateFormat = *input.DateFormat
	}
	if input.ProfileVisibility != nil {
		settings.ProfileVisibility = *input.ProfileVisibility
	}
	if input.AllowMessages != nil {
		settings.AllowMessages = *input.AllowMessages
	}
	if input.ShowOnlineStatus != nil {
		settings.ShowOnlineStatus = *input.ShowOnlineStatus
	}
	if input.EmailNotifications != nil {
		settings.EmailNotifications = *input.EmailNotifications
	}
	if input.PushNotifications != nil {
		settings.PushNotifications = *input.PushNotifications
	}
	if input.SMSNotifications != nil {
		settings.SMSNotifications = *input.SMSNotifications
	}
	if input.NotificationFrequency != nil {
		settings.NotificationFrequency = *input.NotificationFrequency
	}
	if input.ItemsPerPage != nil {
		settings.ItemsPerPage = *input.ItemsPerPage
	}
	if input.AutoSave != nil {
		settings.AutoSave = *input.AutoSave
	}
	if input.AutoSaveInterval != nil {
		settings.AutoSaveInterval = *input.AutoSaveInterval
	}
	if input.TwoFactorEnabled != nil {
		settings.TwoFactorEnabled = *input.TwoFactorEnabled
	}
	if input.SessionTimeout != nil {
		settings.SessionTimeout = *input.SessionTimeout
	}
}
