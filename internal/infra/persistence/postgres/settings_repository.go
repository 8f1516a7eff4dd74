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
)

// settingsRepository implements the repository.SettingsRepository interface using GORM.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// FindByAccountID retrieves the settings record owned by the account.
func (repo *settingsRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Settings, error) {
	var settingsM model.SettingsModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&settingsM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find settings by account id")
	}

	return toSettingsDomain(&settingsM), nil
}

// Create persists a new settings row.
func (repo *settingsRepository) Create(ctx context.Context, settings *entity.Settings) error {
	settingsM := fromSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).Create(settingsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSettingsCreationFailed.WrapMessage("account already has settings")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSettingsCreationFailed.WrapMessage("owning account does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create settings")
	}

	settings.ID = settingsM.ID
	settings.CreatedAt = settingsM.CreatedAt
	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// Update modifies an existing settings row.
func (repo *settingsRepository) Update(ctx context.Context, settings *entity.Settings) error {
	settingsM := fromSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).Save(settingsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// CountAll returns the total number of settings records.
func (repo *settingsRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SettingsModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count settings")
	}

	return count, nil
}

// CountByTheme returns the number of settings records using the theme.
func (repo *settingsRepository) CountByTheme(ctx context.Context, theme entity.Theme) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SettingsModel{}).
		Where("theme = ?", string(theme)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count settings by theme")
	}

	return count, nil
}

// CountEmailNotificationsEnabled returns the number of settings records with
// email notifications turned on.
func (repo *settingsRepository) CountEmailNotificationsEnabled(ctx context.Context) (int64, error) {
	return repo.countWhere(ctx, "email_notifications = ?", true)
}

// CountPushNotificationsEnabled returns the number of settings records with
// push notifications turned on.
func (repo *settingsRepository) CountPushNotificationsEnabled(ctx context.Context) (int64, error) {
	return repo.countWhere(ctx, "push_notifications = ?", true)
}

// CountTwoFactorEnabled returns the number of settings records with two-factor
// authentication turned on.
func (repo *settingsRepository) CountTwoFactorEnabled(ctx context.Context) (int64, error) {
	return repo.countWhere(ctx, "two_factor_enabled = ?", true)
}

// CountByLanguageCode returns the number of settings records using the language code.
func (repo *settingsRepository) CountByLanguageCode(ctx context.Context, languageCode string) (int64, error) {
	return repo.countWhere(ctx, "language_code = ?", languageCode)
}

func (repo *settingsRepository) countWhere(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SettingsModel{}).
		Where(query, args...).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count settings")
	}

	return count, nil
}

// --- Mapper Functions ---

// toSettingsDomain converts a GORM SettingsModel to a domain Settings entity.
func toSettingsDomain(data *model.SettingsModel) *entity.Settings {
	if data == nil {
		return nil
	}

	return &entity.Settings{
		ID:                    data.ID,
		AccountID:             data.AccountID,
		Theme:                 entity.Theme(data.Theme),
		LanguageCode:          data.LanguageCode,
		TimeZone:              data.TimeZone,
		DateFormat:            entity.DateFormat(data.DateFormat),
		ProfileVisibility:     data.ProfileVisibility,
		AllowMessages:         data.AllowMessages,
		ShowOnlineStatus:      data.ShowOnlineStatus,
		EmailNotifications:    data.EmailNotifications,
		PushNotifications:     data.PushNotifications,
		SMSNotifications:      data.SMSNotifications,
		NotificationFrequency: entity.NotificationFrequency(data.NotificationFrequency),
		ItemsPerPage:          data.ItemsPerPage,
		AutoSave:              data.AutoSave,
		AutoSaveInterval:      data.AutoSaveInterval,
		TwoFactorEnabled:      data.TwoFactorEnabled,
		SessionTimeout:        data.SessionTimeout,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromSettingsDomain converts a domain Settings entity to a GORM SettingsModel for persistence.
func fromSettingsDomain(data *entity.Settings) *model.SettingsModel {
	if data == nil {
		return nil
	}

	return &model.SettingsModel{
		ID:                    data.ID,
		AccountID:             data.AccountID,
		Theme:                 string(data.Theme),
		LanguageCode:          data.LanguageCode,
		TimeZone:              data.TimeZone,
		DateFormat:            string(data.DateFormat),
		ProfileVisibility:     data.ProfileVisibility,
		AllowMessages:         data.AllowMessages,
		ShowOnlineStatus:      data.ShowOnlineStatus,
		EmailNotifications:    data.EmailNotifications,
		PushNotifications:     data.PushNotifications,
		SMSNotifications:      data.SMSNotifications,
		NotificationFrequency: string(data.NotificationFrequency),
		ItemsPerPage:          data.ItemsPerPage,
		AutoSave:              data.AutoSave,
		AutoSaveInterval:      data.AutoSaveInterval,
		TwoFactorEnabled:      data.TwoFactorEnabled,
		SessionTimeout:        data.SessionTimeout,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
