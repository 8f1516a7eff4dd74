package repository

import (
	"context"
	"errors"

	"accounthub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSettingsNotFound is a domain-specific error returned when a settings record is not found.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository defines the standard operations for settings persistence.
type SettingsRepository interface {
	// FindByAccountID retrieves the settings record owned by the account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Settings, error)

	// Create persists a new settings entity to the storage.
	Create(ctx context.Context, settings *entity.Settings) error

	// Update modifies an existing settings entity in the storage.
	Update(ctx context.Context, settings *entity.Settings) error

	// CountAll returns the total number of settings records.
	CountAll(ctx context.Context) (int64, error)

	// CountByTheme returns the number of settings records using the theme.
	CountByTheme(ctx context.Context, theme entity.Theme) (int64, error)

	// CountEmailNotificationsEnabled returns the number of settings records
	// with email notifications turned on.
	CountEmailNotificationsEnabled(ctx context.Context) (int64, error)

	// CountPushNotificationsEnabled returns the number of settings records
	// with push notifications turned on.
	CountPushNotificationsEnabled(ctx context.Context) (int64, error)

	// CountTwoFactorEnabled returns the number of settings records with
	// two-factor authentication turned on.
	CountTwoFactorEnabled(ctx context.Context) (int64, error)

	// CountByLanguageCode returns the number of settings records using the
	// language code.
	CountByLanguageCode(ctx context.Context, languageCode string) (int64, error)
}
