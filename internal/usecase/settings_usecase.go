package usecase

import (
	"context"

	"accounthub/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateSettingsInput carries a partial settings record with the same merge
// semantics as UpdateProfileInput: nil preserves, non-nil overwrites. Every
// one of the sixteen preference fields is individually optional.
type UpdateSettingsInput struct {
	Theme        *entity.Theme      `json:"theme"`
	LanguageCode *string            `json:"languageCode"`
	TimeZone     *string            `json:"timeZone"`
	DateFormat   *entity.DateFormat `json:"dateFormat"`

	ProfileVisibility *bool `json:"profileVisibility"`
	AllowMessages     *bool `json:"allowMessages"`
	ShowOnlineStatus  *bool `json:"showOnlineStatus"`

	EmailNotifications    *bool                         `json:"emailNotifications"`
	PushNotifications     *bool                         `json:"pushNotifications"`
	SMSNotifications      *bool                         `json:"smsNotifications"`
	NotificationFrequency *entity.NotificationFrequency `json:"notificationFrequency"`

	ItemsPerPage     *int  `json:"itemsPerPage" validate:"omitempty,min=10,max=100"`
	AutoSave         *bool `json:"autoSave"`
	AutoSaveInterval *int  `json:"autoSaveInterval" validate:"omitempty,min=30,max=600"`

	TwoFactorEnabled *bool `json:"twoFactorEnabled"`
	SessionTimeout   *int  `json:"sessionTimeout"`
}

// NotificationPreferencesInput always sets all four notification fields.
// Unlike the merge inputs, this is an unconditional overwrite.
type NotificationPreferencesInput struct {
	EmailNotifications    bool                         `json:"emailNotifications"`
	PushNotifications     bool                         `json:"pushNotifications"`
	SMSNotifications      bool                         `json:"smsNotifications"`
	NotificationFrequency entity.NotificationFrequency `json:"notificationFrequency" validate:"required"`
}

// PrivacyPreferencesInput always sets all three privacy fields.
type PrivacyPreferencesInput struct {
	ProfileVisibility bool `json:"profileVisibility"`
	AllowMessages     bool `json:"allowMessages"`
	ShowOnlineStatus  bool `json:"showOnlineStatus"`
}

// SecurityPreferencesInput always sets both security fields. SessionTimeout
// is range-checked by the service before any mutation happens.
type SecurityPreferencesInput struct {
	TwoFactorEnabled bool `json:"twoFactorEnabled"`
	SessionTimeout   int  `json:"sessionTimeout"`
}

// SettingsAnalytics aggregates preference counts over the stored settings.
type SettingsAnalytics struct {
	TotalSettings          int64 `json:"totalSettings"`
	LightThemeAccounts     int64 `json:"lightThemeAccounts"`
	DarkThemeAccounts      int64 `json:"darkThemeAccounts"`
	AutoThemeAccounts      int64 `json:"autoThemeAccounts"`
	EmailNotificationUsers int64 `json:"emailNotificationUsers"`
	PushNotificationUsers  int64 `json:"pushNotificationUsers"`
	TwoFactorUsers         int64 `json:"twoFactorUsers"`
	EnglishUsers           int64 `json:"englishUsers"`
}

// SettingsUsecase defines the interface for settings operations.
type SettingsUsecase interface {
	// GetSettings retrieves the settings record owned by the account.
	GetSettings(ctx context.Context, accountID uuid.UUID) (*entity.Settings, error)

	// UpdateSettings applies a field-level merge, or creates the settings
	// from the partial when the account has none yet.
	UpdateSettings(ctx context.Context, accountID uuid.UUID, input *UpdateSettingsInput) (*entity.Settings, error)

	// UpdateNotificationPreferences overwrites the four notification fields.
	UpdateNotificationPreferences(ctx context.Context, accountID uuid.UUID, input *NotificationPreferencesInput) (*entity.Settings, error)

	// UpdatePrivacyPreferences overwrites the three privacy fields.
	UpdatePrivacyPreferences(ctx context.Context, accountID uuid.UUID, input *PrivacyPreferencesInput) (*entity.Settings, error)

	// UpdateSecurityPreferences validates the session timeout range and then
	// overwrites both security fields.
	UpdateSecurityPreferences(ctx context.Context, accountID uuid.UUID, input *SecurityPreferencesInput) (*entity.Settings, error)

	// AccountsByTheme returns ACTIVE accounts whose settings use the theme.
	AccountsByTheme(ctx context.Context, theme entity.Theme) ([]*entity.Account, error)

	// Analytics computes the aggregate preference counts.
	Analytics(ctx context.Context) (*SettingsAnalytics, error)
}
