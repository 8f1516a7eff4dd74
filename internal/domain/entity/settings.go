package entity

import (
	"time"

	"github.com/google/uuid"
)

// Theme enumerates the UI theme options.
type Theme string

const (
	ThemeLight Theme = "LIGHT"
	ThemeDark  Theme = "DARK"
	ThemeAuto  Theme = "AUTO"
)

// IsValid reports whether the theme is one of the known options.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}

	return false
}

// DateFormat enumerates the supported date display formats.
type DateFormat string

const (
	DateFormatYMD DateFormat = "YYYY_MM_DD"
	DateFormatDMY DateFormat = "DD_MM_YYYY"
	DateFormatMDY DateFormat = "MM_DD_YYYY"
)

// IsValid reports whether the date format is one of the supported formats.
func (f DateFormat) IsValid() bool {
	switch f {
	case DateFormatYMD, DateFormatDMY, DateFormatMDY:
		return true
	}

	return false
}

// NotificationFrequency enumerates how often notifications are delivered.
type NotificationFrequency string

const (
	FrequencyImmediate NotificationFrequency = "IMMEDIATE"
	FrequencyHourly    NotificationFrequency = "HOURLY"
	FrequencyDaily     NotificationFrequency = "DAILY"
	FrequencyWeekly    NotificationFrequency = "WEEKLY"
	FrequencyNever     NotificationFrequency = "NEVER"
)

// IsValid reports whether the frequency is one of the known options.
func (f NotificationFrequency) IsValid() bool {
	switch f {
	case FrequencyImmediate, FrequencyHourly, FrequencyDaily, FrequencyWeekly, FrequencyNever:
		return true
	}

	return false
}

// SessionTimeout bounds accepted by the security preference update, in minutes.
const (
	MinSessionTimeoutMinutes = 30
	MaxSessionTimeoutMinutes = 10080
)

// Settings holds the preference record owned by exactly one account. Its
// lifecycle mirrors Profile: created with defaults when the account is
// created, deleted with the account.
type Settings struct {
	ID        uuid.UUID
	AccountID uuid.UUID // Back-reference to the owning account.

	Theme        Theme
	LanguageCode string
	TimeZone     string
	DateFormat   DateFormat

	ProfileVisibility bool
	AllowMessages     bool
	ShowOnlineStatus  bool

	EmailNotifications    bool
	PushNotifications     bool
	SMSNotifications      bool
	NotificationFrequency NotificationFrequency

	ItemsPerPage     int // 10-100.
	AutoSave         bool
	AutoSaveInterval int // Seconds, 30-600.

	TwoFactorEnabled bool
	SessionTimeout   int // Minutes.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDefaultSettings returns the settings record created alongside a new
// account. This constructor is the single owner of the default values.
func NewDefaultSettings(accountID uuid.UUID) *Settings {
	return &Settings{
		AccountID:             accountID,
		Theme:                 ThemeLight,
		LanguageCode:          "en",
		TimeZone:              "UTC",
		DateFormat:            DateFormatYMD,
		ProfileVisibility:     true,
		AllowMessages:         true,
		ShowOnlineStatus:      true,
		EmailNotifications:    true,
		PushNotifications:     true,
		SMSNotifications:      false,
		NotificationFrequency: FrequencyImmediate,
		ItemsPerPage:          20,
		AutoSave:              true,
		AutoSaveInterval:      60,
		TwoFactorEnabled:      false,
		SessionTimeout:        1440,
	}
}
