package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingsModel mirrors the 'settings' table. AccountID references accounts.id
// with ON DELETE CASCADE so the settings row never outlives its account.
type SettingsModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;unique;not null;constraint:OnDelete:CASCADE"`

	Theme        string `gorm:"type:varchar(10);not null;default:'LIGHT'"`
	LanguageCode string `gorm:"type:varchar(10);not null;default:'en'"`
	TimeZone     string `gorm:"type:varchar(50);not null;default:'UTC'"`
	DateFormat   string `gorm:"type:varchar(20);not null;default:'YYYY_MM_DD'"`

	ProfileVisibility bool `gorm:"not null;default:true"`
	AllowMessages     bool `gorm:"not null;default:true"`
	ShowOnlineStatus  bool `gorm:"not null;default:true"`

	EmailNotifications    bool   `gorm:"not null;default:true"`
	PushNotifications     bool   `gorm:"not null;default:true"`
	SMSNotifications      bool   `gorm:"column:sms_notifications;not null;default:false"`
	NotificationFrequency string `gorm:"type:varchar(20);not null;default:'IMMEDIATE'"`

	ItemsPerPage     int  `gorm:"not null;default:20"`
	AutoSave         bool `gorm:"not null;default:true"`
	AutoSaveInterval int  `gorm:"not null;default:60"`

	TwoFactorEnabled bool `gorm:"not null;default:false"`
	SessionTimeout   int  `gorm:"not null;default:1440"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingsModel) TableName() string {
	return "settings"
}
