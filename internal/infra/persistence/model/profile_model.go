package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. AccountID references accounts.id
// with ON DELETE CASCADE so the profile row never outlives its account.
type ProfileModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID       uuid.UUID `gorm:"type:uuid;unique;not null;constraint:OnDelete:CASCADE"`
	FirstName       string    `gorm:"type:varchar(100)"`
	LastName        string    `gorm:"type:varchar(100)"`
	Bio             string    `gorm:"type:varchar(500)"`
	Location        string    `gorm:"type:varchar(100)"`
	Website         string    `gorm:"type:varchar(255)"`
	PhoneNumber     string    `gorm:"type:varchar(20)"`
	BirthDate       *time.Time
	Gender          string `gorm:"type:varchar(20);not null;default:'NOT_SPECIFIED'"`
	ProfileImageURL string `gorm:"type:varchar(255)"`
	IsPublic        bool   `gorm:"not null;default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
