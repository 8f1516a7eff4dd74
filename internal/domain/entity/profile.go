package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender enumerates the self-reported gender options for a profile.
type Gender string

const (
	GenderMale         Gender = "MALE"
	GenderFemale       Gender = "FEMALE"
	GenderOther        Gender = "OTHER"
	GenderNotSpecified Gender = "NOT_SPECIFIED"
)

// IsValid reports whether the gender is one of the known options.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderNotSpecified:
		return true
	}

	return false
}

// Profile holds the public-facing personal details owned by exactly one
// account. It is created automatically (empty, public) alongside its account
// and deleted with it.
type Profile struct {
	ID              uuid.UUID
	AccountID       uuid.UUID // Back-reference to the owning account.
	FirstName       string
	LastName        string
	Bio             string
	Location        string
	Website         string
	PhoneNumber     string
	BirthDate       *time.Time // Optional; must be in the past when set.
	Gender          Gender     // Defaults to NOT_SPECIFIED.
	ProfileImageURL string
	IsPublic        bool // Defaults to true. Forced false by the status cascade.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName derives the display name: both names joined, a single name when
// only one is present, otherwise empty.
func (p *Profile) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	case p.LastName != "":
		return p.LastName
	}

	return ""
}

// NewDefaultProfile returns the profile created alongside a new account:
// every field empty except visibility, which starts public.
func NewDefaultProfile(accountID uuid.UUID) *Profile {
	return &Profile{
		AccountID: accountID,
		Gender:    GenderNotSpecified,
		IsPublic:  true,
	}
}
