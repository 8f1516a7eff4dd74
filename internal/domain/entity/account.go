// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus enumerates the lifecycle states of an account.
type AccountStatus string

const (
	StatusActive    AccountStatus = "ACTIVE"
	StatusInactive  AccountStatus = "INACTIVE"
	StatusSuspended AccountStatus = "SUSPENDED"
	StatusDeleted   AccountStatus = "DELETED"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s AccountStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended, StatusDeleted:
		return true
	}

	return false
}

// Account is the aggregate root of the system. Username and email are globally
// unique among live accounts. Profile and Settings are owned 1:1 records and
// never outlive the account.
type Account struct {
	ID        uuid.UUID     // The Global Unique Identifier for the account.
	Username  string        // Unique login handle, 3-50 characters.
	Email     string        // Unique contact email.
	Password  string        // Opaque credential string; hashing is handled upstream of this service.
	Status    AccountStatus // Current lifecycle state. Defaults to ACTIVE on creation.
	Profile   *Profile      // Owned profile record. Nil only before default creation completes.
	Settings  *Settings     // Owned settings record. Nil only before default creation completes.
	CreatedAt time.Time     // Timestamp of account creation.
	UpdatedAt time.Time     // Timestamp of the last mutation, including cascaded ones.
}
