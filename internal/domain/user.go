package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the system
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Permission is a single capability a role may hold.
type Permission int

const (
	// PermRecordTrades allows keeping a personal journal (add/list/delete own trades).
	PermRecordTrades Permission = iota
	// PermManageUsers allows activating, deactivating and deleting other accounts.
	PermManageUsers
	// PermManageAllTrades allows viewing and deleting any user's trades.
	PermManageAllTrades
	// PermManageSettings allows changing site-wide settings.
	PermManageSettings
)

// Role is a tagged variant carrying its permission set. Authorization is
// checked through Can, not by comparing role names in handlers.
type Role string

// Role constants
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var rolePermissions = map[Role][]Permission{
	RoleUser: {PermRecordTrades},
	RoleAdmin: {
		PermRecordTrades,
		PermManageUsers,
		PermManageAllTrades,
		PermManageSettings,
	},
}

// Can reports whether the role holds the given permission. Unknown roles
// hold no permissions.
func (r Role) Can(p Permission) bool {
	for _, held := range rolePermissions[r] {
		if held == p {
			return true
		}
	}
	return false
}

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}
