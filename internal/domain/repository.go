package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TradeWithOwner is a trade joined with its owner's email, used by the
// administrative trade listing.
type TradeWithOwner struct {
	Trade
	OwnerEmail string `json:"owner_email"`
}

// UserWithStats is a user joined with journal aggregates, used by the
// administrative user listing.
type UserWithStats struct {
	User
	TradeCount  int        `json:"trade_count"`
	TotalPnL    float64    `json:"total_pnl"`
	LastTradeAt *time.Time `json:"last_trade_at,omitempty"`
}

// TradeRepository defines the interface for trade persistence
type TradeRepository interface {
	// Insert persists a new trade, including its derived profit/loss
	Insert(ctx context.Context, trade *Trade) error

	// ListByUser retrieves a user's trades ordered by trade date descending
	// then creation time descending. A limit <= 0 means no limit.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Trade, error)

	// ListAll retrieves trades across all users with owner emails, newest
	// first. A limit <= 0 means no limit.
	ListAll(ctx context.Context, limit, offset int) ([]*TradeWithOwner, error)

	// CountAll returns the total number of trades
	CountAll(ctx context.Context) (int, error)

	// Delete removes a trade. When ownerID is non-nil the deletion is
	// restricted to trades owned by that user; a nil ownerID grants
	// unrestricted (administrative) deletion. Returns ErrNotFound when no
	// matching row exists.
	Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// ListWithStats retrieves all regular users with their journal aggregates
	ListWithStats(ctx context.Context) ([]*UserWithStats, error)

	// SetActive enables or disables a regular user account. Administrator
	// accounts cannot be toggled; returns ErrNotFound when no row matches.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// Delete removes a regular user and, through the schema, their trades.
	// Administrator accounts cannot be deleted; returns ErrNotFound when no
	// row matches.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByRole returns the number of users holding the given role
	CountByRole(ctx context.Context, role Role) (int, error)

	// CountActiveSince returns the number of distinct users who recorded a
	// trade at or after the given time
	CountActiveSince(ctx context.Context, since time.Time) (int, error)
}

// SettingsRepository defines the interface for site settings
type SettingsRepository interface {
	// Get retrieves a setting value, returning defaultValue when the key is
	// absent
	Get(ctx context.Context, key, defaultValue string) (string, error)

	// Set creates or updates a setting
	Set(ctx context.Context, key, value string) error

	// GetAll retrieves every setting keyed by name
	GetAll(ctx context.Context) (map[string]string, error)
}
