package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cryptovai/tradingjournal/internal/domain"
	"github.com/cryptovai/tradingjournal/internal/journal"
)

const (
	adminTradesPerPage = 25
	recentTradeCount   = 10
	activeUserWindow   = 30 * 24 * time.Hour
)

// PlatformStats summarizes the whole site for the admin dashboard.
type PlatformStats struct {
	TotalUsers   int                      `json:"total_users"`
	TotalTrades  int                      `json:"total_trades"`
	ActiveUsers  int                      `json:"active_users"`
	RecentTrades []*domain.TradeWithOwner `json:"recent_trades"`
}

// TradePage is one page of the administrative trade listing.
type TradePage struct {
	Trades     []*domain.TradeWithOwner `json:"trades"`
	Page       int                      `json:"page"`
	PerPage    int                      `json:"per_page"`
	TotalCount int                      `json:"total_count"`
	TotalPages int                      `json:"total_pages"`
}

// AdminService handles the administrative surface: platform statistics,
// user management, trade management and site settings.
type AdminService struct {
	tradeRepo    domain.TradeRepository
	userRepo     domain.UserRepository
	settingsRepo domain.SettingsRepository
	log          *zap.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(tradeRepo domain.TradeRepository, userRepo domain.UserRepository, settingsRepo domain.SettingsRepository, log *zap.Logger) *AdminService {
	return &AdminService{
		tradeRepo:    tradeRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		log:          log,
	}
}

// PlatformStats gathers dashboard figures: regular-user count, trade count,
// users active in the last 30 days and the most recent trades.
func (s *AdminService) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	totalUsers, err := s.userRepo.CountByRole(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}

	totalTrades, err := s.tradeRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	activeUsers, err := s.userRepo.CountActiveSince(ctx, time.Now().Add(-activeUserWindow))
	if err != nil {
		return nil, err
	}

	recent, err := s.tradeRepo.ListAll(ctx, recentTradeCount, 0)
	if err != nil {
		return nil, err
	}

	return &PlatformStats{
		TotalUsers:   totalUsers,
		TotalTrades:  totalTrades,
		ActiveUsers:  activeUsers,
		RecentTrades: recent,
	}, nil
}

// ListUsers returns all regular users with their journal aggregates.
func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.UserWithStats, error) {
	return s.userRepo.ListWithStats(ctx)
}

// SetUserActive enables or disables a regular user account.
func (s *AdminService) SetUserActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.userRepo.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.log.Info("user status updated", zap.String("user_id", id.String()), zap.Bool("active", active))
	return nil
}

// DeleteUser removes a regular user and all of their trades.
func (s *AdminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("user_id", id.String()))
	return nil
}

// ListTrades returns one page of the trade listing across all users.
func (s *AdminService) ListTrades(ctx context.Context, page int) (*TradePage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.tradeRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := (total + adminTradesPerPage - 1) / adminTradesPerPage

	trades, err := s.tradeRepo.ListAll(ctx, adminTradesPerPage, (page-1)*adminTradesPerPage)
	if err != nil {
		return nil, err
	}

	return &TradePage{
		Trades:     trades,
		Page:       page,
		PerPage:    adminTradesPerPage,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

// DeleteTrade removes any trade regardless of owner.
func (s *AdminService) DeleteTrade(ctx context.Context, id uuid.UUID) error {
	if err := s.tradeRepo.Delete(ctx, id, nil); err != nil {
		return err
	}
	s.log.Info("trade deleted by admin", zap.String("trade_id", id.String()))
	return nil
}

// GlobalStats aggregates closed trades across the whole platform.
func (s *AdminService) GlobalStats(ctx context.Context) (journal.GlobalTradeStats, error) {
	withOwners, err := s.tradeRepo.ListAll(ctx, 0, 0)
	if err != nil {
		return journal.GlobalTradeStats{}, fmt.Errorf("failed to load trades: %w", err)
	}

	trades := make([]*domain.Trade, len(withOwners))
	for i := range withOwners {
		trades[i] = &withOwners[i].Trade
	}

	return journal.AggregateClosed(trades), nil
}

// GetSettings returns the known site settings with their defaults filled in.
func (s *AdminService) GetSettings(ctx context.Context) (map[string]string, error) {
	stored, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	settings := map[string]string{
		SettingDefaultRiskPercent: "2",
		SettingDefaultFeeRate:     "0.1",
		SettingSiteName:           "Trading Journal Pro",
	}
	for key, value := range stored {
		if _, known := settings[key]; known {
			settings[key] = value
		}
	}

	return settings, nil
}

// UpdateSettings stores values for the known setting keys, ignoring anything
// else in the input. At least one known key must be present.
func (s *AdminService) UpdateSettings(ctx context.Context, values map[string]string) error {
	known := []string{SettingDefaultRiskPercent, SettingDefaultFeeRate, SettingSiteName}

	updated := 0
	for _, key := range known {
		value, ok := values[key]
		if !ok {
			continue
		}
		if err := s.settingsRepo.Set(ctx, key, value); err != nil {
			return err
		}
		updated++
	}

	if updated == 0 {
		return fmt.Errorf("%w: no known settings supplied", domain.ErrInvalidInput)
	}

	s.log.Info("settings updated", zap.Int("count", updated))
	return nil
}
