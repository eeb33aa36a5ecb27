package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cryptovai/tradingjournal/internal/domain"
	"github.com/cryptovai/tradingjournal/internal/journal"
)

// Setting keys understood by the service.
const (
	SettingDefaultRiskPercent = "default_risk_percent"
	SettingDefaultFeeRate     = "default_fee_rate"
	SettingSiteName           = "site_name"
)

const defaultListLimit = 50

// AddTradeInput carries the raw fields of a new journal entry.
type AddTradeInput struct {
	Symbol     string
	EntryPrice float64
	ExitPrice  *float64
	Quantity   int
	Notes      string
	TradeDate  time.Time
}

// JournalService handles a user's trading journal: recording trades,
// listing them, computing statistics and sizing new positions.
type JournalService struct {
	tradeRepo    domain.TradeRepository
	settingsRepo domain.SettingsRepository
	log          *zap.Logger
}

// NewJournalService creates a new JournalService
func NewJournalService(tradeRepo domain.TradeRepository, settingsRepo domain.SettingsRepository, log *zap.Logger) *JournalService {
	return &JournalService{
		tradeRepo:    tradeRepo,
		settingsRepo: settingsRepo,
		log:          log,
	}
}

// AddTrade validates and records a new trade for the user. Profit/loss is
// derived once here, at write time, when an exit price is supplied.
func (s *JournalService) AddTrade(ctx context.Context, userID uuid.UUID, input AddTradeInput) (*domain.Trade, error) {
	trade, err := domain.NewTrade(userID, input.Symbol, input.EntryPrice, input.ExitPrice, input.Quantity, input.Notes, input.TradeDate)
	if err != nil {
		return nil, err
	}

	if err := s.tradeRepo.Insert(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to record trade: %w", err)
	}

	s.log.Info("trade recorded",
		zap.String("user_id", userID.String()),
		zap.String("symbol", trade.Symbol),
		zap.String("status", trade.Status()),
	)

	return trade, nil
}

// ListTrades returns the user's trades, newest trade date first. A
// non-positive limit falls back to the default of 50.
func (s *JournalService) ListTrades(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Trade, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.tradeRepo.ListByUser(ctx, userID, limit)
}

// DeleteTrade removes one of the user's own trades. Trades owned by other
// users surface as not found, never as someone else's data.
func (s *JournalService) DeleteTrade(ctx context.Context, userID, tradeID uuid.UUID) error {
	return s.tradeRepo.Delete(ctx, tradeID, &userID)
}

// UserStats aggregates the user's full journal into summary statistics.
func (s *JournalService) UserStats(ctx context.Context, userID uuid.UUID) (journal.UserTradeStats, error) {
	trades, err := s.tradeRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		return journal.UserTradeStats{}, fmt.Errorf("failed to load trades: %w", err)
	}
	return journal.Aggregate(trades), nil
}

// DefaultRiskPercent returns the site-wide default risk percentage for the
// calculator form.
func (s *JournalService) DefaultRiskPercent(ctx context.Context) (float64, error) {
	raw, err := s.settingsRepo.Get(ctx, SettingDefaultRiskPercent, "2")
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.log.Warn("invalid default_risk_percent setting, falling back", zap.String("value", raw))
		return 2, nil
	}
	return value, nil
}

// PositionSize runs the position-sizing calculator. When the request omits
// the risk percent, the site-wide default fills it in before the core
// computation; the core itself always receives an explicit value.
func (s *JournalService) PositionSize(ctx context.Context, req journal.PositionSizeRequest) (journal.PositionSizeResult, error) {
	if req.RiskPercent == 0 {
		defaultRisk, err := s.DefaultRiskPercent(ctx)
		if err != nil {
			return journal.PositionSizeResult{}, err
		}
		req.RiskPercent = defaultRisk
	}

	return journal.ComputePositionSize(req)
}
