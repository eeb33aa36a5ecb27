package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cryptovai/tradingjournal/internal/domain"
	"github.com/cryptovai/tradingjournal/internal/journal"
)

func newJournalService(tradeRepo *fakeTradeRepo, settingsRepo *fakeSettingsRepo) *JournalService {
	return NewJournalService(tradeRepo, settingsRepo, zap.NewNop())
}

func TestAddTradeClosed(t *testing.T) {
	tradeRepo := newFakeTradeRepo()
	svc := newJournalService(tradeRepo, newFakeSettingsRepo())
	userID := uuid.New()

	exit := 110.0
	trade, err := svc.AddTrade(context.Background(), userID, AddTradeInput{
		Symbol:     "aapl",
		EntryPrice: 100,
		ExitPrice:  &exit,
		Quantity:   50,
		TradeDate:  time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, "AAPL", trade.Symbol)
	require.NotNil(t, trade.ProfitLoss)
	assert.InDelta(t, 500.0, *trade.ProfitLoss, 1e-9)
	assert.Len(t, tradeRepo.trades, 1)
}

func TestAddTradeRejectsInvalidInput(t *testing.T) {
	svc := newJournalService(newFakeTradeRepo(), newFakeSettingsRepo())

	_, err := svc.AddTrade(context.Background(), uuid.New(), AddTradeInput{
		Symbol:     "AAPL",
		EntryPrice: -1,
		Quantity:   10,
		TradeDate:  time.Now(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListTradesAppliesDefaultLimit(t *testing.T) {
	tradeRepo := newFakeTradeRepo()
	svc := newJournalService(tradeRepo, newFakeSettingsRepo())
	userID := uuid.New()

	for i := 0; i < defaultListLimit+10; i++ {
		_, err := svc.AddTrade(context.Background(), userID, AddTradeInput{
			Symbol:     "AAPL",
			EntryPrice: 100,
			Quantity:   1,
			TradeDate:  time.Now().AddDate(0, 0, -i),
		})
		require.NoError(t, err)
	}

	trades, err := svc.ListTrades(context.Background(), userID, 0)
	require.NoError(t, err)
	assert.Len(t, trades, defaultListLimit)
}

func TestDeleteTradeEnforcesOwnership(t *testing.T) {
	tradeRepo := newFakeTradeRepo()
	svc := newJournalService(tradeRepo, newFakeSettingsRepo())
	owner := uuid.New()
	stranger := uuid.New()

	trade, err := svc.AddTrade(context.Background(), owner, AddTradeInput{
		Symbol:     "AAPL",
		EntryPrice: 100,
		Quantity:   10,
		TradeDate:  time.Now(),
	})
	require.NoError(t, err)

	// A different user cannot delete it.
	err = svc.DeleteTrade(context.Background(), stranger, trade.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, tradeRepo.trades, 1)

	// The owner can.
	require.NoError(t, svc.DeleteTrade(context.Background(), owner, trade.ID))
	assert.Empty(t, tradeRepo.trades)
}

func TestUserStats(t *testing.T) {
	tradeRepo := newFakeTradeRepo()
	svc := newJournalService(tradeRepo, newFakeSettingsRepo())
	userID := uuid.New()

	win, loss := 110.0, 96.0
	inputs := []AddTradeInput{
		{Symbol: "AAPL", EntryPrice: 100, ExitPrice: &win, Quantity: 50, TradeDate: time.Now()},  // +500
		{Symbol: "MSFT", EntryPrice: 100, ExitPrice: &loss, Quantity: 50, TradeDate: time.Now()}, // -200
		{Symbol: "TSLA", EntryPrice: 100, Quantity: 10, TradeDate: time.Now()},                   // open
	}
	for _, input := range inputs {
		_, err := svc.AddTrade(context.Background(), userID, input)
		require.NoError(t, err)
	}

	stats, err := svc.UserStats(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalTrades)
	assert.InDelta(t, 300.0, stats.TotalPnL, 1e-9)
	assert.Equal(t, 1, stats.WinningTrades)
	assert.InDelta(t, 100.0/3.0, stats.WinRate, 1e-9)
}

func TestPositionSizeUsesDefaultRiskFromSettings(t *testing.T) {
	settingsRepo := newFakeSettingsRepo()
	settingsRepo.values[SettingDefaultRiskPercent] = "1"
	svc := newJournalService(newFakeTradeRepo(), settingsRepo)

	result, err := svc.PositionSize(context.Background(), journal.PositionSizeRequest{
		AccountSize: 10000,
		EntryPrice:  50,
		StopLoss:    45,
	})
	require.NoError(t, err)

	// riskAmount 100, riskPerShare 5 => 20 shares
	assert.Equal(t, 20, result.PositionSize)
}

func TestPositionSizeExplicitRiskWins(t *testing.T) {
	settingsRepo := newFakeSettingsRepo()
	settingsRepo.values[SettingDefaultRiskPercent] = "1"
	svc := newJournalService(newFakeTradeRepo(), settingsRepo)

	result, err := svc.PositionSize(context.Background(), journal.PositionSizeRequest{
		AccountSize: 10000,
		RiskPercent: 2,
		EntryPrice:  150.50,
		StopLoss:    145.00,
	})
	require.NoError(t, err)
	assert.Equal(t, 36, result.PositionSize)
}

func TestPositionSizeRejectsEqualEntryAndStop(t *testing.T) {
	svc := newJournalService(newFakeTradeRepo(), newFakeSettingsRepo())

	_, err := svc.PositionSize(context.Background(), journal.PositionSizeRequest{
		AccountSize: 10000,
		RiskPercent: 2,
		EntryPrice:  150,
		StopLoss:    150,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDefaultRiskPercentFallsBackOnGarbage(t *testing.T) {
	settingsRepo := newFakeSettingsRepo()
	settingsRepo.values[SettingDefaultRiskPercent] = "not-a-number"
	svc := newJournalService(newFakeTradeRepo(), settingsRepo)

	value, err := svc.DefaultRiskPercent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2.0, value)
}
