package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cryptovai/tradingjournal/internal/domain"
	"github.com/cryptovai/tradingjournal/internal/usecase"
)

type stubTradeRepo struct {
	trades []*domain.Trade
}

func (r *stubTradeRepo) Insert(_ context.Context, trade *domain.Trade) error {
	r.trades = append(r.trades, trade)
	return nil
}

func (r *stubTradeRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*domain.Trade, error) {
	var out []*domain.Trade
	for _, t := range r.trades {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubTradeRepo) ListAll(context.Context, int, int) ([]*domain.TradeWithOwner, error) {
	return nil, nil
}

func (r *stubTradeRepo) CountAll(context.Context) (int, error) {
	return len(r.trades), nil
}

func (r *stubTradeRepo) Delete(_ context.Context, id uuid.UUID, ownerID *uuid.UUID) error {
	for i, t := range r.trades {
		if t.ID == id && (ownerID == nil || t.UserID == *ownerID) {
			r.trades = append(r.trades[:i], r.trades[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("trade %s: %w", id, domain.ErrNotFound)
}

type stubSettingsRepo struct{}

func (stubSettingsRepo) Get(_ context.Context, _, defaultValue string) (string, error) {
	return defaultValue, nil
}
func (stubSettingsRepo) Set(context.Context, string, string) error { return nil }
func (stubSettingsRepo) GetAll(context.Context) (map[string]string, error) {
	return map[string]string{}, nil
}

func newTestHandler() (*JournalHandler, *stubTradeRepo) {
	tradeRepo := &stubTradeRepo{}
	svc := usecase.NewJournalService(tradeRepo, stubSettingsRepo{}, zap.NewNop())
	return NewJournalHandler(svc), tradeRepo
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(tradeDateLayout, value)
	require.NoError(t, err)
	return date
}

func doRequest(t *testing.T, handler echo.HandlerFunc, method, target, body string, userID *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", *userID)
		c.Set("role", domain.RoleUser)
	}
	require.NoError(t, handler(c))
	return rec
}

func TestAddTradeEndpoint(t *testing.T) {
	handler, tradeRepo := newTestHandler()
	userID := uuid.New()

	body := `{"symbol":"aapl","entry_price":100,"exit_price":110,"quantity":50,"trade_date":"2025-08-15"}`
	rec := doRequest(t, handler.AddTrade, http.MethodPost, "/api/journal/trades", body, &userID)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"symbol":"AAPL"`)
	assert.Contains(t, rec.Body.String(), `"profit_loss":500`)
	require.Len(t, tradeRepo.trades, 1)
	assert.Equal(t, userID, tradeRepo.trades[0].UserID)
}

func TestAddTradeEndpointRejectsBadDate(t *testing.T) {
	handler, _ := newTestHandler()
	userID := uuid.New()

	body := `{"symbol":"AAPL","entry_price":100,"quantity":10,"trade_date":"15/08/2025"}`
	rec := doRequest(t, handler.AddTrade, http.MethodPost, "/api/journal/trades", body, &userID)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddTradeEndpointRejectsInvalidTrade(t *testing.T) {
	handler, _ := newTestHandler()
	userID := uuid.New()

	body := `{"symbol":"AAPL","entry_price":-5,"quantity":10,"trade_date":"2025-08-15"}`
	rec := doRequest(t, handler.AddTrade, http.MethodPost, "/api/journal/trades", body, &userID)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculatorEndpoint(t *testing.T) {
	handler, _ := newTestHandler()
	userID := uuid.New()

	body := `{"account_size":10000,"risk_percent":2,"entry_price":150.50,"stop_loss":145.00}`
	rec := doRequest(t, handler.Calculator, http.MethodPost, "/api/journal/calculator", body, &userID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"position_size":36`)
	assert.Contains(t, rec.Body.String(), `"total_cost_display":"$5,418.00"`)
}

func TestCalculatorEndpointUsesDefaultRisk(t *testing.T) {
	handler, _ := newTestHandler()
	userID := uuid.New()

	// No risk_percent: the site default (2%) applies.
	body := `{"account_size":10000,"entry_price":150.50,"stop_loss":145.00}`
	rec := doRequest(t, handler.Calculator, http.MethodPost, "/api/journal/calculator", body, &userID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"position_size":36`)
}

func TestCalculatorEndpointRejectsEqualEntryAndStop(t *testing.T) {
	handler, _ := newTestHandler()
	userID := uuid.New()

	body := `{"account_size":10000,"risk_percent":2,"entry_price":150,"stop_loss":150}`
	rec := doRequest(t, handler.Calculator, http.MethodPost, "/api/journal/calculator", body, &userID)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTradeEndpointNotFound(t *testing.T) {
	handler, _ := newTestHandler()
	userID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	c.Set("user_id", userID)
	c.Set("role", domain.RoleUser)

	require.NoError(t, handler.DeleteTrade(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatsEndpoint(t *testing.T) {
	handler, tradeRepo := newTestHandler()
	userID := uuid.New()

	exit := 110.0
	trade, err := domain.NewTrade(userID, "AAPL", 100, &exit, 50, "", mustDate(t, "2025-08-15"))
	require.NoError(t, err)
	require.NoError(t, tradeRepo.Insert(context.Background(), trade))

	open, err := domain.NewTrade(userID, "MSFT", 100, nil, 10, "", mustDate(t, "2025-08-16"))
	require.NoError(t, err)
	require.NoError(t, tradeRepo.Insert(context.Background(), open))

	rec := doRequest(t, handler.Stats, http.MethodGet, "/api/journal/stats", "", &userID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_trades":2`)
	assert.Contains(t, rec.Body.String(), `"total_pnl":500`)
	assert.Contains(t, rec.Body.String(), `"win_rate":50`)
}
