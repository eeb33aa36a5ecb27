package http

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cryptovai/tradingjournal/internal/delivery/http/dto"
	"github.com/cryptovai/tradingjournal/internal/domain"
	"github.com/cryptovai/tradingjournal/internal/journal"
	"github.com/cryptovai/tradingjournal/internal/middleware"
	"github.com/cryptovai/tradingjournal/internal/usecase"
	"github.com/cryptovai/tradingjournal/internal/utils"
)

const tradeDateLayout = "2006-01-02"

// JournalHandler handles the authenticated user's journal surface
type JournalHandler struct {
	journalSvc *usecase.JournalService
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalSvc *usecase.JournalService) *JournalHandler {
	return &JournalHandler{journalSvc: journalSvc}
}

func tradeOutput(trade *domain.Trade, ownerEmail string) *dto.TradeOutput {
	return &dto.TradeOutput{
		ID:         trade.ID.String(),
		Symbol:     trade.Symbol,
		EntryPrice: trade.EntryPrice,
		ExitPrice:  trade.ExitPrice,
		Quantity:   trade.Quantity,
		ProfitLoss: trade.ProfitLoss,
		Notes:      trade.Notes,
		Status:     trade.Status(),
		TradeDate:  trade.TradeDate.Format(tradeDateLayout),
		CreatedAt:  trade.CreatedAt.Format(time.RFC3339),
		OwnerEmail: ownerEmail,
	}
}

// AddTrade records a new trade in the caller's journal
// POST /api/journal/trades
func (h *JournalHandler) AddTrade(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Authentication required")
	}

	var req dto.AddTradeRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	tradeDate, err := time.Parse(tradeDateLayout, req.TradeDate)
	if err != nil {
		return BadRequestResponse(c, "Trade date must be in YYYY-MM-DD format")
	}

	trade, err := h.journalSvc.AddTrade(c.Request().Context(), userID, usecase.AddTradeInput{
		Symbol:     req.Symbol,
		EntryPrice: req.EntryPrice,
		ExitPrice:  req.ExitPrice,
		Quantity:   req.Quantity,
		Notes:      req.Notes,
		TradeDate:  tradeDate,
	})
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return CreatedResponse(c, tradeOutput(trade, ""))
}

// ListTrades returns the caller's journal, newest first
// GET /api/journal/trades
func (h *JournalHandler) ListTrades(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Authentication required")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return BadRequestResponse(c, "Invalid limit")
		}
	}

	trades, err := h.journalSvc.ListTrades(c.Request().Context(), userID, limit)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	outputs := make([]*dto.TradeOutput, 0, len(trades))
	for _, trade := range trades {
		outputs = append(outputs, tradeOutput(trade, ""))
	}

	return SuccessResponse(c, map[string]interface{}{
		"trades": outputs,
		"count":  len(outputs),
	})
}

// DeleteTrade removes one of the caller's own trades
// DELETE /api/journal/trades/:id
func (h *JournalHandler) DeleteTrade(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Authentication required")
	}

	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid trade ID")
	}

	if err := h.journalSvc.DeleteTrade(c.Request().Context(), userID, tradeID); err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessMessageResponse(c, "Trade deleted", nil)
}

// Stats returns the caller's journal summary
// GET /api/journal/stats
func (h *JournalHandler) Stats(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Authentication required")
	}

	stats, err := h.journalSvc.UserStats(c.Request().Context(), userID)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, &dto.StatsOutput{
		TotalTrades:     stats.TotalTrades,
		TotalPnL:        stats.TotalPnL,
		WinningTrades:   stats.WinningTrades,
		WinRate:         stats.WinRate,
		TotalPnLDisplay: utils.FormatCurrency(stats.TotalPnL),
		WinRateDisplay:  utils.FormatPercent(stats.WinRate),
	})
}

// Calculator runs the position-sizing calculator
// POST /api/journal/calculator
func (h *JournalHandler) Calculator(c echo.Context) error {
	var req dto.CalculatorRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.journalSvc.PositionSize(c.Request().Context(), journal.PositionSizeRequest{
		AccountSize: req.AccountSize,
		RiskPercent: req.RiskPercent,
		EntryPrice:  req.EntryPrice,
		StopLoss:    req.StopLoss,
	})
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, &dto.CalculatorResponse{
		PositionSize:             result.PositionSize,
		RiskAmount:               result.RiskAmount,
		RiskPerShare:             result.RiskPerShare,
		TotalCost:                result.TotalCost,
		AccountPercentage:        result.AccountPercentage,
		RiskAmountDisplay:        utils.FormatCurrency(result.RiskAmount),
		TotalCostDisplay:         utils.FormatCurrency(result.TotalCost),
		AccountPercentageDisplay: utils.FormatPercent(result.AccountPercentage),
	})
}
