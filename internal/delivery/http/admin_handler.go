package http

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cryptovai/tradingjournal/internal/delivery/http/dto"
	"github.com/cryptovai/tradingjournal/internal/usecase"
	"github.com/cryptovai/tradingjournal/internal/utils"
)

// AdminHandler handles the administrative surface
type AdminHandler struct {
	adminSvc *usecase.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminSvc *usecase.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Dashboard returns platform-wide statistics
// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.adminSvc.PlatformStats(c.Request().Context())
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	recent := make([]*dto.TradeOutput, 0, len(stats.RecentTrades))
	for _, trade := range stats.RecentTrades {
		recent = append(recent, tradeOutput(&trade.Trade, trade.OwnerEmail))
	}

	return SuccessResponse(c, map[string]interface{}{
		"total_users":   stats.TotalUsers,
		"total_trades":  stats.TotalTrades,
		"active_users":  stats.ActiveUsers,
		"recent_trades": recent,
	})
}

// ListUsers returns all regular users with their journal aggregates
// GET /api/admin/users
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminSvc.ListUsers(c.Request().Context())
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	type userRow struct {
		dto.UserOutput
		TradeCount      int     `json:"trade_count"`
		TotalPnL        float64 `json:"total_pnl"`
		TotalPnLDisplay string  `json:"total_pnl_display"`
		LastTradeAt     string  `json:"last_trade_at,omitempty"`
	}

	rows := make([]userRow, 0, len(users))
	for _, user := range users {
		row := userRow{
			UserOutput:      *userOutput(&user.User),
			TradeCount:      user.TradeCount,
			TotalPnL:        user.TotalPnL,
			TotalPnLDisplay: utils.FormatCurrency(user.TotalPnL),
		}
		if user.LastTradeAt != nil {
			row.LastTradeAt = user.LastTradeAt.Format("2006-01-02 15:04:05")
		}
		rows = append(rows, row)
	}

	return SuccessResponse(c, map[string]interface{}{
		"users": rows,
		"count": len(rows),
	})
}

// SetUserActive enables or disables a regular user account
// POST /api/admin/users/:id/active
func (h *AdminHandler) SetUserActive(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid user ID")
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.adminSvc.SetUserActive(c.Request().Context(), userID, req.Active); err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessMessageResponse(c, "User status updated", nil)
}

// DeleteUser removes a regular user and all of their trades
// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.adminSvc.DeleteUser(c.Request().Context(), userID); err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessMessageResponse(c, "User deleted", nil)
}

// ListTrades returns one page of all trades across users
// GET /api/admin/trades?page=N
func (h *AdminHandler) ListTrades(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return BadRequestResponse(c, "Invalid page")
		}
		page = parsed
	}

	result, err := h.adminSvc.ListTrades(c.Request().Context(), page)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	trades := make([]*dto.TradeOutput, 0, len(result.Trades))
	for _, trade := range result.Trades {
		trades = append(trades, tradeOutput(&trade.Trade, trade.OwnerEmail))
	}

	return SuccessResponse(c, map[string]interface{}{
		"trades":      trades,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_count": result.TotalCount,
		"total_pages": result.TotalPages,
	})
}

// DeleteTrade removes any trade regardless of owner
// DELETE /api/admin/trades/:id
func (h *AdminHandler) DeleteTrade(c echo.Context) error {
	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid trade ID")
	}

	if err := h.adminSvc.DeleteTrade(c.Request().Context(), tradeID); err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessMessageResponse(c, "Trade deleted", nil)
}

// GlobalStats returns platform-wide closed-trade statistics
// GET /api/admin/trades/stats
func (h *AdminHandler) GlobalStats(c echo.Context) error {
	stats, err := h.adminSvc.GlobalStats(c.Request().Context())
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, map[string]interface{}{
		"closed_trades":     stats.ClosedTrades,
		"winning_trades":    stats.WinningTrades,
		"losing_trades":     stats.LosingTrades,
		"open_trades":       stats.OpenTrades,
		"total_pnl":         stats.TotalPnL,
		"average_pnl":       stats.AveragePnL,
		"win_rate":          stats.WinRate,
		"total_pnl_display": utils.FormatCurrency(stats.TotalPnL),
		"win_rate_display":  utils.FormatPercent(stats.WinRate),
	})
}

// GetSettings returns the site settings
// GET /api/admin/settings
func (h *AdminHandler) GetSettings(c echo.Context) error {
	settings, err := h.adminSvc.GetSettings(c.Request().Context())
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, settings)
}

// UpdateSettings stores new values for the known setting keys
// PUT /api/admin/settings
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var values map[string]string
	if err := c.Bind(&values); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.adminSvc.UpdateSettings(c.Request().Context(), values); err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessMessageResponse(c, "Settings updated", nil)
}
