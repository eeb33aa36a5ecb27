package dto

// AddTradeRequest represents the add-trade form payload. TradeDate uses the
// YYYY-MM-DD form; ExitPrice absent or null means the position is still open.
type AddTradeRequest struct {
	Symbol     string   `json:"symbol" validate:"required"`
	EntryPrice float64  `json:"entry_price" validate:"required"`
	ExitPrice  *float64 `json:"exit_price,omitempty"`
	Quantity   int      `json:"quantity" validate:"required"`
	Notes      string   `json:"notes,omitempty"`
	TradeDate  string   `json:"trade_date" validate:"required"`
}

// TradeOutput represents a trade in API responses
type TradeOutput struct {
	ID         string   `json:"id"`
	Symbol     string   `json:"symbol"`
	EntryPrice float64  `json:"entry_price"`
	ExitPrice  *float64 `json:"exit_price,omitempty"`
	Quantity   int      `json:"quantity"`
	ProfitLoss *float64 `json:"profit_loss,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	Status     string   `json:"status"`
	TradeDate  string   `json:"trade_date"`
	CreatedAt  string   `json:"created_at"`
	OwnerEmail string   `json:"owner_email,omitempty"`
}

// CalculatorRequest represents the position-sizing form payload. A zero
// risk percent means "use the site default".
type CalculatorRequest struct {
	AccountSize float64 `json:"account_size" validate:"required"`
	RiskPercent float64 `json:"risk_percent"`
	EntryPrice  float64 `json:"entry_price" validate:"required"`
	StopLoss    float64 `json:"stop_loss" validate:"required"`
}

// CalculatorResponse pairs the numeric result with display strings.
type CalculatorResponse struct {
	PositionSize      int     `json:"position_size"`
	RiskAmount        float64 `json:"risk_amount"`
	RiskPerShare      float64 `json:"risk_per_share"`
	TotalCost         float64 `json:"total_cost"`
	AccountPercentage float64 `json:"account_percentage"`

	RiskAmountDisplay        string `json:"risk_amount_display"`
	TotalCostDisplay         string `json:"total_cost_display"`
	AccountPercentageDisplay string `json:"account_percentage_display"`
}

// StatsOutput represents a user's journal summary in API responses
type StatsOutput struct {
	TotalTrades   int     `json:"total_trades"`
	TotalPnL      float64 `json:"total_pnl"`
	WinningTrades int     `json:"winning_trades"`
	WinRate       float64 `json:"win_rate"`

	TotalPnLDisplay string `json:"total_pnl_display"`
	WinRateDisplay  string `json:"win_rate_display"`
}
