package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Trade represents a single journal entry. ExitPrice and ProfitLoss are nil
// while the position is still open.
type Trade struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Symbol     string    `json:"symbol"`
	EntryPrice float64   `json:"entry_price"`
	ExitPrice  *float64  `json:"exit_price,omitempty"`
	Quantity   int       `json:"quantity"`
	ProfitLoss *float64  `json:"profit_loss,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	TradeDate  time.Time `json:"trade_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// TradeStatus constants
const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
)

// NewTrade validates the raw fields and builds a Trade. The symbol is
// upper-cased, and profit/loss is derived exactly once here when an exit
// price is supplied: (exit - entry) * quantity. There is no later update
// path; a trade is closed at creation or not at all.
func NewTrade(userID uuid.UUID, symbol string, entryPrice float64, exitPrice *float64, quantity int, notes string, tradeDate time.Time) (*Trade, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", ErrInvalidInput)
	}
	if entryPrice <= 0 {
		return nil, fmt.Errorf("%w: entry price must be positive", ErrInvalidInput)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if tradeDate.IsZero() {
		return nil, fmt.Errorf("%w: trade date is required", ErrInvalidInput)
	}
	if exitPrice != nil && *exitPrice <= 0 {
		return nil, fmt.Errorf("%w: exit price must be positive", ErrInvalidInput)
	}

	t := &Trade{
		ID:         uuid.New(),
		UserID:     userID,
		Symbol:     symbol,
		EntryPrice: entryPrice,
		Quantity:   quantity,
		Notes:      notes,
		TradeDate:  tradeDate,
		CreatedAt:  time.Now(),
	}

	if exitPrice != nil {
		exit := *exitPrice
		pnl := (exit - entryPrice) * float64(quantity)
		t.ExitPrice = &exit
		t.ProfitLoss = &pnl
	}

	return t, nil
}

// IsClosed reports whether the trade has a recorded exit.
func (t *Trade) IsClosed() bool {
	return t.ExitPrice != nil
}

// Status returns OPEN or CLOSED.
func (t *Trade) Status() string {
	if t.IsClosed() {
		return StatusClosed
	}
	return StatusOpen
}
