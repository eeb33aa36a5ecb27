// Package journal holds the pure computational core of the trading journal:
// position sizing and profit/loss aggregation. Nothing here performs I/O or
// keeps state between calls.
package journal

import (
	"fmt"
	"math"

	"github.com/cryptovai/tradingjournal/internal/domain"
)

// PositionSizeRequest carries the calculator inputs. RiskPercent is a
// percentage in (0, 100], not a fraction.
type PositionSizeRequest struct {
	AccountSize float64 `json:"account_size"`
	RiskPercent float64 `json:"risk_percent"`
	EntryPrice  float64 `json:"entry_price"`
	StopLoss    float64 `json:"stop_loss"`
}

// PositionSizeResult is the recommended trade size and its derived figures.
type PositionSizeResult struct {
	PositionSize      int     `json:"position_size"`
	RiskAmount        float64 `json:"risk_amount"`
	RiskPerShare      float64 `json:"risk_per_share"`
	TotalCost         float64 `json:"total_cost"`
	AccountPercentage float64 `json:"account_percentage"`
}

// ComputePositionSize derives the recommended share count from account size,
// risk tolerance and the entry/stop distance. The share count is floored so
// the recommendation never exceeds the risk budget. Rejects with
// domain.ErrInvalidInput on any non-positive input or when entry equals stop
// (zero risk per share is undefined); never returns NaN or Inf.
func ComputePositionSize(req PositionSizeRequest) (PositionSizeResult, error) {
	if req.AccountSize <= 0 {
		return PositionSizeResult{}, fmt.Errorf("%w: account size must be positive", domain.ErrInvalidInput)
	}
	if req.RiskPercent <= 0 {
		return PositionSizeResult{}, fmt.Errorf("%w: risk percent must be positive", domain.ErrInvalidInput)
	}
	if req.EntryPrice <= 0 {
		return PositionSizeResult{}, fmt.Errorf("%w: entry price must be positive", domain.ErrInvalidInput)
	}
	if req.StopLoss <= 0 {
		return PositionSizeResult{}, fmt.Errorf("%w: stop loss must be positive", domain.ErrInvalidInput)
	}
	if req.EntryPrice == req.StopLoss {
		return PositionSizeResult{}, fmt.Errorf("%w: entry price and stop loss cannot be equal", domain.ErrInvalidInput)
	}

	riskAmount := req.AccountSize * (req.RiskPercent / 100)
	riskPerShare := math.Abs(req.EntryPrice - req.StopLoss)
	positionSize := int(math.Floor(riskAmount / riskPerShare))
	totalCost := float64(positionSize) * req.EntryPrice

	return PositionSizeResult{
		PositionSize:      positionSize,
		RiskAmount:        riskAmount,
		RiskPerShare:      riskPerShare,
		TotalCost:         totalCost,
		AccountPercentage: (totalCost / req.AccountSize) * 100,
	}, nil
}
