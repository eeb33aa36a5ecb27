package journal

import "github.com/cryptovai/tradingjournal/internal/domain"

// UserTradeStats summarizes one user's journal. The win-rate denominator is
// the total trade count, open positions included, matching the behavior the
// product shipped with.
type UserTradeStats struct {
	TotalTrades   int     `json:"total_trades"`
	TotalPnL      float64 `json:"total_pnl"`
	WinningTrades int     `json:"winning_trades"`
	WinRate       float64 `json:"win_rate"`
}

// GlobalTradeStats summarizes closed trades across the whole platform for
// the administrative view. Unlike UserTradeStats, the win rate here is over
// closed trades only.
type GlobalTradeStats struct {
	ClosedTrades  int     `json:"closed_trades"`
	WinningTrades int     `json:"winning_trades"`
	LosingTrades  int     `json:"losing_trades"`
	OpenTrades    int     `json:"open_trades"`
	TotalPnL      float64 `json:"total_pnl"`
	AveragePnL    float64 `json:"average_pnl"`
	WinRate       float64 `json:"win_rate"`
}

// Aggregate computes a user's journal summary over a snapshot of trades.
// Open trades (nil profit/loss) count toward the total but contribute
// nothing to the realized P&L. With no trades every field is zero.
func Aggregate(trades []*domain.Trade) UserTradeStats {
	stats := UserTradeStats{TotalTrades: len(trades)}

	for _, t := range trades {
		if t.ProfitLoss == nil {
			continue
		}
		stats.TotalPnL += *t.ProfitLoss
		if *t.ProfitLoss > 0 {
			stats.WinningTrades++
		}
	}

	if stats.TotalTrades > 0 {
		stats.WinRate = float64(stats.WinningTrades) / float64(stats.TotalTrades) * 100
	}

	return stats
}

// AggregateClosed computes platform-wide statistics over closed trades.
func AggregateClosed(trades []*domain.Trade) GlobalTradeStats {
	var stats GlobalTradeStats

	for _, t := range trades {
		if t.ProfitLoss == nil {
			stats.OpenTrades++
			continue
		}
		stats.ClosedTrades++
		stats.TotalPnL += *t.ProfitLoss
		switch {
		case *t.ProfitLoss > 0:
			stats.WinningTrades++
		case *t.ProfitLoss < 0:
			stats.LosingTrades++
		}
	}

	if stats.ClosedTrades > 0 {
		stats.AveragePnL = stats.TotalPnL / float64(stats.ClosedTrades)
		stats.WinRate = float64(stats.WinningTrades) / float64(stats.ClosedTrades) * 100
	}

	return stats
}
