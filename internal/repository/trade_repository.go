package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cryptovai/tradingjournal/internal/domain"
)

// TradeRepositoryImpl implements the TradeRepository interface
type TradeRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *pgxpool.Pool) domain.TradeRepository {
	return &TradeRepositoryImpl{db: db}
}

// Insert persists a new trade, including its derived profit/loss
func (r *TradeRepositoryImpl) Insert(ctx context.Context, trade *domain.Trade) error {
	query := `
		INSERT INTO trades (
			id, user_id, symbol, entry_price, exit_price,
			quantity, profit_loss, notes, trade_date, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	_, err := r.db.Exec(ctx, query,
		trade.ID,
		trade.UserID,
		trade.Symbol,
		trade.EntryPrice,
		trade.ExitPrice,
		trade.Quantity,
		trade.ProfitLoss,
		trade.Notes,
		trade.TradeDate,
		trade.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", err)
	}

	return nil
}

// ListByUser retrieves a user's trades, newest trade date first
func (r *TradeRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Trade, error) {
	query := `
		SELECT id, user_id, symbol, entry_price, exit_price,
		       quantity, profit_loss, notes, trade_date, created_at
		FROM trades
		WHERE user_id = $1
		ORDER BY trade_date DESC, created_at DESC
	`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	var trades []*domain.Trade
	for rows.Next() {
		trade := &domain.Trade{}
		err := rows.Scan(
			&trade.ID,
			&trade.UserID,
			&trade.Symbol,
			&trade.EntryPrice,
			&trade.ExitPrice,
			&trade.Quantity,
			&trade.ProfitLoss,
			&trade.Notes,
			&trade.TradeDate,
			&trade.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trades = append(trades, trade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trades: %w", err)
	}

	return trades, nil
}

// ListAll retrieves trades across all users with owner emails, newest first
func (r *TradeRepositoryImpl) ListAll(ctx context.Context, limit, offset int) ([]*domain.TradeWithOwner, error) {
	query := `
		SELECT t.id, t.user_id, t.symbol, t.entry_price, t.exit_price,
		       t.quantity, t.profit_loss, t.notes, t.trade_date, t.created_at,
		       u.email
		FROM trades t
		JOIN users u ON t.user_id = u.id
		ORDER BY t.created_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query all trades: %w", err)
	}
	defer rows.Close()

	var trades []*domain.TradeWithOwner
	for rows.Next() {
		trade := &domain.TradeWithOwner{}
		err := rows.Scan(
			&trade.ID,
			&trade.UserID,
			&trade.Symbol,
			&trade.EntryPrice,
			&trade.ExitPrice,
			&trade.Quantity,
			&trade.ProfitLoss,
			&trade.Notes,
			&trade.TradeDate,
			&trade.CreatedAt,
			&trade.OwnerEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trades = append(trades, trade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trades: %w", err)
	}

	return trades, nil
}

// CountAll returns the total number of trades
func (r *TradeRepositoryImpl) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trades`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count trades: %w", err)
	}
	return count, nil
}

// Delete removes a trade, scoped to an owner when one is supplied
func (r *TradeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error {
	query := `DELETE FROM trades WHERE id = $1`
	args := []interface{}{id}

	if ownerID != nil {
		// Regular users can only delete their own trades.
		query += ` AND user_id = $2`
		args = append(args, *ownerID)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trade %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
