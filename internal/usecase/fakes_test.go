package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/cryptovai/tradingjournal/internal/domain"
)

// In-memory repository fakes for service tests.

type fakeTradeRepo struct {
	trades []*domain.Trade
	emails map[uuid.UUID]string
}

func newFakeTradeRepo() *fakeTradeRepo {
	return &fakeTradeRepo{emails: make(map[uuid.UUID]string)}
}

func (r *fakeTradeRepo) Insert(_ context.Context, trade *domain.Trade) error {
	r.trades = append(r.trades, trade)
	return nil
}

func (r *fakeTradeRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*domain.Trade, error) {
	var out []*domain.Trade
	for _, t := range r.trades {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].TradeDate.Equal(out[j].TradeDate) {
			return out[i].TradeDate.After(out[j].TradeDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTradeRepo) ListAll(_ context.Context, limit, offset int) ([]*domain.TradeWithOwner, error) {
	sorted := make([]*domain.Trade, len(r.trades))
	copy(sorted, r.trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	var out []*domain.TradeWithOwner
	for _, t := range sorted {
		out = append(out, &domain.TradeWithOwner{Trade: *t, OwnerEmail: r.emails[t.UserID]})
	}

	if limit > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
		if len(out) > limit {
			out = out[:limit]
		}
	}
	return out, nil
}

func (r *fakeTradeRepo) CountAll(_ context.Context) (int, error) {
	return len(r.trades), nil
}

func (r *fakeTradeRepo) Delete(_ context.Context, id uuid.UUID, ownerID *uuid.UUID) error {
	for i, t := range r.trades {
		if t.ID != id {
			continue
		}
		if ownerID != nil && t.UserID != *ownerID {
			continue
		}
		r.trades = append(r.trades[:i], r.trades[i+1:]...)
		return nil
	}
	return fmt.Errorf("trade %s: %w", id, domain.ErrNotFound)
}

type fakeUserRepo struct {
	users []*domain.User
	repo  *fakeTradeRepo
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("duplicate email %s", user.Email)
		}
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

func (r *fakeUserRepo) ListWithStats(_ context.Context) ([]*domain.UserWithStats, error) {
	var out []*domain.UserWithStats
	for _, u := range r.users {
		if u.Role != domain.RoleUser {
			continue
		}
		stats := &domain.UserWithStats{User: *u}
		if r.repo != nil {
			for _, t := range r.repo.trades {
				if t.UserID != u.ID {
					continue
				}
				stats.TradeCount++
				if t.ProfitLoss != nil {
					stats.TotalPnL += *t.ProfitLoss
				}
			}
		}
		out = append(out, stats)
	}
	return out, nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	for _, u := range r.users {
		if u.ID == id && u.Role == domain.RoleUser {
			u.IsActive = active
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, u := range r.users {
		if u.ID == id && u.Role == domain.RoleUser {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role domain.Role) (int, error) {
	count := 0
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) CountActiveSince(_ context.Context, since time.Time) (int, error) {
	if r.repo == nil {
		return 0, nil
	}
	seen := make(map[uuid.UUID]bool)
	for _, t := range r.repo.trades {
		if !t.CreatedAt.Before(since) {
			seen[t.UserID] = true
		}
	}
	return len(seen), nil
}

type fakeSettingsRepo struct {
	values map[string]string
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: make(map[string]string)}
}

func (r *fakeSettingsRepo) Get(_ context.Context, key, defaultValue string) (string, error) {
	if v, ok := r.values[key]; ok {
		return v, nil
	}
	return defaultValue, nil
}

func (r *fakeSettingsRepo) Set(_ context.Context, key, value string) error {
	r.values[key] = value
	return nil
}

func (r *fakeSettingsRepo) GetAll(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out, nil
}
