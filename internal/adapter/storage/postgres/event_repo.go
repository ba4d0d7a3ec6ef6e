package postgres

import (
	"context"
	"fmt"

	"token-vault/internal/core/domain"
)

// EventRepo implements ports.EventRepository, the append-only vault event
// journal.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Append inserts one event row.
func (r *EventRepo) Append(ctx context.Context, ev *domain.VaultEvent) error {
	query := `INSERT INTO vault_events (id, kind, actor, asset, request_id, amount, rate, fee, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		ev.ID, ev.Kind, ev.Actor, ev.Asset, ev.RequestID, ev.Amount, ev.Rate, ev.Fee, ev.Detail, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vault event: %w", err)
	}
	return nil
}
