package ports

import (
	"context"
	"errors"
	"time"

	"token-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrRequestNotPending is returned by MarkSettled when the row guard finds
// the request already in a terminal state.
var ErrRequestNotPending = errors.New("request is not pending")

// RequestRepository defines persistence for vault requests.
// Requests are an append-only audit trail: rows are created once, settled
// at most once, and never deleted.
type RequestRepository interface {
	// Create inserts a pending request and returns its store-assigned id
	// (strictly increasing, never reused).
	Create(ctx context.Context, r *domain.Request) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	// GetByIDForUpdate locks the row inside a transaction block.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Request, error)
	// MarkSettled transitions PENDING -> status, recording the applied rate,
	// fee and settling actor. Returns ErrRequestNotPending if the request is
	// already terminal.
	MarkSettled(ctx context.Context, tx pgx.Tx, id int64, status domain.RequestStatus,
		rate, fee decimal.Decimal, settledBy string, settledAt time.Time) error
	List(ctx context.Context, params RequestListParams) ([]domain.Request, int64, error)
}

// RequestListParams holds filter + pagination for listing requests.
type RequestListParams struct {
	Status    *domain.RequestStatus
	Direction *domain.Direction
	Requester *string
	Page      int
	PageSize  int
}

// AssetConfigRepository defines persistence for payment-asset configurations.
type AssetConfigRepository interface {
	Upsert(ctx context.Context, cfg *domain.PaymentAssetConfig) error
	// Get returns nil, nil when the asset is unknown.
	Get(ctx context.Context, asset string) (*domain.PaymentAssetConfig, error)
	List(ctx context.Context) ([]domain.PaymentAssetConfig, error)
	SetEnabled(ctx context.Context, asset string, enabled bool) error
}

// VaultConfigRepository defines persistence for the singleton vault config.
type VaultConfigRepository interface {
	// Get returns nil, nil when the config row has not been seeded yet.
	Get(ctx context.Context) (*domain.VaultConfig, error)
	Save(ctx context.Context, cfg *domain.VaultConfig) error
}

// OperatorRepository defines persistence for operator accounts.
type OperatorRepository interface {
	Create(ctx context.Context, op *domain.Operator) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error)
	GetByUsername(ctx context.Context, username string) (*domain.Operator, error)
	GetByAccount(ctx context.Context, account string) (*domain.Operator, error)
}

// EventRepository is the append-only vault event journal.
type EventRepository interface {
	Append(ctx context.Context, ev *domain.VaultEvent) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
