package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Request Repo ---

type inMemoryRequestRepo struct {
	mu       sync.RWMutex
	nextID   int64
	requests map[int64]*domain.Request
}

func newInMemoryRequestRepo() *inMemoryRequestRepo {
	return &inMemoryRequestRepo{nextID: 1, requests: make(map[int64]*domain.Request)}
}

func (r *inMemoryRequestRepo) Create(ctx context.Context, req *domain.Request) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	stored := *req
	stored.ID = id
	r.requests[id] = &stored
	return id, nil
}

func (r *inMemoryRequestRepo) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *stored
	return &cp, nil
}

func (r *inMemoryRequestRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Request, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryRequestRepo) MarkSettled(ctx context.Context, tx pgx.Tx, id int64, status domain.RequestStatus, rate, fee decimal.Decimal, settledBy string, settledAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.requests[id]
	if !ok || !stored.IsPending() {
		return ports.ErrRequestNotPending
	}
	stored.Status = status
	stored.AppliedRate = &rate
	stored.Fee = &fee
	stored.SettledBy = &settledBy
	stored.SettledAt = &settledAt
	return nil
}

func (r *inMemoryRequestRepo) List(ctx context.Context, params ports.RequestListParams) ([]domain.Request, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Request
	// Newest first, mirroring the SQL implementation.
	for id := r.nextID - 1; id >= 1; id-- {
		stored, ok := r.requests[id]
		if !ok {
			continue
		}
		if params.Status != nil && stored.Status != *params.Status {
			continue
		}
		if params.Direction != nil && stored.Direction != *params.Direction {
			continue
		}
		if params.Requester != nil && stored.Requester != *params.Requester {
			continue
		}
		matched = append(matched, *stored)
	}

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// --- In-Memory Asset Config Repo ---

type inMemoryAssetRepo struct {
	mu     sync.RWMutex
	assets map[string]*domain.PaymentAssetConfig
}

func newInMemoryAssetRepo() *inMemoryAssetRepo {
	return &inMemoryAssetRepo{assets: make(map[string]*domain.PaymentAssetConfig)}
}

func (r *inMemoryAssetRepo) Upsert(ctx context.Context, cfg *domain.PaymentAssetConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *cfg
	r.assets[cfg.Asset] = &cp
	return nil
}

func (r *inMemoryAssetRepo) Get(ctx context.Context, asset string) (*domain.PaymentAssetConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.assets[asset]
	if !ok {
		return nil, nil
	}
	cp := *cfg
	return &cp, nil
}

func (r *inMemoryAssetRepo) List(ctx context.Context) ([]domain.PaymentAssetConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PaymentAssetConfig, 0, len(r.assets))
	for _, cfg := range r.assets {
		out = append(out, *cfg)
	}
	return out, nil
}

func (r *inMemoryAssetRepo) SetEnabled(ctx context.Context, asset string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg, ok := r.assets[asset]
	if !ok {
		return fmt.Errorf("payment asset not found: %s", asset)
	}
	cfg.Enabled = enabled
	return nil
}

// --- In-Memory Vault Config Repo ---

type inMemoryVaultConfigRepo struct {
	mu  sync.RWMutex
	cfg *domain.VaultConfig
}

func newInMemoryVaultConfigRepo() *inMemoryVaultConfigRepo {
	return &inMemoryVaultConfigRepo{}
}

func (r *inMemoryVaultConfigRepo) Get(ctx context.Context) (*domain.VaultConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.cfg == nil {
		return nil, nil
	}
	cp := *r.cfg
	return &cp, nil
}

func (r *inMemoryVaultConfigRepo) Save(ctx context.Context, cfg *domain.VaultConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *cfg
	r.cfg = &cp
	return nil
}

// --- In-Memory Operator Repo ---

type inMemoryOperatorRepo struct {
	mu        sync.RWMutex
	operators map[uuid.UUID]*domain.Operator
}

func newInMemoryOperatorRepo() *inMemoryOperatorRepo {
	return &inMemoryOperatorRepo{operators: make(map[uuid.UUID]*domain.Operator)}
}

func (r *inMemoryOperatorRepo) Create(ctx context.Context, op *domain.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.operators {
		if existing.Username == op.Username {
			return fmt.Errorf("username already exists")
		}
	}
	cp := *op
	r.operators[op.ID] = &cp
	return nil
}

func (r *inMemoryOperatorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.operators[id]
	if !ok {
		return nil, nil
	}
	cp := *op
	return &cp, nil
}

func (r *inMemoryOperatorRepo) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, op := range r.operators {
		if op.Username == username {
			cp := *op
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryOperatorRepo) GetByAccount(ctx context.Context, account string) (*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, op := range r.operators {
		if op.Account == account {
			cp := *op
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events []domain.VaultEvent
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{}
}

func (r *inMemoryEventRepo) Append(ctx context.Context, ev *domain.VaultEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *ev)
	return nil
}

func (r *inMemoryEventRepo) kinds() []domain.EventKind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.EventKind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
