package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// RequestRepo implements ports.RequestRepository.
//
// Rows are append-only: a request is inserted once as PENDING and settled
// at most once by the status-guarded UPDATE in MarkSettled. Nothing ever
// deletes from this table.
type RequestRepo struct {
	pool Pool
}

// NewRequestRepo creates a new RequestRepo.
func NewRequestRepo(pool Pool) *RequestRepo {
	return &RequestRepo{pool: pool}
}

const requestColumns = `id, direction, requester, recipient, asset, gross_amount, escrowed_amount,
		status, applied_rate, fee, settled_by, settled_at, created_at`

// Create inserts a pending request and returns its store-assigned id.
func (r *RequestRepo) Create(ctx context.Context, req *domain.Request) (int64, error) {
	query := `INSERT INTO vault_requests (direction, requester, recipient, asset, gross_amount,
		escrowed_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		req.Direction, req.Requester, req.Recipient, req.Asset,
		req.GrossAmount, req.EscrowedAmount, req.Status, req.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert request: %w", err)
	}
	return id, nil
}

// GetByID fetches a request by id.
func (r *RequestRepo) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM vault_requests WHERE id = $1`, requestColumns)
	return r.scanRequest(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate locks the request row inside the given transaction.
func (r *RequestRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM vault_requests WHERE id = $1 FOR UPDATE`, requestColumns)
	return r.scanRequest(tx.QueryRow(ctx, query, id))
}

// MarkSettled transitions PENDING -> status. The status guard in the WHERE
// clause makes double settlement impossible even across processes.
func (r *RequestRepo) MarkSettled(ctx context.Context, tx pgx.Tx, id int64, status domain.RequestStatus,
	rate, fee decimal.Decimal, settledBy string, settledAt time.Time) error {
	query := `UPDATE vault_requests
		SET status = $1, applied_rate = $2, fee = $3, settled_by = $4, settled_at = $5
		WHERE id = $6 AND status = 'PENDING'`

	tag, err := tx.Exec(ctx, query, status, rate, fee, settledBy, settledAt, id)
	if err != nil {
		return fmt.Errorf("mark request settled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrRequestNotPending
	}
	return nil
}

// List fetches requests with filtering and pagination.
func (r *RequestRepo) List(ctx context.Context, params ports.RequestListParams) ([]domain.Request, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.Direction != nil {
		conditions = append(conditions, fmt.Sprintf("direction = $%d", argIdx))
		args = append(args, *params.Direction)
		argIdx++
	}
	if params.Requester != nil {
		conditions = append(conditions, fmt.Sprintf("requester = $%d", argIdx))
		args = append(args, *params.Requester)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM vault_requests %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count requests: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM vault_requests %s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		requestColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		req := domain.Request{}
		err := rows.Scan(
			&req.ID, &req.Direction, &req.Requester, &req.Recipient, &req.Asset,
			&req.GrossAmount, &req.EscrowedAmount, &req.Status,
			&req.AppliedRate, &req.Fee, &req.SettledBy, &req.SettledAt, &req.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate request rows: %w", err)
	}
	return requests, total, nil
}

// scanRequest is a helper to scan a single row into a Request.
func (r *RequestRepo) scanRequest(row pgx.Row) (*domain.Request, error) {
	req := &domain.Request{}
	err := row.Scan(
		&req.ID, &req.Direction, &req.Requester, &req.Recipient, &req.Asset,
		&req.GrossAmount, &req.EscrowedAmount, &req.Status,
		&req.AppliedRate, &req.Fee, &req.SettledBy, &req.SettledAt, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}
	return req, nil
}
