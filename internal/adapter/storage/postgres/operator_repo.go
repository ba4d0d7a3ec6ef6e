package postgres

import (
	"context"
	"errors"
	"fmt"

	"token-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OperatorRepo implements ports.OperatorRepository.
type OperatorRepo struct {
	pool Pool
}

// NewOperatorRepo creates a new OperatorRepo.
func NewOperatorRepo(pool Pool) *OperatorRepo {
	return &OperatorRepo{pool: pool}
}

const operatorColumns = `id, username, password_hash, account, role, status, created_at`

// Create inserts a new operator.
func (r *OperatorRepo) Create(ctx context.Context, op *domain.Operator) error {
	query := `INSERT INTO operators (id, username, password_hash, account, role, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		op.ID, op.Username, op.PasswordHash, op.Account, op.Role, op.Status, op.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert operator: %w", err)
	}
	return nil
}

// GetByID fetches an operator by UUID.
func (r *OperatorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error) {
	query := fmt.Sprintf(`SELECT %s FROM operators WHERE id = $1`, operatorColumns)
	return r.scanOperator(r.pool.QueryRow(ctx, query, id))
}

// GetByUsername fetches an operator by username.
func (r *OperatorRepo) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	query := fmt.Sprintf(`SELECT %s FROM operators WHERE username = $1`, operatorColumns)
	return r.scanOperator(r.pool.QueryRow(ctx, query, username))
}

// GetByAccount fetches an operator by its on-vault account name.
func (r *OperatorRepo) GetByAccount(ctx context.Context, account string) (*domain.Operator, error) {
	query := fmt.Sprintf(`SELECT %s FROM operators WHERE account = $1`, operatorColumns)
	return r.scanOperator(r.pool.QueryRow(ctx, query, account))
}

// scanOperator is a helper to scan a single row into an Operator.
func (r *OperatorRepo) scanOperator(row pgx.Row) (*domain.Operator, error) {
	op := &domain.Operator{}
	err := row.Scan(
		&op.ID, &op.Username, &op.PasswordHash, &op.Account, &op.Role, &op.Status, &op.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan operator: %w", err)
	}
	return op, nil
}
