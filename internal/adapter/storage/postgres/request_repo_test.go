package postgres

import (
	"context"
	"testing"
	"time"

	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestRequest(id int64) *domain.Request {
	return &domain.Request{
		ID:             id,
		Direction:      domain.DirectionDeposit,
		Requester:      "alice",
		Recipient:      "alice",
		Asset:          "USDC",
		GrossAmount:    dec("100"),
		EscrowedAmount: dec("100"),
		Status:         domain.RequestStatusPending,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func requestTestColumns() []string {
	return []string{"id", "direction", "requester", "recipient", "asset", "gross_amount",
		"escrowed_amount", "status", "applied_rate", "fee", "settled_by", "settled_at", "created_at"}
}

func requestRow(r *domain.Request) *pgxmock.Rows {
	return pgxmock.NewRows(requestTestColumns()).AddRow(
		r.ID, r.Direction, r.Requester, r.Recipient, r.Asset,
		r.GrossAmount, r.EscrowedAmount, r.Status,
		r.AppliedRate, r.Fee, r.SettledBy, r.SettledAt, r.CreatedAt,
	)
}

func TestRequestRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	r := newTestRequest(0)

	mock.ExpectQuery("INSERT INTO vault_requests").
		WithArgs(
			r.Direction, r.Requester, r.Recipient, r.Asset,
			r.GrossAmount, r.EscrowedAmount, r.Status, r.CreatedAt,
		).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.Create(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	r := newTestRequest(7)

	mock.ExpectQuery("SELECT .+ FROM vault_requests WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(requestRow(r))

	result, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, domain.RequestStatusPending, result.Status)
	assert.True(t, result.GrossAmount.Equal(dec("100")))
	assert.Nil(t, result.AppliedRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM vault_requests WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(requestTestColumns()))

	result, err := repo.GetByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_MarkSettled(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	settledAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vault_requests").
		WithArgs(domain.RequestStatusApproved, dec("1.5"), dec("2"), "approver", settledAt, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.MarkSettled(context.Background(), tx, 7, domain.RequestStatusApproved,
		dec("1.5"), dec("2"), "approver", settledAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_MarkSettled_NotPending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)

	mock.ExpectBegin()
	// Status guard matches no rows when the request is already terminal.
	mock.ExpectExec("UPDATE vault_requests").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.MarkSettled(context.Background(), tx, 7, domain.RequestStatusApproved,
		dec("1.5"), dec("2"), "approver", time.Now())
	assert.ErrorIs(t, err, ports.ErrRequestNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_List_FiltersAndPaginates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	pending := domain.RequestStatusPending

	mock.ExpectQuery("SELECT COUNT.+ FROM vault_requests").
		WithArgs(pending).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery("SELECT .+ FROM vault_requests").
		WithArgs(pending, 2, 0).
		WillReturnRows(requestRow(newTestRequest(2)).AddRow(
			int64(1), domain.DirectionRedeem, "bob", "bob", "USDC",
			dec("50"), dec("50"), domain.RequestStatusPending,
			nil, nil, nil, nil, time.Now().UTC(),
		))

	list, total, err := repo.List(context.Background(), ports.RequestListParams{
		Status:   &pending,
		Page:     1,
		PageSize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
