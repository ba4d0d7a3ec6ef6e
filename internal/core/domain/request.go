package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction distinguishes deposit (payment asset in, tokens out) from
// redemption (tokens in, payment asset out).
type Direction string

const (
	DirectionDeposit Direction = "DEPOSIT"
	DirectionRedeem  Direction = "REDEEM"
)

// RequestStatus represents the lifecycle state of a vault request.
// The only legal transitions are PENDING -> APPROVED and PENDING -> REJECTED;
// both terminal states are permanent audit records.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// Request is a pending or settled deposit/redemption request.
// IDs are assigned by the store, strictly increasing, and never reused.
// Rows are never deleted.
type Request struct {
	ID             int64           `json:"id"`
	Direction      Direction       `json:"direction"`
	Requester      string          `json:"requester"`
	Recipient      string          `json:"recipient"`
	Asset          string          `json:"asset"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	EscrowedAmount decimal.Decimal `json:"escrowed_amount"`
	Status         RequestStatus   `json:"status"`

	// Settlement outcome. Nil while the request is pending; the rate is
	// always the oracle price observed at settlement time, never at creation.
	AppliedRate *decimal.Decimal `json:"applied_rate,omitempty"`
	Fee         *decimal.Decimal `json:"fee,omitempty"`
	SettledBy   *string          `json:"settled_by,omitempty"`
	SettledAt   *time.Time       `json:"settled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsPending returns true if the request can still be settled or cancelled.
func (r *Request) IsPending() bool {
	return r.Status == RequestStatusPending
}

// IsTerminal returns true if the request reached a final state.
func (r *Request) IsTerminal() bool {
	return r.Status == RequestStatusApproved || r.Status == RequestStatusRejected
}
