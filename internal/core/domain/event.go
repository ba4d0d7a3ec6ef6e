package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventKind identifies a vault state change.
type EventKind string

const (
	EventRequestCreated   EventKind = "REQUEST_CREATED"
	EventRequestApproved  EventKind = "REQUEST_APPROVED"
	EventRequestRejected  EventKind = "REQUEST_REJECTED"
	EventRequestCancelled EventKind = "REQUEST_CANCELLED"
	EventInstantDeposit   EventKind = "INSTANT_DEPOSIT"
	EventInstantRedeem    EventKind = "INSTANT_REDEEM"
	EventAssetUpdated     EventKind = "ASSET_UPDATED"
	EventLimitUpdated     EventKind = "LIMIT_UPDATED"
	EventReceiversUpdated EventKind = "RECEIVERS_UPDATED"
)

// VaultEvent is an append-only observability record emitted on every
// state change.
type VaultEvent struct {
	ID        uuid.UUID        `json:"id"`
	Kind      EventKind        `json:"kind"`
	Actor     string           `json:"actor"`
	Asset     string           `json:"asset,omitempty"`
	RequestID *int64           `json:"request_id,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Rate      *decimal.Decimal `json:"rate,omitempty"`
	Fee       *decimal.Decimal `json:"fee,omitempty"`
	Detail    string           `json:"detail,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewEvent constructs an event with a fresh id and timestamp.
func NewEvent(kind EventKind, actor string) VaultEvent {
	return VaultEvent{
		ID:        uuid.New(),
		Kind:      kind,
		Actor:     actor,
		CreatedAt: time.Now().UTC(),
	}
}
