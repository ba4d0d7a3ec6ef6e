package dto

import (
	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"

	"github.com/shopspring/decimal"
)

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CreateOperatorRequest is the request body for operator provisioning.
type CreateOperatorRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Account  string `json:"account" binding:"required,max=100,safe_id"`
	Role     string `json:"role" binding:"required,oneof=OPERATOR APPROVER ADMIN"`
}

// OperatorResponse is the response body for a provisioned operator.
type OperatorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Account  string `json:"account"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// FlowRequest is the request body for deposit and redemption flows, both
// instant and queued. Amount is in payment-asset units for deposits and
// token units for redemptions. Recipient defaults to the caller's account.
type FlowRequest struct {
	Recipient string `json:"recipient,omitempty" binding:"omitempty,max=100,safe_id"`
	Asset     string `json:"asset" binding:"required,max=50,safe_id"`
	Amount    string `json:"amount" binding:"required,positive_decimal"`
}

// InstantResultResponse is the response body for a settled instant flow.
type InstantResultResponse struct {
	Direction string `json:"direction"`
	Gross     string `json:"gross"`
	Fee       string `json:"fee"`
	Settled   string `json:"settled"`
	Rate      string `json:"rate"`
	RateAt    string `json:"rate_observed_at"`
}

// RequestResponse is the response body for a vault request.
type RequestResponse struct {
	ID          int64   `json:"id"`
	Direction   string  `json:"direction"`
	Requester   string  `json:"requester"`
	Recipient   string  `json:"recipient"`
	Asset       string  `json:"asset"`
	GrossAmount string  `json:"gross_amount"`
	Status      string  `json:"status"`
	AppliedRate *string `json:"applied_rate,omitempty"`
	Fee         *string `json:"fee,omitempty"`
	SettledBy   *string `json:"settled_by,omitempty"`
	SettledAt   *string `json:"settled_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// RequestListResponse wraps a paginated request list.
type RequestListResponse struct {
	Items      []RequestResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ApproveRequest is the request body for settling a single request.
// ExpectedRate is the price the approver saw; settlement fails if the
// fresh oracle read deviates beyond the configured tolerance.
type ApproveRequest struct {
	ExpectedRate string `json:"expected_rate" binding:"required,positive_decimal"`
}

// BulkApproveEntry is one entry of a batch approval.
type BulkApproveEntry struct {
	ID           int64  `json:"id" binding:"required,gt=0"`
	ExpectedRate string `json:"expected_rate" binding:"required,positive_decimal"`
}

// BulkApproveRequest is the request body for batch settlement.
type BulkApproveRequest struct {
	Entries []BulkApproveEntry `json:"entries" binding:"required,min=1,max=100,dive"`
}

// RejectRequest is the request body for rejecting a request.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// FeeTierRequest is one row of an asset's fee table.
type FeeTierRequest struct {
	Threshold string `json:"threshold" binding:"required,decimal"`
	Bps       int64  `json:"bps" binding:"gte=0,lt=10000"`
	FlatFee   string `json:"flat_fee" binding:"required,decimal"`
}

// SurchargeRequest is the extra redemption fee of an asset.
type SurchargeRequest struct {
	Flat string `json:"flat" binding:"required,decimal"`
	Bps  int64  `json:"bps" binding:"gte=0,lt=10000"`
}

// UpsertAssetRequest is the request body for asset configuration.
type UpsertAssetRequest struct {
	Asset     string            `json:"asset" binding:"required,max=50,safe_id"`
	OracleRef string            `json:"oracle_ref" binding:"omitempty,max=100,safe_id"`
	Enabled   bool              `json:"enabled"`
	Stable    bool              `json:"stable"`
	Decimals  int32             `json:"decimals" binding:"gte=0,lte=18"`
	Tiers     []FeeTierRequest  `json:"tiers" binding:"omitempty,dive"`
	Surcharge *SurchargeRequest `json:"surcharge,omitempty"`
}

// SetAssetEnabledRequest toggles an asset.
type SetAssetEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// SetMinAmountRequest updates the per-flow floor.
type SetMinAmountRequest struct {
	MinAmount string `json:"min_amount" binding:"required,decimal"`
}

// SetCeilingsRequest updates the per-window volume ceilings. "0" disables
// the corresponding window check.
type SetCeilingsRequest struct {
	DepositCeiling string `json:"deposit_ceiling" binding:"required,decimal"`
	RedeemCeiling  string `json:"redeem_ceiling" binding:"required,decimal"`
}

// SetReceiversRequest updates the fee and proceeds receiver accounts.
type SetReceiversRequest struct {
	FeeReceiver      string `json:"fee_receiver" binding:"omitempty,max=100,safe_id"`
	ProceedsReceiver string `json:"proceeds_receiver" binding:"omitempty,max=100,safe_id"`
}

// BlockPartyRequest adds an account to the compliance blocklist.
type BlockPartyRequest struct {
	Account string `json:"account" binding:"required,max=100,safe_id"`
}

// ToRequestResponse maps a domain request to its wire shape.
func ToRequestResponse(r *domain.Request) RequestResponse {
	resp := RequestResponse{
		ID:          r.ID,
		Direction:   string(r.Direction),
		Requester:   r.Requester,
		Recipient:   r.Recipient,
		Asset:       r.Asset,
		GrossAmount: r.GrossAmount.String(),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.UTC().Format(timeFormat),
	}
	if r.AppliedRate != nil {
		s := r.AppliedRate.String()
		resp.AppliedRate = &s
	}
	if r.Fee != nil {
		s := r.Fee.String()
		resp.Fee = &s
	}
	if r.SettledBy != nil {
		s := *r.SettledBy
		resp.SettledBy = &s
	}
	if r.SettledAt != nil {
		s := r.SettledAt.UTC().Format(timeFormat)
		resp.SettledAt = &s
	}
	return resp
}

// ToInstantResponse maps an instant flow outcome to its wire shape.
func ToInstantResponse(res *ports.InstantResult) InstantResultResponse {
	return InstantResultResponse{
		Direction: string(res.Direction),
		Gross:     res.Gross.String(),
		Fee:       res.Fee.String(),
		Settled:   res.Settled.String(),
		Rate:      res.Rate.Price.String(),
		RateAt:    res.Rate.ObservedAt.UTC().Format(timeFormat),
	}
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

// Amount parses a validated decimal field. Callers bind with the
// positive_decimal tag first, so failures here are programming errors.
func Amount(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}
