package ports

import (
	"context"
	"time"

	"token-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Collaborator Ports (external systems) ---

// PriceOracle reads the current price of a payment asset in token units.
// Implementations fail with apperror StalePrice / InvalidPrice; they never
// cache — every call is a fresh read.
type PriceOracle interface {
	LatestPrice(ctx context.Context, oracleRef string) (domain.RateSnapshot, error)
}

// ComplianceRegistry answers whether a party may participate. Statuses can
// change between calls; each check reflects only the current state.
type ComplianceRegistry interface {
	IsBlocked(ctx context.Context, account string) (bool, error)
	Block(ctx context.Context, account string) error
	Unblock(ctx context.Context, account string) error
}

// TokenLedger is the external tracked-token ledger.
type TokenLedger interface {
	Mint(ctx context.Context, to string, amount decimal.Decimal) error
	Burn(ctx context.Context, from string, amount decimal.Decimal) error
	Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error
	BalanceOf(ctx context.Context, account string) (decimal.Decimal, error)
	Paused(ctx context.Context) (bool, error)
}

// AssetBook is the payment-asset transfer surface (standard
// transfer/balance semantics per asset).
type AssetBook interface {
	Transfer(ctx context.Context, asset, from, to string, amount decimal.Decimal) error
	BalanceOf(ctx context.Context, asset, account string) (decimal.Decimal, error)
}

// --- Engine Ports ---

// VolumeWindow tracks cumulative instant-flow volume inside the active
// fixed-length window, per direction.
type VolumeWindow interface {
	// Reserve atomically adds amount to the active window if the result
	// stays within ceiling. Returns false with no mutation when the ceiling
	// would be exceeded. Callers bypass Reserve entirely for a zero ceiling.
	Reserve(ctx context.Context, direction domain.Direction, amount, ceiling decimal.Decimal, window time.Duration) (bool, error)
	// Release backs out a prior reservation when a later step of the same
	// operation fails.
	Release(ctx context.Context, direction domain.Direction, amount decimal.Decimal, window time.Duration) error
	// Usage returns the cumulative volume of the active window.
	Usage(ctx context.Context, direction domain.Direction, window time.Duration) (decimal.Decimal, error)
}

// FeeQuote is the outcome of a fee computation: gross = fee + net.
type FeeQuote struct {
	Fee decimal.Decimal
	Net decimal.Decimal
}

// FeePolicy computes fee and net amount for a flow. Pure: the result is a
// function of its inputs only.
type FeePolicy interface {
	Quote(gross decimal.Decimal, asset *domain.PaymentAssetConfig, vault *domain.VaultConfig, direction domain.Direction) (FeeQuote, error)
}

// RoleChecker is the explicit capability check: may caller act as required?
// Fails with apperror AccessDenied.
type RoleChecker interface {
	Require(ctx context.Context, caller string, required domain.Role) error
}

// EventPublisher emits observability signals on every state change.
// Publishing is best-effort and must not fail the operation.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.VaultEvent)
}

// --- Service Ports (Business Logic) ---

// FlowRequest holds validated input for a deposit/redemption flow.
// Gross is in payment-asset units for deposits and token units for
// redemptions.
type FlowRequest struct {
	Caller    string
	Recipient string
	Asset     string
	Gross     decimal.Decimal
}

// InstantResult is the outcome of a settled instant flow. Settled is the
// minted token amount for deposits and the paid-out payment-asset amount
// for redemptions.
type InstantResult struct {
	Direction domain.Direction
	Gross     decimal.Decimal
	Fee       decimal.Decimal
	Settled   decimal.Decimal
	Rate      domain.RateSnapshot
}

// VaultService orchestrates instant flows and the request lifecycle up to
// settlement.
type VaultService interface {
	DepositInstant(ctx context.Context, req FlowRequest) (*InstantResult, error)
	RedeemInstant(ctx context.Context, req FlowRequest) (*InstantResult, error)
	DepositRequest(ctx context.Context, req FlowRequest) (*domain.Request, error)
	RedeemRequest(ctx context.Context, req FlowRequest) (*domain.Request, error)
	CancelRequest(ctx context.Context, caller string, id int64) (*domain.Request, error)
	GetRequest(ctx context.Context, id int64) (*domain.Request, error)
	ListRequests(ctx context.Context, params RequestListParams) ([]domain.Request, int64, error)
}

// ApprovalEntry pairs a request id with the rate the approver expects the
// fresh oracle read to match.
type ApprovalEntry struct {
	ID           int64
	ExpectedRate decimal.Decimal
}

// SettlementService approves or rejects pending requests.
type SettlementService interface {
	ApproveRequest(ctx context.Context, caller string, entry ApprovalEntry) (*domain.Request, error)
	// BulkApprove settles all entries or none: the first failing entry's
	// error is returned and no state change survives.
	BulkApprove(ctx context.Context, caller string, entries []ApprovalEntry) ([]domain.Request, error)
	RejectRequest(ctx context.Context, caller string, id int64, reason string) (*domain.Request, error)
}

// VaultStatus is a point-in-time view of the vault for operators.
type VaultStatus struct {
	Paused         bool                        `json:"paused"`
	MinAmount      decimal.Decimal             `json:"min_amount"`
	DepositCeiling decimal.Decimal             `json:"deposit_ceiling"`
	RedeemCeiling  decimal.Decimal             `json:"redeem_ceiling"`
	DepositUsage   decimal.Decimal             `json:"deposit_usage"`
	RedeemUsage    decimal.Decimal             `json:"redeem_usage"`
	Assets         []domain.PaymentAssetConfig `json:"assets"`
}

// AdminService covers the configuration surface (admin role).
type AdminService interface {
	UpsertAsset(ctx context.Context, caller string, cfg domain.PaymentAssetConfig) error
	SetAssetEnabled(ctx context.Context, caller string, asset string, enabled bool) error
	SetMinAmount(ctx context.Context, caller string, min decimal.Decimal) error
	SetCeilings(ctx context.Context, caller string, deposit, redeem decimal.Decimal) error
	SetReceivers(ctx context.Context, caller string, feeReceiver, proceedsReceiver string) error
	BlockParty(ctx context.Context, caller string, account string) error
	UnblockParty(ctx context.Context, caller string, account string) error
	VaultStatus(ctx context.Context) (*VaultStatus, error)
}

// CreateOperatorRequest holds input for operator provisioning.
type CreateOperatorRequest struct {
	Username string
	Password string
	Account  string
	Role     domain.Role
}

// AuthService defines operator authentication.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
	CreateOperator(ctx context.Context, caller string, req CreateOperatorRequest) (*domain.Operator, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	OperatorID uuid.UUID
	Account    string
	Role       domain.Role
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(op *domain.Operator) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}
