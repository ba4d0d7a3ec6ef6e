package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VaultConfig is the singleton per-vault configuration, read on every flow.
type VaultConfig struct {
	MinAmount decimal.Decimal `json:"min_amount"`
	// Instant-flow ceilings per rolling window and direction.
	// Zero means unlimited.
	DepositCeiling   decimal.Decimal `json:"deposit_ceiling"`
	RedeemCeiling    decimal.Decimal `json:"redeem_ceiling"`
	WindowLength     time.Duration   `json:"window_length"`
	RateToleranceBps int64           `json:"rate_tolerance_bps"`
	VaultAccount     string          `json:"vault_account"`
	FeeReceiver      string          `json:"fee_receiver"`
	ProceedsReceiver string          `json:"proceeds_receiver"`
	TokenDecimals    int32           `json:"token_decimals"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CeilingFor returns the instant-flow ceiling for a direction.
func (c *VaultConfig) CeilingFor(d Direction) decimal.Decimal {
	if d == DirectionRedeem {
		return c.RedeemCeiling
	}
	return c.DepositCeiling
}

// RateSnapshot is an oracle price as observed at settlement time.
type RateSnapshot struct {
	Price      decimal.Decimal `json:"price"`
	ObservedAt time.Time       `json:"observed_at"`
}

// UnitRate is the snapshot used for stable assets, which skip the oracle.
func UnitRate(now time.Time) RateSnapshot {
	return RateSnapshot{Price: decimal.NewFromInt(1), ObservedAt: now}
}

// WithinTolerance reports whether the snapshot price deviates from expected
// by at most toleranceBps basis points of the expected price.
func (s RateSnapshot) WithinTolerance(expected decimal.Decimal, toleranceBps int64) bool {
	if !expected.IsPositive() {
		return false
	}
	diff := s.Price.Sub(expected).Abs()
	allowed := expected.Mul(decimal.NewFromInt(toleranceBps)).Div(BpsDenominator)
	return diff.LessThanOrEqual(allowed)
}

// WindowBucket derives the active fixed-length window bucket from a
// timestamp. There is no background reset: a new bucket id implies the
// previous window's volume no longer counts.
func WindowBucket(now time.Time, window time.Duration) int64 {
	secs := int64(window.Seconds())
	if secs <= 0 {
		return 0
	}
	return now.Unix() / secs
}

// DailyWindow is the in-memory cumulative instant-flow volume for one
// direction inside the active bucket.
type DailyWindow struct {
	Bucket int64
	Volume decimal.Decimal
}
