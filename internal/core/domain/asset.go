package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BpsDenominator is the basis-point scale: 1 bps = 1/10000.
var BpsDenominator = decimal.NewFromInt(10000)

// FeeTier is one row of an asset's fee table. Tiers are ordered by
// ascending Threshold; the tier applied to an amount is the one with the
// highest threshold not exceeding it.
type FeeTier struct {
	Threshold decimal.Decimal `json:"threshold"`
	Bps       int64           `json:"bps"`
	FlatFee   decimal.Decimal `json:"flat_fee"`
}

// RedemptionSurcharge is an extra fee layered on top of the base fee for
// redemption flows. Deposits never pay it.
type RedemptionSurcharge struct {
	Flat decimal.Decimal `json:"flat"`
	Bps  int64           `json:"bps"`
}

// PaymentAssetConfig describes one supported payment asset of a vault.
type PaymentAssetConfig struct {
	Asset     string `json:"asset"`
	OracleRef string `json:"oracle_ref"`
	Enabled   bool   `json:"enabled"`
	// Stable assets skip the oracle conversion and settle at rate 1.
	Stable    bool                 `json:"stable"`
	Decimals  int32                `json:"decimals"`
	Tiers     []FeeTier            `json:"tiers"`
	Surcharge *RedemptionSurcharge `json:"surcharge,omitempty"`
}

// TierFor selects the tier with the highest threshold not exceeding gross.
// Returns nil if no tier qualifies (fee-free flow).
func (a *PaymentAssetConfig) TierFor(gross decimal.Decimal) *FeeTier {
	var selected *FeeTier
	for i := range a.Tiers {
		if a.Tiers[i].Threshold.GreaterThan(gross) {
			break
		}
		selected = &a.Tiers[i]
	}
	return selected
}

// Validate rejects configurations that could produce a confiscatory fee
// or an ambiguous tier table.
func (a *PaymentAssetConfig) Validate() error {
	if a.Asset == "" {
		return fmt.Errorf("asset identifier must be set")
	}
	if a.Decimals < 0 {
		return fmt.Errorf("asset %s: decimals must not be negative", a.Asset)
	}
	prev := decimal.NewFromInt(-1)
	for i, tier := range a.Tiers {
		if tier.Threshold.IsNegative() {
			return fmt.Errorf("asset %s: tier %d threshold must not be negative", a.Asset, i)
		}
		if !tier.Threshold.GreaterThan(prev) {
			return fmt.Errorf("asset %s: tier thresholds must be strictly ascending", a.Asset)
		}
		if tier.Bps < 0 || tier.Bps >= 10000 {
			return fmt.Errorf("asset %s: tier %d bps must be in [0, 10000)", a.Asset, i)
		}
		if tier.FlatFee.IsNegative() {
			return fmt.Errorf("asset %s: tier %d flat fee must not be negative", a.Asset, i)
		}
		prev = tier.Threshold
	}
	if a.Surcharge != nil {
		if a.Surcharge.Bps < 0 || a.Surcharge.Bps >= 10000 {
			return fmt.Errorf("asset %s: surcharge bps must be in [0, 10000)", a.Asset)
		}
		if a.Surcharge.Flat.IsNegative() {
			return fmt.Errorf("asset %s: surcharge flat must not be negative", a.Asset)
		}
	}
	return nil
}
