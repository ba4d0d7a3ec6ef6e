package service

import (
	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"
	"token-vault/pkg/apperror"

	"github.com/shopspring/decimal"
)

// FeeService implements ports.FeePolicy.
//
// The fee for a flow is taken from the asset's tier table: the tier with
// the highest threshold not exceeding the gross amount applies, and the
// charged fee is max(flatFee, gross*bps/10000). Redemptions may pay an
// extra surcharge on top; deposits never do.
type FeeService struct{}

// NewFeeService creates a new FeeService.
func NewFeeService() *FeeService {
	return &FeeService{}
}

// Quote computes (fee, net) for a gross amount. Fails with BelowMinimum
// when gross is under the vault minimum or too small to cover its own fee.
func (s *FeeService) Quote(gross decimal.Decimal, asset *domain.PaymentAssetConfig, vault *domain.VaultConfig, direction domain.Direction) (ports.FeeQuote, error) {
	if !gross.IsPositive() {
		return ports.FeeQuote{}, apperror.ErrInvalidAmount()
	}
	if gross.LessThan(vault.MinAmount) {
		return ports.FeeQuote{}, apperror.ErrBelowMinimum()
	}

	fee := decimal.Zero
	if tier := asset.TierFor(gross); tier != nil {
		pct := gross.Mul(decimal.NewFromInt(tier.Bps)).Div(domain.BpsDenominator)
		fee = decimal.Max(tier.FlatFee, pct)
	}

	if direction == domain.DirectionRedeem && asset.Surcharge != nil {
		fee = fee.Add(asset.Surcharge.Flat)
		if asset.Surcharge.Bps > 0 {
			fee = fee.Add(gross.Mul(decimal.NewFromInt(asset.Surcharge.Bps)).Div(domain.BpsDenominator))
		}
	}

	// A fee may never consume the whole amount. Flat fees can exceed a
	// small gross even with a valid tier table, so the amount is simply
	// too small to transact.
	if fee.GreaterThanOrEqual(gross) {
		return ports.FeeQuote{}, apperror.ErrBelowMinimum()
	}

	return ports.FeeQuote{Fee: fee, Net: gross.Sub(fee)}, nil
}
