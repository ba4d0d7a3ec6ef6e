package service

import (
	"testing"

	"token-vault/internal/core/domain"

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

func feeTestAsset() *domain.PaymentAssetConfig {
	return &domain.PaymentAssetConfig{
		Asset:    "USDC",
		Enabled:  true,
		Decimals: 6,
		Tiers: []domain.FeeTier{
			{Threshold: dec("0"), Bps: 50, FlatFee: dec("0.25")},
			{Threshold: dec("1000"), Bps: 20, FlatFee: dec("1")},
		},
		Surcharge: &domain.RedemptionSurcharge{Flat: dec("2"), Bps: 10},
	}
}

func feeTestVault() *domain.VaultConfig {
	return &domain.VaultConfig{MinAmount: dec("10")}
}

func TestFeeService_Quote_PercentageDominates(t *testing.T) {
	svc := NewFeeService()

	// 500 * 50bps = 2.5 > flat 0.25
	q, err := svc.Quote(dec("500"), feeTestAsset(), feeTestVault(), domain.DirectionDeposit)
	require.NoError(t, err)
	assert.True(t, q.Fee.Equal(dec("2.5")), "fee = %s", q.Fee)
	assert.True(t, q.Net.Equal(dec("497.5")), "net = %s", q.Net)
}

func TestFeeService_Quote_FlatDominates(t *testing.T) {
	svc := NewFeeService()

	// 20 * 50bps = 0.10 < flat 0.25
	q, err := svc.Quote(dec("20"), feeTestAsset(), feeTestVault(), domain.DirectionDeposit)
	require.NoError(t, err)
	assert.True(t, q.Fee.Equal(dec("0.25")), "fee = %s", q.Fee)
	assert.True(t, q.Net.Equal(dec("19.75")), "net = %s", q.Net)
}

func TestFeeService_Quote_HigherTierSelected(t *testing.T) {
	svc := NewFeeService()

	// 2000 lands in the 20bps tier: 2000 * 20bps = 4 > flat 1
	q, err := svc.Quote(dec("2000"), feeTestAsset(), feeTestVault(), domain.DirectionDeposit)
	require.NoError(t, err)
	assert.True(t, q.Fee.Equal(dec("4")), "fee = %s", q.Fee)
}

func TestFeeService_Quote_RedeemSurcharge(t *testing.T) {
	svc := NewFeeService()

	// Base: 500 * 50bps = 2.5; surcharge: 2 flat + 500 * 10bps = 2.5
	q, err := svc.Quote(dec("500"), feeTestAsset(), feeTestVault(), domain.DirectionRedeem)
	require.NoError(t, err)
	assert.True(t, q.Fee.Equal(dec("5")), "fee = %s", q.Fee)
	assert.True(t, q.Net.Equal(dec("495")), "net = %s", q.Net)
}

func TestFeeService_Quote_DepositSkipsSurcharge(t *testing.T) {
	svc := NewFeeService()

	deposit, err := svc.Quote(dec("500"), feeTestAsset(), feeTestVault(), domain.DirectionDeposit)
	require.NoError(t, err)
	redeem, err := svc.Quote(dec("500"), feeTestAsset(), feeTestVault(), domain.DirectionRedeem)
	require.NoError(t, err)
	assert.True(t, redeem.Fee.GreaterThan(deposit.Fee))
}

func TestFeeService_Quote_BelowMinimum(t *testing.T) {
	svc := NewFeeService()

	_, err := svc.Quote(dec("9.99"), feeTestAsset(), feeTestVault(), domain.DirectionDeposit)
	assertAppError(t, err, "VAULT_004")
}

func TestFeeService_Quote_NonPositiveGross(t *testing.T) {
	svc := NewFeeService()

	_, err := svc.Quote(dec("0"), feeTestAsset(), feeTestVault(), domain.DirectionDeposit)
	assertAppError(t, err, "VAULT_010")

	_, err = svc.Quote(dec("-5"), feeTestAsset(), feeTestVault(), domain.DirectionDeposit)
	assertAppError(t, err, "VAULT_010")
}

func TestFeeService_Quote_FeeNeverConfiscatory(t *testing.T) {
	svc := NewFeeService()

	// Flat fee of 12 would eat the whole gross of 11.
	asset := &domain.PaymentAssetConfig{
		Asset:   "USDC",
		Enabled: true,
		Tiers:   []domain.FeeTier{{Threshold: dec("0"), Bps: 0, FlatFee: dec("12")}},
	}
	_, err := svc.Quote(dec("11"), asset, feeTestVault(), domain.DirectionDeposit)
	assertAppError(t, err, "VAULT_004")
}

func TestFeeService_Quote_FeeFreeWithoutTier(t *testing.T) {
	svc := NewFeeService()

	asset := &domain.PaymentAssetConfig{Asset: "USDC", Enabled: true}
	q, err := svc.Quote(dec("100"), asset, feeTestVault(), domain.DirectionDeposit)
	require.NoError(t, err)
	assert.True(t, q.Fee.IsZero())
	assert.True(t, q.Net.Equal(dec("100")))
}
