package service

import (
	"context"
	"fmt"
	"time"

	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"
	"token-vault/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AdminServiceImpl implements ports.AdminService. Every mutation is
// admin-gated and journaled.
type AdminServiceImpl struct {
	assetRepo  ports.AssetConfigRepository
	vaultRepo  ports.VaultConfigRepository
	compliance ports.ComplianceRegistry
	ledger     ports.TokenLedger
	window     ports.VolumeWindow
	roles      ports.RoleChecker
	events     ports.EventPublisher
	log        zerolog.Logger
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(
	assetRepo ports.AssetConfigRepository,
	vaultRepo ports.VaultConfigRepository,
	compliance ports.ComplianceRegistry,
	ledger ports.TokenLedger,
	window ports.VolumeWindow,
	roles ports.RoleChecker,
	events ports.EventPublisher,
	log zerolog.Logger,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		assetRepo:  assetRepo,
		vaultRepo:  vaultRepo,
		compliance: compliance,
		ledger:     ledger,
		window:     window,
		roles:      roles,
		events:     events,
		log:        log,
	}
}

// UpsertAsset registers or replaces a payment asset configuration.
func (s *AdminServiceImpl) UpsertAsset(ctx context.Context, caller string, cfg domain.PaymentAssetConfig) error {
	if err := s.roles.Require(ctx, caller, domain.RoleAdmin); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return apperror.Validation(err.Error())
	}
	if err := s.assetRepo.Upsert(ctx, &cfg); err != nil {
		return apperror.InternalError(fmt.Errorf("upsert asset: %w", err))
	}

	ev := domain.NewEvent(domain.EventAssetUpdated, caller)
	ev.Asset = cfg.Asset
	ev.Detail = fmt.Sprintf("enabled=%t stable=%t tiers=%d", cfg.Enabled, cfg.Stable, len(cfg.Tiers))
	s.events.Publish(ctx, ev)

	s.log.Info().Str("asset", cfg.Asset).Bool("enabled", cfg.Enabled).Str("by", caller).Msg("asset config updated")
	return nil
}

// SetAssetEnabled toggles an asset without touching the rest of its config.
func (s *AdminServiceImpl) SetAssetEnabled(ctx context.Context, caller string, asset string, enabled bool) error {
	if err := s.roles.Require(ctx, caller, domain.RoleAdmin); err != nil {
		return err
	}
	existing, err := s.assetRepo.Get(ctx, asset)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load asset: %w", err))
	}
	if existing == nil {
		return apperror.ErrNotFound("PaymentAsset")
	}
	if err := s.assetRepo.SetEnabled(ctx, asset, enabled); err != nil {
		return apperror.InternalError(fmt.Errorf("set asset enabled: %w", err))
	}

	ev := domain.NewEvent(domain.EventAssetUpdated, caller)
	ev.Asset = asset
	ev.Detail = fmt.Sprintf("enabled=%t", enabled)
	s.events.Publish(ctx, ev)

	s.log.Info().Str("asset", asset).Bool("enabled", enabled).Str("by", caller).Msg("asset toggled")
	return nil
}

// SetMinAmount updates the global minimum gross amount.
func (s *AdminServiceImpl) SetMinAmount(ctx context.Context, caller string, min decimal.Decimal) error {
	if min.IsNegative() {
		return apperror.Validation("minimum amount must not be negative")
	}
	return s.updateConfig(ctx, caller, domain.EventLimitUpdated, fmt.Sprintf("min_amount=%s", min), func(cfg *domain.VaultConfig) {
		cfg.MinAmount = min
	})
}

// SetCeilings updates the per-window volume ceilings. Zero disables the
// check for that direction.
func (s *AdminServiceImpl) SetCeilings(ctx context.Context, caller string, deposit, redeem decimal.Decimal) error {
	if deposit.IsNegative() || redeem.IsNegative() {
		return apperror.Validation("ceilings must not be negative")
	}
	detail := fmt.Sprintf("deposit_ceiling=%s redeem_ceiling=%s", deposit, redeem)
	return s.updateConfig(ctx, caller, domain.EventLimitUpdated, detail, func(cfg *domain.VaultConfig) {
		cfg.DepositCeiling = deposit
		cfg.RedeemCeiling = redeem
	})
}

// SetReceivers updates the fee and proceeds destination accounts.
func (s *AdminServiceImpl) SetReceivers(ctx context.Context, caller string, feeReceiver, proceedsReceiver string) error {
	detail := fmt.Sprintf("fee_receiver=%s proceeds_receiver=%s", feeReceiver, proceedsReceiver)
	return s.updateConfig(ctx, caller, domain.EventReceiversUpdated, detail, func(cfg *domain.VaultConfig) {
		cfg.FeeReceiver = feeReceiver
		cfg.ProceedsReceiver = proceedsReceiver
	})
}

func (s *AdminServiceImpl) updateConfig(ctx context.Context, caller string, kind domain.EventKind, detail string, mutate func(*domain.VaultConfig)) error {
	if err := s.roles.Require(ctx, caller, domain.RoleAdmin); err != nil {
		return err
	}
	cfg, err := s.vaultRepo.Get(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load vault config: %w", err))
	}
	if cfg == nil {
		return apperror.InternalError(fmt.Errorf("vault config not seeded"))
	}
	mutate(cfg)
	cfg.UpdatedAt = time.Now().UTC()
	if err := s.vaultRepo.Save(ctx, cfg); err != nil {
		return apperror.InternalError(fmt.Errorf("save vault config: %w", err))
	}

	ev := domain.NewEvent(kind, caller)
	ev.Detail = detail
	s.events.Publish(ctx, ev)

	s.log.Info().Str("by", caller).Str("change", detail).Msg("vault config updated")
	return nil
}

// BlockParty adds an account to the blocklist. Pending requests involving
// the account stay pending; they fail at settlement time instead.
func (s *AdminServiceImpl) BlockParty(ctx context.Context, caller string, account string) error {
	if err := s.roles.Require(ctx, caller, domain.RoleAdmin); err != nil {
		return err
	}
	if account == "" {
		return apperror.Validation("account is required")
	}
	if err := s.compliance.Block(ctx, account); err != nil {
		return apperror.InternalError(fmt.Errorf("block %s: %w", account, err))
	}
	s.log.Info().Str("account", account).Str("by", caller).Msg("party blocked")
	return nil
}

// UnblockParty removes an account from the blocklist.
func (s *AdminServiceImpl) UnblockParty(ctx context.Context, caller string, account string) error {
	if err := s.roles.Require(ctx, caller, domain.RoleAdmin); err != nil {
		return err
	}
	if account == "" {
		return apperror.Validation("account is required")
	}
	if err := s.compliance.Unblock(ctx, account); err != nil {
		return apperror.InternalError(fmt.Errorf("unblock %s: %w", account, err))
	}
	s.log.Info().Str("account", account).Str("by", caller).Msg("party unblocked")
	return nil
}

// VaultStatus returns the current configuration and window usage.
func (s *AdminServiceImpl) VaultStatus(ctx context.Context) (*ports.VaultStatus, error) {
	cfg, err := s.vaultRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load vault config: %w", err))
	}
	if cfg == nil {
		return nil, apperror.InternalError(fmt.Errorf("vault config not seeded"))
	}

	paused, err := s.ledger.Paused(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ledger paused check: %w", err))
	}

	depositUsage, err := s.window.Usage(ctx, domain.DirectionDeposit, cfg.WindowLength)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("deposit usage: %w", err))
	}
	redeemUsage, err := s.window.Usage(ctx, domain.DirectionRedeem, cfg.WindowLength)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("redeem usage: %w", err))
	}

	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list assets: %w", err))
	}

	return &ports.VaultStatus{
		Paused:         paused,
		MinAmount:      cfg.MinAmount,
		DepositCeiling: cfg.DepositCeiling,
		RedeemCeiling:  cfg.RedeemCeiling,
		DepositUsage:   depositUsage,
		RedeemUsage:    redeemUsage,
		Assets:         assets,
	}, nil
}
