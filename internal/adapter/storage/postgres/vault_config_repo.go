package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"token-vault/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// VaultConfigRepo implements ports.VaultConfigRepository. The configuration
// lives in a single fixed-id row.
type VaultConfigRepo struct {
	pool Pool
}

// NewVaultConfigRepo creates a new VaultConfigRepo.
func NewVaultConfigRepo(pool Pool) *VaultConfigRepo {
	return &VaultConfigRepo{pool: pool}
}

// Get fetches the singleton config, nil when not yet seeded.
func (r *VaultConfigRepo) Get(ctx context.Context) (*domain.VaultConfig, error) {
	query := `SELECT min_amount, deposit_ceiling, redeem_ceiling, window_seconds, rate_tolerance_bps,
		vault_account, fee_receiver, proceeds_receiver, token_decimals, updated_at
		FROM vault_config WHERE id = 1`

	cfg := &domain.VaultConfig{}
	var windowSeconds int64
	err := r.pool.QueryRow(ctx, query).Scan(
		&cfg.MinAmount, &cfg.DepositCeiling, &cfg.RedeemCeiling, &windowSeconds, &cfg.RateToleranceBps,
		&cfg.VaultAccount, &cfg.FeeReceiver, &cfg.ProceedsReceiver, &cfg.TokenDecimals, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan vault config: %w", err)
	}
	cfg.WindowLength = time.Duration(windowSeconds) * time.Second
	return cfg, nil
}

// Save upserts the singleton config row.
func (r *VaultConfigRepo) Save(ctx context.Context, cfg *domain.VaultConfig) error {
	query := `INSERT INTO vault_config (id, min_amount, deposit_ceiling, redeem_ceiling, window_seconds,
		rate_tolerance_bps, vault_account, fee_receiver, proceeds_receiver, token_decimals, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET min_amount = EXCLUDED.min_amount, deposit_ceiling = EXCLUDED.deposit_ceiling,
			redeem_ceiling = EXCLUDED.redeem_ceiling, window_seconds = EXCLUDED.window_seconds,
			rate_tolerance_bps = EXCLUDED.rate_tolerance_bps, vault_account = EXCLUDED.vault_account,
			fee_receiver = EXCLUDED.fee_receiver, proceeds_receiver = EXCLUDED.proceeds_receiver,
			token_decimals = EXCLUDED.token_decimals, updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		cfg.MinAmount, cfg.DepositCeiling, cfg.RedeemCeiling, int64(cfg.WindowLength.Seconds()),
		cfg.RateToleranceBps, cfg.VaultAccount, cfg.FeeReceiver, cfg.ProceedsReceiver,
		cfg.TokenDecimals, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save vault config: %w", err)
	}
	return nil
}
