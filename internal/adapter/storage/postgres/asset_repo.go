package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"token-vault/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AssetConfigRepo implements ports.AssetConfigRepository. Fee tiers and the
// redemption surcharge are stored as jsonb so the tier table can change
// shape without a migration.
type AssetConfigRepo struct {
	pool Pool
}

// NewAssetConfigRepo creates a new AssetConfigRepo.
func NewAssetConfigRepo(pool Pool) *AssetConfigRepo {
	return &AssetConfigRepo{pool: pool}
}

// Upsert inserts or replaces a payment-asset configuration.
func (r *AssetConfigRepo) Upsert(ctx context.Context, cfg *domain.PaymentAssetConfig) error {
	tiers, err := json.Marshal(cfg.Tiers)
	if err != nil {
		return fmt.Errorf("marshal fee tiers: %w", err)
	}
	var surcharge []byte
	if cfg.Surcharge != nil {
		surcharge, err = json.Marshal(cfg.Surcharge)
		if err != nil {
			return fmt.Errorf("marshal surcharge: %w", err)
		}
	}

	query := `INSERT INTO payment_assets (asset, oracle_ref, enabled, stable, decimals, tiers, surcharge, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (asset) DO UPDATE
		SET oracle_ref = EXCLUDED.oracle_ref, enabled = EXCLUDED.enabled, stable = EXCLUDED.stable,
			decimals = EXCLUDED.decimals, tiers = EXCLUDED.tiers, surcharge = EXCLUDED.surcharge,
			updated_at = now()`

	_, err = r.pool.Exec(ctx, query,
		cfg.Asset, cfg.OracleRef, cfg.Enabled, cfg.Stable, cfg.Decimals, tiers, surcharge,
	)
	if err != nil {
		return fmt.Errorf("upsert payment asset: %w", err)
	}
	return nil
}

// Get fetches one asset configuration, nil when unknown.
func (r *AssetConfigRepo) Get(ctx context.Context, asset string) (*domain.PaymentAssetConfig, error) {
	query := `SELECT asset, oracle_ref, enabled, stable, decimals, tiers, surcharge
		FROM payment_assets WHERE asset = $1`
	return r.scanAsset(r.pool.QueryRow(ctx, query, asset))
}

// List fetches all asset configurations.
func (r *AssetConfigRepo) List(ctx context.Context) ([]domain.PaymentAssetConfig, error) {
	query := `SELECT asset, oracle_ref, enabled, stable, decimals, tiers, surcharge
		FROM payment_assets ORDER BY asset`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payment assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.PaymentAssetConfig
	for rows.Next() {
		cfg, err := r.scanAssetRow(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment assets: %w", err)
	}
	return assets, nil
}

// SetEnabled toggles an asset.
func (r *AssetConfigRepo) SetEnabled(ctx context.Context, asset string, enabled bool) error {
	query := `UPDATE payment_assets SET enabled = $1, updated_at = now() WHERE asset = $2`
	tag, err := r.pool.Exec(ctx, query, enabled, asset)
	if err != nil {
		return fmt.Errorf("set asset enabled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment asset not found: %s", asset)
	}
	return nil
}

func (r *AssetConfigRepo) scanAsset(row pgx.Row) (*domain.PaymentAssetConfig, error) {
	cfg, err := scanAssetValues(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return cfg, nil
}

func (r *AssetConfigRepo) scanAssetRow(rows pgx.Rows) (*domain.PaymentAssetConfig, error) {
	return scanAssetValues(rows)
}

func scanAssetValues(row pgx.Row) (*domain.PaymentAssetConfig, error) {
	cfg := &domain.PaymentAssetConfig{}
	var tiers, surcharge []byte
	err := row.Scan(
		&cfg.Asset, &cfg.OracleRef, &cfg.Enabled, &cfg.Stable, &cfg.Decimals, &tiers, &surcharge,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan payment asset: %w", err)
	}
	if len(tiers) > 0 {
		if err := json.Unmarshal(tiers, &cfg.Tiers); err != nil {
			return nil, fmt.Errorf("unmarshal fee tiers: %w", err)
		}
	}
	if len(surcharge) > 0 {
		cfg.Surcharge = &domain.RedemptionSurcharge{}
		if err := json.Unmarshal(surcharge, cfg.Surcharge); err != nil {
			return nil, fmt.Errorf("unmarshal surcharge: %w", err)
		}
	}
	return cfg, nil
}
