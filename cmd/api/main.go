package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"token-vault/config"
	httpHandler "token-vault/internal/adapter/http/handler"
	"token-vault/internal/adapter/ledger"
	"token-vault/internal/adapter/oracle"
	pgStorage "token-vault/internal/adapter/storage/postgres"
	redisStorage "token-vault/internal/adapter/storage/redis"
	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"
	"token-vault/internal/service"
	"token-vault/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Token Vault")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	requestRepo := pgStorage.NewRequestRepo(pool)
	assetRepo := pgStorage.NewAssetConfigRepo(pool)
	vaultRepo := pgStorage.NewVaultConfigRepo(pool)
	operatorRepo := pgStorage.NewOperatorRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	windowStore := redisStorage.NewWindowStore(rdb)
	complianceStore := redisStorage.NewComplianceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Seed the vault configuration on first start
	if err := seedVaultConfig(ctx, vaultRepo, cfg.Vault, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed vault config")
	}

	// Initialize token ledger and asset book. Process-local in-memory
	// adapters stand in until the external ledger integration lands.
	tokenLedger := ledger.NewMemoryLedger()
	assetBook := ledger.NewMemoryAssetBook()

	// Initialize price oracle client
	priceOracle := oracle.New(oracle.Options{
		BaseURL:      cfg.Oracle.BaseURL,
		Timeout:      cfg.Oracle.Timeout,
		MaxStaleness: cfg.Oracle.MaxStaleness,
		UserAgent:    cfg.Oracle.UserAgent,
	}, log)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	roleChecker := service.NewOperatorRoleChecker(operatorRepo)
	eventPublisher := service.NewJournalEventPublisher(eventRepo, log)
	feePolicy := service.NewFeeService()

	// Bootstrap the first admin operator if configured
	if err := bootstrapAdmin(ctx, operatorRepo, hashSvc, cfg.Vault, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap admin operator")
	}

	// All mutating vault operations execute serialized behind one mutex.
	var vaultMu sync.Mutex

	// Initialize business services
	authSvc := service.NewAuthService(operatorRepo, hashSvc, tokenSvc, roleChecker)
	vaultSvc := service.NewVaultService(
		&vaultMu,
		requestRepo,
		assetRepo,
		vaultRepo,
		priceOracle,
		complianceStore,
		tokenLedger,
		assetBook,
		windowStore,
		feePolicy,
		roleChecker,
		eventPublisher,
		transactor,
		log,
	)
	settlementSvc := service.NewSettlementService(
		&vaultMu,
		requestRepo,
		assetRepo,
		vaultRepo,
		priceOracle,
		complianceStore,
		tokenLedger,
		assetBook,
		feePolicy,
		roleChecker,
		eventPublisher,
		transactor,
		log,
	)
	adminSvc := service.NewAdminService(
		assetRepo,
		vaultRepo,
		complianceStore,
		tokenLedger,
		windowStore,
		roleChecker,
		eventPublisher,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		VaultSvc:       vaultSvc,
		SettlementSvc:  settlementSvc,
		AdminSvc:       adminSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// seedVaultConfig writes the configured defaults into the singleton vault
// config row if no row exists yet. An already-seeded vault keeps whatever
// the admins last saved.
func seedVaultConfig(ctx context.Context, repo ports.VaultConfigRepository, defaults config.VaultDefaults, log zerolog.Logger) error {
	existing, err := repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("read vault config: %w", err)
	}
	if existing != nil {
		return nil
	}

	minAmount, err := decimal.NewFromString(defaults.MinAmount)
	if err != nil {
		return fmt.Errorf("parse min_amount %q: %w", defaults.MinAmount, err)
	}
	depositCeiling, err := decimal.NewFromString(defaults.DepositCeiling)
	if err != nil {
		return fmt.Errorf("parse deposit_ceiling %q: %w", defaults.DepositCeiling, err)
	}
	redeemCeiling, err := decimal.NewFromString(defaults.RedeemCeiling)
	if err != nil {
		return fmt.Errorf("parse redeem_ceiling %q: %w", defaults.RedeemCeiling, err)
	}
	if defaults.VaultAccount == "" {
		return fmt.Errorf("vault_account must be configured")
	}

	cfg := &domain.VaultConfig{
		MinAmount:        minAmount,
		DepositCeiling:   depositCeiling,
		RedeemCeiling:    redeemCeiling,
		WindowLength:     defaults.WindowLength,
		RateToleranceBps: defaults.RateToleranceBps,
		VaultAccount:     defaults.VaultAccount,
		FeeReceiver:      defaults.FeeReceiver,
		ProceedsReceiver: defaults.ProceedsReceiver,
		TokenDecimals:    defaults.TokenDecimals,
		UpdatedAt:        time.Now().UTC(),
	}
	if err := repo.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save vault config: %w", err)
	}
	log.Info().
		Str("vault_account", cfg.VaultAccount).
		Str("min_amount", cfg.MinAmount.String()).
		Msg("vault config seeded")
	return nil
}

// bootstrapAdmin provisions the first admin operator so the configuration
// surface is reachable on a fresh deployment. No-op when unconfigured or
// when the username already exists.
func bootstrapAdmin(ctx context.Context, repo ports.OperatorRepository, hashSvc ports.HashService, defaults config.VaultDefaults, log zerolog.Logger) error {
	if defaults.BootstrapAdminUser == "" || defaults.BootstrapAdminPass == "" {
		return nil
	}

	existing, err := repo.GetByUsername(ctx, defaults.BootstrapAdminUser)
	if err != nil {
		return fmt.Errorf("find bootstrap admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := hashSvc.Hash(defaults.BootstrapAdminPass)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	op := &domain.Operator{
		ID:           uuid.New(),
		Username:     defaults.BootstrapAdminUser,
		PasswordHash: hash,
		Account:      defaults.BootstrapAdminUser,
		Role:         domain.RoleAdmin,
		Status:       domain.OperatorStatusActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(ctx, op); err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}
	log.Info().Str("username", op.Username).Msg("bootstrap admin operator created")
	return nil
}
