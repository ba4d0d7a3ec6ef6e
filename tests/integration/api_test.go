package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	httpHandler "token-vault/internal/adapter/http/handler"
	"token-vault/internal/adapter/ledger"
	"token-vault/internal/adapter/oracle"
	redisStorage "token-vault/internal/adapter/storage/redis"
	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"
	"token-vault/internal/service"
	"token-vault/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack: real HTTP layer, middleware,
// services, Redis stores against miniredis, a live stub price feed, and the
// in-memory ledger and repos. Only PostgreSQL is substituted.

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	feed   *stubPriceFeed

	ledger    *ledger.MemoryLedger
	assetBook *ledger.MemoryAssetBook
	requests  *inMemoryRequestRepo
	events    *inMemoryEventRepo
}

// stubPriceFeed is a minimal oracle upstream with a settable price.
type stubPriceFeed struct {
	mu     sync.Mutex
	price  string
	server *httptest.Server
}

func newStubPriceFeed(price string) *stubPriceFeed {
	f := &stubPriceFeed{price: price}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		price := f.price
		f.mu.Unlock()
		ref := strings.TrimPrefix(r.URL.Path, "/v1/prices/")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"ref":%q,"price":%q,"observed_at":%q}`,
			ref, price, time.Now().UTC().Format(time.RFC3339))
	}))
	return f
}

func (f *stubPriceFeed) setPrice(price string) {
	f.mu.Lock()
	f.price = price
	f.mu.Unlock()
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	// Redis stores
	windowStore := redisStorage.NewWindowStore(rdb)
	complianceStore := redisStorage.NewComplianceStore(rdb)

	// Stub price feed at 2 tokens per asset unit
	feed := newStubPriceFeed("2")
	t.Cleanup(feed.server.Close)

	log := logger.New("error", false)
	priceOracle := oracle.New(oracle.Options{
		BaseURL:      feed.server.URL,
		Timeout:      2 * time.Second,
		MaxStaleness: time.Minute,
	}, log)

	// In-memory storage
	requestRepo := newInMemoryRequestRepo()
	assetRepo := newInMemoryAssetRepo()
	vaultRepo := newInMemoryVaultConfigRepo()
	operatorRepo := newInMemoryOperatorRepo()
	eventRepo := newInMemoryEventRepo()
	transactor := newInMemoryTransactor()

	tokenLedger := ledger.NewMemoryLedger()
	assetBook := ledger.NewMemoryAssetBook()

	// Vault configuration: proceeds stay on the vault account so deposits
	// fund the redemption reserve directly.
	require.NoError(t, vaultRepo.Save(ctx, &domain.VaultConfig{
		MinAmount:        dec("10"),
		DepositCeiling:   dec("1000"),
		RedeemCeiling:    dec("1000"),
		WindowLength:     24 * time.Hour,
		RateToleranceBps: 50,
		VaultAccount:     "vault",
		FeeReceiver:      "fee-pot",
		ProceedsReceiver: "vault",
		TokenDecimals:    6,
		UpdatedAt:        time.Now().UTC(),
	}))
	require.NoError(t, assetRepo.Upsert(ctx, &domain.PaymentAssetConfig{
		Asset:     "USDC",
		OracleRef: "usdc-usd",
		Enabled:   true,
		Decimals:  6,
		Tiers:     []domain.FeeTier{{Threshold: decimal.Zero, Bps: 100, FlatFee: decimal.Zero}},
	}))

	// Core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	roleChecker := service.NewOperatorRoleChecker(operatorRepo)
	eventPublisher := service.NewJournalEventPublisher(eventRepo, log)
	feePolicy := service.NewFeeService()

	// Operators: one per role, account matching the username.
	for _, op := range []struct {
		username string
		role     domain.Role
	}{
		{"alice", domain.RoleOperator},
		{"carol", domain.RoleApprover},
		{"root", domain.RoleAdmin},
	} {
		hash, err := hashSvc.Hash("StrongPass123!")
		require.NoError(t, err)
		require.NoError(t, operatorRepo.Create(ctx, &domain.Operator{
			ID:           uuid.New(),
			Username:     op.username,
			PasswordHash: hash,
			Account:      op.username,
			Role:         op.role,
			Status:       domain.OperatorStatusActive,
			CreatedAt:    time.Now().UTC(),
		}))
	}

	var vaultMu sync.Mutex
	authSvc := service.NewAuthService(operatorRepo, hashSvc, tokenSvc, roleChecker)
	vaultSvc := service.NewVaultService(&vaultMu, requestRepo, assetRepo, vaultRepo,
		priceOracle, complianceStore, tokenLedger, assetBook, windowStore,
		feePolicy, roleChecker, eventPublisher, transactor, log)
	settlementSvc := service.NewSettlementService(&vaultMu, requestRepo, assetRepo, vaultRepo,
		priceOracle, complianceStore, tokenLedger, assetBook,
		feePolicy, roleChecker, eventPublisher, transactor, log)
	adminSvc := service.NewAdminService(assetRepo, vaultRepo, complianceStore,
		tokenLedger, windowStore, roleChecker, eventPublisher, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		VaultSvc:       vaultSvc,
		SettlementSvc:  settlementSvc,
		AdminSvc:       adminSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server:    server,
		redis:     mr,
		feed:      feed,
		ledger:    tokenLedger,
		assetBook: assetBook,
		requests:  requestRepo,
		events:    eventRepo,
	}
}

// login authenticates an operator and returns the bearer token.
func (a *testApp) login(t *testing.T, username string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": "StrongPass123!"})
	resp, err := http.Post(a.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Data.Token)
	return out.Data.Token
}

// call performs an authenticated JSON request and decodes the envelope.
func (a *testApp) call(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func data(envelope map[string]interface{}) map[string]interface{} {
	d, _ := envelope["data"].(map[string]interface{})
	return d
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_LoginRejectsBadPassword(t *testing.T) {
	app := newTestApp(t)

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "wrong"})
	resp, err := http.Post(app.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_AuthRequired(t *testing.T) {
	app := newTestApp(t)

	code, envelope := app.call(t, http.MethodPost, "/api/v1/deposits", "", map[string]string{
		"asset": "USDC", "amount": "100",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "AUTH_002", envelope["error_code"])
}

func TestIntegration_InstantDepositRoundTrip(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	token := app.login(t, "alice")

	app.assetBook.Credit("USDC", "alice", dec("1000"))

	// 100 USDC at 100 bps fee: net 99, minted 99 * 2 = 198 tokens.
	code, envelope := app.call(t, http.MethodPost, "/api/v1/deposits", token, map[string]string{
		"asset": "USDC", "amount": "100",
	})
	require.Equal(t, http.StatusOK, code)
	d := data(envelope)
	assert.Equal(t, "1", d["fee"])
	assert.Equal(t, "198", d["settled"])
	assert.Equal(t, "2", d["rate"])

	minted, err := app.ledger.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, minted.Equal(dec("198")), "minted %s", minted)

	reserve, err := app.assetBook.BalanceOf(ctx, "USDC", "vault")
	require.NoError(t, err)
	assert.True(t, reserve.Equal(dec("99")), "reserve %s", reserve)

	feePot, err := app.assetBook.BalanceOf(ctx, "USDC", "fee-pot")
	require.NoError(t, err)
	assert.True(t, feePot.Equal(dec("1")), "fee pot %s", feePot)

	// Redeem 100 tokens: fee 1, net 99, payout 99 / 2 = 49.5 USDC.
	code, envelope = app.call(t, http.MethodPost, "/api/v1/redemptions", token, map[string]string{
		"asset": "USDC", "amount": "100",
	})
	require.Equal(t, http.StatusOK, code)
	d = data(envelope)
	assert.Equal(t, "49.5", d["settled"])

	remaining, err := app.ledger.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, remaining.Equal(dec("98")), "remaining tokens %s", remaining)

	paid, err := app.assetBook.BalanceOf(ctx, "USDC", "alice")
	require.NoError(t, err)
	assert.True(t, paid.Equal(dec("949.5")), "alice asset balance %s", paid)

	assert.Contains(t, app.events.kinds(), domain.EventInstantDeposit)
	assert.Contains(t, app.events.kinds(), domain.EventInstantRedeem)
}

func TestIntegration_DepositCeilingBoundary(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, "alice")

	app.assetBook.Credit("USDC", "alice", dec("5000"))

	// First deposit consumes 100 of the 1000 ceiling.
	code, _ := app.call(t, http.MethodPost, "/api/v1/deposits", token, map[string]string{
		"asset": "USDC", "amount": "100",
	})
	require.Equal(t, http.StatusOK, code)

	// 100 + 901 would exceed 1000.
	code, envelope := app.call(t, http.MethodPost, "/api/v1/deposits", token, map[string]string{
		"asset": "USDC", "amount": "901",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "VAULT_005", envelope["error_code"])

	// Exact fill to the ceiling is allowed.
	code, _ = app.call(t, http.MethodPost, "/api/v1/deposits", token, map[string]string{
		"asset": "USDC", "amount": "900",
	})
	assert.Equal(t, http.StatusOK, code)

	// Ceiling now exhausted.
	code, envelope = app.call(t, http.MethodPost, "/api/v1/deposits", token, map[string]string{
		"asset": "USDC", "amount": "10",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "VAULT_005", envelope["error_code"])
}

func TestIntegration_BlocklistGatesFlows(t *testing.T) {
	app := newTestApp(t)
	aliceToken := app.login(t, "alice")
	adminToken := app.login(t, "root")

	app.assetBook.Credit("USDC", "alice", dec("1000"))

	code, _ := app.call(t, http.MethodPost, "/api/v1/admin/blocklist", adminToken, map[string]string{
		"account": "alice",
	})
	require.Equal(t, http.StatusOK, code)

	code, envelope := app.call(t, http.MethodPost, "/api/v1/deposits", aliceToken, map[string]string{
		"asset": "USDC", "amount": "100",
	})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "VAULT_002", envelope["error_code"])

	code, _ = app.call(t, http.MethodDelete, "/api/v1/admin/blocklist/alice", adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = app.call(t, http.MethodPost, "/api/v1/deposits", aliceToken, map[string]string{
		"asset": "USDC", "amount": "100",
	})
	assert.Equal(t, http.StatusOK, code)
}

func TestIntegration_RoleGates(t *testing.T) {
	app := newTestApp(t)
	aliceToken := app.login(t, "alice")

	// Operators cannot reach settlement or admin surfaces.
	code, _ := app.call(t, http.MethodPost, "/api/v1/requests/1/approve", aliceToken, map[string]string{
		"expected_rate": "2",
	})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = app.call(t, http.MethodPut, "/api/v1/admin/limits/min", aliceToken, map[string]string{
		"min_amount": "5",
	})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestIntegration_VaultStatus(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, "alice")

	app.assetBook.Credit("USDC", "alice", dec("1000"))
	code, _ := app.call(t, http.MethodPost, "/api/v1/deposits", token, map[string]string{
		"asset": "USDC", "amount": "250",
	})
	require.Equal(t, http.StatusOK, code)

	code, envelope := app.call(t, http.MethodGet, "/api/v1/status", token, nil)
	require.Equal(t, http.StatusOK, code)
	d := data(envelope)
	assert.Equal(t, false, d["paused"])
	assert.Equal(t, "250", d["deposit_usage"])
	assert.Equal(t, "0", d["redeem_usage"])
}

func TestIntegration_AdminReconfiguresLimits(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.login(t, "root")
	aliceToken := app.login(t, "alice")

	app.assetBook.Credit("USDC", "alice", dec("1000"))

	code, _ := app.call(t, http.MethodPut, "/api/v1/admin/limits/min", adminToken, map[string]string{
		"min_amount": "500",
	})
	require.Equal(t, http.StatusOK, code)

	code, envelope := app.call(t, http.MethodPost, "/api/v1/deposits", aliceToken, map[string]string{
		"asset": "USDC", "amount": "100",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VAULT_004", envelope["error_code"])
}
