package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"token-vault/internal/adapter/http/dto"
	"token-vault/internal/adapter/http/middleware"
	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"
	"token-vault/internal/core/ports/mocks"
	"token-vault/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// authedContext builds a test context carrying the claims JWTAuth would set.
func authedContext(w *httptest.ResponseRecorder, account string, role domain.Role) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.CtxAccount, account)
	c.Set(middleware.CtxRole, role)
	return c
}

func jsonRequest(method string, body interface{}) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, "/", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// --- Auth Handler Tests ---

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(8 * time.Hour)
	mockAuth.EXPECT().Login(gomock.Any(), "alice", "password123").Return("jwt-token-123", expiry, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, dto.LoginRequest{Username: "alice", Password: "password123"})

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token-123", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), "alice", "wrong").
		Return("", time.Time{}, apperror.ErrInvalidCredentials())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, dto.LoginRequest{Username: "alice", Password: "wrong"})

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AUTH_001", resp["error_code"])
}

func TestLogin_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockAuthService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOperator_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().CreateOperator(gomock.Any(), "admin-acct", ports.CreateOperatorRequest{
		Username: "newop",
		Password: "password123",
		Account:  "op-acct",
		Role:     domain.RoleApprover,
	}).DoAndReturn(func(_ interface{}, _ string, req ports.CreateOperatorRequest) (*domain.Operator, error) {
		return &domain.Operator{
			Username: req.Username,
			Account:  req.Account,
			Role:     req.Role,
			Status:   domain.OperatorStatusActive,
		}, nil
	})

	w := httptest.NewRecorder()
	c := authedContext(w, "admin-acct", domain.RoleAdmin)
	c.Request = jsonRequest(http.MethodPost, dto.CreateOperatorRequest{
		Username: "newop",
		Password: "password123",
		Account:  "op-acct",
		Role:     "APPROVER",
	})

	h.CreateOperator(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "newop", data["username"])
	assert.Equal(t, "APPROVER", data["role"])
}

// --- Vault Handler Tests ---

func TestDepositInstant_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	mockVault.EXPECT().DepositInstant(gomock.Any(), ports.FlowRequest{
		Caller:    "alice",
		Recipient: "alice",
		Asset:     "USDC",
		Gross:     dec("100"),
	}).Return(&ports.InstantResult{
		Direction: domain.DirectionDeposit,
		Gross:     dec("100"),
		Fee:       dec("1"),
		Settled:   dec("198"),
		Rate:      domain.RateSnapshot{Price: dec("2"), ObservedAt: time.Now()},
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, "alice", domain.RoleOperator)
	c.Request = jsonRequest(http.MethodPost, dto.FlowRequest{Asset: "USDC", Amount: "100"})

	h.DepositInstant(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "198", data["settled"])
	assert.Equal(t, "2", data["rate"])
}

func TestDepositInstant_RecipientOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	mockVault.EXPECT().DepositInstant(gomock.Any(), ports.FlowRequest{
		Caller:    "alice",
		Recipient: "bob",
		Asset:     "USDC",
		Gross:     dec("50"),
	}).Return(&ports.InstantResult{Direction: domain.DirectionDeposit}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, "alice", domain.RoleOperator)
	c.Request = jsonRequest(http.MethodPost, dto.FlowRequest{Recipient: "bob", Asset: "USDC", Amount: "50"})

	h.DepositInstant(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDepositInstant_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewVaultHandler(mocks.NewMockVaultService(ctrl))

	w := httptest.NewRecorder()
	c := authedContext(w, "alice", domain.RoleOperator)
	c.Request = jsonRequest(http.MethodPost, dto.FlowRequest{Asset: "USDC", Amount: "-5"})

	h.DepositInstant(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRedeemInstant_DailyLimitExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	mockVault.EXPECT().RedeemInstant(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrDailyLimitExceeded())

	w := httptest.NewRecorder()
	c := authedContext(w, "alice", domain.RoleOperator)
	c.Request = jsonRequest(http.MethodPost, dto.FlowRequest{Asset: "USDC", Amount: "100000"})

	h.RedeemInstant(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VAULT_005", resp["error_code"])
}

func TestCreateDepositRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	mockVault.EXPECT().DepositRequest(gomock.Any(), gomock.Any()).Return(&domain.Request{
		ID:          42,
		Direction:   domain.DirectionDeposit,
		Requester:   "alice",
		Recipient:   "alice",
		Asset:       "USDC",
		GrossAmount: dec("100"),
		Status:      domain.RequestStatusPending,
		CreatedAt:   time.Now(),
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, "alice", domain.RoleOperator)
	c.Request = jsonRequest(http.MethodPost, dto.FlowRequest{Asset: "USDC", Amount: "100"})

	h.CreateDepositRequest(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(42), data["id"])
	assert.Equal(t, "PENDING", data["status"])
	assert.Nil(t, data["applied_rate"])
}

func TestCancelRequest_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewVaultHandler(mocks.NewMockVaultService(ctrl))

	w := httptest.NewRecorder()
	c := authedContext(w, "alice", domain.RoleOperator)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.CancelRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRequest_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	mockVault.EXPECT().GetRequest(gomock.Any(), int64(99)).
		Return(nil, apperror.ErrNotFound("Request"))

	w := httptest.NewRecorder()
	c := authedContext(w, "alice", domain.RoleOperator)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	h.GetRequest(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRequests_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault)

	mockVault.EXPECT().ListRequests(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, params ports.RequestListParams) ([]domain.Request, int64, error) {
			require.NotNil(t, params.Status)
			assert.Equal(t, domain.RequestStatusPending, *params.Status)
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, 10, params.PageSize)
			return []domain.Request{{ID: 7, Status: domain.RequestStatusPending}}, int64(11), nil
		})

	w := httptest.NewRecorder()
	c := authedContext(w, "alice", domain.RoleOperator)
	c.Request = httptest.NewRequest(http.MethodGet, "/?status=PENDING&page=2&page_size=10", nil)

	h.ListRequests(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(11), data["total"])
	assert.Equal(t, float64(2), data["total_pages"])
}

func TestListRequests_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewVaultHandler(mocks.NewMockVaultService(ctrl))

	w := httptest.NewRecorder()
	c := authedContext(w, "alice", domain.RoleOperator)
	c.Request = httptest.NewRequest(http.MethodGet, "/?status=SHIPPED", nil)

	h.ListRequests(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Settlement Handler Tests ---

func TestApprove_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettlement := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSettlement)

	rate := dec("2.01")
	fee := dec("1")
	settledBy := "approver-acct"
	mockSettlement.EXPECT().ApproveRequest(gomock.Any(), "approver-acct", ports.ApprovalEntry{
		ID:           42,
		ExpectedRate: dec("2.00"),
	}).Return(&domain.Request{
		ID:          42,
		Status:      domain.RequestStatusApproved,
		AppliedRate: &rate,
		Fee:         &fee,
		SettledBy:   &settledBy,
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, "approver-acct", domain.RoleApprover)
	c.Request = jsonRequest(http.MethodPost, dto.ApproveRequest{ExpectedRate: "2.00"})
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	h.Approve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "APPROVED", data["status"])
	assert.Equal(t, "2.01", data["applied_rate"])
}

func TestApprove_RateMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettlement := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSettlement)

	mockSettlement.EXPECT().ApproveRequest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrRateMismatch())

	w := httptest.NewRecorder()
	c := authedContext(w, "approver-acct", domain.RoleApprover)
	c.Request = jsonRequest(http.MethodPost, dto.ApproveRequest{ExpectedRate: "2.00"})
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	h.Approve(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ORACLE_003", resp["error_code"])
}

func TestBulkApprove_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettlement := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSettlement)

	mockSettlement.EXPECT().BulkApprove(gomock.Any(), "approver-acct", []ports.ApprovalEntry{
		{ID: 1, ExpectedRate: dec("2")},
		{ID: 2, ExpectedRate: dec("2")},
	}).Return([]domain.Request{
		{ID: 1, Status: domain.RequestStatusApproved},
		{ID: 2, Status: domain.RequestStatusApproved},
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, "approver-acct", domain.RoleApprover)
	c.Request = jsonRequest(http.MethodPost, dto.BulkApproveRequest{
		Entries: []dto.BulkApproveEntry{
			{ID: 1, ExpectedRate: "2"},
			{ID: 2, ExpectedRate: "2"},
		},
	})

	h.BulkApprove(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestBulkApprove_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSettlementHandler(mocks.NewMockSettlementService(ctrl))

	w := httptest.NewRecorder()
	c := authedContext(w, "approver-acct", domain.RoleApprover)
	c.Request = jsonRequest(http.MethodPost, dto.BulkApproveRequest{Entries: []dto.BulkApproveEntry{}})

	h.BulkApprove(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReject_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettlement := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSettlement)

	mockSettlement.EXPECT().RejectRequest(gomock.Any(), "approver-acct", int64(42), "stale quote").
		Return(&domain.Request{ID: 42, Status: domain.RequestStatusRejected}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, "approver-acct", domain.RoleApprover)
	c.Request = jsonRequest(http.MethodPost, dto.RejectRequest{Reason: "stale quote"})
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	h.Reject(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "REJECTED", data["status"])
}

// --- Admin Handler Tests ---

func TestUpsertAsset_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := mocks.NewMockAdminService(ctrl)
	h := NewAdminHandler(mockAdmin)

	mockAdmin.EXPECT().UpsertAsset(gomock.Any(), "admin-acct", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, cfg domain.PaymentAssetConfig) error {
			assert.Equal(t, "USDC", cfg.Asset)
			assert.True(t, cfg.Enabled)
			require.Len(t, cfg.Tiers, 1)
			assert.Equal(t, int64(50), cfg.Tiers[0].Bps)
			return nil
		})

	w := httptest.NewRecorder()
	c := authedContext(w, "admin-acct", domain.RoleAdmin)
	c.Request = jsonRequest(http.MethodPut, dto.UpsertAssetRequest{
		Asset:     "USDC",
		OracleRef: "usdc-usd",
		Enabled:   true,
		Decimals:  6,
		Tiers:     []dto.FeeTierRequest{{Threshold: "0", Bps: 50, FlatFee: "0"}},
	})

	h.UpsertAsset(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetCeilings_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := mocks.NewMockAdminService(ctrl)
	h := NewAdminHandler(mockAdmin)

	mockAdmin.EXPECT().SetCeilings(gomock.Any(), "admin-acct", dec("5000"), dec("0")).Return(nil)

	w := httptest.NewRecorder()
	c := authedContext(w, "admin-acct", domain.RoleAdmin)
	c.Request = jsonRequest(http.MethodPut, dto.SetCeilingsRequest{
		DepositCeiling: "5000",
		RedeemCeiling:  "0",
	})

	h.SetCeilings(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBlockParty_AccessDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := mocks.NewMockAdminService(ctrl)
	h := NewAdminHandler(mockAdmin)

	mockAdmin.EXPECT().BlockParty(gomock.Any(), "op-acct", "mallory").
		Return(apperror.ErrAccessDenied("ADMIN"))

	w := httptest.NewRecorder()
	c := authedContext(w, "op-acct", domain.RoleOperator)
	c.Request = jsonRequest(http.MethodPost, dto.BlockPartyRequest{Account: "mallory"})

	h.BlockParty(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVaultStatus_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := mocks.NewMockAdminService(ctrl)
	h := NewAdminHandler(mockAdmin)

	mockAdmin.EXPECT().VaultStatus(gomock.Any()).Return(&ports.VaultStatus{
		Paused:         false,
		MinAmount:      dec("10"),
		DepositCeiling: dec("1000"),
		RedeemCeiling:  dec("1000"),
		DepositUsage:   dec("250"),
		RedeemUsage:    dec("0"),
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, "alice", domain.RoleOperator)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.VaultStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "250", data["deposit_usage"])
}

// --- Health Check ---

type healthOK struct{ name string }

func (h healthOK) Ping(context.Context) error { return nil }
func (h healthOK) Name() string               { return h.name }

type healthBad struct{ name string }

func (h healthBad) Ping(context.Context) error { return errors.New("connection refused") }
func (h healthBad) Name() string               { return h.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	checker := healthOK{"postgresql"}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(checker)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(healthOK{"postgresql"}, healthBad{"redis"})(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
}
