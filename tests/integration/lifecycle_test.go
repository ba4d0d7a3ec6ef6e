package integration

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"token-vault/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_DepositRequestLifecycle(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	aliceToken := app.login(t, "alice")
	carolToken := app.login(t, "carol")

	app.assetBook.Credit("USDC", "alice", dec("1000"))

	// Create: escrows 100 USDC on the vault account.
	code, envelope := app.call(t, http.MethodPost, "/api/v1/requests/deposit", aliceToken, map[string]string{
		"asset": "USDC", "amount": "100",
	})
	require.Equal(t, http.StatusCreated, code)
	d := data(envelope)
	assert.Equal(t, "PENDING", d["status"])
	id := int64(d["id"].(float64))

	escrowed, err := app.assetBook.BalanceOf(ctx, "USDC", "vault")
	require.NoError(t, err)
	assert.True(t, escrowed.Equal(dec("100")), "escrow %s", escrowed)

	// No tokens minted while pending, no ceiling consumed.
	pendingBalance, err := app.ledger.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, pendingBalance.IsZero())

	// Approve at the expected rate: fee 1, net 99, minted 99 * 2 = 198.
	code, envelope = app.call(t, http.MethodPost, requestPath(id, "approve"), carolToken, map[string]string{
		"expected_rate": "2",
	})
	require.Equal(t, http.StatusOK, code)
	d = data(envelope)
	assert.Equal(t, "APPROVED", d["status"])
	assert.Equal(t, "2", d["applied_rate"])
	assert.Equal(t, "carol", d["settled_by"])

	minted, err := app.ledger.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, minted.Equal(dec("198")), "minted %s", minted)

	feePot, err := app.assetBook.BalanceOf(ctx, "USDC", "fee-pot")
	require.NoError(t, err)
	assert.True(t, feePot.Equal(dec("1")), "fee pot %s", feePot)

	// A settled request is terminal: re-approval and cancellation conflict.
	code, envelope = app.call(t, http.MethodPost, requestPath(id, "approve"), carolToken, map[string]string{
		"expected_rate": "2",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "VAULT_006", envelope["error_code"])

	code, envelope = app.call(t, http.MethodPost, requestPath(id, "cancel"), aliceToken, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "VAULT_006", envelope["error_code"])
}

func TestIntegration_RedeemRequestCancelRefundsEscrow(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	aliceToken := app.login(t, "alice")

	require.NoError(t, app.ledger.Mint(ctx, "alice", dec("500")))

	code, envelope := app.call(t, http.MethodPost, "/api/v1/requests/redeem", aliceToken, map[string]string{
		"asset": "USDC", "amount": "200",
	})
	require.Equal(t, http.StatusCreated, code)
	id := int64(data(envelope)["id"].(float64))

	escrowed, err := app.ledger.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, escrowed.Equal(dec("300")), "post-escrow balance %s", escrowed)

	code, envelope = app.call(t, http.MethodPost, requestPath(id, "cancel"), aliceToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "REJECTED", data(envelope)["status"])

	refunded, err := app.ledger.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, refunded.Equal(dec("500")), "refunded balance %s", refunded)

	assert.Contains(t, app.events.kinds(), domain.EventRequestCancelled)
}

func TestIntegration_RejectRefundsDepositEscrow(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	aliceToken := app.login(t, "alice")
	carolToken := app.login(t, "carol")

	app.assetBook.Credit("USDC", "alice", dec("1000"))

	code, envelope := app.call(t, http.MethodPost, "/api/v1/requests/deposit", aliceToken, map[string]string{
		"asset": "USDC", "amount": "100",
	})
	require.Equal(t, http.StatusCreated, code)
	id := int64(data(envelope)["id"].(float64))

	code, envelope = app.call(t, http.MethodPost, requestPath(id, "reject"), carolToken, map[string]string{
		"reason": "kyc review failed",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "REJECTED", data(envelope)["status"])

	// Full escrow returned, nothing minted, no fee taken.
	balance, err := app.assetBook.BalanceOf(ctx, "USDC", "alice")
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("1000")), "refunded balance %s", balance)

	tokens, err := app.ledger.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, tokens.IsZero())
}

func TestIntegration_BulkApproveIsAtomic(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	aliceToken := app.login(t, "alice")
	carolToken := app.login(t, "carol")

	app.assetBook.Credit("USDC", "alice", dec("1000"))

	var ids []int64
	for i := 0; i < 2; i++ {
		code, envelope := app.call(t, http.MethodPost, "/api/v1/requests/deposit", aliceToken, map[string]string{
			"asset": "USDC", "amount": "100",
		})
		require.Equal(t, http.StatusCreated, code)
		ids = append(ids, int64(data(envelope)["id"].(float64)))
	}

	// Cancel the second request, then try to settle both in one batch.
	code, _ := app.call(t, http.MethodPost, requestPath(ids[1], "cancel"), aliceToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, envelope := app.call(t, http.MethodPost, "/api/v1/settlement/approve", carolToken, map[string]interface{}{
		"entries": []map[string]interface{}{
			{"id": ids[0], "expected_rate": "2"},
			{"id": ids[1], "expected_rate": "2"},
		},
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "VAULT_006", envelope["error_code"])

	// Nothing settled: the first request is still pending and no tokens moved.
	first, err := app.requests.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, first.Status)

	tokens, err := app.ledger.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, tokens.IsZero())

	// A clean batch settles both remaining entries together.
	code, envelope = app.call(t, http.MethodPost, "/api/v1/requests/deposit", aliceToken, map[string]string{
		"asset": "USDC", "amount": "100",
	})
	require.Equal(t, http.StatusCreated, code)
	third := int64(data(envelope)["id"].(float64))

	code, _ = app.call(t, http.MethodPost, "/api/v1/settlement/approve", carolToken, map[string]interface{}{
		"entries": []map[string]interface{}{
			{"id": ids[0], "expected_rate": "2"},
			{"id": third, "expected_rate": "2"},
		},
	})
	require.Equal(t, http.StatusOK, code)

	tokens, err = app.ledger.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, tokens.Equal(dec("396")), "minted %s", tokens)
}

func TestIntegration_ApproveRejectsRateDrift(t *testing.T) {
	app := newTestApp(t)
	aliceToken := app.login(t, "alice")
	carolToken := app.login(t, "carol")

	app.assetBook.Credit("USDC", "alice", dec("1000"))

	code, envelope := app.call(t, http.MethodPost, "/api/v1/requests/deposit", aliceToken, map[string]string{
		"asset": "USDC", "amount": "100",
	})
	require.Equal(t, http.StatusCreated, code)
	id := int64(data(envelope)["id"].(float64))

	// Price moves 5% between the approver's quote and settlement.
	app.feed.setPrice("2.1")

	code, envelope = app.call(t, http.MethodPost, requestPath(id, "approve"), carolToken, map[string]string{
		"expected_rate": "2",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "ORACLE_003", envelope["error_code"])

	// The request survives for a retry at the fresh rate.
	code, envelope = app.call(t, http.MethodPost, requestPath(id, "approve"), carolToken, map[string]string{
		"expected_rate": "2.1",
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "APPROVED", data(envelope)["status"])
}

func TestIntegration_ListRequestsFilters(t *testing.T) {
	app := newTestApp(t)
	aliceToken := app.login(t, "alice")

	app.assetBook.Credit("USDC", "alice", dec("1000"))

	for i := 0; i < 3; i++ {
		code, _ := app.call(t, http.MethodPost, "/api/v1/requests/deposit", aliceToken, map[string]string{
			"asset": "USDC", "amount": "50",
		})
		require.Equal(t, http.StatusCreated, code)
	}

	code, envelope := app.call(t, http.MethodGet, "/api/v1/requests?status=PENDING&page=1&page_size=2", aliceToken, nil)
	require.Equal(t, http.StatusOK, code)
	d := data(envelope)
	assert.Equal(t, float64(3), d["total"])
	assert.Equal(t, float64(2), d["total_pages"])
	items := d["items"].([]interface{})
	assert.Len(t, items, 2)
	// Newest first
	assert.Equal(t, float64(3), items[0].(map[string]interface{})["id"])
}

func requestPath(id int64, action string) string {
	return "/api/v1/requests/" + strconv.FormatInt(id, 10) + "/" + action
}
