package handler

import (
	"strconv"

	"token-vault/internal/adapter/http/dto"
	"token-vault/internal/adapter/http/middleware"
	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"
	"token-vault/pkg/apperror"
	"token-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// VaultHandler handles deposit/redemption flows and the request lifecycle.
type VaultHandler struct {
	vaultSvc ports.VaultService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(vaultSvc ports.VaultService) *VaultHandler {
	return &VaultHandler{vaultSvc: vaultSvc}
}

// callerAccount returns the authenticated operator's ledger account.
func callerAccount(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxAccount)
	if !exists {
		return "", false
	}
	acct, ok := v.(string)
	return acct, ok && acct != ""
}

// bindFlow binds and validates a flow body into the service input shape.
func bindFlow(c *gin.Context) (ports.FlowRequest, bool) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return ports.FlowRequest{}, false
	}

	var req dto.FlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return ports.FlowRequest{}, false
	}
	dto.SanitizeStruct(&req)

	recipient := req.Recipient
	if recipient == "" {
		recipient = caller
	}
	return ports.FlowRequest{
		Caller:    caller,
		Recipient: recipient,
		Asset:     req.Asset,
		Gross:     dto.Amount(req.Amount),
	}, true
}

// DepositInstant handles POST /api/v1/deposits.
func (h *VaultHandler) DepositInstant(c *gin.Context) {
	flow, ok := bindFlow(c)
	if !ok {
		return
	}

	result, err := h.vaultSvc.DepositInstant(c.Request.Context(), flow)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToInstantResponse(result))
}

// RedeemInstant handles POST /api/v1/redemptions.
func (h *VaultHandler) RedeemInstant(c *gin.Context) {
	flow, ok := bindFlow(c)
	if !ok {
		return
	}

	result, err := h.vaultSvc.RedeemInstant(c.Request.Context(), flow)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToInstantResponse(result))
}

// CreateDepositRequest handles POST /api/v1/requests/deposit.
func (h *VaultHandler) CreateDepositRequest(c *gin.Context) {
	flow, ok := bindFlow(c)
	if !ok {
		return
	}

	req, err := h.vaultSvc.DepositRequest(c.Request.Context(), flow)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToRequestResponse(req))
}

// CreateRedeemRequest handles POST /api/v1/requests/redeem.
func (h *VaultHandler) CreateRedeemRequest(c *gin.Context) {
	flow, ok := bindFlow(c)
	if !ok {
		return
	}

	req, err := h.vaultSvc.RedeemRequest(c.Request.Context(), flow)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToRequestResponse(req))
}

// CancelRequest handles POST /api/v1/requests/:id/cancel.
func (h *VaultHandler) CancelRequest(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	id, ok := requestID(c)
	if !ok {
		return
	}

	req, err := h.vaultSvc.CancelRequest(c.Request.Context(), caller, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToRequestResponse(req))
}

// GetRequest handles GET /api/v1/requests/:id.
func (h *VaultHandler) GetRequest(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	req, err := h.vaultSvc.GetRequest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToRequestResponse(req))
}

// ListRequests handles GET /api/v1/requests.
// Query params: status, direction, requester, page, page_size.
func (h *VaultHandler) ListRequests(c *gin.Context) {
	params := ports.RequestListParams{Page: 1, PageSize: 20}

	if s := c.Query("status"); s != "" {
		status := domain.RequestStatus(s)
		switch status {
		case domain.RequestStatusPending, domain.RequestStatusApproved, domain.RequestStatusRejected:
			params.Status = &status
		default:
			response.Error(c, apperror.Validation("unknown status filter"))
			return
		}
	}
	if d := c.Query("direction"); d != "" {
		direction := domain.Direction(d)
		switch direction {
		case domain.DirectionDeposit, domain.DirectionRedeem:
			params.Direction = &direction
		default:
			response.Error(c, apperror.Validation("unknown direction filter"))
			return
		}
	}
	if r := c.Query("requester"); r != "" {
		params.Requester = &r
	}
	if p := c.Query("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			params.Page = n
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if n, err := strconv.Atoi(ps); err == nil && n > 0 && n <= 100 {
			params.PageSize = n
		}
	}

	items, total, err := h.vaultSvc.ListRequests(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.RequestResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.ToRequestResponse(&items[i]))
	}
	totalPages := int((total + int64(params.PageSize) - 1) / int64(params.PageSize))

	response.OK(c, dto.RequestListResponse{
		Items:      out,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	})
}

// requestID parses the :id path parameter.
func requestID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, apperror.Validation("request id must be a positive integer"))
		return 0, false
	}
	return id, true
}
