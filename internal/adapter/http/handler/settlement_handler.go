package handler

import (
	"token-vault/internal/adapter/http/dto"
	"token-vault/internal/core/ports"
	"token-vault/pkg/apperror"
	"token-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettlementHandler handles approval and rejection of pending requests.
type SettlementHandler struct {
	settlementSvc ports.SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementSvc ports.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementSvc: settlementSvc}
}

// Approve handles POST /api/v1/requests/:id/approve.
func (h *SettlementHandler) Approve(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	id, ok := requestID(c)
	if !ok {
		return
	}

	var req dto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	settled, err := h.settlementSvc.ApproveRequest(c.Request.Context(), caller, ports.ApprovalEntry{
		ID:           id,
		ExpectedRate: dto.Amount(req.ExpectedRate),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToRequestResponse(settled))
}

// BulkApprove handles POST /api/v1/settlement/approve.
// The batch settles atomically: one bad entry fails the whole batch.
func (h *SettlementHandler) BulkApprove(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.BulkApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	entries := make([]ports.ApprovalEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, ports.ApprovalEntry{
			ID:           e.ID,
			ExpectedRate: dto.Amount(e.ExpectedRate),
		})
	}

	settled, err := h.settlementSvc.BulkApprove(c.Request.Context(), caller, entries)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.RequestResponse, 0, len(settled))
	for i := range settled {
		out = append(out, dto.ToRequestResponse(&settled[i]))
	}
	response.OK(c, out)
}

// Reject handles POST /api/v1/requests/:id/reject.
func (h *SettlementHandler) Reject(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	id, ok := requestID(c)
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	rejected, err := h.settlementSvc.RejectRequest(c.Request.Context(), caller, id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToRequestResponse(rejected))
}
