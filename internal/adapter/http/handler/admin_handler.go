package handler

import (
	"token-vault/internal/adapter/http/dto"
	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"
	"token-vault/pkg/apperror"
	"token-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the vault configuration surface.
type AdminHandler struct {
	adminSvc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// UpsertAsset handles PUT /api/v1/admin/assets.
func (h *AdminHandler) UpsertAsset(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UpsertAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	cfg := domain.PaymentAssetConfig{
		Asset:     req.Asset,
		OracleRef: req.OracleRef,
		Enabled:   req.Enabled,
		Stable:    req.Stable,
		Decimals:  req.Decimals,
	}
	for _, t := range req.Tiers {
		cfg.Tiers = append(cfg.Tiers, domain.FeeTier{
			Threshold: dto.Amount(t.Threshold),
			Bps:       t.Bps,
			FlatFee:   dto.Amount(t.FlatFee),
		})
	}
	if req.Surcharge != nil {
		cfg.Surcharge = &domain.RedemptionSurcharge{
			Flat: dto.Amount(req.Surcharge.Flat),
			Bps:  req.Surcharge.Bps,
		}
	}

	if err := h.adminSvc.UpsertAsset(c.Request.Context(), caller, cfg); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cfg)
}

// SetAssetEnabled handles PATCH /api/v1/admin/assets/:asset/enabled.
func (h *AdminHandler) SetAssetEnabled(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	asset := c.Param("asset")

	var req dto.SetAssetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.adminSvc.SetAssetEnabled(c.Request.Context(), caller, asset, req.Enabled); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"asset": asset, "enabled": req.Enabled})
}

// SetMinAmount handles PUT /api/v1/admin/limits/min.
func (h *AdminHandler) SetMinAmount(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SetMinAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.adminSvc.SetMinAmount(c.Request.Context(), caller, dto.Amount(req.MinAmount)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"min_amount": req.MinAmount})
}

// SetCeilings handles PUT /api/v1/admin/limits/ceilings.
func (h *AdminHandler) SetCeilings(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SetCeilingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.adminSvc.SetCeilings(c.Request.Context(), caller,
		dto.Amount(req.DepositCeiling), dto.Amount(req.RedeemCeiling))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{
		"deposit_ceiling": req.DepositCeiling,
		"redeem_ceiling":  req.RedeemCeiling,
	})
}

// SetReceivers handles PUT /api/v1/admin/receivers.
func (h *AdminHandler) SetReceivers(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SetReceiversRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	err := h.adminSvc.SetReceivers(c.Request.Context(), caller, req.FeeReceiver, req.ProceedsReceiver)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{
		"fee_receiver":      req.FeeReceiver,
		"proceeds_receiver": req.ProceedsReceiver,
	})
}

// BlockParty handles POST /api/v1/admin/blocklist.
func (h *AdminHandler) BlockParty(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.BlockPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.adminSvc.BlockParty(c.Request.Context(), caller, req.Account); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"account": req.Account, "blocked": true})
}

// UnblockParty handles DELETE /api/v1/admin/blocklist/:account.
func (h *AdminHandler) UnblockParty(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	account := c.Param("account")

	if err := h.adminSvc.UnblockParty(c.Request.Context(), caller, account); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"account": account, "blocked": false})
}

// VaultStatus handles GET /api/v1/status.
func (h *AdminHandler) VaultStatus(c *gin.Context) {
	status, err := h.adminSvc.VaultStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}
