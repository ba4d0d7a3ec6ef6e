package service

import (
	"context"
	"fmt"

	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"
	"token-vault/pkg/apperror"
)

// OperatorRoleChecker implements ports.RoleChecker against the operator
// store. Callers are identified by their on-vault account name.
type OperatorRoleChecker struct {
	operatorRepo ports.OperatorRepository
}

// NewOperatorRoleChecker creates a new OperatorRoleChecker.
func NewOperatorRoleChecker(operatorRepo ports.OperatorRepository) *OperatorRoleChecker {
	return &OperatorRoleChecker{operatorRepo: operatorRepo}
}

// Require fails with AccessDenied unless caller is an active operator whose
// role covers required.
func (c *OperatorRoleChecker) Require(ctx context.Context, caller string, required domain.Role) error {
	op, err := c.operatorRepo.GetByAccount(ctx, caller)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lookup operator %s: %w", caller, err))
	}
	if op == nil || !op.IsActive() {
		return apperror.ErrAccessDenied(string(required))
	}
	if !op.Role.Allows(required) {
		return apperror.ErrAccessDenied(string(required))
	}
	return nil
}
