package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is an operator capability level. Roles are strictly ordered:
// ADMIN > APPROVER > OPERATOR.
type Role string

const (
	RoleOperator Role = "OPERATOR"
	RoleApprover Role = "APPROVER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleApprover:
		return 2
	case RoleOperator:
		return 1
	default:
		return 0
	}
}

// Allows reports whether a holder of r may act as required.
func (r Role) Allows(required Role) bool {
	return r.rank() >= required.rank() && r.rank() > 0
}

// OperatorStatus represents the state of an operator account.
type OperatorStatus string

const (
	OperatorStatusActive    OperatorStatus = "ACTIVE"
	OperatorStatusSuspended OperatorStatus = "SUSPENDED"
)

// Operator is a privileged account allowed to drive settlement and
// configuration operations. The Account field is the ledger identity the
// operator acts as.
type Operator struct {
	ID           uuid.UUID      `json:"id"`
	Username     string         `json:"username"`
	PasswordHash string         `json:"-"` // Never expose
	Account      string         `json:"account"`
	Role         Role           `json:"role"`
	Status       OperatorStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// IsActive returns true if the operator account is active.
func (o *Operator) IsActive() bool {
	return o.Status == OperatorStatusActive
}
