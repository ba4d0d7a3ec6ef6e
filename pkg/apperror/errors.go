package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authentication & Authorization (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrAccessDenied(role string) *AppError {
	return New("AUTH_003", fmt.Sprintf("Caller lacks required role %s", role), http.StatusForbidden)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_004", "Username already exists", http.StatusConflict)
}

// ---- Vault Business Logic (VAULT) ----

func ErrVaultPaused() *AppError {
	return New("VAULT_001", "Token ledger is paused", http.StatusConflict)
}

func ErrPartyBlocked(account string) *AppError {
	return New("VAULT_002", fmt.Sprintf("Party %s is blocked by compliance", account), http.StatusForbidden)
}

func ErrAssetDisabled(asset string) *AppError {
	return New("VAULT_003", fmt.Sprintf("Payment asset %s is not enabled", asset), http.StatusUnprocessableEntity)
}

func ErrBelowMinimum() *AppError {
	return New("VAULT_004", "Amount is below the vault minimum", http.StatusBadRequest)
}

func ErrDailyLimitExceeded() *AppError {
	return New("VAULT_005", "Instant flow daily ceiling exceeded", http.StatusUnprocessableEntity)
}

func ErrAlreadySettled(id int64) *AppError {
	return New("VAULT_006", fmt.Sprintf("Request %d is already settled", id), http.StatusConflict)
}

func ErrInsufficientReserve() *AppError {
	return New("VAULT_007", "Vault reserve cannot cover the redemption", http.StatusUnprocessableEntity)
}

func ErrInsufficientBalance() *AppError {
	return New("VAULT_008", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrNotFound(entity string) *AppError {
	return New("VAULT_009", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInvalidAmount() *AppError {
	return New("VAULT_010", "Invalid amount", http.StatusBadRequest)
}

func ErrNotRequester() *AppError {
	return New("VAULT_011", "Only the requester or an operator may cancel", http.StatusForbidden)
}

// ---- Oracle & Pricing (ORACLE) ----

func ErrStalePrice(asset string) *AppError {
	return New("ORACLE_001", fmt.Sprintf("Oracle price for %s is stale", asset), http.StatusUnprocessableEntity)
}

func ErrInvalidPrice(asset string) *AppError {
	return New("ORACLE_002", fmt.Sprintf("Oracle price for %s is not positive", asset), http.StatusUnprocessableEntity)
}

func ErrRateMismatch() *AppError {
	return New("ORACLE_003", "Fresh oracle rate deviates from the expected rate beyond tolerance", http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrRateLimitExceeded() *AppError {
	return New("SYS_002", "Too many requests", http.StatusTooManyRequests)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAULT_010-style validation error.
func Validation(message string) *AppError {
	return New("VAULT_010", message, http.StatusBadRequest)
}
