package service

import (
	"context"
	"fmt"
	"time"

	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"
	"token-vault/pkg/apperror"

	"github.com/google/uuid"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	operatorRepo ports.OperatorRepository
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
	roles        ports.RoleChecker
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	operatorRepo ports.OperatorRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	roles ports.RoleChecker,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		operatorRepo: operatorRepo,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
		roles:        roles,
	}
}

// Login validates operator credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	op, err := s.operatorRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find operator: %w", err))
	}
	if op == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, op.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if !op.IsActive() {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(op)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}

// CreateOperator provisions a new operator account. Admin only.
func (s *AuthServiceImpl) CreateOperator(ctx context.Context, caller string, req ports.CreateOperatorRequest) (*domain.Operator, error) {
	if err := s.roles.Require(ctx, caller, domain.RoleAdmin); err != nil {
		return nil, err
	}

	existing, err := s.operatorRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	existing, err = s.operatorRepo.GetByAccount(ctx, req.Account)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check account: %w", err))
	}
	if existing != nil {
		return nil, apperror.Validation("account already assigned to an operator")
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	op := &domain.Operator{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Account:      req.Account,
		Role:         req.Role,
		Status:       domain.OperatorStatusActive,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.operatorRepo.Create(ctx, op); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create operator: %w", err))
	}

	return op, nil
}
