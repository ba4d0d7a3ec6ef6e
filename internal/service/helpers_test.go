package service

import (
	"errors"
	"testing"

	"token-vault/pkg/apperror"

	"github.com/stretchr/testify/require"
)

// assertAppError asserts err is an *apperror.AppError with the given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code)
}
