package middleware

import (
	"net/http"
	"time"

	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"
	"token-vault/pkg/apperror"
	"token-vault/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// Context keys
	CtxOperatorID = "operator_id"
	CtxAccount    = "account"
	CtxRole       = "role"
)

// JWTAuth creates a middleware that validates operator bearer tokens.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		tokenStr := authHeader[7:]
		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxOperatorID, claims.OperatorID)
		c.Set(CtxAccount, claims.Account)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireRole creates a middleware gating a route group behind a minimum
// operator role. The services re-check against the operator store; this
// rejects obviously unauthorized calls before they reach business logic.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(CtxRole)
		if !exists {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}
		role, ok := v.(domain.Role)
		if !ok || !role.Allows(required) {
			response.Error(c, apperror.ErrAccessDenied(string(required)))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
