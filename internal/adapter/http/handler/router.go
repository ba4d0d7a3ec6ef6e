package handler

import (
	"token-vault/internal/adapter/http/middleware"
	redisStore "token-vault/internal/adapter/storage/redis"
	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	VaultSvc       ports.VaultService
	SettlementSvc  ports.SettlementService
	AdminSvc       ports.AdminService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- Operator routes (any authenticated operator) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	vaultHandler := NewVaultHandler(deps.VaultSvc)
	adminHandler := NewAdminHandler(deps.AdminSvc)

	flows := v1.Group("", jwtAuth)
	{
		flows.POST("/deposits", rl("flows"), vaultHandler.DepositInstant)
		flows.POST("/redemptions", rl("flows"), vaultHandler.RedeemInstant)
		flows.GET("/status", rl("requests"), adminHandler.VaultStatus)
	}

	requests := v1.Group("/requests", jwtAuth)
	{
		requests.POST("/deposit", rl("flows"), vaultHandler.CreateDepositRequest)
		requests.POST("/redeem", rl("flows"), vaultHandler.CreateRedeemRequest)
		requests.GET("", rl("requests"), vaultHandler.ListRequests)
		requests.GET("/:id", rl("requests"), vaultHandler.GetRequest)
		requests.POST("/:id/cancel", rl("requests"), vaultHandler.CancelRequest)
	}

	// --- Settlement routes (approver role) ---
	settlementHandler := NewSettlementHandler(deps.SettlementSvc)
	approverOnly := middleware.RequireRole(domain.RoleApprover)

	settlement := v1.Group("", jwtAuth, approverOnly)
	{
		settlement.POST("/requests/:id/approve", rl("settlement"), settlementHandler.Approve)
		settlement.POST("/requests/:id/reject", rl("settlement"), settlementHandler.Reject)
		settlement.POST("/settlement/approve", rl("settlement"), settlementHandler.BulkApprove)
	}

	// --- Admin routes (admin role) ---
	admin := v1.Group("/admin", jwtAuth, middleware.RequireRole(domain.RoleAdmin))
	{
		admin.PUT("/assets", rl("admin"), adminHandler.UpsertAsset)
		admin.PATCH("/assets/:asset/enabled", rl("admin"), adminHandler.SetAssetEnabled)
		admin.PUT("/limits/min", rl("admin"), adminHandler.SetMinAmount)
		admin.PUT("/limits/ceilings", rl("admin"), adminHandler.SetCeilings)
		admin.PUT("/receivers", rl("admin"), adminHandler.SetReceivers)
		admin.POST("/blocklist", rl("admin"), adminHandler.BlockParty)
		admin.DELETE("/blocklist/:account", rl("admin"), adminHandler.UnblockParty)
		admin.POST("/operators", rl("admin"), authHandler.CreateOperator)
	}

	return r
}
