package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ibradi0157/mon-blog/internal/config"
	"github.com/ibradi0157/mon-blog/internal/legal/handler"
	"github.com/ibradi0157/mon-blog/internal/legal/service"
	"github.com/ibradi0157/mon-blog/pkg/logger"
	"github.com/ibradi0157/mon-blog/pkg/middleware"
	"github.com/redis/go-redis/v9"
)

// RateLimiter builds the configured limiter, or returns nil when rate
// limiting is off.
func RateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) gin.HandlerFunc {
	if !cfg.Enabled {
		return nil
	}
	logger.Infof("rate limiter enabled: rps=%v burst=%d redis=%v", cfg.RPS, cfg.Burst, cfg.UseRedis)
	if cfg.UseRedis && rdb != nil {
		win := time.Duration(cfg.WindowSeconds) * time.Second
		return middleware.RedisRateLimitMiddleware(rdb, cfg.RPS, cfg.Burst, win)
	}
	return middleware.RateLimitMiddleware(cfg.RPS, cfg.Burst)
}

// RegisterLegalRoutes mounts the public and admin legal page routes under
// /api. On admin routes the limiter runs after authentication so buckets
// are per token subject; public callers are keyed by IP. Admin routes are
// skipped when ver is nil.
func RegisterLegalRoutes(r *gin.Engine, svc service.Service, ver middleware.Verifier, adminRole string, limit gin.HandlerFunc) {
	var limited []gin.HandlerFunc
	if limit != nil {
		limited = append(limited, limit)
	}

	handler.RegisterPublicRoutes(r.Group("/api", limited...), svc)

	if ver == nil {
		logger.Warnf("admin routes not registered: no token verifier configured (set KEYCLOAK_* or JWT_SECRET)")
		return
	}
	chain := append([]gin.HandlerFunc{middleware.AuthMiddleware(ver), middleware.RequireRole(adminRole)}, limited...)
	handler.RegisterAdminRoutes(r.Group("/api/admin", chain...), svc)
}
