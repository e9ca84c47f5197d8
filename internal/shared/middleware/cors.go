package middleware

import (
	"log/slog"
	"time"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the cross-origin policy from CORS_* settings. X-Request-ID is exposed so
// clients can quote it when reporting a failed order.
func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}

	if isWildcard(corsConfig.AllowOrigins) {
		// "*" 와 credentials 동시 사용 불가
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
		corsConfig.AllowCredentials = false

		if cfg.IsProduction() {
			slog.Warn("CORS 가 모든 origin 을 허용합니다", "env", cfg.App.Env)
		}
	}

	return cors.New(corsConfig)
}

func isWildcard(origins []string) bool {
	return len(origins) == 1 && origins[0] == "*"
}
