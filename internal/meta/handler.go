package meta

import (
	"context"
	"net/http"
	"time"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/config"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 5 * time.Second

// Handler serves operational endpoints that sit outside /api/v1
type Handler struct {
	cfg *config.Config
	db  *database.DB
}

func NewHandler(cfg *config.Config, db *database.DB) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

// Health pings the database. 200 when reachable, 503 otherwise.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	service := gin.H{
		"name":        h.cfg.App.Name,
		"environment": h.cfg.App.Env,
	}
	dbCheck := gin.H{
		"driver": h.cfg.Database.Driver,
	}

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		logger.FromContext(ctx).Error("Health check 실패", "error", err)

		dbCheck["status"] = "down"
		dbCheck["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": service,
			"checks":  gin.H{"database": dbCheck},
		})
		return
	}

	service["port"] = h.cfg.App.Port
	dbCheck["status"] = "up"
	dbCheck["latency_ms"] = time.Since(start).Milliseconds()

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": service,
		"checks":  gin.H{"database": dbCheck},
	})
}
