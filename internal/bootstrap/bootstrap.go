package bootstrap

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/config"
	sharedError "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

const rateLimitCleanupInterval = time.Minute

// Bootstrap handles common server setup (engine + global middleware)
type Bootstrap struct {
	cfg  *config.Config
	stop chan struct{}
}

func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg:  cfg,
		stop: make(chan struct{}),
	}
}

// SetupEngine creates a gin engine with the global middleware chain:
// recovery → request id → metrics → rate limit → CORS → timeout → access log
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())

	if b.cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(b.cfg.Metrics.Path))
	}

	if b.cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(b.cfg.RateLimit.RequestsPerSecond, b.cfg.RateLimit.Burst)
		limiter.StartCleanup(rateLimitCleanupInterval, b.stop)
		engine.Use(limiter.Handler())
	}

	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(b.cfg.Server.RequestTimeout))
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

// Close stops background workers started by SetupEngine
func (b *Bootstrap) Close() {
	select {
	case <-b.stop:
	default:
		close(b.stop)
	}
}

func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	slog.Error("Panic Recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, sharedError.InternalServerError)
}
