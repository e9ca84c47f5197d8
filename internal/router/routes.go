package router

import (
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/coffee"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/config"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/member"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/meta"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/order"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check, build info)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	// repository
	coffeeRepository := coffee.NewCoffeeRepository()
	memberRepository := member.NewMemberRepository()
	orderRepository := order.NewOrderRepository()

	// service
	coffeeService := coffee.NewCoffeeService(db.DB, coffeeRepository)
	memberService := member.NewMemberService(db.DB, memberRepository)
	orderService := order.NewOrderService(db.DB, orderRepository, memberRepository, coffeeRepository)

	// handler
	coffeeHandler := coffee.NewCoffeeHandler(coffeeService)
	memberHandler := member.NewMemberHandler(memberService)
	orderHandler := order.NewOrderHandler(orderService)

	// 카탈로그 변경은 AUTH_ENABLED=true 일 때 스태프 토큰 필요
	staffOnly := []gin.HandlerFunc{}
	if cfg.Auth.Enabled {
		staffOnly = append(staffOnly, middleware.JWT(token.NewJWTManager(cfg), token.RoleStaff))
	}

	v1 := router.Group("/api/v1")

	coffeeV1 := v1.Group("/coffees")
	{
		coffeeV1.GET("", coffeeHandler.List)
		coffeeV1.GET("/:id", coffeeHandler.Get)

		manage := coffeeV1.Group("", staffOnly...)
		manage.POST("", coffeeHandler.Create)
		manage.PATCH("/:id", coffeeHandler.Update)
		manage.DELETE("/:id", coffeeHandler.Delete)
	}

	memberV1 := v1.Group("/members")
	{
		memberV1.POST("", memberHandler.Create)
		memberV1.GET("", memberHandler.List)
		memberV1.GET("/:id", memberHandler.Get)
		memberV1.PATCH("/:id", memberHandler.Update)
		memberV1.DELETE("/:id", memberHandler.Delete)
	}

	orderV1 := v1.Group("/orders")
	{
		orderV1.POST("", orderHandler.Create)
		orderV1.GET("", orderHandler.List)
		orderV1.GET("/:id", orderHandler.Get)
		orderV1.PATCH("/:id", orderHandler.Update)
		orderV1.DELETE("/:id", orderHandler.Delete)
	}
}
