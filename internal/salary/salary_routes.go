package salary

import (
	"go-hrledger/internal/middleware"
	"go-hrledger/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer *casbin.Enforcer,
	rdb *redis.Client,
) {
	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware())
	{
		salaries.POST("",
			rbac.Authorize(enforcer, "salary", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		salaries.POST("/bulk",
			rbac.Authorize(enforcer, "salary", "create"),
			middleware.Idempotency(rdb),
			handler.GenerateBulk,
		)
		salaries.GET("/mine", rbac.Authorize(enforcer, "salary", "read"), handler.GetMySalaries)
		salaries.GET("", rbac.Authorize(enforcer, "salary", "read_all"), handler.GetAll)
		salaries.GET("/statistics", rbac.Authorize(enforcer, "salary", "read_all"), handler.Statistics)
		salaries.GET("/:id", rbac.Authorize(enforcer, "salary", "read"), handler.GetByID)
		salaries.PUT("/:id", rbac.Authorize(enforcer, "salary", "update"), handler.Update)
		salaries.PATCH("/:id/status", rbac.Authorize(enforcer, "salary", "update"), handler.UpdateStatus)
		salaries.POST("/:id/pay",
			rbac.Authorize(enforcer, "salary", "pay"),
			middleware.Idempotency(rdb),
			handler.ProcessPayment,
		)
		salaries.DELETE("/:id", rbac.Authorize(enforcer, "salary", "delete"), handler.Delete)
	}
}
