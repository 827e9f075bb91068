package leave

import (
	"go-hrledger/internal/middleware"
	"go-hrledger/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer *casbin.Enforcer,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("", rbac.Authorize(enforcer, "leave", "create"), handler.Apply)
		leaves.GET("/mine", rbac.Authorize(enforcer, "leave", "read"), handler.GetMyLeaves)
		leaves.GET("/balance", rbac.Authorize(enforcer, "leave", "read"), handler.GetBalance)
		leaves.GET("", rbac.Authorize(enforcer, "leave", "read_all"), handler.GetAll)
		leaves.GET("/pending", rbac.Authorize(enforcer, "leave", "read_all"), handler.GetPending)
		leaves.GET("/statistics", rbac.Authorize(enforcer, "leave", "read_all"), handler.Statistics)
		leaves.GET("/:id", rbac.Authorize(enforcer, "leave", "read"), handler.GetByID)
		leaves.PATCH("/:id/approve", rbac.Authorize(enforcer, "leave", "review"), handler.Approve)
		leaves.PATCH("/:id/reject", rbac.Authorize(enforcer, "leave", "review"), handler.Reject)
		leaves.PATCH("/:id/cancel", rbac.Authorize(enforcer, "leave", "cancel"), handler.Cancel)
	}
}
