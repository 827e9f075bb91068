package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/options", rbac.Authorize(enforcer, "employee", "read"), handler.GetOptions)
		employees.GET("/:id", rbac.Authorize(enforcer, "employee", "read"), handler.GetByID)
	}
}
