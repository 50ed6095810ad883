package payslip

import (
	"neb-hris/internal/middleware"
	"neb-hris/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	payslips.Use(middleware.ContextLogger(logger))
	{
		payslips.POST("/generate",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb),
			middleware.RBACAuthorize(rbacService, "payslip", "create"),
			handler.Generate,
		)

		payslips.POST("/generate-all",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "payslip", "create"),
			handler.GenerateAll,
		)

		payslips.GET("/me",
			middleware.RateLimitByUser(3, 10),
			handler.ListMine,
		)

		payslips.GET("/employee/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payslip", "read"),
			handler.ListForEmployee,
		)

		payslips.GET("/:id/download",
			middleware.RateLimitByUser(2, 5),
			handler.Download,
		)
	}
}
