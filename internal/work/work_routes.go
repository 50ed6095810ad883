package work

import (
	"neb-hris/internal/middleware"
	"neb-hris/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	work := r.Group("/work")
	work.Use(middleware.AuthMiddleware())
	work.Use(middleware.ContextLogger(logger))
	{
		work.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "work", "create"),
			handler.Assign,
		)

		work.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "work", "read"),
			handler.GetAll,
		)

		work.GET("/me",
			middleware.RateLimitByUser(3, 10),
			handler.ListMine,
		)

		work.GET("/report/daily",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "work", "read"),
			handler.DailyReport,
		)

		work.GET("/employee/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "work", "read"),
			handler.ListByEmployee,
		)

		work.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "work", "read"),
			handler.GetById,
		)

		work.PUT("/:id/status",
			middleware.RateLimitByUser(1, 3),
			handler.UpdateStatus,
		)

		work.PUT("/:id/report",
			middleware.RateLimitByUser(0.5, 2),
			handler.SubmitReport,
		)
	}
}
