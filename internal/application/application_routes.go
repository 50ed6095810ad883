package application

import (
	"neb-hris/internal/middleware"
	"neb-hris/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterPublicRoutes exposes the applicant-facing intake endpoints.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	careers := r.Group("/careers")
	{
		careers.POST("/apply", middleware.RateLimitByIP(0.2, 3), handler.Apply)
		careers.POST("/verify-otp", middleware.RateLimitByIP(0.5, 5), handler.VerifyOtp)
	}
}

// RegisterRoutes wires the HR-facing application review endpoints.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	applications.Use(middleware.ContextLogger(logger))
	{
		applications.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "job", "read"),
			handler.GetAll,
		)

		applications.GET("/job/:jobId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "job", "read"),
			handler.ListByJob,
		)
	}
}
