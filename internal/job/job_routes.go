package job

import (
	"neb-hris/internal/middleware"
	"neb-hris/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes wires the admin-facing posting management endpoints.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	jobs.Use(middleware.ContextLogger(logger))
	{
		jobs.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "job", "create"),
			handler.Create,
		)

		jobs.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "job", "read"),
			handler.GetAll,
		)

		jobs.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "job", "update"),
			handler.Update,
		)

		jobs.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "job", "delete"),
			handler.Delete,
		)
	}
}

// RegisterPublicRoutes exposes the career page lookups without auth.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	public := r.Group("/careers/jobs")
	{
		public.GET("", middleware.RateLimitByIP(2, 10), handler.GetAll)
		public.GET("/:id", middleware.RateLimitByIP(2, 10), handler.GetById)
	}
}
