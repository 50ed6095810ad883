package app

import (
	"database/sql"

	"neb-hris/internal/application"
	"neb-hris/internal/auth"
	"neb-hris/internal/employee"
	"neb-hris/internal/job"
	"neb-hris/internal/mailer"
	"neb-hris/internal/messaging/kafka"
	"neb-hris/internal/middleware"
	"neb-hris/internal/payslip"
	"neb-hris/internal/rbac"
	"neb-hris/internal/shared/counter"
	"neb-hris/internal/work"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg Config,
) error {
	logger := zap.L()

	router.Use(middleware.RequestID())

	// --- Repositories ---
	applicationRepo := application.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payslipRepo := payslip.NewRepository(gormDB)
	workRepo := work.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Infrastructure collaborators ---
	mail := mailer.NewSMTPMailer(cfg.SMTP, logger)
	payslipStore := payslip.NewDiskFileStore(cfg.PayslipBaseFolder)
	payslipRenderer := payslip.NewPDFRenderer(cfg.CompanyName, cfg.LogoPath)
	attachmentStore := work.NewDiskAttachmentStore(cfg.UploadDir)
	workReportRenderer := work.NewPDFReportRenderer(cfg.CompanyName)
	resumeStore := application.NewDiskResumeStore(cfg.UploadDir)

	var otpStore application.OtpStore
	if rdb != nil {
		otpStore = application.NewRedisOtpStore(rdb)
	} else {
		otpStore = application.NewMemoryOtpStore()
	}

	// --- Services ---
	authService := auth.NewService(employeeRepo)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, logger)
	jobService := job.NewService(db, jobRepo, rdb, logger)
	payslipService := payslip.NewService(
		db, payslipRepo, employeeRepo,
		payslipStore, payslipRenderer, payslip.DefaultSalaryPolicy(),
		cfg.CompanyLocation, outboxRepo, logger,
	)
	workService := work.NewService(db, workRepo, attachmentStore, workReportRenderer, logger)
	applicationService := application.NewService(
		db, applicationRepo, jobRepo,
		otpStore, resumeStore, mail,
		outboxRepo, logger,
	)

	// --- Handlers ---
	applicationHandler := application.NewHandler(applicationService, logger)
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	jobHandler := job.NewHandler(jobService, logger)
	payslipHandler := payslip.NewHandler(payslipService, logger)
	workHandler := work.NewHandler(workService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		payslip.RegisterRoutes(api, payslipHandler, rbacService, rdb, logger)
		work.RegisterRoutes(api, workHandler, rbacService, logger)
		job.RegisterRoutes(api, jobHandler, rbacService, logger)
		application.RegisterRoutes(api, applicationHandler, rbacService, logger)

		// Public career surface, no auth.
		job.RegisterPublicRoutes(api, jobHandler)
		application.RegisterPublicRoutes(api, applicationHandler)
	}

	return nil
}
