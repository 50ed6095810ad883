package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"neb-hris/internal/employee"
	"neb-hris/internal/messaging/kafka"
	"neb-hris/internal/payslip"
	"neb-hris/internal/scheduler"
	"neb-hris/internal/shared/connection"

	"go.uber.org/zap"
)

func RunScheduler() error {
	logger := zap.L().Named("app.scheduler")
	cfg := LoadConfig()

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	employeeRepo := employee.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	payslipService := payslip.NewService(
		sqlDB, payslipRepo, employeeRepo,
		payslip.NewDiskFileStore(cfg.PayslipBaseFolder),
		payslip.NewPDFRenderer(cfg.CompanyName, cfg.LogoPath),
		payslip.DefaultSalaryPolicy(),
		cfg.CompanyLocation,
		outboxRepo, logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go scheduler.RunMonthlyPayslips(ctx, payslipService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("scheduler shutting down")
	cancel()

	return nil
}
