package scheduler

import (
	"context"
	"time"

	"neb-hris/internal/payslip"

	"go.uber.org/zap"
)

// RunMonthlyPayslips blocks until ctx is cancelled, firing once at
// midnight on the first day of every month in the local time zone.
func RunMonthlyPayslips(
	ctx context.Context,
	payslipService payslip.Service,
	logger *zap.Logger,
) {
	log := logger.Named("scheduler.payslip")
	log.Info("monthly payslip scheduler started")

	for {
		next := nextMonthStart(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			log.Info("monthly payslip scheduler stopped")
			return
		case <-timer.C:
			RunOnce(ctx, payslipService, next, log)
		}
	}
}

// RunOnce generates payslips for the month containing now. Failures
// for individual employees are handled inside the batch; only a
// failure to run the batch at all is reported here.
func RunOnce(
	ctx context.Context,
	payslipService payslip.Service,
	now time.Time,
	logger *zap.Logger,
) {
	period := now.Format("January 2006")
	if _, err := payslipService.GenerateAll(ctx, period); err != nil {
		logger.Error("payslip batch failed",
			zap.String("period", period),
			zap.Error(err),
		)
	}
}

// nextMonthStart returns midnight on the first day of the month after
// the one containing t, in t's location.
func nextMonthStart(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month+1, 1, 0, 0, 0, 0, t.Location())
}
