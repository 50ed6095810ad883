package consumer

import (
	"context"
	"encoding/json"

	"neb-hris/internal/employee"
	"neb-hris/internal/events"
	"neb-hris/internal/mailer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayslipGenerated notifies employees by email when a payslip
// for them has been generated. Malformed messages are committed and
// skipped; delivery failures leave the message uncommitted so it is
// retried.
func ConsumePayslipGenerated(
	ctx context.Context,
	reader *kafkago.Reader,
	employeeRepo employee.Repository,
	mail mailer.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_notification")
	log.Info("payslip notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip notification consumer stopped")
				return
			}
			log.Error("fetch payslip generated message failed", zap.Error(err))
			continue
		}

		var event events.PayslipGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip generated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		empl, err := employeeRepo.FindByID(ctx, event.EmployeeID)
		if err != nil {
			log.Warn("employee for payslip event not found, skipping",
				zap.String("employee_id", event.EmployeeID),
				zap.String("payslip_id", event.PayslipID),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := mail.SendPayslipNotification(empl.Email, event.Period); err != nil {
			log.Error("send payslip notification failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("payslip_id", event.PayslipID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip generated message failed", zap.Error(err))
			continue
		}

		log.Info("payslip notification sent",
			zap.String("employee_id", event.EmployeeID),
			zap.String("payslip_id", event.PayslipID),
			zap.String("period", event.Period),
		)
	}
}
