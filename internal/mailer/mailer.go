package mailer

import (
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// Mailer sends transactional mail. Sends are synchronous and are not
// retried here.
//
//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	SendOtp(to, code string) error
	SendApplicationConfirmation(to, jobTitle string) error
	SendPayslipNotification(to, period string) error
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	cfg    Config
	dialer *gomail.Dialer
	logger *zap.Logger
}

func NewSMTPMailer(cfg Config, logger ...*zap.Logger) Mailer {
	l := zap.L().Named("mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer")
	}
	return &smtpMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: l,
	}
}

func (m *smtpMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("send mail failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}

	m.logger.Info("mail sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

func (m *smtpMailer) SendOtp(to, code string) error {
	body := fmt.Sprintf(
		"Your verification code is %s.\n\nEnter this code to complete your job application. If you did not request it, ignore this email.",
		code,
	)
	return m.send(to, "Your application verification code", body)
}

func (m *smtpMailer) SendApplicationConfirmation(to, jobTitle string) error {
	body := fmt.Sprintf(
		"Thank you for applying for the position of %s.\n\nYour application has been received. Our recruitment team will reach out if your profile matches.",
		jobTitle,
	)
	return m.send(to, "Application received", body)
}

func (m *smtpMailer) SendPayslipNotification(to, period string) error {
	body := fmt.Sprintf(
		"Your payslip for %s is now available.\n\nLog in to the employee portal to download it.",
		period,
	)
	return m.send(to, "Payslip available for "+period, body)
}
