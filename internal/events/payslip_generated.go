package events

import "time"

const PayslipGeneratedTopic = "hr.payslip.generated.v1"

type PayslipGeneratedEvent struct {
	EventType  string    `json:"event_type"`
	PayslipID  string    `json:"payslip_id"`
	EmployeeID string    `json:"employee_id"`
	Period     string    `json:"period"`
	OccurredAt time.Time `json:"occurred_at"`
}
