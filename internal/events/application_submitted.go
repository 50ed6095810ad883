package events

import "time"

const ApplicationSubmittedTopic = "hr.application.submitted.v1"

type ApplicationSubmittedEvent struct {
	EventType     string    `json:"event_type"`
	ApplicationID string    `json:"application_id"`
	JobID         string    `json:"job_id"`
	Email         string    `json:"email"`
	OccurredAt    time.Time `json:"occurred_at"`
}
