package fares

import "time"

const (
	QueueSubmissions = "fares-submission-queue"
	QueueValidation  = "netex-validation-queue"
	QueueNotify      = "fares-notify-queue"
	QueueAlerts      = "fares-alert-queue"
)

// SubmissionEvent announces a new ticket definition in the submissions
// bucket.
type SubmissionEvent struct {
	ObjectKey string `json:"object_key"`
}

// ValidationEvent announces a generated document in the generated bucket
// awaiting schema validation.
type ValidationEvent struct {
	ObjectKey      string `json:"object_key"`
	OperatorCode   string `json:"operator_code"`
	OperatorName   string `json:"operator_name"`
	SubmitterEmail string `json:"submitter_email"`
}

// NotificationEvent announces a validated document ready to be sent back to
// the submitter.
type NotificationEvent struct {
	ObjectKey      string `json:"object_key"`
	OperatorName   string `json:"operator_name"`
	SubmitterEmail string `json:"submitter_email"`
}

// AlertEvent is the operational error channel; every generation or
// validation failure is surfaced here rather than silently dropped.
type AlertEvent struct {
	Stage      string    `json:"stage"`
	ObjectKey  string    `json:"object_key"`
	Error      string    `json:"error"`
	OccurredAt time.Time `json:"occurred_at"`
}
