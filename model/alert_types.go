package model

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// AlertDuration is how long a banner stays on screen.
const AlertDuration = 4000 * time.Millisecond

type Alert struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// DismissAfterMS is read by the page script.
	DismissAfterMS int64 `json:"dismissAfterMs"`
}

func NewAlert(sev Severity, message string) Alert {
	return Alert{
		Severity:       sev,
		Message:        message,
		DismissAfterMS: AlertDuration.Milliseconds(),
	}
}
