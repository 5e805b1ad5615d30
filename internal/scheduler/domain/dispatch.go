package domain

import "time"

type DispatchStatus string

const (
	// DispatchSent means the transport accepted the batch.
	DispatchSent DispatchStatus = "sent"
	// DispatchSkipped means nobody had a delivery token.
	DispatchSkipped DispatchStatus = "skipped"
	// DispatchFailed means the transport call errored.
	DispatchFailed DispatchStatus = "failed"
)

// Dispatch is the audit row written after the notification fan-out for an
// event finishes.
type Dispatch struct {
	ID         string
	EventID    string
	Status     DispatchStatus
	Recipients int
	Error      string
	CreatedAt  time.Time
}
