package domain

import "time"

// EventDraft is the user-editable form state. Pointer fields are nil when
// the user has not picked a value. Only the calendar date of Date and only
// the hour and minute of StartTime/EndTime are meaningful.
type EventDraft struct {
	Title       string
	RoomID      string
	Date        *time.Time
	StartTime   *time.Time
	EndTime     *time.Time
	AttendeeIDs []string
}

// Clone returns a deep copy so a submission can't observe later edits.
func (d EventDraft) Clone() EventDraft {
	out := d
	out.Date = cloneTime(d.Date)
	out.StartTime = cloneTime(d.StartTime)
	out.EndTime = cloneTime(d.EndTime)
	out.AttendeeIDs = append([]string(nil), d.AttendeeIDs...)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// EventRecordInput is what gets handed to the store; the store assigns ID
// and CreatedAt.
type EventRecordInput struct {
	HomeID      string
	Title       string
	RoomID      string
	StartDate   time.Time
	EndDate     time.Time
	AttendeeIDs []string
	CreatedBy   string
}

type EventRecord struct {
	ID          string
	HomeID      string
	Title       string
	RoomID      string
	StartDate   time.Time
	EndDate     time.Time
	AttendeeIDs []string
	CreatedBy   string
	CreatedAt   time.Time
}
