package service

import "github.com/aussiebroadwan/huddle/internal/scheduler/domain"

const (
	MsgTitleRequired     = "Please enter a title"
	MsgRoomRequired      = "Please select a room"
	MsgDateRequired      = "Please choose a date"
	MsgStartTimeRequired = "Please select a start time"
	MsgEndTimeRequired   = "Please select an end time"
	MsgAttendeesRequired = "Please choose at least one person"
)

// ValidateDraft runs every check and returns the failing messages in a fixed
// order. An empty result means the draft can be persisted.
func ValidateDraft(draft domain.EventDraft) []string {
	var msgs []string

	if draft.Title == "" {
		msgs = append(msgs, MsgTitleRequired)
	}
	if draft.RoomID == "" {
		msgs = append(msgs, MsgRoomRequired)
	}
	if draft.Date == nil {
		msgs = append(msgs, MsgDateRequired)
	}
	if draft.StartTime == nil {
		msgs = append(msgs, MsgStartTimeRequired)
	}
	if draft.EndTime == nil {
		msgs = append(msgs, MsgEndTimeRequired)
	}
	if len(draft.AttendeeIDs) == 0 {
		msgs = append(msgs, MsgAttendeesRequired)
	}

	return msgs
}
