package http

import (
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/pkg/schedsdk"
)

// draftFromRequest converts the wire form into a draft. Date and clock
// strings that fail to parse are left nil so validation reports them.
func draftFromRequest(req schedsdk.EventDraftRequest, organizer domain.Person, loc *time.Location) domain.EventDraft {
	draft := domain.EventDraft{
		Title:     req.Title,
		RoomID:    req.RoomID,
		Date:      parseIn(schedsdk.DateLayout, req.Date, loc),
		StartTime: parseIn(schedsdk.ClockLayout, req.StartTime, loc),
		EndTime:   parseIn(schedsdk.ClockLayout, req.EndTime, loc),
	}

	if req.AttendeeIDs == nil {
		draft.AttendeeIDs = []string{organizer.ID}
	} else {
		draft.AttendeeIDs = append([]string{}, (*req.AttendeeIDs)...)
	}
	return draft
}

func parseIn(layout, value string, loc *time.Location) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return nil
	}
	return &t
}

func draftResponse(draft domain.EventDraft, loc *time.Location) schedsdk.DraftResponse {
	req := schedsdk.EventDraftRequest{
		Title:  draft.Title,
		RoomID: draft.RoomID,
	}
	if draft.Date != nil {
		req.Date = draft.Date.In(loc).Format(schedsdk.DateLayout)
	}
	if draft.StartTime != nil {
		req.StartTime = draft.StartTime.In(loc).Format(schedsdk.ClockLayout)
	}
	if draft.EndTime != nil {
		req.EndTime = draft.EndTime.In(loc).Format(schedsdk.ClockLayout)
	}
	attendees := append([]string{}, draft.AttendeeIDs...)
	req.AttendeeIDs = &attendees

	return schedsdk.DraftResponse{EventDraftRequest: req, Timezone: loc.String()}
}

func eventResponse(rec domain.EventRecord, loc *time.Location) schedsdk.EventResponse {
	return schedsdk.EventResponse{
		ID:          rec.ID,
		HomeID:      rec.HomeID,
		Title:       rec.Title,
		RoomID:      rec.RoomID,
		StartDate:   rec.StartDate.In(loc),
		EndDate:     rec.EndDate.In(loc),
		AttendeeIDs: rec.AttendeeIDs,
		CreatedBy:   rec.CreatedBy,
		CreatedAt:   rec.CreatedAt,
	}
}

func personResponse(p domain.Person) schedsdk.PersonResponse {
	return schedsdk.PersonResponse{
		ID:               p.ID,
		Name:             p.Name,
		HasDeliveryToken: p.HasDeliveryToken(),
	}
}
