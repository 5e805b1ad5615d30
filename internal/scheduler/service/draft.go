package service

import (
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
)

// DefaultEventLength is how far after the start the default end time sits.
const DefaultEventLength = 30 * time.Minute

// NewDraft returns the form state a user starts from: today, starting now,
// ending half an hour later, with only the organizer attending.
func NewDraft(organizer domain.Person, now time.Time) domain.EventDraft {
	date := now
	start := now
	end := now.Add(DefaultEventLength)

	var attendees []string
	if organizer.ID != "" {
		attendees = []string{organizer.ID}
	}

	return domain.EventDraft{
		Date:        &date,
		StartTime:   &start,
		EndTime:     &end,
		AttendeeIDs: attendees,
	}
}

// UniqueIDs drops blanks and repeats while keeping first-seen order.
func UniqueIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
