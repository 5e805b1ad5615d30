package sqlite

import (
	"context"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store/drivers/sqlite/gen"
)

type eventsRepo struct {
	q *gen.Queries
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.EventRecord) error {
	err := r.q.CreateEvent(ctx, gen.CreateEventParams{
		ID:        e.ID,
		HomeID:    e.HomeID,
		Title:     e.Title,
		RoomID:    e.RoomID,
		StartDate: e.StartDate.UTC(),
		EndDate:   e.EndDate.UTC(),
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt.UTC(),
	})
	return mapConflict(err)
}

func (r *eventsRepo) AddAttendee(ctx context.Context, eventID, personID string, position int) error {
	err := r.q.AddAttendee(ctx, gen.AddAttendeeParams{
		EventID:  eventID,
		PersonID: personID,
		Position: int64(position),
	})
	return mapConflict(err)
}

func (r *eventsRepo) GetEventByID(ctx context.Context, id string) (domain.EventRecord, error) {
	row, err := r.q.GetEventByID(ctx, id)
	if err != nil {
		return domain.EventRecord{}, mapNotFound(err)
	}
	attendees, err := r.q.ListAttendeeIDs(ctx, row.ID)
	if err != nil {
		return domain.EventRecord{}, err
	}
	return mapEvent(row, attendees), nil
}

func (r *eventsRepo) ListEventsByHome(ctx context.Context, homeID string) ([]domain.EventRecord, error) {
	rows, err := r.q.ListEventsByHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.EventRecord, 0, len(rows))
	for _, row := range rows {
		attendees, err := r.q.ListAttendeeIDs(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, mapEvent(row, attendees))
	}
	return out, nil
}
