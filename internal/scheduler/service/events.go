package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store"
	"github.com/aussiebroadwan/huddle/pkg/idx"
	"github.com/aussiebroadwan/huddle/pkg/slogx"
)

// EventStore persists scheduled events. A save writes the event and its
// attendee links in one transaction and is never retried.
type EventStore struct {
	Store store.Store
}

// Save assigns an id and writes the record. Any failure, including the
// room or an attendee not belonging to the home, comes back as a
// *PersistenceError with nothing written.
func (s *EventStore) Save(ctx context.Context, in domain.EventRecordInput) (domain.EventRecord, error) {
	l := slogx.FromContext(ctx)

	now := time.Now().UTC()
	rec := domain.EventRecord{
		ID:          idx.NewAt(now).String(),
		HomeID:      in.HomeID,
		Title:       in.Title,
		RoomID:      in.RoomID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		AttendeeIDs: append([]string(nil), in.AttendeeIDs...),
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		room, err := tx.Rooms().GetRoomByID(ctx, rec.RoomID)
		if errors.Is(err, store.ErrNotFound) || (err == nil && room.HomeID != rec.HomeID) {
			return ErrUnknownRoom
		}
		if err != nil {
			return err
		}

		members, err := tx.People().ListPeopleByHome(ctx, rec.HomeID)
		if err != nil {
			return err
		}
		inHome := make(map[string]struct{}, len(members))
		for _, p := range members {
			inHome[p.ID] = struct{}{}
		}

		if err := tx.Events().CreateEvent(ctx, rec); err != nil {
			return err
		}
		for i, personID := range rec.AttendeeIDs {
			if _, ok := inHome[personID]; !ok {
				return fmt.Errorf("%w: %s", ErrUnknownPerson, personID)
			}
			if err := tx.Events().AddAttendee(ctx, rec.ID, personID, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.Error("failed to persist event",
			slog.String("home_id", rec.HomeID),
			slog.String("room_id", rec.RoomID),
			slog.Any("error", err),
		)
		return domain.EventRecord{}, &PersistenceError{Err: err}
	}

	l.Info("event persisted",
		slog.String("event_id", rec.ID),
		slog.Int("attendees", len(rec.AttendeeIDs)),
	)
	return rec, nil
}

// Get returns an event only if it belongs to homeID.
func (s *EventStore) Get(ctx context.Context, homeID, eventID string) (domain.EventRecord, error) {
	rec, err := s.Store.Events().GetEventByID(ctx, eventID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.EventRecord{}, ErrEventNotFound
	}
	if err != nil {
		return domain.EventRecord{}, err
	}
	if rec.HomeID != homeID {
		return domain.EventRecord{}, ErrEventNotFound
	}
	return rec, nil
}

func (s *EventStore) List(ctx context.Context, homeID string) ([]domain.EventRecord, error) {
	return s.Store.Events().ListEventsByHome(ctx, homeID)
}

// Dispatches returns the push audit trail for an event.
func (s *EventStore) Dispatches(ctx context.Context, eventID string) ([]domain.Dispatch, error) {
	return s.Store.Dispatches().ListDispatchesByEvent(ctx, eventID)
}
