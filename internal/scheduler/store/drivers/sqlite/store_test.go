package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store/drivers/sqlite"
	"github.com/aussiebroadwan/huddle/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedHome(t *testing.T, s store.Store) (domain.Home, domain.Room, []domain.Person) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	home := domain.Home{ID: "home-1", Name: "Flat 4", CreatedAt: now}
	require.NoError(t, s.Homes().UpsertHome(ctx, home))

	room := domain.Room{ID: "room-lounge", HomeID: home.ID, Name: "Lounge", CreatedAt: now}
	require.NoError(t, s.Rooms().UpsertRoom(ctx, room))

	people := []domain.Person{
		{ID: "p-alice", HomeID: home.ID, Name: "Alice", CreatedAt: now, UpdatedAt: now},
		{ID: "p-bob", HomeID: home.ID, Name: "Bob", CreatedAt: now, UpdatedAt: now},
		{ID: "p-cara", HomeID: home.ID, Name: "Cara", CreatedAt: now, UpdatedAt: now},
	}
	for _, p := range people {
		require.NoError(t, s.People().UpsertPerson(ctx, p))
	}
	return home, room, people
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestDirectory(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	home, room, _ := seedHome(t, s)

	t.Run("home lookup", func(t *testing.T) {
		got, err := s.Homes().GetHomeByID(ctx, home.ID)
		require.NoError(t, err)
		require.Equal(t, "Flat 4", got.Name)

		_, err = s.Homes().GetHomeByID(ctx, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("upsert renames", func(t *testing.T) {
		require.NoError(t, s.Rooms().UpsertRoom(ctx, domain.Room{ID: room.ID, HomeID: home.ID, Name: "Living Room"}))
		got, err := s.Rooms().GetRoomByID(ctx, room.ID)
		require.NoError(t, err)
		require.Equal(t, "Living Room", got.Name)
	})

	t.Run("rooms listed by home", func(t *testing.T) {
		require.NoError(t, s.Rooms().UpsertRoom(ctx, domain.Room{ID: "room-attic", HomeID: home.ID, Name: "Attic"}))
		rooms, err := s.Rooms().ListRoomsByHome(ctx, home.ID)
		require.NoError(t, err)
		require.Len(t, rooms, 2)
		require.Equal(t, "Attic", rooms[0].Name)

		rooms, err = s.Rooms().ListRoomsByHome(ctx, "other")
		require.NoError(t, err)
		require.Empty(t, rooms)
	})

	t.Run("delivery token set and cleared", func(t *testing.T) {
		require.NoError(t, s.People().UpdateDeliveryToken(ctx, "p-bob", "ExponentPushToken[bob]"))
		bob, err := s.People().GetPersonByID(ctx, "p-bob")
		require.NoError(t, err)
		require.Equal(t, "ExponentPushToken[bob]", bob.DeliveryToken)

		// Re-seeding must not wipe the token.
		require.NoError(t, s.People().UpsertPerson(ctx, domain.Person{ID: "p-bob", HomeID: home.ID, Name: "Robert"}))
		bob, err = s.People().GetPersonByID(ctx, "p-bob")
		require.NoError(t, err)
		require.Equal(t, "Robert", bob.Name)
		require.True(t, bob.HasDeliveryToken())

		require.NoError(t, s.People().UpdateDeliveryToken(ctx, "p-bob", ""))
		bob, err = s.People().GetPersonByID(ctx, "p-bob")
		require.NoError(t, err)
		require.False(t, bob.HasDeliveryToken())

		err = s.People().UpdateDeliveryToken(ctx, "p-ghost", "x")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("people listed by name", func(t *testing.T) {
		people, err := s.People().ListPeopleByHome(ctx, home.ID)
		require.NoError(t, err)
		require.Len(t, people, 3)
		require.Equal(t, "Alice", people[0].Name)
	})
}

func TestEvents(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	home, room, people := seedHome(t, s)

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	rec := domain.EventRecord{
		ID:          idx.New().String(),
		HomeID:      home.ID,
		Title:       "House meeting",
		RoomID:      room.ID,
		StartDate:   start,
		EndDate:     start.Add(time.Hour),
		AttendeeIDs: []string{people[2].ID, people[0].ID},
		CreatedBy:   people[0].ID,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Events().CreateEvent(ctx, rec); err != nil {
			return err
		}
		for i, id := range rec.AttendeeIDs {
			if err := tx.Events().AddAttendee(ctx, rec.ID, id, i); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	t.Run("round trip keeps attendee order", func(t *testing.T) {
		got, err := s.Events().GetEventByID(ctx, rec.ID)
		require.NoError(t, err)
		require.Equal(t, rec.Title, got.Title)
		require.True(t, rec.StartDate.Equal(got.StartDate))
		require.True(t, rec.EndDate.Equal(got.EndDate))
		require.Equal(t, []string{"p-cara", "p-alice"}, got.AttendeeIDs)
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := s.Events().GetEventByID(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("failed attendee insert rolls back event", func(t *testing.T) {
		bad := rec
		bad.ID = idx.New().String()
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Events().CreateEvent(ctx, bad); err != nil {
				return err
			}
			return tx.Events().AddAttendee(ctx, bad.ID, "p-ghost", 0)
		})
		require.Error(t, err)

		_, err = s.Events().GetEventByID(ctx, bad.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := s.Events().CreateEvent(ctx, rec)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("list ordered by start", func(t *testing.T) {
		earlier := rec
		earlier.ID = idx.New().String()
		earlier.StartDate = start.Add(-24 * time.Hour)
		earlier.EndDate = earlier.StartDate.Add(time.Hour)
		earlier.AttendeeIDs = nil
		require.NoError(t, s.Events().CreateEvent(ctx, earlier))

		events, err := s.Events().ListEventsByHome(ctx, home.ID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, earlier.ID, events[0].ID)
		require.Equal(t, rec.ID, events[1].ID)
	})
}

func TestDispatches(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	home, room, people := seedHome(t, s)

	now := time.Now().UTC()
	ev := domain.EventRecord{
		ID: idx.New().String(), HomeID: home.ID, Title: "Dinner", RoomID: room.ID,
		StartDate: now, EndDate: now, CreatedBy: people[0].ID, CreatedAt: now,
	}
	require.NoError(t, s.Events().CreateEvent(ctx, ev))

	old := domain.Dispatch{ID: idx.New().String(), EventID: ev.ID, Status: domain.DispatchSent, Recipients: 2, CreatedAt: now.Add(-48 * time.Hour)}
	fresh := domain.Dispatch{ID: idx.New().String(), EventID: ev.ID, Status: domain.DispatchFailed, Error: "push: 503", CreatedAt: now}
	require.NoError(t, s.Dispatches().CreateDispatch(ctx, old))
	require.NoError(t, s.Dispatches().CreateDispatch(ctx, fresh))

	list, err := s.Dispatches().ListDispatchesByEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, domain.DispatchSent, list[0].Status)
	require.Equal(t, 2, list[0].Recipients)
	require.Equal(t, "push: 503", list[1].Error)

	n, err := s.Dispatches().DeleteDispatchesBefore(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	list, err = s.Dispatches().ListDispatchesByEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, fresh.ID, list[0].ID)
}

func TestNestedTxRejected(t *testing.T) {
	s := newStore(t)
	err := s.WithTx(context.Background(), func(tx store.Tx) error {
		return tx.WithTx(context.Background(), func(store.Tx) error { return nil })
	})
	require.Error(t, err)
	require.False(t, errors.Is(err, store.ErrNotFound))
}
