package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store"
	"github.com/aussiebroadwan/huddle/pkg/pushx"
	"github.com/stretchr/testify/require"
)

type dispatched struct {
	eventID string
	report  FanoutReport
	err     error
}

func newWorkflow(s store.Store, tr PushTransport) (*SchedulingWorkflow, *transitions, chan dispatched) {
	obs := &transitions{}
	done := make(chan dispatched, 16)
	w := &SchedulingWorkflow{
		Store:           s,
		Events:          &EventStore{Store: s},
		Dispatcher:      &NotificationDispatcher{Transport: tr},
		DispatchTimeout: 5 * time.Second,
		OnTransition:    obs.observe,
		OnDispatched: func(eventID string, report FanoutReport, err error) {
			done <- dispatched{eventID: eventID, report: report, err: err}
		},
	}
	return w, obs, done
}

func receive(t *testing.T, ch <-chan dispatched) dispatched {
	t.Helper()
	select {
	case d := <-ch:
		return d
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for dispatch")
		return dispatched{}
	}
}

func TestSubmitScenarioA(t *testing.T) {
	s := newSeededStore(t)
	tr := &fakeTransport{}
	w, obs, done := newWorkflow(s, tr)
	ctx := context.Background()

	draft := completeDraft()
	rec, err := w.Submit(ctx, alice, draft)
	require.NoError(t, err)

	require.NotEmpty(t, rec.ID)
	require.Equal(t, "h1", rec.HomeID)
	require.Equal(t, "Standup", rec.Title)
	require.Equal(t, "r1", rec.RoomID)
	require.True(t, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC).Equal(rec.StartDate))
	require.True(t, time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC).Equal(rec.EndDate))
	require.Equal(t, []string{"u1", "u2"}, rec.AttendeeIDs)

	got := receive(t, done)
	require.Equal(t, rec.ID, got.eventID)
	require.NoError(t, got.err)
	require.Equal(t, []string{bob.DeliveryToken}, got.report.Tokens)

	calls := tr.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, []string{bob.DeliveryToken}, calls[0].To)
	require.Equal(t, "Standup has been Scheduled", calls[0].Title)
	require.Equal(t, "Alice just scheduled a new event for 01/10/2024 9:00 AM.", calls[0].Body)
	require.Equal(t, map[string]any{
		"navigate": map[string]any{
			"route":  "Event",
			"params": map[string]any{"eventId": rec.ID},
		},
	}, calls[0].Data)

	require.Equal(t, []State{
		StateValidating, StatePersisting, StatePersisted, StateNotifying, StateDone,
	}, obs.States())

	stored, err := s.Events().GetEventByID(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec.AttendeeIDs, stored.AttendeeIDs)

	w.Wait()
	audit, err := s.Dispatches().ListDispatchesByEvent(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, audit, 1)
	require.Equal(t, domain.DispatchSent, audit[0].Status)
	require.Equal(t, 1, audit[0].Recipients)
}

func TestSubmitScenarioB(t *testing.T) {
	s := newSeededStore(t)
	tr := &fakeTransport{}
	w, obs, done := newWorkflow(s, tr)
	ctx := context.Background()

	draft := completeDraft()
	draft.Title = ""
	draft.RoomID = ""

	_, err := w.Submit(ctx, alice, draft)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"Please enter a title", "Please select a room"}, ve.Messages)
	require.Equal(t, "Please enter a title\nPlease select a room", ve.Error())

	w.Wait()
	require.Empty(t, tr.Calls())
	require.Empty(t, done)

	events, err := s.Events().ListEventsByHome(ctx, "h1")
	require.NoError(t, err)
	require.Empty(t, events)

	require.Equal(t, []State{StateValidating, StateInvalid, StateComposing}, obs.States())
}

func TestSubmitScenarioC(t *testing.T) {
	s := newSeededStore(t)
	tr := &fakeTransport{}
	w, obs, done := newWorkflow(s, tr)

	// An unreachable store.
	require.NoError(t, s.Close())

	draft := completeDraft()
	before := draft.Clone()

	_, err := w.Submit(context.Background(), alice, draft)

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, before, draft)

	w.Wait()
	require.Empty(t, tr.Calls())
	require.Empty(t, done)
	require.Equal(t, []State{StateValidating, StatePersisting, StatePersistError, StateComposing}, obs.States())
}

func TestSubmitRejectsForeignReferences(t *testing.T) {
	s := newSeededStore(t)
	w, _, _ := newWorkflow(s, &fakeTransport{})
	ctx := context.Background()

	t.Run("room from another home", func(t *testing.T) {
		d := completeDraft()
		d.RoomID = "r2"
		_, err := w.Submit(ctx, alice, d)
		require.ErrorIs(t, err, ErrUnknownRoom)
	})

	t.Run("attendee from another home", func(t *testing.T) {
		d := completeDraft()
		d.AttendeeIDs = []string{"u1", dave.ID}
		_, err := w.Submit(ctx, alice, d)
		var pe *PersistenceError
		require.ErrorAs(t, err, &pe)
		require.ErrorIs(t, err, ErrUnknownPerson)

		events, err := s.Events().ListEventsByHome(ctx, "h1")
		require.NoError(t, err)
		require.Empty(t, events)
	})
}

func TestSubmitDoesNotWaitForDispatch(t *testing.T) {
	s := newSeededStore(t)
	release := make(chan struct{})
	tr := &blockingTransport{release: release}
	w, obs, done := newWorkflow(s, tr)

	rec, err := w.Submit(context.Background(), alice, completeDraft())
	require.NoError(t, err)
	require.Equal(t, StateDone, obs.States()[len(obs.States())-1])
	require.Empty(t, done)

	close(release)
	got := receive(t, done)
	require.Equal(t, rec.ID, got.eventID)
}

func TestSubmitDispatchSurvivesCallerCancel(t *testing.T) {
	s := newSeededStore(t)
	release := make(chan struct{})
	tr := &blockingTransport{release: release}
	w, _, done := newWorkflow(s, tr)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := w.Submit(ctx, alice, completeDraft())
	require.NoError(t, err)
	cancel()

	close(release)
	got := receive(t, done)
	require.NoError(t, got.err)
}

func TestSubmitDispatchFailureIsNotFatal(t *testing.T) {
	s := newSeededStore(t)
	tr := &fakeTransport{err: errors.New("expo unavailable")}
	w, _, done := newWorkflow(s, tr)
	ctx := context.Background()

	rec, err := w.Submit(ctx, alice, completeDraft())
	require.NoError(t, err)

	got := receive(t, done)
	var de *DispatchError
	require.ErrorAs(t, got.err, &de)

	w.Wait()
	_, err = s.Events().GetEventByID(ctx, rec.ID)
	require.NoError(t, err)

	audit, err := s.Dispatches().ListDispatchesByEvent(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, audit, 1)
	require.Equal(t, domain.DispatchFailed, audit[0].Status)
	require.Contains(t, audit[0].Error, "expo unavailable")
}

func TestSubmitDispatchTimeoutIsAudited(t *testing.T) {
	s := newSeededStore(t)
	tr := &blockingTransport{release: make(chan struct{})}
	w, _, done := newWorkflow(s, tr)
	w.DispatchTimeout = 50 * time.Millisecond
	ctx := context.Background()

	rec, err := w.Submit(ctx, alice, completeDraft())
	require.NoError(t, err)

	got := receive(t, done)
	require.ErrorIs(t, got.err, context.DeadlineExceeded)

	w.Wait()
	audit, err := s.Dispatches().ListDispatchesByEvent(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, audit, 1)
	require.Equal(t, domain.DispatchFailed, audit[0].Status)
	require.Contains(t, audit[0].Error, "deadline exceeded")
}

func TestSubmitOrganizerOnly(t *testing.T) {
	s := newSeededStore(t)
	tr := &fakeTransport{}
	w, _, done := newWorkflow(s, tr)

	d := completeDraft()
	d.AttendeeIDs = []string{alice.ID, alice.ID}
	rec, err := w.Submit(context.Background(), alice, d)
	require.NoError(t, err)
	require.Equal(t, []string{alice.ID}, rec.AttendeeIDs)

	got := receive(t, done)
	require.NoError(t, got.err)
	require.False(t, got.report.Sent)
	require.Empty(t, tr.Calls())
}

func TestSubmitConcurrentRunsAreIndependent(t *testing.T) {
	s := newSeededStore(t)
	tr := &fakeTransport{}
	w, _, _ := newWorkflow(s, tr)
	w.OnTransition = nil
	w.OnDispatched = nil
	ctx := context.Background()

	const n = 8
	ids := make(chan string, n)
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := completeDraft()
			d.Title = fmt.Sprintf("Run %d", i)
			rec, err := w.Submit(ctx, alice, d)
			if err != nil {
				errs <- err
				return
			}
			ids <- rec.ID
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)
	w.Wait()

	for err := range errs {
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	for id := range ids {
		require.False(t, seen[id])
		seen[id] = true
	}
	require.Len(t, seen, n)
	require.Len(t, tr.Calls(), n)

	events, err := s.Events().ListEventsByHome(ctx, "h1")
	require.NoError(t, err)
	require.Len(t, events, n)
}

type blockingTransport struct {
	fakeTransport
	release chan struct{}
}

func (b *blockingTransport) Send(ctx context.Context, msg pushx.Message) ([]pushx.Ticket, error) {
	select {
	case <-b.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return b.fakeTransport.Send(ctx, msg)
}
