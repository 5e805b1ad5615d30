package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store"
	"github.com/aussiebroadwan/huddle/pkg/idx"
	"github.com/aussiebroadwan/huddle/pkg/slogx"
)

// State is a step of one submission.
type State string

const (
	StateComposing    State = "composing"
	StateValidating   State = "validating"
	StateInvalid      State = "invalid"
	StatePersisting   State = "persisting"
	StatePersistError State = "persist_error"
	StatePersisted    State = "persisted"
	StateNotifying    State = "notifying"
	StateDone         State = "done"
)

// NotificationTimeLayout renders the event start in notification bodies,
// e.g. "03/14/2026 7:30 PM".
const NotificationTimeLayout = "01/02/2006 3:04 PM"

// EventRoute is the client screen a scheduled-event notification opens.
const EventRoute = "Event"

// SchedulingWorkflow turns a draft into a saved event and then notifies the
// other attendees in the background. Submit returns as soon as the event is
// saved; use Wait to block on outstanding notification work.
type SchedulingWorkflow struct {
	Store      store.Store
	Events     *EventStore
	Dispatcher *NotificationDispatcher

	// DispatchTimeout bounds each background fan-out. Zero means no bound.
	DispatchTimeout time.Duration

	// OnTransition, when set, sees every state change of every run. Runs
	// are concurrent, so it must be safe for concurrent use.
	OnTransition func(from, to State)

	// OnDispatched, when set, is called once per saved event after the
	// fan-out finishes. err is a *DispatchError or nil.
	OnDispatched func(eventID string, report FanoutReport, err error)

	wg sync.WaitGroup
}

type run struct {
	w     *SchedulingWorkflow
	state State
}

func (r *run) to(next State) {
	if r.w.OnTransition != nil {
		r.w.OnTransition(r.state, next)
	}
	r.state = next
}

// Submit validates draft, persists it for organizer's home and starts the
// notification fan-out. The caller's draft is copied first, so edits made
// after Submit returns never reach this run.
//
// Errors are *ValidationError or *PersistenceError; in both cases nothing
// was saved and the draft can be fixed and resubmitted.
func (w *SchedulingWorkflow) Submit(
	ctx context.Context,
	organizer domain.Person,
	draft domain.EventDraft,
) (domain.EventRecord, error) {
	l := slogx.FromContext(ctx)

	snapshot := draft.Clone()
	snapshot.AttendeeIDs = UniqueIDs(snapshot.AttendeeIDs)

	r := &run{w: w, state: StateComposing}
	r.to(StateValidating)

	if msgs := ValidateDraft(snapshot); len(msgs) > 0 {
		r.to(StateInvalid)
		l.Info("event draft rejected", slog.Any("messages", msgs))
		r.to(StateComposing)
		return domain.EventRecord{}, &ValidationError{Messages: msgs}
	}

	r.to(StatePersisting)
	rec, err := w.Events.Save(ctx, domain.EventRecordInput{
		HomeID:      organizer.HomeID,
		Title:       snapshot.Title,
		RoomID:      snapshot.RoomID,
		StartDate:   ComposeTime(*snapshot.Date, *snapshot.StartTime),
		EndDate:     ComposeTime(*snapshot.Date, *snapshot.EndTime),
		AttendeeIDs: snapshot.AttendeeIDs,
		CreatedBy:   organizer.ID,
	})
	if err != nil {
		r.to(StatePersistError)
		r.to(StateComposing)
		var pe *PersistenceError
		if !errors.As(err, &pe) {
			err = &PersistenceError{Err: err}
		}
		return domain.EventRecord{}, err
	}
	r.to(StatePersisted)

	r.to(StateNotifying)
	w.wg.Add(1)
	go w.notify(context.WithoutCancel(ctx), organizer, rec)
	r.to(StateDone)

	return rec, nil
}

// Wait blocks until every background fan-out started so far has finished.
func (w *SchedulingWorkflow) Wait() {
	w.wg.Wait()
}

func (w *SchedulingWorkflow) notify(ctx context.Context, organizer domain.Person, rec domain.EventRecord) {
	defer w.wg.Done()

	ctx = slogx.With(ctx, slog.String("event_id", rec.ID))
	l := slogx.FromContext(ctx)

	// DispatchTimeout bounds delivery only; the audit row is written on ctx.
	sendCtx := ctx
	if w.DispatchTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, w.DispatchTimeout)
		defer cancel()
	}

	var (
		report FanoutReport
		err    error
	)
	defer func() {
		if p := recover(); p != nil {
			err = &DispatchError{Err: fmt.Errorf("panic: %v", p)}
			l.Error("notification dispatch panicked", slog.Any("panic", p))
		}
		w.record(ctx, rec.ID, report, err)
		if w.OnDispatched != nil {
			w.OnDispatched(rec.ID, report, err)
		}
	}()

	recipients, lookupErr := w.recipients(sendCtx, organizer.HomeID, rec.AttendeeIDs)
	if lookupErr != nil {
		err = &DispatchError{Err: lookupErr}
		l.Warn("failed to load notification recipients", slog.Any("error", lookupErr))
		return
	}

	title, body := NotificationText(organizer, rec)
	link := Link{Route: EventRoute, Params: map[string]string{"eventId": rec.ID}}

	report, err = w.Dispatcher.Fanout(sendCtx, recipients, organizer.ID, title, body, link)
}

// recipients resolves attendee ids to people in attendee order.
func (w *SchedulingWorkflow) recipients(ctx context.Context, homeID string, ids []string) ([]domain.Person, error) {
	people, err := w.Store.People().ListPeopleByHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}

	out := make([]domain.Person, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (w *SchedulingWorkflow) record(ctx context.Context, eventID string, report FanoutReport, err error) {
	d := domain.Dispatch{
		ID:         idx.New().String(),
		EventID:    eventID,
		Status:     report.Status(err),
		Recipients: len(report.Tokens),
		CreatedAt:  time.Now().UTC(),
	}
	if err != nil {
		d.Error = err.Error()
	}

	if recErr := w.Store.Dispatches().CreateDispatch(ctx, d); recErr != nil {
		slogx.FromContext(ctx).Warn("failed to record dispatch",
			slog.String("status", string(d.Status)),
			slog.Any("error", recErr),
		)
	}
}

// NotificationText builds the push title and body for a new event.
func NotificationText(organizer domain.Person, rec domain.EventRecord) (title, body string) {
	title = rec.Title + " has been Scheduled"
	body = fmt.Sprintf("%s just scheduled a new event for %s.",
		organizer.Name, rec.StartDate.Format(NotificationTimeLayout))
	return title, body
}
