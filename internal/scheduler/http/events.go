package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/service"
	"github.com/aussiebroadwan/huddle/pkg/httpx"
	"github.com/aussiebroadwan/huddle/pkg/schedsdk"
	"github.com/aussiebroadwan/huddle/pkg/slogx"
)

type EventsHandler struct {
	Workflow   *service.SchedulingWorkflow
	EventStore *service.EventStore
	Directory  *service.DirectoryService
	Location   *time.Location
	Now        func() time.Time
}

// HandleSubmit godoc
//
//	@Summary		Schedule Event
//	@Description	Validate and save an event for the caller's home, then notify the other attendees in the background.
//	@Description	The response is sent once the event is saved; notification delivery is not awaited.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string						false	"UUID; retries with the same key replay the first response"
//	@Param			request			body		schedsdk.EventDraftRequest	true	"Event draft"
//	@Success		201				{object}	schedsdk.EventResponse
//	@Failure		400				{object}	schedsdk.ErrorResponse	"validation_failed with messages, or invalid_request"
//	@Failure		401				{object}	schedsdk.ErrorResponse
//	@Failure		403				{object}	schedsdk.ErrorResponse	"person_not_registered"
//	@Failure		422				{object}	schedsdk.ErrorResponse	"unknown_reference"
//	@Failure		502				{object}	schedsdk.ErrorResponse	"persistence_failed"
//	@Security		BearerAuth
//	@Router			/v1/events [post].
func (h *EventsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	organizer, apiErr := currentPerson(ctx, h.Directory)
	if apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	var req schedsdk.EventDraftRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		schedsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	draft := draftFromRequest(req, organizer, h.Location)
	rec, err := h.Workflow.Submit(ctx, organizer, draft)
	if err != nil {
		var (
			validationErr  *service.ValidationError
			persistenceErr *service.PersistenceError
		)
		switch {
		case errors.As(err, &validationErr):
			schedsdk.NewValidationError(validationErr.Messages).WriteError(w)
		case errors.Is(err, service.ErrUnknownRoom):
			schedsdk.NewUnknownReferenceError("room is not part of your home").WriteError(w)
		case errors.Is(err, service.ErrUnknownPerson):
			schedsdk.NewUnknownReferenceError("an attendee is not part of your home").WriteError(w)
		case errors.As(err, &persistenceErr):
			log.Error("failed to save event", "err", err)
			schedsdk.NewPersistenceError().WriteError(w)
		default:
			log.Error("failed to schedule event", "err", err)
			schedsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, eventResponse(rec, h.Location))
}

// HandleDraft godoc
//
//	@Summary		New Event Draft
//	@Description	Pre-filled form: today, starting now, ending in 30 minutes, with only the caller attending.
//	@Tags			Events
//	@Produce		json
//	@Success		200	{object}	schedsdk.DraftResponse
//	@Failure		401	{object}	schedsdk.ErrorResponse
//	@Failure		403	{object}	schedsdk.ErrorResponse	"person_not_registered"
//	@Security		BearerAuth
//	@Router			/v1/events/draft [get].
func (h *EventsHandler) HandleDraft(w http.ResponseWriter, r *http.Request) {
	organizer, apiErr := currentPerson(r.Context(), h.Directory)
	if apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	draft := service.NewDraft(organizer, h.Now().In(h.Location))

	httpx.WriteJSON(w, http.StatusOK, draftResponse(draft, h.Location))
}

// HandleList godoc
//
//	@Summary		List Events
//	@Description	Events of the caller's home ordered by start.
//	@Tags			Events
//	@Produce		json
//	@Success		200	{object}	schedsdk.EventListResponse
//	@Failure		401	{object}	schedsdk.ErrorResponse
//	@Failure		403	{object}	schedsdk.ErrorResponse	"person_not_registered"
//	@Security		BearerAuth
//	@Router			/v1/events [get].
func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	organizer, apiErr := currentPerson(ctx, h.Directory)
	if apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	records, err := h.EventStore.List(ctx, organizer.HomeID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list events", "err", err)
		schedsdk.ErrServerError.WriteError(w)
		return
	}

	resp := schedsdk.EventListResponse{Events: make([]schedsdk.EventResponse, 0, len(records))}
	for _, rec := range records {
		resp.Events = append(resp.Events, eventResponse(rec, h.Location))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary		Get Event
//	@Description	One event of the caller's home. Scheduled-event notifications link here.
//	@Tags			Events
//	@Produce		json
//	@Param			id	path		string	true	"Event ID"
//	@Success		200	{object}	schedsdk.EventResponse
//	@Failure		401	{object}	schedsdk.ErrorResponse
//	@Failure		404	{object}	schedsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/events/{id} [get].
func (h *EventsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	organizer, apiErr := currentPerson(ctx, h.Directory)
	if apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	rec, err := h.EventStore.Get(ctx, organizer.HomeID, r.PathValue("id"))
	if errors.Is(err, service.ErrEventNotFound) {
		schedsdk.ErrNotFound.WriteError(w)
		return
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load event", "err", err)
		schedsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, eventResponse(rec, h.Location))
}
