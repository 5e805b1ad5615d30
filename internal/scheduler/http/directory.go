package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/huddle/internal/scheduler/service"
	"github.com/aussiebroadwan/huddle/pkg/httpx"
	"github.com/aussiebroadwan/huddle/pkg/schedsdk"
	"github.com/aussiebroadwan/huddle/pkg/slogx"
)

type DirectoryHandler struct {
	Directory *service.DirectoryService
}

// HandleRooms godoc
//
//	@Summary		List Rooms
//	@Description	Rooms of the caller's home.
//	@Tags			Directory
//	@Produce		json
//	@Success		200	{object}	schedsdk.RoomListResponse
//	@Failure		401	{object}	schedsdk.ErrorResponse
//	@Failure		403	{object}	schedsdk.ErrorResponse	"person_not_registered"
//	@Security		BearerAuth
//	@Router			/v1/rooms [get].
func (h *DirectoryHandler) HandleRooms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	me, apiErr := currentPerson(ctx, h.Directory)
	if apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	rooms, err := h.Directory.ListRooms(ctx, me.HomeID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list rooms", "err", err)
		schedsdk.ErrServerError.WriteError(w)
		return
	}

	resp := schedsdk.RoomListResponse{Rooms: make([]schedsdk.RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, schedsdk.RoomResponse{ID: room.ID, Name: room.Name})
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandlePeople godoc
//
//	@Summary		List People
//	@Description	Members of the caller's home. Delivery tokens are never returned.
//	@Tags			Directory
//	@Produce		json
//	@Success		200	{object}	schedsdk.PersonListResponse
//	@Failure		401	{object}	schedsdk.ErrorResponse
//	@Failure		403	{object}	schedsdk.ErrorResponse	"person_not_registered"
//	@Security		BearerAuth
//	@Router			/v1/people [get].
func (h *DirectoryHandler) HandlePeople(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	me, apiErr := currentPerson(ctx, h.Directory)
	if apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	people, err := h.Directory.ListPeople(ctx, me.HomeID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list people", "err", err)
		schedsdk.ErrServerError.WriteError(w)
		return
	}

	resp := schedsdk.PersonListResponse{People: make([]schedsdk.PersonResponse, 0, len(people))}
	for _, p := range people {
		resp.People = append(resp.People, personResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleDeliveryToken godoc
//
//	@Summary		Register Push Token
//	@Description	Set the caller's push delivery token. An empty token unregisters the device.
//	@Tags			Directory
//	@Accept			json
//	@Param			request	body	schedsdk.DeliveryTokenRequest	true	"Delivery token"
//	@Success		204
//	@Failure		400	{object}	schedsdk.ErrorResponse
//	@Failure		401	{object}	schedsdk.ErrorResponse
//	@Failure		403	{object}	schedsdk.ErrorResponse	"person_not_registered"
//	@Security		BearerAuth
//	@Router			/v1/people/me/delivery-token [put].
func (h *DirectoryHandler) HandleDeliveryToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok || userID == "" {
		schedsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req schedsdk.DeliveryTokenRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		schedsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	err := h.Directory.SetDeliveryToken(ctx, userID, req.Token)
	if errors.Is(err, service.ErrPersonNotFound) {
		schedsdk.ErrPersonNotRegistered.WriteError(w)
		return
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to set delivery token", "err", err)
		schedsdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
