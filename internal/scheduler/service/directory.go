package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store"
)

// DirectoryService reads the people and rooms of a home.
type DirectoryService struct {
	Store store.Store
}

// GetPerson fetches a person by id; the organizer of a request is resolved
// through here from the token subject.
func (s *DirectoryService) GetPerson(ctx context.Context, personID string) (domain.Person, error) {
	p, err := s.Store.People().GetPersonByID(ctx, personID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Person{}, ErrPersonNotFound
	}
	return p, err
}

func (s *DirectoryService) ListRooms(ctx context.Context, homeID string) ([]domain.Room, error) {
	return s.Store.Rooms().ListRoomsByHome(ctx, homeID)
}

func (s *DirectoryService) ListPeople(ctx context.Context, homeID string) ([]domain.Person, error) {
	return s.Store.People().ListPeopleByHome(ctx, homeID)
}

// SetDeliveryToken registers the device token for a person. An empty token
// unregisters the device.
func (s *DirectoryService) SetDeliveryToken(ctx context.Context, personID, token string) error {
	err := s.Store.People().UpdateDeliveryToken(ctx, personID, token)
	if errors.Is(err, store.ErrNotFound) {
		return ErrPersonNotFound
	}
	return err
}
