package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store/drivers/sqlite/gen"
)

type peopleRepo struct {
	q *gen.Queries
}

func (r *peopleRepo) GetPersonByID(ctx context.Context, id string) (domain.Person, error) {
	row, err := r.q.GetPersonByID(ctx, id)
	if err != nil {
		return domain.Person{}, mapNotFound(err)
	}
	return mapPerson(row), nil
}

func (r *peopleRepo) ListPeopleByHome(ctx context.Context, homeID string) ([]domain.Person, error) {
	rows, err := r.q.ListPeopleByHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Person, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPerson(row))
	}
	return out, nil
}

func (r *peopleRepo) UpsertPerson(ctx context.Context, p domain.Person) error {
	return r.q.UpsertPerson(ctx, gen.UpsertPersonParams{
		ID:        p.ID,
		HomeID:    p.HomeID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	})
}

func (r *peopleRepo) UpdateDeliveryToken(ctx context.Context, personID, token string) error {
	n, err := r.q.UpdateDeliveryToken(ctx, gen.UpdateDeliveryTokenParams{
		DeliveryToken: mapStringNull(token),
		UpdatedAt:     time.Now().UTC(),
		ID:            personID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
