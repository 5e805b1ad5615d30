package sqlite

import (
	"context"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store/drivers/sqlite/gen"
)

type homesRepo struct {
	q *gen.Queries
}

func (r *homesRepo) GetHomeByID(ctx context.Context, id string) (domain.Home, error) {
	row, err := r.q.GetHomeByID(ctx, id)
	if err != nil {
		return domain.Home{}, mapNotFound(err)
	}
	return mapHome(row), nil
}

func (r *homesRepo) UpsertHome(ctx context.Context, h domain.Home) error {
	return r.q.UpsertHome(ctx, gen.UpsertHomeParams{
		ID:        h.ID,
		Name:      h.Name,
		CreatedAt: h.CreatedAt.UTC(),
	})
}
