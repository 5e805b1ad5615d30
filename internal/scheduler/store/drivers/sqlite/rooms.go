package sqlite

import (
	"context"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store/drivers/sqlite/gen"
)

type roomsRepo struct {
	q *gen.Queries
}

func (r *roomsRepo) GetRoomByID(ctx context.Context, id string) (domain.Room, error) {
	row, err := r.q.GetRoomByID(ctx, id)
	if err != nil {
		return domain.Room{}, mapNotFound(err)
	}
	return mapRoom(row), nil
}

func (r *roomsRepo) ListRoomsByHome(ctx context.Context, homeID string) ([]domain.Room, error) {
	rows, err := r.q.ListRoomsByHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapRoom(row))
	}
	return out, nil
}

func (r *roomsRepo) UpsertRoom(ctx context.Context, room domain.Room) error {
	return r.q.UpsertRoom(ctx, gen.UpsertRoomParams{
		ID:        room.ID,
		HomeID:    room.HomeID,
		Name:      room.Name,
		CreatedAt: room.CreatedAt.UTC(),
	})
}
