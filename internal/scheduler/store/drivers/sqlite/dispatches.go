package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store/drivers/sqlite/gen"
)

type dispatchesRepo struct {
	q *gen.Queries
}

func (r *dispatchesRepo) CreateDispatch(ctx context.Context, d domain.Dispatch) error {
	return r.q.CreateDispatch(ctx, gen.CreateDispatchParams{
		ID:         d.ID,
		EventID:    d.EventID,
		Status:     string(d.Status),
		Recipients: int64(d.Recipients),
		Error:      mapStringNull(d.Error),
		CreatedAt:  d.CreatedAt.UTC(),
	})
}

func (r *dispatchesRepo) ListDispatchesByEvent(ctx context.Context, eventID string) ([]domain.Dispatch, error) {
	rows, err := r.q.ListDispatchesByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Dispatch, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapDispatch(row))
	}
	return out, nil
}

func (r *dispatchesRepo) DeleteDispatchesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.q.DeleteDispatchesBefore(ctx, cutoff.UTC())
}
