package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store"
	"github.com/aussiebroadwan/huddle/pkg/slogx"
)

var ErrInvalidSeed = errors.New("invalid seed data")

// SeedService loads homes, rooms and people. Person ids must match the
// subjects of the auth service's access tokens.
type SeedService struct {
	Store store.Store
}

// Seed upserts everything in one transaction, so it can be re-run after
// editing the seed file. Delivery tokens already registered are kept.
func (s *SeedService) Seed(ctx context.Context, data domain.SeedData) error {
	l := slogx.FromContext(ctx)

	if err := validateSeed(data); err != nil {
		return err
	}

	now := time.Now().UTC()
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, h := range data.Homes {
			if err := tx.Homes().UpsertHome(ctx, domain.Home{ID: h.ID, Name: h.Name, CreatedAt: now}); err != nil {
				return fmt.Errorf("home %s: %w", h.ID, err)
			}
			for _, r := range h.Rooms {
				room := domain.Room{ID: r.ID, HomeID: h.ID, Name: r.Name, CreatedAt: now}
				if err := tx.Rooms().UpsertRoom(ctx, room); err != nil {
					return fmt.Errorf("room %s: %w", r.ID, err)
				}
			}
			for _, p := range h.People {
				person := domain.Person{ID: p.ID, HomeID: h.ID, Name: p.Name, CreatedAt: now, UpdatedAt: now}
				if err := tx.People().UpsertPerson(ctx, person); err != nil {
					return fmt.Errorf("person %s: %w", p.ID, err)
				}
				if p.DeliveryToken != "" {
					if err := tx.People().UpdateDeliveryToken(ctx, p.ID, p.DeliveryToken); err != nil {
						return fmt.Errorf("person %s token: %w", p.ID, err)
					}
				}
			}
			l.Info("seeded home",
				slog.String("home_id", h.ID),
				slog.Int("rooms", len(h.Rooms)),
				slog.Int("people", len(h.People)),
			)
		}
		return nil
	})
	if err != nil {
		l.Error("seed failed", slog.Any("error", err))
		return err
	}
	return nil
}

func validateSeed(data domain.SeedData) error {
	ids := make(map[string]struct{})
	claim := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%w: %s without id", ErrInvalidSeed, kind)
		}
		key := kind + ":" + id
		if _, dup := ids[key]; dup {
			return fmt.Errorf("%w: duplicate %s %q", ErrInvalidSeed, kind, id)
		}
		ids[key] = struct{}{}
		return nil
	}

	for _, h := range data.Homes {
		if err := claim("home", h.ID); err != nil {
			return err
		}
		for _, r := range h.Rooms {
			if err := claim("room", r.ID); err != nil {
				return err
			}
		}
		for _, p := range h.People {
			if err := claim("person", p.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
