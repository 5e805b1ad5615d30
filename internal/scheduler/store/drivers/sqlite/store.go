package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store/drivers/sqlite/gen"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One connection: keeps ":memory:" databases alive across calls and
	// makes the PRAGMA below stick. Sqlite serialises writers anyway.
	db.SetMaxOpenConns(1)

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Homes() store.Homes           { return &homesRepo{q: s.q} }
func (s *Store) Rooms() store.Rooms           { return &roomsRepo{q: s.q} }
func (s *Store) People() store.People         { return &peopleRepo{q: s.q} }
func (s *Store) Events() store.Events         { return &eventsRepo{q: s.q} }
func (s *Store) Dispatches() store.Dispatches { return &dispatchesRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConflict turns sqlite unique/primary key violations into
// store.ErrAlreadyExists.
func mapConflict(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "PRIMARY KEY") {
		return store.ErrAlreadyExists
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapHome(row gen.Home) domain.Home {
	return domain.Home{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}

func mapRoom(row gen.Room) domain.Room {
	return domain.Room{
		ID:        row.ID,
		HomeID:    row.HomeID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}

func mapPerson(row gen.Person) domain.Person {
	return domain.Person{
		ID:            row.ID,
		HomeID:        row.HomeID,
		Name:          row.Name,
		DeliveryToken: mapNullString(row.DeliveryToken),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func mapEvent(row gen.Event, attendees []string) domain.EventRecord {
	return domain.EventRecord{
		ID:          row.ID,
		HomeID:      row.HomeID,
		Title:       row.Title,
		RoomID:      row.RoomID,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		AttendeeIDs: attendees,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt,
	}
}

func mapDispatch(row gen.Dispatch) domain.Dispatch {
	return domain.Dispatch{
		ID:         row.ID,
		EventID:    row.EventID,
		Status:     domain.DispatchStatus(row.Status),
		Recipients: int(row.Recipients),
		Error:      mapNullString(row.Error),
		CreatedAt:  row.CreatedAt,
	}
}
