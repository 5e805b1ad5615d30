package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Sub-repositories are exposed as
// methods so a Tx-scoped store can hand out the same repos bound to the
// transaction, and so nobody starts a transaction inside a transaction.
type Store interface {
	Homes() Homes
	Rooms() Rooms
	People() People
	Events() Events
	Dispatches() Dispatches

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. The transaction is rolled
	// back when fn returns an error and committed otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Homes interface {
	GetHomeByID(ctx context.Context, id string) (domain.Home, error)

	// UpsertHome inserts the home or renames it if the id already exists.
	UpsertHome(ctx context.Context, h domain.Home) error
}

type Rooms interface {
	GetRoomByID(ctx context.Context, id string) (domain.Room, error)

	// ListRoomsByHome returns rooms ordered by name.
	ListRoomsByHome(ctx context.Context, homeID string) ([]domain.Room, error)

	UpsertRoom(ctx context.Context, r domain.Room) error
}

type People interface {
	GetPersonByID(ctx context.Context, id string) (domain.Person, error)

	// ListPeopleByHome returns people ordered by name.
	ListPeopleByHome(ctx context.Context, homeID string) ([]domain.Person, error)

	// UpsertPerson inserts the person or updates name and home. The
	// delivery token is left alone on update.
	UpsertPerson(ctx context.Context, p domain.Person) error

	// UpdateDeliveryToken sets the token; an empty token clears it.
	UpdateDeliveryToken(ctx context.Context, personID, token string) error
}

type Events interface {
	// CreateEvent inserts the event row. Attendees are added separately so
	// callers should run both inside WithTx.
	CreateEvent(ctx context.Context, e domain.EventRecord) error

	// AddAttendee links a person to an event at the given position.
	AddAttendee(ctx context.Context, eventID, personID string, position int) error

	// GetEventByID returns the event with attendees in submission order.
	GetEventByID(ctx context.Context, id string) (domain.EventRecord, error)

	// ListEventsByHome returns events ordered by start date.
	ListEventsByHome(ctx context.Context, homeID string) ([]domain.EventRecord, error)
}

type Dispatches interface {
	CreateDispatch(ctx context.Context, d domain.Dispatch) error

	ListDispatchesByEvent(ctx context.Context, eventID string) ([]domain.Dispatch, error)

	// DeleteDispatchesBefore removes audit rows created before cutoff and
	// reports how many went.
	DeleteDispatchesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
