package service

import (
	"context"
	"sync"
	"testing"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store/drivers/sqlite"
	"github.com/aussiebroadwan/huddle/pkg/pushx"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	mu    sync.Mutex
	calls []pushx.Message
	err   error
}

func (f *fakeTransport) Send(_ context.Context, msg pushx.Message) ([]pushx.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, msg)
	if f.err != nil {
		return nil, f.err
	}
	tickets := make([]pushx.Ticket, len(msg.To))
	for i := range tickets {
		tickets[i] = pushx.Ticket{Status: pushx.TicketOK}
	}
	return tickets, nil
}

func (f *fakeTransport) Calls() []pushx.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pushx.Message(nil), f.calls...)
}

var (
	alice = domain.Person{ID: "u1", HomeID: "h1", Name: "Alice", DeliveryToken: "ExponentPushToken[alice]"}
	bob   = domain.Person{ID: "u2", HomeID: "h1", Name: "Bob", DeliveryToken: "ExponentPushToken[bob]"}
	cara  = domain.Person{ID: "u3", HomeID: "h1", Name: "Cara"}
	dave  = domain.Person{ID: "u4", HomeID: "h2", Name: "Dave", DeliveryToken: "ExponentPushToken[dave]"}
)

// newSeededStore returns an in-memory store with home h1 (room r1, Alice,
// Bob, Cara) and home h2 (room r2, Dave).
func newSeededStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	seed := &SeedService{Store: s}
	err = seed.Seed(context.Background(), domain.SeedData{Homes: []domain.SeedHome{
		{
			ID: "h1", Name: "Flat 4",
			Rooms: []domain.SeedRoom{{ID: "r1", Name: "Lounge"}},
			People: []domain.SeedPerson{
				{ID: alice.ID, Name: alice.Name, DeliveryToken: alice.DeliveryToken},
				{ID: bob.ID, Name: bob.Name, DeliveryToken: bob.DeliveryToken},
				{ID: cara.ID, Name: cara.Name},
			},
		},
		{
			ID: "h2", Name: "Flat 5",
			Rooms:  []domain.SeedRoom{{ID: "r2", Name: "Kitchen"}},
			People: []domain.SeedPerson{{ID: dave.ID, Name: dave.Name, DeliveryToken: dave.DeliveryToken}},
		},
	}})
	require.NoError(t, err)
	return s
}

type transitions struct {
	mu  sync.Mutex
	seq []State
}

func (tr *transitions) observe(_, to State) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.seq = append(tr.seq, to)
}

func (tr *transitions) States() []State {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]State(nil), tr.seq...)
}
