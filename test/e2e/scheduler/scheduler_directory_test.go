package scheduler_test

import (
	"testing"

	"github.com/aussiebroadwan/huddle/pkg/schedsdk"
	"github.com/stretchr/testify/require"
)

func TestDirectory(t *testing.T) {
	e, cleanup := setupSchedulerContainer(t)
	defer cleanup()

	cara := e.clientFor(t, "u3")

	rooms, err := cara.ListRooms(t.Context())
	require.NoError(t, err)
	require.ElementsMatch(t, []schedsdk.RoomResponse{
		{ID: "r1", Name: "Lounge"},
		{ID: "r2", Name: "Kitchen"},
	}, rooms)

	people, err := cara.ListPeople(t.Context())
	require.NoError(t, err)
	require.Len(t, people, 3)

	require.NoError(t, cara.SetDeliveryToken(t.Context(), "ExponentPushToken[cara]"))

	people, err = cara.ListPeople(t.Context())
	require.NoError(t, err)
	for _, p := range people {
		require.True(t, p.HasDeliveryToken, p.ID)
	}
}
