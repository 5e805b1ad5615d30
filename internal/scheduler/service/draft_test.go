package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/stretchr/testify/require"
)

func TestNewDraft(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 19, 5, 12, 0, time.UTC)
	d := NewDraft(domain.Person{ID: "u1", Name: "Alice"}, now)

	require.Empty(t, d.Title)
	require.Empty(t, d.RoomID)
	require.True(t, now.Equal(*d.Date))
	require.True(t, now.Equal(*d.StartTime))
	require.True(t, now.Add(30*time.Minute).Equal(*d.EndTime))
	require.Equal(t, []string{"u1"}, d.AttendeeIDs)

	// Only missing user input should fail.
	require.Equal(t, []string{MsgTitleRequired, MsgRoomRequired}, ValidateDraft(d))
}

func TestUniqueIDs(t *testing.T) {
	t.Parallel()

	require.Nil(t, UniqueIDs(nil))
	require.Equal(t, []string{}, UniqueIDs([]string{}))
	require.Equal(t, []string{"b", "a", "c"}, UniqueIDs([]string{"b", "a", "", "b", "c", "a"}))
}

func TestDraftCloneIsDeep(t *testing.T) {
	t.Parallel()

	d := completeDraft()
	c := d.Clone()

	*d.Date = d.Date.AddDate(0, 0, 1)
	d.AttendeeIDs[0] = "changed"
	d.Title = "changed"

	require.Equal(t, "Standup", c.Title)
	require.Equal(t, "u1", c.AttendeeIDs[0])
	require.Equal(t, 10, c.Date.Day())
}
