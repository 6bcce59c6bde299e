package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventUpdate_Apply(t *testing.T) {
	date := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	base := Event{
		ID:          "1",
		Title:       "Sample Event",
		Description: "Event description",
		Date:        date,
		Location:    "Event location",
		Organizer:   "Organizer",
	}
	title := "Updated Event"
	newDate := date.Add(24 * time.Hour)

	tests := []struct {
		name   string
		update EventUpdate
		want   Event
	}{
		{
			name:   "title only",
			update: EventUpdate{Title: &title},
			want: Event{
				ID: "1", Title: "Updated Event", Description: "Event description",
				Date: date, Location: "Event location", Organizer: "Organizer",
			},
		},
		{
			name:   "date only",
			update: EventUpdate{Date: &newDate},
			want: Event{
				ID: "1", Title: "Sample Event", Description: "Event description",
				Date: newDate, Location: "Event location", Organizer: "Organizer",
			},
		},
		{
			name:   "empty update",
			update: EventUpdate{},
			want:   base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := base
			tt.update.Apply(&e)
			require.Equal(t, tt.want, e)
		})
	}
}

func TestEventUpdate_IsEmpty(t *testing.T) {
	loc := "Room 1"
	assert.True(t, EventUpdate{}.IsEmpty())
	assert.False(t, EventUpdate{Location: &loc}.IsEmpty())
}

func TestNewEvent(t *testing.T) {
	date := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	e := NewEvent("ev-1", EventCreate{
		Title: "T", Description: "D", Date: date, Location: "L", Organizer: "O",
	})
	require.Equal(t, &Event{ID: "ev-1", Title: "T", Description: "D", Date: date, Location: "L", Organizer: "O"}, e)
}

func TestErrNotDeleted_MatchesInternal(t *testing.T) {
	require.True(t, errors.Is(ErrNotDeleted, ErrInternal))
	require.False(t, errors.Is(ErrNotFound, ErrInternal))
}

func TestNewEvent_NormalisesDate(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	in := time.Date(2025, 6, 1, 13, 0, 0, 123456789, zone)

	e := NewEvent("ev-1", EventCreate{Title: "T", Description: "D", Date: in, Location: "L", Organizer: "O"})

	assert.Equal(t, time.UTC, e.Date.Location())
	assert.Equal(t, time.Date(2025, 6, 1, 18, 0, 0, 123000000, time.UTC), e.Date)
	assert.True(t, e.Date.Equal(in.Truncate(time.Millisecond)))
}

func TestEventUpdate_ApplyNormalisesDate(t *testing.T) {
	in := time.Date(2025, 6, 1, 20, 0, 0, 999999, time.FixedZone("CEST", 2*60*60))
	e := Event{ID: "1"}

	EventUpdate{Date: &in}.Apply(&e)

	assert.Equal(t, time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC), e.Date)
}
