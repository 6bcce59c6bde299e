package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCreateSchema(t *testing.T) {
	schema := EventCreateSchema()

	tests := []struct {
		name        string
		body        string
		wantInvalid bool
		wantReason  string
	}{
		{
			name: "valid",
			body: `{"title":"Sample Event","description":"Event description","date":"2025-03-14T19:30:00Z","location":"Event location","organizer":"Organizer"}`,
		},
		{
			name:        "missing title",
			body:        `{"description":"d","date":"2025-03-14T19:30:00Z","location":"l","organizer":"o"}`,
			wantInvalid: true,
			wantReason:  "title is required",
		},
		{
			name:        "blank title",
			body:        `{"title":"   ","description":"d","date":"2025-03-14T19:30:00Z","location":"l","organizer":"o"}`,
			wantInvalid: true,
			wantReason:  "title must not be blank",
		},
		{
			name:        "missing date",
			body:        `{"title":"t","description":"d","location":"l","organizer":"o"}`,
			wantInvalid: true,
			wantReason:  "date is required",
		},
		{
			name:        "zero date",
			body:        `{"title":"t","description":"d","date":"0001-01-01T00:00:00Z","location":"l","organizer":"o"}`,
			wantInvalid: true,
			wantReason:  "date is required",
		},
		{
			name:        "blank description location organizer",
			body:        `{"title":"t","description":"  ","date":"2025-03-14T19:30:00Z","location":" ","organizer":" "}`,
			wantInvalid: true,
			wantReason:  "description must not be blank",
		},
		{
			name:        "blank organizer",
			body:        `{"title":"t","description":"d","date":"2025-03-14T19:30:00Z","location":"l","organizer":"\t"}`,
			wantInvalid: true,
			wantReason:  "organizer must not be blank",
		},
		{
			name:        "trailing data",
			body:        `{"title":"t","description":"d","date":"2025-03-14T19:30:00Z","location":"l","organizer":"o"}garbage`,
			wantInvalid: true,
			wantReason:  "unexpected data after JSON body",
		},
		{
			name:        "unknown field",
			body:        `{"title":"t","description":"d","date":"2025-03-14T19:30:00Z","location":"l","organizer":"o","id":"x"}`,
			wantInvalid: true,
			wantReason:  "unknown field",
		},
		{
			name:        "bad date",
			body:        `{"title":"t","description":"d","date":"tomorrow","location":"l","organizer":"o"}`,
			wantInvalid: true,
		},
		{
			name:        "not json",
			body:        `title=t`,
			wantInvalid: true,
		},
		{
			name:        "empty",
			body:        ``,
			wantInvalid: true,
			wantReason:  "body is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Validate([]byte(tt.body))
			if !tt.wantInvalid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, IsInvalid(err))
			if tt.wantReason != "" {
				assert.Contains(t, err.Error(), tt.wantReason)
			}
		})
	}
}

func TestEventUpdateSchema(t *testing.T) {
	schema := EventUpdateSchema()

	tests := []struct {
		name        string
		body        string
		wantInvalid bool
		wantReason  string
	}{
		{name: "title only", body: `{"title":"Updated Event"}`},
		{name: "date only", body: `{"date":"2025-04-01T10:00:00Z"}`},
		{name: "empty object", body: `{}`, wantInvalid: true, wantReason: "at least one field is required"},
		{name: "blank title", body: `{"title":""}`, wantInvalid: true, wantReason: "title must not be blank"},
		{name: "id not accepted", body: `{"id":"2"}`, wantInvalid: true, wantReason: "unknown field"},
		{name: "empty description", body: `{"description":""}`, wantInvalid: true, wantReason: "description must not be blank"},
		{name: "blank location", body: `{"location":"  "}`, wantInvalid: true, wantReason: "location must not be blank"},
		{name: "blank organizer", body: `{"organizer":" "}`, wantInvalid: true, wantReason: "organizer must not be blank"},
		{name: "zero date", body: `{"date":"0001-01-01T00:00:00Z"}`, wantInvalid: true, wantReason: "date must be set"},
		{name: "second object", body: `{"title":"a"}{"title":"b"}`, wantInvalid: true, wantReason: "unexpected data after JSON body"},
		{name: "trailing whitespace", body: "{\"title\":\"a\"}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Validate([]byte(tt.body))
			if !tt.wantInvalid {
				require.NoError(t, err)
				return
			}
			require.True(t, IsInvalid(err))
			assert.Contains(t, err.Error(), tt.wantReason)
		})
	}
}

func TestStructSchema_FaultIsNotInvalid(t *testing.T) {
	// validator refuses non-struct targets; that is an engine fault, not a rejection
	schema := NewStructSchema[map[string]any]()
	err := schema.Validate([]byte(`{"a":1}`))
	require.Error(t, err)
	require.False(t, IsInvalid(err))
}
