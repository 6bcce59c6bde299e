package domain

import (
	"context"
	"time"
)

// Event is a scheduled occurrence stored by the persistence layer.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Organizer   string    `json:"organizer"`
}

// EventCreate is the input for creating an event. The id is assigned on create.
// swagger:model EventCreate
type EventCreate struct {
	Title       string    `json:"title" validate:"required,notblank,max=200"`
	Description string    `json:"description" validate:"required,notblank"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required,notblank"`
	Organizer   string    `json:"organizer" validate:"required,notblank"`
}

// EventUpdate carries the fields to merge into an existing event.
// Nil fields keep their stored value.
// swagger:model EventUpdate
type EventUpdate struct {
	Title       *string    `json:"title,omitempty" validate:"omitnil,notblank,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitnil,notblank"`
	Date        *time.Time `json:"date,omitempty"`
	Location    *string    `json:"location,omitempty" validate:"omitnil,notblank"`
	Organizer   *string    `json:"organizer,omitempty" validate:"omitnil,notblank"`
}

// StoredTime returns t as the stores keep it: UTC at millisecond precision.
func StoredTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// NewEvent returns an Event built from the create input and the assigned id.
func NewEvent(id string, in EventCreate) *Event {
	return &Event{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Date:        StoredTime(in.Date),
		Location:    in.Location,
		Organizer:   in.Organizer,
	}
}

// IsEmpty reports whether the update sets no field at all.
func (u EventUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Date == nil && u.Location == nil && u.Organizer == nil
}

// Apply merges the set fields of u into e.
func (u EventUpdate) Apply(e *Event) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Date != nil {
		e.Date = StoredTime(*u.Date)
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	if u.Organizer != nil {
		e.Organizer = *u.Organizer
	}
}

// EventRepository defines the interface for event storage.
// Implementations return ErrNotFound when no record has the given id.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id string, update EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) (*Event, error)
	Ping(ctx context.Context) error
}

// EventService is the persistence service the use case delegates to.
// Each method fails with its own error kind: ErrNotCreated, ErrNotFound,
// ErrNotUpdated or ErrNotDeleted.
type EventService interface {
	Create(ctx context.Context, in EventCreate) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	GetAll(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id string, update EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) (*Event, error)
}

// EventUseCase exposes the event CRUD operations to the delivery layer.
type EventUseCase interface {
	CreateNewEvent(ctx context.Context, in EventCreate) (*Event, error)
	GetAllEvents(ctx context.Context) ([]*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	UpdateEvent(ctx context.Context, id string, update EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id string) (*Event, error)
}

// IDGenerator assigns identifiers to new events.
type IDGenerator interface {
	NewID() string
}
