package usecase

import (
	"context"

	"eventsapi/internal/domain"
)

// eventUseCase orchestrates one CRUD operation per call. It holds no mutable
// state, so a single instance serves concurrent requests.
type eventUseCase struct {
	service domain.EventService
}

func NewEventUseCase(service domain.EventService) domain.EventUseCase {
	return &eventUseCase{service: service}
}

// CreateNewEvent stores a new event. Failures come back as domain.ErrNotCreated.
func (uc *eventUseCase) CreateNewEvent(ctx context.Context, in domain.EventCreate) (*domain.Event, error) {
	return uc.service.Create(ctx, in)
}

// GetAllEvents returns events in the order the service yields them.
func (uc *eventUseCase) GetAllEvents(ctx context.Context) ([]*domain.Event, error) {
	return uc.service.GetAll(ctx)
}

func (uc *eventUseCase) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	return uc.service.GetByID(ctx, id)
}

// UpdateEvent merges update into the stored event; unset fields keep their value.
func (uc *eventUseCase) UpdateEvent(ctx context.Context, id string, update domain.EventUpdate) (*domain.Event, error) {
	return uc.service.Update(ctx, id, update)
}

// DeleteEvent removes the event and returns its last stored state.
func (uc *eventUseCase) DeleteEvent(ctx context.Context, id string) (*domain.Event, error) {
	return uc.service.Delete(ctx, id)
}
