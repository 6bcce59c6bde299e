package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventsapi/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	ids            domain.IDGenerator
	contextTimeout time.Duration
}

// NewEventService returns the persistence service backed by eventRepo.
// New events get their id from ids; every repository call is bounded by timeout.
func NewEventService(eventRepo domain.EventRepository, ids domain.IDGenerator, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		ids:            ids,
		contextTimeout: timeout,
	}
}

func (s *eventService) Create(ctx context.Context, in domain.EventCreate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	id := s.ids.NewID()
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", domain.ErrNotCreated)
	}
	event := domain.NewEvent(id, in)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotCreated, err)
	}
	return event, nil
}

// GetByID fails with ErrNotFound only when no event has the id. Store
// failures are ErrInternal.
func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: get event: %w", domain.ErrInternal, err)
	}
	return event, nil
}

// GetAll fails with ErrNotFound when the store holds no events.
func (s *eventService) GetAll(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: list events: %w", domain.ErrNotFound, err)
	}
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}
	return events, nil
}

func (s *eventService) Update(ctx context.Context, id string, update domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	updated, err := s.eventRepo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotUpdated, err)
	}
	return updated, nil
}

func (s *eventService) Delete(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	deleted, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotDeleted, err)
	}
	return deleted, nil
}
