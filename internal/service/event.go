package service

import (
	"context"
	"fmt"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/dev-kelz/Event-Management-System/internal/service/ports"
)

// EventService is a thin layer over the backend's event CRUD. Client-side
// validation here only covers what can be caught before a network call;
// everything else is the backend's call.
type EventService struct {
	api ports.EventAPI
}

func NewEventService(api ports.EventAPI) *EventService {
	return &EventService{api: api}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	return s.api.CreateEvent(ctx, input)
}

func (s *EventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	return s.api.Event(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.api.Events(ctx)
}

func (s *EventService) Update(ctx context.Context, id int64, input domain.UpdateEventInput) (*domain.Event, error) {
	return s.api.UpdateEvent(ctx, id, input)
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteEvent(ctx, id)
}
