package museum

import (
	"context"
	"fmt"

	"github.com/Jasch-M/asyncmuseum/internal/models"
)

type EventService struct {
	DB  CatalogDBLayer[models.Event]
	now clock
}

func NewEventService(db CatalogDBLayer[models.Event]) *EventService {
	return &EventService{DB: db, now: utcNow}
}

func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.DB.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.DB.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", id, err)
	}
	return event, nil
}

func (s *EventService) CreateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	if event.Date.IsZero() {
		return nil, ErrInvalidDate
	}

	now := s.now()
	event.ID = 0
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.DB.Create(ctx, &event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id int64, event models.Event) (*models.Event, error) {
	if event.Date.IsZero() {
		return nil, ErrInvalidDate
	}

	event.ID = id
	event.UpdatedAt = s.now()

	if err := s.DB.Update(ctx, &event); err != nil {
		return nil, fmt.Errorf("failed to update event %d: %w", id, err)
	}
	return &event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.DB.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	return nil
}
