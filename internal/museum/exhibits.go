package museum

import (
	"context"
	"fmt"

	"github.com/Jasch-M/asyncmuseum/internal/models"
)

type ExhibitService struct {
	DB  CatalogDBLayer[models.Exhibit]
	now clock
}

func NewExhibitService(db CatalogDBLayer[models.Exhibit]) *ExhibitService {
	return &ExhibitService{DB: db, now: utcNow}
}

func (s *ExhibitService) ListExhibits(ctx context.Context) ([]models.Exhibit, error) {
	exhibits, err := s.DB.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exhibits: %w", err)
	}
	return exhibits, nil
}

func (s *ExhibitService) GetExhibit(ctx context.Context, id int64) (*models.Exhibit, error) {
	exhibit, err := s.DB.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("exhibit %d: %w", id, err)
	}
	return exhibit, nil
}

// CreateExhibit stores exhibit under a fresh id; any id sent by the client
// is discarded.
func (s *ExhibitService) CreateExhibit(ctx context.Context, exhibit models.Exhibit) (*models.Exhibit, error) {
	now := s.now()
	exhibit.ID = 0
	exhibit.CreatedAt = now
	exhibit.UpdatedAt = now

	if err := s.DB.Create(ctx, &exhibit); err != nil {
		return nil, fmt.Errorf("failed to create exhibit: %w", err)
	}
	return &exhibit, nil
}

// UpdateExhibit replaces every mutable field of exhibit id.
func (s *ExhibitService) UpdateExhibit(ctx context.Context, id int64, exhibit models.Exhibit) (*models.Exhibit, error) {
	exhibit.ID = id
	exhibit.UpdatedAt = s.now()

	if err := s.DB.Update(ctx, &exhibit); err != nil {
		return nil, fmt.Errorf("failed to update exhibit %d: %w", id, err)
	}
	return &exhibit, nil
}

func (s *ExhibitService) DeleteExhibit(ctx context.Context, id int64) error {
	if err := s.DB.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete exhibit %d: %w", id, err)
	}
	return nil
}
