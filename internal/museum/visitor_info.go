package museum

import (
	"context"
	"fmt"

	"github.com/Jasch-M/asyncmuseum/internal/logger"
	"github.com/Jasch-M/asyncmuseum/internal/models"
)

type VisitorInfoDBLayer interface {
	GetOrCreate(ctx context.Context, defaults models.VisitorInfo) (*models.VisitorInfoRow, bool, error)
	Put(ctx context.Context, info models.VisitorInfo) (*models.VisitorInfoRow, error)
}

type VisitorInfoService struct {
	DB     VisitorInfoDBLayer
	Logger *logger.Logger
}

func NewVisitorInfoService(db VisitorInfoDBLayer, log *logger.Logger) *VisitorInfoService {
	return &VisitorInfoService{DB: db, Logger: log}
}

// GetVisitorInfo returns the stored visitor information. On an empty store
// the defaults are persisted first, so every later read sees the same row.
func (s *VisitorInfoService) GetVisitorInfo(ctx context.Context) (models.VisitorInfo, error) {
	row, created, err := s.DB.GetOrCreate(ctx, models.DefaultVisitorInfo())
	if err != nil {
		return models.VisitorInfo{}, fmt.Errorf("failed to load visitor info: %w", err)
	}
	if created {
		s.Logger.LogDatabase("INSERT", "visitor_info", "stored default visitor info")
	}
	return row.VisitorInfo(), nil
}

// PutVisitorInfo replaces the visitor information and returns the row as
// stored.
func (s *VisitorInfoService) PutVisitorInfo(ctx context.Context, info models.VisitorInfo) (models.VisitorInfo, error) {
	if err := info.Admission.Validate(); err != nil {
		return models.VisitorInfo{}, err
	}
	row, err := s.DB.Put(ctx, info)
	if err != nil {
		return models.VisitorInfo{}, fmt.Errorf("failed to store visitor info: %w", err)
	}
	return row.VisitorInfo(), nil
}
