package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/Jasch-M/asyncmuseum/internal/models"
)

// ContactStore is append-only apart from the read flag.
type ContactStore struct {
	db bun.IDB
}

func NewContactStore(db bun.IDB) *ContactStore {
	return &ContactStore{db: db}
}

func (s *ContactStore) Create(ctx context.Context, submission *models.ContactSubmission) error {
	if _, err := s.db.NewInsert().Model(submission).Exec(ctx); err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

// ListNewestFirst orders by submission time, then id, both descending.
func (s *ContactStore) ListNewestFirst(ctx context.Context) ([]models.ContactSubmission, error) {
	submissions := make([]models.ContactSubmission, 0)
	err := s.db.NewSelect().
		Model(&submissions).
		OrderExpr("submitted_at DESC, id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	return submissions, nil
}

// MarkRead sets is_read and touches nothing else.
func (s *ContactStore) MarkRead(ctx context.Context, id int64) error {
	res, err := s.db.NewUpdate().
		Model((*models.ContactSubmission)(nil)).
		Set("is_read = ?", true).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark contact submission %d read: %w", id, err)
	}
	return expectOne(res)
}
