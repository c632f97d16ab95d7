package museum

import (
	"context"
	"fmt"

	"github.com/Jasch-M/asyncmuseum/internal/logger"
	"github.com/Jasch-M/asyncmuseum/internal/models"
)

type ContactDBLayer interface {
	Create(ctx context.Context, submission *models.ContactSubmission) error
	ListNewestFirst(ctx context.Context) ([]models.ContactSubmission, error)
	MarkRead(ctx context.Context, id int64) error
}

type ContactPublisher interface {
	PublishContactSubmitted(ctx context.Context, submission models.ContactSubmission) error
}

// PublishObserver is told the outcome of every publish attempt.
type PublishObserver func(err error)

type ContactService struct {
	DB        ContactDBLayer
	Publisher ContactPublisher
	Logger    *logger.Logger
	OnPublish PublishObserver
	now       clock
}

func NewContactService(db ContactDBLayer, publisher ContactPublisher, log *logger.Logger) *ContactService {
	return &ContactService{DB: db, Publisher: publisher, Logger: log, now: utcNow}
}

// Submit stores a new unread submission. The notification that follows is
// best effort: a publisher failure is logged and the submission stands.
func (s *ContactService) Submit(ctx context.Context, req models.ContactFormRequest) (*models.ContactSubmission, error) {
	submission := &models.ContactSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		SubmittedAt: s.now(),
		IsRead:      false,
	}

	if err := s.DB.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to store contact submission: %w", err)
	}

	err := s.Publisher.PublishContactSubmitted(ctx, *submission)
	if err != nil {
		s.Logger.Warn("KAFKA", fmt.Sprintf("contact submission %d not published: %v", submission.ID, err))
	}
	if s.OnPublish != nil {
		s.OnPublish(err)
	}
	return submission, nil
}

func (s *ContactService) ListSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	submissions, err := s.DB.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	return submissions, nil
}

func (s *ContactService) MarkRead(ctx context.Context, id int64) error {
	if err := s.DB.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("failed to mark contact submission %d read: %w", id, err)
	}
	return nil
}
