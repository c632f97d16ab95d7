package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Jasch-M/asyncmuseum/internal/logger"
	"github.com/Jasch-M/asyncmuseum/internal/models"
)

// ContactSubmitted is the payload published for every stored contact form.
type ContactSubmitted struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     *string   `json:"subject,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type Producer struct {
	Writer *kafka.Writer
	log    *logger.Logger
}

func NewProducer(brokers []string, topic string, log *logger.Logger) *Producer {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      brokers,
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
	})
	return &Producer{Writer: writer, log: log}
}

// PublishContactSubmitted streams a contact submission to Kafka, keyed by
// the submission id.
func (p *Producer) PublishContactSubmitted(ctx context.Context, submission models.ContactSubmission) error {
	msg, err := contactMessage(submission)
	if err != nil {
		return err
	}

	if err := p.Writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish contact submission %d: %w", submission.ID, err)
	}
	p.log.LogKafka("PUBLISH", p.Writer.Topic, fmt.Sprintf("contact submission %d", submission.ID))
	return nil
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}

func contactMessage(submission models.ContactSubmission) (kafka.Message, error) {
	value, err := json.Marshal(ContactSubmitted{
		ID:          submission.ID,
		Name:        submission.Name,
		Email:       submission.Email,
		Subject:     submission.Subject,
		Message:     submission.Message,
		SubmittedAt: submission.SubmittedAt,
	})
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(submission.ID, 10)),
		Value: value,
	}, nil
}

// NopPublisher drops every event. It stands in for the producer when Kafka
// is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishContactSubmitted(context.Context, models.ContactSubmission) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
