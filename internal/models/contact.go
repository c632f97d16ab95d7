package models

import (
	"time"

	"github.com/uptrace/bun"
)

type ContactSubmission struct {
	bun.BaseModel `bun:"table:contact_submissions,alias:cs"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Email       string    `bun:"email,notnull" json:"email"`
	Subject     *string   `bun:"subject" json:"subject,omitempty"`
	Message     string    `bun:"message,notnull" json:"message"`
	SubmittedAt time.Time `bun:"submitted_at,notnull" json:"submittedAt"`
	IsRead      bool      `bun:"is_read,notnull,default:false" json:"isRead"`
}

type ContactFormRequest struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Email   string  `json:"email" validate:"required,max=255"`
	Subject *string `json:"subject,omitempty" validate:"omitempty,max=255"`
	Message string  `json:"message" validate:"required"`
}
