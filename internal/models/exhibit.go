package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Exhibit struct {
	bun.BaseModel `bun:"table:exhibits,alias:ex"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Title       string    `bun:"title,notnull" json:"title" validate:"required,max=255"`
	Description string    `bun:"description,notnull" json:"description" validate:"required"`
	Image       string    `bun:"image,notnull" json:"image" validate:"required,max=255"`
	Category    string    `bun:"category,notnull" json:"category" validate:"required,max=50"`
	Featured    bool      `bun:"featured,notnull" json:"featured"`
	Details     *string   `bun:"details" json:"details,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"-"`
}
