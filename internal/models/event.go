package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Event struct {
	bun.BaseModel `bun:"table:events,alias:ev"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Title       string    `bun:"title,notnull" json:"title" validate:"required,max=255"`
	Date        Date      `bun:"date,type:date,notnull" json:"date"`
	Description string    `bun:"description,notnull" json:"description" validate:"required"`
	Location    *string   `bun:"location" json:"location,omitempty" validate:"omitempty,max=255"`
	Price       *string   `bun:"price" json:"price,omitempty" validate:"omitempty,max=50"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"-"`
}
