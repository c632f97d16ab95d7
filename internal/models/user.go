package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User is keyed by (email, provider_id): the same address signed in through
// two providers is two users.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	Email          string    `bun:"email,notnull,unique:users_email_provider_key" json:"email"`
	DisplayName    *string   `bun:"display_name" json:"displayName,omitempty"`
	ProviderID     string    `bun:"provider_id,notnull,unique:users_email_provider_key" json:"providerId"`
	ProviderUserID string    `bun:"provider_user_id,notnull" json:"providerUserId"`
	CreatedAt      time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
	LastLogin      time.Time `bun:"last_login,nullzero,notnull,default:current_timestamp" json:"-"`
}
