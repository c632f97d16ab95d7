package store

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/Jasch-M/asyncmuseum/internal/models"
)

type UserStore struct {
	db bun.IDB
}

func NewUserStore(db bun.IDB) *UserStore {
	return &UserStore{db: db}
}

// UpsertLogin records a sign-in for the (email, provider) identity. A new
// identity becomes a new row; a known one gets its last_login bumped and,
// when displayName is supplied, its display name replaced. The stored row
// is returned.
func (s *UserStore) UpsertLogin(ctx context.Context, email, providerID, providerUserID string, displayName *string, at time.Time) (*models.User, error) {
	user := &models.User{
		Email:          email,
		DisplayName:    displayName,
		ProviderID:     providerID,
		ProviderUserID: providerUserID,
		CreatedAt:      at,
		LastLogin:      at,
	}

	q := s.db.NewInsert().
		Model(user).
		On("CONFLICT (email, provider_id) DO UPDATE").
		Set("last_login = EXCLUDED.last_login")
	if displayName != nil {
		q = q.Set("display_name = EXCLUDED.display_name")
	}

	if _, err := q.Returning("*").Exec(ctx); err != nil {
		return nil, fmt.Errorf("upsert user %s/%s: %w", providerID, email, err)
	}
	return user, nil
}
