// Package museum holds the resource services behind the HTTP handlers:
// input normalisation, server-side timestamps, defaults and the mapping of
// storage errors onto the API's error classes.
package museum

import (
	"context"
	"time"

	"github.com/Jasch-M/asyncmuseum/internal/models"
	"github.com/Jasch-M/asyncmuseum/internal/store"
)

var (
	ErrNotFound    = store.ErrNotFound
	ErrInvalidDate = models.ErrInvalidDate

	ErrInvalidAmount = models.ErrInvalidAmount
)

// CatalogDBLayer is the storage contract of exhibits and events.
type CatalogDBLayer[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id int64) error
}

type clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }
