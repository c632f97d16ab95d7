package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
)

// Repository is the CRUD mapping shared by single-table resources keyed by
// an integer "id" column.
type Repository[T any] struct {
	db      bun.IDB
	orderBy string
}

func NewRepository[T any](db bun.IDB, orderBy string) *Repository[T] {
	return &Repository[T]{db: db, orderBy: orderBy}
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	q := r.db.NewSelect().Model(&items)
	if r.orderBy != "" {
		q = q.OrderExpr(r.orderBy)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list %T: %w", items, err)
	}
	return items, nil
}

func (r *Repository[T]) Get(ctx context.Context, id int64) (*T, error) {
	item := new(T)
	err := r.db.NewSelect().
		Model(item).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

// Create inserts item; the generated key is written back into it.
func (r *Repository[T]) Create(ctx context.Context, item *T) error {
	if _, err := r.db.NewInsert().Model(item).Exec(ctx); err != nil {
		return fmt.Errorf("insert %T: %w", item, err)
	}
	return nil
}

// Update replaces every column of the row identified by item's primary key
// except created_at. It reports ErrNotFound when no row matched.
func (r *Repository[T]) Update(ctx context.Context, item *T) error {
	res, err := r.db.NewUpdate().
		Model(item).
		ExcludeColumn("created_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update %T: %w", item, err)
	}
	return expectOne(res)
}

func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*T)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete %T: %w", (*T)(nil), err)
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
