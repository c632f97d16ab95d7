package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/Jasch-M/asyncmuseum/internal/models"
)

// VisitorInfoStore manages the single visitor_info row. The row's key is
// pinned to models.VisitorInfoID, so concurrent first writers collapse
// onto one row through the primary key instead of racing an existence
// check.
type VisitorInfoStore struct {
	db bun.IDB
}

func NewVisitorInfoStore(db bun.IDB) *VisitorInfoStore {
	return &VisitorInfoStore{db: db}
}

// GetOrCreate returns the stored row, persisting defaults first when the
// table is empty.
func (s *VisitorInfoStore) GetOrCreate(ctx context.Context, defaults models.VisitorInfo) (*models.VisitorInfoRow, bool, error) {
	var (
		row     models.VisitorInfoRow
		created bool
	)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := selectVisitorInfo(ctx, tx, &row)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		seed := defaults.Row()
		seed.UpdatedAt = time.Now().UTC()
		res, err := tx.NewInsert().
			Model(seed).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("insert default visitor info: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			created = true
		}
		return selectVisitorInfo(ctx, tx, &row)
	})
	if err != nil {
		return nil, false, err
	}
	return &row, created, nil
}

// Put stores info as the visitor information, inserting the row when it
// does not exist yet and replacing every column otherwise. The returned
// row is read back from the database.
func (s *VisitorInfoStore) Put(ctx context.Context, info models.VisitorInfo) (*models.VisitorInfoRow, error) {
	row := info.Row()
	row.UpdatedAt = time.Now().UTC()

	_, err := s.db.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("hours = EXCLUDED.hours").
		Set("adult_admission = EXCLUDED.adult_admission").
		Set("child_admission = EXCLUDED.child_admission").
		Set("senior_admission = EXCLUDED.senior_admission").
		Set("location = EXCLUDED.location").
		Set("phone = EXCLUDED.phone").
		Set("email = EXCLUDED.email").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("upsert visitor info: %w", err)
	}
	return row, nil
}

func selectVisitorInfo(ctx context.Context, db bun.IDB, row *models.VisitorInfoRow) error {
	return db.NewSelect().
		Model(row).
		Where("id = ?", models.VisitorInfoID).
		Limit(1).
		Scan(ctx)
}
