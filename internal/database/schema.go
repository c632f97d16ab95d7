package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/Jasch-M/asyncmuseum/internal/models"
)

// Models lists every table of the museum schema.
func Models() []interface{} {
	return []interface{}{
		(*models.Exhibit)(nil),
		(*models.Event)(nil),
		(*models.VisitorInfoRow)(nil),
		(*models.User)(nil),
		(*models.ContactSubmission)(nil),
	}
}

// CreateSchema builds the schema straight from the bun models. It backs the
// SQLite driver and tests; Postgres goes through the versioned migrations.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	for _, m := range Models() {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", m, err)
		}
	}

	_, err := db.NewCreateIndex().
		Model((*models.ContactSubmission)(nil)).
		Index("contact_submissions_submitted_at_idx").
		IfNotExists().
		Column("submitted_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create contact submissions index: %w", err)
	}
	return nil
}
