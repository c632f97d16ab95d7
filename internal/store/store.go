// Package store is the persistence layer of the museum API. Every method
// runs a single statement or a single transaction; race-prone
// check-then-act sequences are replaced by keys and conflict clauses.
package store

import (
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
