// Package repository provides PostgreSQL persistence for accounts, talk
// lists, and talks. Every query is scoped to the owning account so that a
// caller can never observe another account's rows.
package repository

import (
	"errors"

	"github.com/atinyakov/TalkTracker/internal/models"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// failure.
const uniqueViolation = "23505"

// mapConstraint translates a unique-constraint violation into
// models.ErrConflict so the race between two concurrent creates with the
// same name surfaces as one well-known error. Other errors pass through.
func mapConstraint(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return models.ErrConflict
	}
	return err
}
