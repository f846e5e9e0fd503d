// Package repository holds the GORM data-access layer. Repositories do not
// cache: every call is a short-lived unit of work against the store, and any
// constraint or connectivity failure comes back as a kinded error, never a
// panic or a partial write.
package repository

import (
	"errors"
	"strings"

	"coursehub/internal/apperr"

	"gorm.io/gorm"
)

// translate maps GORM and SQLite errors onto the shared failure taxonomy.
// The store is the source of truth for uniqueness, so duplicate-key failures
// surface as ordinary conflicts.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound("record not found", err)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return apperr.Conflict("duplicate record", err)
	default:
		return apperr.Store("database error", err)
	}
}

func isNotFound(err error) bool {
	return apperr.IsKind(err, apperr.KindNotFound)
}
