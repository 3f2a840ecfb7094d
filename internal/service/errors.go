package service

import (
	"context"
	"errors"

	"appremises/internal/apierror"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// mapFindErr converts a repository lookup error into NotFound when the row is
// absent, passing everything else through as an internal error.
func mapFindErr(err error, mensaje string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(mensaje)
	}
	return err
}

// mapCreateErr converts a unique-index violation (the DB is the authority on
// natural-key uniqueness) into the DuplicateKey message.
func mapCreateErr(err error, mensajeDuplicado string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.Duplicate(mensajeDuplicado)
	}
	return err
}
