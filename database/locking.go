package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LockForUpdate applies a FOR UPDATE row lock where the dialect supports it.
// SQLite has no row locks and serializes writers on the whole file, so the
// clause is skipped there; every other dialect gets the real lock.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
