package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate adds a row lock so concurrent state changes on the same
// item or request serialize inside their transactions. SQLite (used by the
// test suites) rejects FOR UPDATE; its single-writer model already
// serializes writes.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
