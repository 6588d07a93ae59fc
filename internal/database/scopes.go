package database

import "gorm.io/gorm"

// OwnedBy restricts a query to rows owned by the given caller. Every
// read, update and delete on an owned resource goes through this scope so
// the owner predicate can never be forgotten; a lookup of someone else's
// row simply comes back as record-not-found.
func OwnedBy(email string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner = ?", email)
	}
}
