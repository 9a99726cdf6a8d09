// Package repository provides GORM-backed persistence for the backend.
package repository

import (
	"context"

	"gorm.io/gorm"
)

// UoW provides a transaction boundary for multi-write operations. All
// repositories constructed inside Do share the same transaction session,
// so a failed step rolls back every write of the unit.
type UoW struct {
	db *gorm.DB
}

// NewUoW creates a new UoW over the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a transaction. The tx handle passed to fn must be used
// to construct every repository participating in the unit.
func (u *UoW) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}

// DB exposes the raw handle for read-only queries that need no boundary.
func (u *UoW) DB() *gorm.DB {
	return u.db
}
