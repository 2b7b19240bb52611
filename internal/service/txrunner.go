package service

import (
	"context"

	"gorm.io/gorm"
)

// TxRunner runs a function inside one database transaction. Services depend
// on it instead of a concrete DB handle so unit tests can run the function
// directly against mocked repositories.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// GormTxRunner is the production TxRunner over a gorm handle
type GormTxRunner struct {
	DB *gorm.DB
}

// NewTxRunner creates a TxRunner bound to the given database handle
func NewTxRunner(db *gorm.DB) *GormTxRunner {
	return &GormTxRunner{DB: db}
}

// InTx runs fn in a transaction carrying the request context
func (r *GormTxRunner) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.DB.WithContext(ctx).Transaction(fn)
}
