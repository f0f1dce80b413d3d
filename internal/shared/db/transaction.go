// Package db provides the optional unit of work used by multi-step mutations.
package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// txKey is the context key for storing transaction.
type txKey struct{}

// ErrTransactionsUnsupported is returned by Begin when the store cannot open a unit of work.
var ErrTransactionsUnsupported = errors.New("transactions are not supported by the configured store")

// UnitOfWork is an open multi-statement atomic unit. Repositories join it
// through the context returned by Context.
type UnitOfWork interface {
	Context(ctx context.Context) context.Context
	Commit() error
	Rollback() error
}

// UnitOfWorkStarter opens a unit of work when the store supports one.
// A nil UnitOfWork with a non-nil error means callers continue without isolation.
type UnitOfWorkStarter interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

// TransactionManager manages database transactions.
type TransactionManager struct {
	db      *gorm.DB
	enabled bool
}

// NewTransactionManager creates a new TransactionManager. When enabled is
// false every Begin reports ErrTransactionsUnsupported.
func NewTransactionManager(db *gorm.DB, enabled bool) *TransactionManager {
	return &TransactionManager{db: db, enabled: enabled}
}

// Begin starts a transaction or reports why none is available.
func (tm *TransactionManager) Begin(ctx context.Context) (UnitOfWork, error) {
	if !tm.enabled {
		return nil, ErrTransactionsUnsupported
	}
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransactionsUnsupported, tx.Error)
	}
	return &gormUnitOfWork{tx: tx}, nil
}

type gormUnitOfWork struct {
	tx *gorm.DB
}

func (u *gormUnitOfWork) Context(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, u.tx)
}

func (u *gormUnitOfWork) Commit() error {
	return u.tx.Commit().Error
}

func (u *gormUnitOfWork) Rollback() error {
	return u.tx.Rollback().Error
}

// InUnitOfWork reports whether ctx carries an open unit of work.
func InUnitOfWork(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*gorm.DB)
	return ok
}

// GetTxFromContext returns the transaction from context if available.
// Repositories call it so that they join an open unit of work transparently.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
