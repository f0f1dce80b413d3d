package db

import (
	"context"

	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// FallbackObserver counts mutations that ran without a unit of work.
type FallbackObserver interface {
	RecordUnitOfWorkFallback(operation string)
}

// OptionalUnit is the result of probing for a unit of work: either an open
// unit or none. Commit and Abort are no-ops when none was opened.
type OptionalUnit struct {
	uow       UnitOfWork
	operation string
	logger    logger.Interface
}

// Attempt tries to open a unit of work. When the store cannot provide one the
// mutation proceeds without isolation; this is logged as a warning.
// The returned context joins the unit when it is active.
func Attempt(ctx context.Context, starter UnitOfWorkStarter, operation string, log logger.Interface, observer FallbackObserver) (context.Context, *OptionalUnit) {
	unit := &OptionalUnit{operation: operation, logger: log}

	if starter == nil {
		unit.fallback(ErrTransactionsUnsupported, observer)
		return ctx, unit
	}

	uow, err := starter.Begin(ctx)
	if err != nil || uow == nil {
		if err == nil {
			err = ErrTransactionsUnsupported
		}
		unit.fallback(err, observer)
		return ctx, unit
	}

	unit.uow = uow
	return uow.Context(ctx), unit
}

func (u *OptionalUnit) fallback(err error, observer FallbackObserver) {
	u.logger.Warnw("continuing without unit of work", "operation", u.operation, "reason", err)
	if observer != nil {
		observer.RecordUnitOfWorkFallback(u.operation)
	}
}

// Active reports whether a unit of work is open
func (u *OptionalUnit) Active() bool {
	return u.uow != nil
}

func (u *OptionalUnit) Commit() error {
	if u.uow == nil {
		return nil
	}
	err := u.uow.Commit()
	u.uow = nil
	return err
}

// Abort rolls the unit back. A failed rollback is logged and swallowed so the
// caller can still surface the error that caused the abort.
func (u *OptionalUnit) Abort() {
	if u.uow == nil {
		return
	}
	if err := u.uow.Rollback(); err != nil {
		u.logger.Errorw("failed to roll back unit of work", "operation", u.operation, "error", err)
	}
	u.uow = nil
}
