package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type stubUnit struct {
	committed   bool
	rolledBack  bool
	rollbackErr error
}

func (s *stubUnit) Context(ctx context.Context) context.Context { return ctx }
func (s *stubUnit) Commit() error                               { s.committed = true; return nil }
func (s *stubUnit) Rollback() error                             { s.rolledBack = true; return s.rollbackErr }

type stubStarter struct {
	unit *stubUnit
	err  error
}

func (p stubStarter) Begin(context.Context) (UnitOfWork, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.unit, nil
}

type countingObserver map[string]int

func (o countingObserver) RecordUnitOfWorkFallback(operation string) { o[operation]++ }

func TestAttemptFallsBackWhenUnsupported(t *testing.T) {
	observer := countingObserver{}
	_, unit := Attempt(context.Background(), stubStarter{err: ErrTransactionsUnsupported}, "collection_add", logger.NewNopLogger(), observer)

	assert.False(t, unit.Active())
	assert.NoError(t, unit.Commit())
	unit.Abort()
	assert.Equal(t, 1, observer["collection_add"])
}

func TestAttemptNilStarter(t *testing.T) {
	_, unit := Attempt(context.Background(), nil, "op", logger.NewNopLogger(), nil)
	assert.False(t, unit.Active())
}

func TestOptionalUnitCommit(t *testing.T) {
	su := &stubUnit{}
	_, unit := Attempt(context.Background(), stubStarter{unit: su}, "op", logger.NewNopLogger(), nil)

	assert.True(t, unit.Active())
	assert.NoError(t, unit.Commit())
	assert.True(t, su.committed)

	// abort after commit is a no-op
	unit.Abort()
	assert.False(t, su.rolledBack)
}

func TestOptionalUnitAbortSwallowsRollbackFailure(t *testing.T) {
	su := &stubUnit{rollbackErr: errors.New("connection reset")}
	_, unit := Attempt(context.Background(), stubStarter{unit: su}, "op", logger.NewNopLogger(), nil)

	unit.Abort()
	assert.True(t, su.rolledBack)
	assert.False(t, unit.Active())
}
