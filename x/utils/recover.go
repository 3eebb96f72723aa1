package utils

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
)

// Recovery converts a panic raised anywhere below it into an ErrPanic error,
// so that a broken handler fails a single transaction instead of the node.
type Recovery struct{}

var _ weave.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (_ *weave.CheckResult, err error) {
	defer recoverAndLog(ctx, &err)
	return next.Check(ctx, db, tx)
}

func (Recovery) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (_ *weave.DeliverResult, err error) {
	defer recoverAndLog(ctx, &err)
	return next.Deliver(ctx, db, tx)
}

// recoverAndLog must be deferred directly for recover to stop the panic.
func recoverAndLog(ctx weave.Context, err *error) {
	if r := recover(); r != nil {
		*err = errors.Wrapf(errors.ErrPanic, "%v", r)
		weave.GetLogger(ctx).Error("recovered from panic", "err", *err)
	}
}
