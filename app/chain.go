package app

import (
	"reflect"

	weave "github.com/iov-one/yieldweave"
)

// Decorators is an ordered stack of decorators waiting for the final
// handler. The first decorator is the outermost one and runs first.
type Decorators []weave.Decorator

// ChainDecorators builds a decorator stack. Nil decorators are skipped, so
// optional layers can be passed unconditionally.
//
//   app.ChainDecorators(
//     utils.NewLogging(),
//     utils.NewRecovery(),
//     sigs.NewDecorator(),
//     utils.NewSavepoint().OnDeliver(),
//   ).WithHandler(router)
func ChainDecorators(chain ...weave.Decorator) Decorators {
	return Decorators(nil).Chain(chain...)
}

// Chain returns a new stack with given decorators appended below the
// existing ones. The receiver is not modified.
func (d Decorators) Chain(chain ...weave.Decorator) Decorators {
	res := make(Decorators, 0, len(d)+len(chain))
	res = append(res, d...)
	for _, dec := range chain {
		if !isNilDecorator(dec) {
			res = append(res, dec)
		}
	}
	return res
}

func isNilDecorator(d weave.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler closes the stack with the final handler, usually a Router.
func (d Decorators) WithHandler(h weave.Handler) weave.Handler {
	for i := len(d) - 1; i >= 0; i-- {
		h = step{dec: d[i], next: h}
	}
	return h
}

// step runs a single decorator around the rest of the stack.
type step struct {
	dec  weave.Decorator
	next weave.Handler
}

var _ weave.Handler = step{}

func (s step) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	return s.dec.Check(ctx, db, tx, s.next)
}

func (s step) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	return s.dec.Deliver(ctx, db, tx, s.next)
}
