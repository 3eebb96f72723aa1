package weavetest

import (
	"context"
	"fmt"

	weave "github.com/iov-one/yieldweave"
)

// Auth is an x.Authenticator that always authenticates the same set of
// conditions, regardless of the context. Signer and Signers may be used
// together; Signer is reported last.
type Auth struct {
	// Signer is a single authenticated condition, for example the ledger
	// administrator.
	Signer weave.Condition

	// Signers are additionally authenticated conditions.
	Signers []weave.Condition
}

func (a *Auth) GetConditions(weave.Context) []weave.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append(a.Signers, a.Signer)
}

func (a *Auth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth is an x.Authenticator that reads the authenticated conditions
// from the context. Use SetConditions to sign a context, so that one
// authenticator instance can serve requests of many users.
type CtxAuth struct {
	// Key under which conditions are stored in the context.
	Key string
}

// SetConditions returns a context signed by given conditions.
func (a *CtxAuth) SetConditions(ctx weave.Context, conds ...weave.Condition) weave.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx weave.Context) []weave.Condition {
	switch val := ctx.Value(a.Key).(type) {
	case nil:
		return nil
	case []weave.Condition:
		return val
	default:
		panic(fmt.Sprintf("instead of []weave.Condition got %T", val))
	}
}

func (a *CtxAuth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []weave.Condition, addr weave.Address) bool {
	for _, c := range conds {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
