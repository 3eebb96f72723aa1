package x

import (
	weave "github.com/iov-one/yieldweave"
)

// Authenticator extracts from the context the conditions that authorized
// the current transaction. Extensions receive it in their RegisterRoutes
// function so that the signature scheme is chosen by the application.
type Authenticator interface {
	// GetConditions returns every condition fulfilled in this context.
	GetConditions(weave.Context) []weave.Condition
	// HasAddress returns true if any fulfilled condition resolves to the
	// given address.
	HasAddress(weave.Context, weave.Address) bool
}

// MultiAuth is an Authenticator that combines the result of many
// authenticators. The order of conditions follows the order of the
// authenticators.
type MultiAuth []Authenticator

var _ Authenticator = MultiAuth(nil)

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth(impls)
}

func (m MultiAuth) GetConditions(ctx weave.Context) []weave.Condition {
	var res []weave.Condition
	for _, impl := range m {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

func (m MultiAuth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	for _, impl := range m {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first fulfilled condition or nil.
func MainSigner(ctx weave.Context, auth Authenticator) weave.Condition {
	if signers := auth.GetConditions(ctx); len(signers) != 0 {
		return signers[0]
	}
	return nil
}

// ConditionsHaveAddress returns true if any of the conditions resolves to
// the given address. Authenticator implementations use it for HasAddress.
func ConditionsHaveAddress(conds []weave.Condition, addr weave.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
