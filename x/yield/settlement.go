package yield

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/x"
)

// TokenLedger is the external asset ledger the yield is settled with.
// cash.Controller implements it.
type TokenLedger interface {
	Mint(db weave.KVStore, token, to weave.Address, amount weave.Amount) error
	Burn(db weave.KVStore, token, from weave.Address, amount weave.Amount) error
	Balance(db weave.ReadOnlyKVStore, token, owner weave.Address) (weave.Amount, error)
}

// SettlementClient issues mint, burn and balance requests against the
// ledger. Mint and burn require the signature of the authorizer.
//
// Every call is made once. A ledger failure is returned to the caller and
// aborts the whole operation.
type SettlementClient struct {
	auth   x.Authenticator
	ledger TokenLedger
}

// NewSettlementClient returns a client settling with given ledger.
func NewSettlementClient(auth x.Authenticator, ledger TokenLedger) SettlementClient {
	return SettlementClient{auth: auth, ledger: ledger}
}

// Mint credits amount of token to the owner.
func (c SettlementClient) Mint(ctx weave.Context, db weave.KVStore, token, to weave.Address, amount weave.Amount, authorizer weave.Address) error {
	if !c.auth.HasAddress(ctx, authorizer) {
		return errors.Wrap(errors.ErrUnauthorized, "mint authorization")
	}
	if err := c.ledger.Mint(db, token, to, amount); err != nil {
		return errors.Wrap(err, "mint")
	}
	return nil
}

// Burn debits amount of token from the owner.
func (c SettlementClient) Burn(ctx weave.Context, db weave.KVStore, token, from weave.Address, amount weave.Amount, authorizer weave.Address) error {
	if !c.auth.HasAddress(ctx, authorizer) {
		return errors.Wrap(errors.ErrUnauthorized, "burn authorization")
	}
	if err := c.ledger.Burn(db, token, from, amount); err != nil {
		return errors.Wrap(err, "burn")
	}
	return nil
}

// Balance returns the owner's balance of token.
func (c SettlementClient) Balance(db weave.ReadOnlyKVStore, token, who weave.Address) (weave.Amount, error) {
	bal, err := c.ledger.Balance(db, token, who)
	if err != nil {
		return "", errors.Wrap(err, "balance")
	}
	return bal, nil
}
