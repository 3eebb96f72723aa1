package cash

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
)

// Controller is the functionality needed by other extensions to settle
// token amounts.
type Controller interface {
	// Balance returns the amount of token held by the owner. An owner
	// that never held the token has a zero balance.
	Balance(db weave.ReadOnlyKVStore, token, owner weave.Address) (weave.Amount, error)
	// Mint credits a positive amount of token to the owner.
	Mint(db weave.KVStore, token, to weave.Address, amount weave.Amount) error
	// Burn debits a positive amount of token from the owner.
	Burn(db weave.KVStore, token, from weave.Address, amount weave.Amount) error
	// MoveCoins transfers a positive amount of token between owners.
	MoveCoins(db weave.KVStore, token, src, dest weave.Address, amount weave.Amount) error
}

// BaseController is a simple implementation of the Controller.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller storing balances in the default bucket.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

// Balance returns the amount of token held by the owner.
func (c BaseController) Balance(db weave.ReadOnlyKVStore, token, owner weave.Address) (weave.Amount, error) {
	bal, err := c.bucket.GetOrCreate(db, token, owner)
	if err != nil {
		return "", err
	}
	return weave.ParseAmount(string(bal.Amount))
}

// Mint attempts to add the given amount of token to the destination
// address. Fails if it overflows the balance.
func (c BaseController) Mint(db weave.KVStore, token, to weave.Address, amount weave.Amount) error {
	if err := validateTransfer(token, amount); err != nil {
		return err
	}
	bal, err := c.bucket.GetOrCreate(db, token, to)
	if err != nil {
		return err
	}
	sum, err := bal.Amount.Add(amount)
	if err != nil {
		return err
	}
	bal.Amount = sum
	return c.bucket.Save(db, bal)
}

// Burn removes the given amount of token from the address. Fails if the
// balance is too low.
func (c BaseController) Burn(db weave.KVStore, token, from weave.Address, amount weave.Amount) error {
	if err := validateTransfer(token, amount); err != nil {
		return err
	}
	bal, err := c.bucket.GetOrCreate(db, token, from)
	if err != nil {
		return err
	}
	rest, err := bal.Amount.Sub(amount)
	if err != nil {
		return err
	}
	if rest.Sign() < 0 {
		return errors.Wrapf(ErrInsufficientFunds, "balance %s, burn %s", bal.Amount, amount)
	}
	bal.Amount = rest
	return c.bucket.Save(db, bal)
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't have sufficient coins, it fails.
func (c BaseController) MoveCoins(db weave.KVStore, token, src, dest weave.Address, amount weave.Amount) error {
	if err := c.Burn(db, token, src, amount); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := c.Mint(db, token, dest, amount); err != nil {
		return errors.Wrap(err, "recipient")
	}
	return nil
}

func validateTransfer(token weave.Address, amount weave.Amount) error {
	if err := token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non positive amount %s", amount)
	}
	return nil
}
