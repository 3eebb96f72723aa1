package cash

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use weave.Address, so address in hex, not base64
type GenesisAccount struct {
	Token  weave.Address `json:"token"`
	Owner  weave.Address `json:"owner"`
	Amount weave.Amount  `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ weave.Initializer = Initializer{}

// FromGenesis will parse initial balances from genesis
// and save them to the database
func (Initializer) FromGenesis(opts weave.Options, kv weave.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	control := NewController()
	for i, acct := range accts {
		if err := acct.Owner.Validate(); err != nil {
			return errors.Wrapf(err, "account %d owner", i)
		}
		if err := control.Mint(kv, acct.Token, acct.Owner, acct.Amount); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
