package yield

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/gconf"
)

// Initializer fulfils the Initializer interface to load data from
// the genesis file.
//
// Configuration is read from the "conf.yield" key and is optional. The
// ledger can be initialized later with InitializeMsg. Strategies listed
// under the "yield" key are stored as they are.
type Initializer struct{}

var _ weave.Initializer = Initializer{}

type genesis struct {
	Strategies []*Strategy `json:"strategies"`
}

// FromGenesis stores the configuration and strategies found in genesis.
func (Initializer) FromGenesis(opts weave.Options, db weave.KVStore) error {
	var conf Configuration
	switch err := gconf.InitConfig(db, opts, packageName, &conf); {
	case err == nil, errors.ErrNotFound.Is(err):
	default:
		return errors.Wrap(err, "init config")
	}

	var gen genesis
	if err := opts.ReadOptions(packageName, &gen); err != nil {
		return err
	}
	bucket := NewStrategyBucket()
	for i, s := range gen.Strategies {
		if s.Metadata == nil {
			s.Metadata = &weave.Metadata{Schema: 1}
		}
		if s.MaturesAt == 0 {
			s.MaturesAt = s.CreatedAt.AddDuration(MaturityWindow)
		}
		if err := bucket.Save(db, s); err != nil {
			return errors.Wrapf(err, "strategy %d", i)
		}
	}
	return nil
}
