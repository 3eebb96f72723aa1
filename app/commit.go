package app

import (
	"encoding/binary"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
)

// _wv: is a prefix for weave internal data
const (
	chainIDKey = "_wv:chainID"
	heightKey  = "_wv:height"
)

// CommitStore maintains different CacheWraps for Deliver and Check on top of
// the host store and returns useful state info.
type CommitStore struct {
	committed weave.CacheableKVStore
	deliver   weave.KVCacheWrap
	check     weave.KVCacheWrap
}

// NewCommitStore sets up the deliver and check caches over given store.
func NewCommitStore(db weave.CacheableKVStore) *CommitStore {
	return &CommitStore{
		committed: db,
		deliver:   db.CacheWrap(),
		check:     db.CacheWrap(),
	}
}

// Height returns the height of the last committed block.
func (cs *CommitStore) Height() (int64, error) {
	raw, err := cs.committed.Get([]byte(heightKey))
	if err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, errors.Wrap(errors.ErrState, "malformed height")
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}

// Commit will flush deliver to the underlying store together with the new
// height. It then regenerates new deliver/check caches.
func (cs *CommitStore) Commit(height int64) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(height))
	if err := cs.deliver.Set([]byte(heightKey), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}

	// flush deliver to store and discard check
	if err := cs.deliver.Write(); err != nil {
		return errors.Wrap(err, "write deliver cache")
	}
	cs.check.Discard()

	// set up new caches
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
	return nil
}

// CheckStore returns a store implementation that must be used during the
// checking phase.
func (cs *CommitStore) CheckStore() weave.CacheableKVStore {
	return cs.check
}

// DeliverStore returns a store implementation that must be used during the
// delivery phase.
func (cs *CommitStore) DeliverStore() weave.CacheableKVStore {
	return cs.deliver
}

// loadChainID returns the chain id stored if any
func loadChainID(kv weave.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store.
// Returns error if already set, or invalid name
func saveChainID(kv weave.KVStore, chainID string) error {
	if !weave.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	switch exists, err := kv.Has(k); {
	case err != nil:
		return errors.Wrap(errors.ErrDatabase, err.Error())
	case exists:
		return errors.Wrap(errors.ErrDuplicate, "chain id already set")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
