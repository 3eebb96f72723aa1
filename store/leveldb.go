package store

import (
	"path/filepath"

	dbm "github.com/tendermint/tendermint/libs/db"
)

// DBStore exposes a tendermint database as a CacheableKVStore. Writes of a
// cache wrap are collected in a database batch and flushed synchronously on
// Write.
type DBStore struct {
	db dbm.DB
}

var _ CacheableKVStore = DBStore{}

// NewDBStore wraps given database.
func NewDBStore(db dbm.DB) DBStore {
	return DBStore{db: db}
}

// OpenLevelDB returns a store persisted in a goleveldb database located in
// given directory. The database must be closed by the caller.
func OpenLevelDB(dir string) (DBStore, func()) {
	db := dbm.NewDB(filepath.Base(dir), dbm.GoLevelDBBackend, filepath.Dir(dir))
	return NewDBStore(db), db.Close
}

func (s DBStore) Get(key []byte) ([]byte, error) {
	return s.db.Get(key), nil
}

func (s DBStore) Has(key []byte) (bool, error) {
	return s.db.Has(key), nil
}

func (s DBStore) Set(key, value []byte) error {
	s.db.Set(key, value)
	return nil
}

func (s DBStore) Delete(key []byte) error {
	s.db.Delete(key)
	return nil
}

// CacheWrap returns a btree cache that writes to the database in a single
// batch.
func (s DBStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(s, &dbBatch{batch: s.db.NewBatch()}, nil)
}

// dbBatch adapts a tendermint batch to the Batch interface.
type dbBatch struct {
	batch dbm.Batch
}

var _ Batch = (*dbBatch)(nil)

func (b *dbBatch) Set(key, value []byte) error {
	b.batch.Set(key, value)
	return nil
}

func (b *dbBatch) Delete(key []byte) error {
	b.batch.Delete(key)
	return nil
}

func (b *dbBatch) Write() error {
	b.batch.WriteSync()
	return nil
}
