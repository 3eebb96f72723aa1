package store

// Recorder interface is implemented by anything returned from
// NewRecordingStore
type Recorder interface {
	KVPairs() map[string][]byte
}

// NewRecordingStore initializes a recording store wrapping this
// base store, using cached alternative if possible.
//
// Downstream components (like Savepoint) test for CacheableKVStore, so the
// cache wrapping ability of the wrapped store must be exposed.
func NewRecordingStore(db KVStore) KVStore {
	changes := make(map[string][]byte)
	if cached, ok := db.(CacheableKVStore); ok {
		return &cacheableRecordingStore{
			CacheableKVStore: cached,
			changes:          changes,
		}
	}
	return &recordingStore{
		KVStore: db,
		changes: changes,
	}
}

// recordingStore wraps a normal KVStore and records any change operations
type recordingStore struct {
	KVStore
	// changes maps a key to the value written, nil for deletes
	changes map[string][]byte
}

var _ KVStore = (*recordingStore)(nil)

// KVPairs returns all keys changed through this store, mapped to the written
// value or nil for a delete.
func (r *recordingStore) KVPairs() map[string][]byte {
	return r.changes
}

func (r *recordingStore) Set(key, value []byte) error {
	if err := r.KVStore.Set(key, value); err != nil {
		return err
	}
	r.changes[string(key)] = value
	return nil
}

func (r *recordingStore) Delete(key []byte) error {
	if err := r.KVStore.Delete(key); err != nil {
		return err
	}
	r.changes[string(key)] = nil
	return nil
}

// cacheableRecordingStore wraps a CacheableKVStore and records any change
// operations, including the ones written from a cache wrap.
type cacheableRecordingStore struct {
	CacheableKVStore
	changes map[string][]byte
}

var _ CacheableKVStore = (*cacheableRecordingStore)(nil)

func (r *cacheableRecordingStore) KVPairs() map[string][]byte {
	return r.changes
}

func (r *cacheableRecordingStore) Set(key, value []byte) error {
	if err := r.CacheableKVStore.Set(key, value); err != nil {
		return err
	}
	r.changes[string(key)] = value
	return nil
}

func (r *cacheableRecordingStore) Delete(key []byte) error {
	if err := r.CacheableKVStore.Delete(key); err != nil {
		return err
	}
	r.changes[string(key)] = nil
	return nil
}

// CacheWrap makes sure all cached writes also go through this store once
// they are written.
func (r *cacheableRecordingStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(r, NewNonAtomicBatch(r), nil)
}
