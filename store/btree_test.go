package store

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t testing.TB, db ReadOnlyKVStore, key []byte) []byte {
	t.Helper()
	val, err := db.Get(key)
	require.NoError(t, err)
	return val
}

func has(t testing.TB, db ReadOnlyKVStore, key []byte) bool {
	t.Helper()
	ok, err := db.Has(key)
	require.NoError(t, err)
	return ok
}

// TestBTreeCacheGetSet does basic sanity checks on our cache
//
// Other tests should handle deletes, setting same value,
// and general fuzzing
func TestBTreeCacheGetSet(t *testing.T) {
	// base is the root of our data, we can layer on top and
	// all queries should work
	base := MemStore()

	// make sure the btree is empty at start but returns results
	// that are writen to it
	k, v := []byte("french"), []byte("fry")
	assert.Nil(t, get(t, base, k))
	assert.False(t, has(t, base, k))
	require.NoError(t, base.Set(k, v))
	assert.Equal(t, v, get(t, base, k))
	assert.True(t, has(t, base, k))

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assert.Equal(t, v, get(t, cache, k))
	assert.True(t, has(t, cache, k))

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	assert.Nil(t, get(t, cache, k2))
	require.NoError(t, cache.Set(k2, v2))
	assert.Equal(t, v2, get(t, cache, k2))
	assert.Nil(t, get(t, base, k2))
	assert.True(t, has(t, cache, k2))
	assert.False(t, has(t, base, k2))

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	assert.Equal(t, v, get(t, base, k))
	assert.Equal(t, v2, get(t, base, k2))

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	assert.Equal(t, v, get(t, c2, k))
	assert.Equal(t, v2, get(t, c2, k2))
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()

	// and commit another
	c3 := base.CacheWrap()
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())

	// make sure it commits proper
	assert.Nil(t, get(t, base, k))
	assert.Equal(t, v2, get(t, base, k2))
	assert.Nil(t, get(t, base, k3))
}

// TestBTreeCacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func TestBTreeCacheConflicts(t *testing.T) {
	// make 10 keys and 20 values....
	ks := randKeys(10, 16)
	vs := randKeys(20, 40)

	cases := map[string]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []Model // Key is what we query, Value is what we espect
		childQueries  []Model // Key is what we query, Value is what we espect
	}{
		"overwrite one, delete another, add a third": {
			parentOps:     []Op{SetOp(ks[1], vs[1]), SetOp(ks[2], vs[2])},
			childOps:      []Op{SetOp(ks[1], vs[11]), SetOp(ks[3], vs[7]), DelOp(ks[2])},
			parentQueries: []Model{Pair(ks[1], vs[1]), Pair(ks[2], vs[2]), Pair(ks[3], nil)},
			childQueries:  []Model{Pair(ks[1], vs[11]), Pair(ks[2], nil), Pair(ks[3], vs[7])},
		},
		"delete a missing key": {
			parentOps:     []Op{SetOp(ks[4], vs[4])},
			childOps:      []Op{DelOp(ks[5])},
			parentQueries: []Model{Pair(ks[4], vs[4]), Pair(ks[5], nil)},
			childQueries:  []Model{Pair(ks[4], vs[4]), Pair(ks[5], nil)},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent := MemStore()
			for _, op := range tc.parentOps {
				require.NoError(t, op.Apply(parent))
			}

			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				require.NoError(t, op.Apply(child))
			}

			// now check the parent is unaffected
			for j, q := range tc.parentQueries {
				assert.Equal(t, q.Value, get(t, parent, q.Key), "parent %d", j)
				assert.Equal(t, q.Value != nil, has(t, parent, q.Key), "parent %d", j)
			}

			// the child shows changes
			for j, q := range tc.childQueries {
				assert.Equal(t, q.Value, get(t, child, q.Key), "child %d", j)
				assert.Equal(t, q.Value != nil, has(t, child, q.Key), "child %d", j)
			}

			// write child to parent and make sure it also shows proper data
			require.NoError(t, child.Write())
			for j, q := range tc.childQueries {
				assert.Equal(t, q.Value, get(t, parent, q.Key), "written %d", j)
				assert.Equal(t, q.Value != nil, has(t, parent, q.Key), "written %d", j)
			}
		})
	}
}

func TestLogableStore(t *testing.T) {
	db, ops := LogableStore()
	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	require.NoError(t, db.Delete([]byte("b")))

	got := ops.ShowOps()
	require.Len(t, got, 2)
	assert.True(t, got[0].IsSetOp())
	assert.Equal(t, []byte("a"), got[0].Key())
	assert.False(t, got[1].IsSetOp())
	assert.Equal(t, []byte("b"), got[1].Key())
}

func TestNilKeyPanics(t *testing.T) {
	db := MemStore()
	assert.Panics(t, func() { _ = db.Set(nil, []byte("x")) })
	assert.Panics(t, func() { _ = db.Delete(nil) })
}

func randBytes(length int) []byte {
	res := make([]byte, length)
	if _, err := rand.Read(res); err != nil {
		panic(err)
	}
	return res
}

// randKeys returns a set of distinct random byte slices
func randKeys(count, length int) [][]byte {
	res := make([][]byte, count)
	for i := range res {
		res[i] = randBytes(length)
	}
	return res
}
