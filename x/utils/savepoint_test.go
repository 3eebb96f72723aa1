package utils

import (
	"context"
	"testing"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/store"
	"github.com/iov-one/yieldweave/weavetest"
	"github.com/iov-one/yieldweave/weavetest/assert"
)

func TestSavepoint(t *testing.T) {
	var (
		key   = []byte("strategy:owner")
		value = []byte("active")
		other = []byte("cash:other")
	)

	cases := map[string]struct {
		savepoint Savepoint
		handler   weave.Handler
		check     bool
		wantErr   *errors.Error
		wantKeys  map[string]bool
	}{
		"deliver without savepoint persists on success": {
			savepoint: NewSavepoint().OnCheck(),
			handler:   &weavetest.WriteHandler{Key: key, Value: value},
			wantKeys:  map[string]bool{string(key): true},
		},
		"deliver without savepoint persists partial writes on failure": {
			savepoint: NewSavepoint().OnCheck(),
			handler:   &weavetest.WriteHandler{Key: key, Value: value, Err: errors.ErrState},
			wantErr:   errors.ErrState,
			wantKeys:  map[string]bool{string(key): true},
		},
		"deliver savepoint persists on success": {
			savepoint: NewSavepoint().OnDeliver(),
			handler:   &weavetest.WriteHandler{Key: key, Value: value},
			wantKeys:  map[string]bool{string(key): true},
		},
		"deliver savepoint discards on failure": {
			savepoint: NewSavepoint().OnDeliver(),
			handler:   &weavetest.WriteHandler{Key: key, Value: value, Err: errors.ErrAmount},
			wantErr:   errors.ErrAmount,
			wantKeys:  map[string]bool{string(key): false},
		},
		"check savepoint discards on failure": {
			savepoint: NewSavepoint().OnCheck(),
			handler:   &weavetest.WriteHandler{Key: key, Value: value, Err: errors.ErrUnauthorized},
			check:     true,
			wantErr:   errors.ErrUnauthorized,
			wantKeys:  map[string]bool{string(key): false},
		},
		"check savepoint persists on success": {
			savepoint: NewSavepoint().OnCheck().OnDeliver(),
			handler:   &weavetest.WriteHandler{Key: key, Value: value},
			check:     true,
			wantKeys:  map[string]bool{string(key): true},
		},
		"check without savepoint keeps partial writes": {
			savepoint: NewSavepoint().OnDeliver(),
			handler:   &weavetest.WriteHandler{Key: key, Value: value, Err: errors.ErrUnauthorized},
			check:     true,
			wantErr:   errors.ErrUnauthorized,
			wantKeys:  map[string]bool{string(key): true},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			// existing data must never be affected by a rollback
			assert.Nil(t, db.Set(other, []byte("balance")))

			h := weavetest.Decorate(tc.handler, tc.savepoint)
			tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "yield/open_strategy"}}
			var err error
			if tc.check {
				_, err = h.Check(context.Background(), db, tx)
			} else {
				_, err = h.Deliver(context.Background(), db, tx)
			}
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}

			for k, want := range tc.wantKeys {
				ok, err := db.Has([]byte(k))
				assert.Nil(t, err)
				if ok != want {
					t.Errorf("key %q presence: want %v, got %v", k, want, ok)
				}
			}
			ok, err := db.Has(other)
			assert.Nil(t, err)
			assert.Equal(t, true, ok)
		})
	}
}

func TestSavepointNonCacheableStore(t *testing.T) {
	var db nonCacheable
	db.KVStore = store.MemStore()

	key := []byte("strategy:owner")
	h := weavetest.Decorate(
		&weavetest.WriteHandler{Key: key, Value: []byte("x"), Err: errors.ErrState},
		NewSavepoint().OnDeliver(),
	)
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "yield/accrue"}}
	_, err := h.Deliver(context.Background(), db, tx)
	assert.IsErr(t, errors.ErrState, err)

	// Without cache wrap support there is nothing to discard.
	ok, err := db.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, true, ok)
}

type nonCacheable struct {
	weave.KVStore
}
