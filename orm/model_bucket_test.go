package orm

import (
	"strconv"
	"testing"

	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/store"
	"github.com/iov-one/yieldweave/weavetest/assert"
)

func TestModelBucket(t *testing.T) {
	db := store.MemStore()

	b := NewModelBucket("cnts", &counter{})

	if _, err := b.Put(db, []byte("c1"), &counter{Count: 1}); err != nil {
		t.Fatalf("cannot save counter instance: %s", err)
	}

	var c1 counter
	if err := b.One(db, []byte("c1"), &c1); err != nil {
		t.Fatalf("cannot get c1 counter: %s", err)
	}
	if c1.Count != 1 {
		t.Fatalf("unexpected counter state: %d", c1.Count)
	}

	if _, err := b.Put(db, []byte("c1"), &counter{Count: 5}); err != nil {
		t.Fatalf("cannot overwrite c1 counter: %s", err)
	}
	if err := b.One(db, []byte("c1"), &c1); err != nil {
		t.Fatalf("cannot get c1 counter: %s", err)
	}
	assert.Equal(t, int64(5), c1.Count)

	var unknown counter
	if err := b.One(db, []byte("unknown"), &unknown); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown model get: %s", err)
	}
	if err := b.One(db, nil, &unknown); !errors.ErrEmpty.Is(err) {
		t.Fatalf("unexpected error for an empty key: %s", err)
	}
}

func TestModelBucketPutErrors(t *testing.T) {
	cases := map[string]struct {
		key     []byte
		model   Model
		wantErr *errors.Error
	}{
		"valid model": {
			key:   []byte("a"),
			model: &counter{Count: 4},
		},
		"invalid model": {
			key:     []byte("a"),
			model:   &counter{Count: -1},
			wantErr: errors.ErrModel,
		},
		"empty key": {
			key:     nil,
			model:   &counter{Count: 4},
			wantErr: errors.ErrEmpty,
		},
		"wrong model type": {
			key:     []byte("a"),
			model:   &otherModel{},
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			b := NewModelBucket("cnts", &counter{})
			_, err := b.Put(db, tc.key, tc.model)
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}

func TestModelBucketPrefixesKeys(t *testing.T) {
	db := store.MemStore()
	first := NewModelBucket("first", &counter{})
	second := NewModelBucket("second", &counter{})

	if _, err := first.Put(db, []byte("k"), &counter{Count: 1}); err != nil {
		t.Fatalf("cannot save: %s", err)
	}
	var c counter
	if err := second.One(db, []byte("k"), &c); !errors.ErrNotFound.Is(err) {
		t.Fatalf("buckets must not share keys: %v", err)
	}
	raw, err := db.Get([]byte("first:k"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), raw)
}

func TestModelBucketOneWrongType(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	if _, err := b.Put(db, []byte("a"), &counter{Count: 2}); err != nil {
		t.Fatalf("cannot save: %s", err)
	}
	assert.IsErr(t, errors.ErrType, b.One(db, []byte("a"), &otherModel{}))
}

func TestInvalidBucketName(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("A", &counter{}) })
	assert.Panics(t, func() { NewModelBucket("cnts", nil) })
}

// counter is a model serialized as its decimal value.
type counter struct {
	Count int64
}

func (c *counter) Marshal() ([]byte, error) {
	return []byte(strconv.FormatInt(c.Count, 10)), nil
}

func (c *counter) Unmarshal(raw []byte) error {
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return err
	}
	c.Count = n
	return nil
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "negative count")
	}
	return nil
}

type otherModel struct{}

func (*otherModel) Marshal() ([]byte, error) { return nil, nil }
func (*otherModel) Unmarshal([]byte) error   { return nil }
func (*otherModel) Validate() error          { return nil }
