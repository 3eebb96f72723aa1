package orm

import (
	"reflect"
	"regexp"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
)

// Model is impelemented by any entity that can be stored using ModelBucket.
type Model interface {
	weave.Persistent
	Validate() error
}

// ModelBucket is implemented by buckets that operates on Models rather than
// Objects.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db weave.ReadOnlyKVStore, key []byte, dest Model) error

	// Put saves given model in the database. Before inserting into
	// database, model is validated using its Validate method.
	// The key is returned to follow the ordinary bucket API.
	Put(db weave.KVStore, key []byte, m Model) ([]byte, error)
}

var isBucketName = regexp.MustCompile(`^[a-z_]{3,12}$`).MatchString

// NewModelBucket returns a ModelBucket instance storing models of the same
// type as given example under the bucket name prefix.
//
// This function panics if the name is not a valid bucket name. Call it only
// during the application setup.
func NewModelBucket(name string, m Model) ModelBucket {
	if !isBucketName(name) {
		panic("invalid bucket name: " + name)
	}
	tp := reflect.TypeOf(m)
	if tp == nil || tp.Kind() != reflect.Ptr {
		panic("model must be a pointer")
	}
	return &modelBucket{
		prefix: []byte(name + ":"),
		model:  tp.Elem(),
	}
}

type modelBucket struct {
	prefix []byte
	model  reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) dbKey(key []byte) []byte {
	return append(append([]byte{}, mb.prefix...), key...)
}

func (mb *modelBucket) One(db weave.ReadOnlyKVStore, key []byte, dest Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if reflect.TypeOf(dest) != reflect.PtrTo(mb.model) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %s", dest, mb.model)
	}

	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.model.Name())
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot deserialize %s: %s", mb.model.Name(), err)
	}
	return nil
}

func (mb *modelBucket) Put(db weave.KVStore, key []byte, m Model) ([]byte, error) {
	if len(key) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "key")
	}
	if reflect.TypeOf(m) != reflect.PtrTo(mb.model) {
		return nil, errors.Wrapf(errors.ErrType, "cannot store %T in a %s bucket", m, mb.model)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot serialize: %s", err)
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return key, nil
}
