package cash

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Balance)(nil)

// Validate ensures the balance is well formed. A stored balance is never
// negative.
func (b *Balance) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", b.Metadata.Validate())
	errs = errors.AppendField(errs, "Token", b.Token.Validate())
	errs = errors.AppendField(errs, "Owner", b.Owner.Validate())
	if err := b.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if b.Amount.Sign() < 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "negative balance"))
	}
	return errs
}

// balanceKey returns the database key of the owner's balance of a token.
func balanceKey(token, owner weave.Address) []byte {
	key := make([]byte, 0, len(token)+len(owner))
	key = append(key, token...)
	return append(key, owner...)
}

// Bucket stores Balance entities keyed by token and owner.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket creates the proper bucket for this extension
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Balance{}),
	}
}

// GetOrCreate returns the stored balance or a zero balance if the owner
// never held the token.
func (b Bucket) GetOrCreate(db weave.ReadOnlyKVStore, token, owner weave.Address) (*Balance, error) {
	var bal Balance
	switch err := b.One(db, balanceKey(token, owner), &bal); {
	case err == nil:
		return &bal, nil
	case errors.ErrNotFound.Is(err):
		return &Balance{
			Metadata: &weave.Metadata{Schema: 1},
			Token:    token,
			Owner:    owner,
		}, nil
	default:
		return nil, err
	}
}

// Save stores the balance under its token and owner.
func (b Bucket) Save(db weave.KVStore, bal *Balance) error {
	_, err := b.Put(db, balanceKey(bal.Token, bal.Owner), bal)
	return err
}
