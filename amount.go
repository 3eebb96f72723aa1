package weave

import (
	"encoding/json"
	"math/big"

	"github.com/iov-one/yieldweave/errors"
)

var (
	maxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minAmount = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))

	// MaxAmount is the greatest value an Amount can hold, 2^127 - 1.
	MaxAmount = fromBig(maxAmount)

	// MinAmount is the lowest value an Amount can hold, -2^127.
	MinAmount = fromBig(minAmount)
)

// Amount is a signed 128 bit integer quantity of a token. It is kept in its
// decimal form, which is how it is serialized both in protobuf and in JSON.
// The zero value is zero.
//
// All arithmetic is checked. A result outside of [MinAmount, MaxAmount]
// fails with ErrOverflow.
type Amount string

// NewAmount returns the Amount of given value.
func NewAmount(v int64) Amount {
	return fromBig(big.NewInt(v))
}

// ParseAmount decodes a decimal representation.
func ParseAmount(s string) (Amount, error) {
	v, err := Amount(s).Big()
	if err != nil {
		return "", err
	}
	return fromBig(v), nil
}

func fromBig(v *big.Int) Amount {
	return Amount(v.String())
}

// Big returns the value as a big integer. It fails if the representation is
// not a decimal integer or the value does not fit in 128 bits.
func (a Amount) Big() (*big.Int, error) {
	if a == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(string(a), 10)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInput, "invalid amount %q", string(a))
	}
	if v.Cmp(maxAmount) > 0 || v.Cmp(minAmount) < 0 {
		return nil, errors.Wrapf(errors.ErrOverflow, "amount %s", v)
	}
	return v, nil
}

// Validate returns an error if the amount is not a 128 bit decimal integer.
func (a Amount) Validate() error {
	_, err := a.Big()
	return err
}

// Sign returns -1, 0 or 1. An invalid amount is reported as zero.
func (a Amount) Sign() int {
	v, err := a.Big()
	if err != nil {
		return 0
	}
	return v.Sign()
}

// IsPositive returns true if the amount is a valid value greater than zero.
func (a Amount) IsPositive() bool {
	return a.Sign() > 0
}

// Cmp compares two amounts and returns -1, 0 or 1.
func (a Amount) Cmp(b Amount) (int, error) {
	x, err := a.Big()
	if err != nil {
		return 0, err
	}
	y, err := b.Big()
	if err != nil {
		return 0, err
	}
	return x.Cmp(y), nil
}

// Add returns a + b.
func (a Amount) Add(b Amount) (Amount, error) {
	return a.apply(b, (*big.Int).Add, "+")
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) (Amount, error) {
	return a.apply(b, (*big.Int).Sub, "-")
}

// MulInt64 returns a * n.
func (a Amount) MulInt64(n int64) (Amount, error) {
	return a.apply(NewAmount(n), (*big.Int).Mul, "*")
}

func (a Amount) apply(b Amount, op func(z, x, y *big.Int) *big.Int, sym string) (Amount, error) {
	x, err := a.Big()
	if err != nil {
		return "", err
	}
	y, err := b.Big()
	if err != nil {
		return "", err
	}
	res := op(new(big.Int), x, y)
	if res.Cmp(maxAmount) > 0 || res.Cmp(minAmount) < 0 {
		return "", errors.Wrapf(errors.ErrOverflow, "%s %s %s", x, sym, y)
	}
	return fromBig(res), nil
}

func (a Amount) String() string {
	if a == "" {
		return "0"
	}
	return string(a)
}

// MarshalJSON encodes the amount as a JSON string, so that no precision is
// lost by clients decoding numbers as floats.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both a JSON string and a JSON number.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return errors.Wrap(errors.ErrInput, "amount must be a string or a number")
		}
		s = n.String()
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
