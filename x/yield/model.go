package yield

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/orm"
)

// MaturityWindow is the time between opening a strategy and its maturity.
const MaturityWindow weave.UnixDuration = 2592000 // 30 days

var _ orm.Model = (*Strategy)(nil)

// Validate ensures the strategy is well formed.
func (s *Strategy) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", s.Owner.Validate())
	if err := s.PrincipalAmount.Validate(); err != nil {
		errs = errors.AppendField(errs, "PrincipalAmount", err)
	} else if !s.PrincipalAmount.IsPositive() {
		errs = errors.Append(errs, errors.Field("PrincipalAmount", errors.ErrAmount, "must be positive"))
	}
	if !validPercentage(s.Percentage) {
		errs = errors.Append(errs, errors.Field("Percentage", ErrInvalidPercentage, "%d", s.Percentage))
	}
	errs = errors.AppendField(errs, "SettlementToken", s.SettlementToken.Validate())
	if err := s.CreatedAt.Validate(); err != nil {
		errs = errors.AppendField(errs, "CreatedAt", err)
	} else if s.CreatedAt.IsZero() {
		errs = errors.Append(errs, errors.Field("CreatedAt", errors.ErrEmpty, "required"))
	}
	if s.MaturesAt != s.CreatedAt.AddDuration(MaturityWindow) {
		errs = errors.Append(errs, errors.Field("MaturesAt", errors.ErrState, "must be %s after creation", MaturityWindow))
	}
	switch s.Status {
	case StatusActive, StatusExpired, StatusCompleted:
	default:
		errs = errors.Append(errs, errors.Field("Status", ErrInvalidStatus, "unknown status %d", s.Status))
	}
	return errs
}

// transition moves the strategy from one status to the next one. Only
// forward moves by a single step are allowed.
func (s *Strategy) transition(from, to Status) error {
	if s.Status != from {
		return errors.Wrapf(ErrInvalidStatus, "strategy is %s, want %s", s.Status, from)
	}
	if to != from+1 {
		return errors.Wrapf(errors.ErrHuman, "%s cannot follow %s", to, from)
	}
	s.Status = to
	return nil
}

// MonthlyYield returns one month's share of the yearly percentage applied
// to the principal:
//
//   principal * (percentage / 12)
//
// Percentage is expressed in hundredths of a percent and the division is an
// integer division rounding down. Result that does not fit in 128 bits
// fails with ErrOverflow.
func MonthlyYield(principal weave.Amount, percentage int32) (weave.Amount, error) {
	return principal.MulInt64(int64(percentage) / 12)
}

// StrategyBucket stores strategies keyed by the owner address.
type StrategyBucket struct {
	orm.ModelBucket
}

// NewStrategyBucket returns a bucket for managing strategies.
func NewStrategyBucket() StrategyBucket {
	return StrategyBucket{
		ModelBucket: orm.NewModelBucket("strategy", &Strategy{}),
	}
}

// GetStrategy returns the strategy of the owner or ErrNotInitialized.
func (b StrategyBucket) GetStrategy(db weave.ReadOnlyKVStore, owner weave.Address) (*Strategy, error) {
	var s Strategy
	switch err := b.One(db, owner, &s); {
	case err == nil:
		return &s, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrNotInitialized, "no strategy for %s", owner)
	default:
		return nil, err
	}
}

// Save validates and stores the strategy under its owner.
func (b StrategyBucket) Save(db weave.KVStore, s *Strategy) error {
	_, err := b.Put(db, s.Owner, s)
	return err
}
