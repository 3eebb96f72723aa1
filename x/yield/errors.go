package yield

import "github.com/iov-one/yieldweave/errors"

var (
	// ErrNotInitialized is returned when a configuration value or a
	// strategy is read before it was set.
	ErrNotInitialized = errors.Register(1200, "not initialized")

	// ErrAlreadyInitialized is returned when the administrator is
	// initialized for the second time.
	ErrAlreadyInitialized = errors.Register(1201, "already initialized")

	// ErrInvalidPercentage is returned for a percentage outside of the
	// [1, 10000] range.
	ErrInvalidPercentage = errors.Register(1202, "invalid percentage")

	// ErrInvalidStatus is returned when an operation requires a status the
	// strategy is not in.
	ErrInvalidStatus = errors.Register(1203, "invalid strategy status")

	// ErrInvalidStrategy is returned when an operation requires an existing
	// strategy and the owner has none.
	ErrInvalidStrategy = errors.Register(1204, "invalid strategy")

	// ErrNotEnoughBalance is returned when a withdrawal is not covered by
	// the owner's balance.
	ErrNotEnoughBalance = errors.Register(1205, "not enough balance")
)
