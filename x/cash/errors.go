package cash

import "github.com/iov-one/yieldweave/errors"

// ErrInsufficientFunds is returned when a balance is too low to cover a
// burn or a transfer.
var ErrInsufficientFunds = errors.Register(1100, "insufficient funds")
