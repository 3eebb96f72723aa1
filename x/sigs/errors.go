package sigs

import "github.com/iov-one/yieldweave/errors"

// ErrInvalidSequence is returned when a signature carries a sequence that
// was already used or is out of order.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
