package cash

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
)

const maxMemoSize int = 128

var _ weave.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	errs = errors.AppendField(errs, "Token", s.Token.Validate())
	errs = errors.AppendField(errs, "Src", s.Src.Validate())
	errs = errors.AppendField(errs, "Dest", s.Dest.Validate())
	if err := s.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !s.Amount.IsPositive() {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "non positive SendMsg: %s", s.Amount))
	}
	if len(s.Memo) > maxMemoSize {
		errs = errors.Append(errs, errors.Field("Memo", errors.ErrInput, "memo too long"))
	}
	return errs
}
