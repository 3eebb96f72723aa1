package yield

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
)

var (
	_ weave.Msg = (*InitializeMsg)(nil)
	_ weave.Msg = (*SetPercentageMsg)(nil)
	_ weave.Msg = (*SetTokenMsg)(nil)
	_ weave.Msg = (*OpenStrategyMsg)(nil)
	_ weave.Msg = (*AccrueMsg)(nil)
	_ weave.Msg = (*ExpireStrategyMsg)(nil)
	_ weave.Msg = (*CompleteStrategyMsg)(nil)
	_ weave.Msg = (*WithdrawMsg)(nil)
)

func (InitializeMsg) Path() string {
	return "yield/initialize"
}

func (m *InitializeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Admin", m.Admin.Validate())
	return errs
}

func (SetPercentageMsg) Path() string {
	return "yield/set_percentage"
}

func (m *SetPercentageMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !validPercentage(m.Percentage) {
		errs = errors.Append(errs, errors.Field("Percentage", ErrInvalidPercentage,
			"%d not in [%d, %d]", m.Percentage, minPercentage, maxPercentage))
	}
	return errs
}

func (SetTokenMsg) Path() string {
	return "yield/set_token"
}

func (m *SetTokenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Token", m.Token.Validate())
	return errs
}

func (OpenStrategyMsg) Path() string {
	return "yield/open_strategy"
}

func (m *OpenStrategyMsg) Validate() error {
	return validateOwnerAmount(m.Metadata, m.Owner, m.Amount)
}

func (AccrueMsg) Path() string {
	return "yield/accrue"
}

func (m *AccrueMsg) Validate() error {
	return validateOwnerAmount(m.Metadata, m.Owner, m.Amount)
}

func (ExpireStrategyMsg) Path() string {
	return "yield/expire_strategy"
}

func (m *ExpireStrategyMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	return errs
}

func (CompleteStrategyMsg) Path() string {
	return "yield/complete_strategy"
}

func (m *CompleteStrategyMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	return errs
}

func (WithdrawMsg) Path() string {
	return "yield/withdraw"
}

func (m *WithdrawMsg) Validate() error {
	return validateOwnerAmount(m.Metadata, m.Owner, m.Amount)
}

func validateOwnerAmount(meta *weave.Metadata, owner weave.Address, amount weave.Amount) error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", meta.Validate())
	errs = errors.AppendField(errs, "Owner", owner.Validate())
	if err := amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !amount.IsPositive() {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	return errs
}
