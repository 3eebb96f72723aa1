package yieldd

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (weave.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ weave.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the single message carried by the transaction.
func (tx *Tx) GetMsg() (weave.Msg, error) {
	var msgs []weave.Msg
	if tx.SendMsg != nil {
		msgs = append(msgs, tx.SendMsg)
	}
	if tx.InitializeMsg != nil {
		msgs = append(msgs, tx.InitializeMsg)
	}
	if tx.SetPercentageMsg != nil {
		msgs = append(msgs, tx.SetPercentageMsg)
	}
	if tx.SetTokenMsg != nil {
		msgs = append(msgs, tx.SetTokenMsg)
	}
	if tx.OpenStrategyMsg != nil {
		msgs = append(msgs, tx.OpenStrategyMsg)
	}
	if tx.AccrueMsg != nil {
		msgs = append(msgs, tx.AccrueMsg)
	}
	if tx.ExpireStrategyMsg != nil {
		msgs = append(msgs, tx.ExpireStrategyMsg)
	}
	if tx.CompleteStrategyMsg != nil {
		msgs = append(msgs, tx.CompleteStrategyMsg)
	}
	if tx.WithdrawMsg != nil {
		msgs = append(msgs, tx.WithdrawMsg)
	}

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrState, "message is missing")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrState, "%d messages in a single transaction", len(msgs))
	}
}

// GetSignatures returns the signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	signatures := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = signatures
	return bz, err
}
