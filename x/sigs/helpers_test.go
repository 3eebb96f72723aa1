package sigs

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/weavetest"
)

// signedTx is a weave.Tx carrying an opaque message and its signatures.
type signedTx struct {
	weavetest.Tx
	payload []byte
	sigs    []*StdSignature
}

var _ SignedTx = (*signedTx)(nil)
var _ weave.Tx = (*signedTx)(nil)

func newSignedTx(payload string) *signedTx {
	return &signedTx{
		Tx:      weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "yield/accrue"}},
		payload: []byte(payload),
	}
}

func (tx *signedTx) GetSignBytes() ([]byte, error) {
	return tx.payload, nil
}

func (tx *signedTx) GetSignatures() []*StdSignature {
	return tx.sigs
}
