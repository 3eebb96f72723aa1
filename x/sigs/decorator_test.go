package sigs

import (
	"context"
	"testing"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/store"
	"github.com/iov-one/yieldweave/weavetest"
	"github.com/iov-one/yieldweave/weavetest/assert"
)

// signersHandler records the conditions authenticated for the last call.
type signersHandler struct {
	weavetest.Handler
	seen []weave.Condition
}

func (h *signersHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	h.seen = Authenticate{}.GetConditions(ctx)
	return h.Handler.Check(ctx, db, tx)
}

func (h *signersHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	h.seen = Authenticate{}.GetConditions(ctx)
	return h.Handler.Deliver(ctx, db, tx)
}

func TestDecorator(t *testing.T) {
	const chainID = "yield-test"
	ctx := weave.WithChainID(context.Background(), chainID)

	pub, priv := weavetest.NewKey()
	db := store.MemStore()

	unsigned := newSignedTx("accrue")

	signed := newSignedTx("accrue")
	sig, err := SignTx(priv, signed, chainID, 0)
	assert.Nil(t, err)
	signed.sigs = []*StdSignature{sig}

	h := &signersHandler{}
	strict := weavetest.Decorate(h, NewDecorator())
	relaxed := weavetest.Decorate(h, NewDecorator().AllowMissingSigs())

	_, err = strict.Check(ctx, db, unsigned)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 0, h.CallCount())

	_, err = relaxed.Deliver(ctx, db, unsigned)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(h.seen))

	_, err = strict.Check(ctx, db, signed)
	assert.Nil(t, err)
	assert.Equal(t, []weave.Condition{weavetest.SigCondition(pub)}, h.seen)

	// Check consumed sequence 0 in this store, so the same signature
	// cannot be delivered again.
	_, err = strict.Deliver(ctx, db, signed)
	assert.IsErr(t, ErrInvalidSequence, err)

	// A plain transaction without signature support passes through.
	_, err = strict.Deliver(ctx, db, &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "yield/accrue"}})
	assert.Nil(t, err)
	assert.Equal(t, 3, h.CallCount())
}

func TestAuthenticate(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	ctx := withSigners(context.Background(), []weave.Condition{alice})
	var auth Authenticate

	assert.Equal(t, true, auth.HasAddress(ctx, alice.Address()))
	assert.Equal(t, false, auth.HasAddress(ctx, bob.Address()))
	assert.Equal(t, false, auth.HasAddress(context.Background(), alice.Address()))
}
