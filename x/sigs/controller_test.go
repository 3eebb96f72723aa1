package sigs

import (
	"testing"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/store"
	"github.com/iov-one/yieldweave/weavetest"
	"github.com/iov-one/yieldweave/weavetest/assert"
)

func TestBuildSignBytes(t *testing.T) {
	cases := map[string]struct {
		chainID string
		seq     int64
		wantErr *errors.Error
	}{
		"valid": {
			chainID: "yield-test",
			seq:     17,
		},
		"negative sequence": {
			chainID: "yield-test",
			seq:     -1,
			wantErr: ErrInvalidSequence,
		},
		"invalid chain": {
			chainID: "x",
			seq:     1,
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			bz, err := BuildSignBytes([]byte("payload"), tc.chainID, tc.seq)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err == nil {
				assert.Equal(t, 64, len(bz))
			}
		})
	}

	// Sign bytes depend on every input.
	a, err := BuildSignBytes([]byte("payload"), "yield-test", 1)
	assert.Nil(t, err)
	b, err := BuildSignBytes([]byte("payload"), "yield-test", 2)
	assert.Nil(t, err)
	c, err := BuildSignBytes([]byte("payload"), "yield-other", 1)
	assert.Nil(t, err)
	if string(a) == string(b) || string(a) == string(c) {
		t.Fatal("sign bytes must differ")
	}
}

func TestVerifySignature(t *testing.T) {
	const chainID = "yield-test"

	pub, priv := weavetest.NewKey()
	_, otherPriv := weavetest.NewKey()
	db := store.MemStore()

	tx := newSignedTx("open strategy")
	bz, err := tx.GetSignBytes()
	assert.Nil(t, err)

	sig0, err := SignTx(priv, tx, chainID, 0)
	assert.Nil(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	assert.Nil(t, err)
	wrongChain, err := SignTx(priv, tx, "yield-other", 1)
	assert.Nil(t, err)
	forged, err := SignTx(otherPriv, tx, chainID, 1)
	assert.Nil(t, err)
	forged.Pubkey = pub

	seq, err := NextSequence(db, pub)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), seq)

	// Signatures must be used in sequence order.
	_, err = VerifySignature(db, sig1, bz, chainID)
	assert.IsErr(t, ErrInvalidSequence, err)

	cond, err := VerifySignature(db, sig0, bz, chainID)
	assert.Nil(t, err)
	assert.Equal(t, weavetest.SigCondition(pub), cond)

	// Replay is rejected.
	_, err = VerifySignature(db, sig0, bz, chainID)
	assert.IsErr(t, ErrInvalidSequence, err)

	_, err = VerifySignature(db, wrongChain, bz, chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = VerifySignature(db, forged, bz, chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = VerifySignature(db, sig1, []byte("withdraw"), chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	cond, err = VerifySignature(db, sig1, bz, chainID)
	assert.Nil(t, err)
	assert.Equal(t, weavetest.SigCondition(pub), cond)

	seq, err = NextSequence(db, pub)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), seq)
}

func TestVerifyTxSignatures(t *testing.T) {
	const chainID = "yield-test"

	pub1, priv1 := weavetest.NewKey()
	pub2, priv2 := weavetest.NewKey()
	db := store.MemStore()

	tx := newSignedTx("expire strategy")
	signers, err := VerifyTxSignatures(db, tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(signers))

	s1, err := SignTx(priv1, tx, chainID, 0)
	assert.Nil(t, err)
	s2, err := SignTx(priv2, tx, chainID, 0)
	assert.Nil(t, err)
	tx.sigs = []*StdSignature{s1, s2}

	signers, err = VerifyTxSignatures(db, tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, []weave.Condition{weavetest.SigCondition(pub1), weavetest.SigCondition(pub2)}, signers)

	// The same transaction cannot be processed twice.
	_, err = VerifyTxSignatures(db, tx, chainID)
	assert.IsErr(t, ErrInvalidSequence, err)
}
