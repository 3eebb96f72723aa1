package yieldd

import (
	"fmt"
	"testing"
	"time"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/app"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/store"
	"github.com/iov-one/yieldweave/weavetest"
	"github.com/iov-one/yieldweave/x/cash"
	"github.com/iov-one/yieldweave/x/sigs"
	"github.com/iov-one/yieldweave/x/yield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"golang.org/x/crypto/ed25519"
)

const chainID = "test-chain-yield"

// signer keeps track of the sequence of a key.
type signer struct {
	priv ed25519.PrivateKey
	seq  int64
}

func newSigner() *signer {
	_, priv := weavetest.NewKey()
	return &signer{priv: priv}
}

func (s *signer) address() weave.Address {
	return sigs.PubkeyCondition(s.priv.Public().(ed25519.PublicKey)).Address()
}

// sign signs the transaction and returns its serialized form.
func (s *signer) sign(t *testing.T, tx *Tx) []byte {
	t.Helper()
	sig, err := sigs.SignTx(s.priv, tx, chainID, s.seq)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	require.NoError(t, err)
	s.seq++
	return raw
}

func newApp(t *testing.T, db weave.CacheableKVStore, admin weave.Address) *app.BaseApp {
	t.Helper()

	application, err := Application("yieldd", Stack(), TxDecoder, db, false)
	require.NoError(t, err)

	genesis := fmt.Sprintf(`{
		"conf": {
			"yield": {
				"metadata": {"schema": 1},
				"admin": %q,
				"percentage": 1200,
				"settlement_token": %q
			}
		},
		"cash": [
			{"token": %q, "owner": %q, "amount": 1000}
		]
	}`, admin, DevToken(), DevToken(), admin)
	application.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: []byte(genesis)})
	return application
}

func TestStrategyLifecycle(t *testing.T) {
	db := store.MemStore()
	admin := newSigner()
	owner := weavetest.RandomAddr(t)
	meta := &weave.Metadata{Schema: 1}

	application := newApp(t, db, admin.address())
	start := time.Date(2019, 4, 1, 10, 0, 0, 0, time.UTC)
	application.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1, Time: start}})

	res := application.DeliverTx(admin.sign(t, &Tx{OpenStrategyMsg: &yield.OpenStrategyMsg{Metadata: meta, Owner: owner, Amount: "100000"}}))
	require.Equal(t, uint32(0), res.Code, res.Log)
	require.Len(t, res.Tags, 2)
	assert.Equal(t, []byte("yield/open_strategy"), res.Tags[0].Value)
	assert.Equal(t, []byte("yield"), res.Tags[1].Value)

	// a stranger cannot expire the strategy
	stranger := newSigner()
	res = application.DeliverTx(stranger.sign(t, &Tx{ExpireStrategyMsg: &yield.ExpireStrategyMsg{Metadata: meta, Owner: owner}}))
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res.Code)

	// transaction without a signature is rejected by the handler
	raw, err := (&Tx{ExpireStrategyMsg: &yield.ExpireStrategyMsg{Metadata: meta, Owner: owner}}).Marshal()
	require.NoError(t, err)
	res = application.DeliverTx(raw)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res.Code)

	res = application.DeliverTx(admin.sign(t, &Tx{CompleteStrategyMsg: &yield.CompleteStrategyMsg{Metadata: meta, Owner: owner}}))
	assert.Equal(t, yield.ErrInvalidStatus.ABCICode(), res.Code)

	application.Commit()
	application.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 2, Time: start.Add(30 * 24 * time.Hour)}})

	res = application.DeliverTx(admin.sign(t, &Tx{ExpireStrategyMsg: &yield.ExpireStrategyMsg{Metadata: meta, Owner: owner}}))
	require.Equal(t, uint32(0), res.Code, res.Log)
	res = application.DeliverTx(admin.sign(t, &Tx{CompleteStrategyMsg: &yield.CompleteStrategyMsg{Metadata: meta, Owner: owner}}))
	require.Equal(t, uint32(0), res.Code, res.Log)
	res = application.DeliverTx(admin.sign(t, &Tx{WithdrawMsg: &yield.WithdrawMsg{Metadata: meta, Owner: owner, Amount: "10000000"}}))
	assert.Equal(t, yield.ErrNotEnoughBalance.ABCICode(), res.Code)
	res = application.DeliverTx(admin.sign(t, &Tx{WithdrawMsg: &yield.WithdrawMsg{Metadata: meta, Owner: owner, Amount: "4000000"}}))
	require.Equal(t, uint32(0), res.Code, res.Log)
	application.Commit()

	s, err := yield.GetStrategy(db, owner)
	require.NoError(t, err)
	assert.Equal(t, yield.StatusCompleted, s.Status)
	assert.Equal(t, weave.AsUnixTime(start), s.CreatedAt)

	bal, err := yield.GetYieldBalance(db, cash.NewController(), owner)
	require.NoError(t, err)
	assert.Equal(t, weave.Amount("6000000"), bal)

	// every delivered transaction signed by the admin moved the sequence
	seq, err := sigs.NextSequence(db, admin.priv.Public().(ed25519.PublicKey))
	require.NoError(t, err)
	assert.Equal(t, admin.seq, seq)
}

func TestCheckTx(t *testing.T) {
	db := store.MemStore()
	admin := newSigner()
	application := newApp(t, db, admin.address())
	application.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1, Time: time.Now()}})

	cases := map[string]struct {
		tx       func() []byte
		wantCode uint32
	}{
		"admin changes percentage": {
			tx: func() []byte {
				return admin.sign(t, &Tx{SetPercentageMsg: &yield.SetPercentageMsg{Metadata: &weave.Metadata{Schema: 1}, Percentage: 300}})
			},
		},
		"percentage out of range": {
			tx: func() []byte {
				return admin.sign(t, &Tx{SetPercentageMsg: &yield.SetPercentageMsg{Metadata: &weave.Metadata{Schema: 1}, Percentage: 0}})
			},
			wantCode: yield.ErrInvalidPercentage.ABCICode(),
		},
		"second initialization": {
			tx: func() []byte {
				return admin.sign(t, &Tx{InitializeMsg: &yield.InitializeMsg{Metadata: &weave.Metadata{Schema: 1}, Admin: admin.address()}})
			},
			wantCode: yield.ErrAlreadyInitialized.ABCICode(),
		},
		"two messages": {
			tx: func() []byte {
				return admin.sign(t, &Tx{
					SetPercentageMsg: &yield.SetPercentageMsg{Metadata: &weave.Metadata{Schema: 1}, Percentage: 300},
					SetTokenMsg:      &yield.SetTokenMsg{Metadata: &weave.Metadata{Schema: 1}, Token: DevToken()},
				})
			},
			wantCode: errors.ErrState.ABCICode(),
		},
		"garbage": {
			tx:       func() []byte { return []byte{0xff, 0xff, 0xff} },
			wantCode: errors.ErrInput.ABCICode(),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			// Nothing is ever delivered, so after a commit the check
			// state is back at the genesis sequence.
			admin.seq = 0
			res := application.CheckTx(tc.tx())
			assert.Equal(t, tc.wantCode, res.Code, res.Log)
			application.Commit()
		})
	}
}

func TestSendToken(t *testing.T) {
	db := store.MemStore()
	admin := newSigner()
	bob := weavetest.RandomAddr(t)
	application := newApp(t, db, admin.address())
	application.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1, Time: time.Now()}})

	res := application.DeliverTx(admin.sign(t, &Tx{SendMsg: &cash.SendMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Token:    DevToken(),
		Src:      admin.address(),
		Dest:     bob,
		Amount:   weave.NewAmount(250),
	}}))
	require.Equal(t, uint32(0), res.Code, res.Log)
	application.Commit()

	ctrl := cash.NewController()
	bal, err := ctrl.Balance(db, DevToken(), bob)
	require.NoError(t, err)
	assert.Equal(t, weave.Amount("250"), bal)
	bal, err = ctrl.Balance(db, DevToken(), admin.address())
	require.NoError(t, err)
	assert.Equal(t, weave.Amount("750"), bal)
}
