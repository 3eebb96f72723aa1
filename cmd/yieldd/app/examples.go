package yieldd

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/commands"
	"github.com/iov-one/yieldweave/x/cash"
	"github.com/iov-one/yieldweave/x/sigs"
	"github.com/iov-one/yieldweave/x/yield"
	"golang.org/x/crypto/ed25519"
)

// Examples returns sample transactions and models that clients can test
// their encoding against.
func Examples() []commands.Example {
	seed := make([]byte, ed25519.SeedSize)
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	admin := sigs.PubkeyCondition(pub).Address()
	owner := weave.NewCondition("sigs", "ed25519", []byte("owner")).Address()
	token := DevToken()

	open := &yield.OpenStrategyMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
		Amount:   weave.NewAmount(100000),
	}
	tx := &Tx{OpenStrategyMsg: open}
	sig, err := sigs.SignTx(priv, tx, "test-chain-yield", 0)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "open_strategy_msg", Obj: open},
		{Filename: "open_strategy_tx", Obj: tx},
		{Filename: "strategy", Obj: &yield.Strategy{
			Metadata:        &weave.Metadata{Schema: 1},
			Owner:           owner,
			PrincipalAmount: weave.NewAmount(100000),
			Percentage:      DefaultPercentage,
			SettlementToken: token,
			CreatedAt:       1554112800,
			MaturesAt:       weave.UnixTime(1554112800).AddDuration(yield.MaturityWindow),
			Status:          yield.StatusActive,
		}},
		{Filename: "configuration", Obj: &yield.Configuration{
			Metadata:        &weave.Metadata{Schema: 1},
			Admin:           admin,
			Percentage:      DefaultPercentage,
			SettlementToken: token,
		}},
		{Filename: "send_msg", Obj: &cash.SendMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Token:    token,
			Src:      admin,
			Dest:     owner,
			Amount:   weave.NewAmount(50),
			Memo:     "example",
		}},
	}
}
