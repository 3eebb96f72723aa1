package utils

import (
	"strings"

	weave "github.com/iov-one/yieldweave"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// ActionKey is the tag key holding the full path of the delivered
	// message, for example yield/expire_strategy.
	ActionKey = "action"

	// ModuleKey is the tag key holding the extension part of the message
	// path, for example yield.
	ModuleKey = "module"
)

// ActionTagger tags every successful delivery with the path of the
// processed message, so that clients can subscribe to events such as
// strategy expiration.
type ActionTagger struct{}

var _ weave.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	// A transaction without a message cannot be tagged, so fail before
	// any state is touched.
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	path := msg.Path()
	res.Tags = append(res.Tags, common.KVPair{Key: []byte(ActionKey), Value: []byte(path)})
	if i := strings.IndexByte(path, '/'); i > 0 {
		res.Tags = append(res.Tags, common.KVPair{Key: []byte(ModuleKey), Value: []byte(path[:i])})
	}
	return res, nil
}
