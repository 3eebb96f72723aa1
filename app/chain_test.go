package app

import (
	"context"
	"testing"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/store"
	"github.com/iov-one/yieldweave/weavetest"
	"github.com/iov-one/yieldweave/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	c1 := &weavetest.Decorator{}
	c2 := &weavetest.Decorator{}
	c3 := &weavetest.Decorator{}
	h := &weavetest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		nil,
		c3,
	).WithHandler(h)

	ctx := context.Background()
	db := store.MemStore()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "yield/accrue"}}

	_, err := stack.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = stack.Deliver(ctx, db, tx)
	require.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// now, let's trigger a panic below the recovery decorator
	stack = ChainDecorators(c1, utils.NewRecovery()).
		Chain(c2).
		WithHandler(&weavetest.PanicHandler{Msg: "boom"})

	_, err = stack.Check(ctx, db, tx)
	assert.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrPanic.Is(err))

	assert.Equal(t, 4, c1.CallCount())
	assert.Equal(t, 4, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
}

func TestChainStopsOnDecoratorError(t *testing.T) {
	failing := &weavetest.Decorator{CheckErr: errors.ErrUnauthorized, DeliverErr: errors.ErrUnauthorized}
	inner := &weavetest.Decorator{}
	h := &weavetest.Handler{}

	var stack weave.Handler = ChainDecorators(failing, inner).WithHandler(h)

	_, err := stack.Deliver(context.Background(), store.MemStore(), &weavetest.Tx{})
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 0, inner.CallCount())
	assert.Equal(t, 0, h.CallCount())
}
