package app

import (
	"context"
	"encoding/json"
	"fmt"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// BaseApp binds a handler stack to the tendermint ABCI interface. It
// decodes transactions, keeps the block information on the context and
// commits the deliver cache on every block.
//
// Errors on ABCI steps that do not take user input (InitChain, BeginBlock,
// Commit) are handled as panics, as there is no way to report them
// gracefully.
type BaseApp struct {
	abci.BaseApplication

	// name is what is returned from abci.Info
	name string

	store       *CommitStore
	decoder     weave.TxDecoder
	handler     weave.Handler
	initializer weave.Initializer
	logger      log.Logger
	debug       bool

	// chainID is loaded from db in initialization
	// saved once in InitChain
	chainID string

	// blockContext contains context info that is valid for the
	// current block (eg. height, time), reset on BeginBlock
	blockContext weave.Context
	height       int64
}

var _ abci.Application = (*BaseApp)(nil)

// NewBaseApp constructs a basic abci application on top of given host
// store.
func NewBaseApp(
	name string,
	db weave.CacheableKVStore,
	decoder weave.TxDecoder,
	handler weave.Handler,
	initializer weave.Initializer,
	debug bool,
) (*BaseApp, error) {
	b := &BaseApp{
		name:        name,
		store:       NewCommitStore(db),
		decoder:     decoder,
		handler:     handler,
		initializer: initializer,
		logger:      log.NewNopLogger(),
		debug:       debug,
	}

	chainID, err := loadChainID(db)
	if err != nil {
		return nil, errors.Wrap(err, "load chain id")
	}
	b.chainID = chainID

	height, err := b.store.Height()
	if err != nil {
		return nil, errors.Wrap(err, "load height")
	}
	b.height = height
	return b, nil
}

// WithLogger sets the logger on the BaseApp and returns it,
// to make it easy to chain in initialization
func (b *BaseApp) WithLogger(logger log.Logger) *BaseApp {
	b.logger = logger
	return b
}

// GetChainID returns the current chainID
func (b *BaseApp) GetChainID() string {
	return b.chainID
}

// Info implements abci.Application. It returns the height and name.
func (b *BaseApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	return abci.ResponseInfo{
		Data:            b.name,
		LastBlockHeight: b.height,
	}
}

// InitChain implements abci.Application. It stores the chain id and passes
// the genesis application state to the initializer.
func (b *BaseApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := b.initChain(req); err != nil {
		// Read comment on type header
		panic(fmt.Sprintf("init chain: %+v", err))
	}
	return abci.ResponseInitChain{}
}

func (b *BaseApp) initChain(req abci.RequestInitChain) error {
	if b.chainID != "" {
		return errors.Wrapf(errors.ErrState, "app state previously loaded for chain: %s", b.chainID)
	}
	if len(req.AppStateBytes) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app_state not set in genesis.json")
	}
	var opts weave.Options
	if err := json.Unmarshal(req.AppStateBytes, &opts); err != nil {
		return errors.Wrapf(errors.ErrInput, "app state: %s", err)
	}

	db := b.store.DeliverStore()
	if err := saveChainID(db, req.ChainId); err != nil {
		return err
	}
	b.chainID = req.ChainId
	b.logger.Info("initializing chain", "chain_id", b.chainID)

	if b.initializer == nil {
		return nil
	}
	return b.initializer.FromGenesis(opts, db)
}

// BeginBlock implements abci.Application. It sets up the context of the new
// block.
func (b *BaseApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := weave.WithLogger(context.Background(), b.logger)
	ctx = weave.WithChainID(ctx, b.chainID)
	ctx = weave.WithHeight(ctx, req.Header.Height)
	ctx = weave.WithBlockTime(ctx, req.Header.Time)
	b.blockContext = ctx
	b.height = req.Header.Height
	return abci.ResponseBeginBlock{}
}

// DeliverTx implements abci.Application. It dispatches to the handler.
func (b *BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return DeliverTxError(err, b.debug)
	}

	ctx := weave.WithLogInfo(b.context(),
		"call", "deliver_tx",
		"path", weave.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.store.DeliverStore(), tx)
	return DeliverOrError(res, err, b.debug)
}

// CheckTx implements abci.Application. It dispatches to the handler.
func (b *BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return CheckTxError(err, b.debug)
	}

	ctx := weave.WithLogInfo(b.context(),
		"call", "check_tx",
		"path", weave.GetPath(tx))

	res, err := b.handler.Check(ctx, b.store.CheckStore(), tx)
	return CheckOrError(res, err, b.debug)
}

// Commit implements abci.Application. It writes all changes of the current
// block to the host store.
func (b *BaseApp) Commit() abci.ResponseCommit {
	if err := b.store.Commit(b.height); err != nil {
		// Read comment on type header
		panic(fmt.Sprintf("commit: %+v", err))
	}
	b.logger.Debug("commit", "height", b.height)
	return abci.ResponseCommit{}
}

// context returns the context of the current block. Before the first
// block begins, only the chain id and logger are set.
func (b *BaseApp) context() weave.Context {
	if b.blockContext != nil {
		return b.blockContext
	}
	ctx := weave.WithLogger(context.Background(), b.logger)
	if b.chainID != "" {
		ctx = weave.WithChainID(ctx, b.chainID)
	}
	return ctx
}

// loadTx calls the decoder, and capture any panics
func (b *BaseApp) loadTx(txBytes []byte) (tx weave.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}
