/*
Package yieldd links together all the various components
to construct the yieldd app.
*/
package yieldd

import (
	"path/filepath"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/app"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/store"
	"github.com/iov-one/yieldweave/x"
	"github.com/iov-one/yieldweave/x/cash"
	"github.com/iov-one/yieldweave/x/sigs"
	"github.com/iov-one/yieldweave/x/utils"
	"github.com/iov-one/yieldweave/x/yield"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
		utils.NewActionTagger(),
	)
}

// Router returns a router dispatching the cash and yield messages.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	ledger := cash.NewController()
	cash.RegisterRoutes(r, authFn, ledger)
	yield.RegisterRoutes(r, authFn, ledger)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() weave.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Initializers returns the genesis initializers of all extensions.
func Initializers() weave.Initializer {
	return app.ChainInitializers(
		cash.Initializer{},
		yield.Initializer{},
	)
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h weave.Handler, tx weave.TxDecoder, db weave.CacheableKVStore, debug bool) (*app.BaseApp, error) {
	return app.NewBaseApp(name, db, tx, h, Initializers(), debug)
}

// CommitKVStore returns a store that persists the data to the named path.
// An empty path returns a memory store.
func CommitKVStore(dbPath string) (weave.CacheableKVStore, func(), error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return store.MemStore(), func() {}, nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}
	db, closeDB := store.OpenLevelDB(path)
	return db, closeDB, nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "yield.db")
	}

	// The database stays open for the lifetime of the process.
	db, _, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	application, err := Application("yieldd", Stack(), TxDecoder, db, debug)
	if err != nil {
		return nil, err
	}
	return application.WithLogger(logger), nil
}
