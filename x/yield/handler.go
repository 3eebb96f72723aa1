package yield

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/x"
)

const (
	configCost    = 50
	lifecycleCost = 100
	settleCost    = 200
)

// RegisterRoutes registers handlers for all messages of this extension.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ledger TokenLedger) {
	var conf ConfigStore
	bucket := NewStrategyBucket()
	settle := NewSettlementClient(auth, ledger)

	r.Handle(&InitializeMsg{}, &initializeHandler{auth: auth, conf: conf})
	r.Handle(&SetPercentageMsg{}, &setPercentageHandler{auth: auth, conf: conf})
	r.Handle(&SetTokenMsg{}, &setTokenHandler{auth: auth, conf: conf})
	r.Handle(&OpenStrategyMsg{}, &openStrategyHandler{auth: auth, conf: conf, bucket: bucket})
	r.Handle(&AccrueMsg{}, &accrueHandler{auth: auth, conf: conf, bucket: bucket, settle: settle})
	r.Handle(&ExpireStrategyMsg{}, &expireStrategyHandler{auth: auth, conf: conf, bucket: bucket, settle: settle})
	r.Handle(&CompleteStrategyMsg{}, &completeStrategyHandler{auth: auth, conf: conf, bucket: bucket})
	r.Handle(&WithdrawMsg{}, &withdrawHandler{auth: auth, conf: conf, bucket: bucket, settle: settle})
}

// requireAdmin returns the administrator address if the administrator
// signed the current transaction.
func requireAdmin(ctx weave.Context, db weave.ReadOnlyKVStore, auth x.Authenticator, conf ConfigStore) (weave.Address, error) {
	admin, err := conf.Admin(db)
	if err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}
	return admin, nil
}

// GetStrategy returns the strategy of the owner.
func GetStrategy(db weave.ReadOnlyKVStore, owner weave.Address) (*Strategy, error) {
	return NewStrategyBucket().GetStrategy(db, owner)
}

// GetYieldBalance returns the owner's balance of the settlement token of
// their strategy.
func GetYieldBalance(db weave.ReadOnlyKVStore, ledger TokenLedger, owner weave.Address) (weave.Amount, error) {
	s, err := GetStrategy(db, owner)
	if err != nil {
		return "", err
	}
	bal, err := ledger.Balance(db, s.SettlementToken, owner)
	if err != nil {
		return "", errors.Wrap(err, "balance")
	}
	return bal, nil
}

type initializeHandler struct {
	auth x.Authenticator
	conf ConfigStore
}

var _ weave.Handler = (*initializeHandler)(nil)

func (h *initializeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: configCost}, nil
}

func (h *initializeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf := &Configuration{
		Metadata: &weave.Metadata{Schema: 1},
		Admin:    msg.Admin,
	}
	if err := h.conf.Save(db, conf); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}
	weave.GetLogger(ctx).Info("ledger initialized", "admin", msg.Admin)
	return &weave.DeliverResult{}, nil
}

func (h *initializeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*InitializeMsg, error) {
	var msg InitializeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	switch admin, err := h.conf.Admin(db); {
	case err == nil:
		return nil, errors.Wrapf(ErrAlreadyInitialized, "admin %s", admin)
	case !ErrNotInitialized.Is(err):
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}
	return &msg, nil
}

type setPercentageHandler struct {
	auth x.Authenticator
	conf ConfigStore
}

var _ weave.Handler = (*setPercentageHandler)(nil)

func (h *setPercentageHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: configCost}, nil
}

func (h *setPercentageHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := h.conf.Load(db)
	if err != nil {
		return nil, err
	}
	conf.Percentage = msg.Percentage
	if err := h.conf.Save(db, conf); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}
	weave.GetLogger(ctx).Info("percentage changed", "percentage", msg.Percentage)
	return &weave.DeliverResult{}, nil
}

func (h *setPercentageHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetPercentageMsg, error) {
	var msg SetPercentageMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := requireAdmin(ctx, db, h.auth, h.conf); err != nil {
		return nil, err
	}
	return &msg, nil
}

type setTokenHandler struct {
	auth x.Authenticator
	conf ConfigStore
}

var _ weave.Handler = (*setTokenHandler)(nil)

func (h *setTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: configCost}, nil
}

func (h *setTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := h.conf.Load(db)
	if err != nil {
		return nil, err
	}
	conf.SettlementToken = msg.Token
	if err := h.conf.Save(db, conf); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}
	weave.GetLogger(ctx).Info("settlement token changed", "token", msg.Token)
	return &weave.DeliverResult{}, nil
}

func (h *setTokenHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetTokenMsg, error) {
	var msg SetTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := requireAdmin(ctx, db, h.auth, h.conf); err != nil {
		return nil, err
	}
	return &msg, nil
}

type openStrategyHandler struct {
	auth   x.Authenticator
	conf   ConfigStore
	bucket StrategyBucket
}

var _ weave.Handler = (*openStrategyHandler)(nil)

func (h *openStrategyHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: lifecycleCost}, nil
}

func (h *openStrategyHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := h.conf.Load(db)
	if err != nil {
		return nil, err
	}
	if conf.Percentage == 0 {
		return nil, errors.Wrap(ErrNotInitialized, "percentage")
	}
	if len(conf.SettlementToken) == 0 {
		return nil, errors.Wrap(ErrNotInitialized, "settlement token")
	}

	// A completed strategy can be replaced. Any other strategy must run
	// its course first.
	switch old, err := h.bucket.GetStrategy(db, msg.Owner); {
	case err == nil:
		if old.Status != StatusCompleted {
			return nil, errors.Wrapf(ErrInvalidStatus, "owner has a %s strategy", old.Status)
		}
	case !ErrNotInitialized.Is(err):
		return nil, err
	}

	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	createdAt := weave.AsUnixTime(now)
	s := &Strategy{
		Metadata:        &weave.Metadata{Schema: 1},
		Owner:           msg.Owner,
		PrincipalAmount: msg.Amount,
		Percentage:      conf.Percentage,
		SettlementToken: conf.SettlementToken,
		CreatedAt:       createdAt,
		MaturesAt:       createdAt.AddDuration(MaturityWindow),
		Status:          StatusActive,
	}
	if err := h.bucket.Save(db, s); err != nil {
		return nil, errors.Wrap(err, "save strategy")
	}
	weave.GetLogger(ctx).Info("strategy opened",
		"owner", msg.Owner, "amount", msg.Amount, "percentage", conf.Percentage)
	return &weave.DeliverResult{Data: msg.Owner}, nil
}

func (h *openStrategyHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*OpenStrategyMsg, error) {
	var msg OpenStrategyMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := requireAdmin(ctx, db, h.auth, h.conf); err != nil {
		return nil, err
	}
	return &msg, nil
}

type accrueHandler struct {
	auth   x.Authenticator
	conf   ConfigStore
	bucket StrategyBucket
	settle SettlementClient
}

var _ weave.Handler = (*accrueHandler)(nil)

func (h *accrueHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: settleCost}, nil
}

func (h *accrueHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, admin, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	s, err := h.bucket.GetStrategy(db, msg.Owner)
	if err != nil {
		if ErrNotInitialized.Is(err) {
			return nil, errors.Wrap(ErrInvalidStrategy, "strategy must be opened first")
		}
		return nil, err
	}
	if err := h.settle.Mint(ctx, db, s.SettlementToken, msg.Owner, msg.Amount, admin); err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("yield accrued", "owner", msg.Owner, "amount", msg.Amount)
	return &weave.DeliverResult{}, nil
}

func (h *accrueHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AccrueMsg, weave.Address, error) {
	var msg AccrueMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	admin, err := requireAdmin(ctx, db, h.auth, h.conf)
	if err != nil {
		return nil, nil, err
	}
	return &msg, admin, nil
}

type expireStrategyHandler struct {
	auth   x.Authenticator
	conf   ConfigStore
	bucket StrategyBucket
	settle SettlementClient
}

var _ weave.Handler = (*expireStrategyHandler)(nil)

func (h *expireStrategyHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: settleCost}, nil
}

func (h *expireStrategyHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, admin, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	s, err := h.bucket.GetStrategy(db, msg.Owner)
	if err != nil {
		return nil, err
	}
	if err := s.transition(StatusActive, StatusExpired); err != nil {
		return nil, err
	}
	amount, err := MonthlyYield(s.PrincipalAmount, s.Percentage)
	if err != nil {
		return nil, err
	}
	// Settle before the status change is written. Both are discarded
	// together if the transaction fails.
	if amount.IsPositive() {
		if err := h.settle.Mint(ctx, db, s.SettlementToken, s.Owner, amount, admin); err != nil {
			return nil, err
		}
	}
	if err := h.bucket.Save(db, s); err != nil {
		return nil, errors.Wrap(err, "save strategy")
	}
	weave.GetLogger(ctx).Info("strategy expired", "owner", msg.Owner, "yield", amount)
	return &weave.DeliverResult{}, nil
}

func (h *expireStrategyHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ExpireStrategyMsg, weave.Address, error) {
	var msg ExpireStrategyMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	admin, err := requireAdmin(ctx, db, h.auth, h.conf)
	if err != nil {
		return nil, nil, err
	}
	return &msg, admin, nil
}

type completeStrategyHandler struct {
	auth   x.Authenticator
	conf   ConfigStore
	bucket StrategyBucket
}

var _ weave.Handler = (*completeStrategyHandler)(nil)

func (h *completeStrategyHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: lifecycleCost}, nil
}

func (h *completeStrategyHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	s, err := h.bucket.GetStrategy(db, msg.Owner)
	if err != nil {
		return nil, err
	}
	if err := s.transition(StatusExpired, StatusCompleted); err != nil {
		return nil, err
	}
	if err := h.bucket.Save(db, s); err != nil {
		return nil, errors.Wrap(err, "save strategy")
	}
	weave.GetLogger(ctx).Info("strategy completed", "owner", msg.Owner)
	return &weave.DeliverResult{}, nil
}

func (h *completeStrategyHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CompleteStrategyMsg, error) {
	var msg CompleteStrategyMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := requireAdmin(ctx, db, h.auth, h.conf); err != nil {
		return nil, err
	}
	return &msg, nil
}

type withdrawHandler struct {
	auth   x.Authenticator
	conf   ConfigStore
	bucket StrategyBucket
	settle SettlementClient
}

var _ weave.Handler = (*withdrawHandler)(nil)

func (h *withdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: settleCost}, nil
}

func (h *withdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, admin, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	s, err := h.bucket.GetStrategy(db, msg.Owner)
	if err != nil {
		return nil, err
	}
	if s.Status != StatusCompleted {
		return nil, errors.Wrapf(ErrInvalidStatus, "strategy is %s, want %s", s.Status, StatusCompleted)
	}
	balance, err := h.settle.Balance(db, s.SettlementToken, msg.Owner)
	if err != nil {
		return nil, err
	}
	switch c, err := balance.Cmp(msg.Amount); {
	case err != nil:
		return nil, err
	case c <= 0:
		return nil, errors.Wrapf(ErrNotEnoughBalance, "balance %s, withdraw %s", balance, msg.Amount)
	}
	if err := h.settle.Burn(ctx, db, s.SettlementToken, msg.Owner, msg.Amount, admin); err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("yield withdrawn", "owner", msg.Owner, "amount", msg.Amount)
	return &weave.DeliverResult{}, nil
}

func (h *withdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*WithdrawMsg, weave.Address, error) {
	var msg WithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	admin, err := requireAdmin(ctx, db, h.auth, h.conf)
	if err != nil {
		return nil, nil, err
	}
	return &msg, admin, nil
}
