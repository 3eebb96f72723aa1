package yield

import (
	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/gconf"
)

const (
	// packageName is the configuration key of this extension.
	packageName = "yield"

	minPercentage = 1
	maxPercentage = 10000
)

var _ gconf.Configuration = (*Configuration)(nil)

// Validate allows a partially set up configuration. Only the administrator
// must always be present, percentage and settlement token are optional until
// the first strategy is opened.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Admin", c.Admin.Validate())
	if c.Percentage != 0 && !validPercentage(c.Percentage) {
		errs = errors.Append(errs, errors.Field("Percentage", ErrInvalidPercentage, "%d not in [%d, %d]", c.Percentage, minPercentage, maxPercentage))
	}
	if len(c.SettlementToken) != 0 {
		errs = errors.AppendField(errs, "SettlementToken", c.SettlementToken.Validate())
	}
	return errs
}

func validPercentage(p int32) bool {
	return p >= minPercentage && p <= maxPercentage
}

// ConfigStore gives access to the configuration of this extension. All
// reads go to the store so that every operation observes the latest
// committed values.
type ConfigStore struct{}

// Load returns the stored configuration or ErrNotInitialized.
func (ConfigStore) Load(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, packageName, &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(ErrNotInitialized, "configuration")
	default:
		return nil, err
	}
}

// Save validates and stores the configuration.
func (ConfigStore) Save(db gconf.Store, conf *Configuration) error {
	return gconf.Save(db, packageName, conf)
}

// Admin returns the administrator address or ErrNotInitialized.
func (s ConfigStore) Admin(db gconf.ReadStore) (weave.Address, error) {
	conf, err := s.Load(db)
	if err != nil {
		return nil, err
	}
	if len(conf.Admin) == 0 {
		return nil, errors.Wrap(ErrNotInitialized, "admin")
	}
	return conf.Admin, nil
}

// Percentage returns the global yield percentage or ErrNotInitialized.
func (s ConfigStore) Percentage(db gconf.ReadStore) (int32, error) {
	conf, err := s.Load(db)
	if err != nil {
		return 0, err
	}
	if conf.Percentage == 0 {
		return 0, errors.Wrap(ErrNotInitialized, "percentage")
	}
	return conf.Percentage, nil
}

// Token returns the settlement token address or ErrNotInitialized.
func (s ConfigStore) Token(db gconf.ReadStore) (weave.Address, error) {
	conf, err := s.Load(db)
	if err != nil {
		return nil, err
	}
	if len(conf.SettlementToken) == 0 {
		return nil, errors.Wrap(ErrNotInitialized, "settlement token")
	}
	return conf.SettlementToken, nil
}
