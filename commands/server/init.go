package server

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"

	"github.com/iov-one/yieldweave/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// GenOptions can parse command-line and flag to
// generate default app_options for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisPath returns the location of the tendermint genesis file within
// the home directory.
func GenesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd adds the application state to the genesis file created by
// "tendermint init" in the home directory.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	options, err := gen(args)
	if err != nil {
		return errors.Wrap(err, "generate app state")
	}
	genFile := GenesisPath(home)
	if err := addGenesisOptions(genFile, options); err != nil {
		return err
	}
	logger.Info("App state written", "path", genFile)
	return nil
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage) error {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "read genesis: %s", err)
	}

	var doc GenesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "parse genesis: %s", err)
	}
	if _, ok := doc["app_state"]; ok {
		return errors.Wrap(errors.ErrDuplicate, "app_state already set")
	}

	doc["app_state"] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "serialize genesis: %s", err)
	}
	if err := ioutil.WriteFile(filename, out, 0600); err != nil {
		return errors.Wrapf(errors.ErrInput, "write genesis: %s", err)
	}
	return nil
}
