package commands

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
)

// Example will be written out to a file, .json and .bin
// Filename should have no path and no extension
type Example struct {
	Filename string
	Obj      weave.Persistent
}

// TestGenCmd writes the JSON and protobuf encodings of given examples to
// the directory passed as the first argument ("testdata" by default).
// Clients use them to test their codecs against.
func TestGenCmd(examples []Example, args []string) error {
	outdir := "testdata"
	if len(args) > 0 {
		outdir = args[0]
	}
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	for _, ex := range examples {
		js, err := json.MarshalIndent(ex.Obj, "", "  ")
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "%s json: %s", ex.Filename, err)
		}
		jsFile := filepath.Join(outdir, ex.Filename+".json")
		if err := ioutil.WriteFile(jsFile, js, 0644); err != nil {
			return errors.Wrap(errors.ErrInput, err.Error())
		}

		pb, err := ex.Obj.Marshal()
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "%s protobuf: %s", ex.Filename, err)
		}
		pbFile := filepath.Join(outdir, ex.Filename+".bin")
		if err := ioutil.WriteFile(pbFile, pb, 0644); err != nil {
			return errors.Wrap(errors.ErrInput, err.Error())
		}
	}
	return nil
}
