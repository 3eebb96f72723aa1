package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no non-nil error is provided, nil is returned. If exactly one non-nil
// error is provided, it is returned as it is. Otherwise a multi error
// containing all the errors is returned. Multi errors are flattened, so that
// appending to a multi error extends it rather than nesting it.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if errIsNil(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
		} else {
			res = append(res, e)
		}
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr represents a group of errors that happened at the same time, for
// example when validating several fields of a model.
type multiErr []error

var (
	_ unpacker = multiErr(nil)
	_ coder    = multiErr(nil)
)

func (errs multiErr) Error() string {
	if len(errs) == 1 {
		return errs[0].Error()
	}

	points := make([]string, len(errs))
	for i, err := range errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n",
		len(errs), strings.Join(points, "\n\t"))
}

// Unpack returns all errors clubbed together in this group.
func (errs multiErr) Unpack() []error {
	return errs
}

// ABCICode returns the code of the first error. This is consistent with the
// fail-fast approach where the first reported error is the most relevant one.
func (errs multiErr) ABCICode() uint32 {
	if len(errs) == 0 {
		return SuccessABCICode
	}
	return abciCode(errs[0])
}
