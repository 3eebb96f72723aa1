package errors

import (
	"errors"
	"fmt"
	"reflect"
)

const (
	// SuccessABCICode is the code of a response that carries no error.
	SuccessABCICode = 0

	// Errors that were not created from a registered root error share this
	// code. Outside of debug mode their message is replaced with
	// internalABCILog so that no implementation detail leaks to a client.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo translates an error into the code and log pair returned in an
// ABCI response.
//
// A registered error exposes its code and message. Any other error is
// reported with code 1 and, unless debug is set, a generic message. In debug
// mode the log carries the full error formatting including the stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

type coder interface {
	ABCICode() uint32
}

// abciCode walks the cause chain and returns the first code found. An error
// that does not lead to a coder is internal.
func abciCode(err error) uint32 {
	if errIsNil(err) {
		return SuccessABCICode
	}
	for err != nil {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalABCICode
}

// errIsNil returns true if the error is nil or a typed nil pointer hidden
// behind the error interface.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	val := reflect.ValueOf(err)
	return val.Kind() == reflect.Ptr && val.IsNil()
}

// Redact hides the message of panics and of all errors without a registered
// code behind a generic internal error. Registered errors are returned
// unchanged. In debug mode the error is never modified.
func Redact(err error, debug bool) error {
	if debug {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}
