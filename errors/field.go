package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field annotates err with the name of the model or message attribute that
// failed validation. It returns nil if err is nil. A stack trace is attached
// unless err already carries one.
//
// Field names follow Go naming. Nested attributes use dot notation, for
// example Metadata.Schema, and elements of a collection use their zero based
// index, for example Strategies.2.Owner.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if errIsNil(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{parent: err, field: fieldName, desc: description}
}

// AppendField clubs errorsOrNil together with fieldErrOrNil annotated with
// the given field name. Nil values are ignored, so this can be chained over
// every attribute of a validated value.
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (err *fieldError) Error() string {
	if err.desc != "" {
		return fmt.Sprintf("field %q: %s: %s", err.field, err.desc, err.parent)
	}
	return fmt.Sprintf("field %q: %s", err.field, err.parent)
}

// Cause implements the causer interface.
func (err *fieldError) Cause() error {
	return err.parent
}

// Field implements fielder interface.
func (err *fieldError) Field() string {
	return err.field
}

type fielder interface {
	// Field returns the field name that this error is created for.
	Field() string
}

// FieldErrors collects all errors annotated with fieldName found in the err
// tree. The search descends through wrapped errors and every element of a
// multi error. A matching field error is returned as a whole; errors nested
// inside of it are not searched.
func FieldErrors(err error, fieldName string) []error {
	var res []error
	for !errIsNil(err) {
		if f, ok := err.(fielder); ok && f.Field() == fieldName {
			return append(res, err)
		}
		if u, ok := err.(unpacker); ok {
			// Unpack returns every child, so the cause chain must
			// not be followed afterwards.
			for _, e := range u.Unpack() {
				res = append(res, FieldErrors(e, fieldName)...)
			}
			return res
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return res
}
