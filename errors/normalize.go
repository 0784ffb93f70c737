package errors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Normalize collapses an arbitrary reflection failure into the error
// taxonomy. IntrospectErrors pass through unchanged; *reflect.ValueError
// becomes a type mismatch; everything else is reported as access denied
// with err kept as the cause.
func Normalize(err error, op string) error {
	if err == nil {
		return nil
	}

	var ie *IntrospectError
	if errors.As(err, &ie) {
		return err
	}

	var ve *reflect.ValueError
	if errors.As(err, &ve) {
		return Wrapf(err, ErrCodeTypeMismatch, op, "%s called on %s value", ve.Method, ve.Kind)
	}

	return Wrap(err, ErrCodeAccess, op)
}

// FromPanic converts a value recovered from a reflect panic into an
// IntrospectError. It returns nil when r is nil.
func FromPanic(r any, op string) error {
	switch v := r.(type) {
	case nil:
		return nil
	case error:
		return Normalize(v, op)
	case string:
		cause := errors.New(v)
		switch {
		case strings.Contains(v, "not assignable"), strings.Contains(v, "cannot use"):
			return Wrapf(cause, ErrCodeTypeMismatch, op, "value does not fit the field")
		default:
			return Wrap(cause, ErrCodeAccess, op)
		}
	default:
		return Wrap(fmt.Errorf("%v", v), ErrCodeAccess, op)
	}
}
