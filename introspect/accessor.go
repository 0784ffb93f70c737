package introspect

import (
	"reflect"
	"unsafe"

	ierrors "github.com/guileen/fieldspy/errors"
)

// Accessor reads and writes struct fields on a target value.
//
// Implementations must reach unexported fields as well as exported ones:
// callers rely on every field returned by Fields being readable, and
// writable when target is addressable. A platform-level refusal is
// reported as an access_denied error, never as a panic.
type Accessor interface {
	Read(field Field, target reflect.Value) (any, error)
	Write(field Field, target reflect.Value, value any) error
}

// NewAccessor returns the default Accessor. It bypasses export rules by
// re-deriving unexported fields from their address.
func NewAccessor() Accessor {
	return unsafeAccessor{}
}

type unsafeAccessor struct{}

func (unsafeAccessor) Read(field Field, target reflect.Value) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ierrors.FromPanic(r, "read")
		}
	}()

	if !field.IsValid() {
		return nil, ierrors.NewFieldNotFound("read", typeString(target), field.Name)
	}

	fv, err := reachable(target, field, "read")
	if err != nil {
		return nil, err
	}
	return fv.Interface(), nil
}

func (unsafeAccessor) Write(field Field, target reflect.Value, value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ierrors.FromPanic(r, "write")
		}
	}()

	if !field.IsValid() {
		return ierrors.NewFieldNotFound("write", typeString(target), field.Name)
	}
	if !target.CanAddr() {
		return ierrors.Errorf(ierrors.ErrCodeAccess, "write", "field %s: target %s is not addressable", field.Name, typeString(target))
	}

	fv, err := reachable(target, field, "write")
	if err != nil {
		return err
	}
	if value == nil {
		fv.SetZero()
		return nil
	}
	fv.Set(reflect.ValueOf(value))
	return nil
}

// reachable returns a usable reflect.Value for field on target, lifting the
// read-only flag of unexported fields through their address.
func reachable(target reflect.Value, field Field, op string) (reflect.Value, error) {
	fv := target.FieldByIndex(field.Index)
	if fv.CanInterface() {
		return fv, nil
	}
	if !fv.CanAddr() {
		return reflect.Value{}, ierrors.Errorf(ierrors.ErrCodeAccess, op, "unexported field %s on a non-addressable %s", field.Name, typeString(target))
	}
	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem(), nil
}

func typeString(v reflect.Value) string {
	if !v.IsValid() {
		return "<invalid>"
	}
	return QualifiedName(v.Type())
}
