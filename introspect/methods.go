package introspect

import (
	"fmt"
	"reflect"

	ierrors "github.com/guileen/fieldspy/errors"
)

// MethodCallback is invoked for each visited method.
type MethodCallback func(m reflect.Method) error

// MethodFilter selects the methods a walk visits.
type MethodFilter func(m reflect.Method) bool

// UserMethods skips String, the only method with a conventional meaning
// for every type.
var UserMethods MethodFilter = func(m reflect.Method) bool { return !IsStringMethod(m) }

var stringType = reflect.TypeOf("")

// IsStringMethod reports whether m is a String() string method.
func IsStringMethod(m reflect.Method) bool {
	if m.Name != "String" {
		return false
	}
	// Methods of concrete types take the receiver as first input; methods
	// of interface types have no Func and no receiver.
	in := 0
	if m.Func.IsValid() {
		in = 1
	}
	mt := m.Type
	return mt.NumIn() == in && mt.NumOut() == 1 && mt.Out(0) == stringType
}

// DoWithMethods invokes mc on each method in the method set of t that
// passes all filters. Methods promoted from embedded fields are included.
func DoWithMethods(t reflect.Type, mc MethodCallback, filters ...MethodFilter) error {
	if t == nil {
		return ierrors.NewInvalidArgument("methods", "type must not be nil")
	}
next:
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		for _, mf := range filters {
			if !mf(m) {
				continue next
			}
		}
		if err := mc(m); err != nil {
			return err
		}
	}
	return nil
}

// InvokeMethod calls the method called name on target with args and
// returns its results. A nil argument is passed as the zero value of its
// parameter. A panic inside the method is returned as an invocation_error
// carrying the panic value.
func InvokeMethod(target any, name string, args ...any) (results []any, err error) {
	if target == nil {
		return nil, ierrors.NewInvalidArgument("invoke", "target must not be nil")
	}
	v := reflect.ValueOf(target)
	m := v.MethodByName(name)
	if !m.IsValid() {
		return nil, ierrors.Errorf(ierrors.ErrCodeMethodNotFound, "invoke", "no method %q on %s", name, QualifiedName(v.Type()))
	}

	mt := m.Type()
	if (!mt.IsVariadic() && len(args) != mt.NumIn()) || (mt.IsVariadic() && len(args) < mt.NumIn()-1) {
		return nil, ierrors.NewInvalidArgument("invoke", "%s takes %d arguments, got %d", name, mt.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := paramType(mt, i)
		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			return nil, ierrors.Errorf(ierrors.ErrCodeTypeMismatch, "invoke", "argument %d of %s: %s is not assignable to %s", i, name, av.Type(), pt)
		}
		in[i] = av
	}

	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = ierrors.Wrap(panicError(r), ierrors.ErrCodeInvocation, "invoke")
		}
	}()

	out := m.Call(in)
	results = make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results, nil
}

func paramType(mt reflect.Type, i int) reflect.Type {
	if mt.IsVariadic() && i >= mt.NumIn()-1 {
		return mt.In(mt.NumIn() - 1).Elem()
	}
	return mt.In(i)
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
