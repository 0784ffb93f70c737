package introspect

import (
	"reflect"

	ierrors "github.com/guileen/fieldspy/errors"
)

// FieldCallback is invoked for each visited field. A non-nil error stops
// the walk and is returned to the caller.
type FieldCallback func(f Field) error

// FieldFilter selects the fields a walk visits.
type FieldFilter func(f Field) bool

const blankName = "_"

var (
	// ExportedFields selects fields visible outside their package.
	ExportedFields FieldFilter = func(f Field) bool { return f.Exported }

	// CopyableFields selects fields that can be meaningfully copied; blank
	// fields are padding and are skipped.
	CopyableFields FieldFilter = func(f Field) bool { return f.Name != blankName }
)

// DoWithLocalFields invokes fc on the fields t declares itself, skipping
// embedded ancestors.
func DoWithLocalFields(t reflect.Type, fc FieldCallback) error {
	fields, err := Fields(t)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if f.Depth > 0 {
			break
		}
		if err := fc(f); err != nil {
			return err
		}
	}
	return nil
}

// DoWithFields invokes fc on every field of t and its embedded ancestors
// that passes all filters, in walk order.
func DoWithFields(t reflect.Type, fc FieldCallback, filters ...FieldFilter) error {
	fields, err := Fields(t)
	if err != nil {
		return err
	}
next:
	for _, f := range fields {
		for _, ff := range filters {
			if !ff(f) {
				continue next
			}
		}
		if err := fc(f); err != nil {
			return err
		}
	}
	return nil
}

// ShallowCopy copies the state of src into dest field by field, unexported
// fields included. dest must point to a struct of src's type or to a
// struct embedding it. Field values are copied, not cloned.
func (e *Engine) ShallowCopy(src, dest any) error {
	sv, err := readable(src)
	if err != nil {
		return ierrors.Wrapf(err, ierrors.ErrCodeInvalidArgument, "copy", "invalid source")
	}
	dv, err := writable(dest)
	if err != nil {
		if ierrors.IsInvalidArgumentError(err) {
			return ierrors.Wrapf(err, ierrors.ErrCodeInvalidArgument, "copy", "invalid destination")
		}
		return err
	}

	sp, err := e.planFor(sv.Type())
	if err != nil {
		return err
	}
	dp, err := e.planFor(dv.Type())
	if err != nil {
		return err
	}

	lv, ok := dp.level(sp.typ)
	if !ok {
		return ierrors.NewInvalidArgument("copy", "destination %s must be or embed %s",
			QualifiedName(dp.typ), QualifiedName(sp.typ))
	}

	for _, f := range sp.fields {
		if !CopyableFields(f) {
			continue
		}
		value, err := e.accessor.Read(f, sv)
		if err != nil {
			e.fail("copy", sp.typ, f.Name, err)
			return err
		}
		target := f
		target.Index = append(append([]int(nil), lv.Index...), f.Index...)
		if err := e.accessor.Write(target, dv, value); err != nil {
			e.fail("copy", dp.typ, f.Name, err)
			return err
		}
	}
	return nil
}

// ShallowCopy copies src into dest using the default engine.
func ShallowCopy(src, dest any) error {
	return defaultEngine.ShallowCopy(src, dest)
}
