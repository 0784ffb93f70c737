// Package introspect extracts the fields of arbitrary structs into display
// records and writes such records back onto structs.
//
// A struct's own fields come first, followed by the fields of the structs
// it embeds by value, level by level. Unexported fields are included.
package introspect

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/guileen/fieldspy/display"
	ierrors "github.com/guileen/fieldspy/errors"
	"github.com/guileen/fieldspy/logger"
)

// Engine extracts and reconstitutes struct fields. An Engine keeps no
// state about the objects it processes and may be shared between
// goroutines working on different objects.
type Engine struct {
	accessor Accessor
	log      *slog.Logger
	plans    planCache
}

// NewEngine creates a new Engine with the given configuration
func NewEngine(config Config) *Engine {
	accessor := config.Accessor
	if accessor == nil {
		accessor = NewAccessor()
	}
	e := &Engine{
		accessor: accessor,
		plans:    planCache{enabled: config.CachePlans},
	}
	if config.Logger != nil {
		e.log = config.Logger.With(logger.Component("introspect"))
	}
	return e
}

// logs returns the configured logger, or the current global one so that
// logger.SetLogger reaches engines built without a logger.
func (e *Engine) logs() *slog.Logger {
	if e.log != nil {
		return e.log
	}
	return logger.Logger.With(logger.Component("introspect"))
}

// planFor returns the field plan of t, tracing plans that had to be built.
func (e *Engine) planFor(t reflect.Type) (*plan, error) {
	p, built, err := e.plans.get(t)
	if err != nil {
		return nil, err
	}
	if built {
		e.logs().Log(context.Background(), logger.LevelTrace, "built field plan",
			logger.TypeName(p.typ),
			logger.Count(len(p.fields)),
			logger.Bool("cached", e.plans.enabled))
	}
	return p, nil
}

var defaultEngine = NewEngine(LoadConfig())

// Extract returns one record per field of obj using the default engine.
func Extract(obj any) ([]display.Record, error) {
	return defaultEngine.Extract(obj)
}

// Reconstitute writes records onto target using the default engine and
// returns target.
func Reconstitute[T any](target T, records []display.Record) (T, error) {
	_, err := defaultEngine.Reconstitute(target, records)
	return target, err
}

// Extract returns one record per field of obj, a struct or a pointer to
// one, in walk order.
func (e *Engine) Extract(obj any) ([]display.Record, error) {
	v, err := readable(obj)
	if err != nil {
		return nil, err
	}

	p, err := e.planFor(v.Type())
	if err != nil {
		return nil, err
	}

	records := make([]display.Record, 0, len(p.fields))
	for _, f := range p.fields {
		value, err := e.accessor.Read(f, v)
		if err != nil {
			e.fail("extract", p.typ, f.Name, err)
			return nil, err
		}
		d := Describe(f.Type, value)
		records = append(records, display.NewRecord(f.Name, value, d.DataType, d.ParamTypes...))
	}

	e.logs().Debug("extracted fields",
		logger.Operation("extract"),
		logger.TypeName(p.typ),
		logger.Count(len(records)))
	return records, nil
}

// Reconstitute writes the raw value of each record, in order, into the
// field of the same name on target, which must be a pointer to a struct.
// The first failure stops the call; fields written before it keep their
// new values. target is returned for chaining.
func (e *Engine) Reconstitute(target any, records []display.Record) (any, error) {
	v, err := writable(target)
	if err != nil {
		return target, err
	}

	p, err := e.planFor(v.Type())
	if err != nil {
		return target, err
	}

	for _, rec := range records {
		// Blank fields cannot be told apart by name.
		if rec.Name() == blankName {
			continue
		}
		f, _ := p.lookup(rec.Name())
		if !f.IsValid() {
			f.Name = rec.Name()
		}
		if err := e.accessor.Write(f, v, rec.RawValue()); err != nil {
			e.fail("reconstitute", p.typ, rec.Name(), err)
			return target, err
		}
	}

	e.logs().Debug("reconstituted fields",
		logger.Operation("reconstitute"),
		logger.TypeName(p.typ),
		logger.Count(len(records)))
	return target, nil
}

func (e *Engine) fail(op string, t reflect.Type, field string, err error) {
	e.logs().Warn("field access failed",
		logger.Operation(op),
		logger.TypeName(t),
		logger.FieldName(field),
		logger.String("error_code", ierrors.Code(err)),
		logger.ErrorField(err))
}

// readable returns an addressable struct value holding obj. Structs passed
// by value are copied so their unexported fields can be reached.
func readable(obj any) (reflect.Value, error) {
	if obj == nil {
		return reflect.Value{}, ierrors.NewInvalidArgument("extract", "object must not be nil")
	}
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, ierrors.NewInvalidArgument("extract", "object must not be a nil %s", v.Type())
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, ierrors.NewInvalidArgument("extract", "object must be a struct, got %s", v.Type())
	}
	if !v.CanAddr() {
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		v = cp
	}
	return v, nil
}

// writable returns the struct value target points to.
func writable(target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, ierrors.NewInvalidArgument("reconstitute", "target must not be nil")
	}
	v := reflect.ValueOf(target)
	switch {
	case v.Kind() == reflect.Struct:
		return reflect.Value{}, ierrors.Errorf(ierrors.ErrCodeAccess, "reconstitute", "target %s is passed by value and cannot be written", v.Type())
	case v.Kind() != reflect.Pointer || v.Type().Elem().Kind() != reflect.Struct:
		return reflect.Value{}, ierrors.NewInvalidArgument("reconstitute", "target must be a pointer to a struct, got %s", v.Type())
	case v.IsNil():
		return reflect.Value{}, ierrors.NewInvalidArgument("reconstitute", "target must not be a nil %s", v.Type())
	}
	return v.Elem(), nil
}
