// Package display holds the value types produced by field introspection:
// per-field records and the columns used to present many of them as a
// table.
package display

import (
	"fmt"
	"strings"
)

// Empty is the neutral placeholder returned by Record.Value when no value
// was stored.
type Empty struct{}

func (Empty) String() string { return "{}" }

// Record is one extracted field: its name, current value and normalized
// type descriptor. Every accessor is total; unset parts read as empty
// defaults. Records are not copied defensively.
type Record struct {
	name       string
	value      any
	dataType   string
	paramTypes []string
}

// NewRecord creates a Record. paramTypes holds the array component type or
// the type arguments of a parameterized container.
func NewRecord(name string, value any, dataType string, paramTypes ...string) Record {
	return Record{
		name:       name,
		value:      value,
		dataType:   dataType,
		paramTypes: paramTypes,
	}
}

// Name returns the field name
func (r Record) Name() string {
	return r.name
}

// Value returns the field value, or Empty{} when none was stored.
func (r Record) Value() any {
	if r.value == nil {
		return Empty{}
	}
	return r.value
}

// RawValue returns the stored value as is, nil included.
func (r Record) RawValue() any {
	return r.value
}

// DataType returns the normalized type descriptor
func (r Record) DataType() string {
	return r.dataType
}

// ParamTypes returns the auxiliary type names, never nil.
func (r Record) ParamTypes() []string {
	if r.paramTypes == nil {
		return []string{}
	}
	return r.paramTypes
}

// IsArray reports whether the data type carries an array suffix.
func (r Record) IsArray() bool {
	return strings.Contains(r.dataType, "[]")
}

func (r Record) String() string {
	return fmt.Sprintf("Record [ %s : %v : %s ( %d ) ]", r.Name(), r.Value(), r.DataType(), len(r.ParamTypes()))
}
