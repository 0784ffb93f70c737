package introspect

import (
	"reflect"

	ierrors "github.com/guileen/fieldspy/errors"
)

// Field describes one struct field reached by the hierarchy walk.
type Field struct {
	Name  string
	Type  reflect.Type
	Tag   reflect.StructTag
	Index []int        // path for reflect.Value.FieldByIndex
	Depth int          // 0 for the struct's own fields
	Owner reflect.Type // struct type that declares the field

	Exported bool
}

// IsValid reports whether f names a real field. The zero Field is the
// not-found sentinel.
func (f Field) IsValid() bool {
	return f.Type != nil && len(f.Index) > 0
}

// Level is one step of a struct's ancestor chain: the struct itself at
// depth 0, then the struct-valued embedded fields of each level.
type Level struct {
	Type  reflect.Type
	Index []int
	Depth int
}

// structType resolves t, or a pointer to t, to a struct type.
func structType(t reflect.Type) (reflect.Type, bool) {
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

// isAncestor reports whether sf embeds a struct by value.
func isAncestor(sf reflect.StructField) bool {
	return sf.Anonymous && sf.Type.Kind() == reflect.Struct
}

// Levels returns the ancestor chain of t, leaf first.
func Levels(t reflect.Type) ([]Level, error) {
	st, ok := structType(t)
	if !ok {
		return nil, ierrors.NewInvalidArgument("levels", "%v is not a struct", t)
	}

	levels := []Level{{Type: st, Index: nil, Depth: 0}}
	for i := 0; i < len(levels); i++ {
		lv := levels[i]
		for j := 0; j < lv.Type.NumField(); j++ {
			sf := lv.Type.Field(j)
			if isAncestor(sf) {
				levels = append(levels, Level{
					Type:  sf.Type,
					Index: appendIndex(lv.Index, j),
					Depth: lv.Depth + 1,
				})
			}
		}
	}
	return levels, nil
}

// Fields returns every field of t and of its embedded ancestors. All
// fields of a level come before the fields of the next level, each level
// in declaration order.
func Fields(t reflect.Type) ([]Field, error) {
	levels, err := Levels(t)
	if err != nil {
		return nil, err
	}

	var fields []Field
	for _, lv := range levels {
		for j := 0; j < lv.Type.NumField(); j++ {
			sf := lv.Type.Field(j)
			if isAncestor(sf) {
				continue
			}
			fields = append(fields, Field{
				Name:  sf.Name,
				Type:  sf.Type,
				Tag:   sf.Tag,
				Index: appendIndex(lv.Index, j),
				Depth: lv.Depth,
				Owner: lv.Type,

				Exported: sf.IsExported(),
			})
		}
	}
	return fields, nil
}

// FindField returns the first field of t, in walk order, named name and of
// type typ. An empty name or a nil typ matches any field, but not both.
// The zero Field and false are returned when nothing matches.
func FindField(t reflect.Type, name string, typ reflect.Type) (Field, bool) {
	if name == "" && typ == nil {
		return Field{}, false
	}
	fields, err := Fields(t)
	if err != nil {
		return Field{}, false
	}
	return findIn(fields, name, typ)
}

func findIn(fields []Field, name string, typ reflect.Type) (Field, bool) {
	for _, f := range fields {
		if (name == "" || name == f.Name) && (typ == nil || typ == f.Type) {
			return f, true
		}
	}
	return Field{}, false
}

func appendIndex(prefix []int, i int) []int {
	index := make([]int, len(prefix)+1)
	copy(index, prefix)
	index[len(prefix)] = i
	return index
}
