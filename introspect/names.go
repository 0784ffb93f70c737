package introspect

import (
	"reflect"
	"strings"
)

// ObjectTypeName is the spelling of the empty interface, the type that can
// hold any value.
const ObjectTypeName = "interface {}"

// Component codes used by BinaryName for unnamed predeclared kinds.
var basicCodes = map[reflect.Kind]byte{
	reflect.Bool:          'Z',
	reflect.Int:           'I',
	reflect.Int8:          'B',
	reflect.Int16:         'S',
	reflect.Int32:         'N',
	reflect.Int64:         'J',
	reflect.Uint:          'U',
	reflect.Uint8:         'Y',
	reflect.Uint16:        'H',
	reflect.Uint32:        'M',
	reflect.Uint64:        'K',
	reflect.Uintptr:       'P',
	reflect.Float32:       'F',
	reflect.Float64:       'D',
	reflect.Complex64:     'X',
	reflect.Complex128:    'Q',
	reflect.String:        'T',
	reflect.UnsafePointer: 'V',
}

// QualifiedName returns the import-path qualified name of t:
// "time.Time", "github.com/google/uuid.UUID", "int". Unnamed composite
// types use their Go spelling.
func QualifiedName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Name() != "" {
		if pkg := t.PkgPath(); pkg != "" {
			return pkg + "." + t.Name()
		}
		return t.Name()
	}
	return t.String()
}

// SimpleName returns the unqualified spelling of t with array dimensions
// written as a "[]" suffix: "bool[][]", "UUID[]", "Time".
func SimpleName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if isArrayType(t) {
		return SimpleName(t.Elem()) + "[]"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return QualifiedName(t)
}

// BinaryName returns the signature form of t. Arrays and slices are
// spelled with one leading '[' per dimension followed by a component code:
// a single letter for predeclared basic kinds, "L<qualified name>;" for
// anything else. Every other type uses QualifiedName, so only arrays start
// with '['.
func BinaryName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if !isArrayType(t) {
		return QualifiedName(t)
	}

	var b strings.Builder
	for isArrayType(t) {
		b.WriteByte('[')
		t = t.Elem()
	}
	if code, ok := basicCode(t); ok {
		b.WriteByte(code)
	} else {
		b.WriteByte('L')
		b.WriteString(QualifiedName(t))
		b.WriteByte(';')
	}
	return b.String()
}

// RuntimeTypeName returns the qualified name of v's dynamic type, or ""
// for a nil interface.
func RuntimeTypeName(v any) string {
	if v == nil {
		return ""
	}
	return QualifiedName(reflect.TypeOf(v))
}

// TypeArguments reports the raw container name and the type arguments of
// a parameterized type: unnamed maps and channels, and instantiated
// generic named types. ok is false for anything else.
func TypeArguments(t reflect.Type) (raw string, args []string, ok bool) {
	if t == nil {
		return "", nil, false
	}

	if t.Name() == "" {
		switch t.Kind() {
		case reflect.Map:
			return "map", []string{QualifiedName(t.Key()), QualifiedName(t.Elem())}, true
		case reflect.Chan:
			return chanSpelling(t.ChanDir()), []string{QualifiedName(t.Elem())}, true
		}
		return "", nil, false
	}

	name := t.Name()
	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return "", nil, false
	}

	raw = name[:open]
	if pkg := t.PkgPath(); pkg != "" {
		raw = pkg + "." + raw
	}
	return raw, splitTypeList(name[open+1 : len(name)-1]), true
}

// isArrayType reports whether t is an unnamed slice or array. Named slice
// types behave like any other named type.
func isArrayType(t reflect.Type) bool {
	if t.Name() != "" {
		return false
	}
	k := t.Kind()
	return k == reflect.Slice || k == reflect.Array
}

func basicCode(t reflect.Type) (byte, bool) {
	if t.PkgPath() != "" {
		return 0, false
	}
	code, ok := basicCodes[t.Kind()]
	return code, ok
}

func chanSpelling(dir reflect.ChanDir) string {
	switch dir {
	case reflect.RecvDir:
		return "<-chan"
	case reflect.SendDir:
		return "chan<-"
	default:
		return "chan"
	}
}

// splitTypeList splits a comma separated type list at top level, ignoring
// commas nested in brackets, parentheses or braces.
func splitTypeList(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if rest := strings.TrimSpace(s[start:]); rest != "" || len(out) > 0 {
		out = append(out, rest)
	}
	return out
}
