package introspect

import (
	"reflect"
	"strings"
)

// Descriptor is the normalized type of one field. A nil ParamTypes means
// no auxiliary types were derived.
type Descriptor struct {
	DataType   string
	ParamTypes []string
}

// Describe computes the descriptor of a field declared with type declared
// and currently holding value. The rules apply in order, later ones
// overriding earlier ones:
//
//  1. a field declared as the empty interface reports the dynamic type of
//     its value;
//  2. an array or slice reports only its bracket suffix ("[]", "[][]") as
//     data type and its component type as the single parameter type;
//  3. a parameterized container (map, channel, instantiated generic type)
//     reports its raw name and its type arguments;
//  4. anything else reports its binary name with no parameter types.
func Describe(declared reflect.Type, value any) Descriptor {
	declaredName := BinaryName(declared)
	d := Descriptor{DataType: declaredName}
	matched := false

	if declaredName == ObjectTypeName {
		matched = true
		if name := RuntimeTypeName(value); name != "" {
			d.DataType = name
		}
	} else if strings.HasPrefix(declaredName, "[") {
		matched = true
		d = describeArray(declared, declaredName)
	}

	if raw, args, ok := TypeArguments(declared); ok {
		matched = true
		d.DataType = raw
		d.ParamTypes = args
	}

	if !matched {
		d.ParamTypes = []string{}
	}
	return d
}

// describeArray decodes an array signature. The data type keeps only the
// bracket suffix; the component survives in ParamTypes.
func describeArray(declared reflect.Type, declaredName string) Descriptor {
	component, dims := arrayComponent(declared)
	base := SimpleName(component)
	simpleName := base + strings.Repeat("[]", dims)
	arrayStartIdx := len(base)

	var param string
	if !strings.Contains(declaredName, simpleName[:arrayStartIdx]) {
		// The component simple name only appears in a signature for
		// non-basic components, so its absence means a basic kind.
		param = simpleName[:arrayStartIdx]
	} else {
		param = declaredName[dims+1 : len(declaredName)-1]
	}

	return Descriptor{
		DataType:   simpleName[arrayStartIdx:],
		ParamTypes: []string{param},
	}
}

func arrayComponent(t reflect.Type) (reflect.Type, int) {
	dims := 0
	for isArrayType(t) {
		t = t.Elem()
		dims++
	}
	return t, dims
}
