package display

import "strings"

// ColumnType is the presentation class of a column's data type
type ColumnType string

const (
	ColumnTypeText      ColumnType = "text"
	ColumnTypeNumber    ColumnType = "number"
	ColumnTypeBoolean   ColumnType = "boolean"
	ColumnTypeTimestamp ColumnType = "timestamp"
	ColumnTypeDuration  ColumnType = "duration"
	ColumnTypeList      ColumnType = "list"
	ColumnTypeMap       ColumnType = "map"
	ColumnTypeObject    ColumnType = "object"
)

// IsValidColumnType checks if a column type is valid
func IsValidColumnType(typ ColumnType) bool {
	switch typ {
	case ColumnTypeText, ColumnTypeNumber, ColumnTypeBoolean,
		ColumnTypeTimestamp, ColumnTypeDuration, ColumnTypeList,
		ColumnTypeMap, ColumnTypeObject:
		return true
	default:
		return false
	}
}

// ColumnTypeFor maps a record data type to a column type
func ColumnTypeFor(dataType string) ColumnType {
	switch dataType {
	case "string":
		return ColumnTypeText
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64":
		return ColumnTypeNumber
	case "bool":
		return ColumnTypeBoolean
	case "time.Time":
		return ColumnTypeTimestamp
	case "time.Duration":
		return ColumnTypeDuration
	case "map":
		return ColumnTypeMap
	}
	if strings.Contains(dataType, "[]") {
		return ColumnTypeList
	}
	return ColumnTypeObject
}
