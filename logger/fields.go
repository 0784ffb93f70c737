package logger

import (
	"log/slog"
	"reflect"
)

// Field helpers for structured logging
var (
	String = slog.String
	Int    = slog.Int
	Bool   = slog.Bool
	Any    = slog.Any

	ErrorField = func(err error) slog.Attr {
		if err == nil {
			return slog.String("error", "<nil>")
		}
		return slog.String("error", err.Error())
	}

	Component = func(name string) slog.Attr {
		return slog.String("component", name)
	}

	Operation = func(name string) slog.Attr {
		return slog.String("operation", name)
	}

	// TypeName logs the Go spelling of t.
	TypeName = func(t reflect.Type) slog.Attr {
		if t == nil {
			return slog.String("type", "<nil>")
		}
		return slog.String("type", t.String())
	}

	FieldName = func(name string) slog.Attr {
		return slog.String("field", name)
	}

	Count = func(n int) slog.Attr {
		return slog.Int("count", n)
	}
)
