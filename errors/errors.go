// Package errors provides the error taxonomy shared by the introspection
// packages and the normalization of reflection failures into it.
package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/guileen/fieldspy/logger"
)

// Error codes for different types of errors
const (
	ErrCodeUnknown         = "unknown_error"
	ErrCodeAccess          = "access_denied"
	ErrCodeFieldNotFound   = "field_not_found"
	ErrCodeTypeMismatch    = "type_mismatch"
	ErrCodeInvalidArgument = "invalid_argument"
	ErrCodeMethodNotFound  = "method_not_found"
	ErrCodeInvocation      = "invocation_error"
)

// Sentinel errors for use with errors.Is. Matching is by code.
var (
	ErrAccessDenied    = &IntrospectError{Code: ErrCodeAccess, Message: "field access denied"}
	ErrFieldNotFound   = &IntrospectError{Code: ErrCodeFieldNotFound, Message: "field not found"}
	ErrTypeMismatch    = &IntrospectError{Code: ErrCodeTypeMismatch, Message: "type mismatch"}
	ErrInvalidArgument = &IntrospectError{Code: ErrCodeInvalidArgument, Message: "invalid argument"}
	ErrMethodNotFound  = &IntrospectError{Code: ErrCodeMethodNotFound, Message: "method not found"}
	ErrInvocation      = &IntrospectError{Code: ErrCodeInvocation, Message: "method invocation failed"}
)

// IntrospectError is the single error type returned by the introspection
// packages. Err keeps the original failure for diagnostics.
type IntrospectError struct {
	Code    string
	Message string
	Op      string
	Err     error
}

// Error implements the error interface
func (e *IntrospectError) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// Unwrap implements the unwrap interface for error chaining
func (e *IntrospectError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error
func (e *IntrospectError) Is(target error) bool {
	if t, ok := target.(*IntrospectError); ok {
		return e.Code == t.Code
	}
	return false
}

// Log logs the error with the package logger
func (e *IntrospectError) Log(ctx context.Context, logLevel slog.Level) {
	logFields := []any{
		"error_code", e.Code,
		"operation", e.Op,
		"message", e.Message,
	}

	if e.Err != nil {
		logFields = append(logFields, "cause", e.Err.Error())
	}

	switch {
	case logLevel <= slog.LevelDebug:
		logger.DebugContext(ctx, "Introspection error occurred", logFields...)
	case logLevel <= slog.LevelInfo:
		logger.InfoContext(ctx, "Introspection error occurred", logFields...)
	case logLevel <= slog.LevelWarn:
		logger.WarnContext(ctx, "Introspection error occurred", logFields...)
	default:
		logger.ErrorContext(ctx, "Introspection error occurred", logFields...)
	}
}

// New creates a new IntrospectError
func New(code, op, message string) *IntrospectError {
	return &IntrospectError{
		Code:    code,
		Message: message,
		Op:      op,
	}
}

// Errorf creates a new IntrospectError with formatted message
func Errorf(code, op, format string, args ...any) *IntrospectError {
	return &IntrospectError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Op:      op,
	}
}

// Wrap wraps an existing error with context
func Wrap(err error, code, op string) *IntrospectError {
	return &IntrospectError{
		Code:    code,
		Message: messageFor(code),
		Op:      op,
		Err:     err,
	}
}

// Wrapf wraps an existing error with formatted context
func Wrapf(err error, code, op, format string, args ...any) *IntrospectError {
	return &IntrospectError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Op:      op,
		Err:     err,
	}
}

// NewFieldNotFound reports that no field called name exists on typeName.
func NewFieldNotFound(op, typeName, name string) *IntrospectError {
	return Errorf(ErrCodeFieldNotFound, op, "no field %q on %s", name, typeName)
}

// NewInvalidArgument reports a caller error.
func NewInvalidArgument(op, format string, args ...any) *IntrospectError {
	return Errorf(ErrCodeInvalidArgument, op, format, args...)
}

// Code returns the code of the first IntrospectError in err's chain, or
// ErrCodeUnknown.
func Code(err error) string {
	var ie *IntrospectError
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ErrCodeUnknown
}

// IsAccessError checks if an error indicates denied field access
func IsAccessError(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsFieldNotFoundError checks if an error indicates a missing field
func IsFieldNotFoundError(err error) bool {
	return errors.Is(err, ErrFieldNotFound)
}

// IsTypeMismatchError checks if an error indicates an incompatible value
func IsTypeMismatchError(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsInvalidArgumentError checks if an error indicates a caller error
func IsInvalidArgumentError(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func messageFor(code string) string {
	switch code {
	case ErrCodeAccess:
		return ErrAccessDenied.Message
	case ErrCodeFieldNotFound:
		return ErrFieldNotFound.Message
	case ErrCodeTypeMismatch:
		return ErrTypeMismatch.Message
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument.Message
	case ErrCodeMethodNotFound:
		return ErrMethodNotFound.Message
	case ErrCodeInvocation:
		return ErrInvocation.Message
	default:
		return "unknown error"
	}
}
