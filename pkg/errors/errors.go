package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrDivisionByZero is the target for errors.Is checks; any
// *DivisionByZeroError matches it
var ErrDivisionByZero = NewDivisionByZeroError()

// DivisionByZeroMessage is the fixed message carried by DivisionByZeroError
const DivisionByZeroMessage = "Division by zero"

// DivisionByZeroError is returned when a division is attempted with a zero divisor
type DivisionByZeroError struct {
	message string
}

// NewDivisionByZeroError creates a new division by zero error
func NewDivisionByZeroError() *DivisionByZeroError {
	return &DivisionByZeroError{message: DivisionByZeroMessage}
}

// Error implements the error interface
func (e *DivisionByZeroError) Error() string {
	if e.message != "" {
		return e.message
	}
	return DivisionByZeroMessage
}

// Is reports whether target is a division by zero error
func (e *DivisionByZeroError) Is(target error) bool {
	_, ok := target.(*DivisionByZeroError)
	return ok
}

// GRPCStatus returns the gRPC status for this error
func (e *DivisionByZeroError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// GRPCStatus returns the gRPC status for this error
func (e *ValidationError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// Code returns the gRPC code for err, or codes.Unknown when err carries none.
// Wrapped errors are resolved through status.FromError.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if s, ok := status.FromError(err); ok {
		return s.Code()
	}
	return codes.Unknown
}
