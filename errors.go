package sift

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidParameter indicates a registry or projection call was made
	// with a missing or malformed argument.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrMarshal indicates the codec failed to marshal a projected view.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// ParameterError wraps ErrInvalidParameter with the offending parameter
// name and the reason it was rejected.
type ParameterError struct {
	Err    error  // Underlying sentinel error (ErrInvalidParameter)
	Param  string // Parameter that was rejected (name, spec, records)
	Reason string // Why the parameter was rejected
}

func (e *ParameterError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s %s", e.Err.Error(), e.Param, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Param)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error while rendering a view.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newParameterError creates a ParameterError for argument validation failures.
func newParameterError(param, reason string) error {
	return &ParameterError{
		Err:    ErrInvalidParameter,
		Param:  param,
		Reason: reason,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
