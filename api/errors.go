// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ring.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrEmpty           = errors.New("buffer is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrReleased        = errors.New("buffer storage released")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeEmpty
	ErrCodeOutOfRange
	ErrCodeInvalidArgument
	ErrCodeReleased
	ErrCodeInternal
)

var codeSentinels = map[ErrorCode]error{
	ErrCodeEmpty:           ErrEmpty,
	ErrCodeOutOfRange:      ErrIndexOutOfRange,
	ErrCodeInvalidArgument: ErrInvalidArgument,
	ErrCodeReleased:        ErrReleased,
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel matching the code, so errors.Is works against
// the package-level errors.
func (e *Error) Unwrap() error {
	return codeSentinels[e.Code]
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode carried by err, or ErrCodeInternal when err
// is not a structured error.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
