// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package wgsl

import "fmt"

// ErrorKind categorizes WGSL generation errors.
type ErrorKind uint8

const (
	// ErrUnsupportedFeature indicates a program construct WGSL cannot
	// express, such as an invocation with several written operands.
	ErrUnsupportedFeature ErrorKind = iota

	// ErrUnsupportedType indicates an element type with no WGSL
	// rendering in the requested position.
	ErrUnsupportedType

	// ErrInvalidAtom indicates an atom whose operands do not form a
	// writable statement.
	ErrInvalidAtom

	// ErrInvalidProgram indicates a program or set the writer cannot
	// emit, such as a vertex stage without a position output.
	ErrInvalidProgram
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedFeature:
		return "UnsupportedFeature"
	case ErrUnsupportedType:
		return "UnsupportedType"
	case ErrInvalidAtom:
		return "InvalidAtom"
	case ErrInvalidProgram:
		return "InvalidProgram"
	default:
		return "Unknown"
	}
}

// Error represents a WGSL generation error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("wgsl %s: %s", e.Kind, e.Message)
}

// NewError creates a new WGSL generation error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// NewErrorf creates a new WGSL generation error with a formatted
// message.
func NewErrorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsUnsupportedFeature returns true if the error is ErrUnsupportedFeature.
func (e *Error) IsUnsupportedFeature() bool {
	return e.Kind == ErrUnsupportedFeature
}

// IsUnsupportedType returns true if the error is ErrUnsupportedType.
func (e *Error) IsUnsupportedType() bool {
	return e.Kind == ErrUnsupportedType
}

// IsInvalidAtom returns true if the error is ErrInvalidAtom.
func (e *Error) IsInvalidAtom() bool {
	return e.Kind == ErrInvalidAtom
}

// IsInvalidProgram returns true if the error is ErrInvalidProgram.
func (e *Error) IsInvalidProgram() bool {
	return e.Kind == ErrInvalidProgram
}
